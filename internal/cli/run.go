package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/tapirlabs/tapir"
	"github.com/tapirlabs/tapir/internal/presentation/tui"
)

// RunOptions collects every flag the run command accepts.
type RunOptions struct {
	TapeText    string
	States      []string
	Transitions []string
	Steps       int
	Interactive bool
	LogLevel    string
}

// Execute builds the machine from the options and either traces it to
// completion or hands it to the interactive session.
func Execute(opts RunOptions) error {
	logger, err := newLogger(opts.LogLevel)
	if err != nil {
		return err
	}
	if opts.Steps < 0 {
		return fmt.Errorf("--steps must not be negative, got %d", opts.Steps)
	}
	if opts.Interactive && !term.IsTerminal(int(os.Stdin.Fd())) {
		return errors.New("interactive mode requires a terminal on stdin")
	}

	m, err := BuildMachine(opts.TapeText, opts.States, opts.Transitions, tapir.WithLogger(logger))
	if err != nil {
		return err
	}
	for _, issue := range m.Validate() {
		logger.Warn("machine issue", "state", issue.StateID, "detail", issue.Message)
	}

	sigCtx := NewSignalContext(context.Background())
	defer sigCtx.Cancel()

	if opts.Interactive {
		return runSession(sigCtx, m)
	}
	return runTrace(sigCtx, m, opts.Steps)
}

// runTrace prints the tape after every step until the machine halts, the
// step bound is exhausted, or the user interrupts.
func runTrace(ctx *SignalContext, m *tapir.Machine, maxSteps int) error {
	fmt.Println(tui.RenderTape(m.Tape()))

	for !m.IsHalted() {
		if maxSteps > 0 && m.StepNumber() >= maxSteps {
			printSystemMessage("Stopped after %d steps.", m.StepNumber())
			break
		}
		if ctx.Err() != nil {
			fmt.Println()
			printSystemMessage("Interrupted at step %d.", m.StepNumber())
			return handleExecutionError(ctx.Err())
		}
		m.StepForward()
		fmt.Println(tui.RenderTape(m.Tape()))
	}

	fmt.Println(tui.RenderStatus(m))
	return nil
}
