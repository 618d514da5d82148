package cli

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/tapirlabs/tapir"
	"github.com/tapirlabs/tapir/internal/presentation/graph"
	"github.com/tapirlabs/tapir/internal/presentation/tui"
)

// runSession drives the interactive read-eval-print loop. Every command
// operates on the live machine, so stepping, undoing and editing all share
// the same execution history.
func runSession(ctx *SignalContext, m *tapir.Machine) error {
	tui.PrintBanner(tapir.Version)
	fmt.Println(tui.RenderTape(m.Tape()))
	fmt.Println(tui.RenderStatus(m))
	printSystemMessage("Type 'help' for the command list.")

	visited := []string{m.CurrentStateID()}

	scanner := bufio.NewScanner(NewInterruptibleReader(os.Stdin, ctx.Done()))
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				fmt.Println()
				printSystemMessage("Interrupted.")
				return handleExecutionError(err)
			}
			fmt.Println()
			return nil
		}

		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "step", "s":
			count := 1
			if len(fields) > 1 {
				n, err := strconv.Atoi(fields[1])
				if err != nil {
					printSystemMessage("Not a step count: %q.", fields[1])
					continue
				}
				count = n
			}
			if err := m.StepForwardN(count); err != nil {
				printSystemMessage("%v", err)
				continue
			}
			visited = append(visited, m.CurrentStateID())
			fmt.Println(tui.RenderTape(m.Tape()))
			fmt.Println(tui.RenderStatus(m))

		case "undo", "u":
			if !m.UndoStep() {
				printSystemMessage("Nothing to undo.")
				continue
			}
			fmt.Println(tui.RenderTape(m.Tape()))
			fmt.Println(tui.RenderStatus(m))

		case "redo":
			if !m.RedoStep() {
				printSystemMessage("Nothing to redo.")
				continue
			}
			visited = append(visited, m.CurrentStateID())
			fmt.Println(tui.RenderTape(m.Tape()))
			fmt.Println(tui.RenderStatus(m))

		case "reset":
			m.Reset()
			visited = []string{m.CurrentStateID()}
			fmt.Println(tui.RenderTape(m.Tape()))
			fmt.Println(tui.RenderStatus(m))

		case "tape", "t":
			fmt.Println(tui.RenderTape(m.Tape()))

		case "state":
			fmt.Println(tui.RenderStatus(m))

		case "states":
			for _, s := range m.States() {
				fmt.Printf("  %s\n", s)
				for _, tr := range s.Transitions() {
					fmt.Printf("    %s\n", tr)
				}
			}

		case "graph":
			fmt.Print(graph.GenerateMermaid(m, &graph.Overlay{
				VisitedStates: visited,
				CurrentState:  m.CurrentStateID(),
			}))

		case "validate":
			issues := m.Validate()
			if len(issues) == 0 {
				printSystemMessage("No issues found.")
				continue
			}
			for _, issue := range issues {
				fmt.Printf("  %s\n", issue)
			}

		case "help", "h":
			printSessionHelp()

		case "quit", "q", "exit":
			printSystemMessage("Bye.")
			return nil

		default:
			printSystemMessage("Unknown command %q. Type 'help' for the list.", fields[0])
		}
	}
}

func printSessionHelp() {
	fmt.Print(`Commands:
  step [n], s [n]   advance the machine by one step (or n steps)
  undo, u           take back the most recent step
  redo              replay an undone step
  reset             restore the starting tape and state
  tape, t           print the tape
  state             print the step counter and current state
  states            list every state and its transitions
  graph             print a Mermaid diagram of the state graph
  validate          report unreachable or dangling states
  help, h           show this list
  quit, q, exit     leave the session
`)
}
