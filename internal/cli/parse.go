package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tapirlabs/tapir"
	"github.com/tapirlabs/tapir/pkg/tape"
)

// ParseState parses a "<id> <action>" flag value into its parts.
func ParseState(s string) (string, tapir.Action, error) {
	fields := strings.Fields(s)
	if len(fields) != 2 {
		return "", "", fmt.Errorf("malformed state %q (want \"<id> <action>\")", s)
	}
	action, err := tapir.ParseAction(fields[1])
	if err != nil {
		return "", "", fmt.Errorf("state %q: %w", s, err)
	}
	return fields[0], action, nil
}

// ParseTransition parses a "<from> <to> <read> <write>" flag value.
func ParseTransition(s string) (from, to, read, write string, err error) {
	fields := strings.Fields(s)
	if len(fields) != 4 {
		return "", "", "", "", fmt.Errorf("malformed transition %q (want \"<from> <to> <read> <write>\")", s)
	}
	return fields[0], fields[1], fields[2], fields[3], nil
}

// BuildMachine assembles a machine from flag-style state and transition
// declarations. The first declared state becomes the initial state.
func BuildMachine(tapeText string, states, transitions []string, opts ...tapir.Option) (*tapir.Machine, error) {
	if len(states) == 0 {
		return nil, errors.New("at least one state is required")
	}

	id, action, err := ParseState(states[0])
	if err != nil {
		return nil, err
	}
	m := tapir.New(tape.New(tapeText), tapir.NewState(id, action), opts...)

	for _, decl := range states[1:] {
		id, action, err := ParseState(decl)
		if err != nil {
			return nil, err
		}
		if _, err := m.NewState(id, action); err != nil {
			return nil, fmt.Errorf("state %q: %w", decl, err)
		}
	}

	for _, decl := range transitions {
		fromID, toID, read, write, err := ParseTransition(decl)
		if err != nil {
			return nil, err
		}
		from, ok := m.State(fromID)
		if !ok {
			return nil, fmt.Errorf("transition %q: unknown state %q", decl, fromID)
		}
		to, ok := m.State(toID)
		if !ok {
			return nil, fmt.Errorf("transition %q: unknown state %q", decl, toID)
		}
		if _, err := from.AddTransition(read, write, to); err != nil {
			return nil, fmt.Errorf("transition %q: %w", decl, err)
		}
	}

	return m, nil
}
