package tapir

import (
	"fmt"
	"strings"
)

// Action is the tape behavior a state triggers while it is current: move the
// head one cell, or stop the machine. Actions render as the single letters
// used throughout the textual encodings.
type Action string

const (
	// MoveLeft shifts the tape head one cell to the left after each step.
	MoveLeft Action = "L"
	// MoveRight shifts the tape head one cell to the right after each step.
	MoveRight Action = "R"
	// Halt stops the machine without a verdict.
	Halt Action = "H"
	// Accept stops the machine, accepting the input.
	Accept Action = "Y"
	// Reject stops the machine, rejecting the input.
	Reject Action = "N"
)

// Halts reports whether the action stops the machine instead of moving the
// head.
func (a Action) Halts() bool {
	switch a {
	case Halt, Accept, Reject:
		return true
	}
	return false
}

// Valid reports whether a is one of the five defined actions.
func (a Action) Valid() bool {
	switch a {
	case MoveLeft, MoveRight, Halt, Accept, Reject:
		return true
	}
	return false
}

// String returns the single-letter form.
func (a Action) String() string {
	return string(a)
}

// ParseAction converts the single-letter form, case-insensitively and
// ignoring surrounding whitespace, into an Action.
func ParseAction(s string) (Action, error) {
	a := Action(strings.ToUpper(strings.TrimSpace(s)))
	if !a.Valid() {
		return "", fmt.Errorf("unknown action %q (want L, R, H, Y or N)", s)
	}
	return a, nil
}
