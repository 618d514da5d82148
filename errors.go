package tapir

import "errors"

// ErrDuplicateStateID is returned when adding or renaming a state to an
// identifier that is already registered.
var ErrDuplicateStateID = errors.New("duplicate state id")

// ErrInitialStateRemoval is returned when trying to remove the machine's
// initial state, which must stay registered for the lifetime of the machine.
var ErrInitialStateRemoval = errors.New("initial state cannot be removed")

// ErrDuplicateTransition is returned when adding or rekeying a transition to
// a read symbol that already triggers another transition on the same state.
var ErrDuplicateTransition = errors.New("duplicate transition symbol")

// ErrNegativeSteps is returned when a repeated step is asked to run a
// negative number of times.
var ErrNegativeSteps = errors.New("negative step count")
