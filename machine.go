package tapir

import (
	"fmt"
	"io"
	"log/slog"
	"sort"

	"github.com/tapirlabs/tapir/pkg/tape"
)

// step is the delta recorded for one forward step: the head position, the
// current state's identifier and the symbol under the head, captured before
// the step ran. A forward step mutates at most one tape cell and the
// current-state pointer, so this record reverses it exactly without
// snapshotting the whole tape.
type step struct {
	headPos int
	stateID string
	symbol  string
}

// initialConfiguration freezes what Reset restores: an independent clone of
// the input tape and the initial state.
type initialConfiguration struct {
	tape    *tape.Tape
	initial *State
}

// Machine orchestrates a run: it owns one tape, a registry of states keyed by
// identifier, the current state and a reversible execution history. The
// machine is running while the current state's action moves the head, and
// halted once that action is Halt, Accept or Reject. Halting is terminal
// except through UndoStep and Reset.
//
// A Machine is not safe for concurrent use; a consumer must serialize all
// calls into it.
type Machine struct {
	tape    *tape.Tape
	current *State
	states  map[string]*State

	init initialConfiguration

	stepNumber  int
	currentStep step
	undo        []step
	redo        []step

	logger *slog.Logger
}

// New builds a machine over a clone of the given tape, starting at initial.
// The initial state is registered as the sole member of the state set and can
// never be removed. A second independent clone of the tape is frozen for
// Reset, so later runs always restart from the original input.
func New(t *tape.Tape, initial *State, opts ...Option) *Machine {
	if t == nil {
		t = tape.New("")
	}
	m := &Machine{
		tape:    t.Clone(),
		current: initial,
		states:  map[string]*State{initial.ID(): initial},
		init: initialConfiguration{
			tape:    t.Clone(),
			initial: initial,
		},
		logger: slog.New(slog.NewJSONHandler(io.Discard, nil)),
	}
	m.currentStep = m.snapshot()
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// NewFromText builds a machine from the tape's textual encoding and a fresh
// initial state with the given identifier and action.
func NewFromText(text, initialID string, action Action, opts ...Option) *Machine {
	return New(tape.New(text), NewState(initialID, action), opts...)
}

// snapshot summarizes the live configuration as a step delta.
func (m *Machine) snapshot() step {
	return step{
		headPos: m.tape.HeadPosition(),
		stateID: m.current.ID(),
		symbol:  m.tape.ReadSymbol(),
	}
}

// AddState registers a state. It fails with ErrDuplicateStateID when the
// identifier is already taken.
func (m *Machine) AddState(s *State) error {
	if _, ok := m.states[s.ID()]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateStateID, s.ID())
	}
	m.states[s.ID()] = s
	return nil
}

// AddStates registers every given state, or none of them: when any identifier
// collides, with the registry or within the arguments, nothing is inserted.
func (m *Machine) AddStates(states ...*State) error {
	seen := make(map[string]bool, len(states))
	for _, s := range states {
		if _, taken := m.states[s.ID()]; taken || seen[s.ID()] {
			return fmt.Errorf("%w: %q", ErrDuplicateStateID, s.ID())
		}
		seen[s.ID()] = true
	}
	for _, s := range states {
		m.states[s.ID()] = s
	}
	return nil
}

// NewState builds and registers a state in one call.
func (m *Machine) NewState(id string, action Action) (*State, error) {
	s := NewState(id, action)
	if err := m.AddState(s); err != nil {
		return nil, err
	}
	return s, nil
}

// RemoveState unregisters the state with the given identifier and severs
// every transition incident to it, outgoing as well as those arriving from
// other states. It returns false when no such state exists and fails with
// ErrInitialStateRemoval for the initial state.
func (m *Machine) RemoveState(id string) (bool, error) {
	s, ok := m.states[id]
	if !ok {
		return false, nil
	}
	if s == m.init.initial {
		return false, fmt.Errorf("%w: %q", ErrInitialStateRemoval, id)
	}
	for _, t := range s.Transitions() {
		t.DeleteLink()
	}
	for _, other := range m.states {
		if other == s {
			continue
		}
		for _, t := range other.Transitions() {
			if t.ToID() == id {
				t.DeleteLink()
			}
		}
	}
	delete(m.states, id)
	m.logger.Debug("state removed", slog.String("state", id))
	return true, nil
}

// SetStateID renames a registered state and rewrites every reference to the
// old identifier: transition destinations across the whole graph, the live
// configuration summary and both history stacks. It fails with
// ErrDuplicateStateID when the new identifier belongs to a different state.
func (m *Machine) SetStateID(s *State, newID string) error {
	oldID := s.ID()
	if registered, ok := m.states[oldID]; !ok || registered != s {
		return fmt.Errorf("state %q is not registered", oldID)
	}
	if oldID == newID {
		return nil
	}
	if _, taken := m.states[newID]; taken {
		return fmt.Errorf("%w: %q", ErrDuplicateStateID, newID)
	}

	delete(m.states, oldID)
	s.id = newID
	m.states[newID] = s

	for _, other := range m.states {
		for _, t := range other.transitions {
			if t.toID == oldID {
				t.toID = newID
			}
		}
	}
	if m.currentStep.stateID == oldID {
		m.currentStep.stateID = newID
	}
	for i := range m.undo {
		if m.undo[i].stateID == oldID {
			m.undo[i].stateID = newID
		}
	}
	for i := range m.redo {
		if m.redo[i].stateID == oldID {
			m.redo[i].stateID = newID
		}
	}
	m.logger.Debug("state renamed", slog.String("from", oldID), slog.String("to", newID))
	return nil
}

// IsHalted reports whether the current state's action is Halt, Accept or
// Reject.
func (m *Machine) IsHalted() bool {
	return m.current.Action().Halts()
}

// advance applies the transition function once: increment the step counter,
// read the symbol under the head and look up the current state's transition
// for it. When one exists, write its write symbol and move to its
// destination; when none does, state and tape stay as they are. Either way
// the now-current state's action is applied to the head afterwards.
func (m *Machine) advance() {
	m.stepNumber++

	read := m.tape.ReadSymbol()
	if t, ok := m.current.Transition(read); ok {
		m.tape.WriteSymbol(t.WriteSymbol())
		if to, found := m.states[t.ToID()]; found {
			m.current = to
		}
	}

	switch m.current.Action() {
	case MoveLeft:
		m.tape.ShiftLeft()
	case MoveRight:
		m.tape.ShiftRight()
	}

	m.logger.Debug("step applied",
		slog.Int("step", m.stepNumber),
		slog.String("state", m.current.ID()),
		slog.String("read", read),
		slog.String("tape", m.tape.String()),
	)
}

// StepForward advances the machine by one step and reports whether it moved.
// A halted machine does not move. When undone steps are pending, the step is
// replayed through RedoStep instead of being recorded as fresh history, so a
// partial undo followed by stepping forward walks the same path back.
func (m *Machine) StepForward() bool {
	if m.IsHalted() {
		return false
	}
	if len(m.redo) > 0 {
		return m.RedoStep()
	}

	before := m.currentStep
	m.advance()
	m.undo = append(m.undo, before)
	m.currentStep = m.snapshot()
	return true
}

// StepForwardN calls StepForward exactly n times. It fails with
// ErrNegativeSteps when n is negative; each step independently respects the
// halted short-circuit.
func (m *Machine) StepForwardN(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeSteps, n)
	}
	for i := 0; i < n; i++ {
		m.StepForward()
	}
	return nil
}

// UndoStep reverses the most recent step and reports whether there was one to
// reverse. The pre-step delta from the undo stack restores the head position,
// the single overwritten tape cell and the current state; the undone
// configuration moves onto the redo stack. Cells materialized by the undone
// step stay materialized, growth is monotone.
func (m *Machine) UndoStep() bool {
	if len(m.undo) == 0 {
		return false
	}

	m.stepNumber--
	m.redo = append(m.redo, m.currentStep)

	rec := m.undo[len(m.undo)-1]
	m.undo = m.undo[:len(m.undo)-1]
	m.currentStep = rec

	for m.tape.HeadPosition() < rec.headPos {
		m.tape.ShiftRight()
	}
	for m.tape.HeadPosition() > rec.headPos {
		m.tape.ShiftLeft()
	}
	m.tape.WriteSymbol(rec.symbol)
	if s, ok := m.states[rec.stateID]; ok {
		m.current = s
	}

	m.logger.Debug("step undone",
		slog.Int("step", m.stepNumber),
		slog.String("state", m.current.ID()),
		slog.String("tape", m.tape.String()),
	)
	return true
}

// RedoStep replays the most recently undone step and reports whether there
// was one to replay. Redo keeps no forward snapshot: it re-runs the
// transition function from the restored pre-step configuration, which yields
// the identical outcome because transitions are deterministic and an undone
// step touches no other cell.
func (m *Machine) RedoStep() bool {
	if len(m.redo) == 0 {
		return false
	}

	m.undo = append(m.undo, m.currentStep)
	m.currentStep = m.redo[len(m.redo)-1]
	m.redo = m.redo[:len(m.redo)-1]

	m.advance()
	return true
}

// Reset returns the machine to the frozen initial configuration: step counter
// zero, empty history, the original input tape and the initial state.
func (m *Machine) Reset() {
	m.stepNumber = 0
	m.undo = nil
	m.redo = nil
	m.tape = m.init.tape.Clone()
	m.current = m.init.initial
	m.currentStep = m.snapshot()
	m.logger.Debug("machine reset", slog.String("state", m.current.ID()))
}

// Tape returns the live tape for inspection and rendering.
func (m *Machine) Tape() *tape.Tape {
	return m.tape
}

// State returns the registered state with the given identifier.
func (m *Machine) State(id string) (*State, bool) {
	s, ok := m.states[id]
	return s, ok
}

// States returns all registered states ordered by identifier.
func (m *Machine) States() []*State {
	ids := make([]string, 0, len(m.states))
	for id := range m.states {
		ids = append(ids, id)
	}
	sort.Strings(ids) // Deterministic order.

	out := make([]*State, 0, len(ids))
	for _, id := range ids {
		out = append(out, m.states[id])
	}
	return out
}

// CurrentState returns the state the machine is in.
func (m *Machine) CurrentState() *State {
	return m.current
}

// CurrentStateID returns the identifier of the state the machine is in.
func (m *Machine) CurrentStateID() string {
	return m.current.ID()
}

// InitialStateID returns the identifier of the state the machine started in.
func (m *Machine) InitialStateID() string {
	return m.init.initial.ID()
}

// StepNumber returns the number of steps applied since construction or the
// last Reset, net of undos. It always equals the undo stack depth.
func (m *Machine) StepNumber() int {
	return m.stepNumber
}
