package tapir

import (
	"fmt"
	"sort"
)

// State is a node in the machine graph. It carries the action applied while
// the state is current and the outgoing transitions, keyed by the symbol read
// under the head. At most one transition per read symbol keeps the machine
// deterministic.
type State struct {
	id          string
	action      Action
	transitions map[string]*Transition
}

// NewState builds a detached state. Register it with a Machine via AddState
// before wiring transitions to it.
func NewState(id string, action Action) *State {
	return &State{
		id:          id,
		action:      action,
		transitions: make(map[string]*Transition),
	}
}

// ID returns the state identifier. Rename registered states through
// Machine.SetStateID so transition handles stay consistent.
func (s *State) ID() string {
	return s.id
}

// Action returns the tape behavior triggered while this state is current.
func (s *State) Action() Action {
	return s.action
}

// SetAction replaces the state's action.
func (s *State) SetAction(a Action) {
	s.action = a
}

// AddTransition wires an outgoing transition taken when read is under the
// head: the machine writes write and moves to the destination state. Adding a
// second transition for the same read symbol fails with
// ErrDuplicateTransition.
func (s *State) AddTransition(read, write string, to *State) (*Transition, error) {
	if _, ok := s.transitions[read]; ok {
		return nil, fmt.Errorf("%w: state %q already reads %q", ErrDuplicateTransition, s.id, read)
	}
	t := &Transition{
		from:  s,
		read:  read,
		write: write,
		toID:  to.ID(),
	}
	s.transitions[read] = t
	return t, nil
}

// Transition returns the outgoing transition for the given read symbol.
func (s *State) Transition(read string) (*Transition, bool) {
	t, ok := s.transitions[read]
	return t, ok
}

// HasTransition reports whether a transition exists for the read symbol.
func (s *State) HasTransition(read string) bool {
	_, ok := s.transitions[read]
	return ok
}

// Transitions returns the outgoing transitions ordered by read symbol.
func (s *State) Transitions() []*Transition {
	keys := make([]string, 0, len(s.transitions))
	for k := range s.transitions {
		keys = append(keys, k)
	}
	sort.Strings(keys) // Deterministic order.

	out := make([]*Transition, 0, len(keys))
	for _, k := range keys {
		out = append(out, s.transitions[k])
	}
	return out
}

// RemoveTransition detaches t from this state. It returns false when t is nil
// or not owned by s. The removed transition is severed and no longer resolves
// a source or destination.
func (s *State) RemoveTransition(t *Transition) bool {
	if t == nil {
		return false
	}
	owned, ok := s.transitions[t.read]
	if !ok || owned != t {
		return false
	}
	t.DeleteLink()
	return true
}

// String renders the state in its textual form, "id action".
func (s *State) String() string {
	return s.id + " " + s.action.String()
}
