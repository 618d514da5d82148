package tapir

import "fmt"

// Transition is a directed edge in the machine graph: when the source state
// reads the transition's read symbol, the machine writes the write symbol and
// moves to the destination. The destination is held as a state identifier and
// resolved through the machine registry at use time, so renames via
// Machine.SetStateID keep every edge intact.
type Transition struct {
	from  *State
	read  string
	write string
	toID  string
}

// ReadSymbol returns the symbol that triggers this transition.
func (t *Transition) ReadSymbol() string {
	return t.read
}

// WriteSymbol returns the symbol written when the transition fires.
func (t *Transition) WriteSymbol() string {
	return t.write
}

// SetWriteSymbol replaces the written symbol.
func (t *Transition) SetWriteSymbol(write string) {
	t.write = write
}

// From returns the owning source state, or nil once the transition has been
// severed.
func (t *Transition) From() *State {
	return t.from
}

// FromID returns the source state's identifier, or "" once severed.
func (t *Transition) FromID() string {
	if t.from == nil {
		return ""
	}
	return t.from.ID()
}

// ToID returns the destination state's identifier.
func (t *Transition) ToID() string {
	return t.toID
}

// SetReadSymbol rekeys the transition under a new read symbol. It fails with
// ErrDuplicateTransition when the source state already reads that symbol, and
// leaves the transition untouched in that case.
func (t *Transition) SetReadSymbol(read string) error {
	if read == t.read {
		return nil
	}
	if t.from != nil {
		if _, ok := t.from.transitions[read]; ok {
			return fmt.Errorf("%w: state %q already reads %q", ErrDuplicateTransition, t.from.id, read)
		}
		delete(t.from.transitions, t.read)
		t.from.transitions[read] = t
	}
	t.read = read
	return nil
}

// LinkTo redirects the transition at a new destination state.
func (t *Transition) LinkTo(to *State) {
	t.toID = to.ID()
}

// DeleteLink severs the transition. It is removed from its source state's
// table and afterwards resolves neither endpoint.
func (t *Transition) DeleteLink() {
	if t.from != nil {
		if owned, ok := t.from.transitions[t.read]; ok && owned == t {
			delete(t.from.transitions, t.read)
		}
		t.from = nil
	}
	t.toID = ""
}

// String renders the transition in its textual form,
// "fromID toID readSymbol writeSymbol", with "-" for severed endpoints.
func (t *Transition) String() string {
	from, to := t.FromID(), t.toID
	if from == "" {
		from = "-"
	}
	if to == "" {
		to = "-"
	}
	return fmt.Sprintf("%s %s %s %s", from, to, t.read, t.write)
}
