package dsl

import (
	"errors"
	"fmt"

	"github.com/tapirlabs/tapir"
	"github.com/tapirlabs/tapir/pkg/tape"
)

// Builder manages the graph construction.
type Builder struct {
	tapeText string
	states   map[string]*StateBuilder
	order    []string
}

// New creates a builder for a machine over the given tape text. The first
// state declared via State becomes the machine's initial state.
func New(tapeText string) *Builder {
	return &Builder{
		tapeText: tapeText,
		states:   make(map[string]*StateBuilder),
	}
}

// State declares a state in the graph.
// If the state is already declared, the existing builder is returned with its
// action updated.
func (b *Builder) State(id string, action tapir.Action) *StateBuilder {
	if sb, ok := b.states[id]; ok {
		sb.action = action
		return sb
	}
	sb := &StateBuilder{
		id:      id,
		action:  action,
		builder: b,
	}
	b.states[id] = sb
	b.order = append(b.order, id)
	return sb
}

// Build compiles the declarations into a runnable Machine. Every transition
// destination must name a declared state; duplicate read symbols on a state
// surface here as tapir.ErrDuplicateTransition.
func (b *Builder) Build(opts ...tapir.Option) (*tapir.Machine, error) {
	if len(b.order) == 0 {
		return nil, errors.New("no states declared")
	}

	first := b.states[b.order[0]]
	m := tapir.New(tape.New(b.tapeText), tapir.NewState(first.id, first.action), opts...)
	for _, id := range b.order[1:] {
		sb := b.states[id]
		if _, err := m.NewState(sb.id, sb.action); err != nil {
			return nil, fmt.Errorf("declare state %q: %w", sb.id, err)
		}
	}

	for _, id := range b.order {
		sb := b.states[id]
		from, _ := m.State(sb.id)
		for _, spec := range sb.specs {
			to, ok := m.State(spec.to)
			if !ok {
				return nil, fmt.Errorf("state %q: transition on %q targets undeclared state %q", sb.id, spec.read, spec.to)
			}
			if _, err := from.AddTransition(spec.read, spec.write, to); err != nil {
				return nil, fmt.Errorf("state %q: %w", sb.id, err)
			}
		}
	}

	return m, nil
}
