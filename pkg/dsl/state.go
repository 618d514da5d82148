package dsl

import "github.com/tapirlabs/tapir"

// transitionSpec records one declared edge; destinations resolve at Build
// time.
type transitionSpec struct {
	read  string
	write string
	to    string
}

// StateBuilder provides a fluent API for configuring a state.
type StateBuilder struct {
	id      string
	action  tapir.Action
	specs   []transitionSpec
	builder *Builder
}

// On adds a transition: when read is under the head, write write and move to
// the state declared under the given identifier. The destination may be
// declared after this call.
func (s *StateBuilder) On(read, write, to string) *StateBuilder {
	s.specs = append(s.specs, transitionSpec{read: read, write: write, to: to})
	return s
}

// State declares a sibling state on the underlying builder, so a whole graph
// can be written as a single chain.
func (s *StateBuilder) State(id string, action tapir.Action) *StateBuilder {
	return s.builder.State(id, action)
}

// Build compiles the underlying builder.
// This is a convenience so a declaration chain can end in Build directly.
func (s *StateBuilder) Build(opts ...tapir.Option) (*tapir.Machine, error) {
	return s.builder.Build(opts...)
}
