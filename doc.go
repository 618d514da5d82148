/*
Package tapir simulates single-tape Turing machines: an unbounded
bidirectional tape, a finite set of states wired by deterministic
symbol-triggered transitions, and a stepping controller that can advance,
reverse, redo and reset a run while tracking the step count.

# Concept

A Machine couples one Tape with a graph of States. Each step reads the symbol
under the tape head and fires the current state's transition for that symbol,
writing the transition's symbol and moving to its destination state; a state
without a transition for the symbol leaves tape and state untouched. Either
way the now-current state's action is then applied: shift the head left or
right, or halt the machine.

Every step is recorded as a small delta (head position, state identifier,
overwritten symbol), so a whole run is reversible at O(steps) memory instead
of O(steps x tape size). UndoStep plays a delta backward; RedoStep recomputes
the forward step from the restored configuration, which is sound because the
transition function is deterministic.

# Key Features

  - Lazy infinite tape: cells materialize as the head visits them, bounds
    grow monotonically, unvisited cells read as the blank symbol "#".
  - Deterministic transitions: at most one transition per read symbol per
    state, enforced at insertion time.
  - Reversible execution: step, undo, redo and reset with a step counter
    that always equals the undo depth.
  - Handle-based graph: transitions address their destination by state
    identifier and resolve it through the machine registry at use time, so
    renames never leave a stale edge.

# Usage

The pkg/dsl package offers a fluent builder; the core API underneath is
plain constructors and methods.

	package main

	import (
		"fmt"
		"log"

		"github.com/tapirlabs/tapir"
		"github.com/tapirlabs/tapir/pkg/dsl"
	)

	func main() {
		// Overwrite the first "a b" pair after the head with "c c", then halt.
		b := dsl.New("[b] a a a b a")

		b.State("0", tapir.MoveRight).
			On("a", "a", "1").
			On("#", "#", "3")

		b.State("1", tapir.MoveRight).
			On("b", "c", "2").
			On("#", "#", "3")

		b.State("2", tapir.MoveLeft).
			On("a", "c", "3")

		b.State("3", tapir.Halt)

		m, err := b.Build()
		if err != nil {
			log.Fatal(err)
		}

		for m.StepForward() {
		}

		fmt.Println(m.Tape())           // b a a [c] c a
		fmt.Println(m.CurrentStateID()) // 3
		fmt.Println(m.StepNumber())     // 6
	}
*/
package tapir
