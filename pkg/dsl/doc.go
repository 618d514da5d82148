/*
Package dsl provides a fluent builder for constructing Turing machines
programmatically.

It lets a machine graph be declared as readable chains instead of wiring
tapir.State values and checking an error per transition. Destinations are
referenced by identifier and resolved when the graph is compiled, so a
transition may point at a state declared further down. This is particularly
useful for unit tests, generated machines and IDE autocompletion.

Example usage:

	package main

	import (
		"log"

		"github.com/tapirlabs/tapir"
		"github.com/tapirlabs/tapir/pkg/dsl"
	)

	func main() {
		b := dsl.New("[b] a a a b a")

		b.State("0", tapir.MoveRight).
			On("a", "a", "1").
			On("#", "#", "halt")

		b.State("1", tapir.MoveRight).
			On("b", "c", "halt")

		b.State("halt", tapir.Halt)

		m, err := b.Build()
		if err != nil {
			log.Fatal(err)
		}

		for m.StepForward() {
		}
		log.Println(m.Tape())
	}
*/
package dsl
