package graph_test

import (
	"strings"
	"testing"

	"github.com/tapirlabs/tapir"
	"github.com/tapirlabs/tapir/internal/presentation/graph"
)

func TestGenerateMermaid(t *testing.T) {
	tests := []struct {
		name     string
		build    func(t *testing.T) (*tapir.Machine, *graph.Overlay)
		contains []string
	}{
		{
			name: "Initial State Shape",
			build: func(t *testing.T) (*tapir.Machine, *graph.Overlay) {
				return tapir.NewFromText("[a]", "start", tapir.MoveRight), nil
			},
			contains: []string{
				`start(("start R"))`,
			},
		},
		{
			name: "Halting State Shape",
			build: func(t *testing.T) (*tapir.Machine, *graph.Overlay) {
				m := tapir.NewFromText("[a]", "0", tapir.MoveRight)
				addState(t, m, "done", tapir.Halt)
				return m, nil
			},
			contains: []string{
				`done[["done H"]]`,
			},
		},
		{
			name: "Mover State Shape",
			build: func(t *testing.T) (*tapir.Machine, *graph.Overlay) {
				m := tapir.NewFromText("[a]", "0", tapir.MoveRight)
				addState(t, m, "walk", tapir.MoveLeft)
				return m, nil
			},
			contains: []string{
				`walk["walk L"]`,
			},
		},
		{
			name: "Edge Labels",
			build: func(t *testing.T) (*tapir.Machine, *graph.Overlay) {
				m := tapir.NewFromText("[a]", "0", tapir.MoveRight)
				done := addState(t, m, "done", tapir.Halt)
				zero, _ := m.State("0")
				addTransition(t, zero, "a", "c", done)
				return m, nil
			},
			contains: []string{
				`0 -- "a/c" --> done`,
			},
		},
		{
			name: "ID Sanitization",
			build: func(t *testing.T) (*tapir.Machine, *graph.Overlay) {
				return tapir.NewFromText("[a]", "scan-left", tapir.MoveLeft), nil
			},
			contains: []string{
				`scan_left(("scan-left L"))`,
			},
		},
		{
			name: "Dangling Destination Dashed",
			build: func(t *testing.T) (*tapir.Machine, *graph.Overlay) {
				m := tapir.NewFromText("[a]", "0", tapir.MoveRight)
				zero, _ := m.State("0")
				addTransition(t, zero, "a", "a", tapir.NewState("ghost", tapir.Halt))
				return m, nil
			},
			contains: []string{
				`0 -. "a/a" .-> ghost`,
			},
		},
		{
			name: "Overlay Styles",
			build: func(t *testing.T) (*tapir.Machine, *graph.Overlay) {
				m := tapir.NewFromText("[a]", "0", tapir.MoveRight)
				addState(t, m, "1", tapir.Halt)
				return m, &graph.Overlay{
					VisitedStates: []string{"0", "1"},
					CurrentState:  "1",
				}
			},
			contains: []string{
				"classDef visited",
				"classDef current",
				"class 0 visited;",
				"class 1 visited;",
				"class 1 current;",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, overlay := tt.build(t)
			got := graph.GenerateMermaid(m, overlay)
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("GenerateMermaid() = \n%v\nWant substring: %v", got, want)
				}
			}
		})
	}
}

func TestGenerateMermaidDeduplicatesVisited(t *testing.T) {
	m := tapir.NewFromText("[a]", "0", tapir.MoveRight)

	got := graph.GenerateMermaid(m, &graph.Overlay{VisitedStates: []string{"0", "0", "0"}})

	if n := strings.Count(got, "class 0 visited;"); n != 1 {
		t.Errorf("Expected one visited class line, got %d:\n%s", n, got)
	}
}

func addState(t *testing.T, m *tapir.Machine, id string, action tapir.Action) *tapir.State {
	t.Helper()
	s, err := m.NewState(id, action)
	if err != nil {
		t.Fatalf("NewState(%q) failed: %v", id, err)
	}
	return s
}

func addTransition(t *testing.T, from *tapir.State, read, write string, to *tapir.State) {
	t.Helper()
	if _, err := from.AddTransition(read, write, to); err != nil {
		t.Fatalf("AddTransition(%q) failed: %v", read, err)
	}
}
