package graph

import (
	"fmt"
	"strings"

	"github.com/tapirlabs/tapir"
)

// Overlay contains dynamic run data to visualize on top of the state graph.
type Overlay struct {
	VisitedStates []string
	CurrentState  string
}

// GenerateMermaid produces a Mermaid flowchart syntax string from the
// machine's state graph.
// It applies semantic styling:
// - Initial state: ((Circle))
// - Halting states (Halt/Accept/Reject): [[Subroutine]]
// - Movers: [Rectangle]
// Edges carry "read/write" labels; an edge whose destination resolves to no
// registered state renders dashed. Overlay styles (Visited/Current) are
// applied if provided.
func GenerateMermaid(m *tapir.Machine, overlay *Overlay) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	initialID := m.InitialStateID()
	for _, s := range m.States() {
		// Sanitize ID for Mermaid
		safeID := sanitizeMermaidID(s.ID())

		// State shape based on role
		opener, closer := "[", "]"
		switch {
		case s.ID() == initialID:
			opener, closer = "((", "))" // Circle
		case s.Action().Halts():
			opener, closer = "[[", "]]" // Subroutine
		}

		sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", safeID, opener, escapeLabel(s.String()), closer))

		for _, tr := range s.Transitions() {
			safeTo := sanitizeMermaidID(tr.ToID())
			label := escapeLabel(tr.ReadSymbol() + "/" + tr.WriteSymbol())

			arrow := fmt.Sprintf("-- \"%s\" -->", label)
			if _, ok := m.State(tr.ToID()); !ok {
				// Dangling destination: render dashed
				arrow = fmt.Sprintf("-. \"%s\" .->", label)
			}
			sb.WriteString(fmt.Sprintf("    %s %s %s\n", safeID, arrow, safeTo))
		}
	}

	// Apply Overlay Styles
	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text (color:#000) for high-contrast regardless of theme (Light/Dark)
		sb.WriteString("    classDef visited fill:#e0f2f1,stroke:#00695c,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef current fill:#fff59d,stroke:#f9a825,stroke-width:4px,color:#000;\n")

		// Deduplicate visited states (using safeIDs)
		visitedSet := make(map[string]bool)
		for _, id := range overlay.VisitedStates {
			safeID := sanitizeMermaidID(id)
			if !visitedSet[safeID] && safeID != "" {
				visitedSet[safeID] = true
				sb.WriteString(fmt.Sprintf("    class %s visited;\n", safeID))
			}
		}

		if overlay.CurrentState != "" {
			safeCurrent := sanitizeMermaidID(overlay.CurrentState)
			sb.WriteString(fmt.Sprintf("    class %s current;\n", safeCurrent))
		}
	}

	return sb.String()
}

func sanitizeMermaidID(id string) string {
	s := strings.ReplaceAll(id, ".", "_")
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, "#", "_")
	return s
}

// escapeLabel rewrites double quotes so labels survive Mermaid's quoting.
func escapeLabel(s string) string {
	return strings.ReplaceAll(s, "\"", "'")
}
