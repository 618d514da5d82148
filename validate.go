package tapir

import "fmt"

// Issue is a structural finding reported by Validate. Issues are advisory: a
// machine with issues still runs, an unresolved destination simply never
// moves the state pointer.
type Issue struct {
	StateID string
	Message string
}

// String renders the issue as "stateID: message".
func (i Issue) String() string {
	return i.StateID + ": " + i.Message
}

// Validate crawls the state graph from the initial state and reports
// structural problems: transitions whose destination resolves to no
// registered state, states unreachable from the initial state, and the
// absence of any reachable halting state.
func (m *Machine) Validate() []Issue {
	var issues []Issue

	visited := make(map[string]bool)
	queue := []string{m.init.initial.ID()}
	haltReachable := false

	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		if visited[id] {
			continue
		}
		visited[id] = true

		s := m.states[id]
		if s.Action().Halts() {
			haltReachable = true
		}
		for _, t := range s.Transitions() {
			target := t.ToID()
			if _, ok := m.states[target]; !ok {
				issues = append(issues, Issue{
					StateID: id,
					Message: fmt.Sprintf("transition on %q points at unknown state %q", t.ReadSymbol(), target),
				})
				continue
			}
			if !visited[target] {
				queue = append(queue, target)
			}
		}
	}

	for _, s := range m.States() {
		if !visited[s.ID()] {
			issues = append(issues, Issue{
				StateID: s.ID(),
				Message: "unreachable from the initial state",
			})
		}
	}

	if !haltReachable {
		issues = append(issues, Issue{
			StateID: m.init.initial.ID(),
			Message: "no halting state is reachable",
		})
	}

	return issues
}
