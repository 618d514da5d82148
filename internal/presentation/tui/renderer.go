package tui

import (
	"fmt"
	"strings"

	"github.com/muesli/termenv"
	"github.com/tapirlabs/tapir"
	"github.com/tapirlabs/tapir/pkg/tape"
)

// RenderTape renders every materialized cell in position order, highlighting
// the cell under the head. On terminals without color support the styling
// degrades to the plain bracketed form.
func RenderTape(tp *tape.Tape) string {
	p := termenv.ColorProfile()

	var cells []string
	for pos := tp.LeftBound(); pos <= tp.RightBound(); pos++ {
		sym := tp.SymbolAt(pos)
		if pos == tp.HeadPosition() {
			head := termenv.String("[" + sym + "]").Foreground(p.Color("#facc15")).Bold()
			cells = append(cells, head.String())
			continue
		}
		cells = append(cells, sym)
	}
	return strings.Join(cells, " ")
}

// RenderStatus renders a one-line run summary: step counter, current state
// and the halted marker.
func RenderStatus(m *tapir.Machine) string {
	p := termenv.ColorProfile()

	status := termenv.String("running").Foreground(p.Color("#4ade80")).String()
	if m.IsHalted() {
		status = termenv.String("halted").Foreground(p.Color("#f87171")).Bold().String()
	}
	return fmt.Sprintf("step %d  state %s  %s", m.StepNumber(), m.CurrentState(), status)
}
