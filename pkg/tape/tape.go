package tape

import (
	"errors"
	"fmt"
	"strings"
)

// Blank is the symbol implicitly occupying every cell outside the visited
// region. Shifting the head past a bound materializes one cell holding it.
const Blank = "#"

// ErrNegativeShift is returned when a repeated shift is asked to run a
// negative number of times.
var ErrNegativeShift = errors.New("negative shift count")

// Tape is an unbounded two-sided sequence of symbols with a read/write head.
//
// Positions work like an integer number line with the origin at zero; no
// position is out of range, though far-out positions simply read as Blank.
// The zero value is not usable; construct tapes with New or Clone.
type Tape struct {
	// left holds the cells at negative positions: left[i] is position -(i+1).
	left []string
	// right holds the origin and the positive positions: right[i] is
	// position i. It is never empty, which keeps the origin materialized.
	right []string
	// head is the position currently subject to ReadSymbol and WriteSymbol.
	// It always lies inside [LeftBound, RightBound].
	head int
}

// New builds a Tape from its textual encoding: whitespace-separated symbols,
// optionally one of them bracketed as "[sym]" to mark the initial head cell.
// The last bracketed symbol wins and brackets are stripped wherever they
// appear; with no brackets the head starts on the first symbol. The marked
// cell becomes position 0 and the head position is always 0 after New.
//
// An empty (or all-whitespace) encoding yields a tape with a single blank
// origin cell, so every Tape has at least one materialized cell.
func New(text string) *Tape {
	tokens := strings.Fields(text)
	if len(tokens) == 0 {
		return &Tape{right: []string{Blank}}
	}

	origin := 0
	for i, tok := range tokens {
		if len(tok) > 2 && strings.HasPrefix(tok, "[") && strings.HasSuffix(tok, "]") {
			tokens[i] = tok[1 : len(tok)-1]
			origin = i
		}
	}

	t := &Tape{right: append([]string(nil), tokens[origin:]...)}
	for i := origin - 1; i >= 0; i-- {
		t.left = append(t.left, tokens[i])
	}
	return t
}

// Clone returns a deep copy of the tape. The copy shares nothing with the
// original; mutating one never affects the other.
func (t *Tape) Clone() *Tape {
	return &Tape{
		left:  append([]string(nil), t.left...),
		right: append([]string(nil), t.right...),
		head:  t.head,
	}
}

// HeadPosition returns the current head position, negative when the head is
// left of the origin.
func (t *Tape) HeadPosition() int {
	return t.head
}

// LeftBound returns the position of the leftmost materialized cell.
func (t *Tape) LeftBound() int {
	return -len(t.left)
}

// RightBound returns the position of the rightmost materialized cell.
func (t *Tape) RightBound() int {
	return len(t.right) - 1
}

// Size returns the number of materialized cells. A tape is conceptually
// infinite, but only the cells given as input or visited by the head count.
func (t *Tape) Size() int {
	return len(t.left) + len(t.right)
}

// ReadSymbol returns the symbol under the head.
func (t *Tape) ReadSymbol() string {
	if t.head >= 0 {
		return t.right[t.head]
	}
	return t.left[-t.head-1]
}

// WriteSymbol overwrites the cell under the head.
func (t *Tape) WriteSymbol(symbol string) {
	if t.head >= 0 {
		t.right[t.head] = symbol
		return
	}
	t.left[-t.head-1] = symbol
}

// SymbolAt returns the symbol at an arbitrary position. Positions outside
// the visited region read as Blank and are not materialized.
func (t *Tape) SymbolAt(pos int) string {
	if pos < t.LeftBound() || pos > t.RightBound() {
		return Blank
	}
	if pos >= 0 {
		return t.right[pos]
	}
	return t.left[-pos-1]
}

// ShiftLeft moves the head one cell to the left, materializing one blank
// cell if the head walks past the left bound.
func (t *Tape) ShiftLeft() {
	t.head--
	if t.head < t.LeftBound() {
		t.left = append(t.left, Blank)
	}
}

// ShiftRight moves the head one cell to the right, materializing one blank
// cell if the head walks past the right bound.
func (t *Tape) ShiftRight() {
	t.head++
	if t.head > t.RightBound() {
		t.right = append(t.right, Blank)
	}
}

// ShiftLeftN shifts the head left n times. A negative n is rejected with
// ErrNegativeShift and leaves the tape untouched.
func (t *Tape) ShiftLeftN(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeShift, n)
	}
	for i := 0; i < n; i++ {
		t.ShiftLeft()
	}
	return nil
}

// ShiftRightN shifts the head right n times. A negative n is rejected with
// ErrNegativeShift and leaves the tape untouched.
func (t *Tape) ShiftRightN(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeShift, n)
	}
	for i := 0; i < n; i++ {
		t.ShiftRight()
	}
	return nil
}

// String renders every materialized cell in position order, space-separated,
// bracketing the cell the head currently occupies. The output parses back
// through New into an equivalent tape.
func (t *Tape) String() string {
	var sb strings.Builder
	for pos := t.LeftBound(); pos <= t.RightBound(); pos++ {
		if pos > t.LeftBound() {
			sb.WriteByte(' ')
		}
		if pos == t.head {
			sb.WriteByte('[')
			sb.WriteString(t.SymbolAt(pos))
			sb.WriteByte(']')
		} else {
			sb.WriteString(t.SymbolAt(pos))
		}
	}
	return sb.String()
}
