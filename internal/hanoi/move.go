package hanoi

import "fmt"

// Peg identifies one of the three pegs.
type Peg int

const (
	A Peg = iota
	B
	C
)

// Pegs lists the pegs from left to right.
var Pegs = [3]Peg{A, B, C}

func (p Peg) Valid() bool { return p >= A && p <= C }

func (p Peg) String() string {
	switch p {
	case A:
		return "A"
	case B:
		return "B"
	case C:
		return "C"
	default:
		return fmt.Sprintf("Peg(%d)", int(p))
	}
}

// Move relocates the top disc of From onto To.
type Move struct {
	From Peg
	To   Peg
}

func (m Move) String() string { return m.From.String() + "->" + m.To.String() }

// Mover receives the moves produced by Solve, one call per disc relocation.
type Mover interface {
	Move(src, dst Peg)
}

// MoverFunc adapts a plain function to a Mover.
type MoverFunc func(src, dst Peg)

func (f MoverFunc) Move(src, dst Peg) { f(src, dst) }
