package hanoi

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownPeg      = errors.New("unknown peg")
	ErrSamePeg         = errors.New("source and destination are the same peg")
	ErrEmptyPeg        = errors.New("source peg is empty")
	ErrLargerOnSmaller = errors.New("larger disc on smaller disc")
)

// MoveEvent reports a move applied to a Tower.
type MoveEvent struct {
	Move  Move
	Disc  int
	Count int
}

// Observer is notified after every applied move and every reset.
type Observer interface {
	Moved(ev MoveEvent)
	Reset(discs int)
}

// Tower is the puzzle state: three pegs of discs and a move counter.
// Disc 0 is the largest; a disc may only rest on a disc with a smaller index.
type Tower struct {
	pegs      [3]Stack
	discs     int
	count     int
	observers []Observer
}

func NewTower(observers ...Observer) *Tower {
	return &Tower{observers: observers}
}

// Observe adds an observer.
func (t *Tower) Observe(o Observer) {
	t.observers = append(t.observers, o)
}

// Reset clears all pegs and stacks discs 0..n-1 on peg A. Negative n is
// treated as zero.
func (t *Tower) Reset(n int) {
	n = max(n, 0)
	for i := range t.pegs {
		t.pegs[i].Clear()
	}
	for d := range n {
		t.pegs[A].Push(d)
	}
	t.discs = n
	t.count = 0
	for _, o := range t.observers {
		o.Reset(n)
	}
}

// Apply moves the top disc of m.From onto m.To after checking the rules.
func (t *Tower) Apply(m Move) error {
	if !m.From.Valid() || !m.To.Valid() {
		return fmt.Errorf("move %v: %w", m, ErrUnknownPeg)
	}
	if m.From == m.To {
		return fmt.Errorf("move %v: %w", m, ErrSamePeg)
	}
	disc, ok := t.pegs[m.From].Peek()
	if !ok {
		return fmt.Errorf("move %v: %w", m, ErrEmptyPeg)
	}
	if top, ok := t.pegs[m.To].Peek(); ok && top > disc {
		return fmt.Errorf("move %v: disc %d onto disc %d: %w", m, disc, top, ErrLargerOnSmaller)
	}
	t.pegs[m.From].Pop()
	t.pegs[m.To].Push(disc)
	t.count++

	ev := MoveEvent{Move: m, Disc: disc, Count: t.count}
	for _, o := range t.observers {
		o.Moved(ev)
	}
	return nil
}

// Move makes Tower a Mover. It panics on an illegal move, which Solve never
// produces for a freshly reset tower.
func (t *Tower) Move(src, dst Peg) {
	if err := t.Apply(Move{From: src, To: dst}); err != nil {
		panic(err)
	}
}

func (t *Tower) Count() int { return t.count }
func (t *Tower) Discs() int { return t.discs }

// Peg returns the discs on p, bottom first.
func (t *Tower) Peg(p Peg) []int {
	if !p.Valid() {
		return nil
	}
	return t.pegs[p].Items()
}

// Top returns the top disc of p.
func (t *Tower) Top(p Peg) (int, bool) {
	if !p.Valid() {
		return 0, false
	}
	return t.pegs[p].Peek()
}

// Solved reports whether every disc sits on dst.
func (t *Tower) Solved(dst Peg) bool {
	return dst.Valid() && t.pegs[dst].Len() == t.discs
}
