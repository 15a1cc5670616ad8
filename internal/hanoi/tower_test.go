package hanoi

import (
	"errors"
	"reflect"
	"testing"
)

type recorder struct {
	events []MoveEvent
	resets []int
}

func (r *recorder) Moved(ev MoveEvent) { r.events = append(r.events, ev) }
func (r *recorder) Reset(discs int) { r.resets = append(r.resets, discs) }

func TestTowerReset(t *testing.T) {
	rec := &recorder{}
	tw := NewTower(rec)
	tw.Reset(4)
	if got := tw.Peg(A); !reflect.DeepEqual(got, []int{0, 1, 2, 3}) {
		t.Fatalf("peg A = %v", got)
	}
	tw.Move(A, B)
	tw.Reset(2)
	if tw.Count() != 0 || tw.Discs() != 2 {
		t.Fatalf("count=%d discs=%d after reset", tw.Count(), tw.Discs())
	}
	if len(tw.Peg(B)) != 0 || len(tw.Peg(C)) != 0 {
		t.Fatal("reset left discs on B or C")
	}
	if !reflect.DeepEqual(rec.resets, []int{4, 2}) {
		t.Fatalf("resets = %v", rec.resets)
	}

	tw.Reset(-1)
	if tw.Discs() != 0 || !tw.Solved(C) {
		t.Fatal("negative reset should leave an empty, solved tower")
	}
}

func TestTowerApplyErrors(t *testing.T) {
	cases := []struct {
		name  string
		setup []Move
		move  Move
		want  error
	}{
		{"unknown peg", nil, Move{A, Peg(7)}, ErrUnknownPeg},
		{"same peg", nil, Move{A, A}, ErrSamePeg},
		{"empty source", nil, Move{B, C}, ErrEmptyPeg},
		{"larger on smaller", []Move{{A, B}}, Move{A, B}, ErrLargerOnSmaller},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tw := NewTower()
			tw.Reset(3)
			for _, m := range tc.setup {
				if err := tw.Apply(m); err != nil {
					t.Fatalf("setup %v: %v", m, err)
				}
			}
			before := tw.Count()
			err := tw.Apply(tc.move)
			if !errors.Is(err, tc.want) {
				t.Fatalf("Apply(%v) err = %v, want %v", tc.move, err, tc.want)
			}
			if tw.Count() != before {
				t.Fatal("failed move changed the counter")
			}
		})
	}
}

func TestTowerReportsMoves(t *testing.T) {
	rec := &recorder{}
	tw := NewTower()
	tw.Observe(rec)
	tw.Reset(2)
	Solve(2, A, C, B, tw)

	want := []MoveEvent{
		{Move: Move{A, B}, Disc: 1, Count: 1},
		{Move: Move{A, C}, Disc: 0, Count: 2},
		{Move: Move{B, C}, Disc: 1, Count: 3},
	}
	if !reflect.DeepEqual(rec.events, want) {
		t.Fatalf("events = %v, want %v", rec.events, want)
	}
	if !tw.Solved(C) {
		t.Fatal("tower not solved")
	}
}

func TestTowerMovePanicsOnIllegalMove(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected panic")
		}
	}()
	tw := NewTower()
	tw.Reset(1)
	tw.Move(B, C)
}

func TestStack(t *testing.T) {
	var s Stack
	if _, ok := s.Pop(); ok {
		t.Fatal("pop on empty stack succeeded")
	}
	s.Push(0)
	s.Push(1)
	if d, _ := s.Peek(); d != 1 {
		t.Fatalf("peek = %d", d)
	}
	items := s.Items()
	items[0] = 9
	if d, _ := s.Pop(); d != 1 || s.Len() != 1 || s[0] != 0 {
		t.Fatalf("stack corrupted: %v", s)
	}
}
