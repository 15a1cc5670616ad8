package hanoi

import (
	"reflect"
	"testing"
)

func TestSolveMoveCount(t *testing.T) {
	for n := -2; n <= 12; n++ {
		calls := 0
		Solve(n, A, C, B, MoverFunc(func(src, dst Peg) { calls++ }))
		if uint64(calls) != MoveCount(n) {
			t.Fatalf("n=%d: got %d moves, want %d", n, calls, MoveCount(n))
		}
		if n > 0 && calls != 1<<n-1 {
			t.Fatalf("n=%d: got %d moves, want 2^n-1", n, calls)
		}
	}
}

func TestPlanScenarios(t *testing.T) {
	cases := []struct {
		name string
		n    int
		want []Move
	}{
		{"zero", 0, []Move{}},
		{"negative", -3, []Move{}},
		{"one", 1, []Move{{A, C}}},
		{"two", 2, []Move{{A, B}, {A, C}, {B, C}}},
		{"three", 3, []Move{{A, C}, {A, B}, {C, B}, {A, C}, {B, A}, {B, C}, {A, C}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Plan(tc.n, A, C, B)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("Plan(%d) = %v, want %v", tc.n, got, tc.want)
			}
		})
	}
}

func TestPlanDeterministic(t *testing.T) {
	first := Plan(8, A, C, B)
	second := Plan(8, A, C, B)
	if !reflect.DeepEqual(first, second) {
		t.Fatal("two plans for the same input differ")
	}
}

func TestPlanRespectsPegRoles(t *testing.T) {
	// Solving onto B with C as spare must end with every disc on B.
	tw := NewTower()
	tw.Reset(5)
	for _, m := range Plan(5, A, B, C) {
		if err := tw.Apply(m); err != nil {
			t.Fatalf("apply %v: %v", m, err)
		}
	}
	if !tw.Solved(B) {
		t.Fatalf("discs not on B: A=%v B=%v C=%v", tw.Peg(A), tw.Peg(B), tw.Peg(C))
	}
}

func TestReplayKeepsOrder(t *testing.T) {
	for n := 1; n <= 10; n++ {
		tw := NewTower()
		tw.Reset(n)
		// Apply rejects a larger disc on a smaller one, so a clean replay
		// proves the ordering rule held after every move.
		Solve(n, A, C, B, MoverFunc(func(src, dst Peg) {
			if err := tw.Apply(Move{From: src, To: dst}); err != nil {
				t.Fatalf("n=%d: %v", n, err)
			}
		}))
		if len(tw.Peg(A)) != 0 || len(tw.Peg(B)) != 0 {
			t.Fatalf("n=%d: source or spare not empty: A=%v B=%v", n, tw.Peg(A), tw.Peg(B))
		}
		got := tw.Peg(C)
		for i, d := range got {
			if d != i {
				t.Fatalf("n=%d: destination out of order: %v", n, got)
			}
		}
		if len(got) != n {
			t.Fatalf("n=%d: destination holds %d discs", n, len(got))
		}
	}
}

func TestMoveCountLarge(t *testing.T) {
	if got := MoveCount(63); got != 1<<63-1 {
		t.Fatalf("MoveCount(63) = %d", got)
	}
	if got := MoveCount(64); got != ^uint64(0) {
		t.Fatalf("MoveCount(64) = %d", got)
	}
}
