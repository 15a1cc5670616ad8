package hanoi

// Solve emits the minimal move sequence that carries n discs from src to dst,
// using aux as the spare peg. Exactly 2^n - 1 moves are issued; n <= 0 issues
// none.
func Solve(n int, src, dst, aux Peg, m Mover) {
	if n <= 0 {
		return
	}
	if n == 1 {
		m.Move(src, dst)
		return
	}
	Solve(n-1, src, aux, dst, m)
	m.Move(src, dst)
	Solve(n-1, aux, dst, src, m)
}

// Plan records the moves of Solve into a slice.
func Plan(n int, src, dst, aux Peg) []Move {
	moves := make([]Move, 0, int(MoveCount(min(n, 20))))
	Solve(n, src, dst, aux, MoverFunc(func(from, to Peg) {
		moves = append(moves, Move{From: from, To: to})
	}))
	return moves
}

// MoveCount returns 2^n - 1, the length of the minimal solution.
func MoveCount(n int) uint64 {
	if n <= 0 {
		return 0
	}
	if n >= 64 {
		return ^uint64(0)
	}
	return 1<<uint(n) - 1
}
