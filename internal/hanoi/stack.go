package hanoi

// Stack holds the discs of one peg. Items[0] is the bottom disc.
type Stack []int

func (s Stack) Len() int { return len(s) }

func (s *Stack) Push(disc int) {
	*s = append(*s, disc)
}

// Pop removes the top disc. ok is false when the stack is empty.
func (s *Stack) Pop() (int, bool) {
	if len(*s) == 0 {
		return 0, false
	}
	size := len(*s)
	d := (*s)[size-1]
	*s = (*s)[:size-1]
	return d, true
}

func (s Stack) Peek() (int, bool) {
	if len(s) == 0 {
		return 0, false
	}
	return s[len(s)-1], true
}

// Items returns a copy of the discs, bottom first.
func (s Stack) Items() []int {
	out := make([]int, len(s))
	copy(out, s)
	return out
}

func (s *Stack) Clear() { *s = (*s)[:0] }
