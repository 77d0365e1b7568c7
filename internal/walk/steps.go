package walk

import "iter"

// Steps is a finite, single-use stream of positions. Once consumed it
// cannot be replayed; call Engine.GenerateStep again for a fresh stream.
type Steps struct {
	current Position
	moves   []Move
	drawn   []int
	next    int
}

func newSteps(start Position, moves []Move, drawn []int) *Steps {
	return &Steps{
		current: start.Clone(),
		moves:   moves,
		drawn:   drawn,
	}
}

// Next applies the next drawn move and returns the new position. The second
// result is false once the stream is exhausted.
func (s *Steps) Next() (Position, bool) {
	if s.next >= len(s.drawn) {
		return nil, false
	}
	s.current = s.current.Add(s.moves[s.drawn[s.next]])
	s.next++
	return s.current.Clone(), true
}

// Remaining reports how many positions are still to be yielded.
func (s *Steps) Remaining() int { return len(s.drawn) - s.next }

// All adapts the stream for range-over-func. Breaking out of the loop early
// leaves the remaining positions available to Next.
func (s *Steps) All() iter.Seq[Position] {
	return func(yield func(Position) bool) {
		for {
			pos, ok := s.Next()
			if !ok || !yield(pos) {
				return
			}
		}
	}
}
