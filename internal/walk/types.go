package walk

type Position []float64

func (p Position) Clone() Position {
	c := make(Position, len(p))
	copy(c, p)
	return c
}

// Add returns p displaced by m. Both must have the same dimensionality.
func (p Position) Add(m Move) Position {
	result := make(Position, len(p))
	for i := range p {
		result[i] = p[i] + m[i]
	}
	return result
}

type Move []float64

func (m Move) Clone() Move {
	c := make(Move, len(m))
	copy(c, m)
	return c
}

// Path holds the positions visited after each step. The starting position
// is not part of the path.
type Path []Position

func (p Path) Clone() Path {
	c := make(Path, len(p))
	for i, pos := range p {
		c[i] = pos.Clone()
	}
	return c
}

// Dim returns the dimensionality of the first position, or 0 for an empty
// path.
func (p Path) Dim() int {
	if len(p) == 0 {
		return 0
	}
	return len(p[0])
}

// Last returns the final position, or nil for an empty path.
func (p Path) Last() Position {
	if len(p) == 0 {
		return nil
	}
	return p[len(p)-1]
}

// DefaultMoves returns the 2n unit moves of an n-dimensional lattice. Move
// 2i steps +1 along axis i and move 2i+1 steps -1 along it.
func DefaultMoves(n int) []Move {
	moves := make([]Move, 2*n)
	for i := 0; i < n; i++ {
		moves[2*i] = make(Move, n)
		moves[2*i+1] = make(Move, n)
		moves[2*i][i] = 1
		moves[2*i+1][i] = -1
	}
	return moves
}

// UniformWeights returns n weights of 1/n.
func UniformWeights(n int) []float64 {
	w := make([]float64, n)
	for i := range w {
		w[i] = 1 / float64(n)
	}
	return w
}

func cloneMoves(moves []Move) []Move {
	c := make([]Move, len(moves))
	for i, m := range moves {
		c[i] = m.Clone()
	}
	return c
}

func cloneWeights(w []float64) []float64 {
	c := make([]float64, len(w))
	copy(c, w)
	return c
}
