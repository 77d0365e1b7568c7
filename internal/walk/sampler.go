package walk

import (
	"math"
	"math/rand/v2"
	"sort"
)

// Source supplies uniform variates in [0, 1). *rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

type globalSource struct{}

func (globalSource) Float64() float64 { return rand.Float64() }

// sampler draws indices with probability proportional to their weight.
// Weights are scaled by their maximum so the cumulative total stays finite.
type sampler struct {
	cum   []float64
	total float64
	last  int
}

func newSampler(weights []float64) *sampler {
	peak := 0.0
	for _, w := range weights {
		peak = math.Max(peak, w)
	}
	if peak <= 0 {
		peak = 1
	}

	cum := make([]float64, len(weights))
	total := 0.0
	last := 0
	for i, w := range weights {
		total += w / peak
		cum[i] = total
		if w > 0 {
			last = i
		}
	}
	return &sampler{cum: cum, total: total, last: last}
}

// draw returns the first index whose cumulative weight exceeds a uniform
// variate scaled to the total. Zero-weight entries are never selected.
func (s *sampler) draw(src Source) int {
	x := src.Float64() * s.total
	i := sort.Search(len(s.cum), func(i int) bool { return s.cum[i] > x })
	if i > s.last {
		i = s.last
	}
	return i
}

// drawN draws k independent indices (sampling with replacement).
func (s *sampler) drawN(src Source, k int) []int {
	idx := make([]int, k)
	for i := range idx {
		idx[i] = s.draw(src)
	}
	return idx
}

func validateWeights(weights []float64, moves int) error {
	if len(weights) != moves {
		return configErr("weights", "got %d weights for %d moves", len(weights), moves)
	}
	total := 0.0
	for i, w := range weights {
		if math.IsNaN(w) || math.IsInf(w, 0) {
			return configErr("weights", "weight %d is not finite", i)
		}
		if w < 0 {
			return configErr("weights", "weight %d is negative (%g)", i, w)
		}
		total += w
	}
	if total <= 0 {
		return configErr("weights", "weights sum to zero")
	}
	return nil
}
