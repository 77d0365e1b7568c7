// Package walk generates discrete random walks in arbitrary dimension.
//
// An [Engine] owns a starting [Position], a step count, a move set and a
// weight distribution over the moves. Each step draws one [Move] by weighted
// sampling with replacement and adds it to the running position:
//
//   - [Engine.GenerateStep]: lazy, single-use stream of positions
//   - [Engine.Walk]: the full [Path] for one simulation
//   - [Engine.Path]: the default path computed at construction
//
// # Example
//
//	eng, err := walk.New(walk.WithStart(walk.Position{0, 0}), walk.WithSteps(500))
//	if err != nil {
//		return err
//	}
//	biased, _ := eng.Walk([]float64{4, 1, 1, 1})
//
// # Randomness
//
// Engines draw from the process-wide math/rand/v2 generator unless a
// generator is supplied with [WithSource]. The engine never stores a seed.
package walk
