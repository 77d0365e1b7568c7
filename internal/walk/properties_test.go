package walk_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/walksim/internal/walk"
)

var _ = Describe("Engine", func() {
	Describe("construction", func() {
		It("derives 2N unit moves and uniform weights", func() {
			eng, err := walk.New(walk.WithStart(walk.Position{0, 0, 0}))
			Expect(err).NotTo(HaveOccurred())
			Expect(eng.Moves()).To(HaveLen(6))

			w := eng.Weights()
			Expect(w).To(HaveLen(6))
			sum := 0.0
			for _, v := range w {
				Expect(v).To(BeNumerically("~", 1.0/6, 1e-12))
				sum += v
			}
			Expect(sum).To(BeNumerically("~", 1, 1e-12))
		})

		It("computes a default path once", func() {
			eng, err := walk.New(walk.WithSteps(25))
			Expect(err).NotTo(HaveOccurred())
			Expect(eng.Path()).To(HaveLen(25))
		})

		It("rejects a move set and distribution of different lengths", func() {
			_, err := walk.New(
				walk.WithMoves([]walk.Move{{1, 0}, {-1, 0}, {0, 1}}),
				walk.WithWeights([]float64{1, 1, 1, 1}),
			)
			Expect(err).To(MatchError(walk.ErrConfiguration))
		})

		It("rejects moves whose dimension differs from the start", func() {
			_, err := walk.New(
				walk.WithStart(walk.Position{0}),
				walk.WithMoves([]walk.Move{{1, 1}}),
			)
			Expect(err).To(MatchError(walk.ErrConfiguration))
		})
	})

	Describe("Walk", func() {
		DescribeTable("preserves length and dimension",
			func(start walk.Position, steps int) {
				eng, err := walk.New(walk.WithStart(start), walk.WithSteps(steps))
				Expect(err).NotTo(HaveOccurred())

				path, err := eng.Walk(nil)
				Expect(err).NotTo(HaveOccurred())
				Expect(path).To(HaveLen(steps))
				for _, pos := range path {
					Expect(pos).To(HaveLen(len(start)))
				}
			},
			Entry("1-D", walk.Position{0}, 10),
			Entry("2-D", walk.Position{3, -3}, 100),
			Entry("3-D", walk.Position{0, 0, 0}, 64),
			Entry("4-D", walk.Position{0, 0, 0, 0}, 5),
			Entry("no steps", walk.Position{0, 0}, 0),
		)

		It("follows a degenerate distribution exactly", func() {
			eng, err := walk.New(
				walk.WithStart(walk.Position{0, 0}),
				walk.WithSteps(4),
				walk.WithMoves([]walk.Move{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}),
				walk.WithWeights([]float64{1, 0, 0, 0}),
			)
			Expect(err).NotTo(HaveOccurred())

			first, err := eng.Walk(nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(first).To(Equal(walk.Path{{1, 0}, {2, 0}, {3, 0}, {4, 0}}))

			second, err := eng.Walk(nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(second).To(Equal(first))
		})

		It("walks a weighted 1-D move set", func() {
			eng, err := walk.New(
				walk.WithStart(walk.Position{5}),
				walk.WithSteps(1),
				walk.WithMoves([]walk.Move{{2}, {-2}}),
				walk.WithWeights([]float64{0, 1}),
			)
			Expect(err).NotTo(HaveOccurred())
			Expect(eng.Walk(nil)).To(Equal(walk.Path{{3}}))
		})
	})
})
