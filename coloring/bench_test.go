package coloring_test

import (
	"testing"

	"github.com/katalvlaran/lvlcolor/builder"
	"github.com/katalvlaran/lvlcolor/coloring"
)

// BenchmarkSolve_EvenCycle measures the fast path: the greedy seed
// already 2-colors an even cycle, so the beam loop never runs.
func BenchmarkSolve_EvenCycle(b *testing.B) {
	g, err := builder.Cycle(256)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := coloring.Solve(g, coloring.WithPaletteSize(2)); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkSolve_OddCycleCapped measures the exhaustion path: an odd
// cycle under a 2-color cap never reaches zero conflicts, so every
// iteration of the budget is spent expanding and pruning the beam.
func BenchmarkSolve_OddCycleCapped(b *testing.B) {
	g, err := builder.Cycle(33)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, err := coloring.Solve(g,
			coloring.WithPaletteSize(2),
			coloring.WithMaxColors(2),
			coloring.WithMaxIterations(20),
		)
		if err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkSolve_CompleteCapped stresses recolor delta-updates: a dense
// graph under a tight cap keeps many conflicting candidates in play.
func BenchmarkSolve_CompleteCapped(b *testing.B) {
	g, err := builder.Complete(24)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, err := coloring.Solve(g,
			coloring.WithPaletteSize(4),
			coloring.WithMaxColors(4),
			coloring.WithMaxIterations(15),
			coloring.WithMaxCandidates(128),
		)
		if err != nil {
			b.Fatal(err)
		}
	}
}
