// Package coloring_test exercises Solve end to end: the canonical
// scenarios (even cycle, triangle under a color cap, forced
// pre-assignment conflicts), determinism, termination, and the
// fail-fast error contract.
package coloring_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlcolor/builder"
	"github.com/katalvlaran/lvlcolor/coloring"
	"github.com/katalvlaran/lvlcolor/core"
)

// requireProper asserts that no edge of g joins two same-colored
// vertices under res.
func requireProper(t *testing.T, g *core.Graph, res coloring.Result) {
	t.Helper()
	for _, e := range g.Edges() {
		require.NotEqual(t, res.Colors[e.From], res.Colors[e.To],
			"edge %s-%s is monochrome", e.From, e.To)
	}
}

// ------------------------------------------------------------------------
// 1. Canonical scenarios.
// ------------------------------------------------------------------------

func TestSolve_FourCycle_TwoColors(t *testing.T) {
	// C4, palette 2, beam 3: a valid 2-coloring with zero hard conflicts.
	g, err := builder.Cycle(4)
	require.NoError(t, err)

	res, err := coloring.Solve(g,
		coloring.WithPaletteSize(2),
		coloring.WithBeamWidth(3),
		coloring.WithMaxIterations(10),
	)
	require.NoError(t, err)

	require.True(t, res.Converged)
	require.Equal(t, 0, res.HardConflicts)
	require.Equal(t, 2, res.ColorsUsed)
	requireProper(t, g, res)

	// With the 2-hop rule silenced the weighted measure is exactly zero.
	res, err = coloring.Solve(g,
		coloring.WithPaletteSize(2),
		coloring.WithBeamWidth(3),
		coloring.WithMaxIterations(10),
		coloring.WithTwoHopWeight(0),
	)
	require.NoError(t, err)
	require.Equal(t, 0.0, res.Conflicts)
}

func TestSolve_Triangle_TwoColorCap_Exhausts(t *testing.T) {
	// K3 cannot be properly 2-colored: the search must exhaust its full
	// budget and report the single unavoidable conflict, using only the
	// two permitted colors.
	g, err := builder.Complete(3)
	require.NoError(t, err)

	res, err := coloring.Solve(g,
		coloring.WithPaletteSize(2),
		coloring.WithMaxColors(2),
		coloring.WithMaxIterations(10),
	)
	require.NoError(t, err)

	require.False(t, res.Converged)
	require.Equal(t, 10, res.Iterations)
	require.Equal(t, 1, res.HardConflicts)
	require.Equal(t, 2, res.ColorsUsed)
}

func TestSolve_PreassignmentForcesConflict(t *testing.T) {
	// A-B with A locked to 1 and a single-color palette: B has nowhere
	// to go, the conflict is irreducible, and A's lock must survive.
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B"))
	require.NoError(t, g.Preassign("A", 1))

	res, err := coloring.Solve(g,
		coloring.WithPaletteSize(1),
		coloring.WithMaxColors(1),
		coloring.WithMaxIterations(25),
	)
	require.NoError(t, err)

	require.False(t, res.Converged)
	require.GreaterOrEqual(t, res.HardConflicts, 1)
	require.Equal(t, core.Color(1), res.Colors["A"])
}

func TestSolve_RepairsLateLockClash(t *testing.T) {
	// Path A-B-C where low-degree A is locked to 1. The greedy seed
	// colors B first (highest degree) with 1, so applying A's lock
	// creates a conflict the beam must then iterate away: B moves to 2,
	// then C returns to 1.
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B"))
	require.NoError(t, g.AddEdge("B", "C"))
	require.NoError(t, g.Preassign("A", 1))

	res, err := coloring.Solve(g,
		coloring.WithPaletteSize(2),
		coloring.WithBeamWidth(3),
		coloring.WithMaxIterations(10),
	)
	require.NoError(t, err)

	require.True(t, res.Converged)
	require.Equal(t, 2, res.Iterations) // two repair moves, then halt
	require.Equal(t, 0, res.HardConflicts)
	require.Equal(t, map[string]core.Color{"A": 1, "B": 2, "C": 1}, res.Colors)
}

func TestSolve_ConflictingPreassignmentsAreReportedNotFatal(t *testing.T) {
	// Two adjacent vertices locked to the same color: never an error,
	// always a persistent conflict in the result.
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B"))
	require.NoError(t, g.Preassign("A", 2))
	require.NoError(t, g.Preassign("B", 2))

	res, err := coloring.Solve(g, coloring.WithMaxIterations(5))
	require.NoError(t, err)

	require.False(t, res.Converged)
	require.GreaterOrEqual(t, res.HardConflicts, 1)
	require.Equal(t, core.Color(2), res.Colors["A"])
	require.Equal(t, core.Color(2), res.Colors["B"])
}

// ------------------------------------------------------------------------
// 2. Cross-cutting properties.
// ------------------------------------------------------------------------

func TestSolve_Deterministic(t *testing.T) {
	// Identical inputs must produce identical results, including on an
	// instance the search cannot fully solve.
	g, err := builder.Cycle(7) // odd cycle: needs three colors
	require.NoError(t, err)

	run := func() coloring.Result {
		res, rerr := coloring.Solve(g,
			coloring.WithPaletteSize(2),
			coloring.WithMaxColors(2),
			coloring.WithBeamWidth(5),
			coloring.WithMaxIterations(15),
		)
		require.NoError(t, rerr)

		return res
	}

	first := run()
	second := run()
	require.Equal(t, first, second)
}

func TestSolve_TerminatesWithinBudget(t *testing.T) {
	g, err := builder.Complete(5)
	require.NoError(t, err)

	res, err := coloring.Solve(g,
		coloring.WithPaletteSize(2),
		coloring.WithMaxColors(3), // infeasible: K5 needs five colors
		coloring.WithMaxIterations(7),
	)
	require.NoError(t, err)

	require.False(t, res.Converged)
	require.LessOrEqual(t, res.Iterations, 7)
	require.GreaterOrEqual(t, res.HardConflicts, 1)
}

func TestSolve_EveryVertexColored(t *testing.T) {
	g, err := builder.Star(8)
	require.NoError(t, err)

	res, err := coloring.Solve(g)
	require.NoError(t, err)

	require.Len(t, res.Colors, g.VertexCount())
	for id, c := range res.Colors {
		require.GreaterOrEqual(t, int(c), 1, "vertex %s has no color", id)
	}
}

func TestSolve_UncappedAlwaysConverges(t *testing.T) {
	// With an uncapped palette the greedy seed alone is proper, so
	// convergence is immediate on any graph.
	g, err := builder.Complete(6)
	require.NoError(t, err)

	res, err := coloring.Solve(g)
	require.NoError(t, err)

	require.True(t, res.Converged)
	require.Equal(t, 0, res.Iterations)
	require.Equal(t, 6, res.ColorsUsed)
	requireProper(t, g, res)
}

func TestSolve_MaxCandidatesStillSearches(t *testing.T) {
	// The fan-out cap changes effort, not correctness: the capped run
	// still terminates and honors every invariant.
	g, err := builder.Cycle(9)
	require.NoError(t, err)

	res, err := coloring.Solve(g,
		coloring.WithPaletteSize(2),
		coloring.WithMaxColors(2),
		coloring.WithMaxIterations(12),
		coloring.WithMaxCandidates(4),
	)
	require.NoError(t, err)

	require.LessOrEqual(t, res.Iterations, 12)
	require.GreaterOrEqual(t, res.HardConflicts, 1) // odd cycle, two colors
}

// ------------------------------------------------------------------------
// 3. Fail-fast error contract.
// ------------------------------------------------------------------------

func TestSolve_NilGraph(t *testing.T) {
	_, err := coloring.Solve(nil)
	require.ErrorIs(t, err, coloring.ErrNilGraph)
}

func TestSolve_EmptyGraph(t *testing.T) {
	_, err := coloring.Solve(core.NewGraph())
	require.ErrorIs(t, err, coloring.ErrEmptyGraph)
}

func TestSolve_OptionDomains(t *testing.T) {
	g, err := builder.Path(2)
	require.NoError(t, err)

	cases := []struct {
		name string
		opt  coloring.Option
		want error
	}{
		{"beam width", coloring.WithBeamWidth(0), coloring.ErrBadBeamWidth},
		{"iterations", coloring.WithMaxIterations(0), coloring.ErrBadIterations},
		{"palette", coloring.WithPaletteSize(0), coloring.ErrBadPaletteSize},
		{"max colors negative", coloring.WithMaxColors(-1), coloring.ErrBadMaxColors},
		{"two-hop weight low", coloring.WithTwoHopWeight(-0.1), coloring.ErrBadTwoHopWeight},
		{"two-hop weight high", coloring.WithTwoHopWeight(1.1), coloring.ErrBadTwoHopWeight},
		{"heuristic weights", coloring.WithHeuristicWeights(-1, 100, 1), coloring.ErrBadHeuristicWeight},
		{"max candidates", coloring.WithMaxCandidates(-2), coloring.ErrBadMaxCandidates},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, serr := coloring.Solve(g, tc.opt)
			require.ErrorIs(t, serr, tc.want)
		})
	}
}

func TestSolve_CapBelowPaletteRejected(t *testing.T) {
	g, err := builder.Path(2)
	require.NoError(t, err)

	_, err = coloring.Solve(g,
		coloring.WithPaletteSize(4),
		coloring.WithMaxColors(2),
	)
	require.ErrorIs(t, err, coloring.ErrBadMaxColors)
}

func TestSolve_LockBeyondCapRejected(t *testing.T) {
	g, err := builder.Path(2)
	require.NoError(t, err)
	require.NoError(t, g.Preassign("v0", 5))

	_, err = coloring.Solve(g, coloring.WithMaxColors(2))
	require.ErrorIs(t, err, coloring.ErrColorBeyondCap)
}
