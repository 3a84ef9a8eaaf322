// Package coloring - the beam controller and the public Solve entry point.
//
// State machine: Seeded → Iterating → {Converged, Exhausted}.
//
//   - Seeded: the beam holds exactly the greedy initial state.
//   - Iterating: expand every beam state, union with the current beam,
//     deduplicate by assignment, sort by the heuristic, keep the best
//     BeamWidth states, increment the iteration counter.
//   - Converged: a state with zero hard conflicts appeared in the sorted
//     beam - the search stops the same iteration and returns the
//     lowest-scoring such state.
//   - Exhausted: the iteration budget ran out - the lowest-scoring state
//     in the final beam is returned as a best-effort answer.
//
// Exactly one of the two terminal states is always reached; neither is
// an error.
package coloring

import "github.com/katalvlaran/lvlcolor/core"

// Solve runs local beam search over g and returns the best coloring
// found. The search is single-threaded, synchronous and deterministic:
// identical graph and options always produce an identical Result.
//
// Errors: option-domain sentinels from types.go, ErrNilGraph,
// ErrEmptyGraph, ErrColorBeyondCap. Failing to reach zero conflicts is
// NOT an error - inspect Result.Converged and Result.HardConflicts.
//
// Complexity per iteration: O(B·V·K·(d + t)) state constructions plus
// O(P log P) for sorting the candidate pool P.
func Solve(g *core.Graph, opts ...Option) (Result, error) {
	// Stage 1 - build and validate configuration.
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}
	if err := validateOptions(cfg); err != nil {
		return Result{}, err
	}

	// Stage 2 - compile the graph (fail fast on invalid input).
	in, err := newInstance(g, cfg)
	if err != nil {
		return Result{}, err
	}

	// Stage 3 - seed the beam and iterate to a terminal state.
	r := newRunner(in)
	best, converged := r.run()

	// Stage 4 - render the winning state.
	colors := make(map[string]core.Color, in.vertexCount())
	var v int
	for v = 0; v < in.vertexCount(); v++ {
		colors[in.ids[v]] = best.colors[v]
	}

	return Result{
		Colors:        colors,
		Conflicts:     best.conflicts(in),
		HardConflicts: best.hard,
		ColorsUsed:    best.used,
		Iterations:    r.iterations,
		Converged:     converged,
	}, nil
}

// runner holds the mutable loop state of one Solve execution.
type runner struct {
	in         *instance
	palette    int      // fixed by seed; read-only afterwards
	beam       []*state // sorted ascending under stateLess
	iterations int
}

// newRunner seeds the beam with the greedy initial state.
func newRunner(in *instance) *runner {
	s0, palette := seed(in)

	return &runner{
		in:      in,
		palette: palette,
		beam:    []*state{s0},
	}
}

// run drives the loop until Converged or Exhausted and returns the
// result state plus the convergence flag.
func (r *runner) run() (*state, bool) {
	for {
		// Convergence is checked on the freshly sorted beam, so the
		// search halts the same iteration a zero-conflict state appears.
		if best := r.zeroConflict(); best != nil {
			return best, true
		}
		if r.iterations >= r.in.opts.MaxIterations {
			return r.beam[0], false // Exhausted: best-effort answer
		}
		r.iterate()
	}
}

// zeroConflict returns the lowest-scoring beam state with zero hard
// conflicts, or nil if none exists. The beam is sorted, so the first
// match wins.
func (r *runner) zeroConflict() *state {
	for _, s := range r.beam {
		if s.hard == 0 {
			return s
		}
	}

	return nil
}

// iterate performs one beam round: expand, union, dedup, sort, truncate.
func (r *runner) iterate() {
	// Union of the current beam and every expansion. Duplicates within
	// a round collapse: two states with equal keys are identical, so
	// keeping the first occurrence loses nothing.
	pool := make([]*state, 0, len(r.beam)*(1+r.in.vertexCount()*r.palette))
	seen := make(map[string]struct{}, cap(pool))

	var s *state
	for _, s = range r.beam {
		if _, dup := seen[s.key]; dup {
			continue
		}
		seen[s.key] = struct{}{}
		pool = append(pool, s)
	}
	for _, s = range r.beam {
		for _, cand := range expand(r.in, s, r.palette) {
			if _, dup := seen[cand.key]; dup {
				continue
			}
			seen[cand.key] = struct{}{}
			pool = append(pool, cand)
		}
	}

	sortStates(pool)
	if len(pool) > r.in.opts.BeamWidth {
		pool = pool[:r.in.opts.BeamWidth]
	}

	r.beam = pool
	r.iterations++
}
