// Package coloring - compilation of a *core.Graph into an index-based
// search instance.
//
// The instance is the read-only backbone of one Solve run: integer
// vertex indices (derived from sorted IDs, so everything downstream is
// deterministic), dense 1-hop and 2-hop neighbor lists, degrees, the
// greedy seeding order, and per-vertex color locks. States reference an
// instance but never mutate it.
package coloring

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/lvlcolor/core"
)

// instance is the compiled, immutable view of one coloring problem.
type instance struct {
	ids    []string       // index → vertex ID, lexicographically ascending
	adj    [][]int        // index → sorted 1-hop neighbor indices
	two    [][]int        // index → sorted 2-hop neighbor indices
	degree []int          // index → 1-hop degree
	order  []int          // seeding order: descending degree, ties by index asc
	locked []core.Color   // index → pre-assigned color, Unassigned if free
	opts   Options        // validated search parameters
}

// newInstance validates the graph against opts and compiles it.
//
// Errors: ErrNilGraph, ErrEmptyGraph, ErrColorBeyondCap (wrapped with the
// offending vertex), plus core errors surfaced while reading adjacency.
//
// Complexity: O(V·d² + V log V) - dominated by the 2-hop derivation.
func newInstance(g *core.Graph, opts Options) (*instance, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	ids := g.Vertices()
	n := len(ids)
	if n == 0 {
		return nil, ErrEmptyGraph
	}

	index := make(map[string]int, n)
	var i int
	for i = 0; i < n; i++ {
		index[ids[i]] = i
	}

	inst := &instance{
		ids:    ids,
		adj:    make([][]int, n),
		two:    make([][]int, n),
		degree: make([]int, n),
		order:  make([]int, n),
		locked: make([]core.Color, n),
		opts:   opts,
	}

	// Compile adjacency and locks per vertex. NeighborIDs/TwoHopIDs
	// return sorted ID slices; mapping through index keeps the integer
	// lists sorted as well because ids is itself sorted.
	var (
		id   string
		nbrs []string
		err  error
		j    int
	)
	for i, id = range ids {
		nbrs, err = g.NeighborIDs(id)
		if err != nil {
			return nil, fmt.Errorf("coloring: compiling adjacency of %q: %w", id, err)
		}
		inst.adj[i] = make([]int, len(nbrs))
		for j = range nbrs {
			inst.adj[i][j] = index[nbrs[j]]
		}
		inst.degree[i] = len(nbrs)

		nbrs, err = g.TwoHopIDs(id)
		if err != nil {
			return nil, fmt.Errorf("coloring: compiling 2-hop set of %q: %w", id, err)
		}
		inst.two[i] = make([]int, len(nbrs))
		for j = range nbrs {
			inst.two[i][j] = index[nbrs[j]]
		}

		if c, ok := g.PreassignedColor(id); ok {
			if opts.MaxColors > 0 && int(c) > opts.MaxColors {
				return nil, fmt.Errorf("coloring: vertex %q locked to %d: %w", id, c, ErrColorBeyondCap)
			}
			inst.locked[i] = c
		}
	}

	// Seeding order: descending degree, ties broken by ascending index
	// (i.e. ascending ID) to keep the greedy pass reproducible.
	for i = 0; i < n; i++ {
		inst.order[i] = i
	}
	sort.SliceStable(inst.order, func(a, b int) bool {
		u, v := inst.order[a], inst.order[b]
		if inst.degree[u] != inst.degree[v] {
			return inst.degree[u] > inst.degree[v]
		}

		return u < v
	})

	return inst, nil
}

// vertexCount returns the number of vertices in the instance.
func (in *instance) vertexCount() int { return len(in.ids) }

// isFree reports whether vertex v may be recolored by the search.
func (in *instance) isFree(v int) bool { return in.locked[v] == core.Unassigned }
