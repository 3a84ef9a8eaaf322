// Package coloring - state expansion (the search neighborhood).
package coloring

import (
	"sort"

	"github.com/katalvlaran/lvlcolor/core"
)

// expand produces the candidate neighbors of s: for each free vertex,
// one state per alternative palette color. Pre-assigned vertices are
// never touched. The function is pure - identical inputs yield the
// identical candidate list in the identical order (vertices ascending,
// colors ascending).
//
// When MaxCandidates > 0 and the full fan-out would exceed it, only the
// most-conflicted vertices are recolored - the scalability escape hatch
// for large graphs.
//
// Complexity: O(F·K·V) state constructions for F expanded vertices.
func expand(in *instance, s *state, palette int) []*state {
	fanPer := palette - 1
	if fanPer == 0 {
		return nil // single-color palette: no alternative colors exist
	}

	free := make([]int, 0, in.vertexCount())
	var v int
	for v = 0; v < in.vertexCount(); v++ {
		if in.isFree(v) {
			free = append(free, v)
		}
	}

	if max := in.opts.MaxCandidates; max > 0 && len(free)*fanPer > max {
		free = mostConflicted(in, s, free, max/fanPer)
	}

	out := make([]*state, 0, len(free)*fanPer)
	var c int
	for _, v = range free {
		for c = 1; c <= palette; c++ {
			if core.Color(c) == s.colors[v] {
				continue
			}
			out = append(out, s.recolor(in, v, core.Color(c)))
		}
	}

	return out
}

// mostConflicted returns the k free vertices involved in the most hard
// conflicts under s, ties broken by ascending index; the result is
// re-sorted ascending so expansion order stays canonical. k is clamped
// to at least 1 so expansion never silently stalls.
func mostConflicted(in *instance, s *state, free []int, k int) []int {
	if k < 1 {
		k = 1
	}
	if k >= len(free) {
		return free
	}

	clashes := make(map[int]int, len(free))
	var v, u int
	for _, v = range free {
		for _, u = range in.adj[v] {
			if s.colors[u] == s.colors[v] {
				clashes[v]++
			}
		}
	}

	ranked := make([]int, len(free))
	copy(ranked, free)
	sort.SliceStable(ranked, func(a, b int) bool {
		if clashes[ranked[a]] != clashes[ranked[b]] {
			return clashes[ranked[a]] > clashes[ranked[b]]
		}

		return ranked[a] < ranked[b]
	})

	picked := ranked[:k]
	sort.Ints(picked)

	return picked
}
