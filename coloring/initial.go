// Package coloring - the greedy initial-state builder.
package coloring

import "github.com/katalvlaran/lvlcolor/core"

// seed constructs the single starting state and fixes the palette size
// for the rest of the run.
//
// Algorithm: visit vertices in descending-degree order (ties by ID).
// Pre-assigned vertices take their locked color verbatim. A free vertex
// takes the lowest palette color not held by any already-colored 1-hop
// neighbor, preferring colors also unused by colored 2-hop neighbors
// (the 2-hop rule deprioritizes, it never forbids). When every palette
// color is 1-hop blocked the palette grows by one - unless MaxColors
// caps it, in which case the vertex takes the least-conflicting color
// and the clash surfaces in the state's conflict count.
//
// The returned palette is read-only for the rest of the run: expansion
// recolors within {1..palette} and never grows it.
//
// Complexity: O(V·(d + t + K)) for degree d, 2-hop size t, palette K.
func seed(in *instance) (*state, int) {
	n := in.vertexCount()
	colors := make([]core.Color, n)

	// The palette must span every locked color from the start, otherwise
	// expansion could never recolor around a high locked color.
	palette := in.opts.PaletteSize
	var v int
	for v = 0; v < n; v++ {
		if int(in.locked[v]) > palette {
			palette = int(in.locked[v])
		}
	}

	var (
		u      int
		c      int
		chosen core.Color
	)
	forbidden := make(map[core.Color]bool) // colors of colored 1-hop neighbors
	shunned := make(map[core.Color]bool)   // colors of colored 2-hop neighbors

	for _, v = range in.order {
		if !in.isFree(v) {
			colors[v] = in.locked[v] // copied verbatim, never chosen
			continue
		}

		clear(forbidden)
		clear(shunned)
		for _, u = range in.adj[v] {
			if colors[u] != core.Unassigned {
				forbidden[colors[u]] = true
			}
		}
		for _, u = range in.two[v] {
			if colors[u] != core.Unassigned {
				shunned[colors[u]] = true
			}
		}

		// Pass 1: lowest color clean at both 1-hop and 2-hop distance.
		chosen = core.Unassigned
		for c = 1; c <= palette; c++ {
			if !forbidden[core.Color(c)] && !shunned[core.Color(c)] {
				chosen = core.Color(c)
				break
			}
		}
		// Pass 2: lowest color satisfying the hard 1-hop rule only.
		if chosen == core.Unassigned {
			for c = 1; c <= palette; c++ {
				if !forbidden[core.Color(c)] {
					chosen = core.Color(c)
					break
				}
			}
		}
		// Pass 3: every palette color is 1-hop blocked. Grow if allowed,
		// otherwise settle for the least-conflicting color.
		if chosen == core.Unassigned {
			if in.opts.MaxColors == 0 || palette < in.opts.MaxColors {
				palette++
				chosen = core.Color(palette)
			} else {
				chosen = leastConflicting(in, colors, v, palette)
			}
		}

		colors[v] = chosen
	}

	return evaluate(in, colors), palette
}

// leastConflicting returns the palette color held by the fewest
// already-colored 1-hop neighbors of v, ties broken by lowest color.
// Used only when the capped palette leaves no conflict-free choice.
func leastConflicting(in *instance, colors []core.Color, v, palette int) core.Color {
	best := core.Color(1)
	bestClashes := int(^uint(0) >> 1) // MaxInt

	var (
		c       int
		u       int
		clashes int
	)
	for c = 1; c <= palette; c++ {
		clashes = 0
		for _, u = range in.adj[v] {
			if colors[u] == core.Color(c) {
				clashes++
			}
		}
		if clashes < bestClashes {
			bestClashes = clashes
			best = core.Color(c)
		}
	}

	return best
}
