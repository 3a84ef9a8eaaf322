// Package core - derived 2-hop adjacency.
package core

import "sort"

// TwoHopIDs returns every vertex exactly two hops away from id: some
// common neighbor connects them, the vertex is not id itself, and it is
// not already a 1-hop neighbor of id. The result is sorted ascending.
//
// The set is derived on each call rather than cached; graphs at
// map-coloring scale make the recomputation cheap, and deriving keeps
// the Graph free of stale caches across mutations.
//
// Errors: ErrEmptyVertexID, ErrVertexNotFound.
// Complexity: O(d² + t log t) for degree d and t two-hop vertices.
func (g *Graph) TwoHopIDs(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	direct, ok := g.adjacency[id]
	if !ok {
		return nil, ErrVertexNotFound
	}

	// Walk neighbors-of-neighbors, filtering id and its direct neighbors.
	seen := make(map[string]struct{})
	for v := range direct {
		for w := range g.adjacency[v] {
			if w == id {
				continue
			}
			if _, isDirect := direct[w]; isDirect {
				continue
			}
			seen[w] = struct{}{}
		}
	}

	out := make([]string, 0, len(seen))
	for w := range seen {
		out = append(out, w)
	}
	sort.Strings(out)

	return out, nil
}
