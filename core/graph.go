// Package core - mutation and 1-hop query methods on Graph.
//
// Determinism: every method returning a slice sorts it lexicographically
// ascending, so callers never observe Go map iteration order.
package core

import "sort"

// AddVertex inserts a vertex with the given ID. Re-adding an existing
// vertex is a no-op.
//
// Errors: ErrEmptyVertexID.
// Complexity: O(1).
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.addVertexLocked(id)

	return nil
}

// addVertexLocked inserts id into vertices and adjacency; caller holds mu.
func (g *Graph) addVertexLocked(id string) {
	if _, ok := g.vertices[id]; ok {
		return
	}
	g.vertices[id] = struct{}{}
	g.adjacency[id] = make(map[string]struct{})
}

// AddEdge inserts the undirected edge {from, to}, creating missing
// endpoints on the fly. Parallel edges collapse silently (simple graph);
// self-loops are rejected because a vertex can never differ in color
// from itself.
//
// Errors: ErrEmptyVertexID, ErrSelfLoop.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string) error {
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	if from == to {
		return ErrSelfLoop
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	// Auto-create endpoints so edge lists can be loaded without a prior
	// vertex pass.
	g.addVertexLocked(from)
	g.addVertexLocked(to)

	if _, ok := g.adjacency[from][to]; ok {
		return nil // duplicate edge: keep the graph simple
	}

	// Symmetric adjacency: record both directions.
	g.adjacency[from][to] = struct{}{}
	g.adjacency[to][from] = struct{}{}
	g.edgeCount++

	return nil
}

// Preassign locks vertex id to color c for the lifetime of every search
// over this graph. The vertex must already exist: constraints that
// reference unknown vertices fail fast rather than silently creating
// degree-zero vertices.
//
// Re-assigning an already locked vertex overwrites the previous lock.
//
// Errors: ErrEmptyVertexID, ErrVertexNotFound, ErrBadColor.
// Complexity: O(1).
func (g *Graph) Preassign(id string, c Color) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	if c < 1 {
		return ErrBadColor
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.vertices[id]; !ok {
		return ErrVertexNotFound
	}
	g.preassigned[id] = c

	return nil
}

// HasVertex reports whether the vertex exists.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// HasEdge reports whether the undirected edge {from, to} exists.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adjacency[from][to]

	return ok
}

// Vertices returns all vertex IDs sorted lexicographically ascending.
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}

// Edges returns every undirected edge exactly once, endpoints normalized
// (From < To), sorted by (From, To) ascending.
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, 0, g.edgeCount)
	for u, nbrs := range g.adjacency {
		for v := range nbrs {
			if u < v { // emit each undirected edge once
				out = append(out, Edge{From: u, To: v})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}

		return out[i].To < out[j].To
	})

	return out
}

// NeighborIDs returns the 1-hop neighbors of id, sorted ascending.
//
// Errors: ErrEmptyVertexID, ErrVertexNotFound.
// Complexity: O(d log d) for degree d.
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	nbrs, ok := g.adjacency[id]
	if !ok {
		return nil, ErrVertexNotFound
	}
	out := make([]string, 0, len(nbrs))
	for v := range nbrs {
		out = append(out, v)
	}
	sort.Strings(out)

	return out, nil
}

// Degree returns the number of 1-hop neighbors of id.
//
// Errors: ErrEmptyVertexID, ErrVertexNotFound.
// Complexity: O(1).
func (g *Graph) Degree(id string) (int, error) {
	if id == "" {
		return 0, ErrEmptyVertexID
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	nbrs, ok := g.adjacency[id]
	if !ok {
		return 0, ErrVertexNotFound
	}

	return len(nbrs), nil
}

// PreassignedColor returns the locked color of id and whether a lock exists.
// Complexity: O(1).
func (g *Graph) PreassignedColor(id string) (Color, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	c, ok := g.preassigned[id]

	return c, ok
}

// Preassigned returns an independent copy of the vertex→color lock map.
// Complexity: O(P) for P locked vertices.
func (g *Graph) Preassigned() map[string]Color {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make(map[string]Color, len(g.preassigned))
	for id, c := range g.preassigned {
		out[id] = c
	}

	return out
}

// VertexCount returns the number of vertices.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// EdgeCount returns the number of distinct undirected edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}
