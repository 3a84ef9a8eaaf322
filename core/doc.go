// Package core defines the central Graph type for lvlcolor: an undirected
// simple graph with string vertex IDs plus a store of pre-assigned vertex
// colors that the search must never override.
//
// What:
//
//   - Graph holds vertices, undirected edges, and per-vertex color locks.
//   - Adjacency (1-hop) queries: NeighborIDs, Degree, HasEdge.
//   - Derived 2-hop queries: TwoHopIDs returns vertices exactly two hops
//     away, excluding the vertex itself and its direct neighbors.
//   - Constraint queries: PreassignedColor, Preassigned.
//
// Why:
//
//   - Map/region coloring: countries share borders, some colors are fixed.
//   - Frequency assignment: stations within one or two hops must differ.
//   - Register/slot allocation experiments on small interference graphs.
//
// Determinism:
//
//   - Vertices(), Edges(), NeighborIDs() and TwoHopIDs() return
//     lexicographically sorted slices, so iteration order never depends
//     on Go map ordering.
//
// Concurrency:
//
//   - All methods take an internal sync.RWMutex, so a Graph may be built
//     from several goroutines. The coloring engine itself treats the
//     Graph as frozen: once Solve starts, nothing mutates it.
//
// Complexity:
//
//   - AddVertex/AddEdge/Preassign: O(1) amortized.
//   - NeighborIDs: O(d log d); TwoHopIDs: O(d² log d²) for degree d.
//
// Errors:
//
//   - ErrEmptyVertexID: an empty string was used as a vertex ID.
//   - ErrVertexNotFound: a lookup or Preassign referenced a missing vertex.
//   - ErrSelfLoop: AddEdge was called with identical endpoints.
//   - ErrBadColor: Preassign was called with a color below 1.
package core
