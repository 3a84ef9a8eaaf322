// Package core - types, sentinel errors and the Graph constructor.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates an empty string was provided as a vertex ID.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrSelfLoop indicates AddEdge was called with identical endpoints.
	// Coloring constraints on a self-loop are unsatisfiable, so loops are rejected.
	ErrSelfLoop = errors.New("core: self-loops not allowed")

	// ErrBadColor indicates a color outside the palette domain {1..K}.
	ErrBadColor = errors.New("core: color must be >= 1")
)

// Color identifies one palette entry. Valid colors are 1..K; the zero
// value means "unassigned" and never appears in a completed coloring.
type Color int

// Unassigned is the zero Color, used only transiently while a coloring
// is being constructed.
const Unassigned Color = 0

// Edge represents one undirected edge. Endpoints are stored in normalized
// order (From < To lexicographically) so that Edges() is duplicate-free
// and deterministic.
type Edge struct {
	// From is the lexicographically smaller endpoint ID.
	From string

	// To is the lexicographically larger endpoint ID.
	To string
}

// Graph is an undirected simple graph with pre-assigned color constraints.
//
// It rejects self-loops and silently collapses parallel edges; adjacency
// is kept symmetric by construction. mu guards all three maps.
type Graph struct {
	mu sync.RWMutex // guards vertices, adjacency, preassigned

	vertices    map[string]struct{}            // vertex ID → presence
	adjacency   map[string]map[string]struct{} // vertex ID → neighbor set
	preassigned map[string]Color               // vertex ID → locked color

	edgeCount int // number of distinct undirected edges
}

// NewGraph creates an empty Graph.
// Complexity: O(1).
func NewGraph() *Graph {
	return &Graph{
		vertices:    make(map[string]struct{}),
		adjacency:   make(map[string]map[string]struct{}),
		preassigned: make(map[string]Color),
	}
}
