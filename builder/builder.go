// Package builder provides deterministic graph shape generators for
// lvlcolor: canonical topologies used in coloring tests, benchmarks and
// examples.
//
// Contract (all constructors):
//   - Vertex IDs are "v0".."v{n-1}", added in ascending index order.
//   - Edges are emitted in a fixed order, so repeated builds are
//     byte-for-byte identical.
//   - Only sentinel errors are returned; constructors never panic.
//
// Chromatic facts worth remembering when writing tests:
//   - Path P_n and even cycle C_2k are 2-colorable.
//   - Odd cycle C_2k+1 needs 3 colors.
//   - Complete K_n needs exactly n colors.
//   - Star S_n is 2-colorable, but its leaves form one big 2-hop clique.
package builder

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvlcolor/core"
)

// ErrTooFewVertices indicates a constructor was asked for fewer vertices
// than its shape requires.
var ErrTooFewVertices = errors.New("builder: too few vertices for shape")

// Minimum vertex counts per shape (no magic numbers in validation).
const (
	minPathNodes     = 2
	minCycleNodes    = 3
	minCompleteNodes = 2
	minStarNodes     = 3
)

// vertexID returns the canonical ID for index i.
func vertexID(i int) string {
	return fmt.Sprintf("v%d", i)
}

// Path builds the path graph P_n: v0—v1—…—v{n-1}.
//
// Errors: ErrTooFewVertices when n < 2.
// Complexity: O(n).
func Path(n int) (*core.Graph, error) {
	if n < minPathNodes {
		return nil, fmt.Errorf("path: n=%d < min=%d: %w", n, minPathNodes, ErrTooFewVertices)
	}

	g := core.NewGraph()
	var i int
	for i = 0; i < n-1; i++ {
		if err := g.AddEdge(vertexID(i), vertexID(i+1)); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// Cycle builds the cycle graph C_n: v0—v1—…—v{n-1}—v0.
//
// Errors: ErrTooFewVertices when n < 3.
// Complexity: O(n).
func Cycle(n int) (*core.Graph, error) {
	if n < minCycleNodes {
		return nil, fmt.Errorf("cycle: n=%d < min=%d: %w", n, minCycleNodes, ErrTooFewVertices)
	}

	g := core.NewGraph()
	var i int
	for i = 0; i < n; i++ {
		if err := g.AddEdge(vertexID(i), vertexID((i+1)%n)); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// Complete builds the complete graph K_n: every vertex pair is adjacent.
//
// Errors: ErrTooFewVertices when n < 2.
// Complexity: O(n²).
func Complete(n int) (*core.Graph, error) {
	if n < minCompleteNodes {
		return nil, fmt.Errorf("complete: n=%d < min=%d: %w", n, minCompleteNodes, ErrTooFewVertices)
	}

	g := core.NewGraph()
	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if err := g.AddEdge(vertexID(i), vertexID(j)); err != nil {
				return nil, err
			}
		}
	}

	return g, nil
}

// Star builds the star graph S_n: hub v0 adjacent to n-1 leaves.
//
// Errors: ErrTooFewVertices when n < 3.
// Complexity: O(n).
func Star(n int) (*core.Graph, error) {
	if n < minStarNodes {
		return nil, fmt.Errorf("star: n=%d < min=%d: %w", n, minStarNodes, ErrTooFewVertices)
	}

	g := core.NewGraph()
	var i int
	for i = 1; i < n; i++ {
		if err := g.AddEdge(vertexID(0), vertexID(i)); err != nil {
			return nil, err
		}
	}

	return g, nil
}
