// Package coloring implements constraint-guided local beam search for
// graph vertex coloring.
//
// What:
//
//   - Solve takes a *core.Graph (adjacency + pre-assigned color locks)
//     and returns one complete coloring: every vertex gets a color from
//     the palette {1..K}, pre-assigned vertices keep their locked color.
//   - Hard constraint: 1-hop neighbors should differ in color; every
//     violating edge counts as one conflict.
//   - Soft constraint: 2-hop neighbors sharing a color count as a
//     fractional conflict, scaled by a configurable weight in [0,1].
//   - Secondary objectives: use few distinct colors, and use them evenly.
//
// How:
//
//   - Seed: a greedy pass over vertices in descending-degree order picks
//     the lowest palette color not used by colored 1-hop neighbors,
//     preferring colors unused at 2-hop distance, growing the palette
//     only when forced (and permitted by the color cap).
//   - Iterate: each beam state is expanded by recoloring one free vertex
//     at a time; the union of beam and candidates is deduplicated,
//     sorted by the heuristic, and truncated back to the beam width.
//   - Stop: the moment a state with zero hard conflicts appears
//     (Converged), or when the iteration budget runs out (Exhausted).
//     Exhaustion is an expected outcome, never an error - inspect
//     Result.Converged.
//
// Heuristic:
//
//	score = Wc·(hard + w2·soft) + Wk·distinctColors + Wb·balancePenalty
//
//	with Wc dominant by default (1000/100/1, mirroring classical
//	penalty stacking). Ties break on hard conflicts, then distinct
//	colors, then a lexicographic key over the assignment, so beam
//	membership is reproducible across runs and platforms.
//
// Determinism:
//
//   - No randomness anywhere; same graph + options ⇒ same Result.
//   - All internal orders derive from sorted vertex IDs.
//
// Complexity (V vertices, E edges, K palette colors, B beam width):
//
//   - Seed: O(V·(d + d²)) for degree d (1-hop + 2-hop scans).
//   - One iteration: O(B·V·K·(d + t)) state constructions, where t is
//     the 2-hop neighborhood size; WithMaxCandidates bounds the fan-out
//     by expanding only the most-conflicted vertices.
//
// Errors (fail fast, before any search state is built):
//
//   - ErrNilGraph, ErrEmptyGraph: unusable input graph.
//   - ErrBadBeamWidth, ErrBadIterations, ErrBadPaletteSize,
//     ErrBadMaxColors, ErrBadTwoHopWeight, ErrBadHeuristicWeight,
//     ErrBadMaxCandidates: option domain violations.
//   - ErrColorBeyondCap: a pre-assigned color exceeds WithMaxColors.
//
// Conflicting pre-assignments (two adjacent vertices locked to the same
// color) are NOT an error: the search runs and reports the irreducible
// conflict through Result.HardConflicts.
package coloring
