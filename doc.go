// Package lvlcolor assigns colors to graph vertices via constraint-guided
// local beam search — adjacent vertices get distinct colors, two-hop
// neighborhoods are kept distinct as a soft rule, and color usage stays
// balanced across the palette.
//
// 🚀 What is lvlcolor?
//
//	A small, deterministic, zero-dependency library that brings together:
//		• Core primitives: build undirected graphs with pre-assigned color constraints
//		• Greedy seeding: degree-ordered initial coloring honoring all constraints
//		• Local beam search: expand, score, prune a fixed-width beam of candidate colorings
//		• Tunable heuristic: conflicts, palette size and usage balance in one score
//
// ✨ Why choose lvlcolor?
//
//   - Beginner-friendly – one Solve call, clear functional options
//   - Reproducible – no hidden randomness; same input, same coloring
//   - Pure Go – no cgo, no hidden deps
//   - Honest – heuristic by design; inspect Result.Converged, never an error
//
// Under the hood, everything is organized under three subpackages:
//
//	core/     — fundamental Graph type, adjacency, two-hop sets & pre-assignments
//	coloring/ — the beam-search engine (states, heuristic, expansion, controller)
//	builder/  — deterministic shape generators (Path, Cycle, Complete, Star)
//
// Quick ASCII example:
//
//	    A───B
//	    │   │
//	    D───C
//
//	a 4-cycle: two colors suffice (A,C share one, B,D the other),
//	even though A–C and B–D are two-hop pairs.
//
// Dive into the coloring package docs for the search model, the heuristic
// weights, and the convergence/exhaustion contract.
//
//	go get github.com/katalvlaran/lvlcolor
package lvlcolor
