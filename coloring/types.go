// Package coloring - sentinel errors, Options, functional options and Result.
package coloring

import (
	"errors"

	"github.com/katalvlaran/lvlcolor/core"
)

// Sentinel errors returned by Solve before any search state is built.
var (
	// ErrNilGraph indicates a nil *core.Graph was passed to Solve.
	ErrNilGraph = errors.New("coloring: graph is nil")

	// ErrEmptyGraph indicates the graph contains no vertices.
	ErrEmptyGraph = errors.New("coloring: graph has no vertices")

	// ErrBadBeamWidth indicates BeamWidth < 1.
	ErrBadBeamWidth = errors.New("coloring: beam width must be >= 1")

	// ErrBadIterations indicates MaxIterations < 1.
	ErrBadIterations = errors.New("coloring: max iterations must be >= 1")

	// ErrBadPaletteSize indicates PaletteSize < 1.
	ErrBadPaletteSize = errors.New("coloring: initial palette size must be >= 1")

	// ErrBadMaxColors indicates MaxColors is negative or smaller than the
	// initial palette size.
	ErrBadMaxColors = errors.New("coloring: max colors must be 0 (uncapped) or >= palette size")

	// ErrBadTwoHopWeight indicates TwoHopWeight lies outside [0,1].
	ErrBadTwoHopWeight = errors.New("coloring: two-hop weight must be in [0,1]")

	// ErrBadHeuristicWeight indicates a negative heuristic weight.
	ErrBadHeuristicWeight = errors.New("coloring: heuristic weights must be non-negative")

	// ErrBadMaxCandidates indicates MaxCandidates < 0.
	ErrBadMaxCandidates = errors.New("coloring: max candidates must be >= 0")

	// ErrColorBeyondCap indicates a pre-assigned color exceeds MaxColors,
	// so the lock could never be honored within the capped palette.
	ErrColorBeyondCap = errors.New("coloring: pre-assigned color exceeds max colors")
)

// Default search parameters. Conflict/color/balance weights mirror the
// classical penalty stacking for this problem; all of them are tunable
// configuration, not contract.
const (
	// DefaultBeamWidth is the number of states kept per iteration.
	DefaultBeamWidth = 10

	// DefaultMaxIterations bounds the search effort.
	DefaultMaxIterations = 50

	// DefaultPaletteSize is the initial palette {1..K}; the seed pass
	// grows it only when forced.
	DefaultPaletteSize = 1

	// DefaultTwoHopWeight scales 2-hop same-color pairs into the
	// conflict measure. 2-hop conflicts are soft: they steer the search
	// but never block convergence.
	DefaultTwoHopWeight = 0.25

	// DefaultConflictWeight dominates the score: removing conflicts is
	// the primary objective.
	DefaultConflictWeight = 1000.0

	// DefaultColorWeight rewards smaller palettes.
	DefaultColorWeight = 100.0

	// DefaultBalanceWeight rewards even color usage.
	DefaultBalanceWeight = 1.0
)

// Options configures one Solve run.
//
// With a MaxColors cap the search still terminates on infeasible
// instances and reports the best coloring it found. When the full
// expansion fan-out would exceed MaxCandidates, only the
// most-conflicted vertices are recolored.
type Options struct {
	BeamWidth     int     // States kept per iteration (>= 1)
	MaxIterations int     // Iteration budget (>= 1)
	PaletteSize   int     // Initial palette size K (>= 1); the seed pass may grow it
	MaxColors     int     // Hard palette cap; 0 means uncapped
	TwoHopWeight  float64 // Weight of soft 2-hop conflicts, in [0,1]

	ConflictWeight float64 // Heuristic weight of the (weighted) conflict count
	ColorWeight    float64 // Heuristic weight of the distinct-color count
	BalanceWeight  float64 // Heuristic weight of the usage balance penalty

	MaxCandidates int // Ceiling on candidate states per expanded beam state; 0 disables
}

// Option represents a functional option for configuring Solve.
type Option func(*Options)

// WithBeamWidth sets the number of states retained per iteration.
func WithBeamWidth(w int) Option {
	return func(o *Options) { o.BeamWidth = w }
}

// WithMaxIterations sets the iteration budget.
func WithMaxIterations(n int) Option {
	return func(o *Options) { o.MaxIterations = n }
}

// WithPaletteSize sets the initial palette size {1..K}.
func WithPaletteSize(k int) Option {
	return func(o *Options) { o.PaletteSize = k }
}

// WithMaxColors caps the palette: the seed pass never grows it beyond
// this bound, even when that leaves unavoidable conflicts. Pass 0 for
// an uncapped palette.
func WithMaxColors(k int) Option {
	return func(o *Options) { o.MaxColors = k }
}

// WithTwoHopWeight sets the soft 2-hop conflict weight, in [0,1].
// Zero ignores 2-hop pairs entirely; one counts them like real edges.
func WithTwoHopWeight(w float64) Option {
	return func(o *Options) { o.TwoHopWeight = w }
}

// WithHeuristicWeights overrides the three score components:
// conflicts, distinct colors, usage balance. All must be non-negative;
// keep the conflict weight dominant unless you know better.
func WithHeuristicWeights(conflict, colors, balance float64) Option {
	return func(o *Options) {
		o.ConflictWeight = conflict
		o.ColorWeight = colors
		o.BalanceWeight = balance
	}
}

// WithMaxCandidates bounds the expansion fan-out per beam state. When
// the full neighborhood would exceed the cap, expansion restricts
// itself to the vertices involved in the most conflicts. Pass 0 to
// disable the cap.
func WithMaxCandidates(n int) Option {
	return func(o *Options) { o.MaxCandidates = n }
}

// DefaultOptions returns the baseline configuration: beam width 10,
// 50 iterations, palette starting at 1 color, uncapped palette,
// 2-hop weight 0.25, heuristic weights 1000/100/1, unbounded fan-out.
func DefaultOptions() Options {
	return Options{
		BeamWidth:      DefaultBeamWidth,
		MaxIterations:  DefaultMaxIterations,
		PaletteSize:    DefaultPaletteSize,
		MaxColors:      0,
		TwoHopWeight:   DefaultTwoHopWeight,
		ConflictWeight: DefaultConflictWeight,
		ColorWeight:    DefaultColorWeight,
		BalanceWeight:  DefaultBalanceWeight,
		MaxCandidates:  0,
	}
}

// validateOptions checks every option domain and returns the first
// violation as a sentinel error. Solve calls this before touching the
// graph, so invalid configurations never produce partial state.
func validateOptions(o Options) error {
	if o.BeamWidth < 1 {
		return ErrBadBeamWidth
	}
	if o.MaxIterations < 1 {
		return ErrBadIterations
	}
	if o.PaletteSize < 1 {
		return ErrBadPaletteSize
	}
	if o.MaxColors < 0 || (o.MaxColors > 0 && o.MaxColors < o.PaletteSize) {
		return ErrBadMaxColors
	}
	if o.TwoHopWeight < 0 || o.TwoHopWeight > 1 {
		return ErrBadTwoHopWeight
	}
	if o.ConflictWeight < 0 || o.ColorWeight < 0 || o.BalanceWeight < 0 {
		return ErrBadHeuristicWeight
	}
	if o.MaxCandidates < 0 {
		return ErrBadMaxCandidates
	}

	return nil
}

// Result is the outcome of one Solve run.
//
// The search is heuristic: a non-converged Result is a valid,
// best-effort answer, not a failure.
type Result struct {
	// Colors maps every vertex ID to its final color in {1..K}.
	Colors map[string]core.Color

	// Conflicts is the weighted conflict measure of the returned
	// coloring: hard 1-hop conflicts plus TwoHopWeight times the number
	// of 2-hop same-color pairs.
	Conflicts float64

	// HardConflicts is the exact number of edges whose endpoints share
	// a color. Zero means a proper coloring.
	HardConflicts int

	// ColorsUsed is the number of distinct colors in the assignment.
	ColorsUsed int

	// Iterations is the number of completed beam iterations.
	Iterations int

	// Converged reports whether a zero-hard-conflict state was found
	// within the iteration budget.
	Converged bool
}
