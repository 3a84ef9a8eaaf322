// Package coloring - the immutable search State and the heuristic.
//
// A state is a complete coloring plus its cached metrics: hard (1-hop)
// conflict count, soft (2-hop) same-color pair count, color usage
// histogram, balance penalty, heuristic score, and a dedup key. States
// are never mutated after construction: recolor builds a fresh state
// with incrementally adjusted metrics, so the beam can hold old and new
// states side by side without aliasing.
package coloring

import (
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvlcolor/core"
)

// state is one candidate coloring. All fields are read-only after
// construction.
type state struct {
	colors []core.Color       // index → color, every entry in {1..K}
	hard   int                // 1-hop edges whose endpoints share a color
	soft   int                // 2-hop unordered pairs sharing a color
	counts map[core.Color]int // histogram; keys present only when count > 0

	used    int     // distinct colors in use == len(counts)
	balance float64 // sum of squared deviations of counts from their mean
	score   float64 // heuristic value; lower is better
	key     string  // canonical encoding of colors, for dedup and tie-break
}

// conflicts returns the weighted conflict measure:
// hard + TwoHopWeight·soft.
func (s *state) conflicts(in *instance) float64 {
	return float64(s.hard) + in.opts.TwoHopWeight*float64(s.soft)
}

// evaluate builds a state from a complete assignment, computing every
// metric from scratch. The assignment slice is taken over, not copied;
// callers must not retain it.
//
// Complexity: O(V·(d + t) + K) for degree d and 2-hop size t.
func evaluate(in *instance, colors []core.Color) *state {
	s := &state{
		colors: colors,
		counts: make(map[core.Color]int),
	}

	var v, u, j int
	for v = 0; v < len(colors); v++ {
		s.counts[colors[v]]++

		// Count each unordered pair once via the u > v half.
		for _, u = range in.adj[v] {
			if u > v && colors[u] == colors[v] {
				s.hard++
			}
		}
		for _, j = range in.two[v] {
			if j > v && colors[j] == colors[v] {
				s.soft++
			}
		}
	}

	s.finalize(in)

	return s
}

// recolor returns a new state identical to s except vertex v holds
// color c. Only the edges and 2-hop pairs touching v are re-examined;
// the histogram adjusts the old and new color entries.
//
// Precondition: c != s.colors[v] and v is free (callers enforce both).
//
// Complexity: O(V) - dominated by copying the assignment and rebuilding
// the key; the metric deltas are O(d + t).
func (s *state) recolor(in *instance, v int, c core.Color) *state {
	old := s.colors[v]

	next := &state{
		colors: make([]core.Color, len(s.colors)),
		hard:   s.hard,
		soft:   s.soft,
		counts: make(map[core.Color]int, len(s.counts)),
	}
	copy(next.colors, s.colors)
	next.colors[v] = c

	for col, cnt := range s.counts {
		next.counts[col] = cnt
	}
	next.counts[old]--
	if next.counts[old] == 0 {
		delete(next.counts, old) // histogram keys exist only while in use
	}
	next.counts[c]++

	// Delta-update conflicts: only pairs through v change.
	var u int
	for _, u = range in.adj[v] {
		if s.colors[u] == old {
			next.hard--
		}
		if s.colors[u] == c {
			next.hard++
		}
	}
	for _, u = range in.two[v] {
		if s.colors[u] == old {
			next.soft--
		}
		if s.colors[u] == c {
			next.soft++
		}
	}

	next.finalize(in)

	return next
}

// finalize fills the derived fields (used, balance, score, key) from
// colors, hard, soft and counts.
func (s *state) finalize(in *instance) {
	s.used = len(s.counts)
	s.balance = balancePenalty(s.counts, len(s.colors))
	s.score = in.opts.ConflictWeight*s.conflicts(in) +
		in.opts.ColorWeight*float64(s.used) +
		in.opts.BalanceWeight*s.balance
	s.key = assignmentKey(s.colors)
}

// balancePenalty measures histogram dispersion as the sum of squared
// deviations from the mean usage count. Zero means perfectly even usage.
//
// The terms are accumulated in ascending color order: float addition is
// not associative, so summing in map iteration order would make the
// penalty (and every score built on it) vary between calls over the
// same histogram.
func balancePenalty(counts map[core.Color]int, total int) float64 {
	if len(counts) == 0 {
		return 0
	}
	avg := float64(total) / float64(len(counts))

	keys := make([]int, 0, len(counts))
	for col := range counts {
		keys = append(keys, int(col))
	}
	sort.Ints(keys)

	var (
		sum float64
		d   float64
	)
	for _, col := range keys {
		d = float64(counts[core.Color(col)]) - avg
		sum += d * d
	}

	return sum
}

// assignmentKey encodes a coloring as "c0,c1,…". The encoding is
// injective per instance (indices are fixed), which is all dedup and
// deterministic tie-breaking need.
func assignmentKey(colors []core.Color) string {
	var b strings.Builder
	b.Grow(len(colors) * 2)
	for i, c := range colors {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(int(c)))
	}

	return b.String()
}

// stateLess is the deterministic total order over states: score, then
// hard conflicts, then distinct colors, then the assignment key. Two
// states compare equal only when their assignments are identical.
func stateLess(a, b *state) bool {
	if a.score != b.score {
		return a.score < b.score
	}
	if a.hard != b.hard {
		return a.hard < b.hard
	}
	if a.used != b.used {
		return a.used < b.used
	}

	return a.key < b.key
}

// sortStates orders states ascending under stateLess.
func sortStates(states []*state) {
	sort.Slice(states, func(i, j int) bool {
		return stateLess(states[i], states[j])
	})
}
