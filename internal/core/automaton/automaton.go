// Package automaton implements a multi-pattern Aho-Corasick matcher over codepoints.
// Nodes live in one arena addressed by index; fail links are indexes into the same arena,
// so the graph has no ownership cycles. An Automaton is immutable once built
package automaton

const root = 0

// Pattern is one normalized dictionary entry
type Pattern struct {
	ID       int    // caller-assigned id, echoed back in matches
	Runes    []rune // normalized codepoints
	Original string // original spelling, for diagnostics
}

// Match is a pattern occurrence over the scanned text, [Start,End) in codepoints
type Match struct {
	Start   int
	End     int
	Pattern int // index into the automaton pattern table
}

type node struct {
	next map[rune]int32
	fail int32
	// out holds every pattern ending here, including those inherited through fail
	out []int32
}

// Automaton is the read-only product of Builder.Build
type Automaton struct {
	nodes    []node
	patterns []Pattern
}

// Len returns the number of patterns
func (a *Automaton) Len() int { return len(a.patterns) }

// Nodes returns the trie size including the root
func (a *Automaton) Nodes() int { return len(a.nodes) }

// Pattern returns the i-th pattern. The returned Runes must not be modified
func (a *Automaton) Pattern(i int) Pattern { return a.patterns[i] }

// step advances state by r following fail links on a missing edge
func (a *Automaton) step(state int32, r rune) int32 {
	for state != root {
		if _, ok := a.nodes[state].next[r]; ok {
			break
		}
		state = a.nodes[state].fail
	}
	if nxt, ok := a.nodes[state].next[r]; ok {
		return nxt
	}
	return root
}

// Scan walks text left to right and calls fn for each pattern ending at each position.
// Matches are reported in End order. If fn returns false, scanning stops early
func (a *Automaton) Scan(text []rune, fn func(Match) bool) {
	a.ScanSegmented(text, nil, fn)
}

// ScanSegmented is Scan that restarts from the root at every index in breaks,
// so no reported match crosses one. breaks must be ascending
func (a *Automaton) ScanSegmented(text []rune, breaks []int, fn func(Match) bool) {
	if a == nil || len(a.patterns) == 0 {
		return
	}
	var state int32 = root
	next := 0
	for i, r := range text {
		for next < len(breaks) && breaks[next] <= i {
			if breaks[next] == i {
				state = root
			}
			next++
		}
		state = a.step(state, r)
		for _, pi := range a.nodes[state].out {
			m := Match{
				Start:   i - len(a.patterns[pi].Runes) + 1,
				End:     i + 1,
				Pattern: int(pi),
			}
			if !fn(m) {
				return
			}
		}
	}
}

// FindAll returns every match in text that crosses none of breaks
func (a *Automaton) FindAll(text []rune, breaks ...int) []Match {
	var out []Match
	a.ScanSegmented(text, breaks, func(m Match) bool {
		out = append(out, m)
		return true
	})
	return out
}

// Contains reports whether any pattern occurs in text without crossing breaks
func (a *Automaton) Contains(text []rune, breaks ...int) bool {
	found := false
	a.ScanSegmented(text, breaks, func(Match) bool {
		found = true
		return false
	})
	return found
}
