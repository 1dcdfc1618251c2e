// Package redact maps normalized-text matches back onto the original text and
// splices a replacement token over the resulting spans
package redact

import (
	"sort"
	"unicode"

	"forword/internal/core/automaton"
)

// Span is a half-open [Start,End) interval of original-text codepoint offsets
type Span struct {
	Start int
	End   int
}

// Len returns the span width in codepoints
func (s Span) Len() int { return s.End - s.Start }

// Resolve converts raw matches over normalized text into replacement spans over original.
// mapping is the normalizer's position map. Surviving spans are maximal and sorted by
// descending Start so they can be applied right to left. Work is O(m log m) in the
// number of matches plus one pass over each whitespace run touching a span
func Resolve(matches []automaton.Match, mapping []int, original []rune) []Span {
	if len(matches) == 0 || len(original) == 0 {
		return nil
	}

	ext := newExtender(original)
	seen := make(map[Span]struct{}, len(matches))
	spans := make([]Span, 0, len(matches))
	for _, m := range matches {
		if m.Start < 0 || m.End <= m.Start || m.End > len(mapping) {
			continue
		}
		sp := ext.extend(Span{Start: mapping[m.Start], End: mapping[m.End-1] + 1})
		if _, dup := seen[sp]; dup {
			continue
		}
		seen[sp] = struct{}{}
		spans = append(spans, sp)
	}

	// start ascending, longer first on ties: every span that could contain sp
	// sorts before it, so one running maximum End decides containment
	sort.Slice(spans, func(i, j int) bool {
		if spans[i].Start != spans[j].Start {
			return spans[i].Start < spans[j].Start
		}
		return spans[i].End > spans[j].End
	})
	kept := spans[:0]
	reach := -1
	for _, sp := range spans {
		// spans are distinct, so an earlier span reaching at least as far is longer
		if sp.End <= reach {
			continue
		}
		kept = append(kept, sp)
		reach = sp.End
	}

	for i, j := 0, len(kept)-1; i < j; i, j = i+1, j-1 {
		kept[i], kept[j] = kept[j], kept[i]
	}
	return kept
}

// extender absorbs whitespace adjacent to a span on both sides. Results are cached
// per boundary so a whitespace run shared by many matches is walked once
type extender struct {
	original []rune
	left     map[int]int
	right    map[int]int
}

func newExtender(original []rune) *extender {
	return &extender{original: original, left: map[int]int{}, right: map[int]int{}}
}

func (e *extender) extend(sp Span) Span {
	if s, ok := e.left[sp.Start]; ok {
		sp.Start = s
	} else {
		s := sp.Start
		for s > 0 && unicode.IsSpace(e.original[s-1]) {
			s--
		}
		e.left[sp.Start] = s
		sp.Start = s
	}
	if en, ok := e.right[sp.End]; ok {
		sp.End = en
	} else {
		en := sp.End
		for en < len(e.original) && unicode.IsSpace(e.original[en]) {
			en++
		}
		e.right[sp.End] = en
		sp.End = en
	}
	return sp
}
