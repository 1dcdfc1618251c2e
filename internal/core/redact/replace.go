package redact

import (
	"strings"
	"unicode"
)

var space = []rune{' '}

// Apply replaces every span of original with token, working right to left.
// spans must be ordered by descending Start, as returned by Resolve. A single space is
// introduced on a side where the token would otherwise touch a non-space codepoint.
// A span reaching into text already replaced by a later span is clamped to stop there.
// The output is assembled once from slices of original, so the cost is linear in the
// text plus the tokens written
func Apply(original []rune, spans []Span, token string) string {
	if len(spans) == 0 {
		return string(original)
	}
	tok := []rune(token)

	// parts holds the output back to front
	parts := make([][]rune, 0, 4*len(spans)+1)
	// head is the first codepoint of everything already emitted right of limit
	var head rune
	hasHead := false
	push := func(p []rune) {
		if len(p) == 0 {
			return
		}
		parts = append(parts, p)
		head, hasHead = p[0], true
	}

	// original offsets below limit are still untouched
	limit := len(original)
	for _, sp := range spans {
		start, end := sp.Start, sp.End
		if start < 0 || start >= limit || end <= start {
			continue
		}
		if end > limit {
			end = limit
		}
		push(original[end:limit])
		if hasHead && !unicode.IsSpace(head) {
			push(space)
		}
		push(tok)
		if start > 0 && !unicode.IsSpace(original[start-1]) {
			push(space)
		}
		limit = start
	}
	push(original[:limit])

	var b strings.Builder
	n := 0
	for _, p := range parts {
		n += len(p)
	}
	b.Grow(n)
	for i := len(parts) - 1; i >= 0; i-- {
		for _, r := range parts[i] {
			b.WriteRune(r)
		}
	}
	return b.String()
}
