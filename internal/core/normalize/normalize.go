// Package normalize turns raw text into the codepoint sequence the matcher runs over,
// remembering for every normalized position which original codepoint produced it.
// Pipeline order
// 1 fold: ASCII case, combining marks, accented Latin letters, sharp s expansion
// 2 filter: keep word characters that are not in the ignored symbol set
//
// With a custom ignored set, whitespace and default separators left out of that set
// are still removed but split the text: no match may span them
package normalize

import "unicode"

// Text is a normalized codepoint sequence plus its position mapping.
// Mapping[i] is the index into []rune(original) that produced Runes[i].
// Breaks lists, ascending, the indexes i where a separator sat before Runes[i]
// and matching has to restart. It is empty under the default ignored set
type Text struct {
	Runes   []rune
	Mapping []int
	Breaks  []int
}

// Len returns the number of normalized codepoints
func (t Text) Len() int { return len(t.Runes) }

// String returns the normalized codepoints as a string
func (t Text) String() string { return string(t.Runes) }

// Normalizer is immutable after New and safe for concurrent use
type Normalizer struct {
	ignored SymbolSet
	custom  bool
}

// Option configures a Normalizer
type Option func(*Normalizer)

// WithIgnoredSymbols replaces the default ignored symbol set.
// A nil or empty set means no separator is skipped: every whitespace or default
// separator codepoint then ends a candidate match
func WithIgnoredSymbols(s SymbolSet) Option {
	return func(n *Normalizer) {
		n.ignored = s.clone()
		n.custom = true
	}
}

// New constructs a Normalizer using DefaultIgnoredSymbols unless overridden
func New(opts ...Option) *Normalizer {
	n := &Normalizer{ignored: DefaultIgnoredSymbols()}
	for _, o := range opts {
		o(n)
	}
	return n
}

// Ignored returns a copy of the configured ignored symbol set
func (n *Normalizer) Ignored() SymbolSet { return n.ignored.clone() }

// Normalize folds and filters s. Invalid UTF-8 decodes to U+FFFD, which keeps
// its original offset but never survives the filter
func (n *Normalizer) Normalize(s string) Text {
	if s == "" {
		return Text{}
	}
	return n.NormalizeRunes([]rune(s))
}

// NormalizeRunes is Normalize over an already decoded codepoint slice.
// Offsets in Mapping index into src
func (n *Normalizer) NormalizeRunes(src []rune) Text {
	if len(src) == 0 {
		return Text{}
	}
	out := Text{
		Runes:   make([]rune, 0, len(src)),
		Mapping: make([]int, 0, len(src)),
	}
	var buf [2]rune
	for i, r := range src {
		for _, f := range fold(r, buf[:0]) {
			if !n.keep(f) {
				if n.splits(f) {
					out.addBreak()
				}
				continue
			}
			out.Runes = append(out.Runes, f)
			out.Mapping = append(out.Mapping, i)
		}
	}
	return out
}

func (t *Text) addBreak() {
	at := len(t.Runes)
	if at == 0 || (len(t.Breaks) > 0 && t.Breaks[len(t.Breaks)-1] == at) {
		return
	}
	t.Breaks = append(t.Breaks, at)
}

// String returns only the normalized form of s
func (n *Normalizer) String(s string) string {
	return n.Normalize(s).String()
}

// keep is pass 2
func (n *Normalizer) keep(r rune) bool {
	if !IsWordChar(r) {
		return false
	}
	return !n.ignored.Has(r)
}

// splits reports whether a dropped r separates words. Only a custom set has
// separators it does not skip
func (n *Normalizer) splits(r rune) bool {
	if !n.custom || n.ignored.Has(r) {
		return false
	}
	return unicode.IsSpace(r) || defaultSet.Has(r)
}
