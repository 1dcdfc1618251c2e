package normalize

import (
	"sort"
	"unicode"
)

// wordChars is the allow-list of codepoints treated as part of matchable words
var wordChars = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: '0', Hi: '9', Stride: 1},
		{Lo: 'A', Hi: 'Z', Stride: 1},
		{Lo: 'a', Hi: 'z', Stride: 1},
		{Lo: 0x00C0, Hi: 0x00D6, Stride: 1}, // Latin-1 letters (skips × at D7)
		{Lo: 0x00D8, Hi: 0x00F6, Stride: 1}, // (skips ÷ at F7)
		{Lo: 0x00F8, Hi: 0x017F, Stride: 1}, // rest of Latin-1 + Latin Extended-A
		{Lo: 0x0400, Hi: 0x04FF, Stride: 1}, // Cyrillic
		{Lo: 0x0E00, Hi: 0x0E7F, Stride: 1}, // Thai
		{Lo: 0x1100, Hi: 0x11FF, Stride: 1}, // Hangul Jamo
		{Lo: 0x1E00, Hi: 0x1EFF, Stride: 1}, // Latin Extended Additional
		{Lo: 0x3040, Hi: 0x309F, Stride: 1}, // Hiragana
		{Lo: 0x30A0, Hi: 0x30FF, Stride: 1}, // Katakana
		{Lo: 0x3130, Hi: 0x318F, Stride: 1}, // Hangul Compatibility Jamo
		{Lo: 0x4E00, Hi: 0x9FFF, Stride: 1}, // CJK Unified Ideographs
		{Lo: 0xAC00, Hi: 0xD7A3, Stride: 1}, // Hangul Syllables
	},
	LatinOffset: 5,
}

// IsWordChar reports whether r belongs to the configured word-character ranges
func IsWordChar(r rune) bool {
	return unicode.Is(wordChars, r)
}

// defaultIgnored is space plus the ASCII punctuation skipped between letters
const defaultIgnored = ` -._'"!?@#$%^&*()+=[]{}|\/:;,<>`

// SymbolSet is a set of codepoints removed during normalization
type SymbolSet map[rune]struct{}

// NewSymbolSet builds a set from the given runes
func NewSymbolSet(rs ...rune) SymbolSet {
	s := make(SymbolSet, len(rs))
	for _, r := range rs {
		s[r] = struct{}{}
	}
	return s
}

// ParseSymbolSet builds a set from every rune of s
func ParseSymbolSet(s string) SymbolSet {
	return NewSymbolSet([]rune(s)...)
}

// defaultSet is the shared read-only copy of the default set
var defaultSet = ParseSymbolSet(defaultIgnored)

// DefaultIgnoredSymbols returns a fresh copy of the default ignored set
func DefaultIgnoredSymbols() SymbolSet {
	return defaultSet.clone()
}

// Has reports whether r is in the set. A nil set contains nothing
func (s SymbolSet) Has(r rune) bool {
	_, ok := s[r]
	return ok
}

// Len returns the set size
func (s SymbolSet) Len() int { return len(s) }

// String returns the members in codepoint order
func (s SymbolSet) String() string {
	rs := make([]rune, 0, len(s))
	for r := range s {
		rs = append(rs, r)
	}
	sort.Slice(rs, func(i, j int) bool { return rs[i] < rs[j] })
	return string(rs)
}

func (s SymbolSet) clone() SymbolSet {
	out := make(SymbolSet, len(s))
	for r := range s {
		out[r] = struct{}{}
	}
	return out
}
