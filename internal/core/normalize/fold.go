package normalize

import "unicode"

// combiningMarks covers the combining diacritical mark blocks
var combiningMarks = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x0300, Hi: 0x036F, Stride: 1}, // Combining Diacritical Marks
		{Lo: 0x1AB0, Hi: 0x1AFF, Stride: 1}, // Extended
		{Lo: 0x1DC0, Hi: 0x1DFF, Stride: 1}, // Supplement
		{Lo: 0x20D0, Hi: 0x20FF, Stride: 1}, // for Symbols
		{Lo: 0xFE20, Hi: 0xFE2F, Stride: 1}, // Half Marks
	},
}

// latinBase maps precomposed Latin letters to their ASCII base letter.
// Uppercase forms fold to the same lowercase base
var latinBase = map[rune]rune{
	'à': 'a', 'á': 'a', 'â': 'a', 'ã': 'a', 'ä': 'a',
	'À': 'a', 'Á': 'a', 'Â': 'a', 'Ã': 'a', 'Ä': 'a',
	'è': 'e', 'é': 'e', 'ê': 'e', 'ë': 'e',
	'È': 'e', 'É': 'e', 'Ê': 'e', 'Ë': 'e',
	'ì': 'i', 'í': 'i', 'î': 'i', 'ï': 'i',
	'Ì': 'i', 'Í': 'i', 'Î': 'i', 'Ï': 'i',
	'ò': 'o', 'ó': 'o', 'ô': 'o', 'õ': 'o', 'ö': 'o',
	'Ò': 'o', 'Ó': 'o', 'Ô': 'o', 'Õ': 'o', 'Ö': 'o',
	'ù': 'u', 'ú': 'u', 'û': 'u', 'ü': 'u',
	'Ù': 'u', 'Ú': 'u', 'Û': 'u', 'Ü': 'u',
	'ÿ': 'y', 'Ÿ': 'y',
	'ç': 'c', 'Ç': 'c',
	'ñ': 'n', 'Ñ': 'n',
}

// fold is pass 1. It appends zero, one or two runes for r to dst and returns it.
// Zero means r is dropped entirely (combining mark)
func fold(r rune, dst []rune) []rune {
	switch {
	case r >= 'A' && r <= 'Z':
		return append(dst, r+('a'-'A'))
	case r < 0x80:
		return append(dst, r)
	case r == 'ß' || r == 'ẞ':
		return append(dst, 's', 's')
	case unicode.Is(combiningMarks, r):
		return dst
	}
	if b, ok := latinBase[r]; ok {
		return append(dst, b)
	}
	return append(dst, r)
}
