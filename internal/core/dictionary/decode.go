package dictionary

import (
	"bytes"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	textunicode "golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// DefaultFallback decodes legacy files that are neither BOM-marked nor valid UTF-8
var DefaultFallback encoding.Encoding = charmap.Windows1252

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// Decode turns raw dictionary bytes into NFC text.
// A byte-order mark selects UTF-8, UTF-16LE or UTF-16BE and is stripped.
// Without a BOM, valid UTF-8 is taken as is and anything else goes through fallback
func Decode(b []byte, fallback encoding.Encoding) (string, error) {
	if fallback == nil {
		fallback = DefaultFallback
	}

	var t transform.Transformer
	switch {
	case bytes.HasPrefix(b, bomUTF8), bytes.HasPrefix(b, bomUTF16LE), bytes.HasPrefix(b, bomUTF16BE):
		t = textunicode.BOMOverride(textunicode.UTF8.NewDecoder())
	case utf8.Valid(b):
		t = transform.Nop
	default:
		t = fallback.NewDecoder()
	}

	out, _, err := transform.Bytes(transform.Chain(t, norm.NFC), b)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// Lines splits decoded text into dictionary entries.
// Any of \n, \r\n or \r ends a line; surrounding whitespace and control characters are removed;
// blank lines and lines starting with '#' are skipped
func Lines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	raw := strings.Split(text, "\n")
	out := make([]string, 0, len(raw))
	for _, l := range raw {
		l = strings.TrimSpace(l)
		if l == "" || l[0] == '#' {
			continue
		}
		l = strings.Map(dropControl, l)
		if l == "" {
			continue
		}
		out = append(out, l)
	}
	return out
}

func dropControl(r rune) rune {
	if unicode.IsControl(r) {
		return -1
	}
	return r
}
