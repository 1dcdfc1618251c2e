// Package filter is the forbidden-word filter: it folds a dictionary into one
// automaton and answers search, replace and normalization queries against it.
//
// A Filter is immutable once built. Reloading a dictionary means building a new
// Filter and swapping it in; readers holding the old one are unaffected.
package filter

import (
	"context"
	"time"
	"unicode"

	"forword/internal/core/automaton"
	"forword/internal/core/dictionary"
	"forword/internal/core/normalize"
	"forword/internal/core/redact"

	"github.com/google/uuid"
)

// Filter matches and redacts dictionary words in arbitrary text. Safe for concurrent use
type Filter struct {
	norm  *normalize.Normalizer
	ac    *automaton.Automaton
	token string
	diags []Diagnostic

	source  string
	gen     uuid.UUID
	builtAt time.Time
}

// Hit is one resolved match in original-text codepoint offsets, [Start,End)
type Hit struct {
	Start int    `json:"start"`
	End   int    `json:"end"`
	Text  string `json:"text"`
}

// New builds a filter from words in dictionary order. It never fails: entries that
// collapse onto an earlier entry or onto nothing are dropped with a Diagnostic
func New(words []string, opts ...Option) *Filter {
	o := buildOptions(opts)
	f := &Filter{
		norm:    o.normalizer(),
		token:   o.token,
		source:  "static",
		gen:     uuid.New(),
		builtAt: time.Now().UTC(),
	}

	emit := func(d Diagnostic) {
		f.diags = append(f.diags, d)
		o.log.Warn().
			Str("kind", string(d.Kind)).
			Str("word", d.Word).
			Str("key", d.Key).
			Msg(d.String())
		if o.onDiag != nil {
			o.onDiag(d)
		}
	}

	b := automaton.NewBuilder()
	first := make(map[string]string, len(words))
	for i, w := range words {
		txt := f.norm.Normalize(w)
		key := txt.String()
		if key == "" {
			emit(Diagnostic{Kind: DiagEmptyPattern, Word: w})
			continue
		}
		if existing, dup := first[key]; dup {
			emit(Diagnostic{Kind: DiagDuplicatePattern, Word: w, Existing: existing, Key: key})
			continue
		}
		first[key] = w
		b.Add(automaton.Pattern{ID: i, Runes: txt.Runes, Original: w})
	}
	f.ac = b.Build()

	o.log.Info().
		Str("dict_generation", f.gen.String()).
		Int("words", len(words)).
		Int("patterns", f.ac.Len()).
		Int("nodes", f.ac.Nodes()).
		Int("diagnostics", len(f.diags)).
		Msg("filter built")
	return f
}

// Load reads src and builds a filter from it. A source failure is returned as a
// source-unavailable error (dictionary.IsSourceUnavailable) and no filter is built
func Load(ctx context.Context, src dictionary.Source, opts ...Option) (*Filter, error) {
	words, err := dictionary.Read(ctx, src)
	if err != nil {
		return nil, err
	}
	f := New(words, opts...)
	f.source = src.Name()
	return f, nil
}

// Search reports whether text contains any dictionary word
func (f *Filter) Search(text string) bool {
	if text == "" {
		return false
	}
	txt := f.norm.Normalize(text)
	return f.ac.Contains(txt.Runes, txt.Breaks...)
}

// Replace redacts every dictionary word in text with the configured token
func (f *Filter) Replace(text string) string {
	return f.ReplaceWith(text, f.token)
}

// ReplaceWith is Replace with an explicit token
func (f *Filter) ReplaceWith(text, token string) string {
	if text == "" {
		return ""
	}
	orig := []rune(text)
	spans := f.spans(orig)
	if len(spans) == 0 {
		return text
	}
	return redact.Apply(orig, spans, token)
}

// Find lists the spans Replace would redact, ascending, narrowed to exclude the
// surrounding whitespace Replace also consumes
func (f *Filter) Find(text string) []Hit {
	if text == "" {
		return nil
	}
	orig := []rune(text)
	spans := f.spans(orig)
	if len(spans) == 0 {
		return nil
	}
	hits := make([]Hit, 0, len(spans))
	for i := len(spans) - 1; i >= 0; i-- {
		s, e := spans[i].Start, spans[i].End
		for s < e && unicode.IsSpace(orig[s]) {
			s++
		}
		for e > s && unicode.IsSpace(orig[e-1]) {
			e--
		}
		hits = append(hits, Hit{Start: s, End: e, Text: string(orig[s:e])})
	}
	return hits
}

// NormalizeForDiagnostics returns the normalized form the matcher sees for text
func (f *Filter) NormalizeForDiagnostics(text string) string {
	return f.norm.String(text)
}

func (f *Filter) spans(orig []rune) []redact.Span {
	txt := f.norm.NormalizeRunes(orig)
	matches := f.ac.FindAll(txt.Runes, txt.Breaks...)
	if len(matches) == 0 {
		return nil
	}
	return redact.Resolve(matches, txt.Mapping, orig)
}

// Patterns returns the number of active patterns
func (f *Filter) Patterns() int { return f.ac.Len() }

// Nodes returns the automaton size including the root
func (f *Filter) Nodes() int { return f.ac.Nodes() }

// Diagnostics returns a copy of the build diagnostics in dictionary order
func (f *Filter) Diagnostics() []Diagnostic {
	return append([]Diagnostic(nil), f.diags...)
}

// Token returns the configured replacement token
func (f *Filter) Token() string { return f.token }

// Ignored returns the ignored symbol set in effect
func (f *Filter) Ignored() normalize.SymbolSet { return f.norm.Ignored() }

// Source names the dictionary source the filter was loaded from
func (f *Filter) Source() string { return f.source }

// Generation identifies this build; every New or Load yields a fresh one
func (f *Filter) Generation() uuid.UUID { return f.gen }

// BuiltAt is the UTC build time
func (f *Filter) BuiltAt() time.Time { return f.builtAt }
