package module

import (
	"time"

	"forword/internal/core/dictionary"
	"forword/internal/core/filter"
	"forword/internal/core/normalize"
	"forword/internal/platform/config"
	"forword/internal/platform/logger"
	"forword/internal/platform/store/pg"
)

// Source kinds accepted by FORWORD_DICT_SOURCE
const (
	SourceFile = "file"
	SourcePG   = "pg"
)

// Options holds configuration settings for the filter module
type Options struct {
	Source string
	Path   string

	Table  string
	Column string
	Order  string

	Token      string
	Ignored    normalize.SymbolSet
	HasIgnored bool

	LoadTimeout time.Duration
}

// FromConfig reads FORWORD_* settings from the root config
func FromConfig(cfg config.Conf) Options {
	fc := cfg.Prefix("FORWORD_")
	o := Options{
		Source:      fc.MayEnum("DICT_SOURCE", SourceFile, SourceFile, SourcePG),
		Path:        fc.MayString("DICT_PATH", ""),
		Table:       fc.MayString("DICT_PG_TABLE", "forbidden_words"),
		Column:      fc.MayString("DICT_PG_COLUMN", "word"),
		Order:       fc.MayString("DICT_PG_ORDER", ""),
		Token:       fc.MayString("TOKEN", filter.DefaultToken),
		LoadTimeout: fc.MayDuration("DICT_LOAD_TIMEOUT", 30*time.Second),
	}
	o.Ignored, o.HasIgnored = IgnoredFromConfig(fc)
	return o
}

// IgnoredFromConfig resolves IGNORED_SYMBOLS_NONE and IGNORED_SYMBOLS under c.
// ok is false when neither is set and the default set applies
func IgnoredFromConfig(c config.Conf) (set normalize.SymbolSet, ok bool) {
	if c.MayBool("IGNORED_SYMBOLS_NONE", false) {
		return normalize.NewSymbolSet(), true
	}
	if s, present := c.MayRaw("IGNORED_SYMBOLS"); present {
		return normalize.ParseSymbolSet(s), true
	}
	return nil, false
}

// DictionarySource builds the configured source. db is only used for SourcePG
func (o Options) DictionarySource(db *pg.PG) dictionary.Source {
	if o.Source == SourcePG {
		src := dictionary.PG{Table: o.Table, Column: o.Column, Order: o.Order}
		if db != nil {
			src.DB = db
		}
		return src
	}
	return dictionary.File{Path: o.Path}
}

// FilterOptions translates settings into filter options
func (o Options) FilterOptions(log *logger.Logger) []filter.Option {
	opts := []filter.Option{filter.WithToken(o.Token), filter.WithLogger(log)}
	if o.HasIgnored {
		opts = append(opts, filter.WithIgnoredSymbols(o.Ignored))
	}
	return opts
}
