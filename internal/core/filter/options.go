package filter

import (
	"forword/internal/core/normalize"
	"forword/internal/platform/logger"
)

// DefaultToken replaces matched spans unless WithToken says otherwise
const DefaultToken = "***"

type options struct {
	ignored    normalize.SymbolSet
	hasIgnored bool
	token      string
	onDiag     func(Diagnostic)
	log        *logger.Logger
}

// Option configures a Filter
type Option func(*options)

// WithIgnoredSymbols replaces the default ignored symbol set. An empty set ignores nothing extra
func WithIgnoredSymbols(s normalize.SymbolSet) Option {
	return func(o *options) {
		o.ignored = s
		o.hasIgnored = true
	}
}

// WithToken sets the replacement used by Replace
func WithToken(token string) Option {
	return func(o *options) { o.token = token }
}

// WithDiagnostics receives every diagnostic raised while building, in dictionary order
func WithDiagnostics(fn func(Diagnostic)) Option {
	return func(o *options) { o.onDiag = fn }
}

// WithLogger overrides the component logger
func WithLogger(l *logger.Logger) Option {
	return func(o *options) { o.log = l }
}

func buildOptions(opts []Option) options {
	o := options{token: DefaultToken}
	for _, fn := range opts {
		fn(&o)
	}
	if o.log == nil {
		o.log = logger.Named("filter")
	}
	return o
}

func (o options) normalizer() *normalize.Normalizer {
	if o.hasIgnored {
		return normalize.New(normalize.WithIgnoredSymbols(o.ignored))
	}
	return normalize.New()
}
