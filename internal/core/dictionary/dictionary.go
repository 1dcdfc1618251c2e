// Package dictionary supplies forbidden-word lists to the filter.
//
// A Source yields the raw word sequence in dictionary order. Every failure to
// produce that sequence is reported as a source-unavailable error
// (perr.ErrorCodeUnavailable), which callers can test with IsSourceUnavailable.
// Sources do not normalize or deduplicate; that is the filter's job.
package dictionary

import (
	"context"

	perr "forword/internal/platform/errors"
)

// Source yields dictionary entries in their original order
type Source interface {
	Words(ctx context.Context) ([]string, error)
	Name() string
}

// Static is an in-memory word list
type Static []string

// Words returns a copy of the list
func (s Static) Words(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return append([]string(nil), s...), nil
}

// Name implements Source
func (Static) Name() string { return "static" }

// Read asks src for its words and guarantees that any failure is a source-unavailable error
func Read(ctx context.Context, src Source) ([]string, error) {
	if src == nil {
		return nil, perr.WithOp(perr.Unavailablef("dictionary source unavailable: no source configured"), "dictionary.read")
	}
	words, err := src.Words(ctx)
	if err != nil {
		return nil, unavailable(src.Name(), err)
	}
	return words, nil
}

// IsSourceUnavailable reports whether err means the dictionary could not be read
func IsSourceUnavailable(err error) bool {
	return perr.IsCode(err, perr.ErrorCodeUnavailable)
}

func unavailable(name string, err error) error {
	if IsSourceUnavailable(err) {
		return err
	}
	return perr.WithOp(perr.Wrapf(err, perr.ErrorCodeUnavailable, "dictionary source %s unavailable", name), "dictionary.read")
}
