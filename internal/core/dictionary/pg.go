package dictionary

import (
	"context"
	"strings"

	perr "forword/internal/platform/errors"

	"github.com/jackc/pgx/v5"
	"golang.org/x/text/unicode/norm"
)

// Querier is the read side of the postgres client (store/pg.PG satisfies it)
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// PG reads one text column of a table, in Order, as the word list.
// Table may be schema qualified ("lists.forbidden_words"). NULL and blank values are skipped
type PG struct {
	DB     Querier
	Table  string
	Column string
	Order  string // defaults to Column
}

// Words implements Source
func (p PG) Words(ctx context.Context) ([]string, error) {
	if p.DB == nil {
		return nil, perr.Unavailablef("dictionary source %s: no database configured", p.Name())
	}
	rows, err := p.DB.Query(ctx, p.query())
	if err != nil {
		return nil, p.fail(err, "query")
	}
	raw, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, p.fail(err, "read")
	}

	out := make([]string, 0, len(raw))
	for _, w := range raw {
		w = strings.TrimSpace(norm.NFC.String(w))
		if w != "" {
			out = append(out, w)
		}
	}
	return out, nil
}

// fail maps a query error. pgx may report a missing relation from Query or from
// the first row fetch, so both paths come through here
func (p PG) fail(err error, verb string) error {
	if perr.IsUndefinedTable(err) {
		return perr.WithOp(perr.Wrapf(err, perr.ErrorCodeUnavailable, "dictionary table %s not found", p.Table), "dictionary.pg")
	}
	return perr.FromPostgresf(err, "%s %s", verb, p.Table)
}

// Name implements Source
func (p PG) Name() string { return "pg:" + p.Table + "." + p.Column }

func (p PG) query() string {
	col := pgx.Identifier{p.Column}.Sanitize()
	order := col
	if p.Order != "" {
		order = pgx.Identifier{p.Order}.Sanitize()
	}
	table := pgx.Identifier(strings.Split(p.Table, ".")).Sanitize()
	return "SELECT " + col + " FROM " + table + " WHERE " + col + " IS NOT NULL ORDER BY " + order
}
