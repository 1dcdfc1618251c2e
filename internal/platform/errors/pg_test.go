package errors

import (
	"context"
	stderrs "errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func pg(code string) *pgconn.PgError {
	return &pgconn.PgError{Code: code, Message: "pg says " + code}
}

func TestDBErrorCodeMappings(t *testing.T) {
	cases := []struct {
		code string
		want ErrorCode
	}{
		{"42P01", ErrorCodeNotFound},        // undefined table
		{"42703", ErrorCodeNotFound},        // undefined column
		{"22P02", ErrorCodeInvalidArgument}, // invalid text representation
		{"57P03", ErrorCodeUnavailable},     // cannot connect now
		{"57P01", ErrorCodeUnavailable},     // admin shutdown
		{"53300", ErrorCodeUnavailable},     // too many connections
		{"42501", ErrorCodeUnavailable},     // insufficient privilege
		{"40001", ErrorCodeDB},              // serialization failure
		{"XXXXX", ErrorCodeDB},              // default branch
	}
	for _, c := range cases {
		got, ok := DBErrorCode(pg(c.code))
		if !ok {
			t.Fatalf("expected ok for PgError code %s", c.code)
		}
		if got != c.want {
			t.Fatalf("DBErrorCode(%s) = %v, want %v", c.code, got, c.want)
		}
	}

	if _, ok := DBErrorCode(stderrs.New("not pg")); ok {
		t.Fatalf("non-pg error should not be ok")
	}
}

func TestFromPostgresVariants(t *testing.T) {
	if FromPostgres(nil, "x") != nil {
		t.Fatalf("nil in, nil out")
	}

	err := FromPostgres(pg("42P01"), "read dictionary")
	if CodeOf(err) != ErrorCodeNotFound {
		t.Fatalf("code = %v", CodeOf(err))
	}
	if !IsUndefinedTable(err) {
		t.Fatalf("IsUndefinedTable should see through the wrap")
	}

	err = FromPostgresf(stderrs.New("boom"), "read %s", "words")
	if CodeOf(err) != ErrorCodeDB || err.(*Error).msg != "read words" {
		t.Fatalf("fallback wrap = %v", err)
	}

	if _, ok := ExtractPgError(fmt.Errorf("ctx: %w", pg("57P03"))); !ok {
		t.Fatalf("ExtractPgError through fmt wrap")
	}
}

func TestIsRetryable(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"canceled", context.Canceled, false},
		{"deadline", fmt.Errorf("q: %w", context.DeadlineExceeded), false},
		{"serialization", pg("40001"), true},
		{"deadlock", pg("40P01"), true},
		{"starting up", pg("57P03"), true},
		{"too many", Wrap(pg("53300"), ErrorCodeUnavailable, "x"), true},
		{"undefined table", pg("42P01"), false},
		{"conn refused text", stderrs.New("dial tcp: connection refused"), true},
		{"other text", stderrs.New("syntax"), false},
	}
	for _, c := range cases {
		if got := IsRetryable(c.err); got != c.want {
			t.Fatalf("%s: IsRetryable = %v, want %v", c.name, got, c.want)
		}
		if got := Retryable(c.err); got != c.want {
			t.Fatalf("%s: Retryable = %v, want %v", c.name, got, c.want)
		}
	}
}
