//go:build integration_pg

package dictionary

import (
	"context"
	"reflect"
	"testing"
	"time"

	"forword/internal/platform/store/pg"
	"forword/internal/platform/store/pg/pgtest"
	kit "forword/internal/platform/testkit"
)

func TestPG_Words_Integration(t *testing.T) {
	dsn := pgtest.Start(t)

	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()

	db, err := pg.Open(ctx, pg.Config{URL: dsn, AppName: "forword-dictionary-it", ConnectRetries: 10}, nil)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(db.Close)

	setup := []string{
		`CREATE SCHEMA lists`,
		`CREATE TABLE lists.forbidden_words (id serial PRIMARY KEY, word text)`,
		`INSERT INTO lists.forbidden_words (word) VALUES ('badword'), (NULL), ('  '), ('나쁜말'), ('scheiße'), ('bad')`,
	}
	for _, q := range setup {
		if _, err := db.Pool.Exec(ctx, q); err != nil {
			t.Fatalf("setup %q: %v", q, err)
		}
	}

	got, err := Read(ctx, PG{DB: db, Table: "lists.forbidden_words", Column: "word", Order: "id"})
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if want := []string{"badword", "나쁜말", "scheiße", "bad"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("words = %q, want %q", got, want)
	}

	_, err = Read(ctx, PG{DB: db, Table: "missing_table", Column: "word"})
	if !IsSourceUnavailable(err) {
		t.Fatalf("missing table must be unavailable, got %v", err)
	}
	kit.MustContain(t, err.Error(), "dictionary table missing_table not found")
}
