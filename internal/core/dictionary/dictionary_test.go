package dictionary

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"testing/fstest"

	perr "forword/internal/platform/errors"
	kit "forword/internal/platform/testkit"
)

type failing struct{ err error }

func (f failing) Words(context.Context) ([]string, error) { return nil, f.err }
func (failing) Name() string                            { return "failing" }

func TestStatic_CopiesAndHonoursContext(t *testing.T) {
	src := Static{"bad", "badword"}
	got, err := src.Words(context.Background())
	if err != nil || !reflect.DeepEqual(got, []string{"bad", "badword"}) {
		t.Fatalf("Words = %q, %v", got, err)
	}
	got[0] = "mutated"
	if src[0] != "bad" {
		t.Fatalf("Static shares its backing array")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Read(ctx, src); !IsSourceUnavailable(err) || !errors.Is(err, context.Canceled) {
		t.Fatalf("cancelled read = %v", err)
	}
}

func TestRead_WrapsEveryFailure(t *testing.T) {
	cause := errors.New("disk on fire")
	_, err := Read(context.Background(), failing{err: cause})
	if !IsSourceUnavailable(err) {
		t.Fatalf("expected unavailable, got %v", err)
	}
	if !errors.Is(err, cause) {
		t.Fatalf("cause lost: %v", err)
	}
	if e, _ := perr.As(err); e.Op() != "dictionary.read" {
		t.Fatalf("op = %q", e.Op())
	}
	kit.MustContain(t, err.Error(), "dictionary source failing unavailable")

	// already-unavailable errors pass through untouched
	inner := perr.Unavailablef("pool exhausted")
	if _, err := Read(context.Background(), failing{err: inner}); err != inner {
		t.Fatalf("expected passthrough, got %v", err)
	}

	if _, err := Read(context.Background(), nil); !IsSourceUnavailable(err) {
		t.Fatalf("nil source should be unavailable, got %v", err)
	}
}

func TestFile_FromDisk(t *testing.T) {
	p := kit.WriteFile(t, "words.txt", []byte("\xEF\xBB\xBF# list\r\nbad\r\nbadword\r\n나쁜말\r\n"))
	got, err := Read(context.Background(), File{Path: p})
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if want := []string{"bad", "badword", "나쁜말"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("words = %q, want %q", got, want)
	}
	if (File{Path: p}).Name() != "file:"+p {
		t.Fatalf("Name mismatch")
	}
}

func TestFile_FromFS(t *testing.T) {
	fsys := fstest.MapFS{
		"dict/words.txt": {Data: []byte("café\nscheiße\n")},
	}
	got, err := File{Path: "dict/words.txt", FS: fsys}.Words(context.Background())
	if err != nil {
		t.Fatalf("Words: %v", err)
	}
	if want := []string{"café", "scheiße"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("words = %q", got)
	}
}

func TestFile_MissingIsUnavailable(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.txt")
	_, err := Read(context.Background(), File{Path: missing})
	if !IsSourceUnavailable(err) {
		t.Fatalf("expected unavailable, got %v", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected ErrNotExist in chain, got %v", err)
	}
}

func TestFile_EmptyFileIsNotAnError(t *testing.T) {
	p := kit.WriteFile(t, "empty.txt", nil)
	got, err := Read(context.Background(), File{Path: p})
	if err != nil || len(got) != 0 {
		t.Fatalf("got %q, %v", got, err)
	}
}
