package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"forword/internal/core/dictionary"
	"forword/internal/core/filter"
	perr "forword/internal/platform/errors"
	"forword/internal/platform/logger"
)

// scripted hands out one result per call
type scripted struct {
	mu    sync.Mutex
	calls int
	steps []func() (*filter.Filter, error)
}

func (s *scripted) load(context.Context) (*filter.Filter, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.calls
	s.calls++
	if i >= len(s.steps) {
		i = len(s.steps) - 1
	}
	return s.steps[i]()
}

func words(ws ...string) func() (*filter.Filter, error) {
	return func() (*filter.Filter, error) { return filter.New(ws, filter.WithLogger(logger.Nop())), nil }
}

func fail(err error) func() (*filter.Filter, error) {
	return func() (*filter.Filter, error) { return nil, err }
}

func TestNew_InitialLoad(t *testing.T) {
	s := &scripted{steps: []func() (*filter.Filter, error){words("bad")}}
	svc, err := New(context.Background(), s.load, logger.Nop())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if !svc.Current().Search("bad") {
		t.Fatalf("initial filter not serving")
	}
}

func TestNew_InitialFailureIsFatal(t *testing.T) {
	s := &scripted{steps: []func() (*filter.Filter, error){fail(errors.New("boom"))}}
	svc, err := New(context.Background(), s.load, logger.Nop())
	if svc != nil || !perr.IsCode(err, perr.ErrorCodeUnavailable) {
		t.Fatalf("New = %v, %v", svc, err)
	}
	if _, err := New(context.Background(), nil, logger.Nop()); !perr.IsCode(err, perr.ErrorCodeUnavailable) {
		t.Fatalf("nil loader: %v", err)
	}
}

func TestReload_SwapsOnSuccess(t *testing.T) {
	s := &scripted{steps: []func() (*filter.Filter, error){words("bad"), words("bad", "worse")}}
	svc, _ := New(context.Background(), s.load, logger.Nop())
	before := svc.Current()

	f, err := svc.Reload(context.Background())
	if err != nil {
		t.Fatalf("Reload: %v", err)
	}
	if svc.Current() != f || f == before {
		t.Fatalf("filter not swapped")
	}
	if !svc.Current().Search("worse") {
		t.Fatalf("new dictionary not active")
	}
	// readers holding the old snapshot are unaffected
	if before.Search("worse") {
		t.Fatalf("old snapshot mutated")
	}
}

func TestReload_KeepsCurrentOnFailure(t *testing.T) {
	unavailable := perr.Wrap(errors.New("eof"), perr.ErrorCodeUnavailable, "dictionary source file:x unavailable")
	s := &scripted{steps: []func() (*filter.Filter, error){words("bad"), fail(unavailable), fail(errors.New("raw"))}}
	svc, _ := New(context.Background(), s.load, logger.Nop())
	before := svc.Current()

	if _, err := svc.Reload(context.Background()); err != unavailable {
		t.Fatalf("unavailable error should pass through, got %v", err)
	}
	_, err := svc.Reload(context.Background())
	if !dictionary.IsSourceUnavailable(err) {
		t.Fatalf("foreign errors are reported as unavailable, got %v", err)
	}
	if svc.Current() != before {
		t.Fatalf("failed reload replaced the filter")
	}
}

func TestNewWith_AndConcurrentReload(t *testing.T) {
	s := &scripted{steps: []func() (*filter.Filter, error){words("bad")}}
	svc := NewWith(filter.New([]string{"seed"}, filter.WithLogger(logger.Nop())), s.load, logger.Nop())
	if !svc.Current().Search("seed") {
		t.Fatalf("seed filter not serving")
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, _ = svc.Reload(context.Background())
		}()
		go func() {
			defer wg.Done()
			_ = svc.Current().Replace("a bad word")
		}()
	}
	wg.Wait()
	if s.calls != 8 || !svc.Current().Search("bad") {
		t.Fatalf("calls=%d", s.calls)
	}
}
