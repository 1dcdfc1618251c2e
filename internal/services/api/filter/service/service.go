// Package service owns the live filter and its hot reload
package service

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"forword/internal/core/dictionary"
	"forword/internal/core/filter"
	perr "forword/internal/platform/errors"
	"forword/internal/platform/logger"
)

// Loader builds a fresh filter, typically filter.Load over the configured source
type Loader func(ctx context.Context) (*filter.Filter, error)

// Service implements domain.FilterPort
type Service struct {
	load Loader
	log  *logger.Logger

	cur atomic.Pointer[filter.Filter]
	mu  sync.Mutex // serializes reloads
}

// New runs the first load; its failure is the caller's startup failure
func New(ctx context.Context, load Loader, log *logger.Logger) (*Service, error) {
	if log == nil {
		log = logger.Named("filter")
	}
	s := &Service{load: load, log: log}
	f, err := s.build(ctx)
	if err != nil {
		return nil, err
	}
	s.cur.Store(f)
	return s, nil
}

// NewWith serves f until the first reload
func NewWith(f *filter.Filter, load Loader, log *logger.Logger) *Service {
	if log == nil {
		log = logger.Named("filter")
	}
	s := &Service{load: load, log: log}
	s.cur.Store(f)
	return s
}

// Current implements domain.FilterPort
func (s *Service) Current() *filter.Filter { return s.cur.Load() }

// Reload implements domain.FilterPort
func (s *Service) Reload(ctx context.Context) (*filter.Filter, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.cur.Load()
	start := time.Now()
	f, err := s.build(ctx)
	if err != nil {
		s.log.Error().Err(err).
			Str("serving", prev.Generation().String()).
			Msg("dictionary reload failed, keeping current filter")
		return nil, err
	}
	s.cur.Store(f)
	s.log.Info().
		Str("previous", prev.Generation().String()).
		Str("dict_generation", f.Generation().String()).
		Int("patterns", f.Patterns()).
		Dur("took", time.Since(start)).
		Msg("dictionary reloaded")
	return f, nil
}

func (s *Service) build(ctx context.Context) (*filter.Filter, error) {
	if s.load == nil {
		return nil, perr.WithOp(perr.Unavailablef("no dictionary loader configured"), "filter.reload")
	}
	f, err := s.load(ctx)
	if err != nil {
		if !dictionary.IsSourceUnavailable(err) {
			err = perr.Wrap(err, perr.ErrorCodeUnavailable, "dictionary reload failed")
		}
		return nil, err
	}
	return f, nil
}
