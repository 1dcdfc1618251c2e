// Package pg provides a Postgres client using pgxpool with connect guardrails and optional query tracing
package pg

import (
	"context"
	"errors"
	"time"

	perr "forword/internal/platform/errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Config configures pgxpool for pg
type Config struct {
	URL      string
	MaxConns int32
	SlowMs   int
	AppName  string

	ConnectRetries int           // default 6
	PingTimeout    time.Duration // default 3s
}

// PG is a postgres client with pool and optional tracer
type PG struct {
	Pool   *pgxpool.Pool
	Tracer QueryTracer
	SlowMs int
}

// seams
var (
	newPool = pgxpool.NewWithConfig
	ping    = func(ctx context.Context, p *pgxpool.Pool) error { return p.Ping(ctx) }
	sleep   = time.Sleep
)

const (
	backoffStart   = 150 * time.Millisecond
	backoffCeiling = 2 * time.Second
)

// Open parses cfg, creates the pool and pings it with exponential backoff.
// Transient failures are retried up to ConnectRetries times; anything else fails fast.
// All failures come back as perr.ErrorCodeUnavailable
func Open(ctx context.Context, cfg Config, tracer QueryTracer) (*PG, error) {
	pcfg, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeInvalidArgument, "parse postgres url")
	}
	if cfg.MaxConns > 0 {
		pcfg.MaxConns = cfg.MaxConns
	}
	if cfg.AppName != "" {
		if pcfg.ConnConfig.RuntimeParams == nil {
			pcfg.ConnConfig.RuntimeParams = map[string]string{}
		}
		pcfg.ConnConfig.RuntimeParams["application_name"] = cfg.AppName
	}

	pool, err := newPool(ctx, pcfg)
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeUnavailable, "create postgres pool")
	}

	attempts := cfg.ConnectRetries
	if attempts <= 0 {
		attempts = 6
	}
	timeout := cfg.PingTimeout
	if timeout <= 0 {
		timeout = 3 * time.Second
	}

	var lastErr error
	tried := 0
	backoff := backoffStart
	for tried < attempts {
		tried++
		pctx, cancel := context.WithTimeout(ctx, timeout)
		lastErr = ping(pctx, pool)
		cancel()
		if lastErr == nil {
			return &PG{Pool: pool, Tracer: tracer, SlowMs: cfg.SlowMs}, nil
		}
		if ctx.Err() != nil {
			pool.Close()
			return nil, perr.Wrap(ctx.Err(), perr.ErrorCodeUnavailable, "postgres connect cancelled")
		}
		if !transient(lastErr) || tried == attempts {
			break
		}
		sleep(backoff)
		backoff = min(backoff*2, backoffCeiling)
	}

	pool.Close()
	return nil, perr.Wrapf(lastErr, perr.ErrorCodeUnavailable, "postgres ping failed after %d attempt(s)", tried)
}

// transient reports whether a ping failure is worth another attempt.
// A ping that timed out while the parent ctx is alive counts as transient
func transient(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	return perr.IsRetryable(err)
}

// Query runs sql on the pool and reports it to the tracer
func (p *PG) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	start := time.Now()
	rows, err := p.Pool.Query(ctx, sql, args...)
	p.trace(ctx, sql, args, start, err)
	return rows, err
}

func (p *PG) trace(ctx context.Context, sql string, args []any, start time.Time, err error) {
	if p.Tracer == nil {
		return
	}
	el := time.Since(start)
	p.Tracer.OnQuery(ctx, QueryEvent{
		SQL:       sql,
		Args:      args,
		ElapsedUS: el.Microseconds(),
		Err:       err,
		Slow:      p.SlowMs > 0 && el >= time.Duration(p.SlowMs)*time.Millisecond,
	})
}

// Close closes the pool
func (p *PG) Close() {
	if p != nil && p.Pool != nil {
		p.Pool.Close()
	}
}
