// Package http provides meta endpoints
package http

import (
	stdctx "context"
	"net/http"
	"time"

	"forword/internal/core/version"
	"forword/internal/modkit/httpkit"
	"forword/internal/services/api/filter/domain"
)

// Pinger is satisfied by adapters that expose Ping
type Pinger interface {
	Ping(stdctx.Context) error
}

// Deps are the handler dependencies
type Deps struct {
	ServiceName string
	StartedAt   time.Time
	PG          Pinger            // nil when postgres is not configured
	Filter      domain.FilterPort // nil when the filter module is not mounted
}

type handlers struct {
	deps Deps
}

// Register mounts the meta routes
func Register(r httpkit.Router, d Deps) {
	h := &handlers{deps: d}

	httpkit.GetJSON(r, "/health", h.health)
	httpkit.GetJSON(r, "/ready", h.ready)
	httpkit.GetJSON(r, "/version", h.version)
}

// HealthResponse is the health payload
type HealthResponse struct {
	OK      bool   `json:"ok"`
	Service string `json:"service"`
	Started string `json:"started"`
	Uptime  int64  `json:"uptime"`
	Now     string `json:"now"`
}

// ReadyCheck describes a single dependency check
type ReadyCheck struct {
	Name   string `json:"name"`
	Status string `json:"status"` // ok fail skipped
	Detail string `json:"detail,omitempty"`
}

// ReadyResponse summarizes readiness
type ReadyResponse struct {
	Status string       `json:"status"` // ok fail
	Checks []ReadyCheck `json:"checks"`
	Now    string       `json:"now"`
}

func (h *handlers) health(_ *http.Request) (any, error) {
	now := time.Now().UTC()
	return HealthResponse{
		OK:      true,
		Service: h.deps.ServiceName,
		Started: h.deps.StartedAt.UTC().Format(time.RFC3339),
		Uptime:  int64(now.Sub(h.deps.StartedAt) / time.Second),
		Now:     now.Format(time.RFC3339),
	}, nil
}

func (h *handlers) ready(r *http.Request) (any, error) {
	ctx, cancel := stdctx.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	checks := []ReadyCheck{h.checkDictionary(), h.checkPG(ctx)}
	overall := "ok"
	for _, c := range checks {
		if c.Status == "fail" {
			overall = "fail"
		}
	}
	return ReadyResponse{
		Status: overall,
		Checks: checks,
		Now:    time.Now().UTC().Format(time.RFC3339),
	}, nil
}

func (h *handlers) checkDictionary() ReadyCheck {
	if h.deps.Filter == nil {
		return ReadyCheck{Name: "dictionary", Status: "skipped"}
	}
	f := h.deps.Filter.Current()
	if f == nil {
		return ReadyCheck{Name: "dictionary", Status: "fail", Detail: "no filter loaded"}
	}
	return ReadyCheck{Name: "dictionary", Status: "ok", Detail: f.Generation().String()}
}

func (h *handlers) checkPG(ctx stdctx.Context) ReadyCheck {
	if h.deps.PG == nil {
		return ReadyCheck{Name: "pg", Status: "skipped"}
	}
	if err := h.deps.PG.Ping(ctx); err != nil {
		return ReadyCheck{Name: "pg", Status: "fail", Detail: err.Error()}
	}
	return ReadyCheck{Name: "pg", Status: "ok"}
}

func (h *handlers) version(_ *http.Request) (any, error) {
	return version.Info(h.deps.ServiceName), nil
}
