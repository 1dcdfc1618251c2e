// Package http provides the filter endpoints
package http

import (
	"context"
	stdhttp "net/http"

	"forword/internal/core/filter"
	"forword/internal/modkit/httpkit"
	"forword/internal/platform/logger"
	pnet "forword/internal/platform/net"
	"forword/internal/platform/net/middleware"
	"forword/internal/services/api/filter/domain"
)

// Register mounts the filter routes. Query endpoints run against one filter
// snapshot per request, pinned before the handler runs
func Register(r httpkit.Router, port domain.FilterPort) {
	h := &handlers{port: port}

	r.Group(func(q httpkit.Router) {
		q.Use(Pin(port))
		httpkit.PostJSON[domain.TextInput](q, "/search", h.search)
		httpkit.PostJSON[domain.ReplaceInput](q, "/replace", h.replace)
		httpkit.PostJSON[domain.TextInput](q, "/normalize", h.normalize)
		httpkit.PostJSON[domain.TextInput](q, "/find", h.find)
		httpkit.GetJSON(q, "/dictionary", h.dictionary)
	})

	// reload swaps the snapshot itself, so it is not pinned
	httpkit.Post(r, "/reload", h.reload)
}

type handlers struct {
	port domain.FilterPort
}

type pinnedKey struct{}

// Pin stores the current filter on the request context and announces its
// generation in the response header and the logging context
func Pin(port domain.FilterPort) func(stdhttp.Handler) stdhttp.Handler {
	return func(next stdhttp.Handler) stdhttp.Handler {
		return stdhttp.HandlerFunc(func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
			f := port.Current()
			gen := f.Generation().String()
			w.Header().Set(middleware.GenerationHeader, gen)
			ctx := pnet.WithGeneration(r.Context(), gen)
			ctx = context.WithValue(ctx, pinnedKey{}, f)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// pinned returns the filter pinned on ctx, falling back to the live one
func (h *handlers) pinned(ctx context.Context) *filter.Filter {
	if f, ok := ctx.Value(pinnedKey{}).(*filter.Filter); ok && f != nil {
		return f
	}
	return h.port.Current()
}

func (h *handlers) search(r *stdhttp.Request, in domain.TextInput) (any, error) {
	return domain.SearchResult{Found: h.pinned(r.Context()).Search(in.Text)}, nil
}

func (h *handlers) replace(r *stdhttp.Request, in domain.ReplaceInput) (any, error) {
	f := h.pinned(r.Context())
	if in.Token != nil {
		return domain.ReplaceResult{Text: f.ReplaceWith(in.Text, *in.Token)}, nil
	}
	return domain.ReplaceResult{Text: f.Replace(in.Text)}, nil
}

func (h *handlers) normalize(r *stdhttp.Request, in domain.TextInput) (any, error) {
	return domain.NormalizeResult{Normalized: h.pinned(r.Context()).NormalizeForDiagnostics(in.Text)}, nil
}

func (h *handlers) find(r *stdhttp.Request, in domain.TextInput) (any, error) {
	hits := h.pinned(r.Context()).Find(in.Text)
	if hits == nil {
		hits = []filter.Hit{}
	}
	return domain.FindResult{Hits: hits}, nil
}

func (h *handlers) dictionary(r *stdhttp.Request) (any, error) {
	return domain.Describe(h.pinned(r.Context())), nil
}

func (h *handlers) reload(r *stdhttp.Request) (any, error) {
	prev := h.port.Current().Generation().String()
	f, err := h.port.Reload(r.Context())
	if err != nil {
		return nil, err
	}
	gen := f.Generation().String()
	logger.C(pnet.WithGeneration(r.Context(), gen)).Info().Str("previous", prev).Msg("reload requested")

	return httpkit.Response{
		Status: stdhttp.StatusOK,
		Body:   domain.ReloadResult{DictionaryInfo: domain.Describe(f), Previous: prev},
		Header: stdhttp.Header{middleware.GenerationHeader: []string{gen}},
	}, nil
}
