// Package module wires the filter endpoints and the live filter into the API
package module

import (
	"context"
	"net/http"

	"forword/internal/core/filter"
	modkit "forword/internal/modkit"
	"forword/internal/modkit/httpkit"
	str "forword/internal/platform/strings"

	"forword/internal/services/api/filter/domain"
	filterhttp "forword/internal/services/api/filter/http"
	filtersvc "forword/internal/services/api/filter/service"
)

// Ports exposed by the filter module
type Ports struct {
	Filter domain.FilterPort
}

// Module implements the modkit.Module interface
type Module struct {
	built modkit.Built
	opts  Options
	svc   *filtersvc.Service
}

// New loads the dictionary once and builds the module. A dictionary that cannot
// be read is a startup failure
func New(ctx context.Context, deps modkit.Deps, opts ...modkit.Option) (*Module, error) {
	o := FromConfig(deps.Cfg)
	return NewWithOptions(ctx, deps, o, opts...)
}

// NewWithOptions is New with explicit settings
func NewWithOptions(ctx context.Context, deps modkit.Deps, o Options, opts ...modkit.Option) (*Module, error) {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("filter"),
		modkit.WithPrefix("/filter"),
	}, opts...)...)

	log := deps.Logger("filter")
	src := o.DictionarySource(deps.PG)
	fopts := o.FilterOptions(log)
	load := func(ctx context.Context) (*filter.Filter, error) {
		if o.LoadTimeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, o.LoadTimeout)
			defer cancel()
		}
		return filter.Load(ctx, src, fopts...)
	}

	svc, err := filtersvc.New(ctx, load, log)
	if err != nil {
		return nil, err
	}
	return &Module{built: b, opts: o, svc: svc}, nil
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	m.built.Mount(r, func(rr httpkit.Router) {
		filterhttp.Register(rr, m.svc)
	})
}

// Name implements the modkit.Module interface
func (m *Module) Name() string { return str.FirstNonEmpty(m.built.Name, "filter") }

// Prefix returns the mount prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.built.Prefix) }

// Middlewares returns the module middlewares
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.built.Mw }

// Ports implements the modkit.Module interface
func (m *Module) Ports() any { return Ports{Filter: m.svc} }
