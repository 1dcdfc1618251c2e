// Package module wires meta endpoints into the API using a tiny module
package module

import (
	"net/http"
	"time"

	modkit "forword/internal/modkit"
	"forword/internal/modkit/httpkit"
	str "forword/internal/platform/strings"

	filtermod "forword/internal/services/api/filter/module"
	metahttp "forword/internal/services/api/meta/http"
)

// Module implements the modkit.Module interface
type Module struct {
	deps      modkit.Deps
	built     modkit.Built
	ports     filtermod.Ports
	startedAt time.Time
}

// New constructs a meta module. Filter ports, when injected with modkit.WithPorts,
// feed the readiness check
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("meta"),
		modkit.WithPrefix("/meta"),
	}, opts...)...)

	m := &Module{deps: deps, built: b, startedAt: time.Now()}
	if p, ok := b.Ports.(filtermod.Ports); ok {
		m.ports = p
	}
	return m
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	d := metahttp.Deps{
		ServiceName: "forword-api",
		StartedAt:   m.startedAt,
		Filter:      m.ports.Filter,
	}
	if m.deps.PG != nil && m.deps.PG.Pool != nil {
		d.PG = m.deps.PG.Pool
	}
	m.built.Mount(r, func(rr httpkit.Router) {
		metahttp.Register(rr, d)
	})
}

// Name implements the modkit.Module interface
func (m *Module) Name() string { return str.FirstNonEmpty(m.built.Name, "meta") }

// Prefix implements the modkit.Module interface
func (m *Module) Prefix() string { return str.MustPrefix(m.built.Prefix) }

// Middlewares implements the modkit.Module interface
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.built.Mw }

// Ports implements the modkit.Module interface
func (m *Module) Ports() any { return nil }
