// Package api provides the HTTP API for the filter service
package api

import (
	"context"
	"time"

	"forword/internal/platform/config"
	"forword/internal/platform/logger"
	phttp "forword/internal/platform/net/http"
	"forword/internal/platform/store/pg"

	"forword/internal/modkit"
	"forword/internal/modkit/httpkit"
	"forword/internal/modkit/module"
	"forword/internal/modkit/swaggerkit"

	filtermod "forword/internal/services/api/filter/module"
	metamod "forword/internal/services/api/meta/module"
)

// Options are the API options
type Options struct {
	Config config.Conf // root config, modules add their own prefix
	PG     *pg.PG      // optional, required for FORWORD_DICT_SOURCE=pg
	Logger *logger.Logger

	Timeout     time.Duration
	CORSOrigins []string
	Throttle    int
	EnableDocs  bool
}

// Mount loads the dictionary and mounts every module under /v1
func Mount(ctx context.Context, r phttp.Router, opt Options) error {
	deps := modkit.Deps{
		Log: opt.Logger,
		Cfg: opt.Config,
		PG:  opt.PG,
	}

	filterMod, err := filtermod.New(ctx, deps)
	if err != nil {
		return err
	}
	ports := module.MustPortsOf[filtermod.Ports](filterMod)

	mods := []module.Module{
		filterMod,
		metamod.New(deps, modkit.WithPorts(ports)),
	}

	swaggerkit.Mount(r, opt.EnableDocs)

	stack := httpkit.CommonStack(httpkit.StackOptions{
		Timeout:     opt.Timeout,
		CORSOrigins: opt.CORSOrigins,
		Throttle:    opt.Throttle,
	})
	httpkit.MountAPIV1(r, stack, func(api httpkit.Router) {
		for _, m := range mods {
			// register each module's ports under its own name (for cross-module lookups)
			module.Register(m.Name(), m.Ports())
			m.MountRoutes(api)
		}
	})
	return nil
}
