package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"forword/internal/core/version"
	"forword/internal/platform/config"
	"forword/internal/platform/logger"
	phttp "forword/internal/platform/net/http"
	"forword/internal/platform/net/middleware"
	"forword/internal/platform/store/pg"

	"forword/internal/modkit/module"
	"forword/internal/services/api"
	filtermod "forword/internal/services/api/filter/module"

	"github.com/go-chi/chi/v5"
)

func main() {
	root := config.New()
	apiCfg := root.Prefix("CORE_API_")
	pgCfg := root.Prefix("SERVICE_PGSQL_")

	l := logger.Get()
	l.Info().Str("build", version.Info("forword-api").String()).Msg("starting")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// postgres is only needed when the dictionary lives there
	var db *pg.PG
	if root.Prefix("FORWORD_").MayEnum("DICT_SOURCE", "file", "file", "pg") == "pg" {
		var tracer pg.QueryTracer
		if pgCfg.MayBool("LOG_SQL", false) {
			tracer = pg.Tracer(*logger.Named("pg"))
		}
		var err error
		db, err = pg.Open(ctx, pg.Config{
			URL:      pgCfg.MustString("DBURL"),
			MaxConns: int32(pgCfg.MayInt("MAX_CONNS", 4)),
			SlowMs:   pgCfg.MayInt("SLOW_MS", 500),
			AppName:  "forword-api",
		}, tracer)
		if err != nil {
			l.Panic().Err(err).Msg("postgres open failed")
		}
		defer db.Close()
	}

	// http server (reads CORE_API_PORT / CORE_API_ADDR)
	srv := phttp.NewServer(apiCfg, func(m *chi.Mux) {
		m.Use(middleware.Heartbeat("/healthz"))
	})

	err := api.Mount(ctx, srv.Router(), api.Options{
		Config:      root,
		PG:          db,
		Logger:      logger.Named("filter"),
		Timeout:     apiCfg.MayDuration("REQUEST_TIMEOUT", 30*time.Second),
		CORSOrigins: apiCfg.MayCSV("CORS_ORIGINS", nil),
		Throttle:    apiCfg.MayInt("THROTTLE", 0),
		EnableDocs:  apiCfg.MayBool("DOCS", false),
	})
	if err != nil {
		l.Panic().Err(err).Msg("dictionary load failed")
	}
	l.Info().Strs("modules", module.Names()).Msg("api mounted")

	go reloadOnHangup(ctx, l)

	if err := srv.Run(ctx); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}

// reloadOnHangup rebuilds the dictionary on SIGHUP, same as POST /v1/filter/reload
func reloadOnHangup(ctx context.Context, l *logger.Logger) {
	ports, ok := module.PortsAs[filtermod.Ports]("filter")
	if !ok {
		l.Warn().Msg("filter ports not registered, SIGHUP reload disabled")
		return
	}
	hup := make(chan os.Signal, 1)
	signal.Notify(hup, syscall.SIGHUP)
	defer signal.Stop(hup)
	for {
		select {
		case <-ctx.Done():
			return
		case <-hup:
			if _, err := ports.Filter.Reload(ctx); err != nil {
				l.Error().Err(err).Msg("SIGHUP reload failed")
			}
		}
	}
}
