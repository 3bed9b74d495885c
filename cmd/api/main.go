package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	server "review_explorer/internal/adapters/http_server"
	"review_explorer/internal/adapters/observability"
	"review_explorer/internal/bootstrap"
	"review_explorer/internal/domain"
	"review_explorer/internal/shared"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)
	observability.SetLevel(cfg.LogLevel)

	reg := observability.InitRegistry()
	observability.Serve(cfg.MetricsAddr, reg)

	// cache is optional; a broken Redis only costs recomputation
	var cache domain.Cache
	rc, err := bootstrap.Cache(ctx, cfg)
	switch {
	case err != nil:
		log.Warn().Err(err).Msg("redis unavailable; view cache disabled")
	case rc != nil:
		defer rc.Close()
		cache = rc
	}

	// the table is loaded once; the server never starts on a bad source
	q, err := bootstrap.Queries(ctx, cfg, cache)
	if err != nil {
		var le *domain.LoadError
		if errors.As(err, &le) {
			log.Fatal().Err(err).Str("source", le.Source).Int("row", le.Row).Str("column", le.Column).Msg("failed to load data")
		}
		log.Fatal().Err(err).Msg("startup failed")
	}

	// http
	srv := server.New(server.Options{
		Timeout:        cfg.RequestTimeout,
		RateLimitRPS:   cfg.RateLimitRPS,
		RateLimitBurst: cfg.RateLimitBurst,
	})
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{Q: q})

	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux(), ReadHeaderTimeout: 5 * time.Second}
	go func() {
		<-ctx.Done()
		sctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpSrv.Shutdown(sctx); err != nil {
			log.Error().Err(err).Msg("http shutdown failed")
		}
	}()

	log.Info().Str("addr", cfg.HTTPAddr).Str("dataset_id", q.DatasetID()).Msg("API listening")
	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
	log.Info().Msg("API stopped")
}
