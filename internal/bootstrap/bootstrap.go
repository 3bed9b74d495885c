// Package bootstrap turns configuration into the pieces both commands
// share: the record source, the exploration options and the view cache.
package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite"

	"review_explorer/internal/adapters/csvsource"
	redisad "review_explorer/internal/adapters/redis"
	"review_explorer/internal/adapters/remote"
	"review_explorer/internal/app"
	"review_explorer/internal/domain"
	"review_explorer/internal/explore"
	"review_explorer/internal/shared"
	"review_explorer/internal/storage/sqltable"
)

// Source builds the configured record source. name labels logs and
// metrics; closeFn releases whatever the source holds open.
func Source(cfg shared.Config) (src domain.RecordSource, name string, closeFn func(), err error) {
	noop := func() {}
	switch cfg.DataSource {
	case "csv":
		return csvsource.New(cfg.DataPath, cfg.DataEncoding, remote.New(cfg.FetchRPS)), "csv", noop, nil
	case "sql":
		db, err := sql.Open(cfg.SQLDriver, cfg.SQLDSN)
		if err != nil {
			return nil, "", noop, fmt.Errorf("sql.Open: %w", err)
		}
		s, err := sqltable.New(db, cfg.SQLTable)
		if err != nil {
			_ = db.Close()
			return nil, "", noop, err
		}
		return s, "sql", func() { _ = db.Close() }, nil
	default:
		return nil, "", noop, fmt.Errorf("unsupported data source %q", cfg.DataSource)
	}
}

// Options maps the configured policies onto explore.Options.
func Options(cfg shared.Config) (explore.Options, error) {
	order, err := explore.ParseRegionOrder(cfg.RegionOrder)
	if err != nil {
		return explore.Options{}, err
	}
	strategy, err := explore.ParseMapStrategy(cfg.MapStrategy)
	if err != nil {
		return explore.Options{}, err
	}
	dup, err := explore.ParseDuplicatePolicy(cfg.DuplicatePolicy)
	if err != nil {
		return explore.Options{}, err
	}
	return explore.Options{
		RegionOrder: order,
		Duplicates:  dup,
		Map:         strategy,
		Centroids:   explore.DefaultCentroids,
	}, nil
}

// Cache connects to Redis when an address is configured. A nil cache with
// a nil error means caching is off.
func Cache(ctx context.Context, cfg shared.Config) (*redisad.Cache, error) {
	if cfg.RedisAddr == "" {
		return nil, nil
	}
	c := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	pctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := c.Ping(pctx); err != nil {
		_ = c.Close()
		return nil, fmt.Errorf("redis ping %s: %w", cfg.RedisAddr, err)
	}
	log.Info().Str("addr", cfg.RedisAddr).Msg("redis connection ok")
	return c, nil
}

// Queries loads the table and wraps it in a QueryService.
func Queries(ctx context.Context, cfg shared.Config, c domain.Cache) (*app.QueryService, error) {
	opts, err := Options(cfg)
	if err != nil {
		return nil, err
	}
	src, name, closeFn, err := Source(cfg)
	if err != nil {
		return nil, err
	}
	defer closeFn()

	t, err := app.LoadTable(ctx, name, src)
	if err != nil {
		return nil, err
	}
	return app.NewQueryService(t, opts, c, cfg.CacheTTL()), nil
}
