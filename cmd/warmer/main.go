package main

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"review_explorer/internal/adapters/observability"
	"review_explorer/internal/bootstrap"
	"review_explorer/internal/explore"
	"review_explorer/internal/shared"
)

func main() {
	ctx := context.Background()
	cfg := shared.Load()

	// 1) initialize global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)
	observability.SetLevel(cfg.LogLevel)

	log.Info().
		Str("source", cfg.DataSource).
		Int("workers", cfg.WarmWorkers).
		Msg("warmer starting")

	rc, err := bootstrap.Cache(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("redis unavailable")
	}
	if rc == nil {
		log.Fatal().Msg("REDIS_ADDR is required to warm the cache")
	}
	defer rc.Close()

	q, err := bootstrap.Queries(ctx, cfg, rc)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load data")
	}

	sem := semaphore.NewWeighted(int64(cfg.WarmWorkers))
	var wg sync.WaitGroup
	var total, failed atomic.Int64

	for _, region := range q.Regions(explore.RegionOrderSource) {
		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, 1); err != nil {
			log.Fatal().Err(err).Msg("semaphore acquire failed")
		}

		wg.Add(1)
		go func(region string) {
			defer wg.Done()
			defer sem.Release(1)

			n, err := q.WarmRegion(ctx, region)
			total.Add(int64(n))
			if err != nil {
				failed.Add(1)
				log.Warn().Str("region", region).Err(err).Msg("warm failed")
				return
			}
			log.Info().Str("region", region).Int("entries", n).Msg("warm ok")
		}(region)
	}

	wg.Wait()
	log.Info().
		Str("dataset_id", q.DatasetID()).
		Int64("entries", total.Load()).
		Int64("failed_regions", failed.Load()).
		Msg("warming completed")
}
