package app

import (
	"context"
	"fmt"

	"review_explorer/internal/domain"
	"review_explorer/internal/explore"
)

// WarmRegion precomputes the dashboards of region for every hotel choice
// and every leaderboard aspect and stores them in the cache. It returns how
// many entries were written.
func (s *QueryService) WarmRegion(ctx context.Context, region string) (int, error) {
	n := 0
	for _, hotel := range s.Hotels(region) {
		for _, a := range domain.Aspects {
			if err := ctx.Err(); err != nil {
				return n, err
			}
			d := explore.NewSession(s.table, s.opts, region, hotel).Dashboard(a)
			key := dashboardKey(s.table.ID().String(), region, hotel, a)
			if err := s.cache.Set(ctx, key, d, int(s.cacheTTL.Seconds())); err != nil {
				return n, fmt.Errorf("cache %s: %w", key, err)
			}
			n++
		}
	}
	return n, nil
}
