package app

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"golang.org/x/sync/singleflight"

	"review_explorer/internal/adapters/observability"
	"review_explorer/internal/domain"
	"review_explorer/internal/explore"
)

const MaxLeaderboardSize = 20

// QueryService answers dashboard queries over one loaded table. Every call
// builds its own explore.Session; the table itself is shared read-only.
type QueryService struct {
	table    *explore.Table
	opts     explore.Options
	cache    domain.Cache
	cacheTTL time.Duration
	group    singleflight.Group
}

// NewQueryService wires the table to a view cache; a nil cache disables
// caching.
func NewQueryService(t *explore.Table, opts explore.Options, c domain.Cache, ttl time.Duration) *QueryService {
	if c == nil {
		c = NopCache{}
	}
	return &QueryService{table: t, opts: opts, cache: c, cacheTTL: ttl}
}

func (s *QueryService) DatasetID() string { return s.table.ID().String() }

// Regions lists regions using order, or the configured policy when order is empty.
func (s *QueryService) Regions(order explore.RegionOrder) []string {
	if order == "" {
		order = s.opts.RegionOrder
	}
	return explore.ListRegions(s.table, order)
}

// Hotels lists the hotel choices of region, AllHotels first. An unknown
// region has no choices at all.
func (s *QueryService) Hotels(region string) []string {
	v := explore.FilterByRegion(s.table, region)
	return explore.ListHotels(v, !v.Empty())
}

func (s *QueryService) Leaderboard(ctx context.Context, region, aspect string, limit int) (domain.Leaderboard, error) {
	a, err := parseAspect(aspect)
	if err != nil {
		return domain.Leaderboard{}, err
	}
	if limit <= 0 {
		limit = explore.DefaultLeaderboardSize
	}
	if limit > MaxLeaderboardSize {
		limit = MaxLeaderboardSize
	}
	key := fmt.Sprintf("leaderboard:%s:%s:%s:%d", s.table.ID(), url.PathEscape(region), a.Key(), limit)
	var lb domain.Leaderboard
	if ok, _ := s.cache.Get(ctx, key, &lb); ok {
		return lb, nil
	}
	sess := explore.NewSession(s.table, s.opts, region, explore.AllHotels)
	lb = sess.Leaderboard(a, limit)
	_ = s.cache.Set(ctx, key, lb, int(s.cacheTTL.Seconds()))
	return lb, nil
}

// Dashboard returns every derived view for a selection. A hotel outside the
// region degrades to an empty dashboard with a notice rather than an error;
// only an unknown aspect is rejected.
func (s *QueryService) Dashboard(ctx context.Context, region, hotel, aspect string) (domain.Dashboard, error) {
	a, err := parseAspect(aspect)
	if err != nil {
		return domain.Dashboard{}, err
	}
	sess := explore.NewSession(s.table, s.opts, region, hotel)
	observeSelection(sess)

	key := dashboardKey(s.table.ID().String(), sess.Region(), sess.Hotel(), a)
	var d domain.Dashboard
	if ok, _ := s.cache.Get(ctx, key, &d); ok {
		observeMap(d)
		return d, nil
	}

	// concurrent misses for the same selection compute once
	v, _, _ := s.group.Do(key, func() (any, error) {
		d := sess.Dashboard(a)
		_ = s.cache.Set(ctx, key, d, int(s.cacheTTL.Seconds()))
		return d, nil
	})
	d = v.(domain.Dashboard)
	observeMap(d)
	return d, nil
}

// dashboardKey escapes names so a ':' inside one cannot shift the fields.
func dashboardKey(datasetID, region, hotel string, a domain.Aspect) string {
	return fmt.Sprintf("dashboard:%s:%s:%s:%s", datasetID, url.PathEscape(region), url.PathEscape(hotel), a.Key())
}

// parseAspect defaults to the first aspect when s is empty.
func parseAspect(s string) (domain.Aspect, error) {
	if s == "" {
		return domain.Aspects[0], nil
	}
	return domain.ParseAspect(s)
}

func observeSelection(sess *explore.Session) {
	sel, err := sess.Selection()
	switch {
	case err != nil:
		observability.ObserveSelection("mismatch")
	case sel.Empty():
		observability.ObserveSelection("empty")
	default:
		observability.ObserveSelection("ok")
	}
}

func observeMap(d domain.Dashboard) {
	if d.Map.Warning != "" {
		observability.ObserveMissingCoords()
	}
}

// NopCache never stores anything.
type NopCache struct{}

func (NopCache) Get(ctx context.Context, key string, dst any) (bool, error)  { return false, nil }
func (NopCache) Set(ctx context.Context, key string, v any, ttlSec int) error { return nil }
func (NopCache) Del(ctx context.Context, key string) error                    { return nil }
