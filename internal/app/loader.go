package app

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"

	"review_explorer/internal/adapters/observability"
	"review_explorer/internal/domain"
	"review_explorer/internal/explore"
)

// LoadTable reads src once and freezes it into a Table. Any failure is a
// *domain.LoadError; a source without data rows is one too.
func LoadTable(ctx context.Context, name string, src domain.RecordSource) (*explore.Table, error) {
	start := time.Now()
	ds, err := src.Load(ctx)
	if err != nil {
		var le *domain.LoadError
		if !errors.As(err, &le) {
			err = &domain.LoadError{Source: name, Err: err}
		}
		return nil, err
	}
	if len(ds.Records) == 0 {
		return nil, &domain.LoadError{Source: name, Err: errors.New("no data rows")}
	}

	t := explore.NewTable(ds.Records)
	observability.ObserveDataset(name, t.Len())

	log.Info().
		Str("source", name).
		Str("dataset_id", t.ID().String()).
		Int("rows", ds.Stats.Rows).
		Int("regions", len(explore.ListRegions(t, explore.RegionOrderSource))).
		Int("missing_coords", ds.Stats.MissingCoords).
		Dur("took", time.Since(start)).
		Msg("table loaded")
	if ds.Stats.BlankScores > 0 {
		log.Warn().Int("cells", ds.Stats.BlankScores).Msg("blank aspect scores loaded as 0")
	}
	return t, nil
}
