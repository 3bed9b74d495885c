package explore

import (
	"fmt"

	"review_explorer/internal/domain"
)

// DuplicatePolicy resolves several rows for one hotel to a single record.
// Rows are never aggregated; callers that need averages must pre-aggregate
// the source table.
type DuplicatePolicy string

const FirstMatch DuplicatePolicy = "first"

func ParseDuplicatePolicy(s string) (DuplicatePolicy, error) {
	switch DuplicatePolicy(s) {
	case "", FirstMatch:
		return FirstMatch, nil
	}
	return "", fmt.Errorf("unknown duplicate policy %q", s)
}

// Resolve picks the record that stands for v. ok is false for an empty view.
func (p DuplicatePolicy) Resolve(v View) (domain.HotelRecord, bool) {
	return v.First()
}

// ProjectAspects reshapes a record's scores into chart rows in the fixed
// aspect order.
func ProjectAspects(rec domain.HotelRecord) []domain.AspectScore {
	out := make([]domain.AspectScore, 0, len(domain.Aspects))
	for _, a := range domain.Aspects {
		score := rec.Scores.Get(a)
		pol := domain.PolarityOf(score)
		out = append(out, domain.AspectScore{
			Aspect:   a.Label(),
			Key:      a.Key(),
			Score:    score,
			Polarity: pol,
			Color:    pol.Color(),
		})
	}
	return out
}
