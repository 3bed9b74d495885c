package domain

import (
	"fmt"
	"strings"
)

// Aspect is one of the six fixed quality dimensions carried by every row.
type Aspect int

const (
	Noise Aspect = iota
	Price
	Location
	Service
	Cleanliness
	Amenities
)

// Aspects lists every aspect in presentation order. Charts and tables keep
// this order; it is not alphabetical.
var Aspects = [...]Aspect{Noise, Price, Location, Service, Cleanliness, Amenities}

var aspectLabels = [...]string{"소음", "가격", "위치", "서비스", "청결", "편의시설"}

var aspectKeys = [...]string{"noise", "price", "location", "service", "cleanliness", "amenities"}

// Label is the column name used by the source table and the UI.
func (a Aspect) Label() string {
	if a < 0 || int(a) >= len(aspectLabels) {
		return ""
	}
	return aspectLabels[a]
}

// Key is the ASCII identifier used in URLs and JSON.
func (a Aspect) Key() string {
	if a < 0 || int(a) >= len(aspectKeys) {
		return ""
	}
	return aspectKeys[a]
}

func (a Aspect) String() string { return a.Key() }

// ParseAspect accepts either the label or the key (case-insensitive).
func ParseAspect(s string) (Aspect, error) {
	s = strings.TrimSpace(s)
	for _, a := range Aspects {
		if s == a.Label() || strings.EqualFold(s, a.Key()) {
			return a, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAspect, s)
}

// AspectScores holds one signed score per aspect, indexed by Aspect.
type AspectScores [len(Aspects)]float64

func (s AspectScores) Get(a Aspect) float64 { return s[a] }

// Polarity is a display hint derived from the sign of a score.
type Polarity string

const (
	PolarityWarning Polarity = "warning"
	PolarityNeutral Polarity = "neutral"
)

// PolarityOf tags negative scores as warnings and everything else as neutral.
func PolarityOf(score float64) Polarity {
	if score < 0 {
		return PolarityWarning
	}
	return PolarityNeutral
}

// Color is the bar color the chart uses for this polarity.
func (p Polarity) Color() string {
	if p == PolarityWarning {
		return "crimson"
	}
	return "steelblue"
}
