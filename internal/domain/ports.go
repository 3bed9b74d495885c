package domain

import "context"

// RecordSource reads the whole sentiment table. Implementations wrap
// failures in *LoadError.
type RecordSource interface {
	Load(ctx context.Context) (Dataset, error)
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}

// Read models handed to the presentation surface.

type AspectScore struct {
	Aspect   string   `json:"aspect"` // label, e.g. 청결
	Key      string   `json:"key"`    // ascii key, e.g. cleanliness
	Score    float64  `json:"score"`
	Polarity Polarity `json:"polarity"`
	Color    string   `json:"color"`
}

type Summary struct {
	Positive string `json:"positive"`
	Negative string `json:"negative"`
}

type MapPoint struct {
	Name     string  `json:"name"`
	Lat      float64 `json:"lat"`
	Lon      float64 `json:"lon"`
	Centroid bool    `json:"centroid"` // true when the region centroid stood in
}

type MapView struct {
	Points  []MapPoint `json:"points"`
	Center  *Coords    `json:"center,omitempty"`
	Skipped []string   `json:"skipped,omitempty"` // hotels that could not be placed
	Warning string     `json:"warning,omitempty"`
}

type LeaderEntry struct {
	Hotel string  `json:"hotel"`
	Score float64 `json:"score"`
}

type Leaderboard struct {
	Region string        `json:"region"`
	Aspect string        `json:"aspect"`
	Key    string        `json:"key"`
	Items  []LeaderEntry `json:"items"`
}

// RowView is a raw table row as shown in the expandable data view.
type RowView struct {
	Region    string             `json:"region"`
	Hotel     string             `json:"hotel"`
	Positive  string             `json:"positive"`
	Negative  string             `json:"negative"`
	Scores    map[string]float64 `json:"scores"`
	Latitude  *float64           `json:"latitude,omitempty"`
	Longitude *float64           `json:"longitude,omitempty"`
}

// Dashboard is everything one page render needs. Summary and Aspects are
// only set when a single hotel is selected and resolved to a row.
type Dashboard struct {
	DatasetID   string        `json:"dataset_id"`
	Region      string        `json:"region"`
	Hotel       string        `json:"hotel"`
	AllHotels   bool          `json:"all_hotels"`
	Regions     []string      `json:"regions"`
	Hotels      []string      `json:"hotels"`
	Summary     *Summary      `json:"summary,omitempty"`
	Aspects     []AspectScore `json:"aspects,omitempty"`
	Map         MapView       `json:"map"`
	Rows        []RowView     `json:"rows"`
	Leaderboard Leaderboard   `json:"leaderboard"`
	Empty       bool          `json:"empty"`
	Notices     []string      `json:"notices,omitempty"`
}
