package domain

// HotelRecord is one row of the sentiment table. Region and Hotel together
// do not key a row: several rows may share both.
type HotelRecord struct {
	Region   string
	Hotel    string
	Positive string // refined positive summary
	Negative string // refined negative summary
	Lat, Lon *float64
	Scores   AspectScores
}

// Coords returns the record's own coordinates; ok is false unless both
// latitude and longitude are present.
func (r HotelRecord) Coords() (Coords, bool) {
	if r.Lat == nil || r.Lon == nil {
		return Coords{}, false
	}
	return Coords{Lat: *r.Lat, Lon: *r.Lon}, true
}

type Coords struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Dataset is what a RecordSource hands back: rows in source order plus
// counters gathered while reading them.
type Dataset struct {
	Records []HotelRecord
	Stats   LoadStats
}

type LoadStats struct {
	Rows          int
	BlankScores   int // aspect cells that were empty or nan and loaded as 0
	MissingCoords int // rows without a usable latitude/longitude pair
}
