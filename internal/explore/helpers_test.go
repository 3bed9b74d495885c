package explore_test

import (
	"review_explorer/internal/domain"
	"review_explorer/internal/explore"
)

func pfloat(f float64) *float64 { return &f }

func rec(region, hotel string, scores ...float64) domain.HotelRecord {
	r := domain.HotelRecord{
		Region:   region,
		Hotel:    hotel,
		Positive: hotel + " good",
		Negative: hotel + " bad",
	}
	copy(r.Scores[:], scores)
	return r
}

func withCoords(r domain.HotelRecord, lat, lon float64) domain.HotelRecord {
	r.Lat, r.Lon = pfloat(lat), pfloat(lon)
	return r
}

// sampleTable has two regions, a duplicated hotel row and one region that
// appears again after another region.
func sampleTable() *explore.Table {
	return explore.NewTable([]domain.HotelRecord{
		rec("서울", "A호텔", 1, 2, 3, 4, 5, 6),
		rec("부산", "B호텔", -1, 0, 1, 2, 3, 4),
		rec("서울", "C호텔", 0, 0, 0, 0, 0, 0),
		rec("서울", "A호텔", 9, 9, 9, 9, 9, 9),
		rec("광주", "D호텔", 2, 2, 2, 2, 2, 2),
	})
}
