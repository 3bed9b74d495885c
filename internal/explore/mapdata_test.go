package explore_test

import (
	"errors"
	"testing"

	"review_explorer/internal/domain"
	"review_explorer/internal/explore"
)

func TestResolveMap_RecordCoordsWithCentroidFallback(t *testing.T) {
	tbl := explore.NewTable([]domain.HotelRecord{
		rec("서울", "A호텔"),
		withCoords(rec("서울", "A호텔"), 37.6, 127.1),
		rec("서울", "B호텔"),
	})
	v := explore.FilterByRegion(tbl, "서울")

	mv, err := explore.ResolveMap(v, explore.AllHotels, explore.MapRecord, nil)
	if err != nil {
		t.Fatalf("unexpected warning: %v", err)
	}
	if len(mv.Points) != 2 {
		t.Fatalf("expected one point per hotel, got %+v", mv.Points)
	}
	if a := mv.Points[0]; a.Name != "A호텔" || a.Lat != 37.6 || a.Centroid {
		t.Fatalf("A호텔 should use its own coordinates: %+v", a)
	}
	seoul := explore.DefaultCentroids["서울"]
	if b := mv.Points[1]; b.Lat != seoul.Lat || b.Lon != seoul.Lon || !b.Centroid {
		t.Fatalf("B호텔 should fall back to the centroid: %+v", b)
	}
	if mv.Center == nil {
		t.Fatalf("expected a center")
	}
}

func TestResolveMap_CentroidStrategyIgnoresRecordCoords(t *testing.T) {
	tbl := explore.NewTable([]domain.HotelRecord{withCoords(rec("부산", "B호텔"), 1, 2)})
	mv, err := explore.ResolveMap(explore.FilterByRegion(tbl, "부산"), "B호텔", explore.MapCentroid, nil)
	if err != nil {
		t.Fatalf("unexpected warning: %v", err)
	}
	if p := mv.Points[0]; !p.Centroid || p.Lat != explore.DefaultCentroids["부산"].Lat {
		t.Fatalf("expected centroid point, got %+v", p)
	}
}

func TestResolveMap_MissingCoordinatesWarns(t *testing.T) {
	tbl := explore.NewTable([]domain.HotelRecord{rec("무인도", "X호텔", -1, 2, 0, 3, -2, 1)})
	v := explore.FilterByRegion(tbl, "무인도")

	for _, strategy := range []explore.MapStrategy{explore.MapRecord, explore.MapCentroid} {
		mv, err := explore.ResolveMap(v, "X호텔", strategy, nil)
		var w *domain.MissingCoordinatesWarning
		if !errors.As(err, &w) || w.Region != "무인도" || w.Hotel != "X호텔" {
			t.Fatalf("%s: expected MissingCoordinatesWarning, got %v", strategy, err)
		}
		if len(mv.Points) != 0 || mv.Center != nil || mv.Warning == "" {
			t.Fatalf("%s: expected empty map with warning, got %+v", strategy, mv)
		}
		if len(mv.Skipped) != 1 || mv.Skipped[0] != "X호텔" {
			t.Fatalf("%s: expected X호텔 skipped, got %v", strategy, mv.Skipped)
		}
	}
}

func TestResolveMap_CustomCentroids(t *testing.T) {
	tbl := explore.NewTable([]domain.HotelRecord{rec("무인도", "X호텔")})
	centroids := map[string]domain.Coords{"무인도": {Lat: 10, Lon: 20}}

	mv, err := explore.ResolveMap(explore.FilterByRegion(tbl, "무인도"), explore.AllHotels, explore.MapCentroid, centroids)
	if err != nil {
		t.Fatalf("unexpected warning: %v", err)
	}
	if mv.Center == nil || mv.Center.Lat != 10 || mv.Center.Lon != 20 {
		t.Fatalf("unexpected center: %+v", mv.Center)
	}
}
