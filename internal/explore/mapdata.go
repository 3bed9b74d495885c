package explore

import (
	"fmt"

	"review_explorer/internal/domain"
)

// MapStrategy picks where map points come from.
type MapStrategy string

const (
	// MapCentroid places every hotel on its region's representative point.
	MapCentroid MapStrategy = "centroid"
	// MapRecord uses each hotel's own coordinates and falls back to the
	// region centroid when a hotel has none.
	MapRecord MapStrategy = "record"
)

func ParseMapStrategy(s string) (MapStrategy, error) {
	switch MapStrategy(s) {
	case "", MapRecord:
		return MapRecord, nil
	case MapCentroid:
		return MapCentroid, nil
	}
	return "", fmt.Errorf("unknown map strategy %q", s)
}

// DefaultCentroids maps region names to a representative coordinate.
var DefaultCentroids = map[string]domain.Coords{
	"서울": {Lat: 37.5665, Lon: 126.9780},
	"부산": {Lat: 35.1796, Lon: 129.0756},
	"인천": {Lat: 37.4563, Lon: 126.7052},
	"대구": {Lat: 35.8722, Lon: 128.6025},
	"광주": {Lat: 35.1595, Lon: 126.8526},
	"대전": {Lat: 36.3504, Lon: 127.3845},
	"울산": {Lat: 35.5384, Lon: 129.3114},
	"세종": {Lat: 36.4800, Lon: 127.2890},
	"수원": {Lat: 37.2636, Lon: 127.0286},
	"전주": {Lat: 35.8242, Lon: 127.1480},
	"제주": {Lat: 33.4996, Lon: 126.5312},
	"강릉": {Lat: 37.7519, Lon: 128.8761},
	"속초": {Lat: 38.2044, Lon: 128.5912},
	"경주": {Lat: 35.8562, Lon: 129.2247},
	"여수": {Lat: 34.7604, Lon: 127.6622},
	"춘천": {Lat: 37.8813, Lon: 127.7298},
}

// ResolveMap builds one point per distinct hotel in v. It never fails hard:
// when no point can be placed the view is empty and the returned error is a
// *domain.MissingCoordinatesWarning, whose text is also set on the view.
func ResolveMap(v View, hotel string, strategy MapStrategy, centroids map[string]domain.Coords) (domain.MapView, error) {
	if centroids == nil {
		centroids = DefaultCentroids
	}
	type slot struct {
		region string
		coords domain.Coords
		own    bool
	}
	var order []string
	slots := make(map[string]*slot)
	for _, idx := range v.rows {
		r := &v.table.records[idx]
		s, ok := slots[r.Hotel]
		if !ok {
			s = &slot{region: r.Region}
			slots[r.Hotel] = s
			order = append(order, r.Hotel)
		}
		if strategy == MapRecord && !s.own {
			if c, ok := r.Coords(); ok {
				s.coords, s.own = c, true
			}
		}
	}

	mv := domain.MapView{Points: []domain.MapPoint{}}
	for _, name := range order {
		s := slots[name]
		p := domain.MapPoint{Name: name}
		switch c, ok := centroids[s.region]; {
		case s.own:
			p.Lat, p.Lon = s.coords.Lat, s.coords.Lon
		case ok:
			p.Lat, p.Lon, p.Centroid = c.Lat, c.Lon, true
		default:
			mv.Skipped = append(mv.Skipped, name)
			continue
		}
		mv.Points = append(mv.Points, p)
	}

	if len(mv.Points) == 0 {
		region := v.region
		if region == "" && len(order) > 0 {
			region = slots[order[0]].region
		}
		if hotel == AllHotels {
			hotel = ""
		}
		w := &domain.MissingCoordinatesWarning{Region: region, Hotel: hotel}
		mv.Warning = w.Error()
		return mv, w
	}

	var c domain.Coords
	for _, p := range mv.Points {
		c.Lat += p.Lat
		c.Lon += p.Lon
	}
	c.Lat /= float64(len(mv.Points))
	c.Lon /= float64(len(mv.Points))
	mv.Center = &c
	return mv, nil
}
