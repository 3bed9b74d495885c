package explore

import (
	"fmt"

	"review_explorer/internal/domain"
)

// Options carries the presentation policies a Session applies.
type Options struct {
	RegionOrder RegionOrder
	Duplicates  DuplicatePolicy
	Map         MapStrategy
	Centroids   map[string]domain.Coords // nil means DefaultCentroids
}

// Session is the selection state of one request: a table reference plus
// the chosen region and hotel. It is cheap to build and never shared.
type Session struct {
	table *Table
	opts  Options

	region    string
	hotel     string
	regionSel View
	hotelSel  View
	selErr    error
}

// NewSession applies the cascading selection. An empty region picks the
// first listed region; an empty hotel picks AllHotels.
func NewSession(t *Table, opts Options, region, hotel string) *Session {
	if opts.Map == "" {
		opts.Map = MapRecord
	}
	s := &Session{table: t, opts: opts, region: region, hotel: hotel}
	if s.region == "" {
		if regions := ListRegions(t, opts.RegionOrder); len(regions) > 0 {
			s.region = regions[0]
		}
	}
	if s.hotel == "" {
		s.hotel = AllHotels
	}
	s.regionSel = FilterByRegion(t, s.region)
	s.hotelSel, s.selErr = FilterByHotel(s.regionSel, s.hotel)
	return s
}

func (s *Session) Region() string { return s.region }

func (s *Session) Hotel() string { return s.hotel }

func (s *Session) AllHotels() bool { return s.hotel == AllHotels }

func (s *Session) Regions() []string { return ListRegions(s.table, s.opts.RegionOrder) }

// Hotels lists the hotel choices for the selected region, AllHotels first.
func (s *Session) Hotels() []string { return ListHotels(s.regionSel, true) }

// Selection returns the rows behind the current choice. The error is a
// *domain.SelectionMismatchError when the hotel is not in the region.
func (s *Session) Selection() (View, error) { return s.hotelSel, s.selErr }

// Record resolves a single-hotel selection to one row using the session's
// duplicate policy. ok is false for AllHotels or an empty selection.
func (s *Session) Record() (domain.HotelRecord, bool) {
	if s.AllHotels() {
		return domain.HotelRecord{}, false
	}
	return s.opts.Duplicates.Resolve(s.hotelSel)
}

func (s *Session) Map() (domain.MapView, error) {
	return ResolveMap(s.hotelSel, s.hotel, s.opts.Map, s.opts.Centroids)
}

func (s *Session) Leaderboard(a domain.Aspect, n int) domain.Leaderboard {
	return domain.Leaderboard{
		Region: s.region,
		Aspect: a.Label(),
		Key:    a.Key(),
		Items:  Leaderboard(s.regionSel, a, n),
	}
}

// Dashboard derives every view of the page from the current selection.
func (s *Session) Dashboard(a domain.Aspect) domain.Dashboard {
	d := domain.Dashboard{
		DatasetID:   s.table.ID().String(),
		Region:      s.region,
		Hotel:       s.hotel,
		AllHotels:   s.AllHotels(),
		Regions:     s.Regions(),
		Hotels:      s.Hotels(),
		Leaderboard: s.Leaderboard(a, DefaultLeaderboardSize),
	}

	sel, err := s.Selection()
	switch {
	case err != nil:
		d.Notices = append(d.Notices, err.Error())
	case s.regionSel.Empty():
		d.Notices = append(d.Notices, fmt.Sprintf("no hotels found for region %q", s.region))
	}
	d.Empty = sel.Empty()
	d.Rows = sel.Rows()

	if rec, ok := s.Record(); ok {
		d.Summary = &domain.Summary{Positive: rec.Positive, Negative: rec.Negative}
		d.Aspects = ProjectAspects(rec)
	}

	if !d.Empty {
		mv, werr := s.Map()
		d.Map = mv
		if werr != nil {
			d.Notices = append(d.Notices, werr.Error())
		}
	} else {
		d.Map = domain.MapView{Points: []domain.MapPoint{}}
	}
	return d
}

const DefaultLeaderboardSize = 5
