package explore

import (
	"fmt"
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"review_explorer/internal/domain"
)

// AllHotels is the hotel choice that keeps the whole region.
const AllHotels = "전체 보기"

// RegionOrder decides how ListRegions orders its output.
type RegionOrder string

const (
	RegionOrderSource RegionOrder = "source" // first appearance in the table
	RegionOrderSorted RegionOrder = "sorted" // Korean collation
)

func ParseRegionOrder(s string) (RegionOrder, error) {
	switch RegionOrder(s) {
	case "", RegionOrderSource:
		return RegionOrderSource, nil
	case RegionOrderSorted:
		return RegionOrderSorted, nil
	}
	return "", fmt.Errorf("unknown region order %q", s)
}

// ListRegions returns the distinct regions of the table.
func ListRegions(t *Table, order RegionOrder) []string {
	out := distinct(t.All(), func(r *domain.HotelRecord) string { return r.Region })
	if order == RegionOrderSorted {
		collate.New(language.Korean).SortStrings(out)
	}
	return out
}

// FilterByRegion returns the rows of region. An unknown region yields an
// empty view rather than an error.
func FilterByRegion(t *Table, region string) View {
	var rows []int
	for i := range t.records {
		if t.records[i].Region == region {
			rows = append(rows, i)
		}
	}
	return View{table: t, region: region, rows: rows}
}

// ListHotels returns the distinct hotels of v in first-appearance order,
// led by AllHotels when withAll is set.
func ListHotels(v View, withAll bool) []string {
	hotels := distinct(v, func(r *domain.HotelRecord) string { return r.Hotel })
	if !withAll {
		return hotels
	}
	return append([]string{AllHotels}, hotels...)
}

// FilterByHotel narrows a region view to one hotel. AllHotels returns v
// unchanged. A hotel missing from v yields an empty view and a
// *domain.SelectionMismatchError.
func FilterByHotel(v View, hotel string) (View, error) {
	if hotel == AllHotels {
		return v, nil
	}
	var rows []int
	for _, idx := range v.rows {
		if v.table.records[idx].Hotel == hotel {
			rows = append(rows, idx)
		}
	}
	if len(rows) == 0 {
		return v.with(nil), &domain.SelectionMismatchError{Region: v.region, Hotel: hotel}
	}
	return v.with(rows), nil
}

func distinct(v View, field func(*domain.HotelRecord) string) []string {
	seen := make(map[string]struct{})
	out := []string{}
	for _, idx := range v.rows {
		k := field(&v.table.records[idx])
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	return out
}

// Leaderboard ranks the hotels of v by aspect a, highest first. Rows are
// stable-sorted so ties keep table order, then deduplicated by hotel with
// the first occurrence winning.
func Leaderboard(v View, a domain.Aspect, n int) []domain.LeaderEntry {
	if n <= 0 || v.Empty() {
		return []domain.LeaderEntry{}
	}
	idx := append([]int(nil), v.rows...)
	recs := v.table.records
	sort.SliceStable(idx, func(i, j int) bool {
		return recs[idx[i]].Scores.Get(a) > recs[idx[j]].Scores.Get(a)
	})
	seen := make(map[string]struct{}, n)
	out := make([]domain.LeaderEntry, 0, n)
	for _, i := range idx {
		r := &recs[i]
		if _, ok := seen[r.Hotel]; ok {
			continue
		}
		seen[r.Hotel] = struct{}{}
		out = append(out, domain.LeaderEntry{Hotel: r.Hotel, Score: r.Scores.Get(a)})
		if len(out) == n {
			break
		}
	}
	return out
}
