package explore

import "review_explorer/internal/domain"

// View is a read-only subset of a Table, kept in table order.
type View struct {
	table  *Table
	region string // set when the view came from FilterByRegion
	rows   []int
}

func (v View) Len() int { return len(v.rows) }

func (v View) Empty() bool { return len(v.rows) == 0 }

// Region is the region the view was filtered by, if any.
func (v View) Region() string { return v.region }

// Record returns a copy of the i-th row of the view.
func (v View) Record(i int) domain.HotelRecord { return detach(v.table.records[v.rows[i]]) }

// First returns the first row of the view; ok is false for an empty view.
func (v View) First() (domain.HotelRecord, bool) {
	if len(v.rows) == 0 {
		return domain.HotelRecord{}, false
	}
	return v.Record(0), true
}

// Records copies the rows out for rendering.
func (v View) Records() []domain.HotelRecord {
	out := make([]domain.HotelRecord, len(v.rows))
	for i, idx := range v.rows {
		out[i] = detach(v.table.records[idx])
	}
	return out
}

// Rows converts the view into raw-table rows.
func (v View) Rows() []domain.RowView {
	out := make([]domain.RowView, 0, len(v.rows))
	for _, idx := range v.rows {
		r := detach(v.table.records[idx])
		scores := make(map[string]float64, len(domain.Aspects))
		for _, a := range domain.Aspects {
			scores[a.Label()] = r.Scores.Get(a)
		}
		out = append(out, domain.RowView{
			Region:    r.Region,
			Hotel:     r.Hotel,
			Positive:  r.Positive,
			Negative:  r.Negative,
			Scores:    scores,
			Latitude:  r.Lat,
			Longitude: r.Lon,
		})
	}
	return out
}

func (v View) with(rows []int) View {
	return View{table: v.table, region: v.region, rows: rows}
}
