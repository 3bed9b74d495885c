// Package explore holds the selection and projection logic behind the
// review dashboard. A Table is loaded once and never mutated; every filter
// returns a View that references the table's rows by index.
package explore

import (
	"crypto/sha256"
	"strconv"

	"github.com/google/uuid"

	"review_explorer/internal/domain"
)

// datasetNamespace scopes the name-based dataset IDs.
var datasetNamespace = uuid.MustParse("6f1c3e9a-2b7d-4c55-9a0e-5d2f8b7c41e3")

type Table struct {
	id      uuid.UUID
	records []domain.HotelRecord
}

// NewTable takes ownership of a private copy of records. The ID is derived
// from the content, so two processes loading the same data agree on it.
func NewTable(records []domain.HotelRecord) *Table {
	own := make([]domain.HotelRecord, len(records))
	for i, r := range records {
		own[i] = detach(r)
	}
	return &Table{id: fingerprint(own), records: own}
}

// detach copies the coordinate pointers so r shares no memory with its source.
func detach(r domain.HotelRecord) domain.HotelRecord {
	if r.Lat != nil {
		lat := *r.Lat
		r.Lat = &lat
	}
	if r.Lon != nil {
		lon := *r.Lon
		r.Lon = &lon
	}
	return r
}

func (t *Table) ID() uuid.UUID { return t.id }

func (t *Table) Len() int { return len(t.records) }

// All is the unfiltered view over every row.
func (t *Table) All() View {
	rows := make([]int, len(t.records))
	for i := range rows {
		rows[i] = i
	}
	return View{table: t, rows: rows}
}

func fingerprint(rs []domain.HotelRecord) uuid.UUID {
	h := sha256.New()
	var buf []byte
	for _, r := range rs {
		buf = buf[:0]
		for _, s := range []string{r.Region, r.Hotel, r.Positive, r.Negative} {
			buf = append(buf, s...)
			buf = append(buf, 0x1f)
		}
		for _, v := range r.Scores {
			buf = strconv.AppendFloat(buf, v, 'g', -1, 64)
			buf = append(buf, 0x1f)
		}
		for _, p := range []*float64{r.Lat, r.Lon} {
			if p != nil {
				buf = strconv.AppendFloat(buf, *p, 'g', -1, 64)
			}
			buf = append(buf, 0x1f)
		}
		buf = append(buf, 0x1e)
		h.Write(buf)
	}
	return uuid.NewSHA1(datasetNamespace, h.Sum(nil))
}
