// Package sqltable reads the sentiment table from a SQL database. It only
// ever issues a single SELECT; nothing is written.
package sqltable

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"

	"review_explorer/internal/domain"
)

var identRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]{0,63}$`)

type Source struct {
	db    *sql.DB
	table string
}

// New validates table as a bare identifier since it is spliced into SQL.
func New(db *sql.DB, table string) (*Source, error) {
	if !identRe.MatchString(table) {
		return nil, fmt.Errorf("invalid table name %q", table)
	}
	return &Source{db: db, table: table}, nil
}

func (s *Source) Load(ctx context.Context) (domain.Dataset, error) {
	ds, err := s.load(ctx)
	if err != nil {
		return domain.Dataset{}, &domain.LoadError{Source: "sql:" + s.table, Row: ds.Stats.Rows, Err: err}
	}
	return ds, nil
}

func (s *Source) load(ctx context.Context) (domain.Dataset, error) {
	var ds domain.Dataset
	rows, err := s.db.QueryContext(ctx, selectRecords(s.table))
	if err != nil {
		return ds, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			rec      domain.HotelRecord
			pos, neg sql.NullString
			scores   [len(domain.Aspects)]sql.NullFloat64
			lat, lon sql.NullFloat64
		)
		if err := rows.Scan(
			&rec.Region,
			&rec.Hotel,
			&pos, &neg,
			&scores[domain.Noise],
			&scores[domain.Price],
			&scores[domain.Location],
			&scores[domain.Service],
			&scores[domain.Cleanliness],
			&scores[domain.Amenities],
			&lat, &lon,
		); err != nil {
			ds.Stats.Rows++ // report the failing row
			return ds, err
		}
		rec.Positive, rec.Negative = pos.String, neg.String
		for _, a := range domain.Aspects {
			if !scores[a].Valid {
				ds.Stats.BlankScores++
				continue
			}
			rec.Scores[a] = scores[a].Float64
		}
		if lat.Valid && lon.Valid {
			la, lo := lat.Float64, lon.Float64
			rec.Lat, rec.Lon = &la, &lo
		} else {
			ds.Stats.MissingCoords++
		}
		ds.Records = append(ds.Records, rec)
		ds.Stats.Rows++
	}
	if err := rows.Err(); err != nil {
		return ds, err
	}
	return ds, nil
}
