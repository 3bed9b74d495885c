// Package csvsource loads the sentiment table from a delimited file, local
// or fetched over HTTP.
package csvsource

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"review_explorer/internal/domain"
)

// Fetcher downloads a remote file.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

type Source struct {
	path     string
	encoding string
	fetch    Fetcher
}

// New returns a source for path. URLs (http/https) go through f; f may be
// nil when only local files are used.
func New(path, enc string, f Fetcher) *Source {
	return &Source{path: path, encoding: enc, fetch: f}
}

func (s *Source) Load(ctx context.Context) (domain.Dataset, error) {
	if isURL(s.path) {
		if s.fetch == nil {
			return domain.Dataset{}, &domain.LoadError{Source: s.path, Err: errors.New("no fetcher configured for remote source")}
		}
		b, err := s.fetch.Fetch(ctx, s.path)
		if err != nil {
			return domain.Dataset{}, &domain.LoadError{Source: s.path, Err: err}
		}
		return Parse(bytes.NewReader(b), s.encoding, s.path)
	}

	f, err := os.Open(s.path)
	if err != nil {
		return domain.Dataset{}, &domain.LoadError{Source: s.path, Err: err}
	}
	defer f.Close()
	return Parse(f, s.encoding, s.path)
}

func isURL(p string) bool {
	return strings.HasPrefix(p, "http://") || strings.HasPrefix(p, "https://")
}

/********** header aliases **********/

var columnAliases = map[string][]string{
	"region":    {"Location", "Region", "region", "지역"},
	"hotel":     {"Hotel", "hotel", "호텔"},
	"positive":  {"Refined_Positive", "Positive", "positive"},
	"negative":  {"Refined_Negative", "Negative", "negative"},
	"latitude":  {"Latitude", "latitude", "lat", "위도"},
	"longitude": {"Longitude", "longitude", "lon", "lng", "경도"},
}

var requiredColumns = []string{"region", "hotel", "positive", "negative"}

// columns maps logical names and aspects to field positions.
type columns struct {
	pos    map[string]int
	aspect [len(domain.Aspects)]int
}

func resolveColumns(header []string) (columns, error) {
	idx := make(map[string]int, len(header))
	for i, h := range header {
		h = strings.TrimSpace(h)
		if _, dup := idx[h]; !dup {
			idx[h] = i
		}
	}
	find := func(names ...string) (int, bool) {
		for _, n := range names {
			if i, ok := idx[n]; ok {
				return i, true
			}
		}
		return -1, false
	}

	c := columns{pos: map[string]int{}}
	var missing []string
	for _, key := range requiredColumns {
		i, ok := find(columnAliases[key]...)
		if !ok {
			missing = append(missing, columnAliases[key][0])
			continue
		}
		c.pos[key] = i
	}
	for _, a := range domain.Aspects {
		i, ok := find(a.Label(), a.Key())
		if !ok {
			missing = append(missing, a.Label())
			continue
		}
		c.aspect[a] = i
	}
	if len(missing) > 0 {
		return columns{}, fmt.Errorf("missing required columns: %s", strings.Join(missing, ", "))
	}
	for _, key := range []string{"latitude", "longitude"} {
		if i, ok := find(columnAliases[key]...); ok {
			c.pos[key] = i
		}
	}
	return c, nil
}

/********** parsing **********/

// Parse reads a CSV table in the given encoding ("euc-kr" or "utf-8").
// name only labels errors.
func Parse(r io.Reader, enc, name string) (domain.Dataset, error) {
	dec, err := decoder(enc)
	if err != nil {
		return domain.Dataset{}, &domain.LoadError{Source: name, Err: err}
	}
	cr := csv.NewReader(transform.NewReader(r, dec))
	cr.FieldsPerRecord = -1
	cr.ReuseRecord = true

	header, err := cr.Read()
	if err == io.EOF {
		return domain.Dataset{}, &domain.LoadError{Source: name, Err: errors.New("empty file")}
	}
	if err != nil {
		return domain.Dataset{}, &domain.LoadError{Source: name, Err: err}
	}
	cols, err := resolveColumns(header)
	if err != nil {
		return domain.Dataset{}, &domain.LoadError{Source: name, Err: err}
	}

	var ds domain.Dataset
	for row := 1; ; row++ {
		fields, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return domain.Dataset{}, &domain.LoadError{Source: name, Row: row, Err: err}
		}
		if blankRow(fields) {
			continue
		}
		rec, err := cols.record(fields, &ds.Stats)
		if err != nil {
			var le *domain.LoadError
			if errors.As(err, &le) {
				le.Source, le.Row = name, row
				return domain.Dataset{}, le
			}
			return domain.Dataset{}, &domain.LoadError{Source: name, Row: row, Err: err}
		}
		ds.Records = append(ds.Records, rec)
		ds.Stats.Rows++
	}
	return ds, nil
}

func (c columns) record(fields []string, st *domain.LoadStats) (domain.HotelRecord, error) {
	cell := func(i int) string {
		if i < 0 || i >= len(fields) {
			return ""
		}
		return strings.TrimSpace(fields[i])
	}
	rec := domain.HotelRecord{
		Region:   cell(c.pos["region"]),
		Hotel:    cell(c.pos["hotel"]),
		Positive: cell(c.pos["positive"]),
		Negative: cell(c.pos["negative"]),
	}
	for _, a := range domain.Aspects {
		v, blank, err := parseNumber(cell(c.aspect[a]))
		if err != nil {
			return domain.HotelRecord{}, &domain.LoadError{Column: a.Label(), Err: err}
		}
		if blank {
			st.BlankScores++
		}
		rec.Scores[a] = v
	}
	if i, ok := c.pos["latitude"]; ok {
		rec.Lat = parseCoord(cell(i))
	}
	if i, ok := c.pos["longitude"]; ok {
		rec.Lon = parseCoord(cell(i))
	}
	if _, ok := rec.Coords(); !ok {
		rec.Lat, rec.Lon = nil, nil
		st.MissingCoords++
	}
	return rec, nil
}

// parseNumber treats empty and nan cells as a blank 0.
func parseNumber(s string) (v float64, blank bool, err error) {
	if s == "" || strings.EqualFold(s, "nan") {
		return 0, true, nil
	}
	v, err = strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false, fmt.Errorf("not a number: %q", s)
	}
	return v, false, nil
}

func parseCoord(s string) *float64 {
	v, blank, err := parseNumber(s)
	if blank || err != nil {
		return nil
	}
	return &v
}

func blankRow(fields []string) bool {
	for _, f := range fields {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}

func decoder(enc string) (transform.Transformer, error) {
	var e encoding.Encoding
	switch strings.ToLower(strings.ReplaceAll(enc, "_", "-")) {
	case "", "euc-kr", "euckr", "cp949":
		e = korean.EUCKR
	case "utf-8", "utf8":
		return unicode.BOMOverride(unicode.UTF8.NewDecoder()), nil
	default:
		return nil, fmt.Errorf("unsupported encoding %q", enc)
	}
	return e.NewDecoder(), nil
}
