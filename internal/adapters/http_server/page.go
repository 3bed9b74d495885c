package httpserver

import (
	"bytes"
	"embed"
	"errors"
	"html/template"
	"math"
	"net/http"
	"strconv"

	"github.com/rs/zerolog/log"

	"review_explorer/internal/domain"
	"review_explorer/internal/explore"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTmpl = template.Must(template.New("dashboard.html").Funcs(template.FuncMap{
	"coord": func(v float64) string { return strconv.FormatFloat(v, 'f', 4, 64) },
}).ParseFS(templateFS, "templates/dashboard.html"))

type aspectOption struct {
	Key      string
	Label    string
	Selected bool
}

type bar struct {
	domain.AspectScore
	Width float64 // percent of the full axis, at most 50
}

type pageData struct {
	domain.Dashboard
	AllLabel string
	Aspect   string
	Aspects  []aspectOption
	Bars     []bar
}

func (h *Handlers) page(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	d, err := h.Q.Dashboard(r.Context(), q.Get("region"), q.Get("hotel"), q.Get("aspect"))
	if err != nil {
		if errors.Is(err, domain.ErrUnknownAspect) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.Error().Err(err).Msg("dashboard failed")
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	data := pageData{Dashboard: d, AllLabel: explore.AllHotels, Aspect: d.Leaderboard.Key, Bars: bars(d.Aspects)}
	for _, a := range domain.Aspects {
		data.Aspects = append(data.Aspects, aspectOption{Key: a.Key(), Label: a.Label(), Selected: a.Key() == data.Aspect})
	}

	var buf bytes.Buffer
	if err := pageTmpl.Execute(&buf, data); err != nil {
		log.Error().Err(err).Msg("render dashboard page failed")
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buf.Bytes()); err != nil {
		log.Error().Err(err).Msg("failed to write dashboard page")
	}
}

// bars scales scores so the largest magnitude fills one half of the axis.
func bars(scores []domain.AspectScore) []bar {
	var peak float64
	for _, s := range scores {
		peak = math.Max(peak, math.Abs(s.Score))
	}
	out := make([]bar, 0, len(scores))
	for _, s := range scores {
		b := bar{AspectScore: s}
		if peak > 0 {
			b.Width = math.Round(math.Abs(s.Score)/peak*500) / 10
		}
		out = append(out, b)
	}
	return out
}
