// internal/adapters/http_server/handlers.go
package httpserver

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"review_explorer/internal/app"
	"review_explorer/internal/domain"
	"review_explorer/internal/explore"
)

type Handlers struct{ Q *app.QueryService }

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

type listResponse struct {
	Items []string `json:"items"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Get("/", h.page)
	s.mux.Get("/v1/regions", h.listRegions)
	s.mux.Get("/v1/regions/{region}/hotels", h.listHotels)
	s.mux.Get("/v1/regions/{region}/leaderboard", h.leaderboard)
	s.mux.Get("/v1/dashboard", h.dashboard)
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

// calcETagAndBody marshals once and hashes once, returning both ETag and body.
func calcETagAndBody(v any) (string, []byte) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal object for ETag/body")
		return "", nil
	}
	sum := sha1.Sum(body)
	etag := `W/"` + hex.EncodeToString(sum[:]) + `"`
	return etag, body
}

// writeJSON answers 304 when the client already holds this representation.
func writeJSON(w http.ResponseWriter, r *http.Request, v any) {
	etag, body := calcETagAndBody(v)
	if body == nil {
		writeProblem(w, http.StatusInternalServerError, "Internal Server Error", "encoding failed")
		return
	}
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag)
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("failed to write JSON body")
	}
}

// regionParam decodes the {region} segment; chi hands back the raw
// segment when the path carried escaped separators.
func regionParam(r *http.Request) string {
	raw := chi.URLParam(r, "region")
	if v, err := url.PathUnescape(raw); err == nil {
		return v
	}
	return raw
}

func (h *Handlers) listRegions(w http.ResponseWriter, r *http.Request) {
	var order explore.RegionOrder // empty: configured policy
	if s := r.URL.Query().Get("order"); s != "" {
		o, err := explore.ParseRegionOrder(s)
		if err != nil {
			writeProblem(w, http.StatusBadRequest, "Invalid order", "order must be source or sorted")
			return
		}
		order = o
	}
	writeJSON(w, r, listResponse{Items: h.Q.Regions(order)})
}

func (h *Handlers) listHotels(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, listResponse{Items: h.Q.Hotels(regionParam(r))})
}

func (h *Handlers) leaderboard(w http.ResponseWriter, r *http.Request) {
	limit := explore.DefaultLeaderboardSize
	if ls := r.URL.Query().Get("limit"); ls != "" {
		l, err := strconv.Atoi(ls)
		if err != nil || l <= 0 || l > app.MaxLeaderboardSize {
			writeProblem(w, http.StatusBadRequest, "Invalid limit", "limit must be an integer between 1 and 20")
			return
		}
		limit = l
	}
	lb, err := h.Q.Leaderboard(r.Context(), regionParam(r), r.URL.Query().Get("aspect"), limit)
	if err != nil {
		writeQueryError(w, err)
		return
	}
	writeJSON(w, r, lb)
}

func (h *Handlers) dashboard(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	d, err := h.Q.Dashboard(r.Context(), q.Get("region"), q.Get("hotel"), q.Get("aspect"))
	if err != nil {
		writeQueryError(w, err)
		return
	}
	writeJSON(w, r, d)
}

func writeQueryError(w http.ResponseWriter, err error) {
	if errors.Is(err, domain.ErrUnknownAspect) {
		writeProblem(w, http.StatusBadRequest, "Invalid aspect", err.Error())
		return
	}
	log.Error().Err(err).Msg("query failed")
	writeProblem(w, http.StatusInternalServerError, "Internal Server Error", "")
}
