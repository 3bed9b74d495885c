//go:build integration || !unit

package integration

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"golang.org/x/text/encoding/korean"

	server "review_explorer/internal/adapters/http_server"
	"review_explorer/internal/adapters/observability"
	"review_explorer/internal/bootstrap"
	"review_explorer/internal/domain"
	"review_explorer/internal/shared"
)

// ---------- helpers ----------
const tableCSV = `Location,Hotel,Refined_Positive,Refined_Negative,소음,가격,위치,서비스,청결,편의시설,Latitude,Longitude
서울,A호텔,역과 가까움,방음이 약함,-1,2,3,1,0.5,1,37.55,126.97
서울,B호텔,조식이 좋음,주차 불편,1,1,1,1,2.5,1,37.57,126.99
서울,A호텔,중복 행,중복 행,9,9,9,9,9,9,37.55,126.97
부산,C호텔,바다 전망,엘리베이터 대기,0,0,2,0,1,0,,
`

func getJSON(t *testing.T, rawURL string, v any) *http.Response {
	t.Helper()
	res, err := http.Get(rawURL)
	if err != nil {
		t.Fatalf("GET %s: %v", rawURL, err)
	}
	defer res.Body.Close()
	if v != nil && res.StatusCode == http.StatusOK {
		if err := json.NewDecoder(res.Body).Decode(v); err != nil {
			t.Fatalf("decode %s: %v", rawURL, err)
		}
	}
	return res
}

// ---------- the test ----------
func TestHTTP_EndToEnd_RemoteCSV(t *testing.T) {
	ctx := context.Background()

	// the table is served EUC-KR encoded, like the exported spreadsheet
	encoded, err := korean.EUCKR.NewEncoder().String(tableCSV)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	files := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/csv")
		_, _ = io.WriteString(w, encoded)
	}))
	defer files.Close()

	mr := miniredis.RunT(t)
	cfg := shared.Config{
		DataSource:      "csv",
		DataPath:        files.URL + "/final_all.csv",
		DataEncoding:    "euc-kr",
		FetchRPS:        5,
		RegionOrder:     "source",
		MapStrategy:     "record",
		DuplicatePolicy: "first",
		RedisAddr:       mr.Addr(),
		CacheTTLSeconds: 60,
	}

	rc, err := bootstrap.Cache(ctx, cfg)
	if err != nil {
		t.Fatalf("cache: %v", err)
	}
	t.Cleanup(func() { _ = rc.Close() })

	q, err := bootstrap.Queries(ctx, cfg, rc)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if n, err := q.WarmRegion(ctx, "서울"); err != nil || n != 18 {
		t.Fatalf("warm: n=%d err=%v", n, err)
	}

	srv := server.New(server.Options{})
	srv.Mount("/metrics", observability.MetricsHandler(observability.InitRegistry()))
	srv.MountHandlers(&server.Handlers{Q: q})
	ts := httptest.NewServer(srv.Mux())
	defer ts.Close()

	// regions keep first-appearance order
	var regions struct{ Items []string }
	getJSON(t, ts.URL+"/v1/regions", &regions)
	if strings.Join(regions.Items, ",") != "서울,부산" {
		t.Fatalf("unexpected regions: %v", regions.Items)
	}

	// duplicate rows resolve to the first one
	v := url.Values{"region": {"서울"}, "hotel": {"A호텔"}, "aspect": {"청결"}}
	var d domain.Dashboard
	if res := getJSON(t, ts.URL+"/v1/dashboard?"+v.Encode(), &d); res.StatusCode != http.StatusOK {
		t.Fatalf("status %d", res.StatusCode)
	}
	if d.Summary == nil || d.Summary.Positive != "역과 가까움" || d.Aspects[0].Score != -1 {
		t.Fatalf("unexpected dashboard: %+v", d)
	}

	// leaderboard dedups by hotel after sorting
	var lb domain.Leaderboard
	getJSON(t, ts.URL+"/v1/regions/"+url.PathEscape("서울")+"/leaderboard?aspect=cleanliness", &lb)
	if len(lb.Items) != 2 || lb.Items[0].Hotel != "A호텔" || lb.Items[0].Score != 9 {
		t.Fatalf("unexpected leaderboard: %+v", lb)
	}

	// a region without coordinates gets the centroid fallback
	v = url.Values{"region": {"부산"}}
	getJSON(t, ts.URL+"/v1/dashboard?"+v.Encode(), &d)
	if len(d.Map.Points) != 1 || !d.Map.Points[0].Centroid {
		t.Fatalf("expected centroid point, got %+v", d.Map)
	}

	// the html page renders the same selection
	res, err := http.Get(ts.URL + "/?" + url.Values{"region": {"서울"}, "hotel": {"B호텔"}}.Encode())
	if err != nil {
		t.Fatalf("GET page: %v", err)
	}
	page, _ := io.ReadAll(res.Body)
	res.Body.Close()
	if res.StatusCode != http.StatusOK || !strings.Contains(string(page), "조식이 좋음") {
		t.Fatalf("unexpected page: %d", res.StatusCode)
	}

	// request metrics are exported
	res, err = http.Get(ts.URL + "/metrics")
	if err != nil {
		t.Fatalf("GET metrics: %v", err)
	}
	metrics, _ := io.ReadAll(res.Body)
	res.Body.Close()
	if !strings.Contains(string(metrics), "explorer_http_requests_total") {
		t.Fatalf("metrics missing request counter")
	}

	if keys := mr.Keys(); len(keys) < 18 {
		t.Fatalf("expected warmed keys in redis, got %d", len(keys))
	}
}
