package explore_test

import (
	"testing"

	"review_explorer/internal/domain"
	"review_explorer/internal/explore"
)

func TestProjectAspects_FixedOrderAndPolarity(t *testing.T) {
	r := rec("서울", "A호텔", -1, 2, 0, 3, -2, 1)

	got := explore.ProjectAspects(r)

	labels := []string{"소음", "가격", "위치", "서비스", "청결", "편의시설"}
	scores := []float64{-1, 2, 0, 3, -2, 1}
	pols := []domain.Polarity{
		domain.PolarityWarning, domain.PolarityNeutral, domain.PolarityNeutral,
		domain.PolarityNeutral, domain.PolarityWarning, domain.PolarityNeutral,
	}
	if len(got) != len(labels) {
		t.Fatalf("expected %d pairs, got %d", len(labels), len(got))
	}
	for i, p := range got {
		if p.Aspect != labels[i] || p.Score != scores[i] || p.Polarity != pols[i] {
			t.Fatalf("pair %d: got %+v want %s/%v/%s", i, p, labels[i], scores[i], pols[i])
		}
	}
	if got[0].Color != "crimson" || got[1].Color != "steelblue" {
		t.Fatalf("unexpected colors: %s %s", got[0].Color, got[1].Color)
	}
}

func TestFirstMatch_ResolvesFirstRow(t *testing.T) {
	v := explore.FilterByRegion(sampleTable(), "서울")
	sub, _ := explore.FilterByHotel(v, "A호텔")

	r, ok := explore.FirstMatch.Resolve(sub)
	if !ok {
		t.Fatalf("expected a record")
	}
	if r.Scores.Get(domain.Noise) != 1 {
		t.Fatalf("expected first A호텔 row, got scores %v", r.Scores)
	}

	empty, _ := explore.FilterByHotel(v, "없는호텔")
	if _, ok := explore.FirstMatch.Resolve(empty); ok {
		t.Fatalf("empty selection must not resolve")
	}
}

func TestParseAspect(t *testing.T) {
	for in, want := range map[string]domain.Aspect{
		"청결": domain.Cleanliness, "cleanliness": domain.Cleanliness, "Noise": domain.Noise, " 편의시설 ": domain.Amenities,
	} {
		got, err := domain.ParseAspect(in)
		if err != nil || got != want {
			t.Fatalf("ParseAspect(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := domain.ParseAspect("wifi"); err == nil {
		t.Fatalf("expected error for unknown aspect")
	}
}

func TestLeaderboard_TopFiveStable(t *testing.T) {
	var rows []domain.HotelRecord
	// cleanliness scores: 3,9,1,9,5,7,2,7,0,4 for H0..H9
	for i, s := range []float64{3, 9, 1, 9, 5, 7, 2, 7, 0, 4} {
		r := rec("서울", "H"+string(rune('0'+i)))
		r.Scores[domain.Cleanliness] = s
		rows = append(rows, r)
	}
	tbl := explore.NewTable(rows)

	got := explore.Leaderboard(explore.FilterByRegion(tbl, "서울"), domain.Cleanliness, 5)

	want := []domain.LeaderEntry{
		{Hotel: "H1", Score: 9}, {Hotel: "H3", Score: 9}, {Hotel: "H5", Score: 7},
		{Hotel: "H7", Score: 7}, {Hotel: "H4", Score: 5},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d entries, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("entry %d: got %+v want %+v", i, got[i], want[i])
		}
	}
}

func TestLeaderboard_DedupFirstOccurrence(t *testing.T) {
	tbl := explore.NewTable([]domain.HotelRecord{
		rec("서울", "A호텔", 1),
		rec("서울", "B호텔", 5),
		rec("서울", "A호텔", 8),
		rec("부산", "C호텔", 10),
	})
	got := explore.Leaderboard(explore.FilterByRegion(tbl, "서울"), domain.Noise, 5)
	if len(got) != 2 || got[0] != (domain.LeaderEntry{Hotel: "A호텔", Score: 8}) || got[1].Hotel != "B호텔" {
		t.Fatalf("unexpected leaderboard: %+v", got)
	}

	if got := explore.Leaderboard(explore.FilterByRegion(tbl, "평양"), domain.Noise, 5); len(got) != 0 {
		t.Fatalf("unknown region must yield empty leaderboard, got %+v", got)
	}
}
