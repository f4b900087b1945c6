package match

import (
	"testing"
	"time"
)

func TestFilterApply(t *testing.T) {
	t.Parallel()

	loc := time.FixedZone("WIB", 7*3600)
	items := []Match{
		{ID: "m1", HomeTeamID: "a", AwayTeamID: "b", StartsAt: time.Date(2026, 3, 1, 18, 0, 0, 0, time.UTC)}, // 2 Mar in WIB
		{ID: "m2", HomeTeamID: "c", AwayTeamID: "a", StartsAt: time.Date(2026, 3, 2, 2, 0, 0, 0, time.UTC)},
		{ID: "m3", HomeTeamID: "b", AwayTeamID: "c", StartsAt: time.Date(2026, 3, 2, 3, 0, 0, 0, time.UTC)},
	}

	byTeam := Filter{TeamID: "a"}.Apply(items)
	if len(byTeam) != 2 || byTeam[0].ID != "m1" || byTeam[1].ID != "m2" {
		t.Fatalf("unexpected team filter result: %+v", byTeam)
	}

	day := time.Date(2026, 3, 2, 0, 0, 0, 0, loc)
	byDate := Filter{Date: day, HasDate: true, Location: loc}.Apply(items)
	if len(byDate) != 3 {
		t.Fatalf("expected all matches on 2 Mar WIB, got %d", len(byDate))
	}

	both := Filter{TeamID: "b", Date: day, HasDate: true, Location: time.UTC}.Apply(items)
	if len(both) != 1 || both[0].ID != "m3" {
		t.Fatalf("unexpected combined filter result: %+v", both)
	}
}

func TestPaginate(t *testing.T) {
	t.Parallel()

	items := make([]Match, 12)
	for i := range items {
		items[i].ID = string(rune('a' + i))
	}

	p := Paginate(items, 3, 0)
	if p.Size != DefaultPageSize || p.TotalPages != 3 || len(p.Items) != 2 || p.Items[0].ID != "k" {
		t.Fatalf("unexpected last page: %+v", p)
	}

	p = Paginate(items, 99, 5)
	if p.Number != 3 {
		t.Fatalf("page should clamp to 3, got %d", p.Number)
	}

	p = Paginate(nil, 1, 5)
	if p.TotalPages != 1 || len(p.Items) != 0 {
		t.Fatalf("unexpected empty page: %+v", p)
	}
}

func TestSortByKickoff(t *testing.T) {
	t.Parallel()

	at := time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC)
	items := []Match{
		{ID: "z", StartsAt: at},
		{ID: "b", StartsAt: at.Add(-time.Hour)},
		{ID: "a", StartsAt: at},
	}
	SortByKickoff(items)
	if items[0].ID != "b" || items[1].ID != "a" || items[2].ID != "z" {
		t.Fatalf("unexpected order: %s %s %s", items[0].ID, items[1].ID, items[2].ID)
	}
}
