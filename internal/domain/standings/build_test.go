package standings

import (
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/go-cmp/cmp"

	"github.com/riskibarqy/sports-scoreboard/internal/domain/match"
	"github.com/riskibarqy/sports-scoreboard/internal/domain/team"
)

func intPtr(v int) *int { return &v }

var kickoff = time.Date(2026, 2, 10, 8, 0, 0, 0, time.UTC)

func final(id, home, away string, hs, as int, at time.Time) match.Match {
	return match.Match{
		ID: id, SportID: "football", HomeTeamID: home, AwayTeamID: away,
		HomeScore: intPtr(hs), AwayScore: intPtr(as), Status: "final", StartsAt: at,
	}
}

func TestBuild_TwoFinalsScenario(t *testing.T) {
	t.Parallel()

	teams := []team.Team{
		{ID: "A", SportID: "football", Name: "SMA 1"},
		{ID: "B", SportID: "football", Name: "SMA 2"},
		{ID: "C", SportID: "football", Name: "SMA 3"},
	}
	matches := []match.Match{
		final("m1", "A", "B", 2, 1, kickoff),
		final("m2", "A", "C", 1, 1, kickoff.Add(time.Hour)),
	}

	got := Build(teams, matches)
	want := []Group{{
		Name: "Group A",
		Rows: []Row{
			{TeamID: "A", TeamName: "SMA 1", Position: 1, Played: 2, Won: 1, Drawn: 1, GoalsFor: 3, GoalsAgainst: 2, GoalDifference: 1, Points: 4},
			{TeamID: "C", TeamName: "SMA 3", Position: 2, Played: 1, Drawn: 1, GoalsFor: 1, GoalsAgainst: 1, Points: 1},
			{TeamID: "B", TeamName: "SMA 2", Position: 3, Played: 1, Lost: 1, GoalsFor: 1, GoalsAgainst: 2, GoalDifference: -1},
		},
	}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("standings mismatch (-want +got):\n%s", diff)
	}
}

func TestBuild_IgnoresNonFinalAndCountsMissingScoresAsZero(t *testing.T) {
	t.Parallel()

	teams := []team.Team{{ID: "A", Name: "A"}, {ID: "B", Name: "B"}}
	matches := []match.Match{
		{ID: "live", HomeTeamID: "A", AwayTeamID: "B", HomeScore: intPtr(5), Status: "scheduled", StatusNote: "Second Half"},
		{ID: "noscore", HomeTeamID: "A", AwayTeamID: "B", StatusNote: "Final"},
	}

	groups := Build(teams, matches)
	if len(groups) != 1 || len(groups[0].Rows) != 2 {
		t.Fatalf("unexpected groups: %+v", groups)
	}
	for _, row := range groups[0].Rows {
		if row.Played != 1 || row.Drawn != 1 || row.Points != 1 || row.GoalsFor != 0 {
			t.Fatalf("missing scores must count as a 0-0 draw once: %+v", row)
		}
	}
}

func TestBuild_SeedsTeamsWithoutMatches(t *testing.T) {
	t.Parallel()

	groups := Build([]team.Team{{ID: "A", Name: "A", Group: "Group B"}, {ID: "Z", Name: "Z"}}, nil)
	if len(groups) != 2 || groups[0].Name != "Group A" || groups[1].Name != "Group B" {
		t.Fatalf("unexpected groups: %+v", groups)
	}
	if groups[0].Rows[0].TeamID != "Z" || groups[0].Rows[0].Played != 0 {
		t.Fatalf("unlabelled team must fall back to Group A: %+v", groups[0])
	}
}

func TestBuild_UnknownTeamFromMatchIsSeeded(t *testing.T) {
	t.Parallel()

	groups := Build([]team.Team{{ID: "A", Name: "Alpha"}}, []match.Match{final("m1", "A", "X", 0, 3, kickoff)})
	rows := groups[0].Rows
	if len(rows) != 2 || rows[0].TeamID != "X" || rows[0].TeamName != "X" || rows[0].Points != 3 {
		t.Fatalf("unexpected rows: %+v", rows)
	}
}

func TestBuild_Properties(t *testing.T) {
	t.Parallel()

	faker := gofakeit.New(7)
	for round := 0; round < 30; round++ {
		teamCount := faker.IntRange(2, 16)
		teams := make([]team.Team, teamCount)
		for i := range teams {
			teams[i] = team.Team{ID: faker.UUID(), SportID: "football", Name: faker.Company()}
		}

		matchCount := faker.IntRange(0, 40)
		matches := make([]match.Match, 0, matchCount)
		finals := 0
		draws := 0
		for i := 0; i < matchCount; i++ {
			h := faker.IntRange(0, teamCount-1)
			a := (h + faker.IntRange(1, teamCount-1)) % teamCount
			m := match.Match{
				ID:         faker.UUID(),
				HomeTeamID: teams[h].ID,
				AwayTeamID: teams[a].ID,
				StartsAt:   kickoff.Add(time.Duration(faker.IntRange(0, 500)) * time.Hour),
				HomeScore:  intPtr(faker.IntRange(0, 5)),
				AwayScore:  intPtr(faker.IntRange(0, 5)),
				Status:     faker.RandomString([]string{"final", "scheduled", "Final"}),
			}
			if m.IsFinal() {
				finals++
				if *m.HomeScore == *m.AwayScore {
					draws++
				}
			}
			matches = append(matches, m)
		}

		groups := Build(teams, matches)
		totalPoints, totalPlayed, seen := 0, 0, 0
		for _, g := range groups {
			for i, row := range g.Rows {
				seen++
				if row.GoalDifference != row.GoalsFor-row.GoalsAgainst {
					t.Fatalf("goal difference mismatch: %+v", row)
				}
				if row.Played != row.Won+row.Drawn+row.Lost {
					t.Fatalf("played mismatch: %+v", row)
				}
				if row.Position != i+1 {
					t.Fatalf("position mismatch: %+v", row)
				}
				if i > 0 && outranks(row, g.Rows[i-1]) {
					t.Fatalf("rows out of order in %s: %+v before %+v", g.Name, g.Rows[i-1], row)
				}
				totalPoints += row.Points
				totalPlayed += row.Played
			}
		}
		if seen != teamCount {
			t.Fatalf("expected %d rows, got %d", teamCount, seen)
		}
		if totalPlayed != 2*finals {
			t.Fatalf("each final must be played by two teams: played=%d finals=%d", totalPlayed, finals)
		}
		if want := 3*(finals-draws) + 2*draws; totalPoints != want {
			t.Fatalf("points per match must be 3 for decided and 2 for drawn: got %d want %d", totalPoints, want)
		}
	}
}

func outranks(a, b Row) bool {
	if a.Points != b.Points {
		return a.Points > b.Points
	}
	if a.GoalDifference != b.GoalDifference {
		return a.GoalDifference > b.GoalDifference
	}
	return a.GoalsFor > b.GoalsFor
}

func TestRank_StableOnFullTie(t *testing.T) {
	t.Parallel()

	rows := []Row{{TeamID: "x", Points: 1}, {TeamID: "y", Points: 1}, {TeamID: "z", Points: 3}}
	Rank(rows)
	if rows[0].TeamID != "z" || rows[1].TeamID != "x" || rows[2].TeamID != "y" {
		t.Fatalf("unexpected order: %+v", rows)
	}
}
