package memory

import (
	"time"

	crerr "github.com/cockroachdb/errors"

	"github.com/riskibarqy/sports-scoreboard/internal/domain/goal"
	"github.com/riskibarqy/sports-scoreboard/internal/domain/match"
	"github.com/riskibarqy/sports-scoreboard/internal/domain/player"
	"github.com/riskibarqy/sports-scoreboard/internal/domain/sport"
	"github.com/riskibarqy/sports-scoreboard/internal/domain/team"
)

const (
	SportIDFootball   = "sport-football"
	SportIDBasketball = "sport-basketball"
)

var seedDay = time.Date(2026, 3, 2, 1, 0, 0, 0, time.UTC)

func SeedSports() []sport.Sport {
	return []sport.Sport{
		{ID: SportIDFootball, Slug: "football", Name: "Sepak Bola"},
		{ID: SportIDBasketball, Slug: "basketball", Name: "Bola Basket"},
	}
}

func SeedTeams() []team.Team {
	return []team.Team{
		{ID: "fb-sma1", SportID: SportIDFootball, Name: "SMA Negeri 1", Short: "SMA1"},
		{ID: "fb-sma2", SportID: SportIDFootball, Name: "SMA Negeri 2", Short: "SMA2"},
		{ID: "fb-sma3", SportID: SportIDFootball, Name: "SMA Negeri 3", Short: "SMA3"},
		{ID: "fb-smk1", SportID: SportIDFootball, Name: "SMK Negeri 1", Short: "SMK1"},
		{ID: "bb-sma1", SportID: SportIDBasketball, Name: "SMA Negeri 1", Group: "Group A", Short: "SMA1"},
		{ID: "bb-sma2", SportID: SportIDBasketball, Name: "SMA Negeri 2", Group: "Group A", Short: "SMA2"},
		{ID: "bb-sma3", SportID: SportIDBasketball, Name: "SMA Negeri 3", Group: "Group B", Short: "SMA3"},
		{ID: "bb-smk1", SportID: SportIDBasketball, Name: "SMK Negeri 1", Group: "Group B", Short: "SMK1"},
	}
}

func SeedMatches() []match.Match {
	score := func(v int) *int { return &v }
	return []match.Match{
		{
			ID: "fb-m1", SportID: SportIDFootball, HomeTeamID: "fb-sma1", AwayTeamID: "fb-sma2",
			StartsAt: seedDay, Status: match.StatusFinal, StatusNote: match.NoteLabelFinal,
			HomeScore: score(2), AwayScore: score(1), Venue: "Lapangan Utama",
		},
		{
			ID: "fb-m2", SportID: SportIDFootball, HomeTeamID: "fb-sma3", AwayTeamID: "fb-smk1",
			StartsAt: seedDay.Add(2 * time.Hour), Status: match.StatusScheduled, StatusNote: match.NoteLabelFirstHalf,
			HomeScore: score(0), AwayScore: score(0), Venue: "Lapangan Utama",
		},
		{
			ID: "fb-m3", SportID: SportIDFootball, HomeTeamID: "fb-sma1", AwayTeamID: "fb-sma3",
			StartsAt: seedDay.Add(24 * time.Hour), Status: match.StatusScheduled, Venue: "Lapangan Utama",
		},
		{
			ID: "bb-m1", SportID: SportIDBasketball, HomeTeamID: "bb-sma1", AwayTeamID: "bb-sma2",
			StartsAt: seedDay.Add(time.Hour), Status: match.StatusScheduled, StatusNote: "Started | Top: Rina",
			HomeScore: score(34), AwayScore: score(28), Venue: "GOR Sekolah",
		},
		{
			ID: "bb-m2", SportID: SportIDBasketball, HomeTeamID: "bb-sma3", AwayTeamID: "bb-smk1",
			StartsAt: seedDay.Add(26 * time.Hour), Status: match.StatusScheduled, Venue: "GOR Sekolah",
		},
	}
}

func SeedGoals() []goal.Goal {
	return []goal.Goal{
		{ID: "fb-g1", MatchID: "fb-m1", TeamID: "fb-sma1", PlayerName: "Budi Santoso", Minute: 12, CreatedAt: seedDay.Add(12 * time.Minute)},
		{ID: "fb-g2", MatchID: "fb-m1", TeamID: "fb-sma2", PlayerName: "Andi Pratama", Minute: 30, CreatedAt: seedDay.Add(30 * time.Minute)},
		{ID: "fb-g3", MatchID: "fb-m1", TeamID: "fb-sma2", PlayerName: "Dimas Saputra", Minute: 55, OwnGoal: true, CreatedAt: seedDay.Add(55 * time.Minute)},
	}
}

func SeedPlayers() []player.Player {
	return []player.Player{
		{ID: "fb-p1", TeamID: "fb-sma1", Name: "Budi Santoso", JerseyNumber: 9},
		{ID: "fb-p2", TeamID: "fb-sma1", Name: "Rizky Hidayat", JerseyNumber: 1},
		{ID: "fb-p3", TeamID: "fb-sma2", Name: "Andi Pratama", JerseyNumber: 10},
		{ID: "fb-p4", TeamID: "fb-sma2", Name: "Dimas Saputra", JerseyNumber: 4},
		{ID: "bb-p1", TeamID: "bb-sma1", Name: "Rina Lestari", JerseyNumber: 7},
	}
}

// Store bundles one memory repository per aggregate, all seeded.
type Store struct {
	Sports         *SportRepository
	Teams          *TeamRepository
	Matches        *MatchRepository
	Goals          *GoalRepository
	HighScorers    *HighScorerRepository
	Players        *PlayerRepository
	AccessRequests *AccessRequestRepository
}

// ValidateMatches checks every match on its own and against the teams it names.
func ValidateMatches(teams []team.Team, matches []match.Match) error {
	byID := make(map[string]team.Team, len(teams))
	for _, t := range teams {
		byID[t.ID] = t
	}
	for _, m := range matches {
		if err := m.Validate(); err != nil {
			return crerr.Wrapf(err, "seed match %s", m.ID)
		}
		home, ok := byID[m.HomeTeamID]
		if !ok {
			return crerr.Newf("seed match %s: unknown home team %s", m.ID, m.HomeTeamID)
		}
		away, ok := byID[m.AwayTeamID]
		if !ok {
			return crerr.Newf("seed match %s: unknown away team %s", m.ID, m.AwayTeamID)
		}
		if err := match.CheckTeams(m, home, away); err != nil {
			return crerr.Wrapf(err, "seed match %s", m.ID)
		}
	}
	return nil
}

// NewSeededStore panics when the built-in demo data is inconsistent.
func NewSeededStore() *Store {
	teams, matches := SeedTeams(), SeedMatches()
	if err := ValidateMatches(teams, matches); err != nil {
		panic(err)
	}

	return &Store{
		Sports:         NewSportRepository(SeedSports()),
		Teams:          NewTeamRepository(teams),
		Matches:        NewMatchRepository(matches),
		Goals:          NewGoalRepository(SeedGoals()),
		HighScorers:    NewHighScorerRepository(nil),
		Players:        NewPlayerRepository(SeedPlayers()),
		AccessRequests: NewAccessRequestRepository(),
	}
}
