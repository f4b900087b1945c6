package standings

import (
	"sort"

	"github.com/riskibarqy/sports-scoreboard/internal/domain/match"
)

// Form lists the team's latest final results, most recent first.
func Form(teamID string, matches []match.Match, limit int) []Result {
	if limit <= 0 {
		limit = DefaultFormLength
	}

	finals := make([]match.Match, 0)
	for _, m := range matches {
		if m.Involves(teamID) && m.IsFinal() {
			finals = append(finals, m)
		}
	}
	sort.SliceStable(finals, func(i, j int) bool {
		return finals[i].StartsAt.After(finals[j].StartsAt)
	})

	out := make([]Result, 0, min(limit, len(finals)))
	for _, m := range finals {
		if len(out) == limit {
			break
		}
		home, away := m.Scores()
		scored, conceded := home, away
		if m.AwayTeamID == teamID {
			scored, conceded = away, home
		}
		switch {
		case scored > conceded:
			out = append(out, ResultWin)
		case scored == conceded:
			out = append(out, ResultDraw)
		default:
			out = append(out, ResultLoss)
		}
	}
	return out
}
