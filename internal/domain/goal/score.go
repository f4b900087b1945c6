package goal

import (
	"sort"

	crerr "github.com/cockroachdb/errors"
)

var ErrTeamNotInMatch = crerr.New("goal team is not playing this match")

// Score is a home/away pair.
type Score struct {
	Home int
	Away int
}

// Apply credits one goal to the side it benefits.
// A regular goal counts for the scoring team, an own goal for its opponent.
func Apply(score Score, homeTeamID, awayTeamID string, g Goal) (Score, error) {
	var creditHome bool
	switch g.TeamID {
	case homeTeamID:
		creditHome = !g.OwnGoal
	case awayTeamID:
		creditHome = g.OwnGoal
	default:
		return score, crerr.Wrapf(ErrTeamNotInMatch, "team %s match %s", g.TeamID, g.MatchID)
	}

	if creditHome {
		score.Home++
	} else {
		score.Away++
	}
	return score, nil
}

// Replay folds the whole event log of one match into a score from 0-0.
func Replay(homeTeamID, awayTeamID string, goals []Goal) (Score, error) {
	var score Score
	for _, g := range goals {
		next, err := Apply(score, homeTeamID, awayTeamID, g)
		if err != nil {
			return Score{}, err
		}
		score = next
	}
	return score, nil
}

// SortByMinute orders events by minute, then insertion time.
func SortByMinute(goals []Goal) {
	sort.SliceStable(goals, func(i, j int) bool {
		if goals[i].Minute != goals[j].Minute {
			return goals[i].Minute < goals[j].Minute
		}
		return goals[i].CreatedAt.Before(goals[j].CreatedAt)
	})
}
