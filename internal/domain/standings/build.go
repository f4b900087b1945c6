package standings

import (
	"sort"

	"github.com/riskibarqy/sports-scoreboard/internal/domain/match"
	"github.com/riskibarqy/sports-scoreboard/internal/domain/team"
)

// Build derives ranked group tables for one sport.
// Every known team gets a row even without results; only final matches are counted,
// and a final with a missing score counts that side as zero.
func Build(teams []team.Team, matches []match.Match) []Group {
	sorted := sortedByKickoff(matches)

	rows := make(map[string]*Row)
	order := make([]string, 0, len(teams))
	seed := func(teamID, name string) {
		if teamID == "" {
			return
		}
		if _, ok := rows[teamID]; ok {
			return
		}
		if name == "" {
			name = teamID
		}
		rows[teamID] = &Row{TeamID: teamID, TeamName: name}
		order = append(order, teamID)
	}
	for _, t := range teams {
		seed(t.ID, t.Name)
	}
	for _, m := range sorted {
		seed(m.HomeTeamID, "")
		seed(m.AwayTeamID, "")
	}

	for _, m := range sorted {
		if !m.IsFinal() {
			continue
		}
		home, away := rows[m.HomeTeamID], rows[m.AwayTeamID]
		if home == nil || away == nil {
			continue
		}
		homeGoals, awayGoals := m.Scores()
		record(home, homeGoals, awayGoals)
		record(away, awayGoals, homeGoals)
	}

	assignment := AssignGroups(teams, matches)
	byName := make(map[string]*Group)
	names := make([]string, 0)
	for _, teamID := range order {
		label := assignment[teamID]
		if label == "" {
			label = DefaultGroupLabel
		}
		g, ok := byName[label]
		if !ok {
			g = &Group{Name: label}
			byName[label] = g
			names = append(names, label)
		}
		g.Rows = append(g.Rows, *rows[teamID])
	}

	sort.Strings(names)
	out := make([]Group, 0, len(names))
	for _, name := range names {
		g := byName[name]
		Rank(g.Rows)
		out = append(out, *g)
	}
	return out
}

func record(r *Row, scored, conceded int) {
	r.Played++
	r.GoalsFor += scored
	r.GoalsAgainst += conceded
	r.GoalDifference = r.GoalsFor - r.GoalsAgainst

	switch {
	case scored > conceded:
		r.Won++
		r.Points += PointsWin
	case scored == conceded:
		r.Drawn++
		r.Points += PointsDraw
	default:
		r.Lost++
	}
}

// Rank sorts rows by points, goal difference, goals for (all descending), keeping
// the incoming order on a full tie, and numbers them from 1.
func Rank(rows []Row) {
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.Points != b.Points {
			return a.Points > b.Points
		}
		if a.GoalDifference != b.GoalDifference {
			return a.GoalDifference > b.GoalDifference
		}
		return a.GoalsFor > b.GoalsFor
	})
	for i := range rows {
		rows[i].Position = i + 1
	}
}
