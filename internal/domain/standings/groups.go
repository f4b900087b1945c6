package standings

import (
	"strings"

	"github.com/riskibarqy/sports-scoreboard/internal/domain/match"
	"github.com/riskibarqy/sports-scoreboard/internal/domain/team"
)

const (
	DefaultGroupLabel = "Group A"

	maxGroups      = 4
	teamsPerGroup  = 4
	stageGroupHint = "group"
)

// AssignGroups maps team IDs to group labels using the first strategy that places anyone:
// explicit team labels, then "Group ..." stage labels on matches, then an even partition
// of teams in the order they first appear in kickoff-sorted matches.
// Teams absent from the result belong to DefaultGroupLabel.
func AssignGroups(teams []team.Team, matches []match.Match) map[string]string {
	if out := groupsFromTeams(teams); len(out) > 0 {
		return out
	}

	sorted := sortedByKickoff(matches)
	if out := groupsFromStages(sorted); len(out) > 0 {
		return out
	}
	return partitionGroups(encounterOrder(sorted))
}

func groupsFromTeams(teams []team.Team) map[string]string {
	out := make(map[string]string)
	for _, t := range teams {
		if label := strings.TrimSpace(t.Group); label != "" {
			out[t.ID] = label
		}
	}
	return out
}

func groupsFromStages(matches []match.Match) map[string]string {
	out := make(map[string]string)
	for _, m := range matches {
		stage := strings.TrimSpace(m.Stage)
		if !strings.HasPrefix(strings.ToLower(stage), stageGroupHint) {
			continue
		}
		for _, teamID := range []string{m.HomeTeamID, m.AwayTeamID} {
			if _, ok := out[teamID]; !ok && teamID != "" {
				out[teamID] = stage
			}
		}
	}
	return out
}

func partitionGroups(teamIDs []string) map[string]string {
	out := make(map[string]string, len(teamIDs))
	n := len(teamIDs)
	if n == 0 {
		return out
	}

	groupCount := min(maxGroups, ceilDiv(n, teamsPerGroup))
	size := ceilDiv(n, groupCount)
	for i, teamID := range teamIDs {
		out[teamID] = GroupLabel(i / size)
	}
	return out
}

// GroupLabel returns "Group A" for 0, "Group B" for 1 and so on.
func GroupLabel(index int) string {
	return "Group " + string(rune('A'+index))
}

func encounterOrder(matches []match.Match) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, m := range matches {
		for _, teamID := range []string{m.HomeTeamID, m.AwayTeamID} {
			if teamID == "" {
				continue
			}
			if _, ok := seen[teamID]; ok {
				continue
			}
			seen[teamID] = struct{}{}
			out = append(out, teamID)
		}
	}
	return out
}

func sortedByKickoff(matches []match.Match) []match.Match {
	out := append([]match.Match(nil), matches...)
	match.SortByKickoff(out)
	return out
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
