package httpapi

import (
	"time"

	"github.com/riskibarqy/sports-scoreboard/internal/domain/accessrequest"
	"github.com/riskibarqy/sports-scoreboard/internal/domain/goal"
	"github.com/riskibarqy/sports-scoreboard/internal/domain/highscorer"
	"github.com/riskibarqy/sports-scoreboard/internal/domain/match"
	"github.com/riskibarqy/sports-scoreboard/internal/domain/player"
	"github.com/riskibarqy/sports-scoreboard/internal/domain/sport"
	"github.com/riskibarqy/sports-scoreboard/internal/domain/standings"
	"github.com/riskibarqy/sports-scoreboard/internal/domain/team"
	"github.com/riskibarqy/sports-scoreboard/internal/domain/topscorer"
	"github.com/riskibarqy/sports-scoreboard/internal/usecase"
)

type recordGoalRequest struct {
	TeamID     string `json:"team_id" validate:"required"`
	PlayerName string `json:"player_name" validate:"required,max=100"`
	Minute     int    `json:"minute" validate:"min=0,max=200"`
	OwnGoal    bool   `json:"own_goal"`
}

type updateStatusRequest struct {
	StatusNote string `json:"status_note" validate:"required,max=100"`
}

type setScoreRequest struct {
	HomeScore *int   `json:"home_score" validate:"required,min=0"`
	AwayScore *int   `json:"away_score" validate:"required,min=0"`
	TopScorer string `json:"top_scorer" validate:"omitempty,max=100"`
}

type recordHighestScorerRequest struct {
	TeamID     string `json:"team_id" validate:"required"`
	PlayerName string `json:"player_name" validate:"required,max=100"`
}

type addPlayerRequest struct {
	Name         string `json:"name" validate:"required,max=100"`
	JerseyNumber *int   `json:"jersey_number" validate:"required,min=0,max=999"`
}

type createAccessRequestRequest struct {
	TeamID string `json:"team_id" validate:"required"`
}

type sportDTO struct {
	ID   string `json:"id"`
	Slug string `json:"slug"`
	Name string `json:"name"`
	Kind string `json:"kind"`
}

type teamDTO struct {
	ID       string `json:"id"`
	SportID  string `json:"sport_id"`
	Name     string `json:"name"`
	Group    string `json:"group,omitempty"`
	Short    string `json:"short,omitempty"`
	LogoPath string `json:"logo_path"`
}

type noteFieldDTO struct {
	Key   string `json:"key,omitempty"`
	Value string `json:"value"`
}

type noteDTO struct {
	Label  string         `json:"label,omitempty"`
	Fields []noteFieldDTO `json:"fields,omitempty"`
}

type matchDTO struct {
	ID            string    `json:"id"`
	SportID       string    `json:"sport_id"`
	HomeTeamID    string    `json:"home_team_id"`
	AwayTeamID    string    `json:"away_team_id"`
	HomeTeamName  string    `json:"home_team_name,omitempty"`
	AwayTeamName  string    `json:"away_team_name,omitempty"`
	StartsAt      time.Time `json:"starts_at"`
	Status        string    `json:"status"`
	StatusNote    string    `json:"status_note,omitempty"`
	HomeScore     *int      `json:"home_score"`
	AwayScore     *int      `json:"away_score"`
	Venue         string    `json:"venue,omitempty"`
	Stage         string    `json:"stage,omitempty"`
	Phase         string    `json:"phase"`
	DisplayStatus string    `json:"display_status"`
	Note          *noteDTO  `json:"note,omitempty"`
}

type matchPageDTO struct {
	Items      []matchDTO `json:"items"`
	Page       int        `json:"page"`
	PageSize   int        `json:"page_size"`
	TotalItems int        `json:"total_items"`
	TotalPages int        `json:"total_pages"`
}

type standingRowDTO struct {
	Position       int    `json:"position"`
	TeamID         string `json:"team_id"`
	TeamName       string `json:"team_name"`
	Played         int    `json:"played"`
	Won            int    `json:"won"`
	Drawn          int    `json:"drawn"`
	Lost           int    `json:"lost"`
	GoalsFor       int    `json:"goals_for"`
	GoalsAgainst   int    `json:"goals_against"`
	GoalDifference int    `json:"goal_difference"`
	Points         int    `json:"points"`
}

type standingGroupDTO struct {
	Name string           `json:"name"`
	Rows []standingRowDTO `json:"rows"`
}

type standingsDTO struct {
	Sport  sportDTO           `json:"sport"`
	Groups []standingGroupDTO `json:"groups"`
}

type formDTO struct {
	TeamID  string   `json:"team_id"`
	Results []string `json:"results"`
}

type leaderboardEntryDTO struct {
	Rank       int    `json:"rank"`
	TeamID     string `json:"team_id"`
	TeamName   string `json:"team_name,omitempty"`
	PlayerName string `json:"player_name"`
	Count      int    `json:"count"`
}

type leaderboardDTO struct {
	Sport   sportDTO              `json:"sport"`
	Entries []leaderboardEntryDTO `json:"entries"`
}

type goalDTO struct {
	ID         string    `json:"id"`
	MatchID    string    `json:"match_id"`
	TeamID     string    `json:"team_id"`
	PlayerName string    `json:"player_name"`
	Minute     int       `json:"minute"`
	OwnGoal    bool      `json:"own_goal"`
	CreatedAt  time.Time `json:"created_at"`
}

// goalSideDTO lists the goals credited to one side, own goals by the opponent included.
type goalSideDTO struct {
	TeamID string    `json:"team_id"`
	Score  int       `json:"score"`
	Goals  []goalDTO `json:"goals"`
}

type matchGoalsDTO struct {
	MatchID string      `json:"match_id"`
	Home    goalSideDTO `json:"home"`
	Away    goalSideDTO `json:"away"`
	Goals   []goalDTO   `json:"goals"`
}

type recordGoalDTO struct {
	Goal      goalDTO `json:"goal"`
	HomeScore int     `json:"home_score"`
	AwayScore int     `json:"away_score"`
}

type scoreDTO struct {
	MatchID   string `json:"match_id"`
	HomeScore int    `json:"home_score"`
	AwayScore int    `json:"away_score"`
}

type finalizeDTO struct {
	Match     matchDTO `json:"match"`
	Fallbacks int      `json:"fallbacks"`
}

type highestScorerDTO struct {
	ID         string    `json:"id"`
	MatchID    string    `json:"match_id"`
	TeamID     string    `json:"team_id"`
	PlayerName string    `json:"player_name"`
	CreatedAt  time.Time `json:"created_at"`
}

type playerDTO struct {
	ID           string `json:"id"`
	TeamID       string `json:"team_id"`
	Name         string `json:"name"`
	JerseyNumber int    `json:"jersey_number"`
}

type accessRequestDTO struct {
	ID        string    `json:"id"`
	TeamID    string    `json:"team_id"`
	UserID    string    `json:"user_id"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

type sessionDTO struct {
	UserID  string `json:"user_id"`
	Email   string `json:"email,omitempty"`
	IsAdmin bool   `json:"is_admin"`
}

func sportToDTO(s sport.Sport) sportDTO {
	return sportDTO{ID: s.ID, Slug: s.Slug, Name: s.Name, Kind: string(s.Kind())}
}

func teamToDTO(t team.Team) teamDTO {
	return teamDTO{
		ID:       t.ID,
		SportID:  t.SportID,
		Name:     t.Name,
		Group:    t.Group,
		Short:    t.Short,
		LogoPath: "/logos/" + t.LogoKey() + ".png",
	}
}

func matchToDTO(m match.Match, teams map[string]team.Team) matchDTO {
	out := matchDTO{
		ID:            m.ID,
		SportID:       m.SportID,
		HomeTeamID:    m.HomeTeamID,
		AwayTeamID:    m.AwayTeamID,
		HomeTeamName:  teams[m.HomeTeamID].Name,
		AwayTeamName:  teams[m.AwayTeamID].Name,
		StartsAt:      m.StartsAt,
		Status:        m.Status,
		StatusNote:    m.StatusNote,
		HomeScore:     m.HomeScore,
		AwayScore:     m.AwayScore,
		Venue:         m.Venue,
		Stage:         m.Stage,
		Phase:         string(m.Phase()),
		DisplayStatus: m.DisplayStatus(),
	}
	if note := m.Note(); note.Label != "" || len(note.Fields) > 0 {
		out.Note = noteToDTO(note)
	}
	return out
}

func noteToDTO(n match.Note) *noteDTO {
	out := &noteDTO{Label: n.Label}
	for _, f := range n.Fields {
		out.Fields = append(out.Fields, noteFieldDTO{Key: f.Key, Value: f.Value})
	}
	return out
}

func matchDetailToDTO(d usecase.MatchDetail) matchDTO {
	return matchToDTO(d.Match, map[string]team.Team{d.Home.ID: d.Home, d.Away.ID: d.Away})
}

func matchPageToDTO(list usecase.MatchList) matchPageDTO {
	items := make([]matchDTO, 0, len(list.Page.Items))
	for _, m := range list.Page.Items {
		items = append(items, matchToDTO(m, list.Teams))
	}
	return matchPageDTO{
		Items:      items,
		Page:       list.Page.Number,
		PageSize:   list.Page.Size,
		TotalItems: list.Page.TotalItems,
		TotalPages: list.Page.TotalPages,
	}
}

func standingsToDTO(view usecase.StandingsView) standingsDTO {
	groups := make([]standingGroupDTO, 0, len(view.Groups))
	for _, g := range view.Groups {
		groups = append(groups, standingGroupToDTO(g))
	}
	return standingsDTO{Sport: sportToDTO(view.Sport), Groups: groups}
}

func standingGroupToDTO(g standings.Group) standingGroupDTO {
	rows := make([]standingRowDTO, 0, len(g.Rows))
	for _, r := range g.Rows {
		rows = append(rows, standingRowDTO{
			Position:       r.Position,
			TeamID:         r.TeamID,
			TeamName:       r.TeamName,
			Played:         r.Played,
			Won:            r.Won,
			Drawn:          r.Drawn,
			Lost:           r.Lost,
			GoalsFor:       r.GoalsFor,
			GoalsAgainst:   r.GoalsAgainst,
			GoalDifference: r.GoalDifference,
			Points:         r.Points,
		})
	}
	return standingGroupDTO{Name: g.Name, Rows: rows}
}

func formToDTO(teamID string, results []standings.Result) formDTO {
	out := formDTO{TeamID: teamID, Results: make([]string, 0, len(results))}
	for _, r := range results {
		out.Results = append(out.Results, string(r))
	}
	return out
}

func leaderboardToDTO(view usecase.LeaderboardView) leaderboardDTO {
	entries := make([]leaderboardEntryDTO, 0, len(view.Entries))
	for _, e := range view.Entries {
		entries = append(entries, leaderboardEntryToDTO(e, view.Teams))
	}
	return leaderboardDTO{Sport: sportToDTO(view.Sport), Entries: entries}
}

func leaderboardEntryToDTO(e topscorer.Entry, teams map[string]team.Team) leaderboardEntryDTO {
	return leaderboardEntryDTO{
		Rank:       e.Rank,
		TeamID:     e.TeamID,
		TeamName:   teams[e.TeamID].Name,
		PlayerName: e.PlayerName,
		Count:      e.Count,
	}
}

func goalToDTO(g goal.Goal) goalDTO {
	return goalDTO{
		ID:         g.ID,
		MatchID:    g.MatchID,
		TeamID:     g.TeamID,
		PlayerName: g.PlayerName,
		Minute:     g.Minute,
		OwnGoal:    g.OwnGoal,
		CreatedAt:  g.CreatedAt,
	}
}

// matchGoalsToDTO splits an ordered event log by the side each goal counted for.
func matchGoalsToDTO(m match.Match, goals []goal.Goal) matchGoalsDTO {
	out := matchGoalsDTO{
		MatchID: m.ID,
		Home:    goalSideDTO{TeamID: m.HomeTeamID, Goals: []goalDTO{}},
		Away:    goalSideDTO{TeamID: m.AwayTeamID, Goals: []goalDTO{}},
		Goals:   make([]goalDTO, 0, len(goals)),
	}
	for _, g := range goals {
		item := goalToDTO(g)
		out.Goals = append(out.Goals, item)

		credited := g.TeamID
		if g.OwnGoal {
			credited = m.Opponent(g.TeamID)
		}
		switch credited {
		case m.HomeTeamID:
			out.Home.Goals = append(out.Home.Goals, item)
			out.Home.Score++
		case m.AwayTeamID:
			out.Away.Goals = append(out.Away.Goals, item)
			out.Away.Score++
		}
	}
	return out
}

func highestScorerToDTO(e highscorer.Event) highestScorerDTO {
	return highestScorerDTO{
		ID:         e.ID,
		MatchID:    e.MatchID,
		TeamID:     e.TeamID,
		PlayerName: e.PlayerName,
		CreatedAt:  e.CreatedAt,
	}
}

func playerToDTO(p player.Player) playerDTO {
	return playerDTO{ID: p.ID, TeamID: p.TeamID, Name: p.Name, JerseyNumber: p.JerseyNumber}
}

func accessRequestToDTO(r accessrequest.Request) accessRequestDTO {
	return accessRequestDTO{
		ID:        r.ID,
		TeamID:    r.TeamID,
		UserID:    r.UserID,
		Status:    string(r.Status),
		CreatedAt: r.CreatedAt,
	}
}
