package match

import (
	"fmt"
	"strings"
	"time"

	crerr "github.com/cockroachdb/errors"

	"github.com/riskibarqy/sports-scoreboard/internal/domain/team"
)

const (
	StatusScheduled = "scheduled"
	StatusFinal     = "final"
)

var (
	// ErrStatusRejected is returned by a repository when the store refuses the status value,
	// e.g. because its enum does not know it.
	ErrStatusRejected = crerr.New("match status rejected by store")
	ErrTeamNotInSport = crerr.New("team does not belong to match sport")
	ErrSameTeam       = crerr.New("home and away team must differ")
)

// Match is one fixture between two teams of the same sport.
// Scores are cached aggregates; nil means no score has been recorded yet.
type Match struct {
	ID         string
	SportID    string
	HomeTeamID string
	AwayTeamID string
	StartsAt   time.Time
	Status     string
	StatusNote string
	HomeScore  *int
	AwayScore  *int
	Venue      string
	Stage      string
}

// Scores returns the cached score with missing sides counted as zero.
func (m Match) Scores() (home, away int) {
	if m.HomeScore != nil {
		home = *m.HomeScore
	}
	if m.AwayScore != nil {
		away = *m.AwayScore
	}
	return home, away
}

func (m Match) IsFinal() bool {
	return IsFinal(m.Status, m.StatusNote)
}

func (m Match) Involves(teamID string) bool {
	return teamID != "" && (m.HomeTeamID == teamID || m.AwayTeamID == teamID)
}

// Opponent returns the other side of the match, or "" when teamID is not playing.
func (m Match) Opponent(teamID string) string {
	switch teamID {
	case m.HomeTeamID:
		return m.AwayTeamID
	case m.AwayTeamID:
		return m.HomeTeamID
	default:
		return ""
	}
}

func (m Match) Phase() Phase {
	return Classify(m.Status, m.StatusNote)
}

func (m Match) DisplayStatus() string {
	return DisplayStatus(m.Status, m.StatusNote)
}

func (m Match) Note() Note {
	return ParseNote(m.StatusNote)
}

// IsFinal reports whether the status or the note label marks the match as final.
func IsFinal(status, note string) bool {
	return strings.Contains(strings.ToLower(status), "final") ||
		strings.Contains(strings.ToLower(noteLabel(note)), "final")
}

func (m Match) Validate() error {
	if m.ID == "" {
		return fmt.Errorf("match id is required")
	}
	if m.SportID == "" {
		return fmt.Errorf("match sport id is required")
	}
	if m.HomeTeamID == "" || m.AwayTeamID == "" {
		return fmt.Errorf("match teams are required")
	}
	if m.HomeTeamID == m.AwayTeamID {
		return ErrSameTeam
	}
	if m.HomeScore != nil && *m.HomeScore < 0 {
		return fmt.Errorf("home score must be >= 0")
	}
	if m.AwayScore != nil && *m.AwayScore < 0 {
		return fmt.Errorf("away score must be >= 0")
	}

	return nil
}

// CheckTeams verifies that both resolved teams are the match sides and play the match sport.
func CheckTeams(m Match, home, away team.Team) error {
	if home.ID != m.HomeTeamID || away.ID != m.AwayTeamID {
		return crerr.Newf("match %s teams do not match %s/%s", m.ID, home.ID, away.ID)
	}
	if home.SportID != m.SportID {
		return crerr.Wrapf(ErrTeamNotInSport, "home team %s", home.ID)
	}
	if away.SportID != m.SportID {
		return crerr.Wrapf(ErrTeamNotInSport, "away team %s", away.ID)
	}
	return nil
}
