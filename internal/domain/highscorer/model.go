package highscorer

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Event records one "highest scorer" nomination in a basketball match.
// Each event adds one to the player's tally and never touches the match score.
type Event struct {
	ID         string
	MatchID    string
	TeamID     string
	PlayerName string
	CreatedAt  time.Time
}

func (e Event) Validate() error {
	if e.ID == "" {
		return fmt.Errorf("highest scorer id is required")
	}
	if e.MatchID == "" {
		return fmt.Errorf("highest scorer match id is required")
	}
	if e.TeamID == "" {
		return fmt.Errorf("highest scorer team id is required")
	}
	if strings.TrimSpace(e.PlayerName) == "" {
		return fmt.Errorf("highest scorer player name is required")
	}
	return nil
}

type Repository interface {
	ListByMatches(ctx context.Context, matchIDs []string) ([]Event, error)
	Insert(ctx context.Context, e Event) error
}
