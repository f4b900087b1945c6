package goal

import (
	"fmt"
	"strings"
	"time"
)

const MaxMinute = 200

// Goal is one football scorer event. Events are append-only.
// An own goal is attributed to the player's team but credits the opponent.
type Goal struct {
	ID         string
	MatchID    string
	TeamID     string
	PlayerName string
	Minute     int
	OwnGoal    bool
	CreatedAt  time.Time
}

func (g Goal) Validate() error {
	if g.ID == "" {
		return fmt.Errorf("goal id is required")
	}
	if g.MatchID == "" {
		return fmt.Errorf("goal match id is required")
	}
	if g.TeamID == "" {
		return fmt.Errorf("goal team id is required")
	}
	if strings.TrimSpace(g.PlayerName) == "" {
		return fmt.Errorf("goal player name is required")
	}
	if g.Minute < 0 || g.Minute > MaxMinute {
		return fmt.Errorf("goal minute must be between 0 and %d", MaxMinute)
	}

	return nil
}
