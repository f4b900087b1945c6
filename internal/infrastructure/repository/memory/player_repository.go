package memory

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"github.com/riskibarqy/sports-scoreboard/internal/domain/player"
)

type PlayerRepository struct {
	mu      sync.RWMutex
	players []player.Player
}

func NewPlayerRepository(players []player.Player) *PlayerRepository {
	return &PlayerRepository{players: slices.Clone(players)}
}

// ListByTeam returns the roster ordered by jersey number.
func (r *PlayerRepository) ListByTeam(_ context.Context, teamID string) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.roster(teamID), nil
}

// Insert rejects a taken jersey or name within the team, like the table's unique indexes.
func (r *PlayerRepository) Insert(_ context.Context, p player.Player) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := player.CheckDuplicate(r.roster(p.TeamID), p); err != nil {
		return err
	}
	r.players = append(r.players, p)
	return nil
}

func (r *PlayerRepository) roster(teamID string) []player.Player {
	out := make([]player.Player, 0)
	for _, p := range r.players {
		if p.TeamID == teamID {
			out = append(out, p)
		}
	}
	slices.SortStableFunc(out, func(a, b player.Player) int {
		return cmp.Compare(a.JerseyNumber, b.JerseyNumber)
	})
	return out
}
