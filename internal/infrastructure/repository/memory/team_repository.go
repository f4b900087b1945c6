package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/riskibarqy/sports-scoreboard/internal/domain/team"
)

// TeamRepository keeps teams in seed order, which is also the listing order.
type TeamRepository struct {
	mu    sync.RWMutex
	teams []team.Team
}

func NewTeamRepository(teams []team.Team) *TeamRepository {
	return &TeamRepository{teams: slices.Clone(teams)}
}

func (r *TeamRepository) ListBySport(_ context.Context, sportID string) ([]team.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]team.Team, 0)
	for _, t := range r.teams {
		if t.SportID == sportID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *TeamRepository) GetByID(_ context.Context, teamID string) (team.Team, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := slices.IndexFunc(r.teams, func(t team.Team) bool { return t.ID == teamID })
	if i < 0 {
		return team.Team{}, false, nil
	}
	return r.teams[i], true, nil
}
