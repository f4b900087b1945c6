package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/sports-scoreboard/internal/domain/goal"
	"github.com/riskibarqy/sports-scoreboard/internal/domain/highscorer"
)

// GoalRepository keeps goal events in insertion order.
type GoalRepository struct {
	mu    sync.RWMutex
	goals []goal.Goal
}

func NewGoalRepository(goals []goal.Goal) *GoalRepository {
	return &GoalRepository{goals: append([]goal.Goal(nil), goals...)}
}

func (r *GoalRepository) ListByMatch(_ context.Context, matchID string) ([]goal.Goal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]goal.Goal, 0)
	for _, g := range r.goals {
		if g.MatchID == matchID {
			out = append(out, g)
		}
	}
	goal.SortByMinute(out)
	return out, nil
}

func (r *GoalRepository) ListByMatches(_ context.Context, matchIDs []string) ([]goal.Goal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	wanted := toSet(matchIDs)
	out := make([]goal.Goal, 0)
	for _, g := range r.goals {
		if _, ok := wanted[g.MatchID]; ok {
			out = append(out, g)
		}
	}
	return out, nil
}

func (r *GoalRepository) Insert(_ context.Context, g goal.Goal) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.goals = append(r.goals, g)
	return nil
}

type HighScorerRepository struct {
	mu     sync.RWMutex
	events []highscorer.Event
}

func NewHighScorerRepository(events []highscorer.Event) *HighScorerRepository {
	return &HighScorerRepository{events: append([]highscorer.Event(nil), events...)}
}

func (r *HighScorerRepository) ListByMatches(_ context.Context, matchIDs []string) ([]highscorer.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	wanted := toSet(matchIDs)
	out := make([]highscorer.Event, 0)
	for _, e := range r.events {
		if _, ok := wanted[e.MatchID]; ok {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *HighScorerRepository) Insert(_ context.Context, e highscorer.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.events = append(r.events, e)
	return nil
}

func toSet(ids []string) map[string]struct{} {
	out := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		out[id] = struct{}{}
	}
	return out
}
