package memory

import (
	"context"
	"fmt"
	"strings"
	"sync"

	crerr "github.com/cockroachdb/errors"

	"github.com/riskibarqy/sports-scoreboard/internal/domain/match"
)

type MatchRepository struct {
	mu      sync.RWMutex
	matches []match.Match
	// allowedStatuses emulates a store-side status enum; nil accepts anything.
	allowedStatuses map[string]struct{}
}

func NewMatchRepository(matches []match.Match) *MatchRepository {
	return &MatchRepository{matches: cloneMatches(matches)}
}

// WithAllowedStatuses makes UpdateStatus reject status values outside the set.
func (r *MatchRepository) WithAllowedStatuses(statuses ...string) *MatchRepository {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.allowedStatuses = make(map[string]struct{}, len(statuses))
	for _, s := range statuses {
		r.allowedStatuses[s] = struct{}{}
	}
	return r
}

func (r *MatchRepository) ListBySport(_ context.Context, sportID string) ([]match.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]match.Match, 0)
	for _, m := range r.matches {
		if m.SportID == sportID {
			out = append(out, cloneMatch(m))
		}
	}
	return out, nil
}

func (r *MatchRepository) GetByID(_ context.Context, matchID string) (match.Match, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, m := range r.matches {
		if m.ID == matchID {
			return cloneMatch(m), true, nil
		}
	}
	return match.Match{}, false, nil
}

func (r *MatchRepository) UpdateScore(_ context.Context, matchID string, homeScore, awayScore int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(matchID)
	if idx < 0 {
		return fmt.Errorf("match %s not found", matchID)
	}
	home, away := homeScore, awayScore
	r.matches[idx].HomeScore = &home
	r.matches[idx].AwayScore = &away
	return nil
}

func (r *MatchRepository) UpdateStatus(_ context.Context, matchID string, update match.StatusUpdate) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(matchID)
	if idx < 0 {
		return fmt.Errorf("match %s not found", matchID)
	}
	if update.Status != nil && r.allowedStatuses != nil {
		if _, ok := r.allowedStatuses[strings.TrimSpace(*update.Status)]; !ok {
			return crerr.Wrapf(match.ErrStatusRejected, "status %q", *update.Status)
		}
	}

	if update.Status != nil {
		r.matches[idx].Status = *update.Status
	}
	r.matches[idx].StatusNote = update.StatusNote
	return nil
}

func (r *MatchRepository) indexOf(matchID string) int {
	for i := range r.matches {
		if r.matches[i].ID == matchID {
			return i
		}
	}
	return -1
}

func cloneMatches(items []match.Match) []match.Match {
	out := make([]match.Match, 0, len(items))
	for _, m := range items {
		out = append(out, cloneMatch(m))
	}
	return out
}

// cloneMatch detaches score pointers so callers cannot mutate stored rows.
func cloneMatch(m match.Match) match.Match {
	if m.HomeScore != nil {
		v := *m.HomeScore
		m.HomeScore = &v
	}
	if m.AwayScore != nil {
		v := *m.AwayScore
		m.AwayScore = &v
	}
	return m
}
