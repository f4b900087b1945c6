package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/sourcegraph/conc/pool"

	"github.com/riskibarqy/sports-scoreboard/internal/domain/match"
	"github.com/riskibarqy/sports-scoreboard/internal/domain/sport"
	"github.com/riskibarqy/sports-scoreboard/internal/domain/team"
)

// sportSnapshot is everything the derived views of one sport are computed from.
type sportSnapshot struct {
	sport   sport.Sport
	teams   []team.Team
	matches []match.Match
}

func (s sportSnapshot) matchIDs() map[string]struct{} {
	out := make(map[string]struct{}, len(s.matches))
	for _, m := range s.matches {
		out[m.ID] = struct{}{}
	}
	return out
}

func (s sportSnapshot) teamIndex() map[string]team.Team {
	out := make(map[string]team.Team, len(s.teams))
	for _, t := range s.teams {
		out[t.ID] = t
	}
	return out
}

func resolveSport(ctx context.Context, repo sport.Repository, slug string) (sport.Sport, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return sport.Sport{}, fmt.Errorf("%w: sport slug is required", ErrInvalidInput)
	}

	item, exists, err := repo.GetBySlug(ctx, slug)
	if err != nil {
		return sport.Sport{}, fmt.Errorf("get sport: %w", err)
	}
	if !exists {
		return sport.Sport{}, fmt.Errorf("%w: sport=%s", ErrNotFound, slug)
	}
	return item, nil
}

// loadSnapshot fetches teams and matches of one sport in parallel.
func loadSnapshot(ctx context.Context, teamRepo team.Repository, matchRepo match.Repository, item sport.Sport) (sportSnapshot, error) {
	snap := sportSnapshot{sport: item}

	p := pool.New().WithContext(ctx).WithCancelOnError()
	p.Go(func(ctx context.Context) error {
		teams, err := teamRepo.ListBySport(ctx, item.ID)
		if err != nil {
			return fmt.Errorf("list teams by sport: %w", err)
		}
		snap.teams = teams
		return nil
	})
	p.Go(func(ctx context.Context) error {
		matches, err := matchRepo.ListBySport(ctx, item.ID)
		if err != nil {
			return fmt.Errorf("list matches by sport: %w", err)
		}
		snap.matches = matches
		return nil
	})
	if err := p.Wait(); err != nil {
		return sportSnapshot{}, err
	}
	return snap, nil
}
