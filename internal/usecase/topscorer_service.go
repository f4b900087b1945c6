package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/riskibarqy/sports-scoreboard/internal/domain/goal"
	"github.com/riskibarqy/sports-scoreboard/internal/domain/highscorer"
	"github.com/riskibarqy/sports-scoreboard/internal/domain/match"
	"github.com/riskibarqy/sports-scoreboard/internal/domain/sport"
	"github.com/riskibarqy/sports-scoreboard/internal/domain/team"
	"github.com/riskibarqy/sports-scoreboard/internal/domain/topscorer"
	basecache "github.com/riskibarqy/sports-scoreboard/internal/platform/cache"
)

// LeaderboardView carries ranked entries plus the teams needed to label them.
type LeaderboardView struct {
	Sport   sport.Sport
	Entries []topscorer.Entry
	Teams   map[string]team.Team
}

type TopScorerService struct {
	sportRepo      sport.Repository
	teamRepo       team.Repository
	matchRepo      match.Repository
	goalRepo       goal.Repository
	highScorerRepo highscorer.Repository
	cache          *basecache.Store
}

func NewTopScorerService(
	sportRepo sport.Repository,
	teamRepo team.Repository,
	matchRepo match.Repository,
	goalRepo goal.Repository,
	highScorerRepo highscorer.Repository,
	cache *basecache.Store,
) *TopScorerService {
	return &TopScorerService{
		sportRepo:      sportRepo,
		teamRepo:       teamRepo,
		matchRepo:      matchRepo,
		goalRepo:       goalRepo,
		highScorerRepo: highScorerRepo,
		cache:          cache,
	}
}

func (s *TopScorerService) TopScorers(ctx context.Context, slug string) (LeaderboardView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TopScorerService.TopScorers", sportAttr(slug))
	defer span.End()

	item, err := resolveSport(ctx, s.sportRepo, slug)
	if err != nil {
		return LeaderboardView{}, err
	}
	return s.cached(ctx, topScorersCacheKey(item.ID), func(ctx context.Context) (LeaderboardView, error) {
		return s.compute(ctx, item)
	})
}

func topScorersCacheKey(sportID string) string {
	return sportViewPrefix(sportID) + "topscorers"
}

// Refresh recomputes the goal leaderboard and stores it in the cache.
func (s *TopScorerService) Refresh(ctx context.Context, item sport.Sport) (LeaderboardView, error) {
	if s.cache == nil {
		return s.compute(ctx, item)
	}
	v, err := s.cache.Reload(ctx, topScorersCacheKey(item.ID), func(ctx context.Context) (any, error) {
		return s.compute(ctx, item)
	})
	if err != nil {
		return LeaderboardView{}, err
	}
	view, _ := v.(LeaderboardView)
	return view, nil
}

func (s *TopScorerService) compute(ctx context.Context, item sport.Sport) (LeaderboardView, error) {
	snap, err := loadSnapshot(ctx, s.teamRepo, s.matchRepo, item)
	if err != nil {
		return LeaderboardView{}, err
	}
	ids := snap.matchIDs()
	goals, err := s.goalRepo.ListByMatches(ctx, keys(ids))
	if err != nil {
		return LeaderboardView{}, fmt.Errorf("list goals by matches: %w", err)
	}
	return LeaderboardView{
		Sport:   item,
		Entries: topscorer.Build(goals, ids),
		Teams:   snap.teamIndex(),
	}, nil
}

func (s *TopScorerService) HighestScorers(ctx context.Context, slug string) (LeaderboardView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TopScorerService.HighestScorers", sportAttr(slug))
	defer span.End()

	item, err := resolveSport(ctx, s.sportRepo, slug)
	if err != nil {
		return LeaderboardView{}, err
	}
	return s.cached(ctx, sportViewPrefix(item.ID)+"highest", func(ctx context.Context) (LeaderboardView, error) {
		snap, err := loadSnapshot(ctx, s.teamRepo, s.matchRepo, item)
		if err != nil {
			return LeaderboardView{}, err
		}
		ids := snap.matchIDs()
		events, err := s.highScorerRepo.ListByMatches(ctx, keys(ids))
		if err != nil {
			return LeaderboardView{}, fmt.Errorf("list highest scorers by matches: %w", err)
		}
		return LeaderboardView{
			Sport:   item,
			Entries: topscorer.Tally(events, ids),
			Teams:   snap.teamIndex(),
		}, nil
	})
}

func (s *TopScorerService) cached(ctx context.Context, key string, load func(context.Context) (LeaderboardView, error)) (LeaderboardView, error) {
	if s.cache == nil {
		return load(ctx)
	}
	v, err := s.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		return load(ctx)
	})
	if err != nil {
		return LeaderboardView{}, err
	}
	view, _ := v.(LeaderboardView)
	return view, nil
}

func keys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
