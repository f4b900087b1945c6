package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/sports-scoreboard/internal/domain/match"
	"github.com/riskibarqy/sports-scoreboard/internal/domain/sport"
	"github.com/riskibarqy/sports-scoreboard/internal/domain/standings"
	"github.com/riskibarqy/sports-scoreboard/internal/domain/team"
	basecache "github.com/riskibarqy/sports-scoreboard/internal/platform/cache"
)

// StandingsView is the ranked table set of one sport.
type StandingsView struct {
	Sport  sport.Sport
	Groups []standings.Group
}

type StandingsService struct {
	sportRepo sport.Repository
	teamRepo  team.Repository
	matchRepo match.Repository
	cache     *basecache.Store
}

// NewStandingsService builds the service. A nil cache disables view caching.
func NewStandingsService(sportRepo sport.Repository, teamRepo team.Repository, matchRepo match.Repository, cache *basecache.Store) *StandingsService {
	return &StandingsService{
		sportRepo: sportRepo,
		teamRepo:  teamRepo,
		matchRepo: matchRepo,
		cache:     cache,
	}
}

func standingsCacheKey(sportID string) string {
	return sportViewPrefix(sportID) + "standings"
}

func sportViewPrefix(sportID string) string {
	return "view:" + sportID + ":"
}

func (s *StandingsService) Standings(ctx context.Context, slug string) (StandingsView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingsService.Standings", sportAttr(slug))
	defer span.End()

	item, err := resolveSport(ctx, s.sportRepo, slug)
	if err != nil {
		return StandingsView{}, err
	}
	if s.cache == nil {
		return s.compute(ctx, item)
	}

	v, err := s.cache.GetOrLoad(ctx, standingsCacheKey(item.ID), func(ctx context.Context) (any, error) {
		return s.compute(ctx, item)
	})
	if err != nil {
		return StandingsView{}, err
	}
	view, _ := v.(StandingsView)
	return view, nil
}

// Refresh recomputes a sport's standings and stores them in the cache.
func (s *StandingsService) Refresh(ctx context.Context, item sport.Sport) (StandingsView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingsService.Refresh", sportAttr(item.Slug))
	defer span.End()

	if s.cache == nil {
		return s.compute(ctx, item)
	}
	v, err := s.cache.Reload(ctx, standingsCacheKey(item.ID), func(ctx context.Context) (any, error) {
		return s.compute(ctx, item)
	})
	if err != nil {
		return StandingsView{}, err
	}
	view, _ := v.(StandingsView)
	return view, nil
}

// InvalidateSport drops every cached view derived from the sport's matches.
func (s *StandingsService) InvalidateSport(ctx context.Context, sportID string) {
	if s.cache == nil || strings.TrimSpace(sportID) == "" {
		return
	}
	s.cache.DeletePrefix(ctx, sportViewPrefix(sportID))
}

// Form is recomputed on every call.
func (s *StandingsService) Form(ctx context.Context, slug, teamID string, limit int) ([]standings.Result, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingsService.Form")
	defer span.End()

	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return nil, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}
	if limit < 0 {
		return nil, fmt.Errorf("%w: limit must be >= 0", ErrInvalidInput)
	}

	item, err := resolveSport(ctx, s.sportRepo, slug)
	if err != nil {
		return nil, err
	}
	t, exists, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("get team: %w", err)
	}
	if !exists || t.SportID != item.ID {
		return nil, fmt.Errorf("%w: team=%s sport=%s", ErrNotFound, teamID, item.Slug)
	}

	matches, err := s.matchRepo.ListBySport(ctx, item.ID)
	if err != nil {
		return nil, fmt.Errorf("list matches by sport: %w", err)
	}
	return standings.Form(teamID, matches, limit), nil
}

func (s *StandingsService) compute(ctx context.Context, item sport.Sport) (StandingsView, error) {
	snap, err := loadSnapshot(ctx, s.teamRepo, s.matchRepo, item)
	if err != nil {
		return StandingsView{}, err
	}
	return StandingsView{
		Sport:  item,
		Groups: standings.Build(snap.teams, snap.matches),
	}, nil
}
