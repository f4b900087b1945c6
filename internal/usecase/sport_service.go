package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/sports-scoreboard/internal/domain/sport"
	"github.com/riskibarqy/sports-scoreboard/internal/domain/team"
)

type SportService struct {
	sportRepo sport.Repository
	teamRepo  team.Repository
}

func NewSportService(sportRepo sport.Repository, teamRepo team.Repository) *SportService {
	return &SportService{
		sportRepo: sportRepo,
		teamRepo:  teamRepo,
	}
}

func (s *SportService) List(ctx context.Context) ([]sport.Sport, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SportService.List")
	defer span.End()

	items, err := s.sportRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sports: %w", err)
	}
	return items, nil
}

func (s *SportService) GetBySlug(ctx context.Context, slug string) (sport.Sport, error) {
	return resolveSport(ctx, s.sportRepo, slug)
}

func (s *SportService) ListTeams(ctx context.Context, slug string) ([]team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SportService.ListTeams")
	defer span.End()

	item, err := resolveSport(ctx, s.sportRepo, slug)
	if err != nil {
		return nil, err
	}

	teams, err := s.teamRepo.ListBySport(ctx, item.ID)
	if err != nil {
		return nil, fmt.Errorf("list teams by sport: %w", err)
	}
	return teams, nil
}
