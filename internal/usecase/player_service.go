package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/riskibarqy/sports-scoreboard/internal/domain/player"
	"github.com/riskibarqy/sports-scoreboard/internal/domain/team"
	"github.com/riskibarqy/sports-scoreboard/internal/platform/id"
)

type PlayerService struct {
	teamRepo   team.Repository
	playerRepo player.Repository
	idGen      id.Generator
}

func NewPlayerService(teamRepo team.Repository, playerRepo player.Repository, idGen id.Generator) *PlayerService {
	return &PlayerService{
		teamRepo:   teamRepo,
		playerRepo: playerRepo,
		idGen:      idGen,
	}
}

func (s *PlayerService) ListByTeam(ctx context.Context, teamID string) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.ListByTeam")
	defer span.End()

	t, err := s.getTeam(ctx, teamID)
	if err != nil {
		return nil, err
	}

	items, err := s.playerRepo.ListByTeam(ctx, t.ID)
	if err != nil {
		return nil, fmt.Errorf("list players by team: %w", err)
	}
	return items, nil
}

type AddPlayerInput struct {
	TeamID       string
	Name         string
	JerseyNumber int
}

// Add registers a player after checking the roster for a taken jersey or name.
func (s *PlayerService) Add(ctx context.Context, input AddPlayerInput) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Add")
	defer span.End()

	t, err := s.getTeam(ctx, input.TeamID)
	if err != nil {
		return player.Player{}, err
	}

	playerID, err := s.idGen.NewID()
	if err != nil {
		return player.Player{}, fmt.Errorf("generate player id: %w", err)
	}
	candidate := player.Player{
		ID:           playerID,
		TeamID:       t.ID,
		Name:         strings.TrimSpace(input.Name),
		JerseyNumber: input.JerseyNumber,
	}
	if err := candidate.Validate(); err != nil {
		return player.Player{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	roster, err := s.playerRepo.ListByTeam(ctx, t.ID)
	if err != nil {
		return player.Player{}, fmt.Errorf("list players by team: %w", err)
	}
	if err := player.CheckDuplicate(roster, candidate); err != nil {
		return player.Player{}, duplicateConflict(err)
	}

	// The store's unique constraints catch adds racing past the roster check.
	if err := s.playerRepo.Insert(ctx, candidate); err != nil {
		return player.Player{}, duplicateConflict(fmt.Errorf("insert player: %w", err))
	}
	return candidate, nil
}

func duplicateConflict(err error) error {
	if errors.Is(err, player.ErrDuplicateJersey) || errors.Is(err, player.ErrDuplicateName) {
		return fmt.Errorf("%w: %v", ErrConflict, err)
	}
	return err
}

func (s *PlayerService) getTeam(ctx context.Context, teamID string) (team.Team, error) {
	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return team.Team{}, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}

	t, exists, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return team.Team{}, fmt.Errorf("get team: %w", err)
	}
	if !exists {
		return team.Team{}, fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
	}
	return t, nil
}
