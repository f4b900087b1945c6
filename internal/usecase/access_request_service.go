package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/sports-scoreboard/internal/domain/accessrequest"
	"github.com/riskibarqy/sports-scoreboard/internal/domain/team"
	"github.com/riskibarqy/sports-scoreboard/internal/domain/user"
	"github.com/riskibarqy/sports-scoreboard/internal/platform/id"
)

type AccessRequestService struct {
	teamRepo team.Repository
	repo     accessrequest.Repository
	idGen    id.Generator
	now      func() time.Time
}

func NewAccessRequestService(teamRepo team.Repository, repo accessrequest.Repository, idGen id.Generator) *AccessRequestService {
	return &AccessRequestService{
		teamRepo: teamRepo,
		repo:     repo,
		idGen:    idGen,
		now:      time.Now,
	}
}

func (s *AccessRequestService) ListPending(ctx context.Context) ([]accessrequest.Request, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AccessRequestService.ListPending")
	defer span.End()

	items, err := s.repo.ListPending(ctx)
	if err != nil {
		return nil, fmt.Errorf("list pending access requests: %w", err)
	}
	return items, nil
}

// Request files a pending request for the principal to manage a team.
func (s *AccessRequestService) Request(ctx context.Context, principal user.Principal, teamID string) (accessrequest.Request, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AccessRequestService.Request")
	defer span.End()

	if strings.TrimSpace(principal.UserID) == "" {
		return accessrequest.Request{}, fmt.Errorf("%w: user id is required", ErrUnauthorized)
	}
	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return accessrequest.Request{}, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}

	_, exists, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return accessrequest.Request{}, fmt.Errorf("get team: %w", err)
	}
	if !exists {
		return accessrequest.Request{}, fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
	}

	pending, err := s.repo.ListPending(ctx)
	if err != nil {
		return accessrequest.Request{}, fmt.Errorf("list pending access requests: %w", err)
	}
	for _, item := range pending {
		if item.TeamID == teamID && item.UserID == principal.UserID {
			return accessrequest.Request{}, fmt.Errorf("%w: request already pending for team=%s", ErrConflict, teamID)
		}
	}

	requestID, err := s.idGen.NewID()
	if err != nil {
		return accessrequest.Request{}, fmt.Errorf("generate access request id: %w", err)
	}
	req := accessrequest.Request{
		ID:        requestID,
		TeamID:    teamID,
		UserID:    principal.UserID,
		Status:    accessrequest.StatusPending,
		CreatedAt: s.now().UTC(),
	}
	if err := req.Validate(); err != nil {
		return accessrequest.Request{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := s.repo.Insert(ctx, req); err != nil {
		return accessrequest.Request{}, fmt.Errorf("insert access request: %w", err)
	}
	return req, nil
}

func (s *AccessRequestService) Approve(ctx context.Context, requestID string) (accessrequest.Request, error) {
	return s.decide(ctx, requestID, accessrequest.StatusApproved)
}

func (s *AccessRequestService) Reject(ctx context.Context, requestID string) (accessrequest.Request, error) {
	return s.decide(ctx, requestID, accessrequest.StatusRejected)
}

func (s *AccessRequestService) decide(ctx context.Context, requestID string, status accessrequest.Status) (accessrequest.Request, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AccessRequestService.Decide")
	defer span.End()

	requestID = strings.TrimSpace(requestID)
	if requestID == "" {
		return accessrequest.Request{}, fmt.Errorf("%w: access request id is required", ErrInvalidInput)
	}

	req, exists, err := s.repo.GetByID(ctx, requestID)
	if err != nil {
		return accessrequest.Request{}, fmt.Errorf("get access request: %w", err)
	}
	if !exists {
		return accessrequest.Request{}, fmt.Errorf("%w: access_request=%s", ErrNotFound, requestID)
	}
	if req.Status != accessrequest.StatusPending {
		return accessrequest.Request{}, fmt.Errorf("%w: access_request=%s already %s", ErrConflict, requestID, req.Status)
	}

	if err := s.repo.UpdateStatus(ctx, requestID, status); err != nil {
		return accessrequest.Request{}, fmt.Errorf("update access request status: %w", err)
	}
	req.Status = status
	return req, nil
}
