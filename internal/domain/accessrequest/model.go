package accessrequest

import (
	"context"
	"fmt"
	"time"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// Request is a user's application to manage a team.
type Request struct {
	ID        string
	TeamID    string
	UserID    string
	Status    Status
	CreatedAt time.Time
}

func (r Request) Validate() error {
	if r.ID == "" {
		return fmt.Errorf("access request id is required")
	}
	if r.TeamID == "" {
		return fmt.Errorf("access request team id is required")
	}
	if r.UserID == "" {
		return fmt.Errorf("access request user id is required")
	}
	switch r.Status {
	case StatusPending, StatusApproved, StatusRejected:
	default:
		return fmt.Errorf("invalid access request status: %s", r.Status)
	}
	return nil
}

// Repository describes access request persistence needs from use cases.
type Repository interface {
	ListPending(ctx context.Context) ([]Request, error)
	GetByID(ctx context.Context, requestID string) (Request, bool, error)
	Insert(ctx context.Context, r Request) error
	UpdateStatus(ctx context.Context, requestID string, status Status) error
}
