package match

import "context"

// StatusUpdate changes the status note and, when Status is non-nil, the status itself.
type StatusUpdate struct {
	Status     *string
	StatusNote string
}

// Repository describes match persistence needs from use cases.
type Repository interface {
	ListBySport(ctx context.Context, sportID string) ([]Match, error)
	GetByID(ctx context.Context, matchID string) (Match, bool, error)
	UpdateScore(ctx context.Context, matchID string, homeScore, awayScore int) error
	UpdateStatus(ctx context.Context, matchID string, update StatusUpdate) error
}
