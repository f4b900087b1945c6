package goal

import "context"

// Repository describes goal event persistence needs from use cases.
type Repository interface {
	ListByMatch(ctx context.Context, matchID string) ([]Goal, error)
	ListByMatches(ctx context.Context, matchIDs []string) ([]Goal, error)
	Insert(ctx context.Context, g Goal) error
}
