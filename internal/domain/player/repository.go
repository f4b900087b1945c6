package player

import "context"

// Repository describes player persistence needs from use cases.
// ListByTeam returns players ordered by jersey number.
type Repository interface {
	ListByTeam(ctx context.Context, teamID string) ([]Player, error)
	Insert(ctx context.Context, p Player) error
}
