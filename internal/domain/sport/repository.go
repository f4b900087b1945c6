package sport

import "context"

// Repository describes sport persistence needs from use cases.
type Repository interface {
	List(ctx context.Context) ([]Sport, error)
	GetBySlug(ctx context.Context, slug string) (Sport, bool, error)
	GetByID(ctx context.Context, sportID string) (Sport, bool, error)
}
