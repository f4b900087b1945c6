package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/sports-scoreboard/internal/domain/sport"
)

type SportRepository struct {
	mu     sync.RWMutex
	sports []sport.Sport
}

func NewSportRepository(sports []sport.Sport) *SportRepository {
	return &SportRepository{sports: append([]sport.Sport(nil), sports...)}
}

func (r *SportRepository) List(_ context.Context) ([]sport.Sport, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]sport.Sport(nil), r.sports...), nil
}

func (r *SportRepository) GetBySlug(_ context.Context, slug string) (sport.Sport, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.sports {
		if item.Slug == slug {
			return item, true, nil
		}
	}
	return sport.Sport{}, false, nil
}

func (r *SportRepository) GetByID(_ context.Context, sportID string) (sport.Sport, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.sports {
		if item.ID == sportID {
			return item, true, nil
		}
	}
	return sport.Sport{}, false, nil
}
