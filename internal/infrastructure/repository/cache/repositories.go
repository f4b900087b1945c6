// Package cache decorates the sport and team repositories with the shared in-process
// store. Both are reference data that only change through migrations or seeding.
package cache

import (
	"context"
	"slices"

	"github.com/riskibarqy/sports-scoreboard/internal/domain/sport"
	"github.com/riskibarqy/sports-scoreboard/internal/domain/team"
	basecache "github.com/riskibarqy/sports-scoreboard/internal/platform/cache"
)

// lookup remembers misses too, so unknown slugs in URLs do not reach the database each time.
type lookup[T any] struct {
	value  T
	exists bool
}

func cachedList[T any](ctx context.Context, store *basecache.Store, key string, load func(context.Context) ([]T, error)) ([]T, error) {
	v, err := store.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := load(ctx)
		if err != nil {
			return nil, err
		}
		return slices.Clone(items), nil
	})
	if err != nil {
		return nil, err
	}
	items, _ := v.([]T)
	return slices.Clone(items), nil
}

func cachedLookup[T any](ctx context.Context, store *basecache.Store, key string, load func(context.Context) (T, bool, error)) (T, bool, error) {
	v, err := store.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		item, exists, err := load(ctx)
		if err != nil {
			return nil, err
		}
		return lookup[T]{value: item, exists: exists}, nil
	})
	if err != nil {
		var zero T
		return zero, false, err
	}
	hit, _ := v.(lookup[T])
	return hit.value, hit.exists, nil
}

type SportRepository struct {
	next  sport.Repository
	store *basecache.Store
}

func NewSportRepository(next sport.Repository, store *basecache.Store) *SportRepository {
	return &SportRepository{next: next, store: store}
}

func (r *SportRepository) List(ctx context.Context) ([]sport.Sport, error) {
	return cachedList(ctx, r.store, "sport:list", r.next.List)
}

func (r *SportRepository) GetBySlug(ctx context.Context, slug string) (sport.Sport, bool, error) {
	return cachedLookup(ctx, r.store, "sport:slug:"+slug, func(ctx context.Context) (sport.Sport, bool, error) {
		return r.next.GetBySlug(ctx, slug)
	})
}

func (r *SportRepository) GetByID(ctx context.Context, sportID string) (sport.Sport, bool, error) {
	return cachedLookup(ctx, r.store, "sport:id:"+sportID, func(ctx context.Context) (sport.Sport, bool, error) {
		return r.next.GetByID(ctx, sportID)
	})
}

type TeamRepository struct {
	next  team.Repository
	store *basecache.Store
}

func NewTeamRepository(next team.Repository, store *basecache.Store) *TeamRepository {
	return &TeamRepository{next: next, store: store}
}

func (r *TeamRepository) ListBySport(ctx context.Context, sportID string) ([]team.Team, error) {
	return cachedList(ctx, r.store, "team:list:"+sportID, func(ctx context.Context) ([]team.Team, error) {
		return r.next.ListBySport(ctx, sportID)
	})
}

func (r *TeamRepository) GetByID(ctx context.Context, teamID string) (team.Team, bool, error) {
	return cachedLookup(ctx, r.store, "team:id:"+teamID, func(ctx context.Context) (team.Team, bool, error) {
		return r.next.GetByID(ctx, teamID)
	})
}
