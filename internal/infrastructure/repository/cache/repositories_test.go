package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/riskibarqy/sports-scoreboard/internal/domain/sport"
	"github.com/riskibarqy/sports-scoreboard/internal/domain/team"
	sportmock "github.com/riskibarqy/sports-scoreboard/internal/mocks/domain/sport"
	teammock "github.com/riskibarqy/sports-scoreboard/internal/mocks/domain/team"
	basecache "github.com/riskibarqy/sports-scoreboard/internal/platform/cache"
)

func TestSportRepository_GetBySlugLoadsOnce(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	next := sportmock.NewRepository(t)
	next.
		On("GetBySlug", mock.Anything, "football").
		Return(sport.Sport{ID: "s1", Slug: "football", Name: "Football"}, true, nil).
		Once()

	repo := NewSportRepository(next, basecache.NewStore(time.Minute))
	for i := 0; i < 3; i++ {
		got, ok, err := repo.GetBySlug(ctx, "football")
		if err != nil || !ok || got.ID != "s1" {
			t.Fatalf("unexpected result: %+v ok=%v err=%v", got, ok, err)
		}
	}
}

func TestSportRepository_CachesMisses(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	next := sportmock.NewRepository(t)
	next.On("GetByID", mock.Anything, "missing").Return(sport.Sport{}, false, nil).Once()

	repo := NewSportRepository(next, basecache.NewStore(time.Minute))
	for i := 0; i < 2; i++ {
		if _, ok, err := repo.GetByID(ctx, "missing"); ok || err != nil {
			t.Fatalf("expected cached miss, ok=%v err=%v", ok, err)
		}
	}
}

func TestTeamRepository_ListReturnsCopies(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	next := teammock.NewRepository(t)
	next.
		On("ListBySport", mock.Anything, "s1").
		Return([]team.Team{{ID: "t1", SportID: "s1", Name: "SMA 1"}}, nil).
		Once()

	repo := NewTeamRepository(next, basecache.NewStore(time.Minute))
	first, err := repo.ListBySport(ctx, "s1")
	if err != nil {
		t.Fatalf("list teams: %v", err)
	}
	first[0].Name = "mutated"

	second, _ := repo.ListBySport(ctx, "s1")
	if second[0].Name != "SMA 1" {
		t.Fatalf("cached slice must not be shared with callers")
	}
}
