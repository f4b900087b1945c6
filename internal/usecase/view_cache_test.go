package usecase

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/riskibarqy/sports-scoreboard/internal/domain/match"
	"github.com/riskibarqy/sports-scoreboard/internal/domain/sport"
	"github.com/riskibarqy/sports-scoreboard/internal/infrastructure/repository/memory"
	basecache "github.com/riskibarqy/sports-scoreboard/internal/platform/cache"
	"github.com/riskibarqy/sports-scoreboard/internal/platform/id"
	"github.com/riskibarqy/sports-scoreboard/internal/platform/logging"
)

// pausingMatchRepository holds one ListBySport call after it has read, until released.
type pausingMatchRepository struct {
	*memory.MatchRepository
	armed   atomic.Bool
	paused  chan struct{}
	release chan struct{}
}

func newPausingMatchRepository(next *memory.MatchRepository) *pausingMatchRepository {
	r := &pausingMatchRepository{
		MatchRepository: next,
		paused:          make(chan struct{}),
		release:         make(chan struct{}),
	}
	r.armed.Store(true)
	return r
}

func (r *pausingMatchRepository) ListBySport(ctx context.Context, sportID string) ([]match.Match, error) {
	items, err := r.MatchRepository.ListBySport(ctx, sportID)
	if r.armed.CompareAndSwap(true, false) {
		close(r.paused)
		<-r.release
	}
	return items, err
}

func playedTotal(view StandingsView) int {
	total := 0
	for _, g := range view.Groups {
		for _, row := range g.Rows {
			total += row.Played
		}
	}
	return total
}

func TestStandingsCache_WriteDuringLoadIsNotMasked(t *testing.T) {
	t.Parallel()

	cases := map[string]func(*StandingsService) error{
		"lazy load": func(svc *StandingsService) error {
			_, err := svc.Standings(context.Background(), "football")
			return err
		},
		"warm-up refresh": func(svc *StandingsService) error {
			_, err := svc.Refresh(context.Background(), sport.Sport{ID: memory.SportIDFootball, Slug: "football"})
			return err
		},
	}
	for name, load := range cases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			ctx := context.Background()
			store := memory.NewSeededStore()
			cache := basecache.NewStore(time.Minute)
			paused := newPausingMatchRepository(store.Matches)
			standingsSvc := NewStandingsService(store.Sports, store.Teams, paused, cache)
			matchSvc := NewMatchService(store.Sports, store.Teams, store.Matches, store.Goals, store.HighScorers,
				id.NewSequenceGenerator("t"), nil, standingsSvc, time.UTC, logging.NewNop())

			done := make(chan error, 1)
			go func() { done <- load(standingsSvc) }()

			<-paused.paused
			if _, err := matchSvc.Finalize(ctx, "fb-m2"); err != nil {
				t.Fatalf("finalize: %v", err)
			}
			close(paused.release)
			if err := <-done; err != nil {
				t.Fatalf("load: %v", err)
			}

			view, err := standingsSvc.Standings(ctx, "football")
			if err != nil {
				t.Fatalf("standings: %v", err)
			}
			if got := playedTotal(view); got != 4 {
				t.Fatalf("standings still reflect the pre-finalize table: played=%d want=4", got)
			}
		})
	}
}
