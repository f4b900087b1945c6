package cache

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sourcegraph/conc/pool"
)

func TestStore_GetOrLoad_CollapsesConcurrentLoads(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	var calls atomic.Int32
	release := make(chan struct{})
	loader := func(context.Context) (any, error) {
		calls.Add(1)
		<-release
		return "table", nil
	}

	p := pool.New().WithErrors()
	for range 32 {
		p.Go(func() error {
			v, err := store.GetOrLoad(context.Background(), "view:sport-football:standings", loader)
			if err != nil {
				return err
			}
			if v != "table" {
				return fmt.Errorf("unexpected value %v", v)
			}
			return nil
		})
	}
	time.Sleep(20 * time.Millisecond)
	close(release)

	if err := p.Wait(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Goroutines that start after the first load finishes read the cached value.
	if got := calls.Load(); got != 1 {
		t.Fatalf("loader called %d times, want 1", got)
	}
}

func TestStore_GetOrLoad_ServesCachedValue(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	var calls atomic.Int32
	loader := func(context.Context) (any, error) {
		return int(calls.Add(1)), nil
	}

	for range 3 {
		v, err := store.GetOrLoad(context.Background(), "k", loader)
		if err != nil {
			t.Fatalf("GetOrLoad: %v", err)
		}
		if v != 1 {
			t.Fatalf("expected first loaded value, got %v", v)
		}
	}
}

func TestStore_DeletePrefix_DropsSportViews(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewStore(0)
	store.Set(ctx, "view:football:standings", 1)
	store.Set(ctx, "view:football:topscorers", 2)
	store.Set(ctx, "view:basketball:standings", 3)

	store.DeletePrefix(ctx, "view:football:")

	if store.Len() != 1 {
		t.Fatalf("expected 1 entry left, got %d", store.Len())
	}
	if _, ok := store.Get(ctx, "view:basketball:standings"); !ok {
		t.Fatalf("other sport view must survive")
	}
}

func TestStore_ExpiresAfterTTL(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	now := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	store := NewStore(time.Minute)
	store.now = func() time.Time { return now }

	store.Set(ctx, "view:sport-football:standings", "table")
	if _, ok := store.Get(ctx, "view:sport-football:standings"); !ok {
		t.Fatalf("expected fresh entry")
	}

	now = now.Add(time.Minute)
	if _, ok := store.Get(ctx, "view:sport-football:standings"); ok {
		t.Fatalf("expected entry to expire at ttl")
	}
	if store.Len() != 0 {
		t.Fatalf("expired entry should be dropped on read, len=%d", store.Len())
	}
}

func TestStore_GetOrLoad_DoesNotCacheErrors(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	errLoad := errors.New("matches unavailable")
	var calls atomic.Int32
	loader := func(context.Context) (any, error) {
		calls.Add(1)
		return nil, errLoad
	}

	for i := 0; i < 2; i++ {
		if _, err := store.GetOrLoad(context.Background(), "k", loader); !errors.Is(err, errLoad) {
			t.Fatalf("expected loader error, got %v", err)
		}
	}
	if calls.Load() != 2 {
		t.Fatalf("failed loads must not be cached, calls=%d", calls.Load())
	}
}

func TestStore_InvalidationDuringLoadIsNotOverwritten(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewStore(time.Minute)
	started := make(chan struct{})
	release := make(chan struct{})
	var calls atomic.Int32
	loader := func(context.Context) (any, error) {
		if calls.Add(1) == 1 {
			close(started)
			<-release
			return "stale", nil
		}
		return "fresh", nil
	}

	done := make(chan any, 1)
	go func() {
		v, _ := store.GetOrLoad(ctx, "view:sport-football:standings", loader)
		done <- v
	}()

	<-started
	store.DeletePrefix(ctx, "view:sport-football:")

	// A caller arriving after the invalidation must not join the stale load.
	v, err := store.GetOrLoad(ctx, "view:sport-football:standings", loader)
	if err != nil || v != "fresh" {
		t.Fatalf("expected a fresh load after invalidation, got %v err=%v", v, err)
	}

	close(release)
	if got := <-done; got != "stale" {
		t.Fatalf("first caller should get its own load, got %v", got)
	}
	if v, ok := store.Get(ctx, "view:sport-football:standings"); !ok || v != "fresh" {
		t.Fatalf("stale load overwrote the fresh value: %v ok=%v", v, ok)
	}
}

func TestStore_Reload_SkipsStoreAfterInvalidation(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewStore(time.Minute)
	v, err := store.Reload(ctx, "view:sport-football:topscorers", func(context.Context) (any, error) {
		store.DeletePrefix(ctx, "view:sport-football:")
		return "computed", nil
	})
	if err != nil || v != "computed" {
		t.Fatalf("reload should return its value, got %v err=%v", v, err)
	}
	if _, ok := store.Get(ctx, "view:sport-football:topscorers"); ok {
		t.Fatalf("value computed across an invalidation must not be cached")
	}

	if _, err := store.Reload(ctx, "view:sport-football:topscorers", func(context.Context) (any, error) {
		return "next", nil
	}); err != nil {
		t.Fatalf("reload: %v", err)
	}
	if v, ok := store.Get(ctx, "view:sport-football:topscorers"); !ok || v != "next" {
		t.Fatalf("expected cached reload, got %v ok=%v", v, ok)
	}
}

func TestStore_GetOrLoad_IgnoresCallerCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	store := NewStore(time.Minute)
	v, err := store.GetOrLoad(ctx, "k", func(ctx context.Context) (any, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return "loaded", nil
	})
	if err != nil || v != "loaded" {
		t.Fatalf("shared load must not inherit caller cancellation, got %v err=%v", v, err)
	}
}
