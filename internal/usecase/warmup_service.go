package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/riskibarqy/sports-scoreboard/internal/domain/sport"
	"github.com/riskibarqy/sports-scoreboard/internal/platform/logging"
)

type WarmupConfig struct {
	Enabled  bool
	Interval time.Duration
	Workers  int
}

type WarmupResult struct {
	SportCount   int                `json:"sport_count"`
	SuccessCount int                `json:"success_count"`
	FailedCount  int                `json:"failed_count"`
	WorkerCount  int                `json:"worker_count"`
	Tasks        []WarmupTaskResult `json:"tasks"`
}

type WarmupTaskResult struct {
	SportSlug  string `json:"sport_slug"`
	Status     string `json:"status"`
	Groups     int    `json:"groups"`
	Scorers    int    `json:"scorers"`
	DurationMs int64  `json:"duration_ms"`
	Message    string `json:"message,omitempty"`
}

// WarmupMetrics counts warm-up runs by outcome.
type WarmupMetrics interface {
	WarmupRun(status string)
}

const (
	warmupStatusSuccess = "success"
	warmupStatusFailed  = "failed"

	defaultWarmupWorkers = 4
)

// WarmupService precomputes every sport's standings and leaderboard into the view cache.
type WarmupService struct {
	sportRepo  sport.Repository
	standings  *StandingsService
	topScorers *TopScorerService
	cfg        WarmupConfig
	metrics    WarmupMetrics
	logger     *logging.Logger
}

func NewWarmupService(
	sportRepo sport.Repository,
	standings *StandingsService,
	topScorers *TopScorerService,
	cfg WarmupConfig,
	metrics WarmupMetrics,
	logger *logging.Logger,
) *WarmupService {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.Workers <= 0 {
		cfg.Workers = defaultWarmupWorkers
	}
	if cfg.Interval <= 0 {
		cfg.Interval = time.Minute
	}

	return &WarmupService{
		sportRepo:  sportRepo,
		standings:  standings,
		topScorers: topScorers,
		cfg:        cfg,
		metrics:    metrics,
		logger:     logger.With("component", "warmup"),
	}
}

func (s *WarmupService) RunOnce(ctx context.Context) (WarmupResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.WarmupService.RunOnce")
	defer span.End()

	sports, err := s.sportRepo.List(ctx)
	if err != nil {
		return WarmupResult{}, fmt.Errorf("list sports: %w", err)
	}

	workerCount := min(s.cfg.Workers, max(len(sports), 1))
	result := WarmupResult{
		SportCount:  len(sports),
		WorkerCount: workerCount,
		Tasks:       make([]WarmupTaskResult, 0, len(sports)),
	}
	if len(sports) == 0 {
		return result, nil
	}

	pool, err := ants.NewPool(workerCount)
	if err != nil {
		return WarmupResult{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	results := make(chan WarmupTaskResult, len(sports))
	var successCount atomic.Int32
	var failedCount atomic.Int32

	var workers sync.WaitGroup
	for _, item := range sports {
		item := item
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			row := s.warmSport(ctx, item)
			if row.Status == warmupStatusSuccess {
				successCount.Add(1)
			} else {
				failedCount.Add(1)
			}
			s.record(row.Status)
			results <- row
		}); err != nil {
			workers.Done()
			return WarmupResult{}, fmt.Errorf("submit task to worker pool: %w", err)
		}
	}

	workers.Wait()
	close(results)

	for row := range results {
		result.Tasks = append(result.Tasks, row)
	}
	sort.SliceStable(result.Tasks, func(i, j int) bool {
		return result.Tasks[i].SportSlug < result.Tasks[j].SportSlug
	})

	result.SuccessCount = int(successCount.Load())
	result.FailedCount = int(failedCount.Load())
	return result, nil
}

func (s *WarmupService) warmSport(ctx context.Context, item sport.Sport) WarmupTaskResult {
	start := time.Now()
	row := WarmupTaskResult{SportSlug: item.Slug, Status: warmupStatusSuccess}

	view, err := s.standings.Refresh(ctx, item)
	if err != nil {
		row.Status = warmupStatusFailed
		row.Message = err.Error()
		row.DurationMs = time.Since(start).Milliseconds()
		return row
	}
	row.Groups = len(view.Groups)

	if s.topScorers != nil {
		board, err := s.topScorers.Refresh(ctx, item)
		if err != nil {
			row.Status = warmupStatusFailed
			row.Message = err.Error()
		}
		row.Scorers = len(board.Entries)
	}

	row.DurationMs = time.Since(start).Milliseconds()
	return row
}

func (s *WarmupService) record(status string) {
	if s.metrics != nil {
		s.metrics.WarmupRun(status)
	}
}

// Start runs RunOnce on every interval until ctx is cancelled.
func (s *WarmupService) Start(ctx context.Context) {
	if !s.cfg.Enabled {
		return
	}

	go func() {
		ticker := time.NewTicker(s.cfg.Interval)
		defer ticker.Stop()

		for {
			result, err := s.RunOnce(ctx)
			if err != nil {
				s.logger.WarnContext(ctx, "standings warm-up failed", "error", err)
			} else if result.FailedCount > 0 {
				s.logger.WarnContext(ctx, "standings warm-up finished with failures",
					"sports", result.SportCount,
					"failed", result.FailedCount,
				)
			}

			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
		}
	}()
}
