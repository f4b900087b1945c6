package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/sports-scoreboard/internal/config"
	"github.com/riskibarqy/sports-scoreboard/internal/domain/accessrequest"
	"github.com/riskibarqy/sports-scoreboard/internal/domain/goal"
	"github.com/riskibarqy/sports-scoreboard/internal/domain/highscorer"
	"github.com/riskibarqy/sports-scoreboard/internal/domain/match"
	"github.com/riskibarqy/sports-scoreboard/internal/domain/player"
	"github.com/riskibarqy/sports-scoreboard/internal/domain/sport"
	"github.com/riskibarqy/sports-scoreboard/internal/domain/team"
	"github.com/riskibarqy/sports-scoreboard/internal/infrastructure/account/identity"
	cacherepo "github.com/riskibarqy/sports-scoreboard/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/sports-scoreboard/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/sports-scoreboard/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/sports-scoreboard/internal/interfaces/httpapi"
	"github.com/riskibarqy/sports-scoreboard/internal/observability"
	basecache "github.com/riskibarqy/sports-scoreboard/internal/platform/cache"
	idgen "github.com/riskibarqy/sports-scoreboard/internal/platform/id"
	"github.com/riskibarqy/sports-scoreboard/internal/platform/logging"
	"github.com/riskibarqy/sports-scoreboard/internal/platform/resilience"
	"github.com/riskibarqy/sports-scoreboard/internal/usecase"
)

// App is the assembled API process: HTTP server, background warm-up and owned resources.
type App struct {
	Server *http.Server
	warmup *usecase.WarmupService
	db     *sqlx.DB
	logger *logging.Logger
}

type repositories struct {
	sports         sport.Repository
	teams          team.Repository
	matches        match.Repository
	goals          goal.Repository
	highScorers    highscorer.Repository
	players        player.Repository
	accessRequests accessrequest.Repository
}

// New wires the API. metrics may be nil when METRICS_ENABLED=false.
func New(ctx context.Context, cfg config.Config, logger *logging.Logger, metrics *observability.Metrics) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	a := &App{logger: logger}

	repos, err := a.openRepositories(ctx, cfg)
	if err != nil {
		return nil, err
	}

	var viewCache *basecache.Store
	if cfg.CacheEnabled {
		entityCache := basecache.NewStore(cfg.CacheTTL)
		repos.sports = cacherepo.NewSportRepository(repos.sports, entityCache)
		repos.teams = cacherepo.NewTeamRepository(repos.teams, entityCache)
		viewCache = basecache.NewStore(cfg.CacheTTL)
	}

	var (
		matchMetrics  usecase.MatchMetrics
		warmupMetrics usecase.WarmupMetrics
		routerOpts    = httpapi.RouterOptions{
			SwaggerEnabled:     cfg.SwaggerEnabled,
			CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		}
	)
	if metrics != nil {
		matchMetrics = metrics
		warmupMetrics = metrics
		routerOpts.MetricsHandler = metrics.Handler()
		routerOpts.Observer = metrics
	}

	ids := idgen.NewUUIDGenerator()
	sportSvc := usecase.NewSportService(repos.sports, repos.teams)
	standingsSvc := usecase.NewStandingsService(repos.sports, repos.teams, repos.matches, viewCache)
	topScorerSvc := usecase.NewTopScorerService(repos.sports, repos.teams, repos.matches, repos.goals, repos.highScorers, viewCache)
	matchSvc := usecase.NewMatchService(
		repos.sports,
		repos.teams,
		repos.matches,
		repos.goals,
		repos.highScorers,
		ids,
		matchMetrics,
		standingsSvc,
		cfg.Location,
		logger,
	)
	playerSvc := usecase.NewPlayerService(repos.teams, repos.players, ids)
	accessSvc := usecase.NewAccessRequestService(repos.teams, repos.accessRequests, ids)

	if viewCache != nil {
		a.warmup = usecase.NewWarmupService(repos.sports, standingsSvc, topScorerSvc, usecase.WarmupConfig{
			Enabled:  cfg.WarmupEnabled,
			Interval: cfg.WarmupInterval,
			Workers:  cfg.WarmupWorkers,
		}, warmupMetrics, logger)
	}

	identityClient := identity.NewClient(identity.ClientConfig{
		BaseURL:        cfg.IdentityBaseURL,
		IntrospectPath: cfg.IdentityIntrospectPath,
		AdminKey:       cfg.IdentityAdminKey,
		Timeout:        cfg.IdentityTimeout,
		CacheTTL:       cfg.IdentityCacheTTL,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.IdentityCircuitEnabled,
			FailureThreshold: cfg.IdentityCircuitFailureCount,
			OpenTimeout:      cfg.IdentityCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.IdentityCircuitHalfOpenMaxReq,
		},
	}, logger)

	handler := httpapi.NewHandler(httpapi.Services{
		Sports:     sportSvc,
		Standings:  standingsSvc,
		TopScorers: topScorerSvc,
		Matches:    matchSvc,
		Players:    playerSvc,
		Access:     accessSvc,
	}, logger)
	router := httpapi.NewRouter(handler, identityClient, logger, routerOpts)

	a.Server = &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      cfg.WriteTimeout,
	}

	return a, nil
}

// Start launches the background warm-up loop; it stops when ctx is cancelled.
func (a *App) Start(ctx context.Context) {
	if a.warmup == nil {
		a.logger.Info("standings warm-up disabled", "reason", "CACHE_ENABLED=false")
		return
	}
	a.warmup.Start(ctx)
}

func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}

func (a *App) openRepositories(ctx context.Context, cfg config.Config) (repositories, error) {
	if cfg.StorageBackend != config.StoragePostgres {
		a.logger.Info("storage backend selected", "backend", config.StorageMemory)
		store := memory.NewSeededStore()
		return repositories{
			sports:         store.Sports,
			teams:          store.Teams,
			matches:        store.Matches,
			goals:          store.Goals,
			highScorers:    store.HighScorers,
			players:        store.Players,
			accessRequests: store.AccessRequests,
		}, nil
	}

	db, err := openDB(ctx, cfg)
	if err != nil {
		return repositories{}, err
	}
	a.db = db

	if cfg.DBSeedOnStart {
		if err := postgres.BootstrapSeed(ctx, db); err != nil {
			_ = db.Close()
			return repositories{}, fmt.Errorf("bootstrap seed: %w", err)
		}
	}

	a.logger.Info("storage backend selected", "backend", config.StoragePostgres, "db_name", databaseName(cfg.DBURL))
	return repositories{
		sports:         postgres.NewSportRepository(db),
		teams:          postgres.NewTeamRepository(db),
		matches:        postgres.NewMatchRepository(db),
		goals:          postgres.NewGoalRepository(db),
		highScorers:    postgres.NewHighScorerRepository(db),
		players:        postgres.NewPlayerRepository(db),
		accessRequests: postgres.NewAccessRequestRepository(db),
	}, nil
}
