package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/racha-league/internal/config"
	"github.com/riskibarqy/racha-league/internal/domain/highlight"
	"github.com/riskibarqy/racha-league/internal/domain/match"
	"github.com/riskibarqy/racha-league/internal/domain/racha"
	repocache "github.com/riskibarqy/racha-league/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/racha-league/internal/infrastructure/repository/guarded"
	"github.com/riskibarqy/racha-league/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/racha-league/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/racha-league/internal/interfaces/httpapi"
	basecache "github.com/riskibarqy/racha-league/internal/platform/cache"
	idgen "github.com/riskibarqy/racha-league/internal/platform/id"
	"github.com/riskibarqy/racha-league/internal/platform/logging"
	"github.com/riskibarqy/racha-league/internal/platform/metrics"
	"github.com/riskibarqy/racha-league/internal/platform/resilience"
	"github.com/riskibarqy/racha-league/internal/usecase"
)

type repositories struct {
	rachas     racha.Repository
	matches    match.Repository
	highlights highlight.Repository
}

// App owns the HTTP server and whatever it opened to serve it.
type App struct {
	Server *http.Server
	db     *sqlx.DB
}

func New(ctx context.Context, cfg config.Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	var recorder *metrics.Recorder
	if cfg.MetricsEnabled {
		recorder = metrics.NewRecorder()
	}

	out := &App{}
	var repos repositories
	switch cfg.DataSource {
	case config.DataSourcePostgres:
		db, err := OpenPostgres(ctx, cfg)
		if err != nil {
			return nil, err
		}
		out.db = db
		repos = postgresRepositories(cfg, db, logger)
	default:
		repos = repositories{
			rachas:     memory.NewRachaRepository(memory.SeedRachas()),
			matches:    memory.NewMatchRepository(memory.SeedMatches()),
			highlights: memory.NewHighlightRepository(memory.SeedOverrides()),
		}
	}
	if cfg.CacheEnabled {
		repos = cachedRepositories(cfg, repos, recorder)
	}

	handler := httpapi.NewHandler(
		usecase.NewRachaService(repos.rachas),
		usecase.NewMatchdayService(repos.rachas, repos.matches, repos.highlights, usecase.MatchdayServiceConfig{
			Location:           cfg.Location,
			CurrentDayLookback: cfg.CurrentDayLookback,
		}, recorder, logger),
		usecase.NewSeasonService(repos.rachas, repos.matches, usecase.SeasonServiceConfig{
			Location:       cfg.Location,
			DefaultWindow:  cfg.SeasonDefaultWindow,
			RankingWorkers: cfg.SeasonRankingWorkers,
		}, recorder, logger),
		cfg.Location,
		logger,
	)
	router := httpapi.NewRouter(handler, logger, httpapi.RouterConfig{
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		Metrics:            recorder,
		IDGenerator:        idgen.NewUUIDGenerator(),
	})

	out.Server = &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	logger.Info("app wired",
		"data_source", cfg.DataSource,
		"cache_enabled", cfg.CacheEnabled,
		"db_circuit_enabled", cfg.DBCircuitEnabled && cfg.DataSource == config.DataSourcePostgres,
		"metrics_enabled", cfg.MetricsEnabled,
		"timezone", cfg.Timezone,
	)

	return out, nil
}

// Close releases the database pool, if any. Call it after the server has shut down.
func (a *App) Close() error {
	if a == nil || a.db == nil {
		return nil
	}
	if err := a.db.Close(); err != nil {
		return fmt.Errorf("close database: %w", err)
	}
	return nil
}

func postgresRepositories(cfg config.Config, db *sqlx.DB, logger *logging.Logger) repositories {
	repos := repositories{
		rachas:     postgres.NewRachaRepository(db),
		matches:    postgres.NewMatchRepository(db),
		highlights: postgres.NewHighlightRepository(db),
	}

	breakerCfg := resilience.CircuitBreakerConfig{
		Enabled:          cfg.DBCircuitEnabled,
		FailureThreshold: cfg.DBCircuitFailureCount,
		OpenTimeout:      cfg.DBCircuitOpenTimeout,
		HalfOpenMaxReq:   cfg.DBCircuitHalfOpenMaxReq,
	}.Normalized()
	breaker, ok := resilience.NewCircuitBreakerFromConfig(breakerCfg)
	if !ok {
		return repos
	}
	logger.Info("db circuit breaker enabled",
		"failure_threshold", breakerCfg.FailureThreshold,
		"open_timeout", breakerCfg.OpenTimeout.String(),
		"half_open_max_req", breakerCfg.HalfOpenMaxReq,
	)

	return repositories{
		rachas:     guarded.NewRachaRepository(repos.rachas, breaker, postgres.IsDependencyFailure),
		matches:    guarded.NewMatchRepository(repos.matches, breaker, postgres.IsDependencyFailure),
		highlights: guarded.NewHighlightRepository(repos.highlights, breaker, postgres.IsDependencyFailure),
	}
}

func cachedRepositories(cfg config.Config, repos repositories, recorder *metrics.Recorder) repositories {
	store := func(name string) *basecache.Store {
		return basecache.NewStore(cfg.CacheTTL,
			basecache.WithName(name),
			basecache.WithObserver(recorder.CountCacheLookup),
			basecache.WithMaxEntries(4096),
		)
	}

	return repositories{
		rachas:     repocache.NewRachaRepository(repos.rachas, store("rachas")),
		matches:    repocache.NewMatchRepository(repos.matches, store("matches")),
		highlights: repocache.NewHighlightRepository(repos.highlights, store("highlights")),
	}
}
