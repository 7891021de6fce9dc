package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/zeeneddie/Sports-League-Management-System/external/hollandsevelden"
	"github.com/zeeneddie/Sports-League-Management-System/external/voetbaloost"
	"github.com/zeeneddie/Sports-League-Management-System/internal/config"
	"github.com/zeeneddie/Sports-League-Management-System/internal/interfaces/httpapi"
	"github.com/zeeneddie/Sports-League-Management-System/internal/livemerge"
	"github.com/zeeneddie/Sports-League-Management-System/internal/platform/logging"
	"github.com/zeeneddie/Sports-League-Management-System/internal/platform/resilience"
	"github.com/zeeneddie/Sports-League-Management-System/internal/scheduler"
	"github.com/zeeneddie/Sports-League-Management-System/internal/snapshot"
	"github.com/zeeneddie/Sports-League-Management-System/internal/teamname"
	"github.com/zeeneddie/Sports-League-Management-System/internal/usecase"
)

// App bundles the HTTP server and the background scheduler built from
// one configuration.
type App struct {
	Server    *http.Server
	Scheduler *scheduler.Scheduler
}

func New(cfg config.Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}

	store := snapshot.NewStore(cfg.DataFile)
	matcher := teamname.New(teamname.WithThreshold(cfg.LiveFuzzyThreshold))

	client := hollandsevelden.NewClient(hollandsevelden.ClientConfig{
		BaseURL:         cfg.HollandseVeldenBaseURL,
		APIKey:          cfg.HollandseVeldenAPIKey,
		CompetitionPath: cfg.HollandseVeldenCompetitionPath,
		Timeout:         cfg.HollandseVeldenTimeout,
		MaxRetries:      cfg.HollandseVeldenMaxRetries,
		Logger:          logger,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.HollandseVeldenCircuitEnabled,
			FailureThreshold: cfg.HollandseVeldenCircuitFailureCount,
			OpenTimeout:      cfg.HollandseVeldenCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.HollandseVeldenCircuitHalfOpenMaxReq,
		},
	})

	refreshSvc := usecase.NewRefreshService(
		client,
		hollandsevelden.FixtureSource{},
		store,
		cfg.FeaturedTeam,
		cfg.UseTestData,
		logger,
	)
	dashboardSvc := usecase.NewDashboardService(store, refreshSvc)

	scraper := voetbaloost.NewScraper(voetbaloost.ScraperConfig{
		LiveURL: cfg.LiveScrapeURL,
		Matcher: matcher,
		Logger:  logger,
	})
	merger := livemerge.New(matcher, logger, livemerge.Config{
		BackupDir:     cfg.BackupDir,
		MinConfidence: cfg.LiveFuzzyThreshold,
	})
	liveSvc := usecase.NewLiveScoreService(scraper, merger, cfg.FeaturedTeam, cfg.LiveTargetFiles, logger)

	sched := scheduler.New(
		scheduler.Config{
			DailyRefreshAt:          cfg.DailyRefreshAt,
			SaturdayRefreshStart:    cfg.SaturdayRefreshStart,
			SaturdayRefreshEnd:      cfg.SaturdayRefreshEnd,
			SaturdayRefreshInterval: cfg.SaturdayRefreshInterval,
			LiveWindowStart:         cfg.LiveWindowStart,
			LiveWindowEnd:           cfg.LiveWindowEnd,
			LiveInterval:            cfg.LiveInterval,
		},
		func(ctx context.Context) error {
			_, err := refreshSvc.Refresh(ctx)
			return err
		},
		func(ctx context.Context) error {
			_, err := liveSvc.Update(ctx)
			return err
		},
		store.Exists,
		logger,
	)

	handler := httpapi.NewHandler(dashboardSvc, refreshSvc, logger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return &App{Server: server, Scheduler: sched}, nil
}
