package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/viken/timetracker/internal/api"
	"github.com/viken/timetracker/internal/core/ports"
	"github.com/viken/timetracker/internal/core/service"
	"github.com/viken/timetracker/internal/infrastructure/config"
	"github.com/viken/timetracker/internal/infrastructure/db/memory"
	"github.com/viken/timetracker/internal/infrastructure/fixtures"
	"github.com/viken/timetracker/internal/infrastructure/session"
	"github.com/viken/timetracker/pkg/logger"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		logger.Init(logger.Options{})
		fallback := logger.Get()
		fallback.Fatal().Err(err).Msg("failed to load configuration")
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	storage, closeStorage, err := newSessionStorage(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialise session storage")
	}
	defer closeStorage()

	// Restore the previous session, if any. A backend failure degrades to an
	// anonymous session rather than blocking startup.
	store := session.NewStore(storage, log)
	if err := store.Load(ctx); err != nil {
		log.Warn().Err(err).Msg("session restore failed, starting anonymous")
	}

	projectRepo := memory.NewProjectRepository()
	employeeRepo := memory.NewEmployeeRepository()
	entryRepo := memory.NewTimeEntryRepository()
	if err := fixtures.Seed(ctx, projectRepo, employeeRepo, entryRepo); err != nil {
		log.Fatal().Err(err).Msg("failed to seed demo data")
	}

	authService, err := service.NewAuthService(store, employeeRepo, fixtures.Credentials(), log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build auth service")
	}

	e := api.NewRouter(api.Dependencies{
		Auth:           authService,
		Projects:       service.NewProjectService(projectRepo, log),
		Entries:        service.NewTimeEntryService(entryRepo, projectRepo, log),
		Employees:      service.NewEmployeeService(employeeRepo, log),
		Reports:        service.NewReportService(entryRepo, projectRepo, employeeRepo, log),
		SessionStorage: storage,
		Logger:         log,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting timetracker server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	sig := <-quit
	log.Info().Str("signal", sig.String()).Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("forced shutdown")
	}
}

// newSessionStorage builds the configured durable backend for the session
// record. The returned func releases the backend's resources.
func newSessionStorage(ctx context.Context, cfg *config.Config) (ports.SessionStorage, func(), error) {
	switch cfg.Session.Backend {
	case config.SessionBackendRedis:
		client, err := session.Connect(ctx, session.RedisConfig{
			Addr: cfg.Redis.Addr,
			DB:   cfg.Redis.DB,
		})
		if err != nil {
			return nil, nil, err
		}
		return session.NewRedisStorage(client, cfg.Session.Key), func() { _ = client.Close() }, nil
	default:
		return session.NewFileStorage(cfg.Session.FilePath), func() {}, nil
	}
}
