package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/tbouvier/leitner-api/internal/config"
	"github.com/tbouvier/leitner-api/internal/platform/logger"
	"github.com/tbouvier/leitner-api/internal/platform/memory"
	"github.com/tbouvier/leitner-api/internal/platform/postgres"
	"github.com/tbouvier/leitner-api/internal/service/auth"
	"github.com/tbouvier/leitner-api/internal/service/card"
	"github.com/tbouvier/leitner-api/internal/service/quiz"
	"github.com/tbouvier/leitner-api/internal/store"
)

// application holds the wired dependencies of the running server.
type application struct {
	config *config.Config
	logger *slog.Logger

	db           *sql.DB // nil when the memory store is configured
	cardStore    store.CardStore
	tokenService auth.TokenService
	cardService  card.Service
	quizService  quiz.Service
	quizGate     *quiz.DailyGate
}

// newApplication loads configuration and constructs every component of the
// dependency graph. The daily gate is built exactly once here and injected
// into the quiz service; nothing reaches it as ambient state.
func newApplication() (*application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	log := logger.Setup(cfg.Server)
	log.Info("configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"store", cfg.Database.Store)

	app := &application{
		config: cfg,
		logger: log,
	}

	switch cfg.Database.Store {
	case "postgres":
		db, err := openDatabase(cfg.Database, log)
		if err != nil {
			return nil, err
		}
		if err := runMigrations(db, log); err != nil {
			_ = db.Close()
			return nil, err
		}
		app.db = db
		app.cardStore = postgres.NewCardStore(db, log)
	default:
		app.cardStore = memory.NewCardStore()
	}

	app.tokenService, err = auth.NewTokenService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to create token service: %w", err)
	}

	app.quizGate = quiz.NewDailyGate()
	app.cardService = card.NewService(app.cardStore, log)
	app.quizService = quiz.NewService(app.cardStore, app.quizGate, log)

	return app, nil
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("failed to close database", "error", err)
		}
	}
}
