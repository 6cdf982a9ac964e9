package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/DevCoder-git/anime-verse-suggestor/internal/config"
	"github.com/DevCoder-git/anime-verse-suggestor/internal/platform/postgres"
	"github.com/DevCoder-git/anime-verse-suggestor/internal/service"
	"github.com/DevCoder-git/anime-verse-suggestor/internal/service/auth"
	"github.com/DevCoder-git/anime-verse-suggestor/internal/service/recommend"
	"github.com/DevCoder-git/anime-verse-suggestor/internal/store"
)

// application holds all the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	// Configuration
	config *config.Config

	// Core services
	logger *slog.Logger
	db     *sql.DB

	// Stores (using interfaces for proper abstraction)
	userStore      store.UserStore
	animeStore     store.AnimeStore
	genreStore     store.GenreStore
	ratingStore    store.RatingStore
	commentStore   store.CommentStore
	watchlistStore store.WatchlistStore

	// Service interfaces
	jwtService       auth.JWTService
	passwordVerifier *auth.BcryptVerifier
	ratingService    service.RatingService
	recommender      *recommend.Service
}

// newApplication creates a new application instance with all dependencies
// initialized. It accepts core dependencies like configuration, logger, and
// database connection that must be established before application
// initialization.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	var err error
	app.jwtService, err = auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	logger.Info("JWT authentication service initialized",
		"token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes)

	app.passwordVerifier = auth.NewBcryptVerifier()

	app.userStore = postgres.NewPostgresUserStore(db, logger)
	app.animeStore = postgres.NewPostgresAnimeStore(db, logger)
	app.genreStore = postgres.NewPostgresGenreStore(db, logger)
	app.ratingStore = postgres.NewPostgresRatingStore(db, logger)
	app.commentStore = postgres.NewPostgresCommentStore(db, logger)
	app.watchlistStore = postgres.NewPostgresWatchlistStore(db, logger)

	app.ratingService = service.NewRatingService(db, app.animeStore, app.ratingStore, logger)

	app.recommender = recommend.NewService(app.animeStore, app.ratingStore, nil, logger)

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns an error if the server fails to start or encounters problems.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	err := app.startHTTPServer(ctx, router)
	if err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Error closing database connection", "error", err)
		}
	}

	app.logger.Info("Application shutdown completed")
}
