package main

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/DevCoder-git/anime-verse-suggestor/internal/api"
	apiMiddleware "github.com/DevCoder-git/anime-verse-suggestor/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes
// and middleware. Returns the configured router.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware) // Add trace IDs for improved error handling

	// Create API handlers using the application's services
	tokenLifetime := time.Duration(app.config.Auth.TokenLifetimeMinutes) * time.Minute
	authHandler := api.NewAuthHandler(
		app.userStore,
		app.jwtService,
		app.passwordVerifier,
		app.passwordVerifier,
		tokenLifetime,
	)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService)

	animeHandler := api.NewAnimeHandler(app.animeStore, app.genreStore)
	ratingHandler := api.NewRatingHandler(app.ratingService, app.ratingStore)
	commentHandler := api.NewCommentHandler(app.commentStore, app.animeStore, app.userStore)
	recommendationHandler := api.NewRecommendationHandler(app.recommender)
	watchlistHandler := api.NewWatchlistHandler(app.watchlistStore, app.animeStore)
	profileHandler := api.NewProfileHandler(app.userStore)

	// Register routes
	r.Route("/api", func(r chi.Router) {
		// Authentication endpoints (public)
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)
		r.Post("/auth/refresh", authHandler.RefreshToken)

		// Catalog endpoints (public)
		r.Get("/anime", animeHandler.ListAnime)
		r.Get("/anime/search", animeHandler.SearchAnime)
		r.Get("/anime/trending", animeHandler.TrendingAnime)
		r.Get("/anime/{animeID}", animeHandler.GetAnime)
		r.Get("/anime/{animeID}/comments", commentHandler.ListComments)
		r.Get("/anime/{animeID}/ratings", ratingHandler.ListAnimeRatings)
		r.Get("/genres", animeHandler.ListGenres)

		// Recommendations use the caller identity when present but are
		// served anonymously too.
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.AuthenticateOptional)
			r.Get("/anime/recommendations", recommendationHandler.GetRecommendations)
		})

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			// Rating endpoints
			r.Post("/anime/{animeID}/rate", ratingHandler.RateAnime)
			r.Get("/anime/{animeID}/user-rating", ratingHandler.GetUserRating)

			// Comment endpoints
			r.Post("/anime/{animeID}/comments", commentHandler.AddComment)
			r.Post("/comments/{commentID}/report", commentHandler.ReportComment)

			// Watchlist endpoints
			r.Get("/watchlist", watchlistHandler.ListWatchlist)
			r.Post("/watchlist", watchlistHandler.AddToWatchlist)
			r.Delete("/watchlist/{animeID}", watchlistHandler.RemoveFromWatchlist)
			r.Get("/watchlist/check/{animeID}", watchlistHandler.CheckWatchlist)

			// Profile endpoints
			r.Get("/profile", profileHandler.GetProfile)
			r.Put("/profile", profileHandler.UpdateProfile)
		})
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, err := w.Write([]byte("OK"))
		if err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
