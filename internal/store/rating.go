package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/DevCoder-git/anime-verse-suggestor/internal/domain"
)

// RatingStore defines the interface for rating persistence.
type RatingStore interface {
	// Upsert creates or replaces the single rating row for the
	// (anime, user) pair. The score must already be validated by the caller.
	// Returns ErrInvalidEntity if the anime or user does not exist.
	Upsert(ctx context.Context, animeID int64, userID uuid.UUID, score int) (*domain.Rating, error)

	// GetByAnimeAndUser retrieves one user's rating for an anime.
	// Returns ErrRatingNotFound if the user has not rated the anime.
	GetByAnimeAndUser(ctx context.Context, animeID int64, userID uuid.UUID) (*domain.Rating, error)

	// ListByAnime retrieves all ratings for an anime.
	ListByAnime(ctx context.Context, animeID int64) ([]domain.Rating, error)

	// ListByUser retrieves all ratings posted by a user.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Rating, error)

	// RecomputeAnimeRating recalculates the anime's denormalized rating as
	// the mean of all its rating scores, rounded to one decimal (0 when no
	// ratings exist), persists it, and returns the new value.
	RecomputeAnimeRating(ctx context.Context, animeID int64) (float64, error)

	// WithTx returns a new RatingStore instance that uses the provided
	// transaction. The transaction is created and managed by the caller
	// (typically a service).
	WithTx(tx *sql.Tx) RatingStore
}
