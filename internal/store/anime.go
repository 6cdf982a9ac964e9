package store

import (
	"context"

	"github.com/DevCoder-git/anime-verse-suggestor/internal/domain"
)

// AnimeStore defines the interface for catalog read operations.
// The catalog is maintained externally (seed data, admin tooling); the API
// surface only ever reads anime rows, apart from the rating recompute
// performed by RatingStore.
type AnimeStore interface {
	// GetByID retrieves an anime by its ID, with genres populated.
	// Returns ErrAnimeNotFound if the anime does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Anime, error)

	// List retrieves the full catalog, with genres populated, ordered by ID.
	List(ctx context.Context) ([]*domain.Anime, error)

	// Search performs a case-insensitive substring match across title,
	// description, studio and genre name (OR semantics), de-duplicated.
	// Callers are expected to handle the empty-query case themselves.
	Search(ctx context.Context, query string) ([]*domain.Anime, error)

	// Trending returns up to limit anime ordered by
	// (rating count desc, comment count desc, rating desc).
	Trending(ctx context.Context, limit int) ([]*domain.Anime, error)
}

// GenreStore defines the interface for genre read operations.
type GenreStore interface {
	// List retrieves all genres ordered by name.
	List(ctx context.Context) ([]domain.Genre, error)
}
