package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/DevCoder-git/anime-verse-suggestor/internal/domain"
)

// WatchlistStore defines the interface for watchlist persistence.
type WatchlistStore interface {
	// ListByUser retrieves the user's watchlist entries, newest first,
	// with the referenced anime populated.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.WatchlistItem, error)

	// Add puts an anime on the user's watchlist. Adding an anime that is
	// already listed is a no-op; the returned bool reports whether a new
	// entry was created. Returns ErrInvalidEntity if the anime does not exist.
	Add(ctx context.Context, userID uuid.UUID, animeID int64) (bool, error)

	// Remove takes an anime off the user's watchlist. Removing an anime
	// that is not listed is a no-op.
	Remove(ctx context.Context, userID uuid.UUID, animeID int64) error

	// Contains reports whether the anime is on the user's watchlist.
	Contains(ctx context.Context, userID uuid.UUID, animeID int64) (bool, error)
}
