package domain

import (
	"time"

	"github.com/google/uuid"
)

// WatchlistItem represents a single anime on a user's watchlist.
// Each (user, anime) pair appears at most once.
type WatchlistItem struct {
	ID        int64     `json:"id"`
	UserID    uuid.UUID `json:"-"`
	Anime     *Anime    `json:"anime"`
	CreatedAt time.Time `json:"date_added"`
}
