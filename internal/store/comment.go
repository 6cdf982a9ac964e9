package store

import (
	"context"

	"github.com/DevCoder-git/anime-verse-suggestor/internal/domain"
)

// CommentStore defines the interface for comment persistence.
type CommentStore interface {
	// Create saves a new comment and fills in its generated ID.
	// Returns ErrInvalidEntity if the anime or user does not exist.
	Create(ctx context.Context, comment *domain.Comment) error

	// ListByAnime retrieves all comments for an anime, newest first,
	// with usernames populated.
	ListByAnime(ctx context.Context, animeID int64) ([]domain.Comment, error)

	// Report flags a comment for moderation.
	// Returns ErrCommentNotFound if the comment does not exist.
	Report(ctx context.Context, commentID int64) error
}
