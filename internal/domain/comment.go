package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrCommentContentEmpty is returned when a comment's content is empty.
var ErrCommentContentEmpty = errors.New("comment content cannot be empty")

// Comment is a user comment on an anime.
//
// Reported marks a comment as flagged for moderation. It is an explicit
// schema field rather than an optional runtime capability.
//
// Username is denormalized from the users table for read paths; it is not
// persisted on the comment row itself.
type Comment struct {
	ID        int64     `json:"id"`
	AnimeID   int64     `json:"anime_id"`
	UserID    uuid.UUID `json:"user_id"`
	Username  string    `json:"username,omitempty"`
	Content   string    `json:"content"`
	Reported  bool      `json:"reported"`
	CreatedAt time.Time `json:"created_at"`
}

// NewComment creates a new Comment for the given anime and user.
// Returns an error if validation fails.
func NewComment(animeID int64, userID uuid.UUID, content string) (*Comment, error) {
	comment := &Comment{
		AnimeID:   animeID,
		UserID:    userID,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}

	if err := comment.Validate(); err != nil {
		return nil, err
	}

	return comment, nil
}

// Validate checks if the Comment has valid data.
func (c *Comment) Validate() error {
	if c.AnimeID <= 0 {
		return ErrInvalidID
	}

	if c.UserID == uuid.Nil {
		return ErrInvalidID
	}

	if c.Content == "" {
		return ErrCommentContentEmpty
	}

	return nil
}
