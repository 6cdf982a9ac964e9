package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Score bounds for a rating. Scores are whole numbers from 1 to 10.
const (
	MinScore = 1
	MaxScore = 10
)

// ErrScoreOutOfRange is returned when a rating score falls outside [1,10].
var ErrScoreOutOfRange = errors.New("score must be an integer between 1 and 10")

// Rating is a single user's score for an anime. At most one rating exists
// per (anime, user) pair; posting a second score replaces the first.
type Rating struct {
	ID        int64     `json:"id"`
	AnimeID   int64     `json:"anime_id"`
	UserID    uuid.UUID `json:"user_id"`
	Score     int       `json:"score"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ValidateScore checks that a score is within the allowed [1,10] range.
func ValidateScore(score int) error {
	if score < MinScore || score > MaxScore {
		return ErrScoreOutOfRange
	}
	return nil
}

// Validate checks if the Rating has valid data.
func (r *Rating) Validate() error {
	if r.AnimeID <= 0 {
		return ErrInvalidID
	}

	if r.UserID == uuid.Nil {
		return ErrInvalidID
	}

	return ValidateScore(r.Score)
}
