package api

import (
	"context"

	"github.com/google/uuid"

	"github.com/DevCoder-git/anime-verse-suggestor/internal/service"
)

// MockRatingService implements service.RatingService for testing
type MockRatingService struct {
	// RateAnimeFn allows test cases to mock the RateAnime behavior
	RateAnimeFn func(ctx context.Context, animeID int64, userID uuid.UUID, score int) (*service.RatingResult, error)

	// UserRatingFn allows test cases to mock the UserRating behavior
	UserRatingFn func(ctx context.Context, animeID int64, userID uuid.UUID) (*int, error)

	// Default values used when functions aren't explicitly defined
	Result *service.RatingResult
	Score  *int
	Err    error
}

var _ service.RatingService = (*MockRatingService)(nil)

// RateAnime implements the service.RatingService interface
func (m *MockRatingService) RateAnime(
	ctx context.Context,
	animeID int64,
	userID uuid.UUID,
	score int,
) (*service.RatingResult, error) {
	if m.RateAnimeFn != nil {
		return m.RateAnimeFn(ctx, animeID, userID, score)
	}
	return m.Result, m.Err
}

// UserRating implements the service.RatingService interface
func (m *MockRatingService) UserRating(
	ctx context.Context,
	animeID int64,
	userID uuid.UUID,
) (*int, error) {
	if m.UserRatingFn != nil {
		return m.UserRatingFn(ctx, animeID, userID)
	}
	return m.Score, m.Err
}
