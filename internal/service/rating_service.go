package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/DevCoder-git/anime-verse-suggestor/internal/domain"
	"github.com/DevCoder-git/anime-verse-suggestor/internal/platform/logger"
	"github.com/DevCoder-git/anime-verse-suggestor/internal/store"
)

// RatingResult carries the outcome of a rating upsert: the stored rating and
// the anime's recomputed average.
type RatingResult struct {
	Rating       *domain.Rating
	AnimeAverage float64
}

// RatingService provides rating operations that span multiple store calls.
type RatingService interface {
	// RateAnime creates or replaces the caller's rating for an anime and
	// recomputes the anime's denormalized average score atomically.
	// Returns domain.ErrScoreOutOfRange for an invalid score and
	// store.ErrAnimeNotFound when the anime does not exist.
	RateAnime(ctx context.Context, animeID int64, userID uuid.UUID, score int) (*RatingResult, error)

	// UserRating returns the caller's score for an anime, or nil when the
	// caller has not rated it.
	UserRating(ctx context.Context, animeID int64, userID uuid.UUID) (*int, error)
}

type ratingServiceImpl struct {
	db          *sql.DB
	animeStore  store.AnimeStore
	ratingStore store.RatingStore
	logger      *slog.Logger

	// runTx wraps store.RunInTransaction; tests swap it for a pass-through.
	runTx func(ctx context.Context, db *sql.DB, fn store.TxFn) error
}

var _ RatingService = (*ratingServiceImpl)(nil)

// NewRatingService creates a new RatingService.
// Panics if db, animeStore, or ratingStore is nil.
func NewRatingService(
	db *sql.DB,
	animeStore store.AnimeStore,
	ratingStore store.RatingStore,
	logger *slog.Logger,
) RatingService {
	if db == nil {
		panic("db cannot be nil")
	}
	if animeStore == nil {
		panic("animeStore cannot be nil")
	}
	if ratingStore == nil {
		panic("ratingStore cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &ratingServiceImpl{
		db:          db,
		animeStore:  animeStore,
		ratingStore: ratingStore,
		logger:      logger.With("component", "rating_service"),
		runTx:       store.RunInTransaction,
	}
}

func (s *ratingServiceImpl) RateAnime(
	ctx context.Context,
	animeID int64,
	userID uuid.UUID,
	score int,
) (*RatingResult, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := domain.ValidateScore(score); err != nil {
		return nil, err
	}

	// Resolve the anime up front so a missing id surfaces as NotFound
	// rather than a foreign key violation from the upsert.
	if _, err := s.animeStore.GetByID(ctx, animeID); err != nil {
		return nil, err
	}

	var result RatingResult
	err := s.runTx(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		txStore := s.ratingStore.WithTx(tx)

		rating, err := txStore.Upsert(ctx, animeID, userID, score)
		if err != nil {
			return fmt.Errorf("failed to upsert rating: %w", err)
		}

		average, err := txStore.RecomputeAnimeRating(ctx, animeID)
		if err != nil {
			return fmt.Errorf("failed to recompute anime rating: %w", err)
		}

		result.Rating = rating
		result.AnimeAverage = average
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info("anime rated",
		"anime_id", animeID,
		"user_id", userID,
		"score", score,
		"new_average", result.AnimeAverage)

	return &result, nil
}

func (s *ratingServiceImpl) UserRating(
	ctx context.Context,
	animeID int64,
	userID uuid.UUID,
) (*int, error) {
	rating, err := s.ratingStore.GetByAnimeAndUser(ctx, animeID, userID)
	if err != nil {
		if errors.Is(err, store.ErrRatingNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user rating: %w", err)
	}
	score := rating.Score
	return &score, nil
}
