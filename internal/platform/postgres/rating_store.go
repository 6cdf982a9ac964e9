package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/DevCoder-git/anime-verse-suggestor/internal/domain"
	"github.com/DevCoder-git/anime-verse-suggestor/internal/platform/logger"
	"github.com/DevCoder-git/anime-verse-suggestor/internal/store"
)

// PostgresRatingStore implements the store.RatingStore interface
// using a PostgreSQL database as the storage backend.
type PostgresRatingStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresRatingStore creates a new PostgreSQL implementation of the
// RatingStore interface. It accepts a database connection or transaction that
// should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresRatingStore(db store.DBTX, logger *slog.Logger) *PostgresRatingStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresRatingStore{
		db:     db,
		logger: logger.With(slog.String("component", "rating_store")),
	}
}

// Ensure PostgresRatingStore implements store.RatingStore interface
var _ store.RatingStore = (*PostgresRatingStore)(nil)

// WithTx implements store.RatingStore.WithTx
func (s *PostgresRatingStore) WithTx(tx *sql.Tx) store.RatingStore {
	return &PostgresRatingStore{
		db:     tx,
		logger: s.logger,
	}
}

// Upsert implements store.RatingStore.Upsert
// The unique (anime_id, user_id) constraint turns a second rating from the
// same user into an update of the existing row.
func (s *PostgresRatingStore) Upsert(ctx context.Context, animeID int64, userID uuid.UUID, score int) (*domain.Rating, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	now := time.Now().UTC()

	query := `
		INSERT INTO ratings (anime_id, user_id, score, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $4)
		ON CONFLICT (anime_id, user_id)
		DO UPDATE SET score = EXCLUDED.score, updated_at = EXCLUDED.updated_at
		RETURNING id, anime_id, user_id, score, created_at, updated_at
	`

	var rating domain.Rating
	err := s.db.QueryRowContext(ctx, query, animeID, userID, score, now).Scan(
		&rating.ID,
		&rating.AnimeID,
		&rating.UserID,
		&rating.Score,
		&rating.CreatedAt,
		&rating.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			log.Warn("foreign key violation during rating upsert",
				slog.Int64("anime_id", animeID),
				slog.String("user_id", userID.String()))
			return nil, fmt.Errorf("%w: anime or user does not exist", store.ErrInvalidEntity)
		}
		log.Error("failed to upsert rating",
			slog.String("error", err.Error()),
			slog.Int64("anime_id", animeID),
			slog.String("user_id", userID.String()))
		return nil, err
	}

	return &rating, nil
}

// GetByAnimeAndUser implements store.RatingStore.GetByAnimeAndUser
// Returns store.ErrRatingNotFound if the user has not rated the anime.
func (s *PostgresRatingStore) GetByAnimeAndUser(ctx context.Context, animeID int64, userID uuid.UUID) (*domain.Rating, error) {
	query := `
		SELECT id, anime_id, user_id, score, created_at, updated_at
		FROM ratings
		WHERE anime_id = $1 AND user_id = $2
	`

	var rating domain.Rating
	err := s.db.QueryRowContext(ctx, query, animeID, userID).Scan(
		&rating.ID,
		&rating.AnimeID,
		&rating.UserID,
		&rating.Score,
		&rating.CreatedAt,
		&rating.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrRatingNotFound
		}
		return nil, err
	}

	return &rating, nil
}

// ListByAnime implements store.RatingStore.ListByAnime
func (s *PostgresRatingStore) ListByAnime(ctx context.Context, animeID int64) ([]domain.Rating, error) {
	query := `
		SELECT id, anime_id, user_id, score, created_at, updated_at
		FROM ratings
		WHERE anime_id = $1
		ORDER BY id
	`
	return s.queryRatings(ctx, query, animeID)
}

// ListByUser implements store.RatingStore.ListByUser
func (s *PostgresRatingStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Rating, error) {
	query := `
		SELECT id, anime_id, user_id, score, created_at, updated_at
		FROM ratings
		WHERE user_id = $1
		ORDER BY id
	`
	return s.queryRatings(ctx, query, userID)
}

// RecomputeAnimeRating implements store.RatingStore.RecomputeAnimeRating
// The denormalized average lives on the anime row so list and search
// endpoints never need to aggregate ratings on the fly.
func (s *PostgresRatingStore) RecomputeAnimeRating(ctx context.Context, animeID int64) (float64, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		UPDATE anime
		SET rating = COALESCE((
			SELECT ROUND(AVG(score)::numeric, 1)
			FROM ratings
			WHERE anime_id = anime.id
		), 0), updated_at = $2
		WHERE id = $1
		RETURNING rating
	`

	var rating float64
	err := s.db.QueryRowContext(ctx, query, animeID, time.Now().UTC()).Scan(&rating)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, store.ErrAnimeNotFound
		}
		log.Error("failed to recompute anime rating",
			slog.String("error", err.Error()),
			slog.Int64("anime_id", animeID))
		return 0, err
	}

	return rating, nil
}

func (s *PostgresRatingStore) queryRatings(ctx context.Context, query string, args ...any) ([]domain.Rating, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to query ratings", slog.String("error", err.Error()))
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var ratings []domain.Rating
	for rows.Next() {
		var rating domain.Rating
		err := rows.Scan(
			&rating.ID,
			&rating.AnimeID,
			&rating.UserID,
			&rating.Score,
			&rating.CreatedAt,
			&rating.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		ratings = append(ratings, rating)
	}

	return ratings, rows.Err()
}
