package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/DevCoder-git/anime-verse-suggestor/internal/domain"
	"github.com/DevCoder-git/anime-verse-suggestor/internal/platform/logger"
	"github.com/DevCoder-git/anime-verse-suggestor/internal/store"
)

// PostgresWatchlistStore implements the store.WatchlistStore interface
// using a PostgreSQL database as the storage backend.
type PostgresWatchlistStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresWatchlistStore creates a new PostgreSQL implementation of the
// WatchlistStore interface.
func NewPostgresWatchlistStore(db store.DBTX, logger *slog.Logger) *PostgresWatchlistStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresWatchlistStore{
		db:     db,
		logger: logger.With(slog.String("component", "watchlist_store")),
	}
}

// Ensure PostgresWatchlistStore implements store.WatchlistStore interface
var _ store.WatchlistStore = (*PostgresWatchlistStore)(nil)

// ListByUser implements store.WatchlistStore.ListByUser
func (s *PostgresWatchlistStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.WatchlistItem, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT w.id, w.user_id, w.created_at, ` + animeColumns + `
		FROM watchlist w
		JOIN anime a ON a.id = w.anime_id
		WHERE w.user_id = $1
		ORDER BY w.created_at DESC, w.id DESC
	`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		log.Error("failed to list watchlist",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var items []domain.WatchlistItem
	var animes []*domain.Anime
	for rows.Next() {
		var item domain.WatchlistItem
		var anime domain.Anime
		var animeType string
		err := rows.Scan(
			&item.ID,
			&item.UserID,
			&item.CreatedAt,
			&anime.ID,
			&anime.Title,
			&anime.Image,
			&anime.Description,
			&anime.Year,
			&animeType,
			&anime.Episodes,
			&anime.Rating,
			&anime.Studio,
			&anime.CreatedAt,
			&anime.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		anime.Type = domain.AnimeType(animeType)
		item.Anime = &anime
		items = append(items, item)
		animes = append(animes, &anime)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// Reuse the anime store's genre loading for the joined rows.
	animeStore := &PostgresAnimeStore{db: s.db, logger: s.logger}
	if err := animeStore.attachGenres(ctx, animes); err != nil {
		return nil, err
	}

	return items, nil
}

// Add implements store.WatchlistStore.Add
// ON CONFLICT DO NOTHING keeps the operation idempotent; the returned bool
// reports whether a new row was inserted.
func (s *PostgresWatchlistStore) Add(ctx context.Context, userID uuid.UUID, animeID int64) (bool, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		INSERT INTO watchlist (user_id, anime_id, created_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, anime_id) DO NOTHING
	`

	result, err := s.db.ExecContext(ctx, query, userID, animeID, time.Now().UTC())
	if err != nil {
		if isForeignKeyViolation(err) {
			return false, fmt.Errorf("%w: anime or user does not exist", store.ErrInvalidEntity)
		}
		log.Error("failed to add to watchlist",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()),
			slog.Int64("anime_id", animeID))
		return false, err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return rowsAffected > 0, nil
}

// Remove implements store.WatchlistStore.Remove
func (s *PostgresWatchlistStore) Remove(ctx context.Context, userID uuid.UUID, animeID int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `DELETE FROM watchlist WHERE user_id = $1 AND anime_id = $2`

	if _, err := s.db.ExecContext(ctx, query, userID, animeID); err != nil {
		log.Error("failed to remove from watchlist",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()),
			slog.Int64("anime_id", animeID))
		return err
	}

	return nil
}

// Contains implements store.WatchlistStore.Contains
func (s *PostgresWatchlistStore) Contains(ctx context.Context, userID uuid.UUID, animeID int64) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM watchlist WHERE user_id = $1 AND anime_id = $2)`

	var exists bool
	if err := s.db.QueryRowContext(ctx, query, userID, animeID).Scan(&exists); err != nil {
		return false, err
	}

	return exists, nil
}
