package postgres

import (
	"context"
	"log/slog"

	"github.com/DevCoder-git/anime-verse-suggestor/internal/domain"
	"github.com/DevCoder-git/anime-verse-suggestor/internal/platform/logger"
	"github.com/DevCoder-git/anime-verse-suggestor/internal/store"
)

// PostgresGenreStore implements the store.GenreStore interface
// using a PostgreSQL database as the storage backend.
type PostgresGenreStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresGenreStore creates a new PostgreSQL implementation of the
// GenreStore interface.
func NewPostgresGenreStore(db store.DBTX, logger *slog.Logger) *PostgresGenreStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresGenreStore{
		db:     db,
		logger: logger.With(slog.String("component", "genre_store")),
	}
}

// Ensure PostgresGenreStore implements store.GenreStore interface
var _ store.GenreStore = (*PostgresGenreStore)(nil)

// List implements store.GenreStore.List
func (s *PostgresGenreStore) List(ctx context.Context) ([]domain.Genre, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, name
		FROM genres
		ORDER BY name
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to list genres", slog.String("error", err.Error()))
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var genres []domain.Genre
	for rows.Next() {
		var genre domain.Genre
		if err := rows.Scan(&genre.ID, &genre.Name); err != nil {
			return nil, err
		}
		genres = append(genres, genre)
	}

	return genres, rows.Err()
}
