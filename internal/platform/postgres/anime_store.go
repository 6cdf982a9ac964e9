package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/DevCoder-git/anime-verse-suggestor/internal/domain"
	"github.com/DevCoder-git/anime-verse-suggestor/internal/platform/logger"
	"github.com/DevCoder-git/anime-verse-suggestor/internal/store"
)

// animeColumns is the canonical column list for scanning anime rows.
const animeColumns = "a.id, a.title, a.image, a.description, a.year, a.type, a.episodes, a.rating, a.studio, a.created_at, a.updated_at"

// PostgresAnimeStore implements the store.AnimeStore interface
// using a PostgreSQL database as the storage backend.
type PostgresAnimeStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresAnimeStore creates a new PostgreSQL implementation of the
// AnimeStore interface. It accepts a database connection or transaction that
// should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresAnimeStore(db store.DBTX, logger *slog.Logger) *PostgresAnimeStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresAnimeStore{
		db:     db,
		logger: logger.With(slog.String("component", "anime_store")),
	}
}

// Ensure PostgresAnimeStore implements store.AnimeStore interface
var _ store.AnimeStore = (*PostgresAnimeStore)(nil)

// GetByID implements store.AnimeStore.GetByID
// Returns store.ErrAnimeNotFound if the anime does not exist.
func (s *PostgresAnimeStore) GetByID(ctx context.Context, id int64) (*domain.Anime, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT ` + animeColumns + `
		FROM anime a
		WHERE a.id = $1
	`

	anime, err := scanAnime(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("anime not found", slog.Int64("anime_id", id))
			return nil, store.ErrAnimeNotFound
		}
		log.Error("failed to get anime by ID",
			slog.String("error", err.Error()),
			slog.Int64("anime_id", id))
		return nil, err
	}

	if err := s.attachGenres(ctx, []*domain.Anime{anime}); err != nil {
		return nil, err
	}

	return anime, nil
}

// List implements store.AnimeStore.List
func (s *PostgresAnimeStore) List(ctx context.Context) ([]*domain.Anime, error) {
	query := `
		SELECT ` + animeColumns + `
		FROM anime a
		ORDER BY a.id
	`
	return s.queryAnime(ctx, query)
}

// Search implements store.AnimeStore.Search
// It performs a case-insensitive substring match across title, description,
// studio and genre name with OR semantics, de-duplicated by anime ID.
func (s *PostgresAnimeStore) Search(ctx context.Context, query string) ([]*domain.Anime, error) {
	sqlQuery := `
		SELECT DISTINCT ` + animeColumns + `
		FROM anime a
		LEFT JOIN anime_genres ag ON ag.anime_id = a.id
		LEFT JOIN genres g ON g.id = ag.genre_id
		WHERE a.title ILIKE '%' || $1 || '%'
		   OR a.description ILIKE '%' || $1 || '%'
		   OR a.studio ILIKE '%' || $1 || '%'
		   OR g.name ILIKE '%' || $1 || '%'
		ORDER BY a.id
	`
	return s.queryAnime(ctx, sqlQuery, query)
}

// Trending implements store.AnimeStore.Trending
// Anime are ranked by rating activity first, comment activity second, and
// the running average rating as the final tie-break.
func (s *PostgresAnimeStore) Trending(ctx context.Context, limit int) ([]*domain.Anime, error) {
	query := `
		SELECT ` + animeColumns + `
		FROM anime a
		LEFT JOIN ratings r ON r.anime_id = a.id
		LEFT JOIN comments c ON c.anime_id = a.id
		GROUP BY a.id
		ORDER BY COUNT(DISTINCT r.id) DESC, COUNT(DISTINCT c.id) DESC, a.rating DESC, a.id
		LIMIT $1
	`
	return s.queryAnime(ctx, query, limit)
}

// queryAnime runs a query returning anime rows, scans them, and attaches
// genres in a single follow-up query.
func (s *PostgresAnimeStore) queryAnime(ctx context.Context, query string, args ...any) ([]*domain.Anime, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to query anime", slog.String("error", err.Error()))
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var animes []*domain.Anime
	for rows.Next() {
		anime, err := scanAnime(rows)
		if err != nil {
			log.Error("failed to scan anime row", slog.String("error", err.Error()))
			return nil, err
		}
		animes = append(animes, anime)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := s.attachGenres(ctx, animes); err != nil {
		return nil, err
	}

	return animes, nil
}

// attachGenres populates the Genres slice of each anime with one query.
func (s *PostgresAnimeStore) attachGenres(ctx context.Context, animes []*domain.Anime) error {
	if len(animes) == 0 {
		return nil
	}

	byID := make(map[int64]*domain.Anime, len(animes))
	ids := make([]int64, 0, len(animes))
	for _, a := range animes {
		byID[a.ID] = a
		ids = append(ids, a.ID)
	}

	query := `
		SELECT ag.anime_id, g.id, g.name
		FROM anime_genres ag
		JOIN genres g ON g.id = ag.genre_id
		WHERE ag.anime_id = ANY($1)
		ORDER BY g.name
	`

	rows, err := s.db.QueryContext(ctx, query, ids)
	if err != nil {
		return err
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var animeID int64
		var genre domain.Genre
		if err := rows.Scan(&animeID, &genre.ID, &genre.Name); err != nil {
			return err
		}
		if anime, ok := byID[animeID]; ok {
			anime.Genres = append(anime.Genres, genre)
		}
	}

	return rows.Err()
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanAnime scans one anime row in animeColumns order.
func scanAnime(row rowScanner) (*domain.Anime, error) {
	var anime domain.Anime
	var animeType string

	err := row.Scan(
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
	return &anime, nil
}
