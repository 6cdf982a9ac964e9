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

// PostgresUserStore implements the store.UserStore interface
// using a PostgreSQL database as the storage backend.
type PostgresUserStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresUserStore creates a new PostgreSQL implementation of the
// UserStore interface. It accepts a database connection that should be
// initialized and managed by the caller.
func NewPostgresUserStore(db store.DBTX, logger *slog.Logger) *PostgresUserStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresUserStore{
		db:     db,
		logger: logger.With(slog.String("component", "user_store")),
	}
}

// Ensure PostgresUserStore implements store.UserStore interface
var _ store.UserStore = (*PostgresUserStore)(nil)

// Create implements store.UserStore.Create
// Returns store.ErrEmailExists or store.ErrUsernameExists on unique violations.
func (s *PostgresUserStore) Create(ctx context.Context, user *domain.User) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if user.HashedPassword == "" {
		return domain.ErrEmptyHashedPassword
	}

	query := `
		INSERT INTO users (id, username, email, hashed_password, bio, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := s.db.ExecContext(
		ctx,
		query,
		user.ID,
		user.Username,
		user.Email,
		user.HashedPassword,
		user.Bio,
		user.CreatedAt,
		user.UpdatedAt,
	)

	if err != nil {
		if uniqueErr := mapUserUniqueViolation(err); uniqueErr != nil {
			log.Warn("unique violation during user creation",
				slog.String("error", uniqueErr.Error()),
				slog.String("username", user.Username))
			return uniqueErr
		}
		log.Error("failed to create user",
			slog.String("error", err.Error()),
			slog.String("user_id", user.ID.String()))
		return err
	}

	log.Info("user created",
		slog.String("user_id", user.ID.String()),
		slog.String("username", user.Username))
	return nil
}

// GetByID implements store.UserStore.GetByID
// Returns store.ErrUserNotFound if the user does not exist.
func (s *PostgresUserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	query := `
		SELECT id, username, email, hashed_password, bio, created_at, updated_at
		FROM users
		WHERE id = $1
	`

	user, err := s.scanUser(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, err
	}

	if err := s.loadFavoriteGenres(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// GetByEmail implements store.UserStore.GetByEmail
// Returns store.ErrUserNotFound if the user does not exist.
func (s *PostgresUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `
		SELECT id, username, email, hashed_password, bio, created_at, updated_at
		FROM users
		WHERE email = $1
	`

	return s.scanUser(s.db.QueryRowContext(ctx, query, email))
}

// Update implements store.UserStore.Update
// Returns store.ErrUserNotFound if the user does not exist.
func (s *PostgresUserStore) Update(ctx context.Context, user *domain.User) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		UPDATE users
		SET username = $1, email = $2, bio = $3, updated_at = $4
		WHERE id = $5
	`

	result, err := s.db.ExecContext(
		ctx,
		query,
		user.Username,
		user.Email,
		user.Bio,
		time.Now().UTC(),
		user.ID,
	)

	if err != nil {
		if uniqueErr := mapUserUniqueViolation(err); uniqueErr != nil {
			return uniqueErr
		}
		log.Error("failed to update user",
			slog.String("error", err.Error()),
			slog.String("user_id", user.ID.String()))
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return store.ErrUserNotFound
	}

	return nil
}

// SetFavoriteGenres implements store.UserStore.SetFavoriteGenres
// The previous set is replaced wholesale inside the caller's statement
// ordering; unknown genre keys surface as store.ErrGenreNotFound.
func (s *PostgresUserStore) SetFavoriteGenres(ctx context.Context, userID uuid.UUID, genreIDs []string) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	deleteQuery := `DELETE FROM user_favorite_genres WHERE user_id = $1`
	if _, err := s.db.ExecContext(ctx, deleteQuery, userID); err != nil {
		log.Error("failed to clear favorite genres",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return err
	}

	insertQuery := `INSERT INTO user_favorite_genres (user_id, genre_id) VALUES ($1, $2)`
	for _, genreID := range genreIDs {
		if _, err := s.db.ExecContext(ctx, insertQuery, userID, genreID); err != nil {
			if isForeignKeyViolation(err) {
				return fmt.Errorf("%w: %s", store.ErrGenreNotFound, genreID)
			}
			log.Error("failed to add favorite genre",
				slog.String("error", err.Error()),
				slog.String("user_id", userID.String()),
				slog.String("genre_id", genreID))
			return err
		}
	}

	return nil
}

// loadFavoriteGenres populates the user's FavoriteGenres slice.
func (s *PostgresUserStore) loadFavoriteGenres(ctx context.Context, user *domain.User) error {
	query := `
		SELECT g.id, g.name
		FROM user_favorite_genres ufg
		JOIN genres g ON g.id = ufg.genre_id
		WHERE ufg.user_id = $1
		ORDER BY g.name
	`

	rows, err := s.db.QueryContext(ctx, query, user.ID)
	if err != nil {
		return err
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var genre domain.Genre
		if err := rows.Scan(&genre.ID, &genre.Name); err != nil {
			return err
		}
		user.FavoriteGenres = append(user.FavoriteGenres, genre)
	}

	return rows.Err()
}

func (s *PostgresUserStore) scanUser(row rowScanner) (*domain.User, error) {
	var user domain.User
	err := row.Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.HashedPassword,
		&user.Bio,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// mapUserUniqueViolation translates unique violations on the users table
// into the matching store sentinel, or nil when err is something else.
func mapUserUniqueViolation(err error) error {
	switch {
	case isUniqueViolation(err, "users_email_key"):
		return store.ErrEmailExists
	case isUniqueViolation(err, "users_username_key"):
		return store.ErrUsernameExists
	case isUniqueViolation(err, ""):
		return store.ErrDuplicate
	default:
		return nil
	}
}
