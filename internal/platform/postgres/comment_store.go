package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/DevCoder-git/anime-verse-suggestor/internal/domain"
	"github.com/DevCoder-git/anime-verse-suggestor/internal/platform/logger"
	"github.com/DevCoder-git/anime-verse-suggestor/internal/store"
)

// PostgresCommentStore implements the store.CommentStore interface
// using a PostgreSQL database as the storage backend.
type PostgresCommentStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresCommentStore creates a new PostgreSQL implementation of the
// CommentStore interface.
func NewPostgresCommentStore(db store.DBTX, logger *slog.Logger) *PostgresCommentStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresCommentStore{
		db:     db,
		logger: logger.With(slog.String("component", "comment_store")),
	}
}

// Ensure PostgresCommentStore implements store.CommentStore interface
var _ store.CommentStore = (*PostgresCommentStore)(nil)

// Create implements store.CommentStore.Create
// Returns store.ErrInvalidEntity if the anime or user does not exist.
func (s *PostgresCommentStore) Create(ctx context.Context, comment *domain.Comment) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := comment.Validate(); err != nil {
		log.Warn("comment validation failed during create",
			slog.String("error", err.Error()))
		return err
	}

	query := `
		INSERT INTO comments (anime_id, user_id, content, reported, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := s.db.QueryRowContext(
		ctx,
		query,
		comment.AnimeID,
		comment.UserID,
		comment.Content,
		comment.Reported,
		comment.CreatedAt,
	).Scan(&comment.ID)

	if err != nil {
		if isForeignKeyViolation(err) {
			log.Warn("foreign key violation during comment creation",
				slog.Int64("anime_id", comment.AnimeID),
				slog.String("user_id", comment.UserID.String()))
			return fmt.Errorf("%w: anime or user does not exist", store.ErrInvalidEntity)
		}
		log.Error("failed to create comment",
			slog.String("error", err.Error()),
			slog.Int64("anime_id", comment.AnimeID))
		return err
	}

	log.Info("comment created",
		slog.Int64("comment_id", comment.ID),
		slog.Int64("anime_id", comment.AnimeID),
		slog.String("user_id", comment.UserID.String()))
	return nil
}

// ListByAnime implements store.CommentStore.ListByAnime
// Comments come back newest first with the author's username joined in.
func (s *PostgresCommentStore) ListByAnime(ctx context.Context, animeID int64) ([]domain.Comment, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT c.id, c.anime_id, c.user_id, u.username, c.content, c.reported, c.created_at
		FROM comments c
		JOIN users u ON u.id = c.user_id
		WHERE c.anime_id = $1
		ORDER BY c.created_at DESC, c.id DESC
	`

	rows, err := s.db.QueryContext(ctx, query, animeID)
	if err != nil {
		log.Error("failed to list comments",
			slog.String("error", err.Error()),
			slog.Int64("anime_id", animeID))
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var comments []domain.Comment
	for rows.Next() {
		var comment domain.Comment
		err := rows.Scan(
			&comment.ID,
			&comment.AnimeID,
			&comment.UserID,
			&comment.Username,
			&comment.Content,
			&comment.Reported,
			&comment.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		comments = append(comments, comment)
	}

	return comments, rows.Err()
}

// Report implements store.CommentStore.Report
// Returns store.ErrCommentNotFound if the comment does not exist.
func (s *PostgresCommentStore) Report(ctx context.Context, commentID int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		UPDATE comments
		SET reported = TRUE
		WHERE id = $1
	`

	result, err := s.db.ExecContext(ctx, query, commentID)
	if err != nil {
		log.Error("failed to report comment",
			slog.String("error", err.Error()),
			slog.Int64("comment_id", commentID))
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return store.ErrCommentNotFound
	}

	log.Info("comment reported", slog.Int64("comment_id", commentID))
	return nil
}
