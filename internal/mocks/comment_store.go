package mocks

import (
	"context"

	"github.com/DevCoder-git/anime-verse-suggestor/internal/domain"
	"github.com/DevCoder-git/anime-verse-suggestor/internal/store"
)

// MockCommentStore implements store.CommentStore for testing
type MockCommentStore struct {
	// Function fields for customizable behavior
	CreateFn      func(ctx context.Context, comment *domain.Comment) error
	ListByAnimeFn func(ctx context.Context, animeID int64) ([]domain.Comment, error)
	ReportFn      func(ctx context.Context, commentID int64) error

	// Data for default implementation
	Comments []domain.Comment
	nextID   int64
}

var _ store.CommentStore = (*MockCommentStore)(nil)

// Create implements the CommentStore interface
func (m *MockCommentStore) Create(ctx context.Context, comment *domain.Comment) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, comment)
	}

	m.nextID++
	comment.ID = m.nextID
	m.Comments = append(m.Comments, *comment)
	return nil
}

// ListByAnime implements the CommentStore interface
func (m *MockCommentStore) ListByAnime(ctx context.Context, animeID int64) ([]domain.Comment, error) {
	if m.ListByAnimeFn != nil {
		return m.ListByAnimeFn(ctx, animeID)
	}

	var out []domain.Comment
	for _, c := range m.Comments {
		if c.AnimeID == animeID {
			out = append(out, c)
		}
	}
	return out, nil
}

// Report implements the CommentStore interface
func (m *MockCommentStore) Report(ctx context.Context, commentID int64) error {
	if m.ReportFn != nil {
		return m.ReportFn(ctx, commentID)
	}

	for i := range m.Comments {
		if m.Comments[i].ID == commentID {
			m.Comments[i].Reported = true
			return nil
		}
	}
	return store.ErrCommentNotFound
}
