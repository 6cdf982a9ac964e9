package mocks

import (
	"context"

	"github.com/DevCoder-git/anime-verse-suggestor/internal/domain"
	"github.com/DevCoder-git/anime-verse-suggestor/internal/store"
)

// MockAnimeStore implements store.AnimeStore for testing
type MockAnimeStore struct {
	// Function fields for customizable behavior
	GetByIDFn  func(ctx context.Context, id int64) (*domain.Anime, error)
	ListFn     func(ctx context.Context) ([]*domain.Anime, error)
	SearchFn   func(ctx context.Context, query string) ([]*domain.Anime, error)
	TrendingFn func(ctx context.Context, limit int) ([]*domain.Anime, error)

	// Data for default implementation
	Anime     []*domain.Anime
	ListError error
}

var _ store.AnimeStore = (*MockAnimeStore)(nil)

// NewMockAnimeStore creates a new mock store seeded with the given catalog.
func NewMockAnimeStore(anime ...*domain.Anime) *MockAnimeStore {
	return &MockAnimeStore{Anime: anime}
}

// GetByID implements the AnimeStore interface
func (m *MockAnimeStore) GetByID(ctx context.Context, id int64) (*domain.Anime, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	for _, a := range m.Anime {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, store.ErrAnimeNotFound
}

// List implements the AnimeStore interface
func (m *MockAnimeStore) List(ctx context.Context) ([]*domain.Anime, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}

	if m.ListError != nil {
		return nil, m.ListError
	}
	return m.Anime, nil
}

// Search implements the AnimeStore interface
func (m *MockAnimeStore) Search(ctx context.Context, query string) ([]*domain.Anime, error) {
	if m.SearchFn != nil {
		return m.SearchFn(ctx, query)
	}
	return m.Anime, nil
}

// Trending implements the AnimeStore interface
func (m *MockAnimeStore) Trending(ctx context.Context, limit int) ([]*domain.Anime, error) {
	if m.TrendingFn != nil {
		return m.TrendingFn(ctx, limit)
	}

	if limit > len(m.Anime) {
		limit = len(m.Anime)
	}
	return m.Anime[:limit], nil
}

// MockGenreStore implements store.GenreStore for testing
type MockGenreStore struct {
	ListFn func(ctx context.Context) ([]domain.Genre, error)

	Genres []domain.Genre
}

var _ store.GenreStore = (*MockGenreStore)(nil)

// List implements the GenreStore interface
func (m *MockGenreStore) List(ctx context.Context) ([]domain.Genre, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return m.Genres, nil
}
