package mocks

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/DevCoder-git/anime-verse-suggestor/internal/domain"
	"github.com/DevCoder-git/anime-verse-suggestor/internal/store"
)

// MockWatchlistStore implements store.WatchlistStore for testing
type MockWatchlistStore struct {
	// Function fields for customizable behavior
	ListByUserFn func(ctx context.Context, userID uuid.UUID) ([]domain.WatchlistItem, error)
	AddFn        func(ctx context.Context, userID uuid.UUID, animeID int64) (bool, error)
	RemoveFn     func(ctx context.Context, userID uuid.UUID, animeID int64) error
	ContainsFn   func(ctx context.Context, userID uuid.UUID, animeID int64) (bool, error)

	// Data for default implementation, keyed per user. The mock stores bare
	// anime references; callers that need populated entries set ListByUserFn.
	Items  map[uuid.UUID][]domain.WatchlistItem
	nextID int64
}

var _ store.WatchlistStore = (*MockWatchlistStore)(nil)

// NewMockWatchlistStore creates a new mock store with initialized defaults
func NewMockWatchlistStore() *MockWatchlistStore {
	return &MockWatchlistStore{
		Items: make(map[uuid.UUID][]domain.WatchlistItem),
	}
}

// ListByUser implements the WatchlistStore interface
func (m *MockWatchlistStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.WatchlistItem, error) {
	if m.ListByUserFn != nil {
		return m.ListByUserFn(ctx, userID)
	}
	return m.Items[userID], nil
}

// Add implements the WatchlistStore interface
func (m *MockWatchlistStore) Add(ctx context.Context, userID uuid.UUID, animeID int64) (bool, error) {
	if m.AddFn != nil {
		return m.AddFn(ctx, userID, animeID)
	}

	for _, item := range m.Items[userID] {
		if item.Anime != nil && item.Anime.ID == animeID {
			return false, nil
		}
	}

	m.nextID++
	m.Items[userID] = append(m.Items[userID], domain.WatchlistItem{
		ID:        m.nextID,
		UserID:    userID,
		Anime:     &domain.Anime{ID: animeID},
		CreatedAt: time.Now().UTC(),
	})
	return true, nil
}

// Remove implements the WatchlistStore interface
func (m *MockWatchlistStore) Remove(ctx context.Context, userID uuid.UUID, animeID int64) error {
	if m.RemoveFn != nil {
		return m.RemoveFn(ctx, userID, animeID)
	}

	items := m.Items[userID]
	for i, item := range items {
		if item.Anime != nil && item.Anime.ID == animeID {
			m.Items[userID] = append(items[:i], items[i+1:]...)
			return nil
		}
	}
	return nil
}

// Contains implements the WatchlistStore interface
func (m *MockWatchlistStore) Contains(ctx context.Context, userID uuid.UUID, animeID int64) (bool, error) {
	if m.ContainsFn != nil {
		return m.ContainsFn(ctx, userID, animeID)
	}

	for _, item := range m.Items[userID] {
		if item.Anime != nil && item.Anime.ID == animeID {
			return true, nil
		}
	}
	return false, nil
}
