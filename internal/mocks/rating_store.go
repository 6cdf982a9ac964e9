package mocks

import (
	"context"
	"database/sql"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/DevCoder-git/anime-verse-suggestor/internal/domain"
	"github.com/DevCoder-git/anime-verse-suggestor/internal/store"
)

// MockRatingStore implements store.RatingStore for testing
type MockRatingStore struct {
	// Function fields for customizable behavior
	UpsertFn               func(ctx context.Context, animeID int64, userID uuid.UUID, score int) (*domain.Rating, error)
	GetByAnimeAndUserFn    func(ctx context.Context, animeID int64, userID uuid.UUID) (*domain.Rating, error)
	ListByAnimeFn          func(ctx context.Context, animeID int64) ([]domain.Rating, error)
	ListByUserFn           func(ctx context.Context, userID uuid.UUID) ([]domain.Rating, error)
	RecomputeAnimeRatingFn func(ctx context.Context, animeID int64) (float64, error)

	// Data for default implementation
	Ratings []domain.Rating
	nextID  int64

	// WithTxCallCount tracks how many times WithTx was called
	WithTxCallCount int
}

var _ store.RatingStore = (*MockRatingStore)(nil)

// NewMockRatingStore creates a new mock store seeded with the given ratings.
func NewMockRatingStore(ratings ...domain.Rating) *MockRatingStore {
	return &MockRatingStore{Ratings: ratings}
}

// Upsert implements the RatingStore interface
func (m *MockRatingStore) Upsert(
	ctx context.Context,
	animeID int64,
	userID uuid.UUID,
	score int,
) (*domain.Rating, error) {
	if m.UpsertFn != nil {
		return m.UpsertFn(ctx, animeID, userID, score)
	}

	for i := range m.Ratings {
		if m.Ratings[i].AnimeID == animeID && m.Ratings[i].UserID == userID {
			m.Ratings[i].Score = score
			m.Ratings[i].UpdatedAt = time.Now().UTC()
			r := m.Ratings[i]
			return &r, nil
		}
	}

	m.nextID++
	rating := domain.Rating{
		ID:        m.nextID,
		AnimeID:   animeID,
		UserID:    userID,
		Score:     score,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
	m.Ratings = append(m.Ratings, rating)
	return &rating, nil
}

// GetByAnimeAndUser implements the RatingStore interface
func (m *MockRatingStore) GetByAnimeAndUser(
	ctx context.Context,
	animeID int64,
	userID uuid.UUID,
) (*domain.Rating, error) {
	if m.GetByAnimeAndUserFn != nil {
		return m.GetByAnimeAndUserFn(ctx, animeID, userID)
	}

	for i := range m.Ratings {
		if m.Ratings[i].AnimeID == animeID && m.Ratings[i].UserID == userID {
			r := m.Ratings[i]
			return &r, nil
		}
	}
	return nil, store.ErrRatingNotFound
}

// ListByAnime implements the RatingStore interface
func (m *MockRatingStore) ListByAnime(ctx context.Context, animeID int64) ([]domain.Rating, error) {
	if m.ListByAnimeFn != nil {
		return m.ListByAnimeFn(ctx, animeID)
	}

	var out []domain.Rating
	for _, r := range m.Ratings {
		if r.AnimeID == animeID {
			out = append(out, r)
		}
	}
	return out, nil
}

// ListByUser implements the RatingStore interface
func (m *MockRatingStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Rating, error) {
	if m.ListByUserFn != nil {
		return m.ListByUserFn(ctx, userID)
	}

	var out []domain.Rating
	for _, r := range m.Ratings {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

// RecomputeAnimeRating implements the RatingStore interface
func (m *MockRatingStore) RecomputeAnimeRating(ctx context.Context, animeID int64) (float64, error) {
	if m.RecomputeAnimeRatingFn != nil {
		return m.RecomputeAnimeRatingFn(ctx, animeID)
	}

	var sum, count int
	for _, r := range m.Ratings {
		if r.AnimeID == animeID {
			sum += r.Score
			count++
		}
	}
	if count == 0 {
		return 0, nil
	}
	return math.Round(float64(sum)/float64(count)*10) / 10, nil
}

// WithTx implements the RatingStore interface. The mock has no real
// transaction, so it returns itself and records the call.
func (m *MockRatingStore) WithTx(tx *sql.Tx) store.RatingStore {
	m.WithTxCallCount++
	return m
}
