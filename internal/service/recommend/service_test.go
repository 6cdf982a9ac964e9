package recommend

import (
	"context"
	"log/slog"
	"math/rand"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DevCoder-git/anime-verse-suggestor/internal/domain"
	"github.com/DevCoder-git/anime-verse-suggestor/internal/mocks"
)

func testAnime(id int64, rating float64, animeType domain.AnimeType, genreIDs ...string) *domain.Anime {
	genres := make([]domain.Genre, 0, len(genreIDs))
	for _, g := range genreIDs {
		genres = append(genres, domain.Genre{ID: g, Name: g})
	}
	return &domain.Anime{
		ID:       id,
		Title:    "anime",
		Type:     animeType,
		Episodes: 12,
		Rating:   rating,
		Genres:   genres,
	}
}

func newTestService(catalog []*domain.Anime, ratings []domain.Rating, seed int64) *Service {
	return NewService(
		mocks.NewMockAnimeStore(catalog...),
		mocks.NewMockRatingStore(ratings...),
		rand.New(rand.NewSource(seed)),
		slog.Default(),
	)
}

func animeIDs(anime []*domain.Anime) []int64 {
	ids := make([]int64, 0, len(anime))
	for _, a := range anime {
		ids = append(ids, a.ID)
	}
	return ids
}

func assertDistinctIDs(t *testing.T, anime []*domain.Anime) {
	t.Helper()
	seen := make(map[int64]bool)
	for _, a := range anime {
		assert.False(t, seen[a.ID], "duplicate anime id %d in results", a.ID)
		seen[a.ID] = true
	}
}

func TestRecommendLengthAndDistinctness(t *testing.T) {
	t.Parallel()

	catalog := make([]*domain.Anime, 0, 30)
	for i := int64(1); i <= 30; i++ {
		catalog = append(catalog, testAnime(i, float64(i%10), domain.AnimeTypeTV, "action"))
	}
	svc := newTestService(catalog, nil, 1)

	results, err := svc.Recommend(context.Background(), Request{})
	require.NoError(t, err)

	assert.Len(t, results, 15)
	assertDistinctIDs(t, results)
}

func TestRecommendEmptyCatalog(t *testing.T) {
	t.Parallel()

	svc := newTestService(nil, nil, 1)

	results, err := svc.Recommend(context.Background(), Request{})
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestRecommendRankingByRating(t *testing.T) {
	t.Parallel()

	catalog := []*domain.Anime{
		testAnime(1, 6.5, domain.AnimeTypeTV, "action"),
		testAnime(2, 9.1, domain.AnimeTypeTV, "action"),
		testAnime(3, 7.8, domain.AnimeTypeTV, "action"),
		testAnime(4, 9.1, domain.AnimeTypeTV, "action"),
		testAnime(5, 8.0, domain.AnimeTypeTV, "action"),
	}
	svc := newTestService(catalog, nil, 1)

	results, err := svc.Recommend(context.Background(), Request{})
	require.NoError(t, err)

	// Rating descending, equal ratings broken by id ascending.
	assert.Equal(t, []int64{2, 4, 5, 3, 1}, animeIDs(results))
}

func TestRecommendSeedFilter(t *testing.T) {
	t.Parallel()

	seedID := int64(1)
	catalog := []*domain.Anime{
		testAnime(1, 8.0, domain.AnimeTypeTV, "action", "drama"),
		testAnime(2, 7.0, domain.AnimeTypeTV, "action"),
		testAnime(3, 9.0, domain.AnimeTypeTV, "drama"),
		testAnime(4, 9.5, domain.AnimeTypeTV, "comedy"),
		testAnime(5, 6.0, domain.AnimeTypeMovie, "action", "comedy"),
		testAnime(6, 5.0, domain.AnimeTypeTV, "romance"),
		testAnime(7, 8.5, domain.AnimeTypeOVA, "drama", "romance"),
	}
	svc := newTestService(catalog, nil, 1)

	results, err := svc.Recommend(context.Background(), Request{SeedAnimeID: &seedID})
	require.NoError(t, err)

	seed := catalog[0]
	for _, a := range results[:4] {
		// The four genre-sharing candidates rank ahead of any backfill.
		assert.NotEqual(t, seed.ID, a.ID, "seed must not be recommended")
		assert.True(t, a.SharesGenreWith(seed), "anime %d shares no genre with seed", a.ID)
	}
	assertDistinctIDs(t, results)
}

func TestRecommendUnresolvableSeedIsNoOp(t *testing.T) {
	t.Parallel()

	catalog := []*domain.Anime{
		testAnime(1, 8.0, domain.AnimeTypeTV, "action"),
		testAnime(2, 7.0, domain.AnimeTypeTV, "drama"),
		testAnime(3, 9.0, domain.AnimeTypeTV, "comedy"),
		testAnime(4, 6.0, domain.AnimeTypeTV, "romance"),
		testAnime(5, 5.0, domain.AnimeTypeTV, "action"),
	}
	missingSeed := int64(999)

	withSeed, err := newTestService(catalog, nil, 1).
		Recommend(context.Background(), Request{SeedAnimeID: &missingSeed})
	require.NoError(t, err)

	withoutSeed, err := newTestService(catalog, nil, 1).
		Recommend(context.Background(), Request{})
	require.NoError(t, err)

	assert.Equal(t, animeIDs(withoutSeed), animeIDs(withSeed))
}

func TestRecommendGenreFilter(t *testing.T) {
	t.Parallel()

	catalog := []*domain.Anime{
		testAnime(1, 8.0, domain.AnimeTypeTV, "action"),
		testAnime(2, 7.0, domain.AnimeTypeTV, "drama"),
		testAnime(3, 9.0, domain.AnimeTypeTV, "comedy", "drama"),
		testAnime(4, 6.0, domain.AnimeTypeTV, "romance"),
		testAnime(5, 9.5, domain.AnimeTypeTV, "action", "drama"),
		testAnime(6, 8.5, domain.AnimeTypeTV, "drama"),
		testAnime(7, 7.5, domain.AnimeTypeTV, "drama", "romance"),
	}
	svc := newTestService(catalog, nil, 1)

	results, err := svc.Recommend(context.Background(), Request{GenreIDs: []string{"drama", "comedy"}})
	require.NoError(t, err)

	// Six candidates match, so backfill never triggers and every result
	// carries at least one requested genre.
	require.Len(t, results, 6)
	for _, a := range results {
		assert.True(t, a.HasAnyGenre([]string{"drama", "comedy"}),
			"anime %d matches neither requested genre", a.ID)
	}
}

func TestRecommendTypeFilter(t *testing.T) {
	t.Parallel()

	catalog := []*domain.Anime{
		testAnime(1, 8.0, domain.AnimeTypeTV, "action"),
		testAnime(2, 7.0, domain.AnimeTypeMovie, "action"),
		testAnime(3, 9.0, domain.AnimeTypeMovie, "action"),
		testAnime(4, 6.0, domain.AnimeTypeOVA, "action"),
		testAnime(5, 9.5, domain.AnimeTypeMovie, "action"),
		testAnime(6, 8.5, domain.AnimeTypeMovie, "action"),
		testAnime(7, 7.5, domain.AnimeTypeMovie, "action"),
	}
	svc := newTestService(catalog, nil, 1)

	results, err := svc.Recommend(context.Background(), Request{Type: domain.AnimeTypeMovie})
	require.NoError(t, err)

	require.Len(t, results, 5)
	for _, a := range results {
		assert.Equal(t, domain.AnimeTypeMovie, a.Type)
	}
}

func TestRecommendCollaborativeBoost(t *testing.T) {
	t.Parallel()

	caller := uuid.New()
	peer := uuid.New()

	// Anime 3 is a peer favorite; anime 2 has the same numeric rating but no
	// boost, so the boost decides the order.
	catalog := []*domain.Anime{
		testAnime(1, 9.0, domain.AnimeTypeTV, "action"),
		testAnime(2, 8.0, domain.AnimeTypeTV, "action"),
		testAnime(3, 8.0, domain.AnimeTypeTV, "action"),
		testAnime(4, 7.0, domain.AnimeTypeTV, "action"),
		testAnime(5, 6.0, domain.AnimeTypeTV, "action"),
	}
	ratings := []domain.Rating{
		{ID: 1, AnimeID: 1, UserID: caller, Score: 9},
		{ID: 2, AnimeID: 1, UserID: peer, Score: 8},
		{ID: 3, AnimeID: 3, UserID: peer, Score: 8},
	}

	svc := newTestService(catalog, ratings, 1)

	results, err := svc.Recommend(context.Background(), Request{UserID: &caller})
	require.NoError(t, err)

	// Boosted anime 3 ranks first despite anime 1's higher rating.
	assert.Equal(t, []int64{3, 1, 2, 4, 5}, animeIDs(results))
}

func TestRecommendBoostExcludesCallerRatedAnime(t *testing.T) {
	t.Parallel()

	caller := uuid.New()
	peer := uuid.New()

	catalog := []*domain.Anime{
		testAnime(1, 5.0, domain.AnimeTypeTV, "action"),
		testAnime(2, 8.0, domain.AnimeTypeTV, "action"),
		testAnime(3, 8.0, domain.AnimeTypeTV, "action"),
		testAnime(4, 7.0, domain.AnimeTypeTV, "action"),
		testAnime(5, 6.0, domain.AnimeTypeTV, "action"),
	}
	// The peer's favorites include anime 2, but the caller already rated it,
	// so it gets no boost and the equal-rated pair falls back to id order.
	ratings := []domain.Rating{
		{ID: 1, AnimeID: 1, UserID: caller, Score: 9},
		{ID: 2, AnimeID: 2, UserID: caller, Score: 3},
		{ID: 3, AnimeID: 1, UserID: peer, Score: 7},
		{ID: 4, AnimeID: 2, UserID: peer, Score: 9},
	}

	svc := newTestService(catalog, ratings, 1)

	results, err := svc.Recommend(context.Background(), Request{UserID: &caller})
	require.NoError(t, err)

	assert.Equal(t, []int64{2, 3, 4, 5, 1}, animeIDs(results))
}

func TestRecommendNoBoostWithoutLikedAnime(t *testing.T) {
	t.Parallel()

	caller := uuid.New()
	peer := uuid.New()

	catalog := []*domain.Anime{
		testAnime(1, 5.0, domain.AnimeTypeTV, "action"),
		testAnime(2, 8.0, domain.AnimeTypeTV, "action"),
		testAnime(3, 9.0, domain.AnimeTypeTV, "action"),
		testAnime(4, 7.0, domain.AnimeTypeTV, "action"),
		testAnime(5, 6.0, domain.AnimeTypeTV, "action"),
	}
	// All caller scores are below the like threshold; peers never enter the
	// computation and ranking is by rating alone.
	ratings := []domain.Rating{
		{ID: 1, AnimeID: 1, UserID: caller, Score: 6},
		{ID: 2, AnimeID: 1, UserID: peer, Score: 9},
		{ID: 3, AnimeID: 2, UserID: peer, Score: 10},
	}

	svc := newTestService(catalog, ratings, 1)

	results, err := svc.Recommend(context.Background(), Request{UserID: &caller})
	require.NoError(t, err)

	assert.Equal(t, []int64{3, 2, 4, 5, 1}, animeIDs(results))
}

func TestRecommendBackfillTriggersBelowMinimum(t *testing.T) {
	t.Parallel()

	// Only two anime match the genre filter; the rest of the catalog is
	// available for backfill.
	catalog := []*domain.Anime{
		testAnime(1, 8.0, domain.AnimeTypeTV, "mecha"),
		testAnime(2, 7.0, domain.AnimeTypeTV, "mecha"),
		testAnime(3, 9.0, domain.AnimeTypeTV, "drama"),
		testAnime(4, 6.0, domain.AnimeTypeTV, "comedy"),
		testAnime(5, 5.0, domain.AnimeTypeTV, "romance"),
		testAnime(6, 4.0, domain.AnimeTypeTV, "action"),
	}
	svc := newTestService(catalog, nil, 7)

	results, err := svc.Recommend(context.Background(), Request{GenreIDs: []string{"mecha"}})
	require.NoError(t, err)

	// The two matches rank first; the backfill sample covers the whole
	// six-entry catalog, so every remaining anime is appended.
	require.Len(t, results, len(catalog))
	assert.Equal(t, []int64{1, 2}, animeIDs(results[:2]))
	assertDistinctIDs(t, results)
}

func TestRecommendBackfillAppendsFullSample(t *testing.T) {
	t.Parallel()

	// Nothing matches the genre filter, so the result is built entirely
	// from the backfill sample: up to 10 distinct draws, all appended.
	catalog := make([]*domain.Anime, 0, 20)
	for id := int64(1); id <= 20; id++ {
		catalog = append(catalog, testAnime(id, 5.0, domain.AnimeTypeTV, "drama"))
	}
	svc := newTestService(catalog, nil, 11)

	results, err := svc.Recommend(context.Background(), Request{GenreIDs: []string{"horror"}})
	require.NoError(t, err)

	assert.Len(t, results, maxBackfillDraws)
	assert.Greater(t, len(results), minBeforeBackfill)
	assertDistinctIDs(t, results)
}

func TestRecommendNoBackfillAtOrAboveMinimum(t *testing.T) {
	t.Parallel()

	catalog := []*domain.Anime{
		testAnime(1, 8.0, domain.AnimeTypeTV, "mecha"),
		testAnime(2, 7.0, domain.AnimeTypeTV, "mecha"),
		testAnime(3, 9.0, domain.AnimeTypeTV, "mecha"),
		testAnime(4, 6.0, domain.AnimeTypeTV, "mecha"),
		testAnime(5, 5.0, domain.AnimeTypeTV, "mecha"),
		testAnime(6, 4.0, domain.AnimeTypeTV, "comedy"),
	}
	svc := newTestService(catalog, nil, 1)

	results, err := svc.Recommend(context.Background(), Request{GenreIDs: []string{"mecha"}})
	require.NoError(t, err)

	// Exactly the five matches, no random extras.
	assert.Equal(t, []int64{3, 1, 2, 4, 5}, animeIDs(results))
}

func TestRecommendDeterministicWithSeededSource(t *testing.T) {
	t.Parallel()

	catalog := []*domain.Anime{
		testAnime(1, 8.0, domain.AnimeTypeTV, "mecha"),
		testAnime(2, 9.0, domain.AnimeTypeTV, "drama"),
		testAnime(3, 6.0, domain.AnimeTypeTV, "comedy"),
		testAnime(4, 5.0, domain.AnimeTypeTV, "romance"),
		testAnime(5, 4.0, domain.AnimeTypeTV, "action"),
		testAnime(6, 3.0, domain.AnimeTypeTV, "horror"),
	}
	req := Request{GenreIDs: []string{"mecha"}}

	first, err := newTestService(catalog, nil, 42).Recommend(context.Background(), req)
	require.NoError(t, err)

	second, err := newTestService(catalog, nil, 42).Recommend(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, animeIDs(first), animeIDs(second))
}
