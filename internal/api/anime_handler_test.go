package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DevCoder-git/anime-verse-suggestor/internal/domain"
	"github.com/DevCoder-git/anime-verse-suggestor/internal/mocks"
)

func catalogFixture() []*domain.Anime {
	return []*domain.Anime{
		{
			ID:       1,
			Title:    "Steins;Gate",
			Type:     domain.AnimeTypeTV,
			Episodes: 24,
			Rating:   9.1,
			Genres:   []domain.Genre{{ID: "scifi", Name: "Sci-Fi"}, {ID: "thriller", Name: "Thriller"}},
			Studio:   "White Fox",
		},
		{
			ID:       2,
			Title:    "A Silent Voice",
			Type:     domain.AnimeTypeMovie,
			Episodes: 1,
			Rating:   8.9,
			Genres:   []domain.Genre{{ID: "drama", Name: "Drama"}},
			Studio:   "Kyoto Animation",
		},
	}
}

func TestGetAnime(t *testing.T) {
	t.Parallel()

	handler := NewAnimeHandler(mocks.NewMockAnimeStore(catalogFixture()...), &mocks.MockGenreStore{})

	t.Run("found", func(t *testing.T) {
		t.Parallel()
		req := withPathParams(
			newJSONRequest(t, "GET", "/api/anime/1", nil),
			map[string]string{"animeID": "1"},
		)
		recorder := httptest.NewRecorder()
		handler.GetAnime(recorder, req)

		require.Equal(t, http.StatusOK, recorder.Code)

		var resp AnimeResponse
		require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
		assert.Equal(t, int64(1), resp.ID)
		assert.Equal(t, "Steins;Gate", resp.Title)
		assert.Equal(t, []string{"Sci-Fi", "Thriller"}, resp.Genres)
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()
		req := withPathParams(
			newJSONRequest(t, "GET", "/api/anime/99", nil),
			map[string]string{"animeID": "99"},
		)
		recorder := httptest.NewRecorder()
		handler.GetAnime(recorder, req)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})

	t.Run("malformed id", func(t *testing.T) {
		t.Parallel()
		req := withPathParams(
			newJSONRequest(t, "GET", "/api/anime/abc", nil),
			map[string]string{"animeID": "abc"},
		)
		recorder := httptest.NewRecorder()
		handler.GetAnime(recorder, req)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func TestSearchAnime(t *testing.T) {
	t.Parallel()

	t.Run("empty query returns empty list", func(t *testing.T) {
		t.Parallel()

		handler := NewAnimeHandler(mocks.NewMockAnimeStore(catalogFixture()...), &mocks.MockGenreStore{})

		recorder := httptest.NewRecorder()
		handler.SearchAnime(recorder, newJSONRequest(t, "GET", "/api/anime/search?q=", nil))

		require.Equal(t, http.StatusOK, recorder.Code)
		assert.JSONEq(t, "[]", recorder.Body.String())
	})

	t.Run("query returns matches", func(t *testing.T) {
		t.Parallel()

		handler := NewAnimeHandler(mocks.NewMockAnimeStore(catalogFixture()...), &mocks.MockGenreStore{})

		recorder := httptest.NewRecorder()
		handler.SearchAnime(recorder, newJSONRequest(t, "GET", "/api/anime/search?q=gate", nil))

		require.Equal(t, http.StatusOK, recorder.Code)

		var resp []AnimeResponse
		require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
		assert.Len(t, resp, 2)
	})
}

func TestTrendingAnime(t *testing.T) {
	t.Parallel()

	handler := NewAnimeHandler(mocks.NewMockAnimeStore(catalogFixture()...), &mocks.MockGenreStore{})

	recorder := httptest.NewRecorder()
	handler.TrendingAnime(recorder, newJSONRequest(t, "GET", "/api/anime/trending", nil))

	require.Equal(t, http.StatusOK, recorder.Code)

	var resp []AnimeResponse
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
	require.Len(t, resp, 2)
	assert.Equal(t, "Steins;Gate", resp[0].Title)
}

func TestListGenres(t *testing.T) {
	t.Parallel()

	genreStore := &mocks.MockGenreStore{
		Genres: []domain.Genre{
			{ID: "action", Name: "Action"},
			{ID: "drama", Name: "Drama"},
		},
	}
	handler := NewAnimeHandler(mocks.NewMockAnimeStore(), genreStore)

	recorder := httptest.NewRecorder()
	handler.ListGenres(recorder, newJSONRequest(t, "GET", "/api/genres", nil))

	require.Equal(t, http.StatusOK, recorder.Code)

	var resp []GenreResponse
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
	assert.Equal(t, []GenreResponse{
		{ID: "action", Name: "Action"},
		{ID: "drama", Name: "Drama"},
	}, resp)
}
