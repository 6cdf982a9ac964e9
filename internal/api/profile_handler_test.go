package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DevCoder-git/anime-verse-suggestor/internal/domain"
	"github.com/DevCoder-git/anime-verse-suggestor/internal/mocks"
)

func seedProfileUser(t *testing.T) (*mocks.MockUserStore, *domain.User) {
	t.Helper()
	user := &domain.User{
		ID:       uuid.New(),
		Username: "edward",
		Email:    "edward@bebop.example",
		Bio:      "Radical",
	}
	userStore := mocks.NewMockUserStore()
	userStore.Users[user.Email] = user
	return userStore, user
}

func TestGetProfile(t *testing.T) {
	t.Parallel()

	t.Run("existing user", func(t *testing.T) {
		t.Parallel()

		userStore, user := seedProfileUser(t)
		handler := NewProfileHandler(userStore)

		req := withUser(newJSONRequest(t, "GET", "/api/profile", nil), user.ID)
		recorder := httptest.NewRecorder()
		handler.GetProfile(recorder, req)

		require.Equal(t, http.StatusOK, recorder.Code)

		var resp ProfileResponse
		require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
		assert.Equal(t, user.ID, resp.UserID)
		assert.Equal(t, "edward", resp.Username)
		assert.Equal(t, "Radical", resp.Bio)
	})

	t.Run("unauthenticated", func(t *testing.T) {
		t.Parallel()

		userStore, _ := seedProfileUser(t)
		handler := NewProfileHandler(userStore)

		req := newJSONRequest(t, "GET", "/api/profile", nil)
		recorder := httptest.NewRecorder()
		handler.GetProfile(recorder, req)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})
}

func TestUpdateProfile(t *testing.T) {
	t.Parallel()

	t.Run("update bio only", func(t *testing.T) {
		t.Parallel()

		userStore, user := seedProfileUser(t)
		handler := NewProfileHandler(userStore)

		req := withUser(
			newJSONRequest(t, "PUT", "/api/profile", map[string]interface{}{"bio": "See you space cowboy"}),
			user.ID,
		)
		recorder := httptest.NewRecorder()
		handler.UpdateProfile(recorder, req)

		require.Equal(t, http.StatusOK, recorder.Code)

		var resp ProfileResponse
		require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
		assert.Equal(t, "See you space cowboy", resp.Bio)
		assert.Equal(t, "edward", resp.Username)
	})

	t.Run("update favorite genres", func(t *testing.T) {
		t.Parallel()

		userStore, user := seedProfileUser(t)
		handler := NewProfileHandler(userStore)

		req := withUser(
			newJSONRequest(t, "PUT", "/api/profile", map[string]interface{}{"favorite_genre_ids": []string{"action", "scifi"}}),
			user.ID,
		)
		recorder := httptest.NewRecorder()
		handler.UpdateProfile(recorder, req)

		require.Equal(t, http.StatusOK, recorder.Code)

		var resp ProfileResponse
		require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
		require.Len(t, resp.FavoriteGenres, 2)
		// Bio untouched when absent from the payload.
		assert.Equal(t, "Radical", resp.Bio)
	})

	t.Run("empty payload changes nothing", func(t *testing.T) {
		t.Parallel()

		userStore, user := seedProfileUser(t)
		handler := NewProfileHandler(userStore)

		req := withUser(newJSONRequest(t, "PUT", "/api/profile", map[string]interface{}{}), user.ID)
		recorder := httptest.NewRecorder()
		handler.UpdateProfile(recorder, req)

		require.Equal(t, http.StatusOK, recorder.Code)

		var resp ProfileResponse
		require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
		assert.Equal(t, "Radical", resp.Bio)
	})
}
