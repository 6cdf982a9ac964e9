package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DevCoder-git/anime-verse-suggestor/internal/domain"
	"github.com/DevCoder-git/anime-verse-suggestor/internal/mocks"
)

func newTestCommentHandler(commentStore *mocks.MockCommentStore, userStore *mocks.MockUserStore) *CommentHandler {
	animeStore := mocks.NewMockAnimeStore(
		&domain.Anime{ID: 1, Title: "Cowboy Bebop", Type: domain.AnimeTypeTV, Rating: 8.8},
	)
	return NewCommentHandler(commentStore, animeStore, userStore)
}

func TestListComments(t *testing.T) {
	t.Parallel()

	commentStore := &mocks.MockCommentStore{Comments: []domain.Comment{
		{ID: 1, AnimeID: 1, UserID: uuid.New(), Username: "spike", Content: "Whatever happens, happens.", CreatedAt: time.Now().UTC()},
		{ID: 2, AnimeID: 2, UserID: uuid.New(), Username: "jet", Content: "Other show.", CreatedAt: time.Now().UTC()},
	}}
	handler := newTestCommentHandler(commentStore, mocks.NewMockUserStore())

	req := withPathParams(
		newJSONRequest(t, "GET", "/api/anime/1/comments", nil),
		map[string]string{"animeID": "1"},
	)
	recorder := httptest.NewRecorder()
	handler.ListComments(recorder, req)

	require.Equal(t, http.StatusOK, recorder.Code)

	var resp []CommentResponse
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "spike", resp[0].Username)
}

func TestAddComment(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	t.Run("valid comment", func(t *testing.T) {
		t.Parallel()

		userStore := mocks.NewMockUserStore()
		userStore.GetByIDFn = func(ctx context.Context, id uuid.UUID) (*domain.User, error) {
			return &domain.User{ID: id, Username: "faye"}, nil
		}
		commentStore := &mocks.MockCommentStore{}
		handler := newTestCommentHandler(commentStore, userStore)

		req := withUser(
			withPathParams(
				newJSONRequest(t, "POST", "/api/anime/1/comments", map[string]interface{}{"content": "A classic."}),
				map[string]string{"animeID": "1"},
			),
			userID,
		)
		recorder := httptest.NewRecorder()
		handler.AddComment(recorder, req)

		require.Equal(t, http.StatusCreated, recorder.Code)

		var resp CommentResponse
		require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
		assert.Equal(t, "A classic.", resp.Content)
		assert.Equal(t, "faye", resp.Username)
		assert.Len(t, commentStore.Comments, 1)
	})

	t.Run("empty content", func(t *testing.T) {
		t.Parallel()

		handler := newTestCommentHandler(&mocks.MockCommentStore{}, mocks.NewMockUserStore())

		req := withUser(
			withPathParams(
				newJSONRequest(t, "POST", "/api/anime/1/comments", map[string]interface{}{"content": ""}),
				map[string]string{"animeID": "1"},
			),
			userID,
		)
		recorder := httptest.NewRecorder()
		handler.AddComment(recorder, req)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("unknown anime", func(t *testing.T) {
		t.Parallel()

		handler := newTestCommentHandler(&mocks.MockCommentStore{}, mocks.NewMockUserStore())

		req := withUser(
			withPathParams(
				newJSONRequest(t, "POST", "/api/anime/99/comments", map[string]interface{}{"content": "Hello"}),
				map[string]string{"animeID": "99"},
			),
			userID,
		)
		recorder := httptest.NewRecorder()
		handler.AddComment(recorder, req)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})

	t.Run("unauthenticated", func(t *testing.T) {
		t.Parallel()

		handler := newTestCommentHandler(&mocks.MockCommentStore{}, mocks.NewMockUserStore())

		req := withPathParams(
			newJSONRequest(t, "POST", "/api/anime/1/comments", map[string]interface{}{"content": "Hello"}),
			map[string]string{"animeID": "1"},
		)
		recorder := httptest.NewRecorder()
		handler.AddComment(recorder, req)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})
}

func TestReportComment(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	t.Run("existing comment", func(t *testing.T) {
		t.Parallel()

		commentStore := &mocks.MockCommentStore{Comments: []domain.Comment{
			{ID: 1, AnimeID: 1, UserID: uuid.New(), Content: "rude"},
		}}
		handler := newTestCommentHandler(commentStore, mocks.NewMockUserStore())

		req := withUser(
			withPathParams(
				newJSONRequest(t, "POST", "/api/comments/1/report", nil),
				map[string]string{"commentID": "1"},
			),
			userID,
		)
		recorder := httptest.NewRecorder()
		handler.ReportComment(recorder, req)

		require.Equal(t, http.StatusOK, recorder.Code)
		assert.JSONEq(t, `{"status": "reported"}`, recorder.Body.String())
		assert.True(t, commentStore.Comments[0].Reported)
	})

	t.Run("unknown comment", func(t *testing.T) {
		t.Parallel()

		handler := newTestCommentHandler(&mocks.MockCommentStore{}, mocks.NewMockUserStore())

		req := withUser(
			withPathParams(
				newJSONRequest(t, "POST", "/api/comments/42/report", nil),
				map[string]string{"commentID": "42"},
			),
			userID,
		)
		recorder := httptest.NewRecorder()
		handler.ReportComment(recorder, req)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}
