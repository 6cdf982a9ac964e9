package api

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/DevCoder-git/anime-verse-suggestor/internal/domain"
	"github.com/DevCoder-git/anime-verse-suggestor/internal/store"
)

// CommentHandler handles comment-related API requests.
type CommentHandler struct {
	commentStore store.CommentStore
	animeStore   store.AnimeStore
	userStore    store.UserStore
	validator    *validator.Validate
}

// NewCommentHandler creates a new CommentHandler with the given dependencies.
func NewCommentHandler(
	commentStore store.CommentStore,
	animeStore store.AnimeStore,
	userStore store.UserStore,
) *CommentHandler {
	return &CommentHandler{
		commentStore: commentStore,
		animeStore:   animeStore,
		userStore:    userStore,
		validator:    validator.New(),
	}
}

// ListComments handles GET /api/anime/{animeID}/comments.
func (h *CommentHandler) ListComments(w http.ResponseWriter, r *http.Request) {
	animeID, err := getPathID(r, "animeID")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	comments, err := h.commentStore.ListByAnime(r.Context(), animeID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list comments")
		return
	}

	out := make([]CommentResponse, 0, len(comments))
	for i := range comments {
		out = append(out, NewCommentResponse(&comments[i]))
	}
	RespondWithJSON(w, r, http.StatusOK, out)
}

// AddComment handles POST /api/anime/{animeID}/comments.
func (h *CommentHandler) AddComment(w http.ResponseWriter, r *http.Request) {
	userID, animeID, ok := requireUserAndPathID(w, r, "animeID")
	if !ok {
		return
	}

	var req AddCommentRequest
	if err := DecodeJSON(r, &req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	// Resolve the anime first so a bad id is a 404, not a foreign key error.
	if _, err := h.animeStore.GetByID(r.Context(), animeID); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	comment, err := domain.NewComment(animeID, userID, req.Content)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.commentStore.Create(r.Context(), comment); err != nil {
		HandleAPIError(w, r, err, "Failed to add comment")
		return
	}

	// Populate the username for the response from the authenticated user.
	if user, err := h.userStore.GetByID(r.Context(), userID); err == nil {
		comment.Username = user.Username
	}

	RespondWithJSON(w, r, http.StatusCreated, NewCommentResponse(comment))
}

// ReportComment handles POST /api/comments/{commentID}/report.
func (h *CommentHandler) ReportComment(w http.ResponseWriter, r *http.Request) {
	_, commentID, ok := requireUserAndPathID(w, r, "commentID")
	if !ok {
		return
	}

	if err := h.commentStore.Report(r.Context(), commentID); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	RespondWithJSON(w, r, http.StatusOK, map[string]string{"status": "reported"})
}
