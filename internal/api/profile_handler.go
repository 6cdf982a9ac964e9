package api

import (
	"net/http"

	"github.com/DevCoder-git/anime-verse-suggestor/internal/domain"
	"github.com/DevCoder-git/anime-verse-suggestor/internal/store"
)

// ProfileHandler handles profile-related API requests.
type ProfileHandler struct {
	userStore store.UserStore
}

// NewProfileHandler creates a new ProfileHandler with the given dependencies.
func NewProfileHandler(userStore store.UserStore) *ProfileHandler {
	return &ProfileHandler{userStore: userStore}
}

// GetProfile handles GET /api/profile.
func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		HandleAPIError(w, r, domain.ErrUnauthorized, "Authentication required")
		return
	}

	user, err := h.userStore.GetByID(r.Context(), userID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	RespondWithJSON(w, r, http.StatusOK, NewProfileResponse(user))
}

// UpdateProfile handles PUT /api/profile. Only the fields present in the
// payload are changed.
func (h *ProfileHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		HandleAPIError(w, r, domain.ErrUnauthorized, "Authentication required")
		return
	}

	var req UpdateProfileRequest
	if err := DecodeJSON(r, &req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	user, err := h.userStore.GetByID(r.Context(), userID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if req.Bio != nil {
		user.Bio = *req.Bio
		if err := h.userStore.Update(r.Context(), user); err != nil {
			HandleAPIError(w, r, err, "")
			return
		}
	}

	if req.FavoriteGenreIDs != nil {
		if err := h.userStore.SetFavoriteGenres(r.Context(), userID, req.FavoriteGenreIDs); err != nil {
			HandleAPIError(w, r, err, "")
			return
		}
	}

	updated, err := h.userStore.GetByID(r.Context(), userID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	RespondWithJSON(w, r, http.StatusOK, NewProfileResponse(updated))
}
