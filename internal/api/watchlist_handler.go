package api

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/DevCoder-git/anime-verse-suggestor/internal/domain"
	"github.com/DevCoder-git/anime-verse-suggestor/internal/store"
)

// AddWatchlistRequest defines the payload for adding an anime to the
// caller's watchlist.
type AddWatchlistRequest struct {
	AnimeID int64 `json:"anime_id" validate:"required,gt=0"`
}

// WatchlistHandler handles watchlist-related API requests.
type WatchlistHandler struct {
	watchlistStore store.WatchlistStore
	animeStore     store.AnimeStore
	validator      *validator.Validate
}

// NewWatchlistHandler creates a new WatchlistHandler with the given dependencies.
func NewWatchlistHandler(watchlistStore store.WatchlistStore, animeStore store.AnimeStore) *WatchlistHandler {
	return &WatchlistHandler{
		watchlistStore: watchlistStore,
		animeStore:     animeStore,
		validator:      validator.New(),
	}
}

// ListWatchlist handles GET /api/watchlist.
func (h *WatchlistHandler) ListWatchlist(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		HandleAPIError(w, r, domain.ErrUnauthorized, "Authentication required")
		return
	}

	items, err := h.watchlistStore.ListByUser(r.Context(), userID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list watchlist")
		return
	}

	out := make([]WatchlistItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, WatchlistItemResponse{
			Anime:   NewAnimeResponse(item.Anime),
			AddedAt: item.CreatedAt,
		})
	}
	RespondWithJSON(w, r, http.StatusOK, out)
}

// AddToWatchlist handles POST /api/watchlist.
func (h *WatchlistHandler) AddToWatchlist(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		HandleAPIError(w, r, domain.ErrUnauthorized, "Authentication required")
		return
	}

	var req AddWatchlistRequest
	if err := DecodeJSON(r, &req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	// Resolve the anime first so a bad id is a 404, not a foreign key error.
	if _, err := h.animeStore.GetByID(r.Context(), req.AnimeID); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	created, err := h.watchlistStore.Add(r.Context(), userID, req.AnimeID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to add to watchlist")
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	RespondWithJSON(w, r, status, WatchlistStatusResponse{InWatchlist: true})
}

// RemoveFromWatchlist handles DELETE /api/watchlist/{animeID}.
func (h *WatchlistHandler) RemoveFromWatchlist(w http.ResponseWriter, r *http.Request) {
	userID, animeID, ok := requireUserAndPathID(w, r, "animeID")
	if !ok {
		return
	}

	if err := h.watchlistStore.Remove(r.Context(), userID, animeID); err != nil {
		HandleAPIError(w, r, err, "Failed to remove from watchlist")
		return
	}

	RespondWithJSON(w, r, http.StatusOK, WatchlistStatusResponse{InWatchlist: false})
}

// CheckWatchlist handles GET /api/watchlist/check/{animeID}.
func (h *WatchlistHandler) CheckWatchlist(w http.ResponseWriter, r *http.Request) {
	userID, animeID, ok := requireUserAndPathID(w, r, "animeID")
	if !ok {
		return
	}

	inList, err := h.watchlistStore.Contains(r.Context(), userID, animeID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to check watchlist")
		return
	}

	RespondWithJSON(w, r, http.StatusOK, WatchlistStatusResponse{InWatchlist: inList})
}
