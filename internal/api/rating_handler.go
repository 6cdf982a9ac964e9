package api

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/DevCoder-git/anime-verse-suggestor/internal/domain"
	"github.com/DevCoder-git/anime-verse-suggestor/internal/service"
	"github.com/DevCoder-git/anime-verse-suggestor/internal/store"
)

// RatingHandler handles rating-related API requests.
type RatingHandler struct {
	ratingService service.RatingService
	ratingStore   store.RatingStore
	validator     *validator.Validate
}

// NewRatingHandler creates a new RatingHandler with the given dependencies.
func NewRatingHandler(ratingService service.RatingService, ratingStore store.RatingStore) *RatingHandler {
	return &RatingHandler{
		ratingService: ratingService,
		ratingStore:   ratingStore,
		validator:     validator.New(),
	}
}

// RateAnime handles POST /api/anime/{animeID}/rate.
func (h *RatingHandler) RateAnime(w http.ResponseWriter, r *http.Request) {
	userID, animeID, ok := requireUserAndPathID(w, r, "animeID")
	if !ok {
		return
	}

	var req RateAnimeRequest
	if err := DecodeJSON(r, &req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	// Range is re-checked by the service; the tag check here keeps the
	// error message consistent with other payload validation failures.
	if err := h.validator.Struct(req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Score must be an integer between 1 and 10")
		return
	}

	result, err := h.ratingService.RateAnime(r.Context(), animeID, userID, req.Score)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	RespondWithJSON(w, r, http.StatusOK, RateAnimeResponse{
		Score:       result.Rating.Score,
		AnimeRating: result.AnimeAverage,
	})
}

// GetUserRating handles GET /api/anime/{animeID}/user-rating.
// Responds with a null score when the caller has not rated the anime.
func (h *RatingHandler) GetUserRating(w http.ResponseWriter, r *http.Request) {
	userID, animeID, ok := requireUserAndPathID(w, r, "animeID")
	if !ok {
		return
	}

	score, err := h.ratingService.UserRating(r.Context(), animeID, userID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	RespondWithJSON(w, r, http.StatusOK, UserRatingResponse{Score: score})
}

// ListAnimeRatings handles GET /api/anime/{animeID}/ratings.
func (h *RatingHandler) ListAnimeRatings(w http.ResponseWriter, r *http.Request) {
	animeID, err := getPathID(r, "animeID")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	ratings, err := h.ratingStore.ListByAnime(r.Context(), animeID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list ratings")
		return
	}

	// Keep the JSON shape list-of-objects even when empty.
	if ratings == nil {
		ratings = []domain.Rating{}
	}
	RespondWithJSON(w, r, http.StatusOK, ratings)
}
