package api

import (
	"net/http"
	"strconv"

	"github.com/DevCoder-git/anime-verse-suggestor/internal/domain"
	"github.com/DevCoder-git/anime-verse-suggestor/internal/service/recommend"
)

// RecommendationHandler handles the recommendation endpoint.
type RecommendationHandler struct {
	recommender *recommend.Service
}

// NewRecommendationHandler creates a new RecommendationHandler.
func NewRecommendationHandler(recommender *recommend.Service) *RecommendationHandler {
	return &RecommendationHandler{recommender: recommender}
}

// GetRecommendations handles GET /api/anime/recommendations.
//
// Query parameters: `genres` (repeated genre keys), `type` (release format),
// `anime_id` (seed anime). All optional. The caller identity, when present,
// enables the collaborative boost; anonymous requests are served too.
func (h *RecommendationHandler) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	req := recommend.Request{}

	query := r.URL.Query()

	if genres, ok := query["genres"]; ok {
		req.GenreIDs = genres
	}

	if typeParam := query.Get("type"); typeParam != "" {
		animeType := domain.AnimeType(typeParam)
		if !animeType.IsValid() {
			RespondWithError(w, r, http.StatusBadRequest, "Invalid anime type")
			return
		}
		req.Type = animeType
	}

	if seedParam := query.Get("anime_id"); seedParam != "" {
		seedID, err := strconv.ParseInt(seedParam, 10, 64)
		if err != nil || seedID <= 0 {
			RespondWithError(w, r, http.StatusBadRequest, "Invalid anime_id")
			return
		}
		req.SeedAnimeID = &seedID
	}

	if userID, ok := getUserIDFromContext(r); ok {
		req.UserID = &userID
	}

	anime, err := h.recommender.Recommend(r.Context(), req)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to compute recommendations")
		return
	}

	RespondWithJSON(w, r, http.StatusOK, NewAnimeListResponse(anime))
}
