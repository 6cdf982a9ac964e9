package api

import (
	"net/http"

	"github.com/DevCoder-git/anime-verse-suggestor/internal/store"
)

// trendingLimit is the number of anime returned by the trending endpoint.
const trendingLimit = 10

// AnimeHandler handles catalog read requests.
type AnimeHandler struct {
	animeStore store.AnimeStore
	genreStore store.GenreStore
}

// NewAnimeHandler creates a new AnimeHandler with the given dependencies.
func NewAnimeHandler(animeStore store.AnimeStore, genreStore store.GenreStore) *AnimeHandler {
	return &AnimeHandler{
		animeStore: animeStore,
		genreStore: genreStore,
	}
}

// ListAnime handles GET /api/anime.
func (h *AnimeHandler) ListAnime(w http.ResponseWriter, r *http.Request) {
	anime, err := h.animeStore.List(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list anime")
		return
	}

	RespondWithJSON(w, r, http.StatusOK, NewAnimeListResponse(anime))
}

// GetAnime handles GET /api/anime/{animeID}.
func (h *AnimeHandler) GetAnime(w http.ResponseWriter, r *http.Request) {
	animeID, err := getPathID(r, "animeID")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	anime, err := h.animeStore.GetByID(r.Context(), animeID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	RespondWithJSON(w, r, http.StatusOK, NewAnimeResponse(anime))
}

// SearchAnime handles GET /api/anime/search?q=.
// An empty query returns an empty list without touching the store.
func (h *AnimeHandler) SearchAnime(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		RespondWithJSON(w, r, http.StatusOK, []AnimeResponse{})
		return
	}

	anime, err := h.animeStore.Search(r.Context(), query)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to search anime")
		return
	}

	RespondWithJSON(w, r, http.StatusOK, NewAnimeListResponse(anime))
}

// TrendingAnime handles GET /api/anime/trending.
func (h *AnimeHandler) TrendingAnime(w http.ResponseWriter, r *http.Request) {
	anime, err := h.animeStore.Trending(r.Context(), trendingLimit)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to load trending anime")
		return
	}

	RespondWithJSON(w, r, http.StatusOK, NewAnimeListResponse(anime))
}

// ListGenres handles GET /api/genres.
func (h *AnimeHandler) ListGenres(w http.ResponseWriter, r *http.Request) {
	genres, err := h.genreStore.List(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list genres")
		return
	}

	out := make([]GenreResponse, 0, len(genres))
	for _, g := range genres {
		out = append(out, GenreResponse{ID: g.ID, Name: g.Name})
	}
	RespondWithJSON(w, r, http.StatusOK, out)
}
