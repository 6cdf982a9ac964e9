package api

import (
	"time"

	"github.com/google/uuid"

	"github.com/DevCoder-git/anime-verse-suggestor/internal/domain"
)

// Common request/response structures

// RegisterRequest defines the payload for the user registration endpoint.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=30"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=1"`
}

// AuthResponse defines the successful response for authentication endpoints.
type AuthResponse struct {
	// UserID is the unique identifier for the authenticated user
	UserID uuid.UUID `json:"user_id"`

	// Username is the display name of the authenticated user
	Username string `json:"username"`

	// AccessToken is the JWT token used for API authorization
	AccessToken string `json:"token"`

	// RefreshToken is the JWT token used to obtain new access tokens
	RefreshToken string `json:"refresh_token,omitempty"`

	// ExpiresAt is the ISO 8601 timestamp when the access token expires
	ExpiresAt string `json:"expires_at,omitempty"`
}

// RefreshTokenRequest defines the payload for the token refresh endpoint.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// RefreshTokenResponse defines the successful response for the token refresh endpoint.
type RefreshTokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresAt    string `json:"expires_at"`
}

// GenreResponse represents a genre in API responses.
type GenreResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// AnimeResponse represents a catalog entry in API responses. Genres are
// flattened to their display names.
type AnimeResponse struct {
	ID          int64    `json:"id"`
	Title       string   `json:"title"`
	Image       string   `json:"image"`
	Description string   `json:"description"`
	Year        int      `json:"year"`
	Type        string   `json:"type"`
	Episodes    int      `json:"episodes"`
	Rating      float64  `json:"rating"`
	Genres      []string `json:"genres"`
	Studio      string   `json:"studio"`
}

// NewAnimeResponse converts a domain anime to its API representation.
func NewAnimeResponse(a *domain.Anime) AnimeResponse {
	genres := make([]string, 0, len(a.Genres))
	for _, g := range a.Genres {
		genres = append(genres, g.Name)
	}
	return AnimeResponse{
		ID:          a.ID,
		Title:       a.Title,
		Image:       a.Image,
		Description: a.Description,
		Year:        a.Year,
		Type:        string(a.Type),
		Episodes:    a.Episodes,
		Rating:      a.Rating,
		Genres:      genres,
		Studio:      a.Studio,
	}
}

// NewAnimeListResponse converts a slice of domain anime to API representations.
// The result is never nil so empty lists serialize as [] rather than null.
func NewAnimeListResponse(anime []*domain.Anime) []AnimeResponse {
	out := make([]AnimeResponse, 0, len(anime))
	for _, a := range anime {
		out = append(out, NewAnimeResponse(a))
	}
	return out
}

// RateAnimeRequest defines the payload for rating an anime.
type RateAnimeRequest struct {
	Score int `json:"score" validate:"required,min=1,max=10"`
}

// RateAnimeResponse defines the response after rating an anime.
type RateAnimeResponse struct {
	Score       int     `json:"score"`
	AnimeRating float64 `json:"anime_rating"`
}

// UserRatingResponse carries the caller's score for an anime.
// Score is null when the caller has not rated the anime.
type UserRatingResponse struct {
	Score *int `json:"score"`
}

// AddCommentRequest defines the payload for posting a comment.
type AddCommentRequest struct {
	Content string `json:"content" validate:"required,max=2000"`
}

// CommentResponse represents a comment in API responses.
type CommentResponse struct {
	ID        int64     `json:"id"`
	AnimeID   int64     `json:"anime_id"`
	Username  string    `json:"username"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// NewCommentResponse converts a domain comment to its API representation.
func NewCommentResponse(c *domain.Comment) CommentResponse {
	return CommentResponse{
		ID:        c.ID,
		AnimeID:   c.AnimeID,
		Username:  c.Username,
		Content:   c.Content,
		CreatedAt: c.CreatedAt,
	}
}

// WatchlistItemResponse represents one watchlist entry.
type WatchlistItemResponse struct {
	Anime   AnimeResponse `json:"anime"`
	AddedAt time.Time     `json:"added_at"`
}

// WatchlistStatusResponse reports membership of an anime in the caller's
// watchlist.
type WatchlistStatusResponse struct {
	InWatchlist bool `json:"in_watchlist"`
}

// ProfileResponse represents the caller's profile.
type ProfileResponse struct {
	UserID         uuid.UUID       `json:"user_id"`
	Username       string          `json:"username"`
	Email          string          `json:"email"`
	Bio            string          `json:"bio"`
	FavoriteGenres []GenreResponse `json:"favorite_genres"`
}

// NewProfileResponse converts a domain user to its profile representation.
func NewProfileResponse(u *domain.User) ProfileResponse {
	genres := make([]GenreResponse, 0, len(u.FavoriteGenres))
	for _, g := range u.FavoriteGenres {
		genres = append(genres, GenreResponse{ID: g.ID, Name: g.Name})
	}
	return ProfileResponse{
		UserID:         u.ID,
		Username:       u.Username,
		Email:          u.Email,
		Bio:            u.Bio,
		FavoriteGenres: genres,
	}
}

// UpdateProfileRequest defines the payload for updating the caller's profile.
// Nil fields are left unchanged.
type UpdateProfileRequest struct {
	Bio              *string  `json:"bio"`
	FavoriteGenreIDs []string `json:"favorite_genre_ids"`
}
