package domain

import (
	"errors"
	"time"
)

// Anime-specific validation errors
var (
	// ErrAnimeTitleEmpty is returned when an anime's title is empty.
	ErrAnimeTitleEmpty = errors.New("anime title cannot be empty")

	// ErrInvalidAnimeType is returned when an anime's type is not one of
	// the known classification values.
	ErrInvalidAnimeType = errors.New("invalid anime type")

	// ErrInvalidEpisodeCount is returned when an anime's episode count is
	// zero or negative.
	ErrInvalidEpisodeCount = errors.New("episode count must be at least 1")
)

// AnimeType classifies an anime release format.
type AnimeType string

// Known anime classification values.
const (
	AnimeTypeTV      AnimeType = "TV"
	AnimeTypeMovie   AnimeType = "Movie"
	AnimeTypeOVA     AnimeType = "OVA"
	AnimeTypeSpecial AnimeType = "Special"
)

// IsValid reports whether the type is one of the known classification values.
func (t AnimeType) IsValid() bool {
	switch t {
	case AnimeTypeTV, AnimeTypeMovie, AnimeTypeOVA, AnimeTypeSpecial:
		return true
	default:
		return false
	}
}

// Anime represents a single catalog entry.
//
// Rating is a denormalized running average of all Rating.Score values for
// this anime, rounded to one decimal, recomputed whenever a rating is
// upserted. It is 0 when the anime has no ratings.
type Anime struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Image       string    `json:"image"`
	Description string    `json:"description"`
	Year        int       `json:"year"`
	Type        AnimeType `json:"type"`
	Episodes    int       `json:"episodes"`
	Rating      float64   `json:"rating"`
	Genres      []Genre   `json:"genres"`
	Studio      string    `json:"studio"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Validate checks if the Anime has valid data.
// Returns an error if any field fails validation.
func (a *Anime) Validate() error {
	if a.Title == "" {
		return ErrAnimeTitleEmpty
	}

	if !a.Type.IsValid() {
		return ErrInvalidAnimeType
	}

	if a.Episodes < 1 {
		return ErrInvalidEpisodeCount
	}

	return nil
}

// HasGenre reports whether the anime is tagged with the given genre key.
func (a *Anime) HasGenre(genreID string) bool {
	for _, g := range a.Genres {
		if g.ID == genreID {
			return true
		}
	}
	return false
}

// HasAnyGenre reports whether the anime is tagged with at least one of
// the given genre keys.
func (a *Anime) HasAnyGenre(genreIDs []string) bool {
	for _, id := range genreIDs {
		if a.HasGenre(id) {
			return true
		}
	}
	return false
}

// SharesGenreWith reports whether the two anime have at least one genre
// in common.
func (a *Anime) SharesGenreWith(other *Anime) bool {
	for _, g := range other.Genres {
		if a.HasGenre(g.ID) {
			return true
		}
	}
	return false
}
