package recommend

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/DevCoder-git/anime-verse-suggestor/internal/domain"
	"github.com/DevCoder-git/anime-verse-suggestor/internal/platform/logger"
	"github.com/DevCoder-git/anime-verse-suggestor/internal/store"
)

const (
	// maxResults is the maximum number of anime returned per request.
	maxResults = 15

	// minBeforeBackfill is the result size below which random backfill kicks in.
	minBeforeBackfill = 5

	// maxBackfillDraws caps the number of random draws during backfill.
	maxBackfillDraws = 10

	// likeThreshold is the minimum score at which a rating counts as a
	// "liked" signal for the collaborative boost.
	likeThreshold = 7

	// peerFavoriteThreshold is the minimum score at which a peer's rating
	// marks an anime as a peer favorite.
	peerFavoriteThreshold = 8
)

// CatalogReader provides read access to the anime catalog.
type CatalogReader interface {
	// GetByID retrieves an anime by its ID, with genres populated.
	// Returns store.ErrAnimeNotFound if the anime does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Anime, error)

	// List retrieves the full catalog, with genres populated, ordered by ID.
	List(ctx context.Context) ([]*domain.Anime, error)
}

// RatingReader provides read access to rating records for the
// collaborative signal.
type RatingReader interface {
	// ListByAnime retrieves all ratings for an anime.
	ListByAnime(ctx context.Context, animeID int64) ([]domain.Rating, error)

	// ListByUser retrieves all ratings posted by a user.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Rating, error)
}

// Request carries the filters and optional caller identity for one
// recommendation computation. All fields are optional; the zero value
// requests a catalog-wide, rating-ordered recommendation.
type Request struct {
	// SeedAnimeID, when set, anchors content-based filtering: only anime
	// sharing at least one genre with the seed qualify, and the seed itself
	// is excluded. An unresolvable seed is ignored.
	SeedAnimeID *int64

	// GenreIDs, when non-empty, restricts candidates to anime tagged with
	// at least one of the given genre keys.
	GenreIDs []string

	// Type, when non-empty, restricts candidates to the given release format.
	Type domain.AnimeType

	// UserID, when set, enables the collaborative boost for the caller.
	UserID *uuid.UUID
}

// Service computes anime recommendations. It reads catalog and rating data
// through its collaborators and never mutates either.
type Service struct {
	catalog CatalogReader
	ratings RatingReader
	logger  *slog.Logger

	// rngMu guards rng; *rand.Rand is not safe for concurrent use.
	rngMu sync.Mutex
	rng   *rand.Rand
}

// NewService creates a new recommendation Service. The rng parameter makes
// backfill draws reproducible in tests; pass nil to use a time-seeded source.
// Panics if catalog, ratings, or logger is nil.
func NewService(catalog CatalogReader, ratings RatingReader, rng *rand.Rand, logger *slog.Logger) *Service {
	if catalog == nil {
		panic("catalog reader cannot be nil")
	}
	if ratings == nil {
		panic("rating reader cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Service{
		catalog: catalog,
		ratings: ratings,
		rng:     rng,
		logger:  logger.With("component", "recommend_service"),
	}
}

// Recommend produces an ordered list of at most 15 distinct anime for the
// request. It applies the collaborative boost (when a caller identity is
// present), then narrows the catalog through the seed, genre, and type
// filters, ranks the survivors, truncates, and backfills at random when
// fewer than 5 remain.
func (s *Service) Recommend(ctx context.Context, req Request) ([]*domain.Anime, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	catalog, err := s.catalog.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	if len(catalog) == 0 {
		return []*domain.Anime{}, nil
	}

	boosted, err := s.peerFavorites(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	candidates := catalog
	candidates, err = s.applySeedFilter(ctx, candidates, req.SeedAnimeID)
	if err != nil {
		return nil, err
	}
	candidates = applyGenreFilter(candidates, req.GenreIDs)
	candidates = applyTypeFilter(candidates, req.Type)

	results := rank(candidates, boosted)
	if len(results) > maxResults {
		results = results[:maxResults]
	}

	if len(results) < minBeforeBackfill {
		results = s.backfill(results, catalog)
	}

	log.Debug("recommendation computed",
		"catalog_size", len(catalog),
		"candidates", len(candidates),
		"boosted", len(boosted),
		"results", len(results))

	return results, nil
}

// peerFavorites builds the collaborative signal for the caller: the set of
// anime IDs rated >= 8 by users who share at least one >= 7 rating with the
// caller, excluding everything the caller has already rated. Returns an
// empty set when no caller identity is given or the caller has no liked
// anime.
func (s *Service) peerFavorites(ctx context.Context, userID *uuid.UUID) (map[int64]bool, error) {
	favorites := make(map[int64]bool)
	if userID == nil {
		return favorites, nil
	}

	own, err := s.ratings.ListByUser(ctx, *userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list caller ratings: %w", err)
	}

	rated := make(map[int64]bool, len(own))
	var liked []int64
	for _, r := range own {
		rated[r.AnimeID] = true
		if r.Score >= likeThreshold {
			liked = append(liked, r.AnimeID)
		}
	}
	if len(liked) == 0 {
		return favorites, nil
	}

	peers := make(map[uuid.UUID]bool)
	for _, animeID := range liked {
		ratings, err := s.ratings.ListByAnime(ctx, animeID)
		if err != nil {
			return nil, fmt.Errorf("failed to list ratings for anime %d: %w", animeID, err)
		}
		for _, r := range ratings {
			if r.UserID != *userID && r.Score >= likeThreshold {
				peers[r.UserID] = true
			}
		}
	}

	for peer := range peers {
		ratings, err := s.ratings.ListByUser(ctx, peer)
		if err != nil {
			return nil, fmt.Errorf("failed to list peer ratings: %w", err)
		}
		for _, r := range ratings {
			if r.Score >= peerFavoriteThreshold && !rated[r.AnimeID] {
				favorites[r.AnimeID] = true
			}
		}
	}

	return favorites, nil
}

// applySeedFilter restricts candidates to anime sharing at least one genre
// with the seed, excluding the seed itself. An absent or unresolvable seed
// leaves the candidate set untouched.
func (s *Service) applySeedFilter(ctx context.Context, candidates []*domain.Anime, seedID *int64) ([]*domain.Anime, error) {
	if seedID == nil {
		return candidates, nil
	}

	seed, err := s.catalog.GetByID(ctx, *seedID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			logger.FromContextOrDefault(ctx, s.logger).Debug("seed anime not found, skipping seed filter",
				"seed_anime_id", *seedID)
			return candidates, nil
		}
		return nil, fmt.Errorf("failed to resolve seed anime %d: %w", *seedID, err)
	}

	filtered := make([]*domain.Anime, 0, len(candidates))
	for _, a := range candidates {
		if a.ID == seed.ID {
			continue
		}
		if a.SharesGenreWith(seed) {
			filtered = append(filtered, a)
		}
	}
	return filtered, nil
}

func applyGenreFilter(candidates []*domain.Anime, genreIDs []string) []*domain.Anime {
	if len(genreIDs) == 0 {
		return candidates
	}
	filtered := make([]*domain.Anime, 0, len(candidates))
	for _, a := range candidates {
		if a.HasAnyGenre(genreIDs) {
			filtered = append(filtered, a)
		}
	}
	return filtered
}

func applyTypeFilter(candidates []*domain.Anime, animeType domain.AnimeType) []*domain.Anime {
	if animeType == "" {
		return candidates
	}
	filtered := make([]*domain.Anime, 0, len(candidates))
	for _, a := range candidates {
		if a.Type == animeType {
			filtered = append(filtered, a)
		}
	}
	return filtered
}

// rank orders candidates by (boost desc, rating desc, id asc). The id
// tie-break keeps the ordering reproducible.
func rank(candidates []*domain.Anime, boosted map[int64]bool) []*domain.Anime {
	ranked := make([]*domain.Anime, len(candidates))
	copy(ranked, candidates)
	sort.SliceStable(ranked, func(i, j int) bool {
		bi, bj := boosted[ranked[i].ID], boosted[ranked[j].ID]
		if bi != bj {
			return bi
		}
		if ranked[i].Rating != ranked[j].Rating {
			return ranked[i].Rating > ranked[j].Rating
		}
		return ranked[i].ID < ranked[j].ID
	})
	return ranked
}

// backfill widens an under-filled result with a random sample of the
// catalog: up to maxBackfillDraws entries drawn without replacement, every
// one not already present appended. The sample size, not the result size,
// bounds the loop, so the widened result can exceed minBeforeBackfill.
func (s *Service) backfill(results []*domain.Anime, catalog []*domain.Anime) []*domain.Anime {
	seen := make(map[int64]bool, len(results))
	for _, a := range results {
		seen[a.ID] = true
	}

	draws := maxBackfillDraws
	if len(catalog) < draws {
		draws = len(catalog)
	}

	s.rngMu.Lock()
	perm := s.rng.Perm(len(catalog))
	s.rngMu.Unlock()

	for _, idx := range perm[:draws] {
		pick := catalog[idx]
		if seen[pick.ID] {
			continue
		}
		seen[pick.ID] = true
		results = append(results, pick)
	}
	return results
}
