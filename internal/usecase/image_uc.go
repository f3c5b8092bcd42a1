package usecase

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/bunny00908/anime/internal/domain/model"
	"github.com/bunny00908/anime/internal/domain/ports/adapter"
	"github.com/bunny00908/anime/internal/infra/logging"
	"github.com/bunny00908/anime/internal/infra/metrics"
)

// Compile-time check
var _ ImageUseCase = (*imageUC)(nil)

// ImageUseCase resolves one image per call. Resolve never fails: every error
// path degrades to a bundled fallback entry.
type ImageUseCase interface {
	Resolve(ctx context.Context) model.Image
	Fallback() model.Image
}

// searchTerms is the fixed query pool; one is drawn uniformly per request.
var searchTerms = []string{
	"anime girl", "manga art", "japanese art", "anime character",
	"kawaii", "otaku", "anime style", "manga girl", "japanese illustration",
	"anime artwork", "cosplay", "japanese culture", "anime portrait",
	"manga style", "japanese animation", "anime aesthetic", "waifu",
	"anime wallpaper", "manga character", "japanese anime",
}

// fallbackImages are served whenever the remote search fails or comes back empty.
var fallbackImages = []model.Image{
	{
		URL:          "https://images.pexels.com/photos/1591447/pexels-photo-1591447.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
		Photographer: "Pexels",
		Alt:          "Beautiful anime-style artwork",
	},
	{
		URL:          "https://images.pexels.com/photos/1591373/pexels-photo-1591373.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
		Photographer: "Pexels",
		Alt:          "Japanese art style illustration",
	},
	{
		URL:          "https://images.pexels.com/photos/1591056/pexels-photo-1591056.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
		Photographer: "Pexels",
		Alt:          "Manga-style character art",
	},
	{
		URL:          "https://images.pexels.com/photos/2693212/pexels-photo-2693212.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
		Photographer: "Pexels",
		Alt:          "Anime aesthetic wallpaper",
	},
}

const (
	minPage    = 1
	maxPage    = 10
	genericAlt = "Anime-style image"
)

type imageUC struct {
	search adapter.ImageSearchAdapter
	log    *zerolog.Logger

	// rng is guarded because update workers resolve concurrently.
	mu  sync.Mutex
	rng *rand.Rand
}

// NewImageUseCase builds the resolver. rng may be nil; pass a seeded source
// in tests for deterministic draws.
func NewImageUseCase(search adapter.ImageSearchAdapter, rng *rand.Rand, logger *zerolog.Logger) *imageUC {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &imageUC{search: search, log: logger, rng: rng}
}

func (u *imageUC) intn(n int) int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.rng.Intn(n)
}

// Resolve picks a random term and page, runs one search, and maps one random
// result to an Image. No retry: a single failed attempt degrades to fallback.
func (u *imageUC) Resolve(ctx context.Context) model.Image {
	log := logging.With(ctx, u.log)
	defer logging.TraceDuration(log, "ImageUC.Resolve")()

	term := searchTerms[u.intn(len(searchTerms))]
	page := minPage + u.intn(maxPage-minPage+1)
	log.Info().Str("term", term).Int("page", page).Msg("searching for image")

	start := time.Now()
	photos, err := u.search.Search(ctx, term, page)
	metrics.ObserveSearch(time.Since(start), err == nil)
	if err != nil {
		log.Error().Err(err).Str("term", term).Msg("image search failed, serving fallback")
		metrics.IncImageResolved("fallback")
		return u.Fallback()
	}
	if len(photos) == 0 {
		log.Warn().Str("term", term).Int("page", page).Msg("no photos in search response, serving fallback")
		metrics.IncImageResolved("fallback")
		return u.Fallback()
	}

	img := photos[u.intn(len(photos))]
	if img.IsZero() {
		metrics.IncImageResolved("fallback")
		return u.Fallback()
	}
	if img.Alt == "" {
		img.Alt = genericAlt
	}
	log.Info().Str("photographer", img.Photographer).Msg("image resolved")
	metrics.IncImageResolved("pexels")
	return img
}

// Fallback returns one random entry from the bundled set.
func (u *imageUC) Fallback() model.Image {
	return fallbackImages[u.intn(len(fallbackImages))]
}
