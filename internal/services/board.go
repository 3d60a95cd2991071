package services

import (
	"context"

	"github.com/vibegame/pixey-backend/internal/logger"
	"github.com/vibegame/pixey-backend/internal/models"
)

// PixelLister serves the full board snapshot.
type PixelLister interface {
	ListAll(ctx context.Context) ([]models.PixelDB, error)
}

// SettingsCache is a read-through cache over the settings singleton.
type SettingsCache interface {
	Get(ctx context.Context) (*models.GameSettingsDB, error)
	Set(ctx context.Context, settings *models.GameSettingsDB) error
}

// LeaderboardReader serves the ranked leaderboard view.
type LeaderboardReader interface {
	Top(ctx context.Context, limit int) ([]models.LeaderboardEntryDB, error)
}

// ArtworkLister serves the featured-artworks gallery.
type ArtworkLister interface {
	ListFeatured(ctx context.Context) ([]models.FeaturedArtworkDB, error)
}

// BoardService serves the read-only game views: the pixel snapshot,
// current settings, leaderboard, and gallery.
type BoardService struct {
	pixels      PixelLister
	settings    SettingsReader
	cache       SettingsCache
	leaderboard LeaderboardReader
	artworks    ArtworkLister
}

// NewBoardService creates a new BoardService instance.
func NewBoardService(
	pixels PixelLister,
	settings SettingsReader,
	cache SettingsCache,
	leaderboard LeaderboardReader,
	artworks ArtworkLister,
) *BoardService {
	return &BoardService{
		pixels:      pixels,
		settings:    settings,
		cache:       cache,
		leaderboard: leaderboard,
		artworks:    artworks,
	}
}

// ListPixels returns every placed pixel.
func (svc *BoardService) ListPixels(ctx context.Context) ([]models.PixelDB, error) {
	return svc.pixels.ListAll(ctx)
}

// GetSettings returns current game settings, reading through the cache.
// Cache failures fall back to the database.
func (svc *BoardService) GetSettings(ctx context.Context) (*models.GameSettingsDB, error) {
	cached, err := svc.cache.Get(ctx)
	if err == nil && cached != nil {
		return cached, nil
	}

	settings, err := svc.settings.Get(ctx)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		return nil, ErrSettingsMissing
	}

	if err := svc.cache.Set(ctx, settings); err != nil {
		logger.Log.Errorw("failed to cache settings", "err", err)
	}

	return settings, nil
}

// Leaderboard returns the top-ranked players.
func (svc *BoardService) Leaderboard(ctx context.Context, limit int) ([]models.LeaderboardEntryDB, error) {
	return svc.leaderboard.Top(ctx, limit)
}

// FeaturedArtworks returns the curated gallery.
func (svc *BoardService) FeaturedArtworks(ctx context.Context) ([]models.FeaturedArtworkDB, error) {
	return svc.artworks.ListFeatured(ctx)
}
