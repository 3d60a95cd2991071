package handlers

import (
	"context"
	"net/http"

	"github.com/vibegame/pixey-backend/internal/logger"
	"github.com/vibegame/pixey-backend/internal/models"
)

// ArtworkReader defines the interface that the gallery service must
// implement.
type ArtworkReader interface {
	FeaturedArtworks(ctx context.Context) ([]models.FeaturedArtworkDB, error)
}

// NewFeaturedArtworksHandler returns an HTTP handler that serves the
// curated gallery.
// @Summary Featured artworks
// @Description Return the curated featured-artworks gallery
// @Tags game
// @Produce json
// @Success 200 {object} handlers.Envelope "Artworks"
// @Router /api/artworks [get]
func NewFeaturedArtworksHandler(svc ArtworkReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		artworks, err := svc.FeaturedArtworks(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to list artworks", "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		if artworks == nil {
			artworks = []models.FeaturedArtworkDB{}
		}

		writeSuccess(w, http.StatusOK, artworks)
	}
}
