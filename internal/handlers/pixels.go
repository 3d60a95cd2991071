package handlers

import (
	"context"
	"net/http"

	"github.com/vibegame/pixey-backend/internal/logger"
	"github.com/vibegame/pixey-backend/internal/models"
)

// BoardReader defines the interface that the board snapshot service must
// implement.
type BoardReader interface {
	ListPixels(ctx context.Context) ([]models.PixelDB, error)
}

// NewListPixelsHandler returns an HTTP handler that serves the board
// snapshot.
// @Summary List pixels
// @Description Return every placed pixel on the board
// @Tags pixels
// @Produce json
// @Success 200 {object} handlers.Envelope "Pixel list"
// @Router /api/pixels [get]
func NewListPixelsHandler(svc BoardReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pixels, err := svc.ListPixels(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to list pixels", "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		if pixels == nil {
			pixels = []models.PixelDB{}
		}

		writeSuccess(w, http.StatusOK, pixels)
	}
}
