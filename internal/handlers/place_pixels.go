package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/vibegame/pixey-backend/internal/logger"
	"github.com/vibegame/pixey-backend/internal/middlewares"
	"github.com/vibegame/pixey-backend/internal/models"
	"github.com/vibegame/pixey-backend/internal/services"
)

// BulkPixelPlacer defines the interface that the bulk placement service
// must implement.
type BulkPixelPlacer interface {
	PlacePixels(ctx context.Context, walletAddress string, pixels []models.IncomingPixel) (*services.PlaceResult, error)
}

// PlacePixelsRequest represents the JSON body for bulk placement
// swagger:model PlacePixelsRequest
type PlacePixelsRequest struct {
	// Pixels to place
	// required: true
	Pixels []PlacePixelRequest `json:"pixels"`
}

// NewPlacePixelsHandler returns an HTTP handler for bulk pixel placement.
// @Summary Place many pixels
// @Description Place a batch of pixels in one atomic transaction
// @Tags pixels
// @Accept json
// @Produce json
// @Param request body handlers.PlacePixelsRequest true "Pixel batch"
// @Success 200 {object} handlers.Envelope "Placement summary"
// @Failure 400 {object} handlers.Envelope "Invalid batch or insufficient credits"
// @Failure 401 {object} handlers.Envelope "Unauthorized"
// @Failure 413 {object} handlers.Envelope "Batch too large"
// @Router /api/pixels/place-bulk [post]
// @Security BearerAuth
func NewPlacePixelsHandler(svc BulkPixelPlacer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		wallet := middlewares.WalletFromContext(ctx)

		var req PlacePixelsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		pixels := make([]models.IncomingPixel, len(req.Pixels))
		for i, p := range req.Pixels {
			pixels[i] = models.IncomingPixel{X: p.X, Y: p.Y, Color: p.Color}
		}

		result, err := svc.PlacePixels(ctx, wallet, pixels)
		if err != nil {
			var insufficient *services.InsufficientPixelsError
			switch {
			case errors.Is(err, services.ErrTooManyPixels):
				writeError(w, http.StatusRequestEntityTooLarge, "Too many pixels in one request")
			case errors.Is(err, services.ErrNoValidPixels):
				writeError(w, http.StatusBadRequest, "No valid pixels in request")
			case errors.As(err, &insufficient):
				writeError(w, http.StatusBadRequest, insufficient.Error())
			default:
				logger.Log.Errorw("failed to place pixels", "wallet", wallet, "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeSuccess(w, http.StatusOK, result)
	}
}
