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

// PixelPlacer defines the interface that the single-pixel placement
// service must implement.
type PixelPlacer interface {
	PlacePixel(ctx context.Context, walletAddress string, pixel models.IncomingPixel) (*services.PlaceResult, error)
}

// PlacePixelRequest represents the JSON body for placing one pixel
// swagger:model PlacePixelRequest
type PlacePixelRequest struct {
	// X coordinate
	// required: true
	X int `json:"x"`

	// Y coordinate
	// required: true
	Y int `json:"y"`

	// Hex color, #RRGGBB
	// required: true
	// default: #FF0000
	Color string `json:"color"`
}

// NewPlacePixelHandler returns an HTTP handler for placing a single pixel.
// @Summary Place one pixel
// @Description Place or repaint one pixel, debiting credits (1 new, 2 overwrite)
// @Tags pixels
// @Accept json
// @Produce json
// @Param request body handlers.PlacePixelRequest true "Pixel"
// @Success 200 {object} handlers.Envelope "Placement summary"
// @Failure 400 {object} handlers.Envelope "Invalid pixel or insufficient credits"
// @Failure 401 {object} handlers.Envelope "Unauthorized"
// @Router /api/pixels/place [post]
// @Security BearerAuth
func NewPlacePixelHandler(svc PixelPlacer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		wallet := middlewares.WalletFromContext(ctx)

		var req PlacePixelRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		result, err := svc.PlacePixel(ctx, wallet, models.IncomingPixel{X: req.X, Y: req.Y, Color: req.Color})
		if err != nil {
			var insufficient *services.InsufficientPixelsError
			switch {
			case errors.Is(err, services.ErrNoValidPixels):
				writeError(w, http.StatusBadRequest, "Invalid pixel coordinates or color")
			case errors.As(err, &insufficient):
				writeError(w, http.StatusBadRequest, insufficient.Error())
			default:
				logger.Log.Errorw("failed to place pixel", "wallet", wallet, "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeSuccess(w, http.StatusOK, result)
	}
}
