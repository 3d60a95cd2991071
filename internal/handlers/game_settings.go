package handlers

import (
	"context"
	"net/http"

	"github.com/vibegame/pixey-backend/internal/logger"
	"github.com/vibegame/pixey-backend/internal/models"
)

// SettingsGetter defines the interface that the settings service must
// implement.
type SettingsGetter interface {
	GetSettings(ctx context.Context) (*models.GameSettingsDB, error)
}

// NewGameSettingsHandler returns an HTTP handler that serves current
// game settings.
// @Summary Game settings
// @Description Return the current stage, board dimensions, and cumulative burn total
// @Tags game
// @Produce json
// @Success 200 {object} handlers.Envelope "Game settings"
// @Router /api/game/settings [get]
func NewGameSettingsHandler(svc SettingsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		settings, err := svc.GetSettings(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to get game settings", "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeSuccess(w, http.StatusOK, settings)
	}
}
