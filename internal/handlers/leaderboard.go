package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/vibegame/pixey-backend/internal/logger"
	"github.com/vibegame/pixey-backend/internal/models"
)

// Leaderboarder defines the interface that the leaderboard service must
// implement.
type Leaderboarder interface {
	Leaderboard(ctx context.Context, limit int) ([]models.LeaderboardEntryDB, error)
}

const defaultLeaderboardLimit = 50

// NewLeaderboardHandler returns an HTTP handler that serves the ranked
// leaderboard.
// @Summary Leaderboard
// @Description Return the top players by pixels placed and tokens burned
// @Tags game
// @Produce json
// @Param limit query int false "Maximum entries" default(50)
// @Success 200 {object} handlers.Envelope "Leaderboard entries"
// @Router /api/leaderboard [get]
func NewLeaderboardHandler(svc Leaderboarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := defaultLeaderboardLimit
		if raw := r.URL.Query().Get("limit"); raw != "" {
			if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 && parsed <= defaultLeaderboardLimit {
				limit = parsed
			}
		}

		entries, err := svc.Leaderboard(r.Context(), limit)
		if err != nil {
			logger.Log.Errorw("failed to get leaderboard", "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		if entries == nil {
			entries = []models.LeaderboardEntryDB{}
		}

		writeSuccess(w, http.StatusOK, entries)
	}
}
