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

// ProfileUpdater defines the interface that the profile service must
// implement.
type ProfileUpdater interface {
	UpdateProfile(ctx context.Context, walletAddress, username string, profilePicture *string) (*models.UserDB, error)
}

// UpdateProfileRequest represents the JSON body for updating a profile
// swagger:model UpdateProfileRequest
type UpdateProfileRequest struct {
	// Display name
	// required: true
	Username string `json:"username"`

	// Profile picture URL
	ProfilePicture *string `json:"profile_picture,omitempty"`
}

// NewUpdateProfileHandler returns an HTTP handler for updating the
// caller's profile.
// @Summary Update profile
// @Description Update the authenticated user's username and profile picture
// @Tags users
// @Accept json
// @Produce json
// @Param request body handlers.UpdateProfileRequest true "Profile Request"
// @Success 200 {object} handlers.Envelope "Updated user"
// @Failure 400 {object} handlers.Envelope "Invalid username"
// @Failure 401 {object} handlers.Envelope "Unauthorized"
// @Failure 404 {object} handlers.Envelope "User not found"
// @Failure 409 {object} handlers.Envelope "Username taken"
// @Router /api/users/profile [put]
// @Security BearerAuth
func NewUpdateProfileHandler(svc ProfileUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		wallet := middlewares.WalletFromContext(ctx)

		var req UpdateProfileRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		user, err := svc.UpdateProfile(ctx, wallet, req.Username, req.ProfilePicture)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidUsername):
				writeError(w, http.StatusBadRequest, "Invalid username")
			case errors.Is(err, services.ErrUserNotFound):
				writeError(w, http.StatusNotFound, "User not found")
			case errors.Is(err, services.ErrUsernameTaken):
				writeError(w, http.StatusConflict, "Username already taken")
			default:
				logger.Log.Errorw("failed to update profile", "wallet", wallet, "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeSuccess(w, http.StatusOK, user)
	}
}
