package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/vibegame/pixey-backend/internal/logger"
	"github.com/vibegame/pixey-backend/internal/models"
	"github.com/vibegame/pixey-backend/internal/services"
)

// UserGetter defines the interface that the user lookup service must
// implement.
type UserGetter interface {
	GetUser(ctx context.Context, walletAddress string) (*models.UserDB, error)
}

// UserCreator defines the interface that the user creation service must
// implement.
type UserCreator interface {
	GetOrCreateUser(ctx context.Context, walletAddress string) (*models.UserDB, bool, error)
}

// CreateUserRequest represents the JSON body for creating a user
// swagger:model CreateUserRequest
type CreateUserRequest struct {
	// Solana wallet address (base58)
	// required: true
	WalletAddress string `json:"wallet_address"`
}

// NewGetUserHandler returns an HTTP handler for fetching a user by wallet.
// @Summary Get user
// @Description Return the user account for a wallet address
// @Tags users
// @Produce json
// @Param wallet path string true "Wallet address"
// @Success 200 {object} handlers.Envelope "User"
// @Failure 400 {object} handlers.Envelope "Invalid wallet address"
// @Failure 404 {object} handlers.Envelope "User not found"
// @Router /api/users/{wallet} [get]
func NewGetUserHandler(svc UserGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		wallet := chi.URLParam(r, "wallet")

		user, err := svc.GetUser(r.Context(), wallet)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidWalletAddress):
				writeError(w, http.StatusBadRequest, "Invalid wallet address")
			case errors.Is(err, services.ErrUserNotFound):
				writeError(w, http.StatusNotFound, "User not found")
			default:
				logger.Log.Errorw("failed to get user", "wallet", wallet, "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeSuccess(w, http.StatusOK, user)
	}
}

// NewCreateUserHandler returns an HTTP handler that creates a user
// account if it does not exist.
// @Summary Create user
// @Description Create the account for a wallet with the starting free-pixel grant; returns the existing account when already present
// @Tags users
// @Accept json
// @Produce json
// @Param request body handlers.CreateUserRequest true "Create User Request"
// @Success 200 {object} handlers.Envelope "Existing user"
// @Success 201 {object} handlers.Envelope "Created user"
// @Failure 400 {object} handlers.Envelope "Invalid wallet address"
// @Router /api/users [post]
func NewCreateUserHandler(svc UserCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateUserRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		user, created, err := svc.GetOrCreateUser(r.Context(), req.WalletAddress)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidWalletAddress):
				writeError(w, http.StatusBadRequest, "Invalid wallet address")
			default:
				logger.Log.Errorw("failed to create user", "wallet", req.WalletAddress, "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		status := http.StatusOK
		if created {
			status = http.StatusCreated
		}
		writeSuccess(w, status, user)
	}
}
