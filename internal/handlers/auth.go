package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/vibegame/pixey-backend/internal/logger"
	"github.com/vibegame/pixey-backend/internal/models"
	"github.com/vibegame/pixey-backend/internal/services"
)

// Challenger defines the interface that the challenge service must implement.
type Challenger interface {
	Challenge(ctx context.Context, walletAddress string) (string, error)
}

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, walletAddress, message, signature string) (string, *models.UserDB, bool, error)
}

// ChallengeRequest represents the JSON body for requesting a login challenge
// swagger:model ChallengeRequest
type ChallengeRequest struct {
	// Solana wallet address (base58)
	// required: true
	WalletAddress string `json:"wallet_address"`
}

// ChallengeResponse carries the message the wallet must sign
// swagger:model ChallengeResponse
type ChallengeResponse struct {
	Message string `json:"message"`
}

// LoginRequest represents the JSON body for signature login
// swagger:model LoginRequest
type LoginRequest struct {
	// Solana wallet address (base58)
	// required: true
	WalletAddress string `json:"wallet_address"`

	// The exact challenge message that was signed
	// required: true
	Message string `json:"message"`

	// Base58-encoded ed25519 signature of the message
	// required: true
	Signature string `json:"signature"`
}

// LoginResponse represents a successful login
// swagger:model LoginResponse
type LoginResponse struct {
	Token     string         `json:"token"`
	User      *models.UserDB `json:"user"`
	IsNewUser bool           `json:"is_new_user"`
}

// NewChallengeHandler returns an HTTP handler that issues a login challenge.
// @Summary Request login challenge
// @Description Issue a fresh nonce-bound message for the wallet to sign
// @Tags auth
// @Accept json
// @Produce json
// @Param request body handlers.ChallengeRequest true "Challenge Request"
// @Success 200 {object} handlers.Envelope "Challenge message"
// @Failure 400 {object} handlers.Envelope "Invalid wallet address"
// @Router /api/auth/challenge [post]
func NewChallengeHandler(svc Challenger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ChallengeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		message, err := svc.Challenge(r.Context(), req.WalletAddress)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidWalletAddress):
				writeError(w, http.StatusBadRequest, "Invalid wallet address")
			default:
				logger.Log.Errorw("failed to issue challenge", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeSuccess(w, http.StatusOK, ChallengeResponse{Message: message})
	}
}

// NewLoginHandler returns an HTTP handler for signature login.
// @Summary Wallet login
// @Description Verify the signed challenge and return a JWT. Creates the account on first login.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body handlers.LoginRequest true "Login Request"
// @Success 200 {object} handlers.Envelope "JWT token and user"
// @Failure 400 {object} handlers.Envelope "Invalid request"
// @Failure 401 {object} handlers.Envelope "Invalid signature or challenge"
// @Router /api/auth/login [post]
func NewLoginHandler(svc Loginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		token, user, isNew, err := svc.Login(r.Context(), req.WalletAddress, req.Message, req.Signature)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidWalletAddress):
				writeError(w, http.StatusBadRequest, "Invalid wallet address")
			case errors.Is(err, services.ErrInvalidChallenge),
				errors.Is(err, services.ErrInvalidSignature):
				writeError(w, http.StatusUnauthorized, "Invalid signature or challenge")
			case errors.Is(err, services.ErrInsufficientSOL):
				writeError(w, http.StatusBadRequest, "Insufficient SOL balance to create an account")
			default:
				logger.Log.Errorw("login failed", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeSuccess(w, http.StatusOK, LoginResponse{
			Token:     token,
			User:      user,
			IsNewUser: isNew,
		})
	}
}
