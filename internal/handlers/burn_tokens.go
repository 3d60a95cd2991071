package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/vibegame/pixey-backend/internal/logger"
	"github.com/vibegame/pixey-backend/internal/middlewares"
	"github.com/vibegame/pixey-backend/internal/services"
)

// BurnVerifier defines the interface that the burn service must implement.
type BurnVerifier interface {
	VerifyBurn(ctx context.Context, walletAddress, signature string, claimedAmount int64) (*services.BurnResult, error)
}

// BurnRequest represents the JSON body for crediting a token burn
// swagger:model BurnRequest
type BurnRequest struct {
	// Wallet that performed the burn; must match the bearer token when set
	WalletAddress string `json:"wallet_address,omitempty"`

	// Claimed number of tokens burned
	// required: true
	TokenAmount int64 `json:"token_amount"`

	// Base58 transaction signature of the burn
	// required: true
	TransactionSignature string `json:"transaction_signature"`
}

// NewBurnTokensHandler returns an HTTP handler that verifies an on-chain
// burn and credits pixels.
// @Summary Verify token burn
// @Description Verify an on-chain burn of the game token and credit pixel balance 1:1
// @Tags burns
// @Accept json
// @Produce json
// @Param request body handlers.BurnRequest true "Burn Request"
// @Success 200 {object} handlers.Envelope "Burn summary"
// @Failure 400 {object} handlers.Envelope "Invalid or unmatched burn"
// @Failure 401 {object} handlers.Envelope "Unauthorized"
// @Failure 409 {object} handlers.Envelope "Burn already processed"
// @Failure 502 {object} handlers.Envelope "Chain RPC unavailable"
// @Router /api/burns/verify [post]
// @Security BearerAuth
func NewBurnTokensHandler(svc BurnVerifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		wallet := middlewares.WalletFromContext(ctx)

		var req BurnRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if req.WalletAddress != "" && req.WalletAddress != wallet {
			writeError(w, http.StatusBadRequest, "Wallet address does not match the authenticated wallet")
			return
		}

		result, err := svc.VerifyBurn(ctx, wallet, req.TransactionSignature, req.TokenAmount)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidBurnAmount):
				writeError(w, http.StatusBadRequest, "Invalid burn amount")
			case errors.Is(err, services.ErrInvalidWalletAddress):
				writeError(w, http.StatusBadRequest, "Invalid wallet address")
			case errors.Is(err, services.ErrTransactionNotFound):
				writeError(w, http.StatusBadRequest, "Transaction not found")
			case errors.Is(err, services.ErrTransactionFailed):
				writeError(w, http.StatusBadRequest, "Transaction failed on chain")
			case errors.Is(err, services.ErrNoBurnFound):
				writeError(w, http.StatusBadRequest, "No matching burn instruction in transaction")
			case errors.Is(err, services.ErrBurnTooSmall):
				writeError(w, http.StatusBadRequest, "Burn amount below minimum")
			case errors.Is(err, services.ErrBurnAlreadyProcessed):
				writeError(w, http.StatusConflict, "Burn transaction already processed")
			case errors.Is(err, services.ErrChainUnavailable):
				logger.Log.Errorw("chain RPC unavailable", "signature", req.TransactionSignature, "err", err)
				writeError(w, http.StatusBadGateway, "Failed to verify transaction on chain")
			default:
				logger.Log.Errorw("burn verification failed", "wallet", wallet, "signature", req.TransactionSignature, "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeSuccess(w, http.StatusOK, result)
	}
}
