package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/vibegame/pixey-backend/internal/facades"
	"github.com/vibegame/pixey-backend/internal/logger"
)

// SwapQuoter defines the interface that the swap aggregator facade must
// implement.
type SwapQuoter interface {
	Quote(ctx context.Context, inputMint string, amountLamports uint64) (*facades.SwapQuote, error)
}

// wrapped SOL mint, the default quote input
const solMint = "So11111111111111111111111111111111111111112"

// NewSwapQuoteHandler returns an HTTP handler that proxies swap quotes
// for buying the game token.
// @Summary Swap quote
// @Description Return an aggregator quote for buying the game token with SOL
// @Tags game
// @Produce json
// @Param amount query int true "Input amount in lamports"
// @Param inputMint query string false "Input token mint" default(So11111111111111111111111111111111111111112)
// @Success 200 {object} handlers.Envelope "Quote"
// @Failure 400 {object} handlers.Envelope "Invalid amount"
// @Failure 502 {object} handlers.Envelope "Aggregator unavailable"
// @Router /api/swap/quote [get]
func NewSwapQuoteHandler(svc SwapQuoter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		amount, err := strconv.ParseUint(r.URL.Query().Get("amount"), 10, 64)
		if err != nil || amount == 0 {
			writeError(w, http.StatusBadRequest, "Invalid amount")
			return
		}

		inputMint := r.URL.Query().Get("inputMint")
		if inputMint == "" {
			inputMint = solMint
		}

		quote, err := svc.Quote(r.Context(), inputMint, amount)
		if err != nil {
			logger.Log.Errorw("failed to fetch swap quote", "err", err)
			writeError(w, http.StatusBadGateway, "Swap aggregator unavailable")
			return
		}

		writeSuccess(w, http.StatusOK, quote)
	}
}
