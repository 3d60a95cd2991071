package facades

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/vibegame/pixey-backend/internal/logger"
)

// SwapQuote is a quote from the swap aggregator for buying the game
// token.
type SwapQuote struct {
	InputMint  string          `json:"inputMint"`
	OutputMint string          `json:"outputMint"`
	InAmount   string          `json:"inAmount"`
	OutAmount  string          `json:"outAmount"`
	Raw        json.RawMessage `json:"-"`
}

// JupiterFacade wraps the Jupiter quote HTTP API. Treated as an opaque
// collaborator: no retries, failures surface to the caller.
type JupiterFacade struct {
	baseURL    string
	outputMint string
	httpClient *http.Client
}

// NewJupiterFacade creates a facade for the given aggregator base URL
// and the mint quotes are requested for.
func NewJupiterFacade(baseURL, outputMint string) *JupiterFacade {
	return &JupiterFacade{
		baseURL:    baseURL,
		outputMint: outputMint,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// Quote asks the aggregator how many game tokens the given lamport
// amount of SOL buys.
func (f *JupiterFacade) Quote(ctx context.Context, inputMint string, amountLamports uint64) (*SwapQuote, error) {
	q := url.Values{}
	q.Set("inputMint", inputMint)
	q.Set("outputMint", f.outputMint)
	q.Set("amount", strconv.FormatUint(amountLamports, 10))
	q.Set("slippageBps", "50")

	reqURL := fmt.Sprintf("%s/quote?%s", f.baseURL, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		logger.Log.Errorw("swap quote request failed", "url", reqURL, "error", err)
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		logger.Log.Errorw("swap quote request rejected", "url", reqURL, "status", resp.StatusCode)
		return nil, fmt.Errorf("swap aggregator returned status %d", resp.StatusCode)
	}

	var quote SwapQuote
	if err := json.Unmarshal(body, &quote); err != nil {
		return nil, err
	}
	quote.Raw = body

	return &quote, nil
}
