package facades

import (
	"context"
	"errors"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/vibegame/pixey-backend/internal/logger"
)

var (
	// ErrTransactionNotFound is returned when the RPC node does not know
	// the signature at confirmed commitment.
	ErrTransactionNotFound = errors.New("transaction not found on chain")

	// ErrInvalidSignature is returned for signatures that do not parse.
	ErrInvalidSignature = errors.New("invalid transaction signature")
)

// ChainTransaction is the subset of a fetched transaction the burn
// verifier needs.
type ChainTransaction struct {
	Failed  bool // true when meta.err is present
	Message *solana.Message
}

// SolanaFacade wraps the chain RPC endpoint. Calls are never retried;
// failures surface to the caller.
type SolanaFacade struct {
	client *rpc.Client
}

// NewSolanaFacade creates a facade for the given RPC endpoint URL.
func NewSolanaFacade(endpoint string) *SolanaFacade {
	return &SolanaFacade{client: rpc.New(endpoint)}
}

// GetTransaction fetches a confirmed transaction by base58 signature.
func (f *SolanaFacade) GetTransaction(ctx context.Context, signature string) (*ChainTransaction, error) {
	sig, err := solana.SignatureFromBase58(signature)
	if err != nil {
		return nil, ErrInvalidSignature
	}

	maxVersion := uint64(0)
	out, err := f.client.GetTransaction(ctx, sig, &rpc.GetTransactionOpts{
		Encoding:                       solana.EncodingBase64,
		Commitment:                     rpc.CommitmentConfirmed,
		MaxSupportedTransactionVersion: &maxVersion,
	})
	if err != nil {
		logger.Log.Errorw("failed to fetch transaction via RPC", "signature", signature, "error", err)
		return nil, err
	}
	if out == nil || out.Transaction == nil {
		return nil, ErrTransactionNotFound
	}

	tx, err := out.Transaction.GetTransaction()
	if err != nil {
		logger.Log.Errorw("failed to decode fetched transaction", "signature", signature, "error", err)
		return nil, err
	}

	return &ChainTransaction{
		Failed:  out.Meta != nil && out.Meta.Err != nil,
		Message: &tx.Message,
	}, nil
}

// GetSolBalance returns the wallet's balance in SOL at confirmed
// commitment.
func (f *SolanaFacade) GetSolBalance(ctx context.Context, walletAddress string) (float64, error) {
	pubkey, err := solana.PublicKeyFromBase58(walletAddress)
	if err != nil {
		return 0, err
	}

	out, err := f.client.GetBalance(ctx, pubkey, rpc.CommitmentConfirmed)
	if err != nil {
		logger.Log.Errorw("failed to fetch SOL balance via RPC", "wallet", walletAddress, "error", err)
		return 0, err
	}

	return float64(out.Value) / float64(solana.LAMPORTS_PER_SOL), nil
}
