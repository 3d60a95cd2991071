package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/vibegame/pixey-backend/internal/logger"
	"github.com/vibegame/pixey-backend/internal/models"
	"github.com/vibegame/pixey-backend/internal/spl"
)

var (
	// ErrInvalidWalletAddress is returned for inputs that do not parse
	// as a Solana public key.
	ErrInvalidWalletAddress = errors.New("invalid wallet address")

	// ErrInvalidChallenge is returned when the signed message does not
	// match a pending nonce-bound challenge.
	ErrInvalidChallenge = errors.New("invalid or expired login challenge")

	// ErrInvalidSignature is returned when the signature does not verify
	// against the wallet's key.
	ErrInvalidSignature = errors.New("invalid signature")

	// ErrInsufficientSOL is returned when a wallet without an account
	// holds less than the minimum SOL required to create one.
	ErrInsufficientSOL = errors.New("insufficient SOL balance to create an account")
)

// ChallengeStore issues and consumes one-shot login nonces.
type ChallengeStore interface {
	Issue(ctx context.Context, walletAddress string) (string, error)
	Consume(ctx context.Context, walletAddress string) (string, bool, error)
}

// UserReader looks up users by wallet.
type UserReader interface {
	GetByWallet(ctx context.Context, walletAddress string) (*models.UserDB, error)
}

// UserAuthWriter creates users and records login signatures.
type UserAuthWriter interface {
	Create(ctx context.Context, walletAddress, username string, freePixels int64) (*models.UserDB, error)
	UpdateAuth(ctx context.Context, walletAddress, message, signature string) error
}

// TokenGenerator mints bearer tokens for authenticated wallets.
type TokenGenerator interface {
	Generate(ctx context.Context, walletAddress string) (string, error)
}

// SolBalanceReader reads a wallet's SOL balance from the chain.
type SolBalanceReader interface {
	GetSolBalance(ctx context.Context, walletAddress string) (float64, error)
}

// AuthService handles challenge issuance and signature login. This is
// the only path that can create a user apart from the explicit
// user-creation endpoint.
type AuthService struct {
	challenges ChallengeStore
	reader     UserReader
	writer     UserAuthWriter
	jwt        TokenGenerator
	chain      SolBalanceReader
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(
	challenges ChallengeStore,
	reader UserReader,
	writer UserAuthWriter,
	jwt TokenGenerator,
	chain SolBalanceReader,
) *AuthService {
	return &AuthService{
		challenges: challenges,
		reader:     reader,
		writer:     writer,
		jwt:        jwt,
		chain:      chain,
	}
}

// challengeMessage builds the full text the wallet must sign.
func challengeMessage(nonce string) string {
	return fmt.Sprintf("%s\nNonce: %s", models.ChallengeDomain, nonce)
}

// Challenge issues a fresh nonce-bound challenge for the wallet.
func (svc *AuthService) Challenge(ctx context.Context, walletAddress string) (string, error) {
	if !spl.IsValidWalletAddress(walletAddress) {
		return "", ErrInvalidWalletAddress
	}

	nonce, err := svc.challenges.Issue(ctx, walletAddress)
	if err != nil {
		logger.Log.Errorw("failed to issue login nonce", "wallet", walletAddress, "err", err)
		return "", err
	}

	return challengeMessage(nonce), nil
}

// Login verifies the signed challenge, creates the user on first login
// (with the starting free-pixel grant, once the wallet holds enough
// SOL), and returns a bearer token.
func (svc *AuthService) Login(ctx context.Context, walletAddress, message, signature string) (string, *models.UserDB, bool, error) {
	nonce, found, err := svc.challenges.Consume(ctx, walletAddress)
	if err != nil {
		logger.Log.Errorw("failed to consume login nonce", "wallet", walletAddress, "err", err)
		return "", nil, false, err
	}
	if !found || message != challengeMessage(nonce) {
		return "", nil, false, ErrInvalidChallenge
	}

	if err := spl.VerifyWalletSignature(walletAddress, message, signature); err != nil {
		logger.Log.Errorw("signature verification failed", "wallet", walletAddress, "err", err)
		if errors.Is(err, spl.ErrInvalidWalletAddress) {
			return "", nil, false, ErrInvalidWalletAddress
		}
		return "", nil, false, ErrInvalidSignature
	}

	user, err := svc.reader.GetByWallet(ctx, walletAddress)
	if err != nil {
		logger.Log.Errorw("failed to look up user", "wallet", walletAddress, "err", err)
		return "", nil, false, err
	}

	isNew := user == nil
	if isNew {
		balance, err := svc.chain.GetSolBalance(ctx, walletAddress)
		if err != nil {
			logger.Log.Errorw("failed to check SOL balance", "wallet", walletAddress, "err", err)
			return "", nil, false, err
		}
		if balance < models.MinCreateSOL {
			return "", nil, false, ErrInsufficientSOL
		}

		user, err = svc.writer.Create(ctx, walletAddress, walletAddress, models.FreePixelsPerUser)
		if err != nil {
			logger.Log.Errorw("failed to create user", "wallet", walletAddress, "err", err)
			return "", nil, false, err
		}
		if user == nil {
			// Lost a concurrent create; the row exists now.
			user, err = svc.reader.GetByWallet(ctx, walletAddress)
			if err != nil {
				return "", nil, false, err
			}
			isNew = false
		}
	}

	if err := svc.writer.UpdateAuth(ctx, walletAddress, message, signature); err != nil {
		logger.Log.Errorw("failed to record login", "wallet", walletAddress, "err", err)
		return "", nil, false, err
	}

	token, err := svc.jwt.Generate(ctx, walletAddress)
	if err != nil {
		logger.Log.Errorw("failed to generate token", "wallet", walletAddress, "err", err)
		return "", nil, false, err
	}

	return token, user, isNew, nil
}
