package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gagliardetto/solana-go"
	"github.com/vibegame/pixey-backend/internal/facades"
	"github.com/vibegame/pixey-backend/internal/logger"
	"github.com/vibegame/pixey-backend/internal/models"
	"github.com/vibegame/pixey-backend/internal/spl"
)

var (
	// ErrInvalidBurnAmount is returned when the claimed amount is outside
	// the accepted range.
	ErrInvalidBurnAmount = errors.New("invalid burn amount")

	// ErrTransactionNotFound is returned when the signature is unknown to
	// the chain at confirmed commitment.
	ErrTransactionNotFound = errors.New("transaction not found on chain")

	// ErrTransactionFailed is returned for on-chain transactions that
	// executed with an error.
	ErrTransactionFailed = errors.New("transaction failed on chain")

	// ErrNoBurnFound is returned when the transaction carries no burn of
	// the game token by the caller's wallet.
	ErrNoBurnFound = errors.New("no matching burn instruction in transaction")

	// ErrBurnTooSmall is returned for burns below the minimum credited
	// amount.
	ErrBurnTooSmall = errors.New("burn amount below minimum")

	// ErrBurnAlreadyProcessed is returned when the signature was already
	// credited.
	ErrBurnAlreadyProcessed = errors.New("burn transaction already processed")

	// ErrChainUnavailable is returned when the RPC node cannot be reached
	// or rejects the request.
	ErrChainUnavailable = errors.New("chain RPC unavailable")
)

// ChainReader fetches confirmed transactions from the chain.
type ChainReader interface {
	GetTransaction(ctx context.Context, signature string) (*facades.ChainTransaction, error)
}

// BurnRecorder inserts burn rows, reporting whether the signature was new.
type BurnRecorder interface {
	Insert(ctx context.Context, burn models.BurnTransactionDB) (bool, error)
}

// SettingsWriter locks and updates the settings singleton.
type SettingsWriter interface {
	GetForUpdate(ctx context.Context) (*models.GameSettingsDB, error)
	Update(ctx context.Context, stage int, boardSize int, totalBurned int64) error
}

// SettingsInvalidator drops the cached settings snapshot.
type SettingsInvalidator interface {
	Invalidate(ctx context.Context) error
}

// BurnResult summarizes one credited burn.
type BurnResult struct {
	TokensBurned  int64 `json:"tokens_burned"`
	PixelsAwarded int64 `json:"pixels_awarded"`
	Remaining     int64 `json:"remaining_pixels"`
	StageAdvanced bool  `json:"stage_advanced"`
	CurrentStage  int   `json:"current_stage"`
	BoardSize     int   `json:"board_size"`
}

// BurnService verifies on-chain token burns and credits pixel balances
// 1:1. The transaction signature is the idempotency key: each signature
// credits at most once.
type BurnService struct {
	chain         ChainReader
	burns         BurnRecorder
	balances      BalanceWriter
	settings      SettingsWriter
	cache         SettingsInvalidator
	notifications NotificationInserter
	events        EventWriter
	mint          solana.PublicKey
}

// NewBurnService creates a new BurnService instance for the given game
// token mint.
func NewBurnService(
	chain ChainReader,
	burns BurnRecorder,
	balances BalanceWriter,
	settings SettingsWriter,
	cache SettingsInvalidator,
	notifications NotificationInserter,
	events EventWriter,
	mint solana.PublicKey,
) *BurnService {
	return &BurnService{
		chain:         chain,
		burns:         burns,
		balances:      balances,
		settings:      settings,
		cache:         cache,
		notifications: notifications,
		events:        events,
		mint:          mint,
	}
}

// VerifyBurn checks the claimed burn against the chain and, on success,
// records it, credits the wallet, and advances the board stage when the
// cumulative total crosses a threshold. The decoded on-chain amount is
// authoritative; the claimed amount only bounds the request.
func (svc *BurnService) VerifyBurn(ctx context.Context, walletAddress, signature string, claimedAmount int64) (*BurnResult, error) {
	if claimedAmount <= 0 || claimedAmount > models.MaxBurnAmount {
		return nil, ErrInvalidBurnAmount
	}
	if !spl.IsValidWalletAddress(walletAddress) {
		return nil, ErrInvalidWalletAddress
	}

	tx, err := svc.chain.GetTransaction(ctx, signature)
	if err != nil {
		if errors.Is(err, facades.ErrTransactionNotFound) {
			return nil, ErrTransactionNotFound
		}
		if errors.Is(err, facades.ErrInvalidSignature) {
			return nil, ErrTransactionNotFound
		}
		return nil, fmt.Errorf("%w: %w", ErrChainUnavailable, err)
	}
	if tx.Failed {
		return nil, ErrTransactionFailed
	}

	burn, err := spl.FindBurn(tx.Message)
	if err != nil {
		return nil, ErrNoBurnFound
	}
	if !burn.Mint.Equals(svc.mint) {
		return nil, ErrNoBurnFound
	}
	if burn.Authority.String() != walletAddress {
		return nil, ErrNoBurnFound
	}
	if burn.Amount < models.MinBurnRawUnits {
		return nil, ErrBurnTooSmall
	}

	amount := int64(burn.Amount)

	inserted, err := svc.burns.Insert(ctx, models.BurnTransactionDB{
		Signature:      signature,
		WalletAddress:  walletAddress,
		TokensBurned:   amount,
		PixelsReceived: amount,
		Status:         models.BurnStatusConfirmed,
	})
	if err != nil {
		return nil, err
	}
	if !inserted {
		return nil, ErrBurnAlreadyProcessed
	}

	remaining, err := svc.balances.AdjustBalance(ctx, walletAddress, amount, 0, amount)
	if err != nil {
		return nil, err
	}

	settings, err := svc.settings.GetForUpdate(ctx)
	if err != nil {
		return nil, err
	}

	newTotal := settings.TotalTokensBurned + amount
	stage := models.StageForTotalBurned(newTotal)
	advanced := stage.Stage > settings.CurrentStage

	boardSize := settings.BoardWidth
	currentStage := settings.CurrentStage
	if advanced {
		boardSize = stage.Size
		currentStage = stage.Stage
	}

	if err := svc.settings.Update(ctx, currentStage, boardSize, newTotal); err != nil {
		return nil, err
	}

	if advanced {
		if err := svc.cache.Invalidate(ctx); err != nil {
			logger.Log.Errorw("failed to invalidate settings cache", "err", err)
		}
	}

	svc.notifyBurn(ctx, walletAddress, amount, advanced, currentStage, boardSize)

	return &BurnResult{
		TokensBurned:  amount,
		PixelsAwarded: amount,
		Remaining:     remaining,
		StageAdvanced: advanced,
		CurrentStage:  currentStage,
		BoardSize:     boardSize,
	}, nil
}

// notifyBurn records the global burn notification (plus a stage one when
// the board grew) and publishes the event.
func (svc *BurnService) notifyBurn(ctx context.Context, walletAddress string, amount int64, advanced bool, stage, boardSize int) {
	data, _ := json.Marshal(map[string]any{
		"wallet_address": walletAddress,
		"tokens_burned":  amount,
	})

	message := fmt.Sprintf("%s burned %d tokens", walletAddress, amount)
	if _, err := svc.notifications.Insert(ctx, models.NotificationTokensBurned, message, data, models.GlobalRecipient); err != nil {
		logger.Log.Errorw("failed to insert burn notification", "wallet", walletAddress, "err", err)
	}

	if advanced {
		stageData, _ := json.Marshal(map[string]any{
			"new_stage":  stage,
			"board_size": boardSize,
		})
		stageMessage := fmt.Sprintf("The board reached stage %d and grew to %dx%d", stage, boardSize, boardSize)
		if _, err := svc.notifications.Insert(ctx, models.NotificationStageAdvanced, stageMessage, stageData, models.GlobalRecipient); err != nil {
			logger.Log.Errorw("failed to insert stage notification", "err", err)
		}
	}

	event := models.GameEvent{
		Type:          models.NotificationTokensBurned,
		WalletAddress: walletAddress,
		TokensBurned:  amount,
	}
	if advanced {
		event.NewStage = stage
		event.BoardSize = boardSize
	}
	publishGameEvent(ctx, svc.events, event)
}
