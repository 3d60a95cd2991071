package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/vibegame/pixey-backend/internal/logger"
	"github.com/vibegame/pixey-backend/internal/models"
)

var (
	// ErrNoValidPixels is returned when sanitization drops the entire
	// batch.
	ErrNoValidPixels = errors.New("no valid pixels in request")

	// ErrTooManyPixels is returned when a batch exceeds the per-request cap.
	ErrTooManyPixels = errors.New("too many pixels in one request")

	// ErrSettingsMissing is returned when the settings singleton row is
	// absent, which indicates a broken deployment.
	ErrSettingsMissing = errors.New("game settings not initialized")
)

// InsufficientPixelsError reports a rejected placement with the exact
// shortfall so clients can prompt for a burn.
type InsufficientPixelsError struct {
	Need int64
	Have int64
}

func (e *InsufficientPixelsError) Error() string {
	return fmt.Sprintf("insufficient pixel credits: need %d, have %d", e.Need, e.Have)
}

var colorPattern = regexp.MustCompile(`^#[0-9A-F]{6}$`)

// PlaceResult summarizes one committed placement.
type PlaceResult struct {
	Placed     int   `json:"placed"`
	News       int   `json:"new_pixels"`
	Overwrites int   `json:"overwrites"`
	Cost       int64 `json:"cost"`
	Remaining  int64 `json:"remaining_pixels"`

	// Single-pixel placements only.
	WasOverwrite bool  `json:"was_overwrite,omitempty"`
	EasterEgg    bool  `json:"easter_egg,omitempty"`
	EggReward    int64 `json:"egg_reward,omitempty"`
}

// PixelWriter performs placement writes inside the request transaction.
type PixelWriter interface {
	ExistsAt(ctx context.Context, x, y int) (bool, error)
	CountOverwrites(ctx context.Context, xs, ys []int64) (int, error)
	Upsert(ctx context.Context, x, y int, color, walletAddress string) error
	BulkUpsert(ctx context.Context, xs, ys []int64, colors []string, walletAddress string) error
	InsertHistory(ctx context.Context, x, y int, newColor, walletAddress string) error
	BulkInsertHistory(ctx context.Context, xs, ys []int64, colors []string, walletAddress string) error
}

// BalanceWriter locks and adjusts a user's credit balance.
type BalanceWriter interface {
	GetBalanceForUpdate(ctx context.Context, walletAddress string) (int64, error)
	AdjustBalance(ctx context.Context, walletAddress string, pixelsDelta, placedDelta, burnedDelta int64) (int64, error)
}

// EggClaimer claims pre-seeded bonus coordinates.
type EggClaimer interface {
	ClaimAt(ctx context.Context, x, y int, walletAddress string) (int64, bool, error)
}

// SettingsReader reads the settings singleton.
type SettingsReader interface {
	Get(ctx context.Context) (*models.GameSettingsDB, error)
}

// NotificationInserter appends notification rows.
type NotificationInserter interface {
	Insert(ctx context.Context, notificationType, message string, data json.RawMessage, recipient string) (*models.NotificationDB, error)
}

// PlacementService debits credits and writes pixels atomically. All
// writes run inside the request transaction; a rejected placement rolls
// back with no partial effects.
type PlacementService struct {
	pixels        PixelWriter
	balances      BalanceWriter
	eggs          EggClaimer
	settings      SettingsReader
	notifications NotificationInserter
	events        EventWriter
}

// NewPlacementService creates a new PlacementService instance.
func NewPlacementService(
	pixels PixelWriter,
	balances BalanceWriter,
	eggs EggClaimer,
	settings SettingsReader,
	notifications NotificationInserter,
	events EventWriter,
) *PlacementService {
	return &PlacementService{
		pixels:        pixels,
		balances:      balances,
		eggs:          eggs,
		settings:      settings,
		notifications: notifications,
		events:        events,
	}
}

// sanitizePixels normalizes colors, drops out-of-bounds and malformed
// entries, and deduplicates coordinates last-write-wins while keeping
// first-seen order. Dropped entries are not an error; an empty result is.
func sanitizePixels(pixels []models.IncomingPixel, boardWidth, boardHeight int) []models.IncomingPixel {
	index := make(map[[2]int]int, len(pixels))
	out := make([]models.IncomingPixel, 0, len(pixels))

	for _, p := range pixels {
		color := strings.ToUpper(strings.TrimSpace(p.Color))
		if color != "" && !strings.HasPrefix(color, "#") {
			color = "#" + color
		}
		if !colorPattern.MatchString(color) {
			continue
		}
		if p.X < 0 || p.X >= boardWidth || p.Y < 0 || p.Y >= boardHeight {
			continue
		}

		key := [2]int{p.X, p.Y}
		if i, seen := index[key]; seen {
			out[i].Color = color
			continue
		}
		index[key] = len(out)
		out = append(out, models.IncomingPixel{X: p.X, Y: p.Y, Color: color})
	}

	return out
}

// boardBounds loads current board dimensions, failing when the
// singleton is missing.
func (svc *PlacementService) boardBounds(ctx context.Context) (int, int, error) {
	settings, err := svc.settings.Get(ctx)
	if err != nil {
		return 0, 0, err
	}
	if settings == nil {
		return 0, 0, ErrSettingsMissing
	}
	return settings.BoardWidth, settings.BoardHeight, nil
}

// PlacePixel places or repaints one pixel. New coordinates cost 1
// credit, overwrites cost 2, and claiming an easter egg credits its
// reward instead of debiting.
func (svc *PlacementService) PlacePixel(ctx context.Context, walletAddress string, pixel models.IncomingPixel) (*PlaceResult, error) {
	width, height, err := svc.boardBounds(ctx)
	if err != nil {
		return nil, err
	}

	sanitized := sanitizePixels([]models.IncomingPixel{pixel}, width, height)
	if len(sanitized) == 0 {
		return nil, ErrNoValidPixels
	}
	p := sanitized[0]

	balance, err := svc.balances.GetBalanceForUpdate(ctx, walletAddress)
	if err != nil {
		return nil, err
	}

	exists, err := svc.pixels.ExistsAt(ctx, p.X, p.Y)
	if err != nil {
		return nil, err
	}

	cost := int64(models.NewPixelCost)
	if exists {
		cost = int64(models.OverwritePixelCost)
	}

	eggReward, eggClaimed, err := svc.eggs.ClaimAt(ctx, p.X, p.Y, walletAddress)
	if err != nil {
		return nil, err
	}

	delta := -cost
	if eggClaimed {
		// Eggs are free to claim and pay out on top.
		delta = eggReward
	}
	if !eggClaimed && balance < cost {
		return nil, &InsufficientPixelsError{Need: cost, Have: balance}
	}

	if err := svc.pixels.Upsert(ctx, p.X, p.Y, p.Color, walletAddress); err != nil {
		return nil, err
	}
	if err := svc.pixels.InsertHistory(ctx, p.X, p.Y, p.Color, walletAddress); err != nil {
		return nil, err
	}

	remaining, err := svc.balances.AdjustBalance(ctx, walletAddress, delta, 1, 0)
	if err != nil {
		return nil, err
	}

	svc.notifyPlacement(ctx, walletAddress, 1, boolToInt(exists))

	result := &PlaceResult{
		Placed:       1,
		News:         1 - boolToInt(exists),
		Overwrites:   boolToInt(exists),
		Cost:         cost,
		Remaining:    remaining,
		WasOverwrite: exists,
		EasterEgg:    eggClaimed,
		EggReward:    eggReward,
	}
	if eggClaimed {
		result.Cost = 0
	}
	return result, nil
}

// PlacePixels places a sanitized batch set-based: one overwrite count,
// one balance check, one upsert, one history insert.
func (svc *PlacementService) PlacePixels(ctx context.Context, walletAddress string, pixels []models.IncomingPixel) (*PlaceResult, error) {
	width, height, err := svc.boardBounds(ctx)
	if err != nil {
		return nil, err
	}

	sanitized := sanitizePixels(pixels, width, height)
	if len(sanitized) == 0 {
		return nil, ErrNoValidPixels
	}
	// The cap applies to distinct coordinates, after dedup.
	if len(sanitized) > models.MaxBulkPixels {
		return nil, ErrTooManyPixels
	}

	xs := make([]int64, len(sanitized))
	ys := make([]int64, len(sanitized))
	colors := make([]string, len(sanitized))
	for i, p := range sanitized {
		xs[i] = int64(p.X)
		ys[i] = int64(p.Y)
		colors[i] = p.Color
	}

	balance, err := svc.balances.GetBalanceForUpdate(ctx, walletAddress)
	if err != nil {
		return nil, err
	}

	overwrites, err := svc.pixels.CountOverwrites(ctx, xs, ys)
	if err != nil {
		return nil, err
	}
	news := len(sanitized) - overwrites

	cost := int64(news*models.NewPixelCost + overwrites*models.OverwritePixelCost)
	if balance < cost {
		return nil, &InsufficientPixelsError{Need: cost, Have: balance}
	}

	if err := svc.pixels.BulkUpsert(ctx, xs, ys, colors, walletAddress); err != nil {
		return nil, err
	}
	if err := svc.pixels.BulkInsertHistory(ctx, xs, ys, colors, walletAddress); err != nil {
		return nil, err
	}

	remaining, err := svc.balances.AdjustBalance(ctx, walletAddress, -cost, int64(len(sanitized)), 0)
	if err != nil {
		return nil, err
	}

	svc.notifyPlacement(ctx, walletAddress, len(sanitized), overwrites)

	return &PlaceResult{
		Placed:     len(sanitized),
		News:       news,
		Overwrites: overwrites,
		Cost:       cost,
		Remaining:  remaining,
	}, nil
}

// notifyPlacement records a global notification and publishes the
// event. Both are best-effort side channels.
func (svc *PlacementService) notifyPlacement(ctx context.Context, walletAddress string, placed, overwrites int) {
	data, _ := json.Marshal(map[string]any{
		"wallet_address": walletAddress,
		"placed":         placed,
		"overwrites":     overwrites,
	})

	message := fmt.Sprintf("%s placed %d pixel(s)", walletAddress, placed)
	if _, err := svc.notifications.Insert(ctx, models.NotificationPixelPlaced, message, data, models.GlobalRecipient); err != nil {
		logger.Log.Errorw("failed to insert placement notification", "wallet", walletAddress, "err", err)
	}

	publishGameEvent(ctx, svc.events, models.GameEvent{
		Type:          models.NotificationPixelPlaced,
		WalletAddress: walletAddress,
		Placed:        placed,
		Overwrites:    overwrites,
	})
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
