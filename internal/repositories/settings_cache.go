package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/vibegame/pixey-backend/internal/logger"
	"github.com/vibegame/pixey-backend/internal/models"
)

const settingsCacheKey = "game_settings"

// GameSettingsCacheRepository caches the settings singleton in Redis.
// The burn path invalidates it whenever a stage transition commits.
type GameSettingsCacheRepository struct {
	client *redis.Client
	exp    time.Duration
}

func NewGameSettingsCacheRepository(client *redis.Client, expiration time.Duration) *GameSettingsCacheRepository {
	return &GameSettingsCacheRepository{client: client, exp: expiration}
}

// Get returns the cached settings, or (nil, nil) on a cache miss.
func (r *GameSettingsCacheRepository) Get(ctx context.Context) (*models.GameSettingsDB, error) {
	val, err := r.client.Get(ctx, settingsCacheKey).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		logger.Log.Errorw("settings cache read failed", "error", err)
		return nil, err
	}

	var settings models.GameSettingsDB
	if err := json.Unmarshal([]byte(val), &settings); err != nil {
		logger.Log.Errorw("settings cache decode failed", "error", err)
		return nil, err
	}
	return &settings, nil
}

// Set caches the settings with the configured TTL.
func (r *GameSettingsCacheRepository) Set(ctx context.Context, settings *models.GameSettingsDB) error {
	data, err := json.Marshal(settings)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, settingsCacheKey, data, r.exp).Err()

	logger.Log.Infow("settings cache set",
		"key", settingsCacheKey,
		"error", err,
	)

	return err
}

// Invalidate drops the cached settings after a stage transition.
func (r *GameSettingsCacheRepository) Invalidate(ctx context.Context) error {
	err := r.client.Del(ctx, settingsCacheKey).Err()

	logger.Log.Infow("settings cache invalidated",
		"key", settingsCacheKey,
		"error", err,
	)

	return err
}
