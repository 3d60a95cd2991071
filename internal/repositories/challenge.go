package repositories

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/vibegame/pixey-backend/internal/logger"
)

// ChallengeCacheRepository stores one-shot login nonces in Redis with a
// short TTL so that a captured signature cannot be replayed.
type ChallengeCacheRepository struct {
	client *redis.Client
	exp    time.Duration
}

func NewChallengeCacheRepository(client *redis.Client, expiration time.Duration) *ChallengeCacheRepository {
	return &ChallengeCacheRepository{client: client, exp: expiration}
}

func challengeKey(walletAddress string) string {
	return fmt.Sprintf("auth_nonce:%s", walletAddress)
}

// Issue generates a fresh nonce for the wallet, replacing any previous
// one, and stores it with the configured expiry.
func (r *ChallengeCacheRepository) Issue(ctx context.Context, walletAddress string) (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	nonce := hex.EncodeToString(buf)

	key := challengeKey(walletAddress)
	err := r.client.Set(ctx, key, nonce, r.exp).Err()

	logger.Log.Infow("issue login nonce",
		"key", key,
		"error", err,
	)

	if err != nil {
		return "", err
	}
	return nonce, nil
}

// Consume atomically fetches and deletes the pending nonce, so each
// challenge verifies at most once. Returns ("", false, nil) when no
// nonce is pending (never issued, expired, or already consumed).
func (r *ChallengeCacheRepository) Consume(ctx context.Context, walletAddress string) (string, bool, error) {
	key := challengeKey(walletAddress)

	nonce, err := r.client.GetDel(ctx, key).Result()

	logger.Log.Infow("consume login nonce",
		"key", key,
		"error", err,
	)

	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return nonce, true, nil
}
