package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/vibegame/pixey-backend/internal/logger"
	"github.com/vibegame/pixey-backend/internal/models"
)

// EventWriter publishes game events to the broker. Satisfied by
// *kafka.Writer.
type EventWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// publishGameEvent sends one event keyed by wallet so that a wallet's
// events stay ordered within a partition. Publish failures are logged
// and swallowed: the database transaction is the source of truth and
// must not fail because the broker is down.
func publishGameEvent(ctx context.Context, w EventWriter, event models.GameEvent) {
	if w == nil {
		return
	}

	event.EventID = uuid.NewString()
	event.Timestamp = time.Now().Unix()

	payload, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to encode game event", "type", event.Type, "err", err)
		return
	}

	err = w.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.WalletAddress),
		Value: payload,
	})
	if err != nil {
		logger.Log.Errorw("failed to publish game event", "type", event.Type, "err", err)
	}
}
