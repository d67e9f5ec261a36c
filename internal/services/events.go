package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/mshulgin/go-account-service/internal/logger"
)

// Account event types.
const (
	EventRegistered = "user.registered"
	EventLoggedIn   = "user.logged_in"
	EventDeleted    = "user.deleted"
)

// AccountEvent is published to Kafka after account mutations.
type AccountEvent struct {
	Type     string    `json:"type"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
	At       time.Time `json:"at"`
}

// publishEvent publishes an account event. A nil writer means event
// publishing is not configured; the event is skipped with a warning.
func publishEvent(ctx context.Context, w KafkaWriter, e AccountEvent) {
	if w == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "type", e.Type, "username", e.Username)
		return
	}

	e.At = time.Now().UTC()
	value, err := json.Marshal(e)
	if err != nil {
		logger.Log.Errorw("failed to marshal account event", "type", e.Type, "err", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(e.Username),
		Value: value,
	}
	if err := w.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish account event", "type", e.Type, "err", err)
		return
	}

	logger.Log.Infow("account event published", "type", e.Type, "username", e.Username)
}
