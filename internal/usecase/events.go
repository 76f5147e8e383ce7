package usecase

import (
	"context"
	"time"

	"hotel-booking/pkg/broker"

	"go.uber.org/zap"
)

const publishTimeout = 2 * time.Second

// publishEvent is best effort: a broker failure is logged and the caller's
// write stands.
func publishEvent(ctx context.Context, events broker.Publisher, log *zap.Logger, routingKey string, event any) {
	if events == nil {
		return
	}

	pubCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	if err := events.Publish(pubCtx, routingKey, event); err != nil {
		log.Warn("Failed to publish event",
			zap.String("routing_key", routingKey),
			zap.Error(err))
	}
}

// displayName prefers the token name, then the email.
func displayName(name, email string) string {
	if name != "" {
		return name
	}
	return email
}
