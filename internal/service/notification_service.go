package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/bistro-service/internal/events"
	"github.com/spec-kit/bistro-service/internal/gateway"
)

// NotificationService sends transactional mail for domain events.
// Delivery is fire-and-forget: each send runs on a detached goroutine,
// failures are logged and never reach the request that triggered them,
// and nothing is retried.
type NotificationService struct {
	dispatcher events.Dispatcher
	mailer     gateway.Mailer
	logger     *zap.Logger
	timeout    time.Duration
}

// NewNotificationService creates the service. A nil mailer disables mail
// (the handlers still log the events).
func NewNotificationService(dispatcher events.Dispatcher, mailer gateway.Mailer, logger *zap.Logger) *NotificationService {
	return &NotificationService{
		dispatcher: dispatcher,
		mailer:     mailer,
		logger:     logger,
		timeout:    15 * time.Second,
	}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventPaymentRecorded, n.handlePaymentRecorded)
	n.dispatcher.Subscribe(events.EventUserPromoted, n.handleUserPromoted)
}

func (n *NotificationService) handlePaymentRecorded(_ context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.PaymentRecordedPayload)
	if !ok {
		n.logger.Warn("unexpected payment event payload", zap.String("event_id", event.ID))
		return nil
	}

	n.logger.Info("PaymentRecorded",
		zap.String("transaction_id", payload.TransactionID),
		zap.String("email", payload.Email))

	if n.mailer == nil {
		return nil
	}

	// Detached from the request lifecycle; the publisher never waits.
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), n.timeout)
		defer cancel()

		html := fmt.Sprintf(`
    <div>
      <h2>Payment Confirmed!!</h2>
      <p>Transaction ID: %s</p>
    </div>
    `, payload.TransactionID)

		if err := n.mailer.Send(ctx, payload.Email, "Your order is confirmed!", html); err != nil {
			n.logger.Error("payment confirmation mail failed",
				zap.String("transaction_id", payload.TransactionID),
				zap.Error(err))
			return
		}
		n.logger.Info("payment confirmation mail sent",
			zap.String("transaction_id", payload.TransactionID))
	}()

	return nil
}

func (n *NotificationService) handleUserPromoted(_ context.Context, event events.Event) error {
	n.logger.Info("UserPromoted", zap.String("subject", event.Subject))
	return nil
}
