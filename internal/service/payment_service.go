package service

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/bistro-service/internal/domain"
	"github.com/spec-kit/bistro-service/internal/events"
	"github.com/spec-kit/bistro-service/internal/gateway"
	"github.com/spec-kit/bistro-service/internal/repository"
)

// PaymentService coordinates checkout: intent creation against the
// gateway and recording completed payments.
type PaymentService struct {
	payments   repository.PaymentRepository
	carts      repository.CartRepository
	gateway    gateway.PaymentGateway
	dispatcher events.Dispatcher
	currency   string
}

// PaymentDependencies encapsulates requirements for the payment service.
type PaymentDependencies struct {
	PaymentRepo repository.PaymentRepository
	CartRepo    repository.CartRepository
	Gateway     gateway.PaymentGateway
	Dispatcher  events.Dispatcher
	Currency    string
}

// NewPaymentService builds the service.
func NewPaymentService(deps PaymentDependencies) *PaymentService {
	currency := deps.Currency
	if currency == "" {
		currency = "usd"
	}
	return &PaymentService{
		payments:   deps.PaymentRepo,
		carts:      deps.CartRepo,
		gateway:    deps.Gateway,
		dispatcher: deps.Dispatcher,
		currency:   currency,
	}
}

// CreateIntent asks the gateway for a payment intent over the given price
// and returns the client secret the frontend completes the charge with.
func (s *PaymentService) CreateIntent(ctx context.Context, price float64) (string, error) {
	if s.gateway == nil {
		return "", errors.New("payment gateway not configured")
	}
	amountCents := int64(math.Round(price * 100))
	intent, err := s.gateway.CreatePaymentIntent(ctx, amountCents, s.currency)
	if err != nil {
		return "", err
	}
	return intent.ClientSecret, nil
}

// History returns the customer's payments, newest first.
func (s *PaymentService) History(ctx context.Context, email string) ([]domain.Payment, error) {
	return s.payments.ListByEmail(ctx, email)
}

// RecordResult reports what a recorded payment changed.
type RecordResult struct {
	Payment      *domain.Payment
	DeletedCarts int64
}

// Record stores the payment, clears the purchased cart items and emits
// the payment-recorded event the notification layer listens on.
func (s *PaymentService) Record(ctx context.Context, payment *domain.Payment) (*RecordResult, error) {
	if payment.TransactionID == "" {
		payment.TransactionID = uuid.NewString()
	}
	if payment.Currency == "" {
		payment.Currency = s.currency
	}
	if payment.Status == "" {
		payment.Status = domain.PaymentStatusSucceeded
	}

	if err := s.payments.Create(ctx, payment); err != nil {
		return nil, err
	}

	deleted, err := s.carts.DeleteMany(ctx, payment.CartItemIDs)
	if err != nil {
		return nil, err
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventPaymentRecorded,
			Subject:   payment.Email,
			Timestamp: time.Now(),
			Payload: events.PaymentRecordedPayload{
				TransactionID: payment.TransactionID,
				Email:         payment.Email,
				Price:         payment.Price,
				ItemCount:     len(payment.MenuItemIDs),
			},
		})
	}

	return &RecordResult{Payment: payment, DeletedCarts: deleted}, nil
}
