package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/bistro-service/internal/domain"
	"github.com/spec-kit/bistro-service/internal/events"
	"github.com/spec-kit/bistro-service/internal/gateway"
	"github.com/spec-kit/bistro-service/internal/repository"
)

type recordingPaymentRepo struct {
	created []*domain.Payment
	err     error
}

func (r *recordingPaymentRepo) Create(_ context.Context, payment *domain.Payment) error {
	if r.err != nil {
		return r.err
	}
	payment.ID = "payment-1"
	r.created = append(r.created, payment)
	return nil
}

func (r *recordingPaymentRepo) ListByEmail(context.Context, string) ([]domain.Payment, error) {
	return nil, nil
}

func (r *recordingPaymentRepo) Count(context.Context) (int64, error) { return 0, nil }

func (r *recordingPaymentRepo) TotalRevenue(context.Context) (float64, error) { return 0, nil }

func (r *recordingPaymentRepo) SalesByCategory(context.Context) ([]repository.CategorySales, error) {
	return nil, nil
}

type recordingCartRepo struct {
	deletedIDs []string
}

func (r *recordingCartRepo) Insert(context.Context, *domain.CartItem) error { return nil }

func (r *recordingCartRepo) Delete(context.Context, string) error { return nil }

func (r *recordingCartRepo) DeleteMany(_ context.Context, ids []string) (int64, error) {
	r.deletedIDs = append(r.deletedIDs, ids...)
	return int64(len(ids)), nil
}

func (r *recordingCartRepo) ListByEmail(context.Context, string) ([]domain.CartItem, error) {
	return nil, nil
}

type fixedGateway struct {
	gotAmount   int64
	gotCurrency string
	err         error
}

func (g *fixedGateway) CreatePaymentIntent(_ context.Context, amountCents int64, currency string) (*gateway.PaymentIntent, error) {
	g.gotAmount = amountCents
	g.gotCurrency = currency
	if g.err != nil {
		return nil, g.err
	}
	return &gateway.PaymentIntent{ID: "pi_1", ClientSecret: "cs_1"}, nil
}

func TestCreateIntentConvertsToCents(t *testing.T) {
	gw := &fixedGateway{}
	svc := NewPaymentService(PaymentDependencies{Gateway: gw, Currency: "eur"})

	secret, err := svc.CreateIntent(context.Background(), 10.55)
	require.NoError(t, err)
	assert.Equal(t, "cs_1", secret)
	assert.Equal(t, int64(1055), gw.gotAmount)
	assert.Equal(t, "eur", gw.gotCurrency)
}

func TestCreateIntentWithoutGateway(t *testing.T) {
	svc := NewPaymentService(PaymentDependencies{})

	_, err := svc.CreateIntent(context.Background(), 10)
	assert.Error(t, err)
}

func TestCreateIntentGatewayError(t *testing.T) {
	gw := &fixedGateway{err: errors.New("declined")}
	svc := NewPaymentService(PaymentDependencies{Gateway: gw})

	_, err := svc.CreateIntent(context.Background(), 10)
	assert.ErrorContains(t, err, "declined")
}

func TestRecordFillsDefaultsAndClearsCart(t *testing.T) {
	paymentRepo := &recordingPaymentRepo{}
	cartRepo := &recordingCartRepo{}
	dispatcher := events.NewInMemoryDispatcher()

	var published []events.Event
	dispatcher.Subscribe(events.EventPaymentRecorded, func(_ context.Context, event events.Event) error {
		published = append(published, event)
		return nil
	})

	svc := NewPaymentService(PaymentDependencies{
		PaymentRepo: paymentRepo,
		CartRepo:    cartRepo,
		Dispatcher:  dispatcher,
	})

	payment := &domain.Payment{
		Email:       "a@x.com",
		Price:       21,
		CartItemIDs: []string{"c1", "c2"},
		MenuItemIDs: []string{"m1", "m2"},
	}
	result, err := svc.Record(context.Background(), payment)
	require.NoError(t, err)

	assert.NotEmpty(t, result.Payment.TransactionID)
	assert.Equal(t, "usd", result.Payment.Currency)
	assert.Equal(t, domain.PaymentStatusSucceeded, result.Payment.Status)
	assert.Equal(t, int64(2), result.DeletedCarts)
	assert.Equal(t, []string{"c1", "c2"}, cartRepo.deletedIDs)

	require.Len(t, published, 1)
	payload, ok := published[0].Payload.(events.PaymentRecordedPayload)
	require.True(t, ok)
	assert.Equal(t, "a@x.com", payload.Email)
	assert.Equal(t, result.Payment.TransactionID, payload.TransactionID)
	assert.Equal(t, 2, payload.ItemCount)
}

func TestRecordKeepsProvidedTransactionID(t *testing.T) {
	paymentRepo := &recordingPaymentRepo{}
	svc := NewPaymentService(PaymentDependencies{
		PaymentRepo: paymentRepo,
		CartRepo:    &recordingCartRepo{},
	})

	payment := &domain.Payment{Email: "a@x.com", TransactionID: "pi_known", Price: 5}
	result, err := svc.Record(context.Background(), payment)
	require.NoError(t, err)
	assert.Equal(t, "pi_known", result.Payment.TransactionID)
}

func TestRecordPersistFailure(t *testing.T) {
	paymentRepo := &recordingPaymentRepo{err: errors.New("insert failed")}
	cartRepo := &recordingCartRepo{}
	svc := NewPaymentService(PaymentDependencies{
		PaymentRepo: paymentRepo,
		CartRepo:    cartRepo,
	})

	payment := &domain.Payment{Email: "a@x.com", Price: 5, CartItemIDs: []string{"c1"}}
	_, err := svc.Record(context.Background(), payment)
	require.Error(t, err)

	// The cart survives a failed payment.
	assert.Empty(t, cartRepo.deletedIDs)
}
