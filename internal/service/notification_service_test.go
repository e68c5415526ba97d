package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/bistro-service/internal/events"
)

type sentMail struct {
	to      string
	subject string
	html    string
}

type channelMailer struct {
	sent chan sentMail
	err  error
}

func (m *channelMailer) Send(_ context.Context, to, subject, html string) error {
	m.sent <- sentMail{to: to, subject: subject, html: html}
	return m.err
}

func TestPaymentRecordedSendsConfirmationMail(t *testing.T) {
	dispatcher := events.NewInMemoryDispatcher()
	mailer := &channelMailer{sent: make(chan sentMail, 1)}

	svc := NewNotificationService(dispatcher, mailer, zap.NewNop())
	svc.RegisterHandlers()

	err := dispatcher.Publish(context.Background(), events.Event{
		ID:   "evt-1",
		Type: events.EventPaymentRecorded,
		Payload: events.PaymentRecordedPayload{
			TransactionID: "pi_123",
			Email:         "a@x.com",
			Price:         21,
			ItemCount:     2,
		},
	})
	require.NoError(t, err)

	select {
	case mail := <-mailer.sent:
		assert.Equal(t, "a@x.com", mail.to)
		assert.Equal(t, "Your order is confirmed!", mail.subject)
		assert.Contains(t, mail.html, "Payment Confirmed!!")
		assert.Contains(t, mail.html, "pi_123")
	case <-time.After(2 * time.Second):
		t.Fatal("confirmation mail was never sent")
	}
}

func TestPaymentRecordedMailFailureStaysLocal(t *testing.T) {
	dispatcher := events.NewInMemoryDispatcher()
	mailer := &channelMailer{sent: make(chan sentMail, 1), err: errors.New("smtp down")}

	svc := NewNotificationService(dispatcher, mailer, zap.NewNop())
	svc.RegisterHandlers()

	// The publisher never sees the delivery failure.
	err := dispatcher.Publish(context.Background(), events.Event{
		ID:   "evt-1",
		Type: events.EventPaymentRecorded,
		Payload: events.PaymentRecordedPayload{
			TransactionID: "pi_123",
			Email:         "a@x.com",
		},
	})
	require.NoError(t, err)

	select {
	case <-mailer.sent:
	case <-time.After(2 * time.Second):
		t.Fatal("send was never attempted")
	}
}

func TestPaymentRecordedWithoutMailer(t *testing.T) {
	dispatcher := events.NewInMemoryDispatcher()

	svc := NewNotificationService(dispatcher, nil, zap.NewNop())
	svc.RegisterHandlers()

	err := dispatcher.Publish(context.Background(), events.Event{
		ID:   "evt-1",
		Type: events.EventPaymentRecorded,
		Payload: events.PaymentRecordedPayload{
			TransactionID: "pi_123",
			Email:         "a@x.com",
		},
	})
	assert.NoError(t, err)
}

func TestPaymentRecordedUnexpectedPayload(t *testing.T) {
	dispatcher := events.NewInMemoryDispatcher()
	mailer := &channelMailer{sent: make(chan sentMail, 1)}

	svc := NewNotificationService(dispatcher, mailer, zap.NewNop())
	svc.RegisterHandlers()

	err := dispatcher.Publish(context.Background(), events.Event{
		ID:      "evt-1",
		Type:    events.EventPaymentRecorded,
		Payload: "not-a-payment",
	})
	require.NoError(t, err)

	select {
	case <-mailer.sent:
		t.Fatal("mail sent for malformed payload")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestUserPromotedHandled(t *testing.T) {
	dispatcher := events.NewInMemoryDispatcher()

	svc := NewNotificationService(dispatcher, nil, zap.NewNop())
	svc.RegisterHandlers()

	err := dispatcher.Publish(context.Background(), events.Event{
		ID:      "evt-2",
		Type:    events.EventUserPromoted,
		Subject: "user-1",
		Payload: events.UserPromotedPayload{UserID: "user-1"},
	})
	assert.NoError(t, err)
}
