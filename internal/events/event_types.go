package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventPaymentRecorded EventType = "payment_recorded"
	EventUserPromoted    EventType = "user_promoted"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Subject   string      `json:"subject"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// PaymentRecordedPayload carries what the confirmation mail needs.
type PaymentRecordedPayload struct {
	TransactionID string  `json:"transaction_id"`
	Email         string  `json:"email"`
	Price         float64 `json:"price"`
	ItemCount     int     `json:"item_count"`
}

// UserPromotedPayload payload.
type UserPromotedPayload struct {
	UserID string `json:"user_id"`
}
