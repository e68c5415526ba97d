package domain

import "time"

// PaymentStatus reflects what the gateway reported for a payment.
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "PENDING"
	PaymentStatusSucceeded PaymentStatus = "SUCCEEDED"
)

// Payment records a completed checkout: which cart items were purchased,
// which menu items they referenced, and the gateway transaction.
type Payment struct {
	ID            string
	Email         string
	TransactionID string
	Price         float64
	Currency      string
	Status        PaymentStatus
	CartItemIDs   []string
	MenuItemIDs   []string
	CreatedAt     time.Time
}
