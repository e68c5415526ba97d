package dto

import (
	"time"

	"github.com/spec-kit/bistro-service/internal/domain"
)

// CreateIntentRequest asks for a payment intent over the cart total.
type CreateIntentRequest struct {
	Price float64 `json:"price"`
}

// CreateIntentResponse returns the gateway client secret.
type CreateIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

// PaymentRequest records a completed checkout.
type PaymentRequest struct {
	Email         string   `json:"email"`
	TransactionID string   `json:"transaction_id"`
	Price         float64  `json:"price"`
	CartItemIDs   []string `json:"cart_item_ids"`
	MenuItemIDs   []string `json:"menu_item_ids"`
}

// PaymentResponse reports what recording the payment changed.
type PaymentResponse struct {
	ID            string  `json:"id"`
	TransactionID string  `json:"transaction_id"`
	Price         float64 `json:"price"`
	DeletedCarts  int64   `json:"deleted_carts"`
}

// PaymentHistoryItem is one entry of a customer's payment history.
type PaymentHistoryItem struct {
	ID            string    `json:"id"`
	Email         string    `json:"email"`
	TransactionID string    `json:"transaction_id"`
	Price         float64   `json:"price"`
	Currency      string    `json:"currency"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

// FromPayments maps stored payments to history entries.
func FromPayments(payments []domain.Payment) []PaymentHistoryItem {
	out := make([]PaymentHistoryItem, 0, len(payments))
	for _, payment := range payments {
		out = append(out, PaymentHistoryItem{
			ID:            payment.ID,
			Email:         payment.Email,
			TransactionID: payment.TransactionID,
			Price:         payment.Price,
			Currency:      payment.Currency,
			Status:        string(payment.Status),
			CreatedAt:     payment.CreatedAt,
		})
	}
	return out
}

// AdminStatsResponse is the admin dashboard summary.
type AdminStatsResponse struct {
	Users    int64   `json:"users"`
	Products int64   `json:"products"`
	Orders   int64   `json:"orders"`
	Revenue  float64 `json:"revenue"`
}

// CategorySalesResponse aggregates purchases per menu category.
type CategorySalesResponse struct {
	Category string  `json:"category"`
	Count    int64   `json:"count"`
	Total    float64 `json:"total"`
}
