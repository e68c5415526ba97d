package dto

import (
	"time"

	"github.com/spec-kit/bistro-service/internal/domain"
)

// CartItemRequest payload for adding a menu item to a cart.
type CartItemRequest struct {
	Email      string  `json:"email"`
	MenuItemID string  `json:"menu_item_id"`
	Name       string  `json:"name"`
	Image      string  `json:"image"`
	Price      float64 `json:"price"`
}

// CartItemResponse is the wire shape of a cart item.
type CartItemResponse struct {
	ID         string    `json:"id"`
	Email      string    `json:"email"`
	MenuItemID string    `json:"menu_item_id"`
	Name       string    `json:"name"`
	Image      string    `json:"image"`
	Price      float64   `json:"price"`
	CreatedAt  time.Time `json:"created_at"`
}

// FromCartItem maps the domain model to the wire shape.
func FromCartItem(item *domain.CartItem) CartItemResponse {
	return CartItemResponse{
		ID:         item.ID,
		Email:      item.Email,
		MenuItemID: item.MenuItemID,
		Name:       item.Name,
		Image:      item.Image,
		Price:      item.Price,
		CreatedAt:  item.CreatedAt,
	}
}

// FromCartItems maps a listing.
func FromCartItems(items []domain.CartItem) []CartItemResponse {
	out := make([]CartItemResponse, 0, len(items))
	for i := range items {
		out = append(out, FromCartItem(&items[i]))
	}
	return out
}
