package dto

import (
	"time"

	"github.com/spec-kit/bistro-service/internal/domain"
)

// MenuItemRequest payload for creating or updating a dish.
type MenuItemRequest struct {
	Name     string  `json:"name"`
	Recipe   string  `json:"recipe"`
	Image    string  `json:"image"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
}

// MenuItemResponse is the wire shape of a menu item.
type MenuItemResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Recipe    string    `json:"recipe"`
	Image     string    `json:"image"`
	Category  string    `json:"category"`
	Price     float64   `json:"price"`
	CreatedAt time.Time `json:"created_at"`
}

// FromMenuItem maps the domain model to the wire shape.
func FromMenuItem(item *domain.MenuItem) MenuItemResponse {
	return MenuItemResponse{
		ID:        item.ID,
		Name:      item.Name,
		Recipe:    item.Recipe,
		Image:     item.Image,
		Category:  item.Category,
		Price:     item.Price,
		CreatedAt: item.CreatedAt,
	}
}

// FromMenuItems maps a listing.
func FromMenuItems(items []domain.MenuItem) []MenuItemResponse {
	out := make([]MenuItemResponse, 0, len(items))
	for i := range items {
		out = append(out, FromMenuItem(&items[i]))
	}
	return out
}
