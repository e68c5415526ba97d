package service

import (
	"context"

	"github.com/spec-kit/bistro-service/internal/domain"
	"github.com/spec-kit/bistro-service/internal/repository"
)

// CartService coordinates shopping cart operations.
type CartService struct {
	carts repository.CartRepository
}

// NewCartService builds the service.
func NewCartService(carts repository.CartRepository) *CartService {
	return &CartService{carts: carts}
}

// ListForOwner returns the cart items belonging to the given email.
// Ownership against the authenticated identity is checked at the handler;
// this method only reads.
func (s *CartService) ListForOwner(ctx context.Context, email string) ([]domain.CartItem, error) {
	return s.carts.ListByEmail(ctx, email)
}

// Add places an item in a cart.
func (s *CartService) Add(ctx context.Context, item *domain.CartItem) error {
	return s.carts.Insert(ctx, item)
}

// Remove deletes a single cart item by id.
func (s *CartService) Remove(ctx context.Context, id string) error {
	return s.carts.Delete(ctx, id)
}
