package domain

import "time"

// CartItem is a menu item placed in a user's shopping cart. The email is
// the owning subject; ownership checks compare against it.
type CartItem struct {
	ID         string
	Email      string
	MenuItemID string
	Name       string
	Image      string
	Price      float64
	CreatedAt  time.Time
}
