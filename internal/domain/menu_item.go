package domain

import "time"

// MenuItem is a dish offered on the restaurant menu.
type MenuItem struct {
	ID        string
	Name      string
	Recipe    string
	Image     string
	Category  string
	Price     float64
	CreatedAt time.Time
	UpdatedAt time.Time
}
