package domain

import "time"

// Review is customer feedback shown on the public site.
type Review struct {
	ID        string
	Name      string
	Details   string
	Rating    float64
	CreatedAt time.Time
}
