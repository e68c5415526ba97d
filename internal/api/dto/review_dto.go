package dto

import (
	"time"

	"github.com/spec-kit/bistro-service/internal/domain"
)

// ReviewRequest payload for submitting a review.
type ReviewRequest struct {
	Name    string  `json:"name"`
	Details string  `json:"details"`
	Rating  float64 `json:"rating"`
}

// ReviewResponse is the wire shape of a review.
type ReviewResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Details   string    `json:"details"`
	Rating    float64   `json:"rating"`
	CreatedAt time.Time `json:"created_at"`
}

// FromReview maps the domain model to the wire shape.
func FromReview(review *domain.Review) ReviewResponse {
	return ReviewResponse{
		ID:        review.ID,
		Name:      review.Name,
		Details:   review.Details,
		Rating:    review.Rating,
		CreatedAt: review.CreatedAt,
	}
}
