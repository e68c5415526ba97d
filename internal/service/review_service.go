package service

import (
	"context"

	"github.com/spec-kit/bistro-service/internal/domain"
	"github.com/spec-kit/bistro-service/internal/repository"
)

// ReviewService coordinates customer reviews.
type ReviewService struct {
	reviews repository.ReviewRepository
}

// NewReviewService builds the service.
func NewReviewService(reviews repository.ReviewRepository) *ReviewService {
	return &ReviewService{reviews: reviews}
}

// List returns all reviews, newest first.
func (s *ReviewService) List(ctx context.Context) ([]domain.Review, error) {
	return s.reviews.List(ctx)
}

// Create stores a review.
func (s *ReviewService) Create(ctx context.Context, review *domain.Review) error {
	return s.reviews.Create(ctx, review)
}
