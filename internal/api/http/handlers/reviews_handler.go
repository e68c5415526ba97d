package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/bistro-service/internal/api/dto"
	"github.com/spec-kit/bistro-service/internal/domain"
	"github.com/spec-kit/bistro-service/internal/service"
	apperrors "github.com/spec-kit/bistro-service/pkg/util"
)

// ReviewsHandler exposes review endpoints.
type ReviewsHandler struct {
	reviews *service.ReviewService
}

// NewReviewsHandler constructs handler.
func NewReviewsHandler(reviewService *service.ReviewService) *ReviewsHandler {
	return &ReviewsHandler{reviews: reviewService}
}

// List handles GET /reviews.
func (h *ReviewsHandler) List(c *fiber.Ctx) error {
	reviews, err := h.reviews.List(c.Context())
	if err != nil {
		return err
	}

	out := make([]dto.ReviewResponse, 0, len(reviews))
	for i := range reviews {
		out = append(out, dto.FromReview(&reviews[i]))
	}
	return c.JSON(fiber.Map{"data": out})
}

// Create handles POST /reviews (authenticated).
func (h *ReviewsHandler) Create(c *fiber.Ctx) error {
	var req dto.ReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload")
	}
	if req.Details == "" {
		return apperrors.NewValidationError("details required")
	}
	if req.Rating < 0 || req.Rating > 5 {
		return apperrors.NewValidationError("rating must be between 0 and 5")
	}

	review := &domain.Review{Name: req.Name, Details: req.Details, Rating: req.Rating}
	if err := h.reviews.Create(c.Context(), review); err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.FromReview(review)})
}
