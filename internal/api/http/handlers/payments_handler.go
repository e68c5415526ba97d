package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/bistro-service/internal/api/dto"
	"github.com/spec-kit/bistro-service/internal/auth"
	"github.com/spec-kit/bistro-service/internal/domain"
	"github.com/spec-kit/bistro-service/internal/service"
	apperrors "github.com/spec-kit/bistro-service/pkg/util"
)

// PaymentsHandler exposes checkout endpoints.
type PaymentsHandler struct {
	payments *service.PaymentService
}

// NewPaymentsHandler constructs handler.
func NewPaymentsHandler(paymentService *service.PaymentService) *PaymentsHandler {
	return &PaymentsHandler{payments: paymentService}
}

// CreateIntent handles POST /create-payment-intent.
func (h *PaymentsHandler) CreateIntent(c *fiber.Ctx) error {
	var req dto.CreateIntentRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload")
	}
	if req.Price <= 0 {
		return apperrors.NewValidationError("price must be positive")
	}

	clientSecret, err := h.payments.CreateIntent(c.Context(), req.Price)
	if err != nil {
		return err
	}
	return c.JSON(dto.CreateIntentResponse{ClientSecret: clientSecret})
}

// History handles GET /payments/:email. Customers may only read their
// own history.
func (h *PaymentsHandler) History(c *fiber.Ctx) error {
	email := c.Params("email")
	if err := auth.RequireOwnership(c, email); err != nil {
		return err
	}

	payments, err := h.payments.History(c.Context(), email)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.FromPayments(payments)})
}

// Record handles POST /payments. The payment is booked for the
// authenticated subject; the body's email is ignored for identity.
func (h *PaymentsHandler) Record(c *fiber.Ctx) error {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("unauthorized access!")
	}

	var req dto.PaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload")
	}
	if req.Price <= 0 {
		return apperrors.NewValidationError("price must be positive")
	}

	payment := &domain.Payment{
		Email:         identity.Email,
		TransactionID: req.TransactionID,
		Price:         req.Price,
		CartItemIDs:   req.CartItemIDs,
		MenuItemIDs:   req.MenuItemIDs,
	}
	result, err := h.payments.Record(c.Context(), payment)
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.PaymentResponse{
		ID:            result.Payment.ID,
		TransactionID: result.Payment.TransactionID,
		Price:         result.Payment.Price,
		DeletedCarts:  result.DeletedCarts,
	}})
}
