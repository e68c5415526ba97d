package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/bistro-service/internal/api/dto"
	"github.com/spec-kit/bistro-service/internal/auth"
	"github.com/spec-kit/bistro-service/internal/domain"
	"github.com/spec-kit/bistro-service/internal/service"
	apperrors "github.com/spec-kit/bistro-service/pkg/util"
)

// CartsHandler exposes shopping cart endpoints.
type CartsHandler struct {
	carts *service.CartService
}

// NewCartsHandler constructs handler.
func NewCartsHandler(cartService *service.CartService) *CartsHandler {
	return &CartsHandler{carts: cartService}
}

// List handles GET /carts?email=. A missing email yields an empty
// listing; a mismatched one is an ownership denial regardless of what
// the query claims.
func (h *CartsHandler) List(c *fiber.Ctx) error {
	email := c.Query("email")
	if email == "" {
		return c.JSON(fiber.Map{"data": []dto.CartItemResponse{}})
	}

	if err := auth.RequireOwnership(c, email); err != nil {
		return err
	}

	items, err := h.carts.ListForOwner(c.Context(), email)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.FromCartItems(items)})
}

// Add handles POST /carts.
func (h *CartsHandler) Add(c *fiber.Ctx) error {
	var req dto.CartItemRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload")
	}
	if req.Email == "" || req.MenuItemID == "" {
		return apperrors.NewValidationError("email and menu_item_id required")
	}

	item := &domain.CartItem{
		Email:      req.Email,
		MenuItemID: req.MenuItemID,
		Name:       req.Name,
		Image:      req.Image,
		Price:      req.Price,
	}
	if err := h.carts.Add(c.Context(), item); err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.FromCartItem(item)})
}

// Remove handles DELETE /carts/:id.
func (h *CartsHandler) Remove(c *fiber.Ctx) error {
	if err := h.carts.Remove(c.Context(), c.Params("id")); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("cart item")
		}
		return err
	}
	return c.JSON(fiber.Map{"deleted": 1})
}
