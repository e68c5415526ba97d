package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/bistro-service/internal/api/dto"
	"github.com/spec-kit/bistro-service/internal/domain"
	"github.com/spec-kit/bistro-service/internal/service"
	apperrors "github.com/spec-kit/bistro-service/pkg/util"
)

// MenuHandler exposes menu endpoints. Listing is public; writes are
// admin-gated at the router.
type MenuHandler struct {
	menu *service.MenuService
}

// NewMenuHandler constructs handler.
func NewMenuHandler(menuService *service.MenuService) *MenuHandler {
	return &MenuHandler{menu: menuService}
}

// List handles GET /menu.
func (h *MenuHandler) List(c *fiber.Ctx) error {
	items, err := h.menu.List(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.FromMenuItems(items)})
}

// Get handles GET /menu/:id.
func (h *MenuHandler) Get(c *fiber.Ctx) error {
	item, err := h.menu.Get(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("menu item")
		}
		return err
	}
	return c.JSON(fiber.Map{"data": dto.FromMenuItem(item)})
}

// Create handles POST /menu.
func (h *MenuHandler) Create(c *fiber.Ctx) error {
	req, err := parseMenuItem(c)
	if err != nil {
		return err
	}

	item := &domain.MenuItem{
		Name:     req.Name,
		Recipe:   req.Recipe,
		Image:    req.Image,
		Category: req.Category,
		Price:    req.Price,
	}
	if err := h.menu.Create(c.Context(), item); err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.FromMenuItem(item)})
}

// Update handles PATCH /menu/:id.
func (h *MenuHandler) Update(c *fiber.Ctx) error {
	req, err := parseMenuItem(c)
	if err != nil {
		return err
	}

	item := &domain.MenuItem{
		ID:       c.Params("id"),
		Name:     req.Name,
		Recipe:   req.Recipe,
		Image:    req.Image,
		Category: req.Category,
		Price:    req.Price,
	}
	if err := h.menu.Update(c.Context(), item); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("menu item")
		}
		return err
	}
	return c.JSON(fiber.Map{"data": dto.FromMenuItem(item)})
}

// Delete handles DELETE /menu/:id.
func (h *MenuHandler) Delete(c *fiber.Ctx) error {
	if err := h.menu.Delete(c.Context(), c.Params("id")); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("menu item")
		}
		return err
	}
	return c.JSON(fiber.Map{"deleted": 1})
}

func parseMenuItem(c *fiber.Ctx) (*dto.MenuItemRequest, error) {
	var req dto.MenuItemRequest
	if err := c.BodyParser(&req); err != nil {
		return nil, apperrors.NewValidationError("invalid payload")
	}
	if req.Name == "" || req.Category == "" {
		return nil, apperrors.NewValidationError("name and category required")
	}
	if req.Price < 0 {
		return nil, apperrors.NewValidationError("price must not be negative")
	}
	return &req, nil
}
