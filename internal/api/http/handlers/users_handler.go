package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/bistro-service/internal/api/dto"
	"github.com/spec-kit/bistro-service/internal/auth"
	"github.com/spec-kit/bistro-service/internal/service"
	apperrors "github.com/spec-kit/bistro-service/pkg/util"
)

// UsersHandler exposes token issuance and user management endpoints.
type UsersHandler struct {
	auth  *service.AuthService
	users *service.UserService
}

// NewUsersHandler constructs handler.
func NewUsersHandler(authService *service.AuthService, userService *service.UserService) *UsersHandler {
	return &UsersHandler{auth: authService, users: userService}
}

// IssueToken handles POST /jwt.
func (h *UsersHandler) IssueToken(c *fiber.Ctx) error {
	var req dto.TokenRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload")
	}
	if req.Email == "" {
		return apperrors.NewValidationError("email required")
	}

	token, _, err := h.auth.IssueToken(c.Context(), req.Email, req.Role)
	if err != nil {
		return err
	}
	return c.JSON(dto.TokenResponse{Token: token})
}

// Create handles POST /users. Duplicate registrations are acknowledged
// without inserting, matching the client contract.
func (h *UsersHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload")
	}
	if req.Email == "" {
		return apperrors.NewValidationError("email required")
	}

	user, err := h.users.Create(c.Context(), req.Name, req.Email)
	if err != nil {
		if errors.Is(err, service.ErrUserExists) {
			return c.JSON(fiber.Map{"message": "user already exists"})
		}
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.FromUser(user)})
}

// List handles GET /users (admin only).
func (h *UsersHandler) List(c *fiber.Ctx) error {
	users, err := h.users.List(c.Context())
	if err != nil {
		return err
	}

	out := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		out = append(out, dto.FromUser(&users[i]))
	}
	return c.JSON(fiber.Map{"data": out})
}

// AdminStatus handles GET /users/admin/:email. Callers may only query
// their own status; the check compares against the authenticated
// identity, never the path alone.
func (h *UsersHandler) AdminStatus(c *fiber.Ctx) error {
	email := c.Params("email")
	if err := auth.RequireOwnership(c, email); err != nil {
		return err
	}

	admin, err := h.auth.AdminStatus(c.Context(), email)
	if err != nil {
		return err
	}
	return c.JSON(dto.AdminStatusResponse{Admin: admin})
}

// Promote handles PATCH /users/admin/:id.
func (h *UsersHandler) Promote(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.users.Promote(c.Context(), id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"modified": 1})
}
