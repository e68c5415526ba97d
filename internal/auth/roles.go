package auth

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"

	apperrors "github.com/spec-kit/bistro-service/pkg/util"
)

// RequireAdmin denies unless the store's current role for the subject is
// admin. The role is re-resolved on every request; a role tag embedded in
// the token is never consulted, so a stale token cannot keep privileges a
// promotion revoked (or gain ones it never had). Must run after
// Authenticate. Returns without calling the next handler on denial.
func (m *Middleware) RequireAdmin(c *fiber.Ctx) error {
	identity, ok := IdentityFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("unauthorized access!")
	}

	user, err := m.roles.GetByEmail(c.Context(), identity.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewForbidden("forbidden message")
		}
		return apperrors.MapError(err)
	}
	if !user.IsAdmin() {
		return apperrors.NewForbidden("forbidden message")
	}
	return c.Next()
}

// RequireOwnership denies unless the authenticated subject matches the
// resource's declared owner email. Admins get no implicit bypass here;
// routes that want one must compose RequireAdmin explicitly.
func RequireOwnership(c *fiber.Ctx, ownerEmail string) error {
	identity, ok := IdentityFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("unauthorized access!")
	}
	if identity.Email != ownerEmail {
		return apperrors.NewForbidden("forbidden access!")
	}
	return nil
}
