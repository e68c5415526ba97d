package auth

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/bistro-service/internal/domain"
	apperrors "github.com/spec-kit/bistro-service/pkg/util"
)

const identityKey = "auth_identity"

// Identity is the authenticated subject attached to the request context.
// It is the only channel downstream code may learn the caller from;
// identity fields in request bodies or queries are never trusted.
type Identity struct {
	Email string
	// RoleClaim is whatever role tag the token carried at issuance.
	// Authorization decisions never read it; see Middleware.RequireAdmin.
	RoleClaim *domain.Role
}

// RoleResolver is the single store capability the policy layer needs:
// resolving the current user record for a subject email.
type RoleResolver interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

// Middleware validates bearer tokens and enforces role checks.
type Middleware struct {
	tokens *TokenManager
	roles  RoleResolver
}

// NewMiddleware constructs the auth middleware.
func NewMiddleware(tokens *TokenManager, roles RoleResolver) *Middleware {
	return &Middleware{tokens: tokens, roles: roles}
}

// Authenticate enforces a valid bearer token. Token verification is pure;
// no store access happens here.
func (m *Middleware) Authenticate(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return apperrors.NewUnauthorized("unauthorized access!")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return apperrors.NewUnauthorized("unauthorized access!")
	}

	claims, err := m.tokens.ParseToken(parts[1])
	if err != nil {
		return apperrors.NewUnauthorized("unauthorized access!")
	}

	c.Locals(identityKey, &Identity{Email: claims.Email, RoleClaim: claims.Role})
	return c.Next()
}

// IdentityFromContext retrieves the authenticated subject.
func IdentityFromContext(c *fiber.Ctx) (*Identity, bool) {
	val := c.Locals(identityKey)
	if val == nil {
		return nil, false
	}
	identity, ok := val.(*Identity)
	return identity, ok
}
