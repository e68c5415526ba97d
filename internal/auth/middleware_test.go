package auth

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/bistro-service/internal/domain"
	apperrors "github.com/spec-kit/bistro-service/pkg/util"
)

// stubRoleResolver is a test double for the user store.
type stubRoleResolver struct {
	users map[string]*domain.User
}

func (s *stubRoleResolver) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	user, ok := s.users[email]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return user, nil
}

func newTestApp() *fiber.App {
	return fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			domainErr := apperrors.ToDomainError(err)
			return c.Status(domainErr.HTTPStatus).JSON(fiber.Map{
				"error":   true,
				"message": domainErr.Message,
			})
		},
	})
}

func TestAuthenticateMissingHeader(t *testing.T) {
	m := NewMiddleware(NewTokenManager("test-secret", 60), &stubRoleResolver{})

	app := newTestApp()
	app.Get("/protected", m.Authenticate, func(c *fiber.Ctx) error {
		t.Error("handler should not be called")
		return nil
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"error":true,"message":"unauthorized access!"}`, string(body))
}

func TestAuthenticateBadScheme(t *testing.T) {
	tm := NewTokenManager("test-secret", 60)
	m := NewMiddleware(tm, &stubRoleResolver{})

	token, _, err := tm.GenerateToken("a@x.com", nil)
	require.NoError(t, err)

	app := newTestApp()
	app.Get("/protected", m.Authenticate, func(c *fiber.Ctx) error {
		t.Error("handler should not be called")
		return nil
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Basic "+token)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthenticateInvalidToken(t *testing.T) {
	m := NewMiddleware(NewTokenManager("test-secret", 60), &stubRoleResolver{})

	app := newTestApp()
	app.Get("/protected", m.Authenticate, func(c *fiber.Ctx) error {
		t.Error("handler should not be called")
		return nil
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthenticateAttachesIdentity(t *testing.T) {
	tm := NewTokenManager("test-secret", 60)
	m := NewMiddleware(tm, &stubRoleResolver{})

	token, _, err := tm.GenerateToken("a@x.com", nil)
	require.NoError(t, err)

	app := newTestApp()
	app.Get("/protected", m.Authenticate, func(c *fiber.Ctx) error {
		identity, ok := IdentityFromContext(c)
		require.True(t, ok)
		assert.Equal(t, "a@x.com", identity.Email)
		return c.SendStatus(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRequireAdminDeniesNonAdmin(t *testing.T) {
	tm := NewTokenManager("test-secret", 60)
	resolver := &stubRoleResolver{users: map[string]*domain.User{
		"a@x.com": {ID: "u1", Email: "a@x.com"},
	}}
	m := NewMiddleware(tm, resolver)

	token, _, err := tm.GenerateToken("a@x.com", nil)
	require.NoError(t, err)

	app := newTestApp()
	app.Get("/admin", m.Authenticate, m.RequireAdmin, func(c *fiber.Ctx) error {
		t.Error("handler should not be called")
		return nil
	})

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"error":true,"message":"forbidden message"}`, string(body))
}

func TestRequireAdminIgnoresTokenRoleClaim(t *testing.T) {
	tm := NewTokenManager("test-secret", 60)
	resolver := &stubRoleResolver{users: map[string]*domain.User{
		"a@x.com": {ID: "u1", Email: "a@x.com"},
	}}
	m := NewMiddleware(tm, resolver)

	// Token claims admin, the store does not. The store wins.
	role := domain.RoleAdmin
	token, _, err := tm.GenerateToken("a@x.com", &role)
	require.NoError(t, err)

	app := newTestApp()
	app.Get("/admin", m.Authenticate, m.RequireAdmin, func(c *fiber.Ctx) error {
		t.Error("handler should not be called")
		return nil
	})

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestRequireAdminPermitsStoredAdmin(t *testing.T) {
	tm := NewTokenManager("test-secret", 60)
	resolver := &stubRoleResolver{users: map[string]*domain.User{
		"a@x.com": {ID: "u1", Email: "a@x.com", Role: domain.RoleAdmin},
	}}
	m := NewMiddleware(tm, resolver)

	token, _, err := tm.GenerateToken("a@x.com", nil)
	require.NoError(t, err)

	app := newTestApp()
	app.Get("/admin", m.Authenticate, m.RequireAdmin, func(c *fiber.Ctx) error {
		return c.SendStatus(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRequireAdminUnknownSubject(t *testing.T) {
	tm := NewTokenManager("test-secret", 60)
	m := NewMiddleware(tm, &stubRoleResolver{})

	token, _, err := tm.GenerateToken("ghost@x.com", nil)
	require.NoError(t, err)

	app := newTestApp()
	app.Get("/admin", m.Authenticate, m.RequireAdmin, func(c *fiber.Ctx) error {
		t.Error("handler should not be called")
		return nil
	})

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestRequireOwnership(t *testing.T) {
	tm := NewTokenManager("test-secret", 60)
	m := NewMiddleware(tm, &stubRoleResolver{})

	token, _, err := tm.GenerateToken("b@x.com", nil)
	require.NoError(t, err)

	app := newTestApp()
	app.Get("/mine", m.Authenticate, func(c *fiber.Ctx) error {
		if err := RequireOwnership(c, c.Query("email")); err != nil {
			return err
		}
		return c.SendStatus(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/mine?email=a@x.com", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"error":true,"message":"forbidden access!"}`, string(body))

	req = httptest.NewRequest(http.MethodGet, "/mine?email=b@x.com", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
