package service

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/bistro-service/internal/auth"
	"github.com/spec-kit/bistro-service/internal/config"
	"github.com/spec-kit/bistro-service/internal/domain"
	"github.com/spec-kit/bistro-service/internal/repository"
)

// AuthService coordinates token issuance and admin status lookups.
type AuthService struct {
	users    repository.UserRepository
	tokenMgr *auth.TokenManager
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, users repository.UserRepository) *AuthService {
	return &AuthService{
		users:    users,
		tokenMgr: auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTLMinutes),
	}
}

// IssueToken signs a token for the given subject email. The subject comes
// straight from the request body; there is no credential check, matching
// the upstream client contract. The compensating control is that admin
// authorization always re-reads the stored role, never the token.
func (s *AuthService) IssueToken(_ context.Context, email string, role *domain.Role) (string, time.Time, error) {
	return s.tokenMgr.GenerateToken(email, role)
}

// AdminStatus reports whether the stored role for the email is admin.
// An absent user is simply not an admin.
func (s *AuthService) AdminStatus(ctx context.Context, email string) (bool, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	return user.IsAdmin(), nil
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}
