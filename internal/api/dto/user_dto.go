package dto

import (
	"time"

	"github.com/spec-kit/bistro-service/internal/domain"
)

// TokenRequest is the subject payload signed into an issued token. The
// role tag, if a client supplies one, is carried in claims but never
// trusted by authorization.
type TokenRequest struct {
	Email string       `json:"email"`
	Role  *domain.Role `json:"role,omitempty"`
}

// TokenResponse returns the signed token.
type TokenResponse struct {
	Token string `json:"token"`
}

// CreateUserRequest payload for new users.
type CreateUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// UserResponse is the wire shape of a user record.
type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// AdminStatusResponse reports the stored admin flag for a subject.
type AdminStatusResponse struct {
	Admin bool `json:"admin"`
}

// FromUser maps the domain model to the wire shape.
func FromUser(user *domain.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Role:      string(user.Role),
		CreatedAt: user.CreatedAt,
	}
}
