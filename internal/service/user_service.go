package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/bistro-service/internal/domain"
	"github.com/spec-kit/bistro-service/internal/events"
	"github.com/spec-kit/bistro-service/internal/repository"
)

// ErrUserExists signals a duplicate registration by email.
var ErrUserExists = errors.New("user already exists")

// UserService coordinates user records and role promotion.
type UserService struct {
	users      repository.UserRepository
	dispatcher events.Dispatcher
}

// NewUserService builds the service.
func NewUserService(users repository.UserRepository, dispatcher events.Dispatcher) *UserService {
	return &UserService{users: users, dispatcher: dispatcher}
}

// Create stores a new user unless the email is already registered.
func (s *UserService) Create(ctx context.Context, name, email string) (*domain.User, error) {
	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, ErrUserExists
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	user := &domain.User{Name: name, Email: email}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// List returns all users.
func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.users.List(ctx)
}

// Promote grants the admin role to the user with the given id.
func (s *UserService) Promote(ctx context.Context, id string) error {
	if err := s.users.PromoteToAdmin(ctx, id); err != nil {
		return err
	}
	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventUserPromoted,
			Subject:   id,
			Timestamp: time.Now(),
			Payload:   events.UserPromotedPayload{UserID: id},
		})
	}
	return nil
}
