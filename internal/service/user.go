package service

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/tinybigcorp/user-service/internal/domain"
)

// UserService handles user business logic. It depends only on the
// repository interface, never on a concrete store.
type UserService struct {
	repo domain.UserRepository
	log  *logrus.Logger
}

// NewUserService initializes a new user service.
func NewUserService(repo domain.UserRepository, log *logrus.Logger) *UserService {
	return &UserService{repo: repo, log: log}
}

// CreateUser creates a new active user from the command fields.
// Uniqueness of email and username is enforced by the store; a
// collision surfaces as domain.ErrUserAlreadyExists.
func (s *UserService) CreateUser(ctx context.Context, cmd CreateUserCommand) (*UserDto, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	user := &domain.User{
		Email:    cmd.Email,
		Username: cmd.Username,
		FullName: cmd.FullName,
		IsActive: true,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.log.Infof("User created: %s (id %d)", created.Email, created.ID)
	return toDto(created), nil
}

// GetUserByID retrieves a user by id, failing with domain.ErrUserNotFound
// when no user matches.
func (s *UserService) GetUserByID(ctx context.Context, id int) (*UserDto, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("user %d: %w", id, domain.ErrUserNotFound)
	}
	return toDto(user), nil
}

// GetUserByEmail retrieves a user by email.
func (s *UserService) GetUserByEmail(ctx context.Context, email string) (*UserDto, error) {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("user %s: %w", email, domain.ErrUserNotFound)
	}
	return toDto(user), nil
}

// GetUserByUsername retrieves a user by username.
func (s *UserService) GetUserByUsername(ctx context.Context, username string) (*UserDto, error) {
	user, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("user %s: %w", username, domain.ErrUserNotFound)
	}
	return toDto(user), nil
}

// ListUsers returns users matching the filter, mapped entity by entity.
// An empty result is a valid outcome, not an error.
func (s *UserService) ListUsers(ctx context.Context, filter domain.ListFilter) ([]UserDto, error) {
	users, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	dtos := make([]UserDto, 0, len(users))
	for i := range users {
		dtos = append(dtos, *toDto(&users[i]))
	}
	return dtos, nil
}

// UpdateUser applies a profile update to an existing user.
func (s *UserService) UpdateUser(ctx context.Context, id int, cmd UpdateUserCommand) (*UserDto, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("user %d: %w", id, domain.ErrUserNotFound)
	}

	if cmd.FullName != nil {
		user.UpdateProfile(*cmd.FullName)
	}

	updated, err := s.repo.Update(ctx, user)
	if err != nil {
		return nil, err
	}

	s.log.Infof("User updated: %s (id %d)", updated.Email, updated.ID)
	return toDto(updated), nil
}

// DeactivateUser flips an existing user to inactive and persists the
// change. Deactivating an already inactive user is a valid no-op on the
// flag, though updated_at still advances.
func (s *UserService) DeactivateUser(ctx context.Context, id int) (*UserDto, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("user %d: %w", id, domain.ErrUserNotFound)
	}

	user.Deactivate()

	updated, err := s.repo.Update(ctx, user)
	if err != nil {
		return nil, err
	}

	s.log.Infof("User deactivated: %s (id %d)", updated.Email, updated.ID)
	return toDto(updated), nil
}
