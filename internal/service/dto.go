package service

import (
	"net/mail"
	"time"
	"unicode/utf8"

	"github.com/tinybigcorp/user-service/internal/domain"
)

// CreateUserCommand is the input shape for user creation.
type CreateUserCommand struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	FullName string `json:"full_name"`
}

// Validate checks the command's field constraints. It returns a
// *domain.ValidationError for the first failing field, before any
// repository work happens.
func (c *CreateUserCommand) Validate() error {
	if _, err := mail.ParseAddress(c.Email); err != nil {
		return domain.NewValidationError("email", "must be a valid email address")
	}
	if n := utf8.RuneCountInString(c.Username); n < 3 || n > 50 {
		return domain.NewValidationError("username", "must be between 3 and 50 characters")
	}
	if n := utf8.RuneCountInString(c.FullName); n < 1 || n > 100 {
		return domain.NewValidationError("full_name", "must be between 1 and 100 characters")
	}
	return nil
}

// UpdateUserCommand is the input shape for a profile update.
// A nil FullName leaves the field unchanged.
type UpdateUserCommand struct {
	FullName *string `json:"full_name"`
}

// Validate checks the command's field constraints.
func (c *UpdateUserCommand) Validate() error {
	if c.FullName != nil {
		if n := utf8.RuneCountInString(*c.FullName); n < 1 || n > 100 {
			return domain.NewValidationError("full_name", "must be between 1 and 100 characters")
		}
	}
	return nil
}

// UserDto is the output shape returned to callers of the service.
type UserDto struct {
	ID        int       `json:"id"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	FullName  string    `json:"full_name"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toDto(user *domain.User) *UserDto {
	return &UserDto{
		ID:        user.ID,
		Email:     user.Email,
		Username:  user.Username,
		FullName:  user.FullName,
		IsActive:  user.IsActive,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}
