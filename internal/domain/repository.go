package domain

import "context"

// ListFilter narrows and pages List results.
// A nil IsActive matches both active and inactive users.
// Limit <= 0 falls back to the implementation's default page size.
type ListFilter struct {
	Offset   int
	Limit    int
	IsActive *bool
}

// UserRepository is the persistence contract for users. The service
// layer depends only on this interface, never on a concrete store.
//
// Get methods return (nil, nil) when no user matches; absence is not an
// error at this layer. Create and Update return ErrUserAlreadyExists
// when a uniqueness invariant on email or username would be broken, and
// Update returns ErrUserNotFound when no row has the given ID.
type UserRepository interface {
	Create(ctx context.Context, user *User) (*User, error)
	GetByID(ctx context.Context, id int) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	Update(ctx context.Context, user *User) (*User, error)
	List(ctx context.Context, filter ListFilter) ([]User, error)
	// Delete removes a user row and reports whether one was removed.
	// Deleting a missing ID is a no-op, not an error. No business use
	// case calls this yet; it exists at the repository boundary only.
	Delete(ctx context.Context, id int) (bool, error)
}
