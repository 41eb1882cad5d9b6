package domain

import "time"

// User represents a user in the system.
// It is a pure business object with no storage or transport concerns.
type User struct {
	ID        int
	Email     string
	Username  string
	FullName  string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Deactivate marks the user account as inactive.
// Users are deactivated, never deleted, by business rule.
func (u *User) Deactivate() {
	u.IsActive = false
}

// Activate marks the user account as active.
func (u *User) Activate() {
	u.IsActive = true
}

// UpdateProfile changes the user's descriptive fields.
func (u *User) UpdateProfile(fullName string) {
	u.FullName = fullName
	u.UpdatedAt = time.Now().UTC()
}
