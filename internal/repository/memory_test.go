package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tinybigcorp/user-service/internal/domain"
)

func newUser(email, username string) *domain.User {
	return &domain.User{
		Email:    email,
		Username: username,
		FullName: "Test User",
		IsActive: true,
	}
}

func TestMemoryCreateAssignsIdentity(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	first, err := repo.Create(ctx, newUser("a@x.com", "a"))
	require.NoError(t, err)
	assert.Equal(t, 1, first.ID)
	assert.False(t, first.CreatedAt.IsZero())
	assert.False(t, first.UpdatedAt.IsZero())

	second, err := repo.Create(ctx, newUser("b@x.com", "b"))
	require.NoError(t, err)
	assert.Equal(t, 2, second.ID)
}

func TestMemoryCreateUniqueness(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	_, err := repo.Create(ctx, newUser("a@x.com", "a"))
	require.NoError(t, err)

	_, err = repo.Create(ctx, newUser("a@x.com", "b"))
	assert.ErrorIs(t, err, domain.ErrUserAlreadyExists)

	_, err = repo.Create(ctx, newUser("b@x.com", "a"))
	assert.ErrorIs(t, err, domain.ErrUserAlreadyExists)

	users, err := repo.List(ctx, domain.ListFilter{})
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestMemoryGetMissIsNotAnError(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	user, err := repo.GetByID(ctx, 42)
	require.NoError(t, err)
	assert.Nil(t, user)

	user, err = repo.GetByEmail(ctx, "nobody@x.com")
	require.NoError(t, err)
	assert.Nil(t, user)

	user, err = repo.GetByUsername(ctx, "nobody")
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestMemoryGetByNaturalKeys(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	created, err := repo.Create(ctx, newUser("a@x.com", "a"))
	require.NoError(t, err)

	byEmail, err := repo.GetByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	require.NotNil(t, byEmail)
	assert.Equal(t, created.ID, byEmail.ID)

	byUsername, err := repo.GetByUsername(ctx, "a")
	require.NoError(t, err)
	require.NotNil(t, byUsername)
	assert.Equal(t, created.ID, byUsername.ID)
}

func TestMemoryUpdate(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	created, err := repo.Create(ctx, newUser("a@x.com", "a"))
	require.NoError(t, err)

	created.FullName = "Renamed"
	updated, err := repo.Update(ctx, created)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.FullName)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.True(t, !updated.UpdatedAt.Before(updated.CreatedAt))
}

func TestMemoryUpdateMissingUser(t *testing.T) {
	repo := NewMemoryRepository()

	ghost := newUser("a@x.com", "a")
	ghost.ID = 99
	_, err := repo.Update(context.Background(), ghost)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestMemoryUpdateUniquenessCollision(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	_, err := repo.Create(ctx, newUser("a@x.com", "a"))
	require.NoError(t, err)
	second, err := repo.Create(ctx, newUser("b@x.com", "b"))
	require.NoError(t, err)

	second.Email = "a@x.com"
	_, err = repo.Update(ctx, second)
	assert.ErrorIs(t, err, domain.ErrUserAlreadyExists)
}

func TestMemoryListFilterAndPaging(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	active, err := repo.Create(ctx, newUser("a@x.com", "a"))
	require.NoError(t, err)
	inactive, err := repo.Create(ctx, newUser("b@x.com", "b"))
	require.NoError(t, err)
	inactive.IsActive = false
	_, err = repo.Update(ctx, inactive)
	require.NoError(t, err)

	all, err := repo.List(ctx, domain.ListFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	isActive := true
	activeOnly, err := repo.List(ctx, domain.ListFilter{IsActive: &isActive})
	require.NoError(t, err)
	require.Len(t, activeOnly, 1)
	assert.Equal(t, active.ID, activeOnly[0].ID)

	paged, err := repo.List(ctx, domain.ListFilter{Offset: 1, Limit: 5})
	require.NoError(t, err)
	require.Len(t, paged, 1)
	assert.Equal(t, inactive.ID, paged[0].ID)

	empty, err := repo.List(ctx, domain.ListFilter{Offset: 10})
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestMemoryDeleteIsIdempotent(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	created, err := repo.Create(ctx, newUser("a@x.com", "a"))
	require.NoError(t, err)

	removed, err := repo.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = repo.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, removed)
}
