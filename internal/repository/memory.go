package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/tinybigcorp/user-service/internal/domain"
)

// MemoryRepository is a map-backed UserRepository used in tests and
// anywhere a database is unavailable. It enforces the same uniqueness
// and not-found semantics as the Postgres implementation.
type MemoryRepository struct {
	mu     sync.RWMutex
	users  map[int]domain.User
	nextID int
}

// NewMemoryRepository initializes an empty in-memory repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{users: make(map[int]domain.User), nextID: 1}
}

var _ domain.UserRepository = (*MemoryRepository)(nil)

func (r *MemoryRepository) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.users {
		if existing.Email == user.Email || existing.Username == user.Username {
			return nil, fmt.Errorf("create user: %w", domain.ErrUserAlreadyExists)
		}
	}

	created := *user
	created.ID = r.nextID
	r.nextID++
	now := time.Now().UTC()
	created.CreatedAt = now
	created.UpdatedAt = now
	r.users[created.ID] = created
	return &created, nil
}

func (r *MemoryRepository) GetByID(_ context.Context, id int) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if user, ok := r.users[id]; ok {
		return &user, nil
	}
	return nil, nil
}

func (r *MemoryRepository) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	return r.findBy(func(u domain.User) bool { return u.Email == email })
}

func (r *MemoryRepository) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	return r.findBy(func(u domain.User) bool { return u.Username == username })
}

func (r *MemoryRepository) findBy(match func(domain.User) bool) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, user := range r.users {
		if match(user) {
			u := user
			return &u, nil
		}
	}
	return nil, nil
}

func (r *MemoryRepository) Update(_ context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.users[user.ID]
	if !ok {
		return nil, fmt.Errorf("update user %d: %w", user.ID, domain.ErrUserNotFound)
	}
	for id, existing := range r.users {
		if id == user.ID {
			continue
		}
		if existing.Email == user.Email || existing.Username == user.Username {
			return nil, fmt.Errorf("update user %d: %w", user.ID, domain.ErrUserAlreadyExists)
		}
	}

	updated := *user
	updated.CreatedAt = current.CreatedAt
	updated.UpdatedAt = time.Now().UTC()
	r.users[updated.ID] = updated
	return &updated, nil
}

func (r *MemoryRepository) List(_ context.Context, filter domain.ListFilter) ([]domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	limit := filter.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}

	all := make([]domain.User, 0, len(r.users))
	for _, user := range r.users {
		if filter.IsActive != nil && user.IsActive != *filter.IsActive {
			continue
		}
		all = append(all, user)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })

	if filter.Offset >= len(all) {
		return []domain.User{}, nil
	}
	all = all[filter.Offset:]
	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (r *MemoryRepository) Delete(_ context.Context, id int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[id]; !ok {
		return false, nil
	}
	delete(r.users, id)
	return true, nil
}
