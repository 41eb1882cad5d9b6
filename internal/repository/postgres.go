package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/tinybigcorp/user-service/internal/domain"
)

// Postgres class for unique_violation, see pq.Error.Code.
const uniqueViolation = "23505"

// PostgresRepository provides user persistence backed by PostgreSQL.
// Uniqueness of email and username is enforced by the unique constraints
// on the users table; this repository translates the resulting driver
// error instead of pre-checking, so concurrent colliding creates race
// safely (exactly one wins).
type PostgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository initializes a repository over an open connection pool.
func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

var _ domain.UserRepository = (*PostgresRepository)(nil)

const defaultListLimit = 100

// Create inserts a new user and returns it with the store-assigned
// id and timestamps populated.
func (r *PostgresRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO users (email, username, full_name, is_active)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at`
	created := *user
	err = tx.QueryRowContext(ctx, query, user.Email, user.Username, user.FullName, user.IsActive).
		Scan(&created.ID, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("create user: %w", domain.ErrUserAlreadyExists)
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return &created, nil
}

// GetByID retrieves a user by id, returning (nil, nil) on a miss.
func (r *PostgresRepository) GetByID(ctx context.Context, id int) (*domain.User, error) {
	return r.getBy(ctx, "id = $1", id)
}

// GetByEmail retrieves a user by email, returning (nil, nil) on a miss.
func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getBy(ctx, "email = $1", email)
}

// GetByUsername retrieves a user by username, returning (nil, nil) on a miss.
func (r *PostgresRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.getBy(ctx, "username = $1", username)
}

func (r *PostgresRepository) getBy(ctx context.Context, where string, arg any) (*domain.User, error) {
	user := &domain.User{}
	query := `
		SELECT id, email, username, full_name, is_active, created_at, updated_at
		FROM users
		WHERE ` + where
	err := r.db.QueryRowContext(ctx, query, arg).
		Scan(&user.ID, &user.Email, &user.Username, &user.FullName,
			&user.IsActive, &user.CreatedAt, &user.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}

// Update persists the editable fields of an existing user. updated_at is
// set server-side so it shares a clock with created_at.
func (r *PostgresRepository) Update(ctx context.Context, user *domain.User) (*domain.User, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		UPDATE users
		SET email = $1, username = $2, full_name = $3, is_active = $4, updated_at = CURRENT_TIMESTAMP
		WHERE id = $5
		RETURNING created_at, updated_at`
	updated := *user
	err = tx.QueryRowContext(ctx, query,
		user.Email, user.Username, user.FullName, user.IsActive, user.ID).
		Scan(&updated.CreatedAt, &updated.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("update user %d: %w", user.ID, domain.ErrUserNotFound)
	}
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("update user %d: %w", user.ID, domain.ErrUserAlreadyExists)
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return &updated, nil
}

// List returns users matching the filter, ordered by id so pages are stable.
func (r *PostgresRepository) List(ctx context.Context, filter domain.ListFilter) ([]domain.User, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}

	query := `
		SELECT id, email, username, full_name, is_active, created_at, updated_at
		FROM users`
	args := []any{}
	if filter.IsActive != nil {
		query += ` WHERE is_active = $1`
		args = append(args, *filter.IsActive)
	}
	query += fmt.Sprintf(` ORDER BY id OFFSET $%d LIMIT $%d`, len(args)+1, len(args)+2)
	args = append(args, filter.Offset, limit)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	users := []domain.User{}
	for rows.Next() {
		var user domain.User
		if err := rows.Scan(&user.ID, &user.Email, &user.Username, &user.FullName,
			&user.IsActive, &user.CreatedAt, &user.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan user row: %w", err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read user rows: %w", err)
	}
	return users, nil
}

// Delete removes a user row and reports whether one existed.
func (r *PostgresRepository) Delete(ctx context.Context, id int) (bool, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete user: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return affected > 0, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}
