package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/blogforge/apiserver/types"
	"github.com/lib/pq"
)

const pqUniqueViolation = "23505"

// UserRepository handles persistence for users and their role associations.
type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// GetByEmail loads a user and its roles by email. Email matching is
// exact, as stored.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (types.User, error) {
	const query = `
		SELECT id, name, email, slug, image, password_hash, created_at, updated_at
		FROM users
		WHERE email = $1`
	var user types.User
	err := r.db.QueryRowContext(ctx, query, email).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.Slug,
		&user.Image,
		&user.PasswordHash,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return types.User{}, ErrNotFound
		}
		return types.User{}, err
	}

	roles, err := r.rolesForUser(ctx, user.ID)
	if err != nil {
		return types.User{}, err
	}
	user.Roles = roles
	return user, nil
}

// Create inserts a user and its role associations in one transaction.
// A duplicate email surfaces as ErrConflict; the uniqueness invariant is
// enforced by the store, so concurrent registrations of the same email
// leave exactly one user behind.
func (r *UserRepository) Create(ctx context.Context, user types.User) (types.User, error) {
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return types.User{}, err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	const insertUser = `
		INSERT INTO users (name, email, slug, image, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	if err := tx.QueryRowContext(
		ctx,
		insertUser,
		user.Name,
		user.Email,
		user.Slug,
		user.Image,
		user.PasswordHash,
		user.CreatedAt,
		user.UpdatedAt,
	).Scan(&user.ID); err != nil {
		return types.User{}, mapConflict(err)
	}

	const insertRole = `
		INSERT INTO user_roles (user_id, role_id)
		SELECT $1, id FROM roles WHERE name = $2`
	for _, role := range user.Roles {
		if _, err := tx.ExecContext(ctx, insertRole, user.ID, role); err != nil {
			return types.User{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return types.User{}, mapConflict(err)
	}
	return user, nil
}

// Update persists mutable profile fields of an existing user.
func (r *UserRepository) Update(ctx context.Context, user types.User) (types.User, error) {
	user.UpdatedAt = time.Now()

	const query = `
		UPDATE users
		SET name = $1,
			image = $2,
			password_hash = $3,
			updated_at = $4
		WHERE id = $5`
	result, err := r.db.ExecContext(
		ctx,
		query,
		user.Name,
		user.Image,
		user.PasswordHash,
		user.UpdatedAt,
		user.ID,
	)
	if err != nil {
		return types.User{}, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return types.User{}, err
	}
	if affected == 0 {
		return types.User{}, ErrNotFound
	}
	return user, nil
}

func (r *UserRepository) rolesForUser(ctx context.Context, userID int) ([]string, error) {
	const query = `
		SELECT r.name
		FROM roles r
		JOIN user_roles ur ON ur.role_id = r.id
		WHERE ur.user_id = $1`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var roles []string
	for rows.Next() {
		var role string
		if err := rows.Scan(&role); err != nil {
			return nil, err
		}
		roles = append(roles, role)
	}
	return roles, rows.Err()
}

func mapConflict(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation {
		return ErrConflict
	}
	return err
}
