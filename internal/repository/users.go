package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yourusername/resumecoach-api/internal/model"
)

type UserRepo struct {
	pool *pgxpool.Pool
}

func NewUserRepo(pool *pgxpool.Pool) *UserRepo {
	return &UserRepo{pool: pool}
}

// FindByEmail looks up a user by email, including the password hash for
// credential checks
func (r *UserRepo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var u model.User
	err := r.pool.QueryRow(ctx, `
		SELECT id, name, email, target_role, password_hash, created_at, updated_at
		FROM users
		WHERE email = lower($1)
	`, email).Scan(
		&u.ID, &u.Name, &u.Email, &u.TargetRole, &u.PasswordHash,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("finding user by email: %w", err)
	}
	return &u, nil
}

// FindByID looks up a user by UUID
func (r *UserRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	var u model.User
	err := r.pool.QueryRow(ctx, `
		SELECT id, name, email, target_role, password_hash, created_at, updated_at
		FROM users
		WHERE id = $1
	`, id).Scan(
		&u.ID, &u.Name, &u.Email, &u.TargetRole, &u.PasswordHash,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("finding user by id: %w", err)
	}
	return &u, nil
}

// Create inserts a new user with an already-hashed password
func (r *UserRepo) Create(ctx context.Context, name, email, passwordHash string) (*model.User, error) {
	var u model.User
	err := r.pool.QueryRow(ctx, `
		INSERT INTO users (name, email, password_hash)
		VALUES ($1, lower($2), $3)
		RETURNING id, name, email, target_role, password_hash, created_at, updated_at
	`, name, email, passwordHash).Scan(
		&u.ID, &u.Name, &u.Email, &u.TargetRole, &u.PasswordHash,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("creating user: %w", err)
	}
	return &u, nil
}

// Update updates a user's editable profile fields
func (r *UserRepo) Update(ctx context.Context, id uuid.UUID, name, email, targetRole string) (*model.User, error) {
	var u model.User
	err := r.pool.QueryRow(ctx, `
		UPDATE users
		SET name = $2, email = lower($3), target_role = $4, updated_at = now()
		WHERE id = $1
		RETURNING id, name, email, target_role, password_hash, created_at, updated_at
	`, id, name, email, targetRole).Scan(
		&u.ID, &u.Name, &u.Email, &u.TargetRole, &u.PasswordHash,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("updating user: %w", err)
	}
	return &u, nil
}
