package user

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"
)

const pgUniqueViolation = "23505"

type Repository interface {
	Create(ctx context.Context, u *User) error
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id uint) (*User, error)
	Reactivate(ctx context.Context, id uint) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, u *User) error {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO users (email, password_hash, name, phone, role, active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`, u.Email, u.PasswordHash, u.Name, u.Phone, u.Role, u.Active).
		Scan(&u.ID, &u.CreatedAt)

	if pqErr, ok := err.(*pq.Error); ok && string(pqErr.Code) == pgUniqueViolation {
		return ErrEmailExists
	}
	if err != nil {
		return fmt.Errorf("%w: %v", ErrFailedCreateUser, err)
	}
	return nil
}

func (r *repository) GetByEmail(ctx context.Context, email string) (*User, error) {
	u := &User{}
	err := r.db.QueryRowContext(ctx, `
		SELECT id, email, password_hash, name, phone, role, active, created_at
		FROM users
		WHERE email = $1
	`, email).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Name, &u.Phone, &u.Role, &u.Active, &u.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedGetUser, err)
	}
	return u, nil
}

func (r *repository) GetByID(ctx context.Context, id uint) (*User, error) {
	u := &User{}
	err := r.db.QueryRowContext(ctx, `
		SELECT id, email, password_hash, name, phone, role, active, created_at
		FROM users
		WHERE id = $1
	`, id).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Name, &u.Phone, &u.Role, &u.Active, &u.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedGetUser, err)
	}
	return u, nil
}

func (r *repository) Reactivate(ctx context.Context, id uint) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE users SET active = TRUE WHERE id = $1
	`, id)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrFailedGetUser, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrFailedGetUser, err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
