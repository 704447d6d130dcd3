package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/artem13815/folio/pkg/auth"
	storage "github.com/artem13815/folio/pkg/storage/postgres"
)

const uniqueViolation = "23505"

// UserRepository хранит учётки администраторов CMS.
type UserRepository struct {
	pool *pgxpool.Pool
}

var _ auth.UserRepository = (*UserRepository)(nil)

func NewUserRepository(ctx context.Context, pool *pgxpool.Pool) (*UserRepository, error) {
	if err := storage.Migrate(ctx, pool, usersSchema); err != nil {
		return nil, fmt.Errorf("users schema: %w", err)
	}
	return &UserRepository{pool: pool}, nil
}

const usersSchema = `
CREATE TABLE IF NOT EXISTS admin_users (
	id UUID PRIMARY KEY,
	email TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL,
	is_admin BOOLEAN NOT NULL DEFAULT TRUE,
	created_at TIMESTAMPTZ NOT NULL
);
`

func (r *UserRepository) Create(ctx context.Context, user auth.User) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO admin_users (id, email, password_hash, is_admin, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, user.ID, normalizeEmail(user.Email), user.PasswordHash, user.IsAdmin, user.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return auth.ErrUserAlreadyExists
		}
		return fmt.Errorf("insert admin user: %w", err)
	}
	return nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (auth.User, error) {
	var user auth.User
	err := r.pool.QueryRow(ctx, `
		SELECT id, email, password_hash, is_admin, created_at
		FROM admin_users WHERE email = $1
	`, normalizeEmail(email)).Scan(&user.ID, &user.Email, &user.PasswordHash, &user.IsAdmin, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return auth.User{}, auth.ErrNotFound
		}
		return auth.User{}, fmt.Errorf("select admin user: %w", err)
	}
	user.CreatedAt = user.CreatedAt.UTC()
	return user, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
