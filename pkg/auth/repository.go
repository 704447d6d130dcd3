package auth

import (
	"context"
	"errors"
)

// Общие ошибки репозитория и сценариев
var (
	ErrNotFound           = errors.New("not found")
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrRegistrationClosed = errors.New("registration is closed")
	ErrWeakPassword       = errors.New("password is too short")
)

// UserRepository отделяет хранение от доменного слоя.
type UserRepository interface {
	Create(ctx context.Context, user User) error
	GetByEmail(ctx context.Context, email string) (User, error)
}
