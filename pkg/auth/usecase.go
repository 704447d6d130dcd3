package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// AuthUseCase: регистрация и вход администратора.
type AuthUseCase interface {
	Register(ctx context.Context, email, password string) (AuthResult, error)
	Login(ctx context.Context, email, password string) (AuthResult, error)
}

type AuthResult struct {
	User  User
	Token string
}

// MinPasswordLength для пароля администратора.
const MinPasswordLength = 8

type authService struct {
	repo       UserRepository
	tokens     TokenGenerator
	adminEmail string
	now        func() time.Time
}

// NewAuthService возвращает реализацию AuthUseCase по умолчанию.
// Зарегистрироваться может только adminEmail; пустой adminEmail закрывает регистрацию.
func NewAuthService(repo UserRepository, tokens TokenGenerator, adminEmail string) AuthUseCase {
	return &authService{repo: repo, tokens: tokens, adminEmail: normalizeEmail(adminEmail), now: time.Now}
}

func (s *authService) Register(ctx context.Context, email, password string) (AuthResult, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return AuthResult{}, ErrInvalidCredentials
	}
	if s.adminEmail == "" || email != s.adminEmail {
		return AuthResult{}, ErrRegistrationClosed
	}
	if len(password) < MinPasswordLength {
		return AuthResult{}, ErrWeakPassword
	}

	// Администратор один: повторная регистрация запрещена.
	if _, err := s.repo.GetByEmail(ctx, email); err == nil {
		return AuthResult{}, ErrUserAlreadyExists
	} else if !errors.Is(err, ErrNotFound) {
		return AuthResult{}, fmt.Errorf("lookup admin: %w", err)
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return AuthResult{}, fmt.Errorf("hash password: %w", err)
	}

	user := User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: string(passwordHash),
		IsAdmin:      true,
		CreatedAt:    s.now().UTC(),
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return AuthResult{}, fmt.Errorf("create admin: %w", err)
	}
	token, err := s.tokens.Generate(ctx, user)
	if err != nil {
		return AuthResult{}, err
	}
	return AuthResult{User: user, Token: token}, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (AuthResult, error) {
	user, err := s.repo.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return AuthResult{}, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return AuthResult{}, ErrInvalidCredentials
	}
	token, err := s.tokens.Generate(ctx, user)
	if err != nil {
		return AuthResult{}, err
	}
	return AuthResult{User: user, Token: token}, nil
}

func normalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
