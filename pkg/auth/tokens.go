package auth

import "context"

// TokenGenerator выпускает токены (JWT).
type TokenGenerator interface {
	Generate(ctx context.Context, user User) (string, error)
}
