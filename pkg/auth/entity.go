package auth

import (
	"time"

	"github.com/google/uuid"
)

// User: учётная запись администратора CMS.
type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	IsAdmin      bool
	CreatedAt    time.Time
}
