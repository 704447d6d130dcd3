package checkers

import (
	"context"
	"time"
)

// Pinger реализуется *pgxpool.Pool.
type Pinger interface {
	Ping(ctx context.Context) error
}

// PostgresChecker проверяет, что хранилище записей резюме доступно.
type PostgresChecker struct {
	db      Pinger
	timeout time.Duration
}

// NewPostgresChecker: timeout <= 0 означает одну секунду.
func NewPostgresChecker(db Pinger, timeout time.Duration) *PostgresChecker {
	if timeout <= 0 {
		timeout = time.Second
	}
	return &PostgresChecker{db: db, timeout: timeout}
}

func (c *PostgresChecker) Name() string { return "postgres" }

func (c *PostgresChecker) Check(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()
	return c.db.Ping(ctx)
}
