package health

import (
	"context"
	"errors"
	"fmt"
)

// Checker: одна внешняя зависимость (сейчас только Postgres).
type Checker interface {
	Name() string
	Check(ctx context.Context) error
}

type ReadinessUseCase interface {
	Ready(ctx context.Context) error
}

type service struct {
	checkers []Checker
}

// NewService объединяет проверки зависимостей. Без проверок сервис
// всегда готов, например при запуске без DATABASE_URL.
func NewService(checkers ...Checker) ReadinessUseCase {
	return &service{checkers: checkers}
}

// Ready запускает все проверки и объединяет ошибки.
func (s *service) Ready(ctx context.Context) error {
	var errs []error
	for _, ch := range s.checkers {
		if err := ch.Check(ctx); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", ch.Name(), err))
		}
	}
	return errors.Join(errs...)
}
