package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/artem13815/folio/api/http/presenter"
	"github.com/artem13815/folio/pkg/logger"
)

// MaxBodyBytes покрывает загрузку резюме до 15MB плюс multipart-обвязку.
const MaxBodyBytes = 16 << 20

const msgInternal = "internal server error"

// NewApp создаёт Fiber-приложение с общим обработчиком ошибок.
func NewApp(readTimeout time.Duration, log *zap.Logger) *fiber.App {
	return fiber.New(fiber.Config{
		AppName:               "folio",
		ReadTimeout:           readTimeout,
		BodyLimit:             MaxBodyBytes,
		DisableStartupMessage: true,
		ErrorHandler:          ErrorHandler(log),
	})
}

// ErrorHandler отдаёт текст только для *fiber.Error. Остальные ошибки,
// включая перехваченные паники, наружу уходят обезличенными.
func ErrorHandler(log *zap.Logger) fiber.ErrorHandler {
	log = logger.OrNop(log)
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return presenter.Error(c, fe.Code, fe.Message)
		}
		log.Error("unhandled error",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Error(err),
		)
		return presenter.Error(c, fiber.StatusInternalServerError, msgInternal)
	}
}
