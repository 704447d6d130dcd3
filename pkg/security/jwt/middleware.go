package jwt

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// NewAuthMiddleware проверяет Bearer JWT (HS256) и кладёт userId,
// email и isAdmin в c.Locals.
func NewAuthMiddleware(secret, expectedIssuer string) fiber.Handler {
	secretBytes := []byte(secret)
	return func(c *fiber.Ctx) error {
		header := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
		if header == "" {
			return unauthorized(c, "missing Authorization header")
		}
		raw := bearerToken(header)
		if raw == "" {
			return unauthorized(c, "empty token")
		}
		claims, err := Parse(secretBytes, expectedIssuer, raw)
		if err != nil {
			return unauthorized(c, err.Error())
		}
		c.Locals("userId", claims.Subject)
		c.Locals("email", claims.Email)
		c.Locals("isAdmin", claims.IsAdmin)
		return c.Next()
	}
}

// RequireAdmin пропускает дальше только токены с флагом администратора.
// Ставится после NewAuthMiddleware.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if isAdmin, _ := c.Locals("isAdmin").(bool); !isAdmin {
			return c.Status(http.StatusForbidden).JSON(fiber.Map{"error": "admin access required"})
		}
		return c.Next()
	}
}

// "Bearer <token>" и просто "<token>" для нестандартных клиентов.
func bearerToken(header string) string {
	scheme, rest, ok := strings.Cut(header, " ")
	if ok && strings.EqualFold(scheme, "Bearer") {
		return strings.TrimSpace(rest)
	}
	return header
}

func unauthorized(c *fiber.Ctx, msg string) error {
	return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"error": msg})
}
