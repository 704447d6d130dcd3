package handlers

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

const maxPageLimit = 200

// parseLimitOffset читает ?limit=&offset=; некорректные значения дают дефолты.
func parseLimitOffset(c *fiber.Ctx, defLimit int) (limit, offset int) {
	limit = defLimit
	offset = 0
	if v := strings.TrimSpace(c.Query("limit")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= maxPageLimit {
			limit = n
		}
	}
	if v := strings.TrimSpace(c.Query("offset")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			offset = n
		}
	}
	return limit, offset
}

// page: срез списка для ответа админки. Items никогда не nil.
type page[T any] struct {
	Items  []T `json:"items"`
	Total  int `json:"total"`
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

func paginate[T any](items []T, limit, offset int) page[T] {
	p := page[T]{Items: []T{}, Total: len(items), Limit: limit, Offset: offset}
	if offset >= len(items) {
		return p
	}
	end := offset + limit
	if end > len(items) {
		end = len(items)
	}
	p.Items = items[offset:end]
	return p
}
