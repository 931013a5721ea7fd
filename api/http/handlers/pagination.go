package handlers

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// maxPageLimit caps ?limit on list endpoints.
const maxPageLimit = 200

// parseLimitOffset reads ?limit and ?offset; invalid or out-of-range values fall back to defaults.
func parseLimitOffset(c *fiber.Ctx, defLimit int) (limit, offset int) {
	limit = defLimit
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
