package utils

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// MaxDisplayCount caps the "load more" window.
const MaxDisplayCount = 1000

// ParseDisplayCount reads the `show` query param used by "load more"
// listings, falling back to def for missing or invalid values.
func ParseDisplayCount(c *fiber.Ctx, def int) int {
	n := parseInt(c.Query("show"), def)
	if n <= 0 {
		return def
	}
	if n > MaxDisplayCount {
		return MaxDisplayCount
	}
	return n
}

// ParseID reads a positive integer route param.
func ParseID(c *fiber.Ctx, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func parseInt(value string, fallback int) int {
	if parsed, err := strconv.Atoi(value); err == nil {
		return parsed
	}
	return fallback
}
