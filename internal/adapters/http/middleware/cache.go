package middleware

import (
	"github.com/gofiber/fiber/v2"
)

// NoCacheHeaders disables browser caching. Used on the queue-info
// polling endpoint so the SPA always sees a fresh snapshot.
func NoCacheHeaders() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Set("Cache-Control", "no-store, no-cache, must-revalidate")
		c.Set("Pragma", "no-cache")
		c.Set("Expires", "0")
		return c.Next()
	}
}
