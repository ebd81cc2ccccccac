package api

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v2"
)

const (
	APIKeyHeader     = "x-api-key"
	forbiddenMessage = "Forbidden: Invalid API key."
)

// APIKeyAuth lets a request through only when the x-api-key header exactly
// matches secret. An empty secret never matches.
func APIKeyAuth(secret string) fiber.Handler {
	expected := []byte(secret)
	return func(c *fiber.Ctx) error {
		got := c.Get(APIKeyHeader)
		if got != "" && len(expected) > 0 && subtle.ConstantTimeCompare([]byte(got), expected) == 1 {
			return c.Next()
		}
		authRejects.Inc()
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": forbiddenMessage})
	}
}
