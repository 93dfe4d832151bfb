package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"worklaw_backend/internals/configs"
)

// SecurityHeaders sets the usual hardening headers. HSTS is opt-in via
// ENABLE_HSTS because it is harmful on plain-HTTP dev setups.
func SecurityHeaders(s configs.Settings) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Set("X-Content-Type-Options", "nosniff")
		c.Set("X-Frame-Options", "DENY")
		if s.EnableHSTS {
			c.Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
		}
		return c.Next()
	}
}
