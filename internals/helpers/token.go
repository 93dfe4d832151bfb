package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// GetBearerToken returns the raw JWT from the Authorization header.
// Empty string means the header was missing or not "Bearer <token>".
func GetBearerToken(c *fiber.Ctx) string {
	const p = "Bearer "
	auth := c.Get(fiber.HeaderAuthorization)
	if len(auth) > len(p) && strings.HasPrefix(auth, p) {
		return strings.TrimSpace(auth[len(p):])
	}
	return ""
}
