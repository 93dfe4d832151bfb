package auth

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"worklaw_backend/internals/configs"
	"worklaw_backend/internals/constants"
	helper "worklaw_backend/internals/helpers"
)

// Locals keys set for downstream handlers
const (
	LocalsAdminSub = "admin_sub"
	LocalsRole     = "role"
)

// RequireAdmin guards the /admin surface: a well-formed Bearer token with a
// valid HS256 signature, unexpired, and role claim "admin". Everything else is
// a 401 before any business logic runs.
func RequireAdmin(s configs.Settings) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := helper.GetBearerToken(c)
		if tokenString == "" {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized: missing or invalid Authorization header")
		}

		claims := jwt.MapClaims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(s.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			log.Printf("[WARNING] admin token rejected: %v", err)
			return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized: invalid token")
		}

		role, _ := claims["role"].(string)
		if role != constants.RoleAdmin {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized: admin role required")
		}

		if sub, ok := claims["sub"].(string); ok {
			c.Locals(LocalsAdminSub, sub)
		}
		c.Locals(LocalsRole, role)
		return c.Next()
	}
}

// AdminSubject returns the token subject stored by RequireAdmin, with the
// configured admin username as fallback for audit rows.
func AdminSubject(c *fiber.Ctx, fallback string) string {
	if v, ok := c.Locals(LocalsAdminSub).(string); ok && v != "" {
		return v
	}
	return fallback
}
