package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"worklaw_backend/internals/configs"
	"worklaw_backend/internals/middlewares/logger"
)

// Setup mounts the base middleware chain. Order matters: recover first so a
// panic anywhere below still yields a 500 JSON, security headers before the
// handlers that write responses.
func Setup(app *fiber.App, s configs.Settings) {
	app.Use(RecoveryMiddleware())
	app.Use(SecurityHeaders(s))
	app.Use(CorsMiddleware(s.CORSOrigins))
	app.Use(logger.LoggerMiddleware())
	app.Use(MetricsMiddleware())
	app.Use(GlobalRateLimiter())
}
