package route

import (
	"github.com/gofiber/fiber/v2"

	authController "worklaw_backend/internals/features/auth/controller"
	authService "worklaw_backend/internals/features/auth/service"
	"worklaw_backend/internals/configs"
	"worklaw_backend/internals/middlewares"
)

func AuthRoutes(app *fiber.App, s configs.Settings) {
	ctrl := authController.NewAuthController(authService.NewAuthService(s))

	grp := app.Group("/auth")
	grp.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
}
