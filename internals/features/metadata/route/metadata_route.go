package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"worklaw_backend/internals/configs"
	wageController "worklaw_backend/internals/features/metadata/controller"
	authMW "worklaw_backend/internals/middlewares/auth"
)

// Public read
func MetadataPublicRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := &wageController.MinimumWageController{DB: db}

	grp := app.Group("/metadata")
	grp.Get("/minimum-wage", ctrl.GetMinimumWage)
}

// Admin CRUD + history (bearer token, role admin)
func MetadataAdminRoutes(app *fiber.App, db *gorm.DB, s configs.Settings) {
	ctrl := wageController.NewMinimumWageAdminController(db, s)

	grp := app.Group("/admin/metadata", authMW.RequireAdmin(s))
	grp.Get("/minimum-wage", ctrl.List)
	grp.Post("/minimum-wage", ctrl.Create)
	grp.Put("/minimum-wage/:year", ctrl.Update)
	grp.Delete("/minimum-wage/:year", ctrl.Delete)
	grp.Get("/minimum-wage/:year/history", ctrl.History)
}
