package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"worklaw_backend/internals/configs"
	syncController "worklaw_backend/internals/features/sync/controller"
	"worklaw_backend/internals/middlewares"
	authMW "worklaw_backend/internals/middlewares/auth"
)

func SyncRoutes(app *fiber.App, db *gorm.DB, s configs.Settings) {
	ctrl := syncController.NewSyncController(db)

	grp := app.Group("/admin/sync", authMW.RequireAdmin(s), middlewares.SyncRateLimiter())
	grp.Post("/minwage", ctrl.SyncMinWage)
	grp.Post("/holiday_api", ctrl.SyncHolidays)
	grp.Post("/law_api", ctrl.SyncLaws)
	grp.Post("/interpretation_api", ctrl.SyncInterpretations)
	grp.Post("/moel_notice", ctrl.SyncMoelNotices)
}
