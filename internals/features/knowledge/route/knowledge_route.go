package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	knowledgeController "worklaw_backend/internals/features/knowledge/controller"
)

func KnowledgeRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := knowledgeController.NewKnowledgeController(db)

	grp := app.Group("/knowledge")
	grp.Get("/minimum_wage", ctrl.ListMinimumWage)
	grp.Get("/holidays/:year", ctrl.ListHolidays)
	grp.Get("/policy_bulletins", ctrl.ListPolicyBulletins)
	grp.Get("/interpretations", ctrl.ListInterpretations)
}
