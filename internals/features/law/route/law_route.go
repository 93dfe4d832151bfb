package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	lawController "worklaw_backend/internals/features/law/controller"
)

func LawRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := &lawController.LawController{DB: db}

	grp := app.Group("/law")
	grp.Get("/list", ctrl.ListLaws)
	grp.Get("/articles", ctrl.ListArticles)
	grp.Get("/article-versions", ctrl.ListArticleVersions)
}
