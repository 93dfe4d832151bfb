package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"worklaw_backend/internals/configs"
	authRoute "worklaw_backend/internals/features/auth/route"
	knowledgeRoute "worklaw_backend/internals/features/knowledge/route"
	lawRoute "worklaw_backend/internals/features/law/route"
	metadataRoute "worklaw_backend/internals/features/metadata/route"
	syncRoute "worklaw_backend/internals/features/sync/route"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, s configs.Settings) {
	log.Println("[INFO] Setting up AuthRoutes...")
	authRoute.AuthRoutes(app, s)

	log.Println("[INFO] Setting up public metadata routes...")
	metadataRoute.MetadataPublicRoutes(app, db)

	log.Println("[INFO] Setting up admin metadata routes...")
	metadataRoute.MetadataAdminRoutes(app, db, s)

	log.Println("[INFO] Setting up knowledge routes...")
	knowledgeRoute.KnowledgeRoutes(app, db)

	log.Println("[INFO] Setting up law routes...")
	lawRoute.LawRoutes(app, db)

	log.Println("[INFO] Setting up sync routes...")
	syncRoute.SyncRoutes(app, db, s)
}
