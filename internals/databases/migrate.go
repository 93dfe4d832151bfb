package database

import (
	"gorm.io/gorm"

	knowledgeModel "worklaw_backend/internals/features/knowledge/model"
	lawModel "worklaw_backend/internals/features/law/model"
	wageModel "worklaw_backend/internals/features/metadata/model"
)

// AutoMigrate creates or extends every table. The wage audit log and the
// published notice rows live in separate tables; legacy databases that kept
// notices inside minimum_wage_history are read through the tolerant fallbacks
// instead of being migrated.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&wageModel.MinimumWageModel{},
		&wageModel.MinimumWageHistoryModel{},
		&knowledgeModel.MinimumWageNoticeModel{},
		&knowledgeModel.SourceModel{},
		&knowledgeModel.SyncJobModel{},
		&knowledgeModel.StagingRawModel{},
		&knowledgeModel.HolidayModel{},
		&knowledgeModel.PolicyBulletinModel{},
		&knowledgeModel.AdminInterpretationModel{},
		&lawModel.LawModel{},
		&lawModel.LawArticleModel{},
		&lawModel.LawArticleVersionModel{},
	)
}
