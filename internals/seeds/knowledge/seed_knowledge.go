package knowledge

import (
	"encoding/json"
	"log"
	"os"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	knowledgeModel "worklaw_backend/internals/features/knowledge/model"
)

type KnowledgeSeed struct {
	WageNotices     []knowledgeModel.MinimumWageNoticeModel   `json:"wage_notices"`
	Holidays        []knowledgeModel.HolidayModel             `json:"holidays"`
	Bulletins       []knowledgeModel.PolicyBulletinModel      `json:"bulletins"`
	Interpretations []knowledgeModel.AdminInterpretationModel `json:"interpretations"`
	Sources         []knowledgeModel.SourceModel              `json:"sources"`
}

// SeedKnowledgeFromJSON upserts the reference datasets from one JSON file.
// Rows are keyed by their natural PKs, so reruns are idempotent.
func SeedKnowledgeFromJSON(db *gorm.DB, filePath string) error {
	log.Println("[INFO] reading knowledge seed:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}

	var seed KnowledgeSeed
	if err := json.Unmarshal(file, &seed); err != nil {
		return err
	}

	// fresh chain per row: a shared Clauses() chain keeps statement state
	upsert := func(row interface{}) error {
		return db.Clauses(clause.OnConflict{UpdateAll: true}).Create(row).Error
	}

	counts := map[string]int{}
	for i := range seed.WageNotices {
		if err := upsert(&seed.WageNotices[i]); err != nil {
			log.Printf("[ERROR] wage notice %d: %v", seed.WageNotices[i].Year, err)
			continue
		}
		counts["wage_notices"]++
	}
	for i := range seed.Holidays {
		if err := upsert(&seed.Holidays[i]); err != nil {
			log.Printf("[ERROR] holiday %s: %v", seed.Holidays[i].Date, err)
			continue
		}
		counts["holidays"]++
	}
	for i := range seed.Bulletins {
		if err := upsert(&seed.Bulletins[i]); err != nil {
			log.Printf("[ERROR] bulletin %s: %v", seed.Bulletins[i].ID, err)
			continue
		}
		counts["bulletins"]++
	}
	for i := range seed.Interpretations {
		if err := upsert(&seed.Interpretations[i]); err != nil {
			log.Printf("[ERROR] interpretation %s: %v", seed.Interpretations[i].InterpID, err)
			continue
		}
		counts["interpretations"]++
	}
	for i := range seed.Sources {
		if err := upsert(&seed.Sources[i]); err != nil {
			log.Printf("[ERROR] source %s: %v", seed.Sources[i].SourceKey, err)
			continue
		}
		counts["sources"]++
	}

	log.Printf("[INFO] knowledge seed done: %v", counts)
	return nil
}
