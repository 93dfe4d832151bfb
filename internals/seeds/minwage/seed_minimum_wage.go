package minwage

import (
	"log"

	"gorm.io/gorm"

	wageModel "worklaw_backend/internals/features/metadata/model"
)

// SeedMinimumWage upserts one year. Update first; insert only when no row was
// touched, so reruns are idempotent.
func SeedMinimumWage(db *gorm.DB, year, amount int, unit string) error {
	if unit == "" {
		unit = "KRW/hour"
	}

	res := db.Model(&wageModel.MinimumWageModel{}).
		Where("year = ?", year).
		Updates(map[string]interface{}{"amount": amount, "unit": unit})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected > 0 {
		log.Printf("[INFO] updated minimum_wage %d -> amount=%d unit=%s", year, amount, unit)
		return nil
	}

	row := wageModel.MinimumWageModel{Year: year, Amount: amount, Unit: unit}
	if err := db.Create(&row).Error; err != nil {
		return err
	}
	log.Printf("[INFO] inserted minimum_wage %d -> amount=%d unit=%s", year, amount, unit)
	return nil
}
