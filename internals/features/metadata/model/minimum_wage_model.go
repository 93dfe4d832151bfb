package model

import (
	"time"
)

// One row per year. unit defaults to KRW/hour; amount is won per hour.
type MinimumWageModel struct {
	ID     uint   `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Year   int    `gorm:"column:year;uniqueIndex;not null" json:"year"`
	Amount int    `gorm:"column:amount;not null" json:"amount"`
	Unit   string `gorm:"column:unit;type:varchar(20);not null;default:KRW/hour" json:"unit"`
}

func (MinimumWageModel) TableName() string { return "minimum_wage" }

// Append-only audit log. Every successful write to minimum_wage appends
// exactly one row here inside the same transaction.
type MinimumWageHistoryModel struct {
	ID        uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Year      int       `gorm:"column:year;index;not null" json:"year"`
	OldAmount *int      `gorm:"column:old_amount" json:"old_amount,omitempty"`
	NewAmount *int      `gorm:"column:new_amount" json:"new_amount,omitempty"`
	OldUnit   *string   `gorm:"column:old_unit;type:varchar(20)" json:"old_unit,omitempty"`
	NewUnit   *string   `gorm:"column:new_unit;type:varchar(20)" json:"new_unit,omitempty"`
	Action    string    `gorm:"column:action;type:varchar(20);not null" json:"action"`
	ChangedBy string    `gorm:"column:changed_by;type:varchar(100);not null;default:admin" json:"changed_by"`
	ChangedAt time.Time `gorm:"column:changed_at;not null;autoCreateTime" json:"changed_at"`
}

func (MinimumWageHistoryModel) TableName() string { return "minimum_wage_history" }
