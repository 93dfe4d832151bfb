package dto

import (
	"time"

	m "worklaw_backend/internals/features/metadata/model"
)

/* =========================================================
   REQUESTS
   ========================================================= */

type CreateMinimumWageRequest struct {
	Year   int    `json:"year" validate:"required,gte=2010,lte=2100"`
	Amount int    `json:"amount" validate:"gte=0"`
	Unit   string `json:"unit"`
}

func (r *CreateMinimumWageRequest) Normalize() {
	if r.Unit == "" {
		r.Unit = "KRW/hour"
	}
}

// Partial update: only supplied fields change.
type UpdateMinimumWageRequest struct {
	Amount *int    `json:"amount" validate:"omitempty,gte=0"`
	Unit   *string `json:"unit" validate:"omitempty,min=1,max=20"`
}

/* =========================================================
   RESPONSES
   ========================================================= */

// Public read shape (minimum_wage key kept for frontend parity)
type MinimumWageOut struct {
	Year        int    `json:"year"`
	MinimumWage int    `json:"minimum_wage"`
	Unit        string `json:"unit"`
}

type MinimumWageRow struct {
	Year   int    `json:"year"`
	Amount int    `json:"amount"`
	Unit   string `json:"unit"`
}

func FromMinimumWageModel(row m.MinimumWageModel) MinimumWageRow {
	return MinimumWageRow{Year: row.Year, Amount: row.Amount, Unit: row.Unit}
}

type MinimumWageHistoryRow struct {
	Year      int     `json:"year"`
	OldAmount *int    `json:"old_amount"`
	NewAmount *int    `json:"new_amount"`
	OldUnit   *string `json:"old_unit"`
	NewUnit   *string `json:"new_unit"`
	Action    string  `json:"action"`
	ChangedBy string  `json:"changed_by"`
	ChangedAt string  `json:"changed_at"`
}

func FromMinimumWageHistoryModel(row m.MinimumWageHistoryModel) MinimumWageHistoryRow {
	return MinimumWageHistoryRow{
		Year:      row.Year,
		OldAmount: row.OldAmount,
		NewAmount: row.NewAmount,
		OldUnit:   row.OldUnit,
		NewUnit:   row.NewUnit,
		Action:    row.Action,
		ChangedBy: row.ChangedBy,
		ChangedAt: row.ChangedAt.UTC().Format(time.RFC3339),
	}
}
