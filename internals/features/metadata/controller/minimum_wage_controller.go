package controller

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	wageDTO "worklaw_backend/internals/features/metadata/dto"
	wageModel "worklaw_backend/internals/features/metadata/model"
	helper "worklaw_backend/internals/helpers"
)

// Public read side. Never errors: unknown years fall back to the latest stored
// year, and an empty table yields a zero stub.
type MinimumWageController struct {
	DB *gorm.DB
}

// GET /metadata/minimum-wage?year=
func (h *MinimumWageController) GetMinimumWage(c *fiber.Ctx) error {
	yearStr := strings.TrimSpace(c.Query("year"))
	year, err := strconv.Atoi(yearStr)
	if err != nil || year < 2010 || year > 2100 {
		return helper.JsonError(c, fiber.StatusBadRequest, "year must be an integer between 2010 and 2100")
	}

	var row wageModel.MinimumWageModel
	if err := h.DB.Where("year = ?", year).First(&row).Error; err == nil {
		return c.JSON(wageDTO.MinimumWageOut{Year: row.Year, MinimumWage: row.Amount, Unit: row.Unit})
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		// keep the read fail-soft: fall through to the latest-year path
	}

	// requested year absent: latest stored year wins
	var latest wageModel.MinimumWageModel
	if err := h.DB.Order("year DESC").First(&latest).Error; err == nil {
		return c.JSON(wageDTO.MinimumWageOut{Year: latest.Year, MinimumWage: latest.Amount, Unit: latest.Unit})
	}

	// empty table: zero stub, still 200
	return c.JSON(wageDTO.MinimumWageOut{Year: year, MinimumWage: 0, Unit: "KRW/hour"})
}
