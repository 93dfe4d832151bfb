package controller

import (
	"errors"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"worklaw_backend/internals/configs"
	"worklaw_backend/internals/constants"
	wageDTO "worklaw_backend/internals/features/metadata/dto"
	wageModel "worklaw_backend/internals/features/metadata/model"
	helper "worklaw_backend/internals/helpers"
	authMW "worklaw_backend/internals/middlewares/auth"
)

// Admin write side. Every mutation appends its audit row inside the same
// transaction: a failed history insert rolls the primary write back.
type MinimumWageAdminController struct {
	DB       *gorm.DB
	Settings configs.Settings
	Validate *validator.Validate
}

func NewMinimumWageAdminController(db *gorm.DB, s configs.Settings) *MinimumWageAdminController {
	return &MinimumWageAdminController{DB: db, Settings: s, Validate: validator.New()}
}

func (h *MinimumWageAdminController) actor(c *fiber.Ctx) string {
	return authMW.AdminSubject(c, h.Settings.AdminUsername)
}

func parseYearParam(c *fiber.Ctx) (int, error) {
	year, err := strconv.Atoi(strings.TrimSpace(c.Params("year")))
	if err != nil || year < 2010 || year > 2100 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "year must be an integer between 2010 and 2100")
	}
	return year, nil
}

// GET /admin/metadata/minimum-wage
func (h *MinimumWageAdminController) List(c *fiber.Ctx) error {
	var rows []wageModel.MinimumWageModel
	if err := h.DB.Order("year ASC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list minimum wage rows")
	}
	out := make([]wageDTO.MinimumWageRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, wageDTO.FromMinimumWageModel(r))
	}
	return c.JSON(out)
}

// POST /admin/metadata/minimum-wage
func (h *MinimumWageAdminController) Create(c *fiber.Ctx) error {
	var req wageDTO.CreateMinimumWageRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if err := h.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var created wageModel.MinimumWageModel
	err := h.DB.Transaction(func(tx *gorm.DB) error {
		var cnt int64
		if err := tx.Model(&wageModel.MinimumWageModel{}).
			Where("year = ?", req.Year).Count(&cnt).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to check year")
		}
		if cnt > 0 {
			return fiber.NewError(fiber.StatusConflict, "Year already exists")
		}

		created = wageModel.MinimumWageModel{Year: req.Year, Amount: req.Amount, Unit: req.Unit}
		if err := tx.Create(&created).Error; err != nil {
			if isUniqueViolation(err) {
				return fiber.NewError(fiber.StatusConflict, "Year already exists")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to create row")
		}

		hist := wageModel.MinimumWageHistoryModel{
			Year:      req.Year,
			NewAmount: &created.Amount,
			NewUnit:   &created.Unit,
			Action:    constants.ActionCreate,
			ChangedBy: h.actor(c),
		}
		if err := tx.Create(&hist).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to write audit row")
		}
		return nil
	})
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(wageDTO.FromMinimumWageModel(created))
}

// PUT /admin/metadata/minimum-wage/:year
func (h *MinimumWageAdminController) Update(c *fiber.Ctx) error {
	year, err := parseYearParam(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req wageDTO.UpdateMinimumWageRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := h.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var updated wageModel.MinimumWageModel
	err = h.DB.Transaction(func(tx *gorm.DB) error {
		var row wageModel.MinimumWageModel
		if err := tx.Where("year = ?", year).First(&row).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Year not found")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to load row")
		}

		oldAmount, oldUnit := row.Amount, row.Unit
		if req.Amount != nil {
			row.Amount = *req.Amount
		}
		if req.Unit != nil {
			row.Unit = *req.Unit
		}
		if err := tx.Save(&row).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to update row")
		}

		hist := wageModel.MinimumWageHistoryModel{
			Year:      year,
			OldAmount: &oldAmount,
			NewAmount: &row.Amount,
			OldUnit:   &oldUnit,
			NewUnit:   &row.Unit,
			Action:    constants.ActionUpdate,
			ChangedBy: h.actor(c),
		}
		if err := tx.Create(&hist).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to write audit row")
		}
		updated = row
		return nil
	})
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	return c.JSON(wageDTO.FromMinimumWageModel(updated))
}

// DELETE /admin/metadata/minimum-wage/:year
func (h *MinimumWageAdminController) Delete(c *fiber.Ctx) error {
	year, err := parseYearParam(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	err = h.DB.Transaction(func(tx *gorm.DB) error {
		var row wageModel.MinimumWageModel
		if err := tx.Where("year = ?", year).First(&row).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Year not found")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to load row")
		}

		hist := wageModel.MinimumWageHistoryModel{
			Year:      year,
			OldAmount: &row.Amount,
			OldUnit:   &row.Unit,
			Action:    constants.ActionDelete,
			ChangedBy: h.actor(c),
		}
		if err := tx.Create(&hist).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to write audit row")
		}
		if err := tx.Delete(&row).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete row")
		}
		return nil
	})
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// GET /admin/metadata/minimum-wage/:year/history
func (h *MinimumWageAdminController) History(c *fiber.Ctx) error {
	year, err := parseYearParam(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var rows []wageModel.MinimumWageHistoryModel
	if err := h.DB.Where("year = ?", year).
		Order("changed_at DESC").Order("id DESC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list history")
	}

	out := make([]wageDTO.MinimumWageHistoryRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, wageDTO.FromMinimumWageHistoryModel(r))
	}
	return c.JSON(out)
}

func isUniqueViolation(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique")
}
