package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"worklaw_backend/internals/constants"
	syncService "worklaw_backend/internals/features/sync/service"
)

type SyncController struct {
	Service *syncService.SyncService
}

func NewSyncController(db *gorm.DB) *SyncController {
	return &SyncController{Service: &syncService.SyncService{DB: db}}
}

// POST /admin/sync/minwage
func (h *SyncController) SyncMinWage(c *fiber.Ctx) error {
	return c.JSON(h.Service.RunStubJob(constants.SourceMinWage))
}

// POST /admin/sync/holiday_api
func (h *SyncController) SyncHolidays(c *fiber.Ctx) error {
	return c.JSON(h.Service.RunStubJob(constants.SourceHolidayAPI))
}

// POST /admin/sync/law_api
func (h *SyncController) SyncLaws(c *fiber.Ctx) error {
	return c.JSON(h.Service.RunStubJob(constants.SourceLawAPI))
}

// POST /admin/sync/interpretation_api
func (h *SyncController) SyncInterpretations(c *fiber.Ctx) error {
	return c.JSON(h.Service.RunStubJob(constants.SourceInterpretationAPI))
}

// POST /admin/sync/moel_notice
func (h *SyncController) SyncMoelNotices(c *fiber.Ctx) error {
	return c.JSON(h.Service.RunStubJob(constants.SourceMoelNotice))
}
