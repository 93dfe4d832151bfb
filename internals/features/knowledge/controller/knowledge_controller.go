package controller

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	knowledgeDTO "worklaw_backend/internals/features/knowledge/dto"
	knowledgeService "worklaw_backend/internals/features/knowledge/service"
)

// Public knowledge surface. Always 200; the tolerant reader already absorbed
// every failure into an empty list.
type KnowledgeController struct {
	Reader *knowledgeService.TolerantReader
}

func NewKnowledgeController(db *gorm.DB) *KnowledgeController {
	return &KnowledgeController{Reader: &knowledgeService.TolerantReader{DB: db}}
}

// GET /knowledge/minimum_wage
func (h *KnowledgeController) ListMinimumWage(c *fiber.Ctx) error {
	return c.JSON(h.Reader.MinimumWageRows())
}

// GET /knowledge/holidays/:year
func (h *KnowledgeController) ListHolidays(c *fiber.Ctx) error {
	year, err := strconv.Atoi(strings.TrimSpace(c.Params("year")))
	if err != nil {
		// even a garbage year stays fail-soft
		return c.JSON([]knowledgeDTO.HolidayItem{})
	}
	return c.JSON(h.Reader.HolidayRows(year))
}

// GET /knowledge/policy_bulletins
func (h *KnowledgeController) ListPolicyBulletins(c *fiber.Ctx) error {
	return c.JSON(h.Reader.PolicyBulletinRows())
}

// GET /knowledge/interpretations
func (h *KnowledgeController) ListInterpretations(c *fiber.Ctx) error {
	return c.JSON(h.Reader.InterpretationRows())
}
