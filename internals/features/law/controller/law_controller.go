package controller

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	lawDTO "worklaw_backend/internals/features/law/dto"
	lawModel "worklaw_backend/internals/features/law/model"
	helper "worklaw_backend/internals/helpers"
)

// Read-only law surface. Fail-soft like the rest of the public reads: an
// unknown law name yields [], not 404.
type LawController struct {
	DB *gorm.DB
}

// GET /law/list?q=
func (h *LawController) ListLaws(c *fiber.Ctx) error {
	q := strings.TrimSpace(c.Query("q"))

	query := h.DB.Model(&lawModel.LawModel{})
	if q != "" {
		query = query.Where("name LIKE ?", "%"+q+"%")
	}

	var rows []lawModel.LawModel
	if err := query.Order("name ASC").Find(&rows).Error; err != nil {
		return c.JSON([]lawDTO.LawListItem{})
	}

	out := make([]lawDTO.LawListItem, 0, len(rows))
	for _, l := range rows {
		out = append(out, lawDTO.LawListItem{
			ID:      l.ID,
			LawName: l.Name,
			LawCode: l.LawID,
			Status:  l.Status,
		})
	}
	return c.JSON(out)
}

// GET /law/articles?law_name=
func (h *LawController) ListArticles(c *fiber.Ctx) error {
	lawName := strings.TrimSpace(c.Query("law_name"))
	if lawName == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "law_name is required")
	}

	var law lawModel.LawModel
	if err := h.DB.Where("name = ?", lawName).First(&law).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON([]lawDTO.LawArticleItem{})
		}
		return c.JSON([]lawDTO.LawArticleItem{})
	}

	var articles []lawModel.LawArticleModel
	if err := h.DB.Where("law_id_fk = ?", law.ID).Order("id ASC").Find(&articles).Error; err != nil {
		return c.JSON([]lawDTO.LawArticleItem{})
	}

	out := make([]lawDTO.LawArticleItem, 0, len(articles))
	for _, a := range articles {
		var vcount int64
		h.DB.Model(&lawModel.LawArticleVersionModel{}).
			Where("article_id_fk = ?", a.ID).Count(&vcount)

		content := ""
		if a.CurrentText != nil {
			content = *a.CurrentText
		}
		out = append(out, lawDTO.LawArticleItem{
			ID:           a.ID,
			LawID:        a.LawIDFk,
			ArticleNo:    a.ArticleNo,
			Title:        a.Title,
			Content:      content,
			VersionCount: vcount,
		})
	}
	return c.JSON(out)
}

// GET /law/article-versions?article_id=
func (h *LawController) ListArticleVersions(c *fiber.Ctx) error {
	articleID, err := strconv.Atoi(strings.TrimSpace(c.Query("article_id")))
	if err != nil || articleID <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "article_id must be a positive integer")
	}

	var versions []lawModel.LawArticleVersionModel
	if err := h.DB.Where("article_id_fk = ?", articleID).
		Order("effective_date DESC").Order("id DESC").
		Find(&versions).Error; err != nil {
		return c.JSON([]lawDTO.LawArticleVersionItem{})
	}

	out := make([]lawDTO.LawArticleVersionItem, 0, len(versions))
	for _, v := range versions {
		content := ""
		if v.Text != nil {
			content = *v.Text
		}
		out = append(out, lawDTO.LawArticleVersionItem{
			ID:            v.ID,
			ArticleID:     v.ArticleIDFk,
			EffectiveDate: v.EffectiveDate,
			Content:       content,
		})
	}
	return c.JSON(out)
}
