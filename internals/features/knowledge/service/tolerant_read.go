package service

import (
	"fmt"
	"strconv"

	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	knowledgeDTO "worklaw_backend/internals/features/knowledge/dto"
	knowledgeModel "worklaw_backend/internals/features/knowledge/model"
)

// TolerantReader answers the public knowledge reads even when the underlying
// schema has drifted between expected and actual table/column names. Each read
// is an ordered chain of query strategies: the canonical mapped query first,
// then raw-SQL fallbacks against legacy names. The first strategy returning at
// least one row wins; every error is swallowed; an empty list is a valid
// outcome, not a failure.
//
// The field defaults below are the contract, not a bug to fix: hourly falls
// back to amount then 0, is_public defaults to true, type defaults to
// "public", monthly_209h stays null when absent.
type TolerantReader struct {
	DB *gorm.DB
}

// quiet returns a session that does not log the expected strategy failures.
func (t *TolerantReader) quiet() *gorm.DB {
	return t.DB.Session(&gorm.Session{Logger: gormLogger.Discard})
}

// rawRows runs one fallback query and returns generic rows; any error is
// reported as an empty result.
func rawRows(db *gorm.DB, sql string, args ...interface{}) []map[string]interface{} {
	var rows []map[string]interface{}
	if err := db.Raw(sql, args...).Scan(&rows).Error; err != nil {
		return nil
	}
	return rows
}

/* =========================================================
   VALUE COALESCING
   ========================================================= */

func asInt(v interface{}) (int, bool) {
	switch n := v.(type) {
	case int64:
		return int(n), true
	case int:
		return n, true
	case int32:
		return int(n), true
	case float64:
		return int(n), true
	case []byte:
		if i, err := strconv.Atoi(string(n)); err == nil {
			return i, true
		}
	case string:
		if i, err := strconv.Atoi(n); err == nil {
			return i, true
		}
	}
	return 0, false
}

func asIntPtr(v interface{}) *int {
	if i, ok := asInt(v); ok {
		return &i
	}
	return nil
}

func asString(v interface{}) (string, bool) {
	switch s := v.(type) {
	case string:
		return s, true
	case []byte:
		return string(s), true
	case nil:
		return "", false
	}
	return fmt.Sprintf("%v", v), true
}

func asStringPtr(v interface{}) *string {
	if s, ok := asString(v); ok {
		return &s
	}
	return nil
}

func asBoolDefault(v interface{}, def bool) bool {
	switch b := v.(type) {
	case bool:
		return b
	case int64:
		return b != 0
	case int:
		return b != 0
	case float64:
		return b != 0
	case nil:
		return def
	}
	return def
}

/* =========================================================
   MINIMUM WAGE
   ========================================================= */

// MinimumWageRows lists published minimum-wage rows, newest year first.
func (t *TolerantReader) MinimumWageRows() []knowledgeDTO.MinimumWageItem {
	// 1) canonical mapped query. It only wins when at least one row actually
	// carries hourly; rows that lost their hourly value fall through to the
	// legacy fallbacks. The mapped rows are kept as a last resort either way.
	var mapped []knowledgeDTO.MinimumWageItem
	var rows []knowledgeModel.MinimumWageNoticeModel
	if err := t.quiet().Order("year DESC").Find(&rows).Error; err == nil && len(rows) > 0 {
		anyHourly := false
		mapped = make([]knowledgeDTO.MinimumWageItem, 0, len(rows))
		for _, r := range rows {
			hourly := 0
			if r.Hourly != nil {
				hourly = *r.Hourly
				anyHourly = true
			}
			mapped = append(mapped, knowledgeDTO.MinimumWageItem{
				Year:        r.Year,
				Hourly:      hourly,
				Monthly209h: r.Monthly209h,
				NoticeNo:    r.NoticeNo,
				NoticeDate:  r.NoticeDate,
				SourceURL:   r.SourceURL,
			})
		}
		if anyHourly {
			return mapped
		}
	}

	// 2) raw fallbacks, most specific shape first: both columns present
	// (drifted shared table), hourly only, then the legacy amount-only shape
	sqlTry := []string{
		`SELECT year,
		        COALESCE(hourly, amount) AS hourly,
		        monthly_209h, notice_no, notice_date, source_url
		 FROM minimum_wage_history ORDER BY year DESC`,
		`SELECT year, hourly, monthly_209h, notice_no, notice_date, source_url
		 FROM minimum_wage_history ORDER BY year DESC`,
		`SELECT year, amount AS hourly, monthly_209h, notice_no, notice_date, source_url
		 FROM minimum_wage_history ORDER BY year DESC`,
	}
	for _, sql := range sqlTry {
		raw := rawRows(t.quiet(), sql)
		if len(raw) == 0 {
			continue
		}
		out := make([]knowledgeDTO.MinimumWageItem, 0, len(raw))
		for _, r := range raw {
			year, ok := asInt(r["year"])
			if !ok {
				continue
			}
			hourly, ok := asInt(r["hourly"])
			if !ok {
				hourly, _ = asInt(r["amount"])
			}
			out = append(out, knowledgeDTO.MinimumWageItem{
				Year:        year,
				Hourly:      hourly,
				Monthly209h: asIntPtr(r["monthly_209h"]),
				NoticeNo:    asStringPtr(r["notice_no"]),
				NoticeDate:  asStringPtr(r["notice_date"]),
				SourceURL:   asStringPtr(r["source_url"]),
			})
		}
		if len(out) > 0 {
			return out
		}
	}
	if len(mapped) > 0 {
		return mapped
	}
	return []knowledgeDTO.MinimumWageItem{}
}

/* =========================================================
   HOLIDAYS
   ========================================================= */

// HolidayRows lists holidays whose date falls in the given year, ascending.
func (t *TolerantReader) HolidayRows(year int) []knowledgeDTO.HolidayItem {
	prefix := fmt.Sprintf("%d-%%", year)

	var rows []knowledgeModel.HolidayModel
	if err := t.quiet().Where("date LIKE ?", prefix).Order("date ASC").Find(&rows).Error; err == nil && len(rows) > 0 {
		out := make([]knowledgeDTO.HolidayItem, 0, len(rows))
		for _, r := range rows {
			typ := "public"
			if r.Type != nil && *r.Type != "" {
				typ = *r.Type
			}
			isPublic := true
			if r.IsPublic != nil {
				isPublic = *r.IsPublic
			}
			out = append(out, knowledgeDTO.HolidayItem{
				Date:      r.Date,
				Name:      r.Name,
				Type:      typ,
				IsPublic:  isPublic,
				SourceRef: r.SourceRef,
			})
		}
		return out
	}

	// singular table name is the legacy shape
	sqlTry := []string{
		`SELECT date, name, type, is_public, source_ref
		 FROM holidays WHERE date LIKE ? ORDER BY date ASC`,
		`SELECT date, name, type, is_public, source_ref
		 FROM holiday WHERE date LIKE ? ORDER BY date ASC`,
	}
	for _, sql := range sqlTry {
		raw := rawRows(t.quiet(), sql, prefix)
		if len(raw) == 0 {
			continue
		}
		out := make([]knowledgeDTO.HolidayItem, 0, len(raw))
		for _, r := range raw {
			date, ok := asString(r["date"])
			if !ok {
				continue
			}
			name, _ := asString(r["name"])
			typ, ok := asString(r["type"])
			if !ok || typ == "" {
				typ = "public"
			}
			out = append(out, knowledgeDTO.HolidayItem{
				Date:      date,
				Name:      name,
				Type:      typ,
				IsPublic:  asBoolDefault(r["is_public"], true),
				SourceRef: asStringPtr(r["source_ref"]),
			})
		}
		if len(out) > 0 {
			return out
		}
	}
	return []knowledgeDTO.HolidayItem{}
}

/* =========================================================
   POLICY BULLETINS
   ========================================================= */

// PolicyBulletinRows lists bulletins newest effective date first, id breaking
// ties.
func (t *TolerantReader) PolicyBulletinRows() []knowledgeDTO.PolicyBulletinItem {
	var rows []knowledgeModel.PolicyBulletinModel
	if err := t.quiet().
		Order("COALESCE(effective_date, '') DESC").Order("id DESC").
		Find(&rows).Error; err == nil && len(rows) > 0 {
		out := make([]knowledgeDTO.PolicyBulletinItem, 0, len(rows))
		for _, r := range rows {
			out = append(out, knowledgeDTO.PolicyBulletinItem{
				ID:            r.ID,
				Title:         r.Title,
				EffectiveDate: r.EffectiveDate,
				Audience:      r.Audience,
				Category:      r.Category,
				SummaryMd:     r.SummaryMd,
				LawID:         r.LawID,
				ArticleNo:     r.ArticleNo,
				SourceURL:     r.SourceURL,
				Tags:          r.Tags,
			})
		}
		return out
	}

	sqlTry := []string{
		`SELECT id, title, effective_date, audience, category, summary_md, law_id, article_no, source_url, tags
		 FROM policy_bulletin ORDER BY COALESCE(effective_date, '') DESC, id DESC`,
		`SELECT id, title, effective_date, audience, category, summary_md, law_id, article_no, source_url, tags
		 FROM policy_bulletins ORDER BY COALESCE(effective_date, '') DESC, id DESC`,
	}
	for _, sql := range sqlTry {
		raw := rawRows(t.quiet(), sql)
		if len(raw) == 0 {
			continue
		}
		out := make([]knowledgeDTO.PolicyBulletinItem, 0, len(raw))
		for _, r := range raw {
			id, ok := asString(r["id"])
			if !ok {
				continue
			}
			title, _ := asString(r["title"])
			out = append(out, knowledgeDTO.PolicyBulletinItem{
				ID:            id,
				Title:         title,
				EffectiveDate: asStringPtr(r["effective_date"]),
				Audience:      asStringPtr(r["audience"]),
				Category:      asStringPtr(r["category"]),
				SummaryMd:     asStringPtr(r["summary_md"]),
				LawID:         asStringPtr(r["law_id"]),
				ArticleNo:     asStringPtr(r["article_no"]),
				SourceURL:     asStringPtr(r["source_url"]),
				Tags:          asStringPtr(r["tags"]),
			})
		}
		if len(out) > 0 {
			return out
		}
	}
	return []knowledgeDTO.PolicyBulletinItem{}
}

/* =========================================================
   ADMIN INTERPRETATIONS
   ========================================================= */

// InterpretationRows lists interpretations, most recently answered first
// (asked date when never answered).
func (t *TolerantReader) InterpretationRows() []knowledgeDTO.InterpretationItem {
	var rows []knowledgeModel.AdminInterpretationModel
	if err := t.quiet().
		Order("COALESCE(answered_at, asked_at) DESC").
		Find(&rows).Error; err == nil && len(rows) > 0 {
		out := make([]knowledgeDTO.InterpretationItem, 0, len(rows))
		for _, r := range rows {
			out = append(out, knowledgeDTO.InterpretationItem{
				InterpID:   r.InterpID,
				Title:      r.Title,
				AskedAt:    r.AskedAt,
				AnsweredAt: r.AnsweredAt,
				Question:   r.Question,
				Answer:     r.Answer,
				LawID:      r.LawID,
				ArticleNo:  r.ArticleNo,
				SourceURL:  r.SourceURL,
				Tags:       r.Tags,
			})
		}
		return out
	}

	sqlTry := []string{
		`SELECT interp_id, title, asked_at, answered_at, question, answer, law_id, article_no, source_url, tags
		 FROM admin_interpretation ORDER BY COALESCE(answered_at, asked_at) DESC`,
		`SELECT interp_id, title, asked_at, answered_at, question, answer, law_id, article_no, source_url, tags
		 FROM admin_interpretations ORDER BY COALESCE(answered_at, asked_at) DESC`,
	}
	for _, sql := range sqlTry {
		raw := rawRows(t.quiet(), sql)
		if len(raw) == 0 {
			continue
		}
		out := make([]knowledgeDTO.InterpretationItem, 0, len(raw))
		for _, r := range raw {
			interpID, ok := asString(r["interp_id"])
			if !ok {
				continue
			}
			title, _ := asString(r["title"])
			out = append(out, knowledgeDTO.InterpretationItem{
				InterpID:   interpID,
				Title:      title,
				AskedAt:    asStringPtr(r["asked_at"]),
				AnsweredAt: asStringPtr(r["answered_at"]),
				Question:   asStringPtr(r["question"]),
				Answer:     asStringPtr(r["answer"]),
				LawID:      asStringPtr(r["law_id"]),
				ArticleNo:  asStringPtr(r["article_no"]),
				SourceURL:  asStringPtr(r["source_url"]),
				Tags:       asStringPtr(r["tags"]),
			})
		}
		if len(out) > 0 {
			return out
		}
	}
	return []knowledgeDTO.InterpretationItem{}
}
