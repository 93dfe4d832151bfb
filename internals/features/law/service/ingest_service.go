package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"worklaw_backend/internals/constants"
	lawModel "worklaw_backend/internals/features/law/model"
	knowledgeModel "worklaw_backend/internals/features/knowledge/model"
	syncService "worklaw_backend/internals/features/sync/service"
)

const openAPIBase = "https://www.law.go.kr/DRF/lawService.do"

// Statutes fetched by ingest-laws.
var TargetLaws = []string{
	"근로기준법",
	"최저임금법",
	"산업안전보건법",
	"남녀고용평등과 일·가정 양립 지원에 관한 법률",
	"근로자퇴직급여 보장법",
	"기간제 및 단시간근로자 보호 등에 관한 법률",
	"파견근로자보호 등에 관한 법률",
	"고용보험법",
	"임금채권보장법",
	"노동조합 및 노동관계조정법",
}

var ErrMissingOC = errors.New("LAW_OC is required for law ingestion")

// Ingestor pulls current-law JSON from the national law OpenAPI and caches it
// as Law / LawArticle / LawArticleVersion rows plus a raw staging copy.
type Ingestor struct {
	DB      *gorm.DB
	OC      string
	BaseURL string
	Client  *http.Client
}

func NewIngestor(db *gorm.DB, oc string) *Ingestor {
	return &Ingestor{
		DB:      db,
		OC:      oc,
		BaseURL: openAPIBase,
		Client:  &http.Client{Timeout: 20 * time.Second},
	}
}

type IngestResult struct {
	LawsUpserted     int
	ArticlesUpserted int
	Failures         []string
}

// Run ingests every target law. A missing OC credential is the only fatal
// condition; per-law failures are collected into the result and the sync job
// log instead of aborting the run.
func (g *Ingestor) Run(ctx context.Context) (IngestResult, error) {
	var res IngestResult
	if strings.TrimSpace(g.OC) == "" {
		return res, ErrMissingOC
	}

	started := time.Now().UTC()
	for _, name := range TargetLaws {
		payload, raw, err := g.fetchLawJSON(ctx, name)
		if err != nil {
			res.Failures = append(res.Failures, fmt.Sprintf("%s: %v", name, err))
			log.Printf("[ERROR] fetch %s: %v", name, err)
			continue
		}

		if err := g.stageRaw(name, raw); err != nil {
			// staging is bookkeeping; the normalized upsert still proceeds
			log.Printf("[WARN] stage %s: %v", name, err)
		}

		articles := extractArticles(payload)
		n, err := g.upsertLaw(name, articles)
		if err != nil {
			res.Failures = append(res.Failures, fmt.Sprintf("%s: %v", name, err))
			log.Printf("[ERROR] upsert %s: %v", name, err)
			continue
		}
		res.LawsUpserted++
		res.ArticlesUpserted += n
		log.Printf("[INFO] ingested %s (%d articles)", name, n)
	}

	g.recordJob(started, res)
	return res, nil
}

func (g *Ingestor) fetchLawJSON(ctx context.Context, lawName string) (map[string]interface{}, []byte, error) {
	params := url.Values{}
	params.Set("OC", g.OC)
	params.Set("target", "eflaw")
	params.Set("LM", lawName)
	params.Set("type", "JSON")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.BaseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, nil, err
	}
	resp, err := g.Client.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, nil, fmt.Errorf("HTTP %d", resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, err
	}

	var payload map[string]interface{}
	if err := json.Unmarshal(body, &payload); err != nil {
		// some responses arrive as a JSON-encoded string
		var s string
		if err2 := json.Unmarshal(body, &s); err2 == nil {
			if err3 := json.Unmarshal([]byte(s), &payload); err3 == nil {
				return payload, []byte(s), nil
			}
		}
		return nil, nil, fmt.Errorf("JSON parse: %w", err)
	}
	return payload, body, nil
}

func (g *Ingestor) stageRaw(lawName string, raw []byte) error {
	staging := knowledgeModel.StagingRawModel{
		ID:        uuid.NewString(),
		SourceKey: constants.SourceLawAPI,
		NaturalID: lawName,
		Payload:   datatypes.JSON(raw),
		Checksum:  syncService.Checksum(raw),
	}
	return g.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "source_key"}, {Name: "natural_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"payload", "checksum", "fetched_at"}),
	}).Create(&staging).Error
}

type articleData struct {
	ArticleNo     string
	Title         *string
	Text          string
	EffectiveDate *string
	Raw           map[string]interface{}
}

// extractArticles walks the payload looking for article-shaped nodes. The
// response structure varies between API versions, so this is a tolerant
// traversal over the usual key candidates rather than a fixed schema.
func extractArticles(payload map[string]interface{}) []articleData {
	var articles []articleData

	root := payload
	for _, key := range []string{"eflaw", "law"} {
		if sub, ok := payload[key].(map[string]interface{}); ok {
			root = sub
			break
		}
	}

	var stack []interface{}
	for _, key := range []string{"조문", "조문목록", "장", "편", "항목"} {
		if val, ok := root[key]; ok && val != nil {
			stack = append(stack, val)
		}
	}

	seen := map[string]bool{}
	for len(stack) > 0 {
		cur := stack[0]
		stack = stack[1:]

		switch node := cur.(type) {
		case []interface{}:
			stack = append(stack, node...)
		case map[string]interface{}:
			articleNo := firstString(node, "조문번호", "조", "조문")
			if articleNo != "" {
				if seen[articleNo] {
					continue
				}
				seen[articleNo] = true

				a := articleData{
					ArticleNo: articleNo,
					Text:      flattenText(firstValue(node, "조문내용", "내용", "본문")),
					Raw:       node,
				}
				if t := firstString(node, "조문제목", "제목"); t != "" {
					a.Title = &t
				}
				if d := firstString(node, "조문시행일자", "시행일자"); d != "" {
					a.EffectiveDate = &d
				}
				articles = append(articles, a)
			} else {
				for _, v := range node {
					stack = append(stack, v)
				}
			}
		}
	}
	return articles
}

func firstValue(node map[string]interface{}, keys ...string) interface{} {
	for _, k := range keys {
		if v, ok := node[k]; ok && v != nil {
			return v
		}
	}
	return nil
}

func firstString(node map[string]interface{}, keys ...string) string {
	v := firstValue(node, keys...)
	switch s := v.(type) {
	case string:
		return strings.TrimSpace(s)
	case float64:
		return strings.TrimSpace(fmt.Sprintf("%v", s))
	}
	return ""
}

func flattenText(node interface{}) string {
	switch n := node.(type) {
	case nil:
		return ""
	case string:
		return n
	case []interface{}:
		parts := make([]string, 0, len(n))
		for _, x := range n {
			if s := flattenText(x); s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, "\n")
	case map[string]interface{}:
		var parts []string
		for _, v := range n {
			if s := flattenText(v); s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, "\n")
	default:
		return fmt.Sprintf("%v", n)
	}
}

// upsertLaw writes one law and its articles: the law row and article current
// fields are mutable, the version snapshot is append-only.
func (g *Ingestor) upsertLaw(name string, articles []articleData) (int, error) {
	upserted := 0
	err := g.DB.Transaction(func(tx *gorm.DB) error {
		var law lawModel.LawModel
		if err := tx.Where("name = ?", name).First(&law).Error; err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			law = lawModel.LawModel{Name: name, Status: "ACTIVE"}
			if err := tx.Create(&law).Error; err != nil {
				return err
			}
		}

		for _, a := range articles {
			rawJSON, err := json.Marshal(a.Raw)
			if err != nil {
				rawJSON = []byte("{}")
			}

			var article lawModel.LawArticleModel
			err = tx.Where("law_id_fk = ? AND article_no = ?", law.ID, a.ArticleNo).First(&article).Error
			switch {
			case errors.Is(err, gorm.ErrRecordNotFound):
				article = lawModel.LawArticleModel{
					LawIDFk:     law.ID,
					ArticleNo:   a.ArticleNo,
					Title:       a.Title,
					CurrentText: &a.Text,
					CurrentJSON: datatypes.JSON(rawJSON),
				}
				if err := tx.Create(&article).Error; err != nil {
					return err
				}
			case err != nil:
				return err
			default:
				article.Title = a.Title
				article.CurrentText = &a.Text
				article.CurrentJSON = datatypes.JSON(rawJSON)
				if err := tx.Save(&article).Error; err != nil {
					return err
				}
			}

			version := lawModel.LawArticleVersionModel{
				ArticleIDFk:   article.ID,
				EffectiveDate: a.EffectiveDate,
				Text:          &a.Text,
				RawJSON:       datatypes.JSON(rawJSON),
			}
			if err := tx.Create(&version).Error; err != nil {
				return err
			}
			upserted++
		}
		return nil
	})
	return upserted, err
}

func (g *Ingestor) recordJob(started time.Time, res IngestResult) {
	finished := time.Now().UTC()
	status := "success"
	if len(res.Failures) > 0 {
		status = "partial"
		if res.LawsUpserted == 0 {
			status = "fail"
		}
	}
	jobLog := fmt.Sprintf("laws=%d articles=%d failures=%d", res.LawsUpserted, res.ArticlesUpserted, len(res.Failures))
	if len(res.Failures) > 0 {
		jobLog += "; " + strings.Join(res.Failures, "; ")
	}

	job := knowledgeModel.SyncJobModel{
		JobID:         uuid.NewString(),
		SourceKey:     constants.SourceLawAPI,
		StartedAt:     started,
		FinishedAt:    &finished,
		Status:        status,
		ItemsUpserted: res.ArticlesUpserted,
		Log:           &jobLog,
	}
	if err := g.DB.Create(&job).Error; err != nil {
		log.Printf("[ERROR] ingest job row not persisted: %v", err)
	}
}
