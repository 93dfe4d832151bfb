package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	lawModel "worklaw_backend/internals/features/law/model"
	knowledgeModel "worklaw_backend/internals/features/knowledge/model"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: gormLogger.Discard,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&lawModel.LawModel{},
		&lawModel.LawArticleModel{},
		&lawModel.LawArticleVersionModel{},
		&knowledgeModel.SyncJobModel{},
		&knowledgeModel.StagingRawModel{},
	))
	return db
}

func samplePayload() map[string]interface{} {
	return map[string]interface{}{
		"law": map[string]interface{}{
			"조문": []interface{}{
				map[string]interface{}{
					"조문번호":   "제50조",
					"조문제목":   "근로시간",
					"조문내용":   "1주 간의 근로시간은 휴게시간을 제외하고 40시간을 초과할 수 없다.",
					"조문시행일자": "20210105",
				},
				map[string]interface{}{
					"조문번호": "제54조",
					"조문내용": []interface{}{"휴게", map[string]interface{}{"항": "사용자는 휴게시간을 주어야 한다."}},
				},
			},
		},
	}
}

func TestExtractArticles(t *testing.T) {
	articles := extractArticles(samplePayload())

	require.Len(t, articles, 2)
	assert.Equal(t, "제50조", articles[0].ArticleNo)
	require.NotNil(t, articles[0].Title)
	assert.Equal(t, "근로시간", *articles[0].Title)
	require.NotNil(t, articles[0].EffectiveDate)
	assert.Equal(t, "20210105", *articles[0].EffectiveDate)
	assert.Contains(t, articles[0].Text, "40시간")

	assert.Equal(t, "제54조", articles[1].ArticleNo)
	assert.Nil(t, articles[1].Title)
	assert.Contains(t, articles[1].Text, "휴게")
	assert.Contains(t, articles[1].Text, "휴게시간을 주어야")
}

func TestExtractArticlesDeduplicates(t *testing.T) {
	payload := map[string]interface{}{
		"조문": []interface{}{
			map[string]interface{}{"조문번호": "제1조", "조문내용": "first"},
			map[string]interface{}{"조문번호": "제1조", "조문내용": "again"},
		},
	}

	articles := extractArticles(payload)

	require.Len(t, articles, 1)
	assert.Equal(t, "first", articles[0].Text)
}

func TestExtractArticlesEmptyPayload(t *testing.T) {
	assert.Empty(t, extractArticles(map[string]interface{}{}))
	assert.Empty(t, extractArticles(map[string]interface{}{"법령명": "근로기준법"}))
}

func TestFlattenText(t *testing.T) {
	assert.Equal(t, "", flattenText(nil))
	assert.Equal(t, "plain", flattenText("plain"))
	assert.Equal(t, "a\nb", flattenText([]interface{}{"a", "", "b"}))
	assert.Equal(t, "nested", flattenText(map[string]interface{}{"항": "nested"}))
}

func TestRunRequiresOC(t *testing.T) {
	g := NewIngestor(openTestDB(t), "")

	_, err := g.Run(context.Background())
	assert.ErrorIs(t, err, ErrMissingOC)
}

func TestRunIngestsAndRecordsJob(t *testing.T) {
	db := openTestDB(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-oc", r.URL.Query().Get("OC"))
		assert.NotEmpty(t, r.URL.Query().Get("LM"))
		json.NewEncoder(w).Encode(samplePayload())
	}))
	defer srv.Close()

	g := &Ingestor{
		DB:      db,
		OC:      "test-oc",
		BaseURL: srv.URL,
		Client:  &http.Client{Timeout: 5 * time.Second},
	}

	res, err := g.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, len(TargetLaws), res.LawsUpserted)
	assert.Equal(t, 2*len(TargetLaws), res.ArticlesUpserted)
	assert.Empty(t, res.Failures)

	var laws int64
	require.NoError(t, db.Model(&lawModel.LawModel{}).Count(&laws).Error)
	assert.EqualValues(t, len(TargetLaws), laws)

	var job knowledgeModel.SyncJobModel
	require.NoError(t, db.Where("source_key = ?", "law_api").First(&job).Error)
	assert.Equal(t, "success", job.Status)
	assert.Equal(t, 2*len(TargetLaws), job.ItemsUpserted)

	// staging row per law, keyed by the law name
	var staging int64
	require.NoError(t, db.Model(&knowledgeModel.StagingRawModel{}).
		Where("source_key = ?", "law_api").Count(&staging).Error)
	assert.EqualValues(t, len(TargetLaws), staging)

	// second run updates articles in place and appends versions
	_, err = g.Run(context.Background())
	require.NoError(t, err)

	var articles int64
	require.NoError(t, db.Model(&lawModel.LawArticleModel{}).Count(&articles).Error)
	assert.EqualValues(t, 2*len(TargetLaws), articles)

	var versions int64
	require.NoError(t, db.Model(&lawModel.LawArticleVersionModel{}).Count(&versions).Error)
	assert.EqualValues(t, 2*2*len(TargetLaws), versions)
}

func TestRunRecordsFailures(t *testing.T) {
	db := openTestDB(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusBadGateway)
	}))
	defer srv.Close()

	g := &Ingestor{
		DB:      db,
		OC:      "test-oc",
		BaseURL: srv.URL,
		Client:  &http.Client{Timeout: 5 * time.Second},
	}

	res, err := g.Run(context.Background())
	require.NoError(t, err)
	assert.Zero(t, res.LawsUpserted)
	assert.Len(t, res.Failures, len(TargetLaws))

	var job knowledgeModel.SyncJobModel
	require.NoError(t, db.Where("source_key = ?", "law_api").First(&job).Error)
	assert.Equal(t, "fail", job.Status)
}

func TestFetchLawJSONDoubleEncoded(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		inner, _ := json.Marshal(samplePayload())
		// some upstream responses arrive as a JSON string wrapping the payload
		json.NewEncoder(w).Encode(string(inner))
	}))
	defer srv.Close()

	g := &Ingestor{
		OC:      "test-oc",
		BaseURL: srv.URL,
		Client:  &http.Client{Timeout: 5 * time.Second},
	}

	payload, raw, err := g.fetchLawJSON(context.Background(), "근로기준법")
	require.NoError(t, err)
	assert.NotEmpty(t, raw)
	assert.Len(t, extractArticles(payload), 2)
}
