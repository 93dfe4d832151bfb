package knowledge

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	knowledgeModel "worklaw_backend/internals/features/knowledge/model"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: gormLogger.Discard,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&knowledgeModel.MinimumWageNoticeModel{},
		&knowledgeModel.HolidayModel{},
		&knowledgeModel.PolicyBulletinModel{},
		&knowledgeModel.AdminInterpretationModel{},
		&knowledgeModel.SourceModel{},
	))
	return db
}

func writeSeedFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "seed.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestSeedKnowledgeFromJSON(t *testing.T) {
	db := openTestDB(t)

	path := writeSeedFile(t, `{
		"wage_notices": [{"year": 2025, "hourly": 10030}],
		"holidays": [
			{"date": "2025-01-01", "name": "신정"},
			{"date": "2025-03-01", "name": "삼일절"}
		],
		"bulletins": [{"id": "B-1", "title": "bulletin"}],
		"interpretations": [{"interp_id": "I-1", "title": "interpretation"}],
		"sources": [{"source_key": "minwage", "provider": "고용노동부"}]
	}`)

	require.NoError(t, SeedKnowledgeFromJSON(db, path))

	var holidays int64
	require.NoError(t, db.Model(&knowledgeModel.HolidayModel{}).Count(&holidays).Error)
	assert.EqualValues(t, 2, holidays)

	// rerun stays idempotent and applies changes
	path = writeSeedFile(t, `{
		"wage_notices": [{"year": 2025, "hourly": 10100}],
		"holidays": [{"date": "2025-01-01", "name": "신정"}]
	}`)
	require.NoError(t, SeedKnowledgeFromJSON(db, path))

	var notice knowledgeModel.MinimumWageNoticeModel
	require.NoError(t, db.Where("year = ?", 2025).First(&notice).Error)
	require.NotNil(t, notice.Hourly)
	assert.Equal(t, 10100, *notice.Hourly)

	require.NoError(t, db.Model(&knowledgeModel.HolidayModel{}).Count(&holidays).Error)
	assert.EqualValues(t, 2, holidays, "holidays are upserted, never dropped")
}

func TestSeedKnowledgeFromJSONMissingFile(t *testing.T) {
	db := openTestDB(t)
	assert.Error(t, SeedKnowledgeFromJSON(db, filepath.Join(t.TempDir(), "missing.json")))
}

func TestSeedKnowledgeFromJSONMalformed(t *testing.T) {
	db := openTestDB(t)
	path := writeSeedFile(t, `{"holidays": [`)
	assert.Error(t, SeedKnowledgeFromJSON(db, path))
}
