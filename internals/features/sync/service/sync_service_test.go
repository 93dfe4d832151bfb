package service

import (
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
	return db
}

func TestChecksumStable(t *testing.T) {
	a := Checksum([]byte("payload"))
	b := Checksum([]byte("payload"))
	c := Checksum([]byte("other"))

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Len(t, a, 64)
}

func TestRunStubJobUpsertsOnce(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, db.AutoMigrate(
		&knowledgeModel.SyncJobModel{},
		&knowledgeModel.StagingRawModel{},
	))

	svc := &SyncService{DB: db}

	first := svc.RunStubJob("holiday_api")
	assert.Equal(t, "holiday_api", first.Job)
	assert.Equal(t, "ok", first.Status)
	assert.Equal(t, 1, first.ItemsUpserted)
	assert.NotEmpty(t, first.FinishedAt)

	second := svc.RunStubJob("holiday_api")
	assert.Equal(t, "ok", second.Status)

	var staging int64
	require.NoError(t, db.Model(&knowledgeModel.StagingRawModel{}).Count(&staging).Error)
	assert.EqualValues(t, 1, staging, "same (source_key, natural_id) stays one row")

	var jobs int64
	require.NoError(t, db.Model(&knowledgeModel.SyncJobModel{}).Count(&jobs).Error)
	assert.EqualValues(t, 2, jobs)
}

func TestRunStubJobSurvivesBrokenSchema(t *testing.T) {
	// no tables at all: the job cannot persist anything but still answers
	svc := &SyncService{DB: openTestDB(t)}

	summary := svc.RunStubJob("minwage")

	assert.Equal(t, "minwage", summary.Job)
	assert.Equal(t, "fail", summary.Status)
	assert.Zero(t, summary.ItemsUpserted)
	assert.Contains(t, summary.Note, "stub upsert failed")
}
