package service

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	knowledgeModel "worklaw_backend/internals/features/knowledge/model"
	syncDTO "worklaw_backend/internals/features/sync/dto"
)

// SyncService runs the placeholder ingestion jobs. Each run records a
// sync_jobs row and performs one idempotent demo upsert into staging_raw by
// (source_key, natural_id). Real provider ETL replaces the demo payload later;
// the summary contract stays the same. Nothing here ever raises to the caller.
type SyncService struct {
	DB *gorm.DB
}

func Checksum(payload []byte) string {
	sum := sha256.Sum256(payload)
	return hex.EncodeToString(sum[:])
}

// RunStubJob executes one job for the given source key and always returns a
// summary. Database failures are folded into the note with status=fail.
func (s *SyncService) RunStubJob(sourceKey string) syncDTO.JobSummary {
	jobID := uuid.NewString()
	started := time.Now().UTC()

	payload := []byte(fmt.Sprintf(`{"source":%q,"kind":"demo","fetched_at":%q}`, sourceKey, started.Format(time.RFC3339)))
	checksum := Checksum(payload)

	itemsUpserted := 0
	status := "ok"
	note := "stub"

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		staging := knowledgeModel.StagingRawModel{
			ID:        uuid.NewString(),
			SourceKey: sourceKey,
			NaturalID: "demo",
			Payload:   datatypes.JSON(payload),
			Checksum:  checksum,
		}
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "source_key"}, {Name: "natural_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"payload", "checksum", "fetched_at"}),
		}).Create(&staging).Error; err != nil {
			return err
		}
		itemsUpserted = 1
		return nil
	})
	if err != nil {
		status = "fail"
		note = fmt.Sprintf("stub upsert failed: %v", err)
		log.Printf("[ERROR] sync %s: %v", sourceKey, err)
	}

	finished := time.Now().UTC()
	jobLog := note
	job := knowledgeModel.SyncJobModel{
		JobID:         jobID,
		SourceKey:     sourceKey,
		StartedAt:     started,
		FinishedAt:    &finished,
		Status:        status,
		ItemsUpserted: itemsUpserted,
		Checksum:      &checksum,
		Log:           &jobLog,
	}
	if err := s.DB.Create(&job).Error; err != nil {
		// the summary is still returned; the job row is best effort
		log.Printf("[ERROR] sync %s: job row not persisted: %v", sourceKey, err)
	}

	return syncDTO.JobSummary{
		Job:           sourceKey,
		Status:        status,
		ItemsUpserted: itemsUpserted,
		FinishedAt:    finished.Format(time.RFC3339),
		Note:          note,
	}
}
