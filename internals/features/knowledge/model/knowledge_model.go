package model

import (
	"time"

	"gorm.io/datatypes"
)

// Registered upstream provider (law_api / moel_notice / holiday_api / minwage
// / interpretation_api).
type SourceModel struct {
	SourceKey     string  `gorm:"column:source_key;type:varchar(50);primaryKey" json:"source_key"`
	Provider      string  `gorm:"column:provider;type:varchar(100);not null" json:"provider"`
	APIURL        *string `gorm:"column:api_url;type:varchar(500)" json:"api_url,omitempty"`
	License       *string `gorm:"column:license;type:varchar(100)" json:"license,omitempty"`
	LastCheckedAt *string `gorm:"column:last_checked_at;type:varchar(40)" json:"last_checked_at,omitempty"`
}

func (SourceModel) TableName() string { return "sources" }

// One row per ingestion run.
type SyncJobModel struct {
	JobID         string     `gorm:"column:job_id;type:varchar(40);primaryKey" json:"job_id"`
	SourceKey     string     `gorm:"column:source_key;type:varchar(50);not null" json:"source_key"`
	StartedAt     time.Time  `gorm:"column:started_at;not null;autoCreateTime" json:"started_at"`
	FinishedAt    *time.Time `gorm:"column:finished_at" json:"finished_at,omitempty"`
	Status        string     `gorm:"column:status;type:varchar(20);not null;default:running" json:"status"`
	ItemsUpserted int        `gorm:"column:items_upserted;not null;default:0" json:"items_upserted"`
	Checksum      *string    `gorm:"column:checksum;type:varchar(80)" json:"checksum,omitempty"`
	Log           *string    `gorm:"column:log;type:text" json:"log,omitempty"`
}

func (SyncJobModel) TableName() string { return "sync_jobs" }

// Raw fetched payload, unique per (source_key, natural_id) so re-ingestion is
// idempotent.
type StagingRawModel struct {
	ID        string         `gorm:"column:id;type:varchar(40);primaryKey" json:"id"`
	SourceKey string         `gorm:"column:source_key;type:varchar(50);not null;uniqueIndex:uq_staging_source_natural" json:"source_key"`
	NaturalID string         `gorm:"column:natural_id;type:varchar(200);not null;uniqueIndex:uq_staging_source_natural" json:"natural_id"`
	Payload   datatypes.JSON `gorm:"column:payload;not null" json:"payload"`
	Checksum  string         `gorm:"column:checksum;type:varchar(80);not null" json:"checksum"`
	FetchedAt time.Time      `gorm:"column:fetched_at;not null;autoCreateTime" json:"fetched_at"`
}

func (StagingRawModel) TableName() string { return "staging_raw" }

// Published minimum-wage notice, one per year. Older deployments stored these
// rows in minimum_wage_history next to the admin audit log; the tolerant read
// path still absorbs that shape through its raw fallbacks.
type MinimumWageNoticeModel struct {
	Year        int     `gorm:"column:year;primaryKey" json:"year"`
	Hourly      *int    `gorm:"column:hourly" json:"hourly,omitempty"`
	Monthly209h *int    `gorm:"column:monthly_209h" json:"monthly_209h,omitempty"`
	NoticeNo    *string `gorm:"column:notice_no;type:varchar(50)" json:"notice_no,omitempty"`
	NoticeDate  *string `gorm:"column:notice_date;type:varchar(20)" json:"notice_date,omitempty"`
	SourceURL   *string `gorm:"column:source_url;type:varchar(500)" json:"source_url,omitempty"`
}

func (MinimumWageNoticeModel) TableName() string { return "minimum_wage_notices" }

// One row per calendar date, date stored as YYYY-MM-DD text.
type HolidayModel struct {
	Date      string  `gorm:"column:date;type:varchar(20);primaryKey" json:"date"`
	Name      string  `gorm:"column:name;type:varchar(200);not null" json:"name"`
	Type      *string `gorm:"column:type;type:varchar(30)" json:"type,omitempty"`
	IsPublic  *bool   `gorm:"column:is_public;default:true" json:"is_public,omitempty"`
	SourceRef *string `gorm:"column:source_ref;type:varchar(200)" json:"source_ref,omitempty"`
}

func (HolidayModel) TableName() string { return "holidays" }

type PolicyBulletinModel struct {
	ID            string  `gorm:"column:id;type:varchar(80);primaryKey" json:"id"`
	Title         string  `gorm:"column:title;type:varchar(500);not null" json:"title"`
	EffectiveDate *string `gorm:"column:effective_date;type:varchar(20)" json:"effective_date,omitempty"`
	Audience      *string `gorm:"column:audience;type:varchar(30)" json:"audience,omitempty"`
	Category      *string `gorm:"column:category;type:varchar(50)" json:"category,omitempty"`
	SummaryMd     *string `gorm:"column:summary_md;type:text" json:"summary_md,omitempty"`
	LawID         *string `gorm:"column:law_id;type:varchar(80)" json:"law_id,omitempty"`
	ArticleNo     *string `gorm:"column:article_no;type:varchar(50)" json:"article_no,omitempty"`
	SourceURL     *string `gorm:"column:source_url;type:varchar(500)" json:"source_url,omitempty"`
	Tags          *string `gorm:"column:tags;type:varchar(300)" json:"tags,omitempty"`
}

func (PolicyBulletinModel) TableName() string { return "policy_bulletins" }

type AdminInterpretationModel struct {
	InterpID   string  `gorm:"column:interp_id;type:varchar(80);primaryKey" json:"interp_id"`
	Title      string  `gorm:"column:title;type:varchar(500);not null" json:"title"`
	AskedAt    *string `gorm:"column:asked_at;type:varchar(20)" json:"asked_at,omitempty"`
	AnsweredAt *string `gorm:"column:answered_at;type:varchar(20)" json:"answered_at,omitempty"`
	Question   *string `gorm:"column:question;type:text" json:"question,omitempty"`
	Answer     *string `gorm:"column:answer;type:text" json:"answer,omitempty"`
	LawID      *string `gorm:"column:law_id;type:varchar(80)" json:"law_id,omitempty"`
	ArticleNo  *string `gorm:"column:article_no;type:varchar(50)" json:"article_no,omitempty"`
	SourceURL  *string `gorm:"column:source_url;type:varchar(500)" json:"source_url,omitempty"`
	Tags       *string `gorm:"column:tags;type:varchar(300)" json:"tags,omitempty"`
}

func (AdminInterpretationModel) TableName() string { return "admin_interpretations" }
