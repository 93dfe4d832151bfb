package model

import (
	"time"

	"gorm.io/datatypes"
)

// Cached statute. Articles cascade on delete.
type LawModel struct {
	ID        uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"column:name;type:varchar(200);uniqueIndex;not null" json:"name"`
	NameEn    *string   `gorm:"column:name_en;type:varchar(200)" json:"name_en,omitempty"`
	Mst       *string   `gorm:"column:mst;type:varchar(50);index" json:"mst,omitempty"`
	LawID     *string   `gorm:"column:law_id;type:varchar(50);index" json:"law_id,omitempty"`
	Status    string    `gorm:"column:status;type:varchar(20);not null;default:ACTIVE" json:"status"`
	CreatedAt time.Time `gorm:"column:created_at;not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null;autoUpdateTime" json:"updated_at"`

	Articles []LawArticleModel `gorm:"foreignKey:LawIDFk;constraint:OnDelete:CASCADE" json:"articles,omitempty"`
}

func (LawModel) TableName() string { return "law" }

// Current state of one article. Mutable in place; snapshots live in
// law_article_version.
type LawArticleModel struct {
	ID          uint            `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	LawIDFk     uint            `gorm:"column:law_id_fk;index;not null;uniqueIndex:uq_law_article" json:"law_id_fk"`
	ArticleNo   string          `gorm:"column:article_no;type:varchar(50);index;not null;uniqueIndex:uq_law_article" json:"article_no"`
	Title       *string         `gorm:"column:title;type:varchar(500)" json:"title,omitempty"`
	CurrentText *string         `gorm:"column:current_text;type:text" json:"current_text,omitempty"`
	CurrentJSON datatypes.JSON  `gorm:"column:current_json" json:"current_json,omitempty"`
	UpdatedAt   time.Time       `gorm:"column:updated_at;not null;autoUpdateTime" json:"updated_at"`

	Versions []LawArticleVersionModel `gorm:"foreignKey:ArticleIDFk;constraint:OnDelete:CASCADE" json:"versions,omitempty"`
}

func (LawArticleModel) TableName() string { return "law_article" }

// Append-only snapshot taken at ingestion time.
type LawArticleVersionModel struct {
	ID            uint           `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	ArticleIDFk   uint           `gorm:"column:article_id_fk;index;not null" json:"article_id_fk"`
	EffectiveDate *string        `gorm:"column:effective_date;type:varchar(20)" json:"effective_date,omitempty"`
	Text          *string        `gorm:"column:text;type:text" json:"text,omitempty"`
	RawJSON       datatypes.JSON `gorm:"column:raw_json" json:"raw_json,omitempty"`
	CreatedAt     time.Time      `gorm:"column:created_at;not null;autoCreateTime" json:"created_at"`
}

func (LawArticleVersionModel) TableName() string { return "law_article_version" }
