package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// AICacheModel stores one answer per (scope, question hash).
type AICacheModel struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey;column:id"`
	CacheScope   string         `gorm:"type:varchar(64);not null;uniqueIndex:uq_ai_cache_scope_hash;column:cache_scope"`
	QueryHash    string         `gorm:"type:char(64);not null;uniqueIndex:uq_ai_cache_scope_hash;column:query_hash"`
	QueryText    string         `gorm:"type:text;not null;column:query_text"`
	ResponseJSON datatypes.JSON `gorm:"not null;column:response_json"`
	CreatedAt    time.Time      `gorm:"index;column:created_at;autoCreateTime"`
}

func (AICacheModel) TableName() string { return "ai_cache" }

func (m *AICacheModel) BeforeCreate(*gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// SchoolDocModel is a retrieval snippet source for the assistant.
type SchoolDocModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;column:id"`
	SchoolID  uuid.UUID `gorm:"type:uuid;not null;index;column:school_id"`
	Title     string    `gorm:"type:varchar(200);not null;column:title"`
	Content   string    `gorm:"type:text;not null;column:content"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (SchoolDocModel) TableName() string { return "school_docs" }

func (m *SchoolDocModel) SetSchoolID(id uuid.UUID) { m.SchoolID = id }

func (m *SchoolDocModel) BeforeCreate(*gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
