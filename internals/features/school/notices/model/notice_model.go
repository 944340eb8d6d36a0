package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NoticeModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey;column:id"`
	SchoolID  uuid.UUID  `gorm:"type:uuid;not null;index;column:school_id"`
	AuthorID  *uuid.UUID `gorm:"type:uuid;column:author_id"`
	Title     string     `gorm:"type:varchar(200);not null;column:title"`
	Content   string     `gorm:"type:text;not null;column:content"`
	Audience  string     `gorm:"type:varchar(30);not null;default:'all';column:audience"`
	Timestamp time.Time  `gorm:"not null;index;column:timestamp"`
	CreatedAt time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time  `gorm:"column:updated_at;autoUpdateTime"`
}

func (NoticeModel) TableName() string { return "notices" }

func (m *NoticeModel) SetSchoolID(id uuid.UUID) { m.SchoolID = id }

func (m *NoticeModel) BeforeCreate(*gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if m.Timestamp.IsZero() {
		m.Timestamp = time.Now().UTC()
	}
	if m.Audience == "" {
		m.Audience = "all"
	}
	return nil
}
