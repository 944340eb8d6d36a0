package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ClassModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;column:id"`
	SchoolID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_class_school_grade_section;column:school_id"`
	Name      string    `gorm:"type:varchar(100);not null;column:name"`
	Grade     int       `gorm:"not null;uniqueIndex:uq_class_school_grade_section;column:grade"`
	Section   string    `gorm:"type:varchar(20);not null;default:'';uniqueIndex:uq_class_school_grade_section;column:section"`
	Capacity  *int      `gorm:"column:capacity"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (ClassModel) TableName() string { return "classes" }

func (m *ClassModel) SetSchoolID(id uuid.UUID) { m.SchoolID = id }

func (m *ClassModel) BeforeCreate(*gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
