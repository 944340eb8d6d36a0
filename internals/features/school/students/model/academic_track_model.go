package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	CurriculumNigerian = "Nigerian"
	CurriculumBritish  = "British"
	CurriculumBoth     = "Both"
)

// CurriculumModel is reference data shared by every school.
type CurriculumModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;column:id"`
	Name      string    `gorm:"type:varchar(50);not null;uniqueIndex;column:name"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (CurriculumModel) TableName() string { return "curricula" }

func (m *CurriculumModel) BeforeCreate(*gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

type AcademicTrackModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;column:id"`
	SchoolID     uuid.UUID `gorm:"type:uuid;not null;index;column:school_id"`
	StudentID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_track_student_curriculum;column:student_id"`
	CurriculumID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_track_student_curriculum;column:curriculum_id"`
	Status       string    `gorm:"type:varchar(20);not null;default:'active';column:status"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (AcademicTrackModel) TableName() string { return "academic_tracks" }

func (m *AcademicTrackModel) BeforeCreate(*gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// CurriculaFor expands a curriculumType choice into curriculum names.
func CurriculaFor(curriculumType string) []string {
	switch curriculumType {
	case CurriculumNigerian:
		return []string{CurriculumNigerian}
	case CurriculumBritish:
		return []string{CurriculumBritish}
	case CurriculumBoth:
		return []string{CurriculumNigerian, CurriculumBritish}
	default:
		return nil
	}
}
