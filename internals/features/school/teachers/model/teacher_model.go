package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TeacherModel struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey;column:id"`
	SchoolID      uuid.UUID  `gorm:"type:uuid;not null;index;column:school_id"`
	UserID        *uuid.UUID `gorm:"type:uuid;index;column:user_id"`
	Name          string     `gorm:"type:varchar(200);not null;column:name"`
	Email         *string    `gorm:"type:varchar(255);column:email"`
	Phone         *string    `gorm:"type:varchar(40);column:phone"`
	Qualification *string    `gorm:"type:varchar(200);column:qualification"`
	CreatedAt     time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time  `gorm:"column:updated_at;autoUpdateTime"`
}

func (TeacherModel) TableName() string { return "teachers" }

func (m *TeacherModel) SetSchoolID(id uuid.UUID) { m.SchoolID = id }

func (m *TeacherModel) BeforeCreate(*gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

type TeacherSubjectModel struct {
	TeacherID uuid.UUID `gorm:"type:uuid;primaryKey;column:teacher_id"`
	Subject   string    `gorm:"type:varchar(100);primaryKey;column:subject"`
	SchoolID  uuid.UUID `gorm:"type:uuid;not null;index;column:school_id"`
}

func (TeacherSubjectModel) TableName() string { return "teacher_subjects" }

type TeacherClassModel struct {
	TeacherID uuid.UUID `gorm:"type:uuid;primaryKey;column:teacher_id"`
	ClassName string    `gorm:"type:varchar(100);primaryKey;column:class_name"`
	SchoolID  uuid.UUID `gorm:"type:uuid;not null;index;column:school_id"`
}

func (TeacherClassModel) TableName() string { return "teacher_classes" }
