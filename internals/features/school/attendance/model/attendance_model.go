package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	StatusPresent = "Present"
	StatusAbsent  = "Absent"
	StatusLate    = "Late"
	StatusExcused = "Excused"
)

// AttendanceModel maps student_attendance; (student_id, date) is unique.
type AttendanceModel struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey;column:id"`
	SchoolID  uuid.UUID      `gorm:"type:uuid;not null;index;column:school_id"`
	StudentID uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:uq_attendance_student_date;column:student_id"`
	ClassID   *uuid.UUID     `gorm:"type:uuid;index:idx_attendance_class_date;column:class_id"`
	Date      datatypes.Date `gorm:"not null;uniqueIndex:uq_attendance_student_date;index:idx_attendance_class_date;column:date"`
	Status    string         `gorm:"type:varchar(20);not null;column:status"`
	Notes     *string        `gorm:"type:text;column:notes"`
	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime"`
}

func (AttendanceModel) TableName() string { return "student_attendance" }

func (m *AttendanceModel) SetSchoolID(id uuid.UUID) { m.SchoolID = id }

func (m *AttendanceModel) BeforeCreate(*gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
