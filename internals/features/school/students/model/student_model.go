package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	AttendancePresent = "Present"
	DefaultGrade      = 1
)

type StudentModel struct {
	ID       uuid.UUID  `gorm:"type:uuid;primaryKey;column:id"`
	SchoolID uuid.UUID  `gorm:"type:uuid;not null;index;column:school_id"`
	UserID   *uuid.UUID `gorm:"type:uuid;index;column:user_id"`
	ClassID  *uuid.UUID `gorm:"type:uuid;index;column:class_id"`

	Name        string          `gorm:"type:varchar(200);not null;column:name"`
	FirstName   string          `gorm:"type:varchar(100);column:first_name"`
	LastName    string          `gorm:"type:varchar(100);column:last_name"`
	Email       *string         `gorm:"type:varchar(255);column:email"`
	DateOfBirth *datatypes.Date `gorm:"column:date_of_birth"`
	Gender      *string         `gorm:"type:varchar(20);column:gender"`
	Grade       int             `gorm:"not null;default:1;column:grade"`
	Section     *string         `gorm:"type:varchar(20);column:section"`

	AttendanceStatus string `gorm:"type:varchar(20);column:attendance_status"`

	BirthCertificate *string `gorm:"type:text;column:birth_certificate"`
	PreviousReport   *string `gorm:"type:text;column:previous_report"`
	MedicalRecords   *string `gorm:"type:text;column:medical_records"`
	PassportPhoto    *string `gorm:"type:text;column:passport_photo"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (StudentModel) TableName() string { return "students" }

func (m *StudentModel) SetSchoolID(id uuid.UUID) { m.SchoolID = id }

func (m *StudentModel) BeforeCreate(*gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if m.Grade == 0 {
		m.Grade = DefaultGrade
	}
	return nil
}
