package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	StatusPending = "Pending"
	StatusPaid    = "Paid"
	StatusOverdue = "Overdue"
)

var Statuses = []string{StatusPending, StatusPaid, StatusOverdue}

// FeeModel maps student_fees. PaidAmount and Status are not reconciled with each other.
type FeeModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey;column:id"`
	SchoolID    uuid.UUID       `gorm:"type:uuid;not null;index;column:school_id"`
	StudentID   uuid.UUID       `gorm:"type:uuid;not null;index;column:student_id"`
	Title       string          `gorm:"type:varchar(200);not null;column:title"`
	Term        *string         `gorm:"type:varchar(50);column:term"`
	Amount      float64         `gorm:"type:numeric(12,2);not null;column:amount"`
	PaidAmount  float64         `gorm:"type:numeric(12,2);not null;default:0;column:paid_amount"`
	Status      string          `gorm:"type:varchar(20);not null;default:'Pending';index;column:status"`
	DueDate     *datatypes.Date `gorm:"index;column:due_date"`
	PaymentDate *time.Time      `gorm:"column:payment_date"`
	CreatedAt   time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}

func (FeeModel) TableName() string { return "student_fees" }

func (m *FeeModel) SetSchoolID(id uuid.UUID) { m.SchoolID = id }

func (m *FeeModel) BeforeCreate(*gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if m.Status == "" {
		m.Status = StatusPending
	}
	return nil
}

func (m *FeeModel) Outstanding() float64 {
	if o := m.Amount - m.PaidAmount; o > 0 {
		return o
	}
	return 0
}
