package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ParentModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey;column:id"`
	SchoolID  uuid.UUID  `gorm:"type:uuid;not null;index;column:school_id"`
	UserID    *uuid.UUID `gorm:"type:uuid;index;column:user_id"`
	Name      string     `gorm:"type:varchar(200);not null;column:name"`
	Email     *string    `gorm:"type:varchar(255);index;column:email"`
	Phone     *string    `gorm:"type:varchar(40);column:phone"`
	Address   *string    `gorm:"type:text;column:address"`
	CreatedAt time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time  `gorm:"column:updated_at;autoUpdateTime"`
}

func (ParentModel) TableName() string { return "parents" }

func (m *ParentModel) SetSchoolID(id uuid.UUID) { m.SchoolID = id }

func (m *ParentModel) BeforeCreate(*gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// ParentChildModel links a parent to a student of the same school.
type ParentChildModel struct {
	ParentID  uuid.UUID `gorm:"type:uuid;primaryKey;column:parent_id"`
	StudentID uuid.UUID `gorm:"type:uuid;primaryKey;index;column:student_id"`
	SchoolID  uuid.UUID `gorm:"type:uuid;not null;index;column:school_id"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (ParentChildModel) TableName() string { return "parent_children" }
