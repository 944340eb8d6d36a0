package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type SchoolModel struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey;column:id"`
	Name      string         `gorm:"type:varchar(200);not null;column:name"`
	Email     *string        `gorm:"type:varchar(255);column:email"`
	Phone     *string        `gorm:"type:varchar(40);column:phone"`
	Address   *string        `gorm:"type:text;column:address"`
	Metadata  datatypes.JSON `gorm:"column:metadata"`
	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime"`
}

func (SchoolModel) TableName() string { return "schools" }

func (m *SchoolModel) BeforeCreate(*gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
