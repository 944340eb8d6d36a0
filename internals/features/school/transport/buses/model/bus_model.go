package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BusModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;column:id"`
	SchoolID    uuid.UUID `gorm:"type:uuid;not null;index;column:school_id"`
	Name        string    `gorm:"type:varchar(100);not null;column:name"`
	PlateNumber *string   `gorm:"type:varchar(30);column:plate_number"`
	DriverName  *string   `gorm:"type:varchar(150);column:driver_name"`
	DriverPhone *string   `gorm:"type:varchar(40);column:driver_phone"`
	Capacity    *int      `gorm:"column:capacity"`
	Route       *string   `gorm:"type:text;column:route"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (BusModel) TableName() string { return "transport_buses" }

func (m *BusModel) SetSchoolID(id uuid.UUID) { m.SchoolID = id }

func (m *BusModel) BeforeCreate(*gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
