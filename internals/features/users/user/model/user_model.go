package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel is the profile row keyed by the identity-provider user id.
type UserModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey;column:id"`
	Email     string     `gorm:"type:varchar(255);not null;uniqueIndex;column:email"`
	FullName  string     `gorm:"type:varchar(150);column:full_name"`
	Role      string     `gorm:"type:varchar(30);not null;index;column:role"`
	SchoolID  *uuid.UUID `gorm:"type:uuid;index;column:school_id"`
	IsActive  bool       `gorm:"not null;default:true;column:is_active"`
	CreatedAt time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time  `gorm:"column:updated_at;autoUpdateTime"`
}

func (UserModel) TableName() string { return "users" }

func (m *UserModel) SetSchoolID(id uuid.UUID) { m.SchoolID = &id }
