package helper

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Scope is the tenant boundary applied to every data access.
// All is only ever set for a SuperAdmin acting without an explicit school.
type Scope struct {
	SchoolID uuid.UUID
	All      bool
}

func ForSchool(id uuid.UUID) Scope { return Scope{SchoolID: id} }

func Global() Scope { return Scope{All: true} }

var ErrSchoolRequired = fiber.NewError(fiber.StatusBadRequest, "school_id is required for this operation")

// Apply adds the tenant predicate on column unless the scope is global.
func (s Scope) Apply(tx *gorm.DB, column string) *gorm.DB {
	if s.All {
		return tx
	}
	return tx.Where(column+" = ?", s.SchoolID)
}

// Fn returns Apply as a gorm scope func, for use with tx.Scopes.
func (s Scope) Fn(column string) func(*gorm.DB) *gorm.DB {
	return func(tx *gorm.DB) *gorm.DB { return s.Apply(tx, column) }
}

// Require returns the concrete school id for writes.
func (s Scope) Require() (uuid.UUID, error) {
	if s.All || s.SchoolID == uuid.Nil {
		return uuid.Nil, ErrSchoolRequired
	}
	return s.SchoolID, nil
}

// Key identifies the scope in cache keys ("global" for SuperAdmin).
func (s Scope) Key() string {
	if s.All {
		return "global"
	}
	return s.SchoolID.String()
}
