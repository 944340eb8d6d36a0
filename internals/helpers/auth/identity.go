// file: internals/helpers/auth/identity.go
package helper

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"edusuite_backend/internals/constants"
)

// Identity is the caller as resolved from a provider token plus the users profile row.
type Identity struct {
	ID       uuid.UUID
	Email    string
	FullName string
	Role     string
	SchoolID *uuid.UUID
}

func (i *Identity) IsSuperAdmin() bool {
	return i != nil && i.Role == constants.RoleSuperAdmin
}

const (
	localsIdentity = "auth.identity"
	localsScope    = "auth.scope"
)

/* ============================
   Identity accessors
============================ */

func SetIdentity(c *fiber.Ctx, id *Identity) {
	c.Locals(localsIdentity, id)
}

func GetIdentity(c *fiber.Ctx) (*Identity, bool) {
	id, ok := c.Locals(localsIdentity).(*Identity)
	return id, ok && id != nil
}

/* ============================
   Scope accessors
============================ */

func SetScope(c *fiber.Ctx, s Scope) {
	c.Locals(localsScope, s)
}

// GetScope returns the tenant scope; missing scope is a 401 so handlers never run unguarded.
func GetScope(c *fiber.Ctx) (Scope, error) {
	s, ok := c.Locals(localsScope).(Scope)
	if !ok {
		return Scope{}, fiber.NewError(fiber.StatusUnauthorized, "User not authenticated")
	}
	return s, nil
}
