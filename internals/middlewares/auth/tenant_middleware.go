package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	helper "edusuite_backend/internals/helpers"
	helperAuth "edusuite_backend/internals/helpers/auth"
)

const HeaderSchoolID = "X-School-ID"

// RequireTenant derives the request scope; handlers read it with helperAuth.GetScope.
func RequireTenant() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := helperAuth.GetIdentity(c)
		if !ok {
			return helper.ErrUnauthorized("User not authenticated")
		}

		raw := explicitSchool(c)

		if id.IsSuperAdmin() {
			if raw == "" {
				helperAuth.SetScope(c, helperAuth.Global())
				return c.Next()
			}
			sid, err := uuid.Parse(raw)
			if err != nil {
				return helper.ErrBadRequest("Invalid school_id")
			}
			helperAuth.SetScope(c, helperAuth.ForSchool(sid))
			return c.Next()
		}

		if id.SchoolID == nil {
			return helper.ErrForbidden("User does not belong to a school")
		}
		if raw != "" {
			sid, err := uuid.Parse(raw)
			if err != nil || sid != *id.SchoolID {
				return helper.ErrForbidden("Unauthorized access to another school data")
			}
		}

		helperAuth.SetScope(c, helperAuth.ForSchool(*id.SchoolID))
		return c.Next()
	}
}

func explicitSchool(c *fiber.Ctx) string {
	if v := strings.TrimSpace(c.Query("school_id")); v != "" {
		return v
	}
	return strings.TrimSpace(c.Get(HeaderSchoolID))
}
