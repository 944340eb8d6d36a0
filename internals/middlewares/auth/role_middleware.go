package auth

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"edusuite_backend/internals/constants"
	helper "edusuite_backend/internals/helpers"
	helperAuth "edusuite_backend/internals/helpers/auth"
)

// Require guards a route with an entry of the policy table.
func Require(op constants.Operation) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := helperAuth.GetIdentity(c)
		if !ok {
			return helper.ErrUnauthorized("User not authenticated")
		}
		if !constants.Allowed(op, id.Role) {
			log.Debug().Str("op", string(op)).Str("role", id.Role).Msg("policy denied")
			return helper.ErrForbidden(constants.ErrInsufficientPermissions)
		}
		return c.Next()
	}
}

// RoleMiddlewareWithCustomError checks membership in an explicit role list.
func RoleMiddlewareWithCustomError(allowedRoles []string, customForbiddenMessage string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := helperAuth.GetIdentity(c)
		if !ok {
			return helper.ErrUnauthorized("User not authenticated")
		}
		for _, allowed := range allowedRoles {
			if id.Role == allowed {
				return c.Next()
			}
		}
		if customForbiddenMessage == "" {
			customForbiddenMessage = constants.ErrInsufficientPermissions
		}
		return helper.ErrForbidden(customForbiddenMessage)
	}
}

func OnlyRoles(customMessage string, roles ...string) fiber.Handler {
	return RoleMiddlewareWithCustomError(roles, customMessage)
}
