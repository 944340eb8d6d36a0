package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authRoute "edusuite_backend/internals/features/users/auth/route"
	userRoute "edusuite_backend/internals/features/users/user/route"
	"edusuite_backend/internals/helpers/supabase"
)

// AuthRoutes is public except /auth/verify, which runs authn itself.
func AuthRoutes(api fiber.Router, db *gorm.DB, provider supabase.Provider, authn fiber.Handler) {
	authRoute.AuthRoutes(api, db, provider, authn)
}

func UserRoutes(api fiber.Router, db *gorm.DB, provider supabase.Provider, appURL string, guards ...fiber.Handler) {
	userRoute.UserRoutes(api, db, provider, appURL, guards...)
}
