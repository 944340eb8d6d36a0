package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"edusuite_backend/internals/features/users/auth/controller"
	"edusuite_backend/internals/helpers/supabase"
	"edusuite_backend/internals/middlewares"
)

// AuthRoutes mounts the public /auth endpoints; authn guards only /auth/verify.
func AuthRoutes(api fiber.Router, db *gorm.DB, provider supabase.Provider, authn fiber.Handler) {
	ctl := controller.NewAuthController(db, provider)
	g := api.Group("/auth")

	g.Post("/signup", middlewares.RegisterRateLimiter(), ctl.Signup)
	g.Post("/login", middlewares.LoginRateLimiter(), ctl.Login)
	g.Get("/verify", authn, ctl.Verify)
}
