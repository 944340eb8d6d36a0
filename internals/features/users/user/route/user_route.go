package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"edusuite_backend/internals/constants"
	"edusuite_backend/internals/features/users/user/controller"
	"edusuite_backend/internals/features/users/user/service"
	"edusuite_backend/internals/helpers/supabase"
	authMiddleware "edusuite_backend/internals/middlewares/auth"
)

// UserRoutes mounts /users. Invitations redirect to appURL once accepted.
func UserRoutes(api fiber.Router, db *gorm.DB, provider supabase.Provider, appURL string, guards ...fiber.Handler) {
	ctl := controller.NewUserController(service.NewUserService(db, provider, appURL))
	g := api.Group("/users", guards...)

	g.Get("/", authMiddleware.Require(constants.OpUsersRead), ctl.List)
	g.Post("/", authMiddleware.Require(constants.OpUsersWrite), ctl.Create)
	g.Post("/invite", authMiddleware.Require(constants.OpUsersInvite), ctl.Invite)
	g.Get("/:id", authMiddleware.Require(constants.OpUsersRead), ctl.Get)
	g.Put("/:id", authMiddleware.Require(constants.OpUsersWrite), ctl.Update)
}
