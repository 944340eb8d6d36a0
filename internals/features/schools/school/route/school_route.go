package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"edusuite_backend/internals/constants"
	"edusuite_backend/internals/features/schools/school/controller"
	authMiddleware "edusuite_backend/internals/middlewares/auth"
)

// SchoolRoutes mounts /schools; guards must resolve identity and tenant scope.
func SchoolRoutes(api fiber.Router, db *gorm.DB, guards ...fiber.Handler) {
	ctl := controller.NewSchoolController(db)
	g := api.Group("/schools", guards...)

	superOnly := authMiddleware.OnlyRoles(constants.RoleErrorSuperAdmin("school management"), constants.RoleSuperAdmin)
	g.Post("/", superOnly, ctl.Create)
	g.Get("/", superOnly, ctl.List)

	g.Get("/:id", authMiddleware.Require(constants.OpSchoolsRead), ctl.Get)
	g.Put("/:id", authMiddleware.Require(constants.OpSchoolsWrite), ctl.Update)
}
