package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"edusuite_backend/internals/constants"
	"edusuite_backend/internals/features/school/parents/controller"
	authMiddleware "edusuite_backend/internals/middlewares/auth"
)

func ParentRoutes(api fiber.Router, db *gorm.DB, guards ...fiber.Handler) {
	ctl := controller.NewParentController(db)
	g := api.Group("/parents", guards...)

	read := authMiddleware.Require(constants.OpParentsRead)
	write := authMiddleware.Require(constants.OpParentsWrite)

	g.Get("/", read, ctl.List)
	g.Post("/", write, ctl.Create)
	g.Get("/:id", read, ctl.Get)
	g.Put("/:id", write, ctl.Update)
	g.Delete("/:id", write, ctl.Delete)
	g.Post("/:id/children/:studentId", write, ctl.LinkChild)
	g.Delete("/:id/children/:studentId", write, ctl.UnlinkChild)
}
