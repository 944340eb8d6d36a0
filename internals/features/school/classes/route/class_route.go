package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"edusuite_backend/internals/constants"
	"edusuite_backend/internals/features/school/classes/controller"
	authMiddleware "edusuite_backend/internals/middlewares/auth"
)

func ClassRoutes(api fiber.Router, db *gorm.DB, guards ...fiber.Handler) {
	ctl := controller.NewClassController(db)
	g := api.Group("/classes", guards...)

	read := authMiddleware.Require(constants.OpClassesRead)
	write := authMiddleware.Require(constants.OpClassesWrite)

	g.Get("/", read, ctl.List)
	g.Post("/", write, ctl.Create)
	g.Get("/:id", read, ctl.Get)
	g.Put("/:id", write, ctl.Update)
	g.Delete("/:id", write, ctl.Delete)
}
