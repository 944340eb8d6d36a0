package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"edusuite_backend/internals/constants"
	"edusuite_backend/internals/features/school/teachers/controller"
	authMiddleware "edusuite_backend/internals/middlewares/auth"
)

func TeacherRoutes(api fiber.Router, db *gorm.DB, guards ...fiber.Handler) {
	ctl := controller.NewTeacherController(db)
	g := api.Group("/teachers", guards...)

	read := authMiddleware.Require(constants.OpTeachersRead)
	write := authMiddleware.Require(constants.OpTeachersWrite)

	g.Get("/", read, ctl.List)
	g.Post("/", write, ctl.Create)
	g.Get("/:id", read, ctl.Get)
	g.Put("/:id", write, ctl.Update)
	g.Delete("/:id", write, ctl.Delete)
}
