package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"edusuite_backend/internals/constants"
	"edusuite_backend/internals/features/school/notices/controller"
	authMiddleware "edusuite_backend/internals/middlewares/auth"
)

func NoticeRoutes(api fiber.Router, db *gorm.DB, guards ...fiber.Handler) {
	ctl := controller.NewNoticeController(db)
	g := api.Group("/notices", guards...)

	read := authMiddleware.Require(constants.OpNoticesRead)
	write := authMiddleware.Require(constants.OpNoticesWrite)

	g.Get("/", read, ctl.List)
	g.Post("/", write, ctl.Create)
	g.Get("/:id", read, ctl.Get)
	g.Put("/:id", write, ctl.Update)
	g.Delete("/:id", write, ctl.Delete)
}
