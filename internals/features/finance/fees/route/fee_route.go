package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"edusuite_backend/internals/constants"
	"edusuite_backend/internals/features/finance/fees/controller"
	authMiddleware "edusuite_backend/internals/middlewares/auth"
)

func FeeRoutes(api fiber.Router, db *gorm.DB, guards ...fiber.Handler) {
	ctl := controller.NewFeeController(db)
	g := api.Group("/fees", guards...)

	read := authMiddleware.Require(constants.OpFeesRead)
	write := authMiddleware.Require(constants.OpFeesWrite)

	g.Get("/", read, ctl.List)
	g.Post("/", write, ctl.Create)
	g.Get("/:id", read, ctl.Get)
	g.Put("/:id", write, ctl.Update)
	g.Put("/:id/status", write, ctl.UpdateStatus)
	g.Delete("/:id", write, ctl.Delete)
}
