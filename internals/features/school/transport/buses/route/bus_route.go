package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"edusuite_backend/internals/constants"
	"edusuite_backend/internals/features/school/transport/buses/controller"
	authMiddleware "edusuite_backend/internals/middlewares/auth"
)

func BusRoutes(api fiber.Router, db *gorm.DB, guards ...fiber.Handler) {
	ctl := controller.NewBusController(db)
	g := api.Group("/buses", guards...)

	g.Get("/", authMiddleware.Require(constants.OpBusesRead), ctl.List)
	g.Get("/:id", authMiddleware.Require(constants.OpBusesRead), ctl.Get)
	g.Post("/", authMiddleware.Require(constants.OpBusesWrite), ctl.Create)
	g.Put("/:id", authMiddleware.Require(constants.OpBusesWrite), ctl.Update)
	g.Delete("/:id", authMiddleware.Require(constants.OpBusesWrite), ctl.Delete)
}
