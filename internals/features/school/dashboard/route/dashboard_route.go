package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"edusuite_backend/internals/constants"
	"edusuite_backend/internals/features/school/dashboard/controller"
	authMiddleware "edusuite_backend/internals/middlewares/auth"
)

func DashboardRoutes(api fiber.Router, db *gorm.DB, guards ...fiber.Handler) {
	ctl := controller.NewDashboardController(db)
	g := api.Group("/dashboard", guards...)
	g.Get("/stats", authMiddleware.Require(constants.OpDashboardRead), ctl.Stats)
}
