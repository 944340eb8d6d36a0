package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"edusuite_backend/internals/features/school/dashboard/service"
	helper "edusuite_backend/internals/helpers"
	helperAuth "edusuite_backend/internals/helpers/auth"
)

type DashboardController struct {
	svc *service.DashboardService
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{svc: service.NewDashboardService(db)}
}

// GET /api/dashboard/stats
func (ctl *DashboardController) Stats(c *fiber.Ctx) error {
	scope, err := helperAuth.GetScope(c)
	if err != nil {
		return err
	}
	out, err := ctl.svc.Stats(helper.ReqCtx(c), scope)
	if err != nil {
		return helper.FromServiceError(c, err)
	}
	return helper.JsonOK(c, "", out)
}
