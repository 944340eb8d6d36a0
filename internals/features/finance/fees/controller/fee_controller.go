package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"edusuite_backend/internals/features/finance/fees/dto"
	"edusuite_backend/internals/features/finance/fees/service"
	helper "edusuite_backend/internals/helpers"
	helperAuth "edusuite_backend/internals/helpers/auth"
)

type FeeController struct {
	svc *service.FeeService
}

func NewFeeController(db *gorm.DB) *FeeController {
	return &FeeController{svc: service.NewFeeService(db)}
}

// GET /api/fees?studentId=&status=
func (ctl *FeeController) List(c *fiber.Ctx) error {
	scope, err := helperAuth.GetScope(c)
	if err != nil {
		return err
	}
	q := dto.ListFeeQuery{Status: strings.TrimSpace(c.Query("status"))}
	if q.StudentID, err = helper.ParseOptionalUUIDQuery(c, "studentId"); err != nil {
		return helper.FromServiceError(c, err)
	}
	p := helper.DefaultPaging(c)
	rows, total, err := ctl.svc.List(helper.ReqCtx(c), scope, q, p)
	if err != nil {
		return helper.FromServiceError(c, err)
	}
	return helper.JsonList(c, "", dto.FromModels(rows), p.Build(total))
}

func (ctl *FeeController) Get(c *fiber.Ctx) error {
	scope, err := helperAuth.GetScope(c)
	if err != nil {
		return err
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromServiceError(c, err)
	}
	m, err := ctl.svc.Get(helper.ReqCtx(c), scope, id)
	if err != nil {
		return helper.FromServiceError(c, err)
	}
	return helper.JsonOK(c, "", dto.FromModel(m))
}

func (ctl *FeeController) Create(c *fiber.Ctx) error {
	scope, err := helperAuth.GetScope(c)
	if err != nil {
		return err
	}
	var req dto.CreateFeeRequest
	if err := helper.ParseBody(c, &req); err != nil {
		return helper.FromServiceError(c, err)
	}
	m, err := ctl.svc.Create(helper.ReqCtx(c), scope, req)
	if err != nil {
		return helper.FromServiceError(c, err)
	}
	return helper.JsonCreated(c, "Fee created", dto.FromModel(m))
}

func (ctl *FeeController) Update(c *fiber.Ctx) error {
	scope, err := helperAuth.GetScope(c)
	if err != nil {
		return err
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromServiceError(c, err)
	}
	var req dto.UpdateFeeRequest
	if err := helper.ParseBody(c, &req); err != nil {
		return helper.FromServiceError(c, err)
	}
	m, err := ctl.svc.Update(helper.ReqCtx(c), scope, id, req)
	if err != nil {
		return helper.FromServiceError(c, err)
	}
	return helper.JsonUpdated(c, "Fee updated", dto.FromModel(m))
}

// PUT /api/fees/:id/status
func (ctl *FeeController) UpdateStatus(c *fiber.Ctx) error {
	scope, err := helperAuth.GetScope(c)
	if err != nil {
		return err
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromServiceError(c, err)
	}
	var req dto.UpdateStatusRequest
	if err := helper.ParseBody(c, &req); err != nil {
		return helper.FromServiceError(c, err)
	}
	m, err := ctl.svc.UpdateStatus(helper.ReqCtx(c), scope, id, req)
	if err != nil {
		return helper.FromServiceError(c, err)
	}
	return helper.JsonUpdated(c, "Fee status updated", dto.FromModel(m))
}

func (ctl *FeeController) Delete(c *fiber.Ctx) error {
	scope, err := helperAuth.GetScope(c)
	if err != nil {
		return err
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromServiceError(c, err)
	}
	if err := ctl.svc.Delete(helper.ReqCtx(c), scope, id); err != nil {
		return helper.FromServiceError(c, err)
	}
	return helper.JsonDeleted(c)
}
