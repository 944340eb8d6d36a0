package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"edusuite_backend/internals/features/school/classes/dto"
	"edusuite_backend/internals/features/school/classes/service"
	helper "edusuite_backend/internals/helpers"
	helperAuth "edusuite_backend/internals/helpers/auth"
)

type ClassController struct {
	svc *service.ClassService
}

func NewClassController(db *gorm.DB) *ClassController {
	return &ClassController{svc: service.NewClassService(db)}
}

func (ctl *ClassController) List(c *fiber.Ctx) error {
	scope, err := helperAuth.GetScope(c)
	if err != nil {
		return err
	}
	p := helper.DefaultPaging(c)
	rows, total, err := ctl.svc.List(helper.ReqCtx(c), scope, p)
	if err != nil {
		return helper.FromServiceError(c, err)
	}
	return helper.JsonList(c, "", dto.FromModels(rows), p.Build(total))
}

func (ctl *ClassController) Get(c *fiber.Ctx) error {
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

func (ctl *ClassController) Create(c *fiber.Ctx) error {
	scope, err := helperAuth.GetScope(c)
	if err != nil {
		return err
	}
	var req dto.CreateClassRequest
	if err := helper.ParseBody(c, &req); err != nil {
		return helper.FromServiceError(c, err)
	}
	m, err := ctl.svc.Create(helper.ReqCtx(c), scope, req)
	if err != nil {
		return helper.FromServiceError(c, err)
	}
	return helper.JsonCreated(c, "Class created", dto.FromModel(m))
}

func (ctl *ClassController) Update(c *fiber.Ctx) error {
	scope, err := helperAuth.GetScope(c)
	if err != nil {
		return err
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromServiceError(c, err)
	}
	var req dto.UpdateClassRequest
	if err := helper.ParseBody(c, &req); err != nil {
		return helper.FromServiceError(c, err)
	}
	m, err := ctl.svc.Update(helper.ReqCtx(c), scope, id, req)
	if err != nil {
		return helper.FromServiceError(c, err)
	}
	return helper.JsonUpdated(c, "Class updated", dto.FromModel(m))
}

func (ctl *ClassController) Delete(c *fiber.Ctx) error {
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
