package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"edusuite_backend/internals/features/school/parents/dto"
	"edusuite_backend/internals/features/school/parents/service"
	helper "edusuite_backend/internals/helpers"
	helperAuth "edusuite_backend/internals/helpers/auth"
)

type ParentController struct {
	svc *service.ParentService
}

func NewParentController(db *gorm.DB) *ParentController {
	return &ParentController{svc: service.NewParentService(db)}
}

func (ctl *ParentController) List(c *fiber.Ctx) error {
	scope, err := helperAuth.GetScope(c)
	if err != nil {
		return err
	}
	p := helper.DefaultPaging(c)
	rows, children, total, err := ctl.svc.List(helper.ReqCtx(c), scope, p)
	if err != nil {
		return helper.FromServiceError(c, err)
	}
	return helper.JsonList(c, "", dto.FromModels(rows, children), p.Build(total))
}

func (ctl *ParentController) Get(c *fiber.Ctx) error {
	scope, err := helperAuth.GetScope(c)
	if err != nil {
		return err
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromServiceError(c, err)
	}
	m, children, err := ctl.svc.Get(helper.ReqCtx(c), scope, id)
	if err != nil {
		return helper.FromServiceError(c, err)
	}
	return helper.JsonOK(c, "", dto.FromModel(m, children))
}

func (ctl *ParentController) Create(c *fiber.Ctx) error {
	scope, err := helperAuth.GetScope(c)
	if err != nil {
		return err
	}
	var req dto.CreateParentRequest
	if err := helper.ParseBody(c, &req); err != nil {
		return helper.FromServiceError(c, err)
	}
	m, children, err := ctl.svc.Create(helper.ReqCtx(c), scope, req)
	if err != nil {
		return helper.FromServiceError(c, err)
	}
	return helper.JsonCreated(c, "Parent created", dto.FromModel(m, children))
}

func (ctl *ParentController) Update(c *fiber.Ctx) error {
	scope, err := helperAuth.GetScope(c)
	if err != nil {
		return err
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromServiceError(c, err)
	}
	var req dto.UpdateParentRequest
	if err := helper.ParseBody(c, &req); err != nil {
		return helper.FromServiceError(c, err)
	}
	m, children, err := ctl.svc.Update(helper.ReqCtx(c), scope, id, req)
	if err != nil {
		return helper.FromServiceError(c, err)
	}
	return helper.JsonUpdated(c, "Parent updated", dto.FromModel(m, children))
}

func (ctl *ParentController) Delete(c *fiber.Ctx) error {
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

// POST /api/parents/:id/children/:studentId
func (ctl *ParentController) LinkChild(c *fiber.Ctx) error {
	scope, err := helperAuth.GetScope(c)
	if err != nil {
		return err
	}
	parentID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromServiceError(c, err)
	}
	studentID, err := helper.ParseUUIDParam(c, "studentId")
	if err != nil {
		return helper.FromServiceError(c, err)
	}
	m, children, err := ctl.svc.LinkChild(helper.ReqCtx(c), scope, parentID, studentID)
	if err != nil {
		return helper.FromServiceError(c, err)
	}
	return helper.JsonOK(c, "Child linked", dto.FromModel(m, children))
}

// DELETE /api/parents/:id/children/:studentId
func (ctl *ParentController) UnlinkChild(c *fiber.Ctx) error {
	scope, err := helperAuth.GetScope(c)
	if err != nil {
		return err
	}
	parentID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromServiceError(c, err)
	}
	studentID, err := helper.ParseUUIDParam(c, "studentId")
	if err != nil {
		return helper.FromServiceError(c, err)
	}
	if err := ctl.svc.UnlinkChild(helper.ReqCtx(c), scope, parentID, studentID); err != nil {
		return helper.FromServiceError(c, err)
	}
	return helper.JsonDeleted(c)
}
