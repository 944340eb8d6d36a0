package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"edusuite_backend/internals/features/school/notices/dto"
	"edusuite_backend/internals/features/school/notices/service"
	helper "edusuite_backend/internals/helpers"
	helperAuth "edusuite_backend/internals/helpers/auth"
)

type NoticeController struct {
	svc *service.NoticeService
}

func NewNoticeController(db *gorm.DB) *NoticeController {
	return &NoticeController{svc: service.NewNoticeService(db)}
}

// GET /api/notices?audience=
func (ctl *NoticeController) List(c *fiber.Ctx) error {
	scope, err := helperAuth.GetScope(c)
	if err != nil {
		return err
	}
	p := helper.DefaultPaging(c)
	rows, total, err := ctl.svc.List(helper.ReqCtx(c), scope, c.Query("audience"), p)
	if err != nil {
		return helper.FromServiceError(c, err)
	}
	return helper.JsonList(c, "", dto.FromModels(rows), p.Build(total))
}

func (ctl *NoticeController) Get(c *fiber.Ctx) error {
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

// POST /api/notices; the author is the caller.
func (ctl *NoticeController) Create(c *fiber.Ctx) error {
	scope, err := helperAuth.GetScope(c)
	if err != nil {
		return err
	}
	var req dto.CreateNoticeRequest
	if err := helper.ParseBody(c, &req); err != nil {
		return helper.FromServiceError(c, err)
	}
	author, _ := helperAuth.GetIdentity(c)
	m, err := ctl.svc.Create(helper.ReqCtx(c), scope, author, req)
	if err != nil {
		return helper.FromServiceError(c, err)
	}
	return helper.JsonCreated(c, "Notice created", dto.FromModel(m))
}

func (ctl *NoticeController) Update(c *fiber.Ctx) error {
	scope, err := helperAuth.GetScope(c)
	if err != nil {
		return err
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromServiceError(c, err)
	}
	var req dto.UpdateNoticeRequest
	if err := helper.ParseBody(c, &req); err != nil {
		return helper.FromServiceError(c, err)
	}
	m, err := ctl.svc.Update(helper.ReqCtx(c), scope, id, req)
	if err != nil {
		return helper.FromServiceError(c, err)
	}
	return helper.JsonUpdated(c, "Notice updated", dto.FromModel(m))
}

func (ctl *NoticeController) Delete(c *fiber.Ctx) error {
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
