package controller

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"edusuite_backend/internals/features/school/students/dto"
	"edusuite_backend/internals/features/school/students/service"
	helper "edusuite_backend/internals/helpers"
	helperAuth "edusuite_backend/internals/helpers/auth"
)

type StudentController struct {
	svc    *service.StudentService
	enroll *service.EnrollmentService
}

func NewStudentController(svc *service.StudentService, enroll *service.EnrollmentService) *StudentController {
	return &StudentController{svc: svc, enroll: enroll}
}

// GET /api/students?classId=&grade=
func (ctl *StudentController) List(c *fiber.Ctx) error {
	scope, err := helperAuth.GetScope(c)
	if err != nil {
		return err
	}
	var q dto.ListStudentQuery
	if q.ClassID, err = helper.ParseOptionalUUIDQuery(c, "classId"); err != nil {
		return helper.FromServiceError(c, err)
	}
	if raw := strings.TrimSpace(c.Query("grade")); raw != "" {
		g, err := strconv.Atoi(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid grade")
		}
		q.Grade = &g
	}

	p := helper.DefaultPaging(c)
	rows, total, err := ctl.svc.List(helper.ReqCtx(c), scope, q, p)
	if err != nil {
		return helper.FromServiceError(c, err)
	}
	return helper.JsonList(c, "", dto.FromModels(rows), p.Build(total))
}

func (ctl *StudentController) Get(c *fiber.Ctx) error {
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

func (ctl *StudentController) Create(c *fiber.Ctx) error {
	scope, err := helperAuth.GetScope(c)
	if err != nil {
		return err
	}
	var req dto.CreateStudentRequest
	if err := helper.ParseBody(c, &req); err != nil {
		return helper.FromServiceError(c, err)
	}
	m, err := ctl.svc.Create(helper.ReqCtx(c), scope, req)
	if err != nil {
		return helper.FromServiceError(c, err)
	}
	return helper.JsonCreated(c, "Student created", dto.FromModel(m))
}

func (ctl *StudentController) Update(c *fiber.Ctx) error {
	scope, err := helperAuth.GetScope(c)
	if err != nil {
		return err
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromServiceError(c, err)
	}
	var req dto.UpdateStudentRequest
	if err := helper.ParseBody(c, &req); err != nil {
		return helper.FromServiceError(c, err)
	}
	m, err := ctl.svc.Update(helper.ReqCtx(c), scope, id, req)
	if err != nil {
		return helper.FromServiceError(c, err)
	}
	return helper.JsonUpdated(c, "Student updated", dto.FromModel(m))
}

func (ctl *StudentController) Delete(c *fiber.Ctx) error {
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

// POST /api/students/enroll
func (ctl *StudentController) Enroll(c *fiber.Ctx) error {
	scope, err := helperAuth.GetScope(c)
	if err != nil {
		return err
	}
	var req dto.EnrollRequest
	if err := helper.ParseBody(c, &req); err != nil {
		return helper.FromServiceError(c, err)
	}
	out, err := ctl.enroll.Enroll(helper.ReqCtx(c), scope, req)
	if err != nil {
		return helper.FromServiceError(c, err)
	}
	return helper.JsonCreated(c, "Student enrolled successfully", out)
}
