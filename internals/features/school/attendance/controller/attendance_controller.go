package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"edusuite_backend/internals/features/school/attendance/dto"
	"edusuite_backend/internals/features/school/attendance/service"
	helper "edusuite_backend/internals/helpers"
	helperAuth "edusuite_backend/internals/helpers/auth"
)

type AttendanceController struct {
	svc *service.AttendanceService
}

func NewAttendanceController(db *gorm.DB) *AttendanceController {
	return &AttendanceController{svc: service.NewAttendanceService(db)}
}

// GET /api/attendance?classId=&date=
func (ctl *AttendanceController) ListByClassDate(c *fiber.Ctx) error {
	scope, err := helperAuth.GetScope(c)
	if err != nil {
		return err
	}
	if strings.TrimSpace(c.Query("classId")) == "" || strings.TrimSpace(c.Query("date")) == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "classId and date are required")
	}
	classID, err := helper.ParseOptionalUUIDQuery(c, "classId")
	if err != nil {
		return helper.FromServiceError(c, err)
	}
	date, err := helper.ParseDate("date", c.Query("date"))
	if err != nil {
		return helper.FromServiceError(c, err)
	}

	rows, names, err := ctl.svc.ListByClassDate(helper.ReqCtx(c), scope, *classID, *date)
	if err != nil {
		return helper.FromServiceError(c, err)
	}
	return helper.JsonOK(c, "", dto.FromModels(rows, names))
}

// POST /api/attendance
func (ctl *AttendanceController) Save(c *fiber.Ctx) error {
	scope, err := helperAuth.GetScope(c)
	if err != nil {
		return err
	}
	var req dto.SaveAttendanceRequest
	if err := helper.ParseBody(c, &req); err != nil {
		return helper.FromServiceError(c, err)
	}
	if req.Records == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "records array is required")
	}
	rows, err := ctl.svc.Save(helper.ReqCtx(c), scope, req.Records)
	if err != nil {
		return helper.FromServiceError(c, err)
	}
	return helper.JsonOK(c, "Attendance saved", dto.FromModels(rows, nil))
}

// GET /api/attendance/student/:studentId and /api/students/:id/attendance
func (ctl *AttendanceController) ListByStudent(param string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		scope, err := helperAuth.GetScope(c)
		if err != nil {
			return err
		}
		studentID, err := helper.ParseUUIDParam(c, param)
		if err != nil {
			return helper.FromServiceError(c, err)
		}
		p := helper.DefaultPaging(c)
		rows, total, err := ctl.svc.ListByStudent(helper.ReqCtx(c), scope, studentID, p)
		if err != nil {
			return helper.FromServiceError(c, err)
		}
		return helper.JsonList(c, "", dto.FromModels(rows, nil), p.Build(total))
	}
}

func (ctl *AttendanceController) Delete(c *fiber.Ctx) error {
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
