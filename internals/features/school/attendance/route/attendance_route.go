package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"edusuite_backend/internals/constants"
	"edusuite_backend/internals/features/school/attendance/controller"
	authMiddleware "edusuite_backend/internals/middlewares/auth"
)

func AttendanceRoutes(api fiber.Router, db *gorm.DB, guards ...fiber.Handler) {
	ctl := controller.NewAttendanceController(db)
	g := api.Group("/attendance", guards...)

	read := authMiddleware.Require(constants.OpAttendanceRead)
	write := authMiddleware.Require(constants.OpAttendanceWrite)

	g.Get("/", read, ctl.ListByClassDate)
	g.Post("/", write, ctl.Save)
	g.Get("/student/:studentId", read, ctl.ListByStudent("studentId"))
	g.Delete("/:id", write, ctl.Delete)
}

// StudentAttendanceRoute mounts GET /:id/attendance on an already guarded students group.
func StudentAttendanceRoute(students fiber.Router, db *gorm.DB) {
	ctl := controller.NewAttendanceController(db)
	students.Get("/:id/attendance", authMiddleware.Require(constants.OpAttendanceRead), ctl.ListByStudent("id"))
}
