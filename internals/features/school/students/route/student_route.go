package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"edusuite_backend/internals/constants"
	attendanceRoute "edusuite_backend/internals/features/school/attendance/route"
	"edusuite_backend/internals/features/school/students/controller"
	"edusuite_backend/internals/features/school/students/service"
	"edusuite_backend/internals/helpers/supabase"
	authMiddleware "edusuite_backend/internals/middlewares/auth"
)

func StudentRoutes(api fiber.Router, db *gorm.DB, provider supabase.Provider, guards ...fiber.Handler) {
	ctl := controller.NewStudentController(
		service.NewStudentService(db),
		service.NewEnrollmentService(db, provider),
	)
	g := api.Group("/students", guards...)

	read := authMiddleware.Require(constants.OpStudentsRead)
	write := authMiddleware.Require(constants.OpStudentsWrite)

	g.Post("/enroll", authMiddleware.Require(constants.OpStudentsEnroll), ctl.Enroll)
	g.Get("/", read, ctl.List)
	g.Post("/", write, ctl.Create)
	g.Get("/:id", read, ctl.Get)
	g.Put("/:id", write, ctl.Update)
	g.Delete("/:id", write, ctl.Delete)

	attendanceRoute.StudentAttendanceRoute(g, db)
}
