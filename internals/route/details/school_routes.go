package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attendanceRoute "edusuite_backend/internals/features/school/attendance/route"
	classRoute "edusuite_backend/internals/features/school/classes/route"
	dashboardRoute "edusuite_backend/internals/features/school/dashboard/route"
	noticeRoute "edusuite_backend/internals/features/school/notices/route"
	parentRoute "edusuite_backend/internals/features/school/parents/route"
	studentRoute "edusuite_backend/internals/features/school/students/route"
	teacherRoute "edusuite_backend/internals/features/school/teachers/route"
	busRoute "edusuite_backend/internals/features/school/transport/buses/route"
	schoolRoute "edusuite_backend/internals/features/schools/school/route"
	"edusuite_backend/internals/helpers/supabase"
)

// SchoolRoutes mounts tenant management plus every per-school resource.
func SchoolRoutes(api fiber.Router, db *gorm.DB, provider supabase.Provider, guards ...fiber.Handler) {
	schoolRoute.SchoolRoutes(api, db, guards...)

	studentRoute.StudentRoutes(api, db, provider, guards...)
	teacherRoute.TeacherRoutes(api, db, guards...)
	parentRoute.ParentRoutes(api, db, guards...)
	classRoute.ClassRoutes(api, db, guards...)
	attendanceRoute.AttendanceRoutes(api, db, guards...)
	noticeRoute.NoticeRoutes(api, db, guards...)
	busRoute.BusRoutes(api, db, guards...)
	dashboardRoute.DashboardRoutes(api, db, guards...)
}
