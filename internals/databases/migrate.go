package database

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	assistantModel "edusuite_backend/internals/features/ai/assistant/model"
	feeModel "edusuite_backend/internals/features/finance/fees/model"
	attendanceModel "edusuite_backend/internals/features/school/attendance/model"
	classModel "edusuite_backend/internals/features/school/classes/model"
	noticeModel "edusuite_backend/internals/features/school/notices/model"
	parentModel "edusuite_backend/internals/features/school/parents/model"
	studentModel "edusuite_backend/internals/features/school/students/model"
	teacherModel "edusuite_backend/internals/features/school/teachers/model"
	busModel "edusuite_backend/internals/features/school/transport/buses/model"
	schoolModel "edusuite_backend/internals/features/schools/school/model"
	userModel "edusuite_backend/internals/features/users/user/model"
)

// Models lists every table the application owns, in dependency order.
func Models() []any {
	return []any{
		&schoolModel.SchoolModel{},
		&userModel.UserModel{},
		&classModel.ClassModel{},
		&studentModel.StudentModel{},
		&studentModel.CurriculumModel{},
		&studentModel.AcademicTrackModel{},
		&parentModel.ParentModel{},
		&parentModel.ParentChildModel{},
		&teacherModel.TeacherModel{},
		&teacherModel.TeacherSubjectModel{},
		&teacherModel.TeacherClassModel{},
		&feeModel.FeeModel{},
		&noticeModel.NoticeModel{},
		&attendanceModel.AttendanceModel{},
		&busModel.BusModel{},
		&assistantModel.SchoolDocModel{},
		&assistantModel.AICacheModel{},
	}
}

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}

// SeedCurricula upserts the reference curricula enrollment relies on.
func SeedCurricula(ctx context.Context, db *gorm.DB) error {
	rows := []studentModel.CurriculumModel{
		{Name: studentModel.CurriculumNigerian},
		{Name: studentModel.CurriculumBritish},
	}
	return db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "name"}}, DoNothing: true}).
		Create(&rows).Error
}
