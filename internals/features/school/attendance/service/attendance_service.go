package service

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"edusuite_backend/internals/features/school/attendance/dto"
	"edusuite_backend/internals/features/school/attendance/model"
	classModel "edusuite_backend/internals/features/school/classes/model"
	studentModel "edusuite_backend/internals/features/school/students/model"
	helper "edusuite_backend/internals/helpers"
	helperAuth "edusuite_backend/internals/helpers/auth"
	"edusuite_backend/internals/helpers/tenant"
)

type AttendanceService struct {
	repo     *tenant.Repo[model.AttendanceModel]
	students *tenant.Repo[studentModel.StudentModel]
	classes  *tenant.Repo[classModel.ClassModel]
}

func NewAttendanceService(db *gorm.DB) *AttendanceService {
	return &AttendanceService{
		repo:     tenant.NewRepo[model.AttendanceModel](db, "Attendance record"),
		students: tenant.NewRepo[studentModel.StudentModel](db, "Student"),
		classes:  tenant.NewRepo[classModel.ClassModel](db, "Class"),
	}
}

// ListByClassDate returns the register of one class on one day, with student names.
func (s *AttendanceService) ListByClassDate(ctx context.Context, scope helperAuth.Scope, classID uuid.UUID, date datatypes.Date) ([]model.AttendanceModel, map[uuid.UUID]string, error) {
	var rows []model.AttendanceModel
	err := s.repo.Query(ctx, nil, scope).
		Where("class_id = ? AND date = ?", classID, date).
		Order("created_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, nil, err
	}
	names, err := s.studentNames(ctx, scope, rows)
	if err != nil {
		return nil, nil, err
	}
	return rows, names, nil
}

func (s *AttendanceService) studentNames(ctx context.Context, scope helperAuth.Scope, rows []model.AttendanceModel) (map[uuid.UUID]string, error) {
	names := make(map[uuid.UUID]string, len(rows))
	if len(rows) == 0 {
		return names, nil
	}
	ids := make([]uuid.UUID, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, r.StudentID)
	}
	var students []studentModel.StudentModel
	if err := s.students.Query(ctx, nil, scope).Select("id", "name").Where("id IN ?", ids).Find(&students).Error; err != nil {
		return nil, err
	}
	for _, st := range students {
		names[st.ID] = st.Name
	}
	return names, nil
}

// Save upserts one row per (student, date); the latest status wins.
func (s *AttendanceService) Save(ctx context.Context, scope helperAuth.Scope, records []dto.MarkRecord) ([]model.AttendanceModel, error) {
	schoolID, err := scope.Require()
	if err != nil {
		return nil, err
	}

	type key struct {
		student uuid.UUID
		date    string
	}
	order := make([]key, 0, len(records))
	byKey := make(map[key]model.AttendanceModel, len(records))
	var studentIDs, classIDs []uuid.UUID
	for _, r := range records {
		m, err := r.ToModel()
		if err != nil {
			return nil, err
		}
		m.SchoolID = schoolID
		k := key{m.StudentID, *helper.FormatDate(&m.Date)}
		if _, seen := byKey[k]; !seen {
			order = append(order, k)
		}
		byKey[k] = m
		studentIDs = append(studentIDs, m.StudentID)
		if m.ClassID != nil {
			classIDs = append(classIDs, *m.ClassID)
		}
	}

	out := make([]model.AttendanceModel, 0, len(order))
	err = s.repo.DB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.students.EnsureAll(ctx, tx, scope, studentIDs...); err != nil {
			return err
		}
		if err := s.classes.EnsureAll(ctx, tx, scope, classIDs...); err != nil {
			return err
		}

		rows := make([]model.AttendanceModel, 0, len(order))
		for _, k := range order {
			rows = append(rows, byKey[k])
		}
		err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "student_id"}, {Name: "date"}},
			DoUpdates: clause.AssignmentColumns([]string{"status", "notes", "class_id", "updated_at"}),
		}).Create(&rows).Error
		if err != nil {
			return err
		}

		// re-read: on conflict the stored id is the original one
		for _, r := range rows {
			var saved model.AttendanceModel
			if err := tx.Where("student_id = ? AND date = ?", r.StudentID, r.Date).Take(&saved).Error; err != nil {
				return err
			}
			out = append(out, saved)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ListByStudent returns a student's history, newest first.
func (s *AttendanceService) ListByStudent(ctx context.Context, scope helperAuth.Scope, studentID uuid.UUID, p helper.Paging) ([]model.AttendanceModel, int64, error) {
	if err := s.students.EnsureAll(ctx, nil, scope, studentID); err != nil {
		return nil, 0, err
	}
	return s.repo.List(ctx, scope, p, "date DESC", func(tx *gorm.DB) *gorm.DB {
		return tx.Where("student_id = ?", studentID)
	})
}

func (s *AttendanceService) Delete(ctx context.Context, scope helperAuth.Scope, id uuid.UUID) error {
	return s.repo.Delete(ctx, nil, scope, id)
}
