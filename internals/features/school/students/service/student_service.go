package service

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	classModel "edusuite_backend/internals/features/school/classes/model"
	parentModel "edusuite_backend/internals/features/school/parents/model"
	"edusuite_backend/internals/features/school/students/dto"
	"edusuite_backend/internals/features/school/students/model"
	helper "edusuite_backend/internals/helpers"
	helperAuth "edusuite_backend/internals/helpers/auth"
	"edusuite_backend/internals/helpers/tenant"
)

type StudentService struct {
	repo    *tenant.Repo[model.StudentModel]
	classes *tenant.Repo[classModel.ClassModel]
}

func NewStudentService(db *gorm.DB) *StudentService {
	return &StudentService{
		repo:    tenant.NewRepo[model.StudentModel](db, "Student"),
		classes: tenant.NewRepo[classModel.ClassModel](db, "Class"),
	}
}

func (s *StudentService) List(ctx context.Context, scope helperAuth.Scope, q dto.ListStudentQuery, p helper.Paging) ([]model.StudentModel, int64, error) {
	var filters []func(*gorm.DB) *gorm.DB
	if q.ClassID != nil {
		filters = append(filters, func(tx *gorm.DB) *gorm.DB { return tx.Where("class_id = ?", *q.ClassID) })
	}
	if q.Grade != nil {
		filters = append(filters, func(tx *gorm.DB) *gorm.DB { return tx.Where("grade = ?", *q.Grade) })
	}
	return s.repo.List(ctx, scope, p, "created_at DESC", filters...)
}

func (s *StudentService) Get(ctx context.Context, scope helperAuth.Scope, id uuid.UUID) (*model.StudentModel, error) {
	return s.repo.Find(ctx, nil, scope, id)
}

func (s *StudentService) Create(ctx context.Context, scope helperAuth.Scope, req dto.CreateStudentRequest) (*model.StudentModel, error) {
	m, err := req.ToModel()
	if err != nil {
		return nil, err
	}
	if m.ClassID != nil {
		if err := s.classes.EnsureAll(ctx, nil, scope, *m.ClassID); err != nil {
			return nil, err
		}
	}
	if err := s.repo.Create(ctx, nil, scope, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *StudentService) Update(ctx context.Context, scope helperAuth.Scope, id uuid.UUID, req dto.UpdateStudentRequest) (*model.StudentModel, error) {
	updates, err := req.ToUpdates()
	if err != nil {
		return nil, err
	}
	if req.ClassID != nil {
		if err := s.classes.EnsureAll(ctx, nil, scope, *req.ClassID); err != nil {
			return nil, err
		}
	}
	if req.FirstName != nil || req.LastName != nil {
		cur, err := s.repo.Find(ctx, nil, scope, id)
		if err != nil {
			return nil, err
		}
		first, last := cur.FirstName, cur.LastName
		if v, ok := updates["first_name"].(string); ok {
			first = v
		}
		if v, ok := updates["last_name"].(string); ok {
			last = v
		}
		updates["name"] = first + " " + last
	}
	return s.repo.Update(ctx, nil, scope, id, updates)
}

// Delete removes the student with its parent links and academic tracks.
func (s *StudentService) Delete(ctx context.Context, scope helperAuth.Scope, id uuid.UUID) error {
	return s.repo.DB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.repo.Find(ctx, tx, scope, id); err != nil {
			return err
		}
		if err := tx.Where("student_id = ?", id).Delete(&parentModel.ParentChildModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("student_id = ?", id).Delete(&model.AcademicTrackModel{}).Error; err != nil {
			return err
		}
		return s.repo.Delete(ctx, tx, scope, id)
	})
}
