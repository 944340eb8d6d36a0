package service

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"edusuite_backend/internals/features/school/classes/dto"
	"edusuite_backend/internals/features/school/classes/model"
	studentModel "edusuite_backend/internals/features/school/students/model"
	helper "edusuite_backend/internals/helpers"
	helperAuth "edusuite_backend/internals/helpers/auth"
	"edusuite_backend/internals/helpers/tenant"
)

type ClassService struct {
	repo *tenant.Repo[model.ClassModel]
}

func NewClassService(db *gorm.DB) *ClassService {
	return &ClassService{repo: tenant.NewRepo[model.ClassModel](db, "Class")}
}

func (s *ClassService) List(ctx context.Context, scope helperAuth.Scope, p helper.Paging) ([]model.ClassModel, int64, error) {
	return s.repo.List(ctx, scope, p, "grade ASC, section ASC")
}

func (s *ClassService) Get(ctx context.Context, scope helperAuth.Scope, id uuid.UUID) (*model.ClassModel, error) {
	return s.repo.Find(ctx, nil, scope, id)
}

func (s *ClassService) Create(ctx context.Context, scope helperAuth.Scope, req dto.CreateClassRequest) (*model.ClassModel, error) {
	m := req.ToModel()
	if err := s.repo.Create(ctx, nil, scope, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *ClassService) Update(ctx context.Context, scope helperAuth.Scope, id uuid.UUID, req dto.UpdateClassRequest) (*model.ClassModel, error) {
	return s.repo.Update(ctx, nil, scope, id, req.ToUpdates())
}

// Delete detaches students from the class before removing it.
func (s *ClassService) Delete(ctx context.Context, scope helperAuth.Scope, id uuid.UUID) error {
	return s.repo.DB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.repo.Delete(ctx, tx, scope, id); err != nil {
			return err
		}
		return tx.Model(&studentModel.StudentModel{}).
			Scopes(scope.Fn("school_id")).
			Where("class_id = ?", id).
			Update("class_id", nil).Error
	})
}
