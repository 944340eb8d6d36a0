package service

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"edusuite_backend/internals/features/schools/school/dto"
	"edusuite_backend/internals/features/schools/school/model"
	helper "edusuite_backend/internals/helpers"
	helperAuth "edusuite_backend/internals/helpers/auth"
	"edusuite_backend/internals/helpers/tenant"
)

// SchoolService: a school is its own tenant, so the scope column is id.
type SchoolService struct {
	repo *tenant.Repo[model.SchoolModel]
}

func NewSchoolService(db *gorm.DB) *SchoolService {
	return &SchoolService{repo: tenant.NewRepo[model.SchoolModel](db, "School").WithColumn("id")}
}

// Create inserts a tenant; tx may be nil.
func (s *SchoolService) Create(ctx context.Context, tx *gorm.DB, req dto.CreateSchoolRequest) (*model.SchoolModel, error) {
	m := req.ToModel()
	if tx == nil {
		tx = s.repo.DB()
	}
	if err := tx.WithContext(ctx).Create(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *SchoolService) List(ctx context.Context, scope helperAuth.Scope, p helper.Paging) ([]model.SchoolModel, int64, error) {
	return s.repo.List(ctx, scope, p, "name ASC")
}

func (s *SchoolService) Get(ctx context.Context, scope helperAuth.Scope, id uuid.UUID) (*model.SchoolModel, error) {
	return s.repo.Find(ctx, nil, scope, id)
}

func (s *SchoolService) Update(ctx context.Context, scope helperAuth.Scope, id uuid.UUID, req dto.UpdateSchoolRequest) (*model.SchoolModel, error) {
	return s.repo.Update(ctx, nil, scope, id, req.ToUpdates())
}
