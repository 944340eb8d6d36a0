package service

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"edusuite_backend/internals/features/school/transport/buses/dto"
	"edusuite_backend/internals/features/school/transport/buses/model"
	helper "edusuite_backend/internals/helpers"
	helperAuth "edusuite_backend/internals/helpers/auth"
	"edusuite_backend/internals/helpers/tenant"
)

type BusService struct {
	repo *tenant.Repo[model.BusModel]
}

func NewBusService(db *gorm.DB) *BusService {
	return &BusService{repo: tenant.NewRepo[model.BusModel](db, "Bus")}
}

func (s *BusService) List(ctx context.Context, scope helperAuth.Scope, p helper.Paging) ([]model.BusModel, int64, error) {
	return s.repo.List(ctx, scope, p, "name ASC")
}

func (s *BusService) Get(ctx context.Context, scope helperAuth.Scope, id uuid.UUID) (*model.BusModel, error) {
	return s.repo.Find(ctx, nil, scope, id)
}

func (s *BusService) Create(ctx context.Context, scope helperAuth.Scope, req dto.CreateBusRequest) (*model.BusModel, error) {
	m := req.ToModel()
	if err := s.repo.Create(ctx, nil, scope, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *BusService) Update(ctx context.Context, scope helperAuth.Scope, id uuid.UUID, req dto.UpdateBusRequest) (*model.BusModel, error) {
	return s.repo.Update(ctx, nil, scope, id, req.ToUpdates())
}

func (s *BusService) Delete(ctx context.Context, scope helperAuth.Scope, id uuid.UUID) error {
	return s.repo.Delete(ctx, nil, scope, id)
}
