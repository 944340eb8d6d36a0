package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"edusuite_backend/internals/features/school/notices/dto"
	"edusuite_backend/internals/features/school/notices/model"
	helper "edusuite_backend/internals/helpers"
	helperAuth "edusuite_backend/internals/helpers/auth"
	"edusuite_backend/internals/helpers/tenant"
)

type NoticeService struct {
	repo *tenant.Repo[model.NoticeModel]
}

func NewNoticeService(db *gorm.DB) *NoticeService {
	return &NoticeService{repo: tenant.NewRepo[model.NoticeModel](db, "Notice")}
}

// List is newest first; audience "all" notices always match an audience filter.
func (s *NoticeService) List(ctx context.Context, scope helperAuth.Scope, audience string, p helper.Paging) ([]model.NoticeModel, int64, error) {
	var filters []func(*gorm.DB) *gorm.DB
	if audience = strings.TrimSpace(audience); audience != "" {
		filters = append(filters, func(tx *gorm.DB) *gorm.DB {
			return tx.Where("audience IN ?", []string{audience, "all"})
		})
	}
	return s.repo.List(ctx, scope, p, "timestamp DESC", filters...)
}

func (s *NoticeService) Get(ctx context.Context, scope helperAuth.Scope, id uuid.UUID) (*model.NoticeModel, error) {
	return s.repo.Find(ctx, nil, scope, id)
}

func (s *NoticeService) Create(ctx context.Context, scope helperAuth.Scope, author *helperAuth.Identity, req dto.CreateNoticeRequest) (*model.NoticeModel, error) {
	m := req.ToModel()
	if author != nil {
		m.AuthorID = &author.ID
	}
	if err := s.repo.Create(ctx, nil, scope, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *NoticeService) Update(ctx context.Context, scope helperAuth.Scope, id uuid.UUID, req dto.UpdateNoticeRequest) (*model.NoticeModel, error) {
	return s.repo.Update(ctx, nil, scope, id, req.ToUpdates())
}

func (s *NoticeService) Delete(ctx context.Context, scope helperAuth.Scope, id uuid.UUID) error {
	return s.repo.Delete(ctx, nil, scope, id)
}
