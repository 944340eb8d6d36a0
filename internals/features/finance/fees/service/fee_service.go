package service

import (
	"context"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"edusuite_backend/internals/features/finance/fees/dto"
	"edusuite_backend/internals/features/finance/fees/model"
	studentModel "edusuite_backend/internals/features/school/students/model"
	helper "edusuite_backend/internals/helpers"
	helperAuth "edusuite_backend/internals/helpers/auth"
	"edusuite_backend/internals/helpers/tenant"
)

type FeeService struct {
	repo     *tenant.Repo[model.FeeModel]
	students *tenant.Repo[studentModel.StudentModel]
}

func NewFeeService(db *gorm.DB) *FeeService {
	return &FeeService{
		repo:     tenant.NewRepo[model.FeeModel](db, "Fee"),
		students: tenant.NewRepo[studentModel.StudentModel](db, "Student"),
	}
}

func (s *FeeService) List(ctx context.Context, scope helperAuth.Scope, q dto.ListFeeQuery, p helper.Paging) ([]model.FeeModel, int64, error) {
	var filters []func(*gorm.DB) *gorm.DB
	if q.StudentID != nil {
		filters = append(filters, func(tx *gorm.DB) *gorm.DB { return tx.Where("student_id = ?", *q.StudentID) })
	}
	if q.Status != "" {
		filters = append(filters, func(tx *gorm.DB) *gorm.DB { return tx.Where("status = ?", q.Status) })
	}
	return s.repo.List(ctx, scope, p, "created_at DESC", filters...)
}

func (s *FeeService) Get(ctx context.Context, scope helperAuth.Scope, id uuid.UUID) (*model.FeeModel, error) {
	return s.repo.Find(ctx, nil, scope, id)
}

func (s *FeeService) Create(ctx context.Context, scope helperAuth.Scope, req dto.CreateFeeRequest) (*model.FeeModel, error) {
	m, err := req.ToModel()
	if err != nil {
		return nil, err
	}
	if err := s.students.EnsureAll(ctx, nil, scope, m.StudentID); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, nil, scope, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *FeeService) Update(ctx context.Context, scope helperAuth.Scope, id uuid.UUID, req dto.UpdateFeeRequest) (*model.FeeModel, error) {
	updates, err := req.ToUpdates()
	if err != nil {
		return nil, err
	}
	if req.StudentID != nil {
		if err := s.students.EnsureAll(ctx, nil, scope, *req.StudentID); err != nil {
			return nil, err
		}
	}
	return s.repo.Update(ctx, nil, scope, id, updates)
}

// UpdateStatus sets the status in a single UPDATE. Paid stamps payment_date,
// any other status clears it. paid_amount changes only when the caller sends it.
func (s *FeeService) UpdateStatus(ctx context.Context, scope helperAuth.Scope, id uuid.UUID, req dto.UpdateStatusRequest) (*model.FeeModel, error) {
	status := strings.TrimSpace(req.Status)
	if status == "" {
		return nil, helper.ErrBadRequest("Status is required")
	}
	if !slices.Contains(model.Statuses, status) {
		return nil, helper.ErrBadRequest("Invalid status. Must be one of: " + strings.Join(model.Statuses, ", "))
	}
	updates := map[string]any{"status": status}
	if status == model.StatusPaid {
		updates["payment_date"] = time.Now().UTC()
		if req.PaidAmount != nil {
			updates["paid_amount"] = *req.PaidAmount
		}
	} else {
		updates["payment_date"] = nil
	}
	return s.repo.Update(ctx, nil, scope, id, updates)
}

func (s *FeeService) Delete(ctx context.Context, scope helperAuth.Scope, id uuid.UUID) error {
	return s.repo.Delete(ctx, nil, scope, id)
}

// MarkOverdue flips every Pending fee due before today to Overdue, across all schools.
func (s *FeeService) MarkOverdue(ctx context.Context, today datatypes.Date) (int64, error) {
	res := s.repo.Query(ctx, nil, helperAuth.Global()).
		Where("status = ? AND due_date IS NOT NULL AND due_date < ?", model.StatusPending, today).
		Updates(map[string]any{"status": model.StatusOverdue})
	return res.RowsAffected, res.Error
}
