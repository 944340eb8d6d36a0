package service

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"edusuite_backend/internals/features/school/parents/dto"
	"edusuite_backend/internals/features/school/parents/model"
	studentModel "edusuite_backend/internals/features/school/students/model"
	helper "edusuite_backend/internals/helpers"
	helperAuth "edusuite_backend/internals/helpers/auth"
	"edusuite_backend/internals/helpers/tenant"
)

type ParentService struct {
	repo     *tenant.Repo[model.ParentModel]
	students *tenant.Repo[studentModel.StudentModel]
}

func NewParentService(db *gorm.DB) *ParentService {
	return &ParentService{
		repo:     tenant.NewRepo[model.ParentModel](db, "Parent"),
		students: tenant.NewRepo[studentModel.StudentModel](db, "Student"),
	}
}

func (s *ParentService) List(ctx context.Context, scope helperAuth.Scope, p helper.Paging) ([]model.ParentModel, map[uuid.UUID][]uuid.UUID, int64, error) {
	rows, total, err := s.repo.List(ctx, scope, p, "name ASC")
	if err != nil {
		return nil, nil, 0, err
	}
	ids := make([]uuid.UUID, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, r.ID)
	}
	children, err := s.children(ctx, s.repo.DB(), ids)
	if err != nil {
		return nil, nil, 0, err
	}
	return rows, children, total, nil
}

func (s *ParentService) Get(ctx context.Context, scope helperAuth.Scope, id uuid.UUID) (*model.ParentModel, []uuid.UUID, error) {
	return s.load(ctx, s.repo.DB(), scope, id)
}

func (s *ParentService) load(ctx context.Context, tx *gorm.DB, scope helperAuth.Scope, id uuid.UUID) (*model.ParentModel, []uuid.UUID, error) {
	m, err := s.repo.Find(ctx, tx, scope, id)
	if err != nil {
		return nil, nil, err
	}
	children, err := s.children(ctx, tx, []uuid.UUID{id})
	if err != nil {
		return nil, nil, err
	}
	return m, children[id], nil
}

func (s *ParentService) children(ctx context.Context, tx *gorm.DB, parentIDs []uuid.UUID) (map[uuid.UUID][]uuid.UUID, error) {
	out := make(map[uuid.UUID][]uuid.UUID, len(parentIDs))
	if len(parentIDs) == 0 {
		return out, nil
	}
	var links []model.ParentChildModel
	if err := tx.WithContext(ctx).Where("parent_id IN ?", parentIDs).Order("created_at").Find(&links).Error; err != nil {
		return nil, err
	}
	for _, l := range links {
		out[l.ParentID] = append(out[l.ParentID], l.StudentID)
	}
	return out, nil
}

func (s *ParentService) Create(ctx context.Context, scope helperAuth.Scope, req dto.CreateParentRequest) (*model.ParentModel, []uuid.UUID, error) {
	m := req.ToModel()
	var (
		out      *model.ParentModel
		children []uuid.UUID
	)
	err := s.repo.DB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.students.EnsureAll(ctx, tx, scope, req.ChildIDs...); err != nil {
			return err
		}
		if err := s.repo.Create(ctx, tx, scope, &m); err != nil {
			return err
		}
		for _, sid := range req.ChildIDs {
			if err := link(tx, m.SchoolID, m.ID, sid); err != nil {
				return err
			}
		}
		var err error
		out, children, err = s.load(ctx, tx, scope, m.ID)
		return err
	})
	if err != nil {
		return nil, nil, err
	}
	return out, children, nil
}

func (s *ParentService) Update(ctx context.Context, scope helperAuth.Scope, id uuid.UUID, req dto.UpdateParentRequest) (*model.ParentModel, []uuid.UUID, error) {
	if _, err := s.repo.Update(ctx, nil, scope, id, req.ToUpdates()); err != nil {
		return nil, nil, err
	}
	return s.Get(ctx, scope, id)
}

func (s *ParentService) Delete(ctx context.Context, scope helperAuth.Scope, id uuid.UUID) error {
	return s.repo.DB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.repo.Delete(ctx, tx, scope, id); err != nil {
			return err
		}
		return tx.Where("parent_id = ?", id).Delete(&model.ParentChildModel{}).Error
	})
}

// LinkChild is idempotent; both sides must be in scope.
func (s *ParentService) LinkChild(ctx context.Context, scope helperAuth.Scope, parentID, studentID uuid.UUID) (*model.ParentModel, []uuid.UUID, error) {
	var (
		out      *model.ParentModel
		children []uuid.UUID
	)
	err := s.repo.DB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		p, err := s.repo.Find(ctx, tx, scope, parentID)
		if err != nil {
			return err
		}
		if err := s.students.EnsureAll(ctx, tx, scope, studentID); err != nil {
			return err
		}
		if err := link(tx, p.SchoolID, parentID, studentID); err != nil {
			return err
		}
		out, children, err = s.load(ctx, tx, scope, parentID)
		return err
	})
	if err != nil {
		return nil, nil, err
	}
	return out, children, nil
}

func (s *ParentService) UnlinkChild(ctx context.Context, scope helperAuth.Scope, parentID, studentID uuid.UUID) error {
	if _, err := s.repo.Find(ctx, nil, scope, parentID); err != nil {
		return err
	}
	res := s.repo.DB().WithContext(ctx).
		Where("parent_id = ? AND student_id = ?", parentID, studentID).
		Delete(&model.ParentChildModel{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return helper.ErrNotFound("Link not found")
	}
	return nil
}

func link(tx *gorm.DB, schoolID, parentID, studentID uuid.UUID) error {
	row := model.ParentChildModel{ParentID: parentID, StudentID: studentID, SchoolID: schoolID}
	return tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&row).Error
}
