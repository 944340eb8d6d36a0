package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"edusuite_backend/internals/features/school/teachers/dto"
	"edusuite_backend/internals/features/school/teachers/model"
	helper "edusuite_backend/internals/helpers"
	helperAuth "edusuite_backend/internals/helpers/auth"
	"edusuite_backend/internals/helpers/tenant"
)

type TeacherService struct {
	repo *tenant.Repo[model.TeacherModel]
}

func NewTeacherService(db *gorm.DB) *TeacherService {
	return &TeacherService{repo: tenant.NewRepo[model.TeacherModel](db, "Teacher")}
}

func (s *TeacherService) List(ctx context.Context, scope helperAuth.Scope, p helper.Paging) ([]model.TeacherModel, map[uuid.UUID]dto.Assignments, int64, error) {
	rows, total, err := s.repo.List(ctx, scope, p, "created_at DESC")
	if err != nil {
		return nil, nil, 0, err
	}
	ids := make([]uuid.UUID, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, r.ID)
	}
	assigned, err := s.assignments(ctx, s.repo.DB(), ids)
	if err != nil {
		return nil, nil, 0, err
	}
	return rows, assigned, total, nil
}

func (s *TeacherService) Get(ctx context.Context, scope helperAuth.Scope, id uuid.UUID) (*model.TeacherModel, dto.Assignments, error) {
	return s.load(ctx, s.repo.DB(), scope, id)
}

func (s *TeacherService) load(ctx context.Context, tx *gorm.DB, scope helperAuth.Scope, id uuid.UUID) (*model.TeacherModel, dto.Assignments, error) {
	m, err := s.repo.Find(ctx, tx, scope, id)
	if err != nil {
		return nil, dto.Assignments{}, err
	}
	assigned, err := s.assignments(ctx, tx, []uuid.UUID{id})
	if err != nil {
		return nil, dto.Assignments{}, err
	}
	return m, assigned[id], nil
}

// assignments loads subjects and classes for the given teachers.
func (s *TeacherService) assignments(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) (map[uuid.UUID]dto.Assignments, error) {
	out := make(map[uuid.UUID]dto.Assignments, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	var subjects []model.TeacherSubjectModel
	if err := tx.WithContext(ctx).Where("teacher_id IN ?", ids).Order("subject").Find(&subjects).Error; err != nil {
		return nil, err
	}
	var classes []model.TeacherClassModel
	if err := tx.WithContext(ctx).Where("teacher_id IN ?", ids).Order("class_name").Find(&classes).Error; err != nil {
		return nil, err
	}
	for _, sub := range subjects {
		a := out[sub.TeacherID]
		a.Subjects = append(a.Subjects, sub.Subject)
		out[sub.TeacherID] = a
	}
	for _, cl := range classes {
		a := out[cl.TeacherID]
		a.Classes = append(a.Classes, cl.ClassName)
		out[cl.TeacherID] = a
	}
	return out, nil
}

func (s *TeacherService) Create(ctx context.Context, scope helperAuth.Scope, req dto.CreateTeacherRequest) (*model.TeacherModel, dto.Assignments, error) {
	m := req.ToModel()
	var (
		out      *model.TeacherModel
		assigned dto.Assignments
	)
	err := s.repo.DB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.repo.Create(ctx, tx, scope, &m); err != nil {
			return err
		}
		if err := replaceSubjects(tx, m.SchoolID, m.ID, req.Subjects); err != nil {
			return err
		}
		if err := replaceClasses(tx, m.SchoolID, m.ID, req.Classes); err != nil {
			return err
		}
		var err error
		out, assigned, err = s.load(ctx, tx, scope, m.ID)
		return err
	})
	if err != nil {
		return nil, dto.Assignments{}, err
	}
	return out, assigned, nil
}

func (s *TeacherService) Update(ctx context.Context, scope helperAuth.Scope, id uuid.UUID, req dto.UpdateTeacherRequest) (*model.TeacherModel, dto.Assignments, error) {
	var (
		out      *model.TeacherModel
		assigned dto.Assignments
	)
	err := s.repo.DB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		cur, err := s.repo.Update(ctx, tx, scope, id, req.ToUpdates())
		if err != nil {
			return err
		}
		if req.Subjects != nil {
			if err := replaceSubjects(tx, cur.SchoolID, id, *req.Subjects); err != nil {
				return err
			}
		}
		if req.Classes != nil {
			if err := replaceClasses(tx, cur.SchoolID, id, *req.Classes); err != nil {
				return err
			}
		}
		out, assigned, err = s.load(ctx, tx, scope, id)
		return err
	})
	if err != nil {
		return nil, dto.Assignments{}, err
	}
	return out, assigned, nil
}

func (s *TeacherService) Delete(ctx context.Context, scope helperAuth.Scope, id uuid.UUID) error {
	return s.repo.DB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.repo.Delete(ctx, tx, scope, id); err != nil {
			return err
		}
		if err := tx.Where("teacher_id = ?", id).Delete(&model.TeacherSubjectModel{}).Error; err != nil {
			return err
		}
		return tx.Where("teacher_id = ?", id).Delete(&model.TeacherClassModel{}).Error
	})
}

func uniqueTrimmed(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, v := range in {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

func replaceSubjects(tx *gorm.DB, schoolID, teacherID uuid.UUID, subjects []string) error {
	if err := tx.Where("teacher_id = ?", teacherID).Delete(&model.TeacherSubjectModel{}).Error; err != nil {
		return err
	}
	rows := make([]model.TeacherSubjectModel, 0, len(subjects))
	for _, sub := range uniqueTrimmed(subjects) {
		rows = append(rows, model.TeacherSubjectModel{TeacherID: teacherID, Subject: sub, SchoolID: schoolID})
	}
	if len(rows) == 0 {
		return nil
	}
	return tx.Create(&rows).Error
}

func replaceClasses(tx *gorm.DB, schoolID, teacherID uuid.UUID, classes []string) error {
	if err := tx.Where("teacher_id = ?", teacherID).Delete(&model.TeacherClassModel{}).Error; err != nil {
		return err
	}
	rows := make([]model.TeacherClassModel, 0, len(classes))
	for _, cl := range uniqueTrimmed(classes) {
		rows = append(rows, model.TeacherClassModel{TeacherID: teacherID, ClassName: cl, SchoolID: schoolID})
	}
	if len(rows) == 0 {
		return nil
	}
	return tx.Create(&rows).Error
}
