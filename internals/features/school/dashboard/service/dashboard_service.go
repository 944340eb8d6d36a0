package service

import (
	"context"
	"math"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"edusuite_backend/internals/features/finance/fees/model"
	"edusuite_backend/internals/features/school/dashboard/dto"
	parentModel "edusuite_backend/internals/features/school/parents/model"
	studentModel "edusuite_backend/internals/features/school/students/model"
	teacherModel "edusuite_backend/internals/features/school/teachers/model"
	helperAuth "edusuite_backend/internals/helpers/auth"
)

type DashboardService struct {
	db *gorm.DB
}

func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{db: db}
}

type feeTotals struct {
	Total        float64
	Collected    float64
	Outstanding  float64
	OverdueOwed  float64
	OverdueCount int64
}

// Stats runs the counts and the fee aggregate concurrently.
func (s *DashboardService) Stats(ctx context.Context, scope helperAuth.Scope) (*dto.StatsResponse, error) {
	out := &dto.StatsResponse{RecentActivity: []dto.Activity{}}
	var fees feeTotals

	g, gctx := errgroup.WithContext(ctx)
	count := func(m any, dst *int64) func() error {
		return func() error {
			return s.db.WithContext(gctx).Model(m).Scopes(scope.Fn("school_id")).Count(dst).Error
		}
	}
	g.Go(count(&studentModel.StudentModel{}, &out.TotalStudents))
	g.Go(count(&teacherModel.TeacherModel{}, &out.TotalTeachers))
	g.Go(count(&parentModel.ParentModel{}, &out.TotalParents))
	g.Go(func() error {
		var rows []model.FeeModel
		err := s.db.WithContext(gctx).
			Select("amount", "paid_amount", "status").
			Scopes(scope.Fn("school_id")).
			Find(&rows).Error
		if err != nil {
			return err
		}
		fees = summarize(rows)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out.TotalFees = fees.Total
	out.CollectedFees = fees.Collected
	out.OutstandingFees = fees.Outstanding
	out.OverdueFees = fees.OverdueOwed
	out.OverdueCount = fees.OverdueCount
	if fees.Total > 0 {
		out.FeeComplianceRate = int(math.Round(fees.Collected / fees.Total * 100))
	}
	return out, nil
}

func summarize(rows []model.FeeModel) feeTotals {
	var t feeTotals
	for i := range rows {
		f := &rows[i]
		t.Total += f.Amount
		t.Collected += f.PaidAmount
		owed := f.Outstanding()
		t.Outstanding += owed
		if f.Status == model.StatusOverdue {
			t.OverdueOwed += owed
			t.OverdueCount++
		}
	}
	return t
}
