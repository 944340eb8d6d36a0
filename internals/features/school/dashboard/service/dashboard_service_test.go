package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	feeModel "edusuite_backend/internals/features/finance/fees/model"
	parentModel "edusuite_backend/internals/features/school/parents/model"
	studentModel "edusuite_backend/internals/features/school/students/model"
	teacherModel "edusuite_backend/internals/features/school/teachers/model"
	helperAuth "edusuite_backend/internals/helpers/auth"
	"edusuite_backend/internals/testutil"
)

func TestStats_ScopedToSchool(t *testing.T) {
	db := testutil.NewDB(t)
	a := testutil.CreateSchool(t, db, "A")
	b := testutil.CreateSchool(t, db, "B")

	s1 := studentModel.StudentModel{SchoolID: a.ID, Name: "One"}
	s2 := studentModel.StudentModel{SchoolID: a.ID, Name: "Two"}
	s3 := studentModel.StudentModel{SchoolID: b.ID, Name: "Three"}
	for _, s := range []*studentModel.StudentModel{&s1, &s2, &s3} {
		require.NoError(t, db.Create(s).Error)
	}
	require.NoError(t, db.Create(&teacherModel.TeacherModel{SchoolID: a.ID, Name: "T"}).Error)
	require.NoError(t, db.Create(&parentModel.ParentModel{SchoolID: b.ID, Name: "P"}).Error)

	fees := []feeModel.FeeModel{
		{SchoolID: a.ID, StudentID: s1.ID, Title: "Tuition", Amount: 100, PaidAmount: 100, Status: feeModel.StatusPaid},
		{SchoolID: a.ID, StudentID: s2.ID, Title: "Tuition", Amount: 100, PaidAmount: 20, Status: feeModel.StatusOverdue},
		{SchoolID: a.ID, StudentID: s2.ID, Title: "Bus", Amount: 100},
		{SchoolID: b.ID, StudentID: s3.ID, Title: "Tuition", Amount: 999},
	}
	require.NoError(t, db.Create(&fees).Error)

	got, err := NewDashboardService(db).Stats(context.Background(), helperAuth.ForSchool(a.ID))
	require.NoError(t, err)
	assert.EqualValues(t, 2, got.TotalStudents)
	assert.EqualValues(t, 1, got.TotalTeachers)
	assert.EqualValues(t, 0, got.TotalParents)
	assert.Equal(t, 300.0, got.TotalFees)
	assert.Equal(t, 120.0, got.CollectedFees)
	assert.Equal(t, 180.0, got.OutstandingFees)
	assert.Equal(t, 80.0, got.OverdueFees)
	assert.EqualValues(t, 1, got.OverdueCount)
	assert.Equal(t, 40, got.FeeComplianceRate)
	assert.NotNil(t, got.RecentActivity)

	all, err := NewDashboardService(db).Stats(context.Background(), helperAuth.Global())
	require.NoError(t, err)
	assert.EqualValues(t, 3, all.TotalStudents)
	assert.EqualValues(t, 1, all.TotalParents)
}

func TestStats_EmptySchool(t *testing.T) {
	db := testutil.NewDB(t)
	a := testutil.CreateSchool(t, db, "A")
	got, err := NewDashboardService(db).Stats(context.Background(), helperAuth.ForSchool(a.ID))
	require.NoError(t, err)
	assert.Zero(t, got.TotalFees)
	assert.Zero(t, got.FeeComplianceRate)
}
