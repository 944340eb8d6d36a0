package service

import (
	"context"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"edusuite_backend/internals/features/finance/fees/dto"
	"edusuite_backend/internals/features/finance/fees/model"
	studentModel "edusuite_backend/internals/features/school/students/model"
	helper "edusuite_backend/internals/helpers"
	helperAuth "edusuite_backend/internals/helpers/auth"
	"edusuite_backend/internals/testutil"
)

func newStudent(t *testing.T, db *gorm.DB, schoolID uuid.UUID) uuid.UUID {
	t.Helper()
	st := studentModel.StudentModel{SchoolID: schoolID, Name: "Kemi Ade"}
	require.NoError(t, db.Create(&st).Error)
	return st.ID
}

func assertStatus(t *testing.T, err error, code int, msg ...string) {
	t.Helper()
	var fe *fiber.Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, code, fe.Code)
	if len(msg) > 0 {
		assert.Equal(t, msg[0], fe.Message)
	}
}

func TestUpdateStatus(t *testing.T) {
	db := testutil.NewDB(t)
	school := testutil.CreateSchool(t, db, "A")
	studentID := newStudent(t, db, school.ID)
	svc := NewFeeService(db)
	ctx := context.Background()
	scope := helperAuth.ForSchool(school.ID)

	fee, err := svc.Create(ctx, scope, dto.CreateFeeRequest{StudentID: studentID, Title: "Tuition", Amount: 50000, DueDate: "2025-01-31"})
	require.NoError(t, err)
	assert.Equal(t, model.StatusPending, fee.Status)
	assert.Nil(t, fee.PaymentDate)

	t.Run("validation", func(t *testing.T) {
		_, err := svc.UpdateStatus(ctx, scope, fee.ID, dto.UpdateStatusRequest{})
		assertStatus(t, err, fiber.StatusBadRequest, "Status is required")

		_, err = svc.UpdateStatus(ctx, scope, fee.ID, dto.UpdateStatusRequest{Status: "Refunded"})
		assertStatus(t, err, fiber.StatusBadRequest, "Invalid status. Must be one of: Pending, Paid, Overdue")
	})

	t.Run("paid stamps payment date and keeps paid amount", func(t *testing.T) {
		before := time.Now().Add(-time.Minute)
		got, err := svc.UpdateStatus(ctx, scope, fee.ID, dto.UpdateStatusRequest{Status: model.StatusPaid})
		require.NoError(t, err)
		assert.Equal(t, model.StatusPaid, got.Status)
		require.NotNil(t, got.PaymentDate)
		assert.True(t, got.PaymentDate.After(before))
		assert.Zero(t, got.PaidAmount)
	})

	t.Run("paid amount only when sent", func(t *testing.T) {
		got, err := svc.UpdateStatus(ctx, scope, fee.ID, dto.UpdateStatusRequest{Status: model.StatusPaid, PaidAmount: testutil.Ptr(50000.0)})
		require.NoError(t, err)
		assert.Equal(t, 50000.0, got.PaidAmount)
	})

	t.Run("leaving paid clears payment date", func(t *testing.T) {
		got, err := svc.UpdateStatus(ctx, scope, fee.ID, dto.UpdateStatusRequest{Status: model.StatusOverdue})
		require.NoError(t, err)
		assert.Equal(t, model.StatusOverdue, got.Status)
		assert.Nil(t, got.PaymentDate)
		assert.Equal(t, 50000.0, got.PaidAmount)
	})

	t.Run("other school", func(t *testing.T) {
		other := testutil.CreateSchool(t, db, "B")
		_, err := svc.UpdateStatus(ctx, helperAuth.ForSchool(other.ID), fee.ID, dto.UpdateStatusRequest{Status: model.StatusPending})
		assertStatus(t, err, fiber.StatusNotFound)
	})
}

func TestUpdate_StatusKeepsPaymentDateInStep(t *testing.T) {
	db := testutil.NewDB(t)
	school := testutil.CreateSchool(t, db, "A")
	svc := NewFeeService(db)
	ctx := context.Background()
	scope := helperAuth.ForSchool(school.ID)

	fee, err := svc.Create(ctx, scope, dto.CreateFeeRequest{StudentID: newStudent(t, db, school.ID), Title: "Uniform", Amount: 8000})
	require.NoError(t, err)

	got, err := svc.Update(ctx, scope, fee.ID, dto.UpdateFeeRequest{Status: testutil.Ptr(model.StatusPaid)})
	require.NoError(t, err)
	require.NotNil(t, got.PaymentDate)

	got, err = svc.Update(ctx, scope, fee.ID, dto.UpdateFeeRequest{Title: testutil.Ptr("School uniform")})
	require.NoError(t, err)
	assert.NotNil(t, got.PaymentDate)

	got, err = svc.Update(ctx, scope, fee.ID, dto.UpdateFeeRequest{Status: testutil.Ptr(model.StatusPending)})
	require.NoError(t, err)
	assert.Equal(t, model.StatusPending, got.Status)
	assert.Nil(t, got.PaymentDate)
}

func TestCreate_StudentMustBelongToSchool(t *testing.T) {
	db := testutil.NewDB(t)
	a := testutil.CreateSchool(t, db, "A")
	b := testutil.CreateSchool(t, db, "B")
	studentID := newStudent(t, db, b.ID)

	_, err := NewFeeService(db).Create(context.Background(), helperAuth.ForSchool(a.ID), dto.CreateFeeRequest{StudentID: studentID, Title: "Bus", Amount: 10})
	assertStatus(t, err, fiber.StatusNotFound)
}

func TestMarkOverdue(t *testing.T) {
	db := testutil.NewDB(t)
	a := testutil.CreateSchool(t, db, "A")
	b := testutil.CreateSchool(t, db, "B")
	svc := NewFeeService(db)
	ctx := context.Background()

	create := func(school uuid.UUID, due string, status string) uuid.UUID {
		f, err := svc.Create(ctx, helperAuth.ForSchool(school), dto.CreateFeeRequest{
			StudentID: newStudent(t, db, school), Title: "Tuition", Amount: 100, DueDate: due, Status: status,
		})
		require.NoError(t, err)
		return f.ID
	}
	lateA := create(a.ID, "2025-01-01", "")
	lateB := create(b.ID, "2025-01-05", "")
	paid := create(a.ID, "2025-01-01", model.StatusPaid)
	future := create(a.ID, "2025-03-01", "")
	undated := create(b.ID, "", "")

	today, err := helper.ParseDate("today", "2025-02-01")
	require.NoError(t, err)
	n, err := svc.MarkOverdue(ctx, *today)
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)

	status := func(id uuid.UUID) string {
		var m model.FeeModel
		require.NoError(t, db.First(&m, "id = ?", id).Error)
		return m.Status
	}
	assert.Equal(t, model.StatusOverdue, status(lateA))
	assert.Equal(t, model.StatusOverdue, status(lateB))
	assert.Equal(t, model.StatusPaid, status(paid))
	assert.Equal(t, model.StatusPending, status(future))
	assert.Equal(t, model.StatusPending, status(undated))

	n, err = svc.MarkOverdue(ctx, *today)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestListFilters(t *testing.T) {
	db := testutil.NewDB(t)
	a := testutil.CreateSchool(t, db, "A")
	svc := NewFeeService(db)
	ctx := context.Background()
	scope := helperAuth.ForSchool(a.ID)
	s1, s2 := newStudent(t, db, a.ID), newStudent(t, db, a.ID)

	for _, req := range []dto.CreateFeeRequest{
		{StudentID: s1, Title: "T1", Amount: 10},
		{StudentID: s1, Title: "T2", Amount: 10, Status: model.StatusPaid},
		{StudentID: s2, Title: "T3", Amount: 10},
	} {
		_, err := svc.Create(ctx, scope, req)
		require.NoError(t, err)
	}
	p := helper.Paging{Page: 1, PerPage: 20, Limit: 20}

	_, total, err := svc.List(ctx, scope, dto.ListFeeQuery{StudentID: &s1}, p)
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)

	rows, total, err := svc.List(ctx, scope, dto.ListFeeQuery{Status: model.StatusPaid}, p)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	assert.Equal(t, "T2", rows[0].Title)
	assert.NotNil(t, rows[0].PaymentDate)
}
