package service

import (
	"context"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"edusuite_backend/internals/features/school/attendance/dto"
	"edusuite_backend/internals/features/school/attendance/model"
	classModel "edusuite_backend/internals/features/school/classes/model"
	studentModel "edusuite_backend/internals/features/school/students/model"
	helper "edusuite_backend/internals/helpers"
	helperAuth "edusuite_backend/internals/helpers/auth"
	"edusuite_backend/internals/testutil"
)

type fixture struct {
	db      *gorm.DB
	school  uuid.UUID
	class   uuid.UUID
	student uuid.UUID
}

func setup(t *testing.T) fixture {
	t.Helper()
	db := testutil.NewDB(t)
	s := testutil.CreateSchool(t, db, "A")
	c := classModel.ClassModel{SchoolID: s.ID, Name: "JSS1", Grade: 7}
	require.NoError(t, db.Create(&c).Error)
	st := studentModel.StudentModel{SchoolID: s.ID, ClassID: &c.ID, Name: "Ife Bello", FirstName: "Ife", LastName: "Bello"}
	require.NoError(t, db.Create(&st).Error)
	return fixture{db: db, school: s.ID, class: c.ID, student: st.ID}
}

func mark(f fixture, date, status string) dto.MarkRecord {
	return dto.MarkRecord{StudentID: f.student, ClassID: &f.class, Date: date, Status: status}
}

func TestSave_IsIdempotentPerStudentAndDay(t *testing.T) {
	f := setup(t)
	svc := NewAttendanceService(f.db)
	ctx := context.Background()
	scope := helperAuth.ForSchool(f.school)

	first, err := svc.Save(ctx, scope, []dto.MarkRecord{mark(f, "2025-01-13", "Present")})
	require.NoError(t, err)
	require.Len(t, first, 1)

	again, err := svc.Save(ctx, scope, []dto.MarkRecord{mark(f, "2025-01-13", "Late")})
	require.NoError(t, err)
	require.Len(t, again, 1)
	assert.Equal(t, first[0].ID, again[0].ID)
	assert.Equal(t, "Late", again[0].Status)

	var n int64
	require.NoError(t, f.db.Model(&model.AttendanceModel{}).Count(&n).Error)
	assert.EqualValues(t, 1, n)
}

func TestSave_LastRecordWinsWithinBatch(t *testing.T) {
	f := setup(t)
	svc := NewAttendanceService(f.db)

	out, err := svc.Save(context.Background(), helperAuth.ForSchool(f.school), []dto.MarkRecord{
		mark(f, "2025-01-13", "Present"),
		mark(f, "2025-01-14", "Absent"),
		mark(f, "2025-01-13", "Excused"),
	})
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "Excused", out[0].Status)
	assert.Equal(t, "Absent", out[1].Status)
}

func TestSave_RejectsForeignStudent(t *testing.T) {
	f := setup(t)
	other := testutil.CreateSchool(t, f.db, "B")
	svc := NewAttendanceService(f.db)

	_, err := svc.Save(context.Background(), helperAuth.ForSchool(other.ID), []dto.MarkRecord{
		{StudentID: f.student, Date: "2025-01-13", Status: "Present"},
	})
	var fe *fiber.Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, fiber.StatusNotFound, fe.Code)

	_, err = svc.Save(context.Background(), helperAuth.ForSchool(f.school), []dto.MarkRecord{
		{StudentID: f.student, Date: "13/01/2025", Status: "Present"},
	})
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, fiber.StatusBadRequest, fe.Code)

	var n int64
	require.NoError(t, f.db.Model(&model.AttendanceModel{}).Count(&n).Error)
	assert.Zero(t, n)
}

func TestListByClassDateAndStudent(t *testing.T) {
	f := setup(t)
	svc := NewAttendanceService(f.db)
	ctx := context.Background()
	scope := helperAuth.ForSchool(f.school)

	_, err := svc.Save(ctx, scope, []dto.MarkRecord{
		mark(f, "2025-01-13", "Present"),
		mark(f, "2025-01-14", "Absent"),
	})
	require.NoError(t, err)

	day, err := helper.ParseDate("date", "2025-01-14")
	require.NoError(t, err)
	rows, names, err := svc.ListByClassDate(ctx, scope, f.class, *day)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Absent", rows[0].Status)
	assert.Equal(t, "Ife Bello", names[f.student])

	hist, total, err := svc.ListByStudent(ctx, scope, f.student, helper.Paging{Page: 1, PerPage: 20, Limit: 20})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	assert.Equal(t, "2025-01-14", *helper.FormatDate(&hist[0].Date))

	other := testutil.CreateSchool(t, f.db, "B")
	_, _, err = svc.ListByStudent(ctx, helperAuth.ForSchool(other.ID), f.student, helper.Paging{Limit: 20})
	require.Error(t, err)

	require.NoError(t, svc.Delete(ctx, scope, rows[0].ID))
	assert.Error(t, svc.Delete(ctx, scope, rows[0].ID))
}
