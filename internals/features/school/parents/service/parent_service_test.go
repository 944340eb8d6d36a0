package service

import (
	"context"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"edusuite_backend/internals/features/school/parents/dto"
	"edusuite_backend/internals/features/school/parents/model"
	studentModel "edusuite_backend/internals/features/school/students/model"
	helperAuth "edusuite_backend/internals/helpers/auth"
	"edusuite_backend/internals/testutil"
)

func newStudent(t *testing.T, db *gorm.DB, schoolID uuid.UUID, name string) uuid.UUID {
	t.Helper()
	st := studentModel.StudentModel{SchoolID: schoolID, Name: name}
	require.NoError(t, db.Create(&st).Error)
	return st.ID
}

func statusOf(t *testing.T, err error) int {
	t.Helper()
	var fe *fiber.Error
	require.ErrorAs(t, err, &fe)
	return fe.Code
}

func TestParentChildren(t *testing.T) {
	db := testutil.NewDB(t)
	a := testutil.CreateSchool(t, db, "A")
	b := testutil.CreateSchool(t, db, "B")
	svc := NewParentService(db)
	ctx := context.Background()
	scope := helperAuth.ForSchool(a.ID)

	kid1 := newStudent(t, db, a.ID, "Femi")
	kid2 := newStudent(t, db, a.ID, "Bisi")
	foreign := newStudent(t, db, b.ID, "Other")

	_, _, err := svc.Create(ctx, scope, dto.CreateParentRequest{Name: "Mrs Ojo", ChildIDs: []uuid.UUID{kid1, foreign}})
	assert.Equal(t, fiber.StatusNotFound, statusOf(t, err))
	var n int64
	require.NoError(t, db.Model(&model.ParentModel{}).Count(&n).Error)
	assert.Zero(t, n)

	p, kids, err := svc.Create(ctx, scope, dto.CreateParentRequest{Name: "Mrs Ojo", ChildIDs: []uuid.UUID{kid1}})
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{kid1}, kids)

	_, kids, err = svc.LinkChild(ctx, scope, p.ID, kid2)
	require.NoError(t, err)
	assert.ElementsMatch(t, []uuid.UUID{kid1, kid2}, kids)

	// linking twice is a no-op
	_, kids, err = svc.LinkChild(ctx, scope, p.ID, kid2)
	require.NoError(t, err)
	assert.Len(t, kids, 2)

	_, _, err = svc.LinkChild(ctx, scope, p.ID, foreign)
	assert.Equal(t, fiber.StatusNotFound, statusOf(t, err))

	require.NoError(t, svc.UnlinkChild(ctx, scope, p.ID, kid1))
	err = svc.UnlinkChild(ctx, scope, p.ID, kid1)
	assert.Equal(t, fiber.StatusNotFound, statusOf(t, err))

	_, _, err = svc.Get(ctx, helperAuth.ForSchool(b.ID), p.ID)
	assert.Equal(t, fiber.StatusNotFound, statusOf(t, err))

	require.NoError(t, svc.Delete(ctx, scope, p.ID))
	require.NoError(t, db.Model(&model.ParentChildModel{}).Count(&n).Error)
	assert.Zero(t, n)
}
