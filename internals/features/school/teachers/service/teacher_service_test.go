package service

import (
	"context"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"edusuite_backend/internals/features/school/teachers/dto"
	"edusuite_backend/internals/features/school/teachers/model"
	helper "edusuite_backend/internals/helpers"
	helperAuth "edusuite_backend/internals/helpers/auth"
	"edusuite_backend/internals/testutil"
)

func TestTeacherAssignments(t *testing.T) {
	db := testutil.NewDB(t)
	school := testutil.CreateSchool(t, db, "A")
	svc := NewTeacherService(db)
	ctx := context.Background()
	scope := helperAuth.ForSchool(school.ID)

	m, a, err := svc.Create(ctx, scope, dto.CreateTeacherRequest{
		Name:     "Mr Adeyemi",
		Subjects: []string{"Physics", " Mathematics ", "Physics", ""},
		Classes:  []string{"SS2A"},
	})
	require.NoError(t, err)
	assert.Equal(t, school.ID, m.SchoolID)
	assert.Equal(t, []string{"Mathematics", "Physics"}, a.Subjects)
	assert.Equal(t, []string{"SS2A"}, a.Classes)

	t.Run("omitted lists are left alone", func(t *testing.T) {
		_, a, err := svc.Update(ctx, scope, m.ID, dto.UpdateTeacherRequest{Name: testutil.Ptr("Dr Adeyemi")})
		require.NoError(t, err)
		assert.Equal(t, []string{"Mathematics", "Physics"}, a.Subjects)
	})

	t.Run("sent lists replace", func(t *testing.T) {
		got, a, err := svc.Update(ctx, scope, m.ID, dto.UpdateTeacherRequest{
			Subjects: &[]string{"Chemistry"},
			Classes:  &[]string{},
		})
		require.NoError(t, err)
		assert.Equal(t, "Dr Adeyemi", got.Name)
		assert.Equal(t, []string{"Chemistry"}, a.Subjects)
		assert.Empty(t, a.Classes)
	})

	t.Run("list carries assignments", func(t *testing.T) {
		rows, byTeacher, total, err := svc.List(ctx, scope, helper.Paging{Page: 1, PerPage: 20, Limit: 20})
		require.NoError(t, err)
		assert.EqualValues(t, 1, total)
		assert.Equal(t, []string{"Chemistry"}, byTeacher[rows[0].ID].Subjects)

		resp := dto.FromModel(&rows[0], byTeacher[rows[0].ID])
		assert.NotNil(t, resp.Classes)
	})

	t.Run("other school", func(t *testing.T) {
		other := testutil.CreateSchool(t, db, "B")
		_, _, err := svc.Get(ctx, helperAuth.ForSchool(other.ID), m.ID)
		var fe *fiber.Error
		require.ErrorAs(t, err, &fe)
		assert.Equal(t, fiber.StatusNotFound, fe.Code)
	})

	t.Run("delete removes assignments", func(t *testing.T) {
		require.NoError(t, svc.Delete(ctx, scope, m.ID))
		var n int64
		require.NoError(t, db.Model(&model.TeacherSubjectModel{}).Count(&n).Error)
		assert.Zero(t, n)
	})
}
