package service

import (
	"context"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"edusuite_backend/internals/features/schools/school/dto"
	helper "edusuite_backend/internals/helpers"
	helperAuth "edusuite_backend/internals/helpers/auth"
	"edusuite_backend/internals/testutil"
)

func TestSchoolScopeIsItsOwnID(t *testing.T) {
	db := testutil.NewDB(t)
	svc := NewSchoolService(db)
	ctx := context.Background()

	a, err := svc.Create(ctx, nil, dto.CreateSchoolRequest{Name: "Greenfield Academy", Metadata: map[string]any{"motto": "Excel"}})
	require.NoError(t, err)
	b, err := svc.Create(ctx, nil, dto.CreateSchoolRequest{Name: "Bright Stars"})
	require.NoError(t, err)

	got, err := svc.Get(ctx, helperAuth.ForSchool(a.ID), a.ID)
	require.NoError(t, err)
	assert.Equal(t, "Greenfield Academy", got.Name)
	assert.JSONEq(t, `{"motto":"Excel"}`, string(got.Metadata))

	_, err = svc.Get(ctx, helperAuth.ForSchool(a.ID), b.ID)
	var fe *fiber.Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, fiber.StatusNotFound, fe.Code)

	rows, total, err := svc.List(ctx, helperAuth.Global(), helper.Paging{})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	assert.Equal(t, "Bright Stars", rows[0].Name)

	_, total, err = svc.List(ctx, helperAuth.ForSchool(b.ID), helper.Paging{})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
}

func TestUpdateSchool(t *testing.T) {
	db := testutil.NewDB(t)
	svc := NewSchoolService(db)
	ctx := context.Background()

	a, err := svc.Create(ctx, nil, dto.CreateSchoolRequest{Name: "Greenfield"})
	require.NoError(t, err)
	b, err := svc.Create(ctx, nil, dto.CreateSchoolRequest{Name: "Other"})
	require.NoError(t, err)

	got, err := svc.Update(ctx, helperAuth.ForSchool(a.ID), a.ID, dto.UpdateSchoolRequest{
		Name:  testutil.Ptr("  Greenfield Academy "),
		Phone: testutil.Ptr("+234 800 000 0000"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Greenfield Academy", got.Name)
	require.NotNil(t, got.Phone)

	_, err = svc.Update(ctx, helperAuth.ForSchool(a.ID), b.ID, dto.UpdateSchoolRequest{Name: testutil.Ptr("Taken")})
	var fe *fiber.Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, fiber.StatusNotFound, fe.Code)
}
