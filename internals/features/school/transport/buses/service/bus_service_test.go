package service

import (
	"context"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"edusuite_backend/internals/features/school/transport/buses/dto"
	helper "edusuite_backend/internals/helpers"
	helperAuth "edusuite_backend/internals/helpers/auth"
	"edusuite_backend/internals/testutil"
)

func TestBusLifecycle(t *testing.T) {
	db := testutil.NewDB(t)
	a := testutil.CreateSchool(t, db, "A")
	b := testutil.CreateSchool(t, db, "B")
	svc := NewBusService(db)
	ctx := context.Background()
	scope := helperAuth.ForSchool(a.ID)

	bus, err := svc.Create(ctx, scope, dto.CreateBusRequest{
		Name:        "Lekki Route",
		PlateNumber: testutil.Ptr("LAG-123-AB"),
		Capacity:    testutil.Ptr(32),
	})
	require.NoError(t, err)
	assert.Equal(t, a.ID, bus.SchoolID)

	updated, err := svc.Update(ctx, scope, bus.ID, dto.UpdateBusRequest{DriverName: testutil.Ptr("Mr. Ojo")})
	require.NoError(t, err)
	require.NotNil(t, updated.DriverName)
	assert.Equal(t, "Mr. Ojo", *updated.DriverName)
	assert.Equal(t, "Lekki Route", updated.Name)

	rows, total, err := svc.List(ctx, helperAuth.ForSchool(b.ID), helper.Paging{})
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, rows)

	_, err = svc.Get(ctx, helperAuth.ForSchool(b.ID), bus.ID)
	var fe *fiber.Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, fiber.StatusNotFound, fe.Code)
	assert.Equal(t, "Bus not found", fe.Message)

	require.NoError(t, svc.Delete(ctx, scope, bus.ID))
	_, total, err = svc.List(ctx, scope, helper.Paging{})
	require.NoError(t, err)
	assert.Zero(t, total)
}
