package service

import (
	"context"
	"errors"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"edusuite_backend/internals/constants"
	"edusuite_backend/internals/features/users/user/dto"
	helper "edusuite_backend/internals/helpers"
	helperAuth "edusuite_backend/internals/helpers/auth"
	"edusuite_backend/internals/testutil"
)

func fiberErr(t *testing.T, err error) *fiber.Error {
	t.Helper()
	var fe *fiber.Error
	require.ErrorAs(t, err, &fe)
	return fe
}

func TestCreateUser(t *testing.T) {
	db := testutil.NewDB(t)
	school := testutil.CreateSchool(t, db, "A")
	provider := testutil.NewFakeProvider()
	svc := NewUserService(db, provider, "http://localhost:5173")
	ctx := context.Background()
	scope := helperAuth.ForSchool(school.ID)

	u, err := svc.Create(ctx, scope, dto.CreateUserRequest{Email: "T.Okoro@school.test", Password: "12345678", FullName: "Tunde Okoro", Role: "teacher"})
	require.NoError(t, err)
	assert.Equal(t, constants.RoleTeacher, u.Role)
	require.NotNil(t, u.SchoolID)
	assert.Equal(t, school.ID, *u.SchoolID)

	_, err = svc.Create(ctx, scope, dto.CreateUserRequest{Email: "x@school.test", Password: "12345678", FullName: "X", Role: constants.RoleSuperAdmin})
	fe := fiberErr(t, err)
	assert.Equal(t, fiber.StatusBadRequest, fe.Code)
	assert.Equal(t, "Invalid role", fe.Message)

	_, err = svc.Create(ctx, scope, dto.CreateUserRequest{Email: "t.okoro@school.test", Password: "12345678", FullName: "Again", Role: constants.RoleTeacher})
	assert.Equal(t, fiber.StatusConflict, fiberErr(t, err).Code)

	rows, total, err := svc.List(ctx, scope, "Teacher", helper.Paging{Page: 1, PerPage: 20, Limit: 20})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	assert.Equal(t, u.ID, rows[0].ID)
}

func TestInviteUser(t *testing.T) {
	db := testutil.NewDB(t)
	school := testutil.CreateSchool(t, db, "A")
	provider := testutil.NewFakeProvider()
	svc := NewUserService(db, provider, "http://localhost:5173")
	scope := helperAuth.ForSchool(school.ID)

	u, err := svc.Invite(context.Background(), scope, dto.InviteUserRequest{Email: "Parent@Home.test", Role: constants.RoleParent})
	require.NoError(t, err)
	assert.Equal(t, []string{"parent@home.test"}, provider.Invites)
	assert.Equal(t, constants.RoleParent, u.Role)

	got, err := svc.Get(context.Background(), scope, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "parent@home.test", got.Email)

	provider.FailInvite = errors.New("smtp down")
	_, err = svc.Invite(context.Background(), scope, dto.InviteUserRequest{Email: "b@home.test", Role: constants.RoleParent})
	assert.Equal(t, fiber.StatusInternalServerError, fiberErr(t, err).Code)
}

func TestInviteUser_SameSchoolRefreshesProfile(t *testing.T) {
	db := testutil.NewDB(t)
	school := testutil.CreateSchool(t, db, "A")
	provider := testutil.NewFakeProvider()
	svc := NewUserService(db, provider, "")
	ctx := context.Background()
	scope := helperAuth.ForSchool(school.ID)

	first, err := svc.Invite(ctx, scope, dto.InviteUserRequest{Email: "t@a.test", FullName: "Tia", Role: constants.RoleTeacher})
	require.NoError(t, err)

	again, err := svc.Invite(ctx, scope, dto.InviteUserRequest{Email: "T@a.test", Role: constants.RoleExamOfficer})
	require.NoError(t, err)
	assert.Equal(t, first.ID, again.ID)
	assert.Equal(t, constants.RoleExamOfficer, again.Role)
	assert.Equal(t, "Tia", again.FullName)
	assert.Len(t, provider.Invites, 2)
	assert.Empty(t, provider.Deleted)
}

func TestInviteUser_OtherSchoolIsRejected(t *testing.T) {
	db := testutil.NewDB(t)
	a := testutil.CreateSchool(t, db, "A")
	b := testutil.CreateSchool(t, db, "B")
	provider := testutil.NewFakeProvider()
	svc := NewUserService(db, provider, "")
	ctx := context.Background()
	scopeA := helperAuth.ForSchool(a.ID)

	t.Run("known email is refused before the provider is called", func(t *testing.T) {
		other := testutil.CreateUser(t, db, constants.RoleTeacher, &b.ID)
		provider.Seed(other.ID, other.Email)

		_, err := svc.Invite(ctx, scopeA, dto.InviteUserRequest{Email: other.Email, Role: constants.RoleParent})
		fe := fiberErr(t, err)
		assert.Equal(t, fiber.StatusConflict, fe.Code)
		assert.Equal(t, MsgOtherSchool, fe.Message)
		assert.Empty(t, provider.Invites)
	})

	t.Run("credential owned by another school is neither moved nor deleted", func(t *testing.T) {
		other := testutil.CreateUser(t, db, constants.RoleTeacher, &b.ID)
		// provider email drifted from the profile's
		provider.Seed(other.ID, "renamed@b.test")

		_, err := svc.Invite(ctx, scopeA, dto.InviteUserRequest{Email: "renamed@b.test", Role: constants.RoleParent})
		assert.Equal(t, fiber.StatusConflict, fiberErr(t, err).Code)
		assert.Empty(t, provider.Deleted)

		got, err := svc.Get(ctx, helperAuth.ForSchool(b.ID), other.ID)
		require.NoError(t, err)
		assert.Equal(t, b.ID, *got.SchoolID)
		assert.Equal(t, constants.RoleTeacher, got.Role)
	})

	t.Run("platform admin cannot be invited into a school", func(t *testing.T) {
		root := testutil.CreateUser(t, db, constants.RoleSuperAdmin, nil)
		_, err := svc.Invite(ctx, scopeA, dto.InviteUserRequest{Email: root.Email, Role: constants.RoleAdmin})
		assert.Equal(t, fiber.StatusConflict, fiberErr(t, err).Code)
	})
}

func TestUpdateUser(t *testing.T) {
	db := testutil.NewDB(t)
	a := testutil.CreateSchool(t, db, "A")
	b := testutil.CreateSchool(t, db, "B")
	admin := testutil.CreateUser(t, db, constants.RoleAdmin, &a.ID)
	teacher := testutil.CreateUser(t, db, constants.RoleTeacher, &a.ID)
	svc := NewUserService(db, testutil.NewFakeProvider(), "")
	ctx := context.Background()
	scope := helperAuth.ForSchool(a.ID)
	actor := &helperAuth.Identity{ID: admin.ID, Role: admin.Role, SchoolID: &a.ID}

	_, err := svc.Update(ctx, scope, actor, admin.ID, dto.UpdateUserRequest{Role: testutil.Ptr(constants.RoleTeacher)})
	fe := fiberErr(t, err)
	assert.Equal(t, fiber.StatusForbidden, fe.Code)
	assert.Equal(t, "You cannot change your own role", fe.Message)

	got, err := svc.Update(ctx, scope, actor, teacher.ID, dto.UpdateUserRequest{Role: testutil.Ptr("examofficer"), IsActive: testutil.Ptr(false)})
	require.NoError(t, err)
	assert.Equal(t, constants.RoleExamOfficer, got.Role)
	assert.False(t, got.IsActive)

	_, err = svc.Update(ctx, helperAuth.ForSchool(b.ID), actor, teacher.ID, dto.UpdateUserRequest{FullName: testutil.Ptr("X")})
	assert.Equal(t, fiber.StatusNotFound, fiberErr(t, err).Code)
}
