package auth

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"edusuite_backend/internals/constants"
	helper "edusuite_backend/internals/helpers"
	helperAuth "edusuite_backend/internals/helpers/auth"
	"edusuite_backend/internals/helpers/supabase"
	"edusuite_backend/internals/testutil"
)

type scopeView struct {
	SchoolID string `json:"schoolId"`
	All      bool   `json:"all"`
	Role     string `json:"role"`
}

func newApp(db *gorm.DB, op constants.Operation) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error { return helper.FromServiceError(c, err) },
	})
	app.Get("/probe",
		AuthMiddleware(db, supabase.NewJWTVerifier(testutil.JWTSecret)),
		RequireTenant(),
		Require(op),
		func(c *fiber.Ctx) error {
			id, _ := helperAuth.GetIdentity(c)
			s, err := helperAuth.GetScope(c)
			if err != nil {
				return err
			}
			return c.JSON(scopeView{SchoolID: s.SchoolID.String(), All: s.All, Role: id.Role})
		},
	)
	return app
}

func call(t *testing.T, app *fiber.App, path, token string, headers ...string) (int, []byte) {
	t.Helper()
	req := httptest.NewRequest(fiber.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, body
}

func message(t *testing.T, body []byte) string {
	var out helper.ErrorResponse
	require.NoError(t, sonic.Unmarshal(body, &out))
	return out.Message
}

func TestAuthMiddleware_Unauthenticated(t *testing.T) {
	db := testutil.NewDB(t)
	app := newApp(db, constants.OpNoticesRead)

	code, _ := call(t, app, "/probe", "")
	assert.Equal(t, fiber.StatusUnauthorized, code)

	code, _ = call(t, app, "/probe", "garbage")
	assert.Equal(t, fiber.StatusUnauthorized, code)

	code, _ = call(t, app, "/probe", "", "Authorization", "Basic abc")
	assert.Equal(t, fiber.StatusUnauthorized, code)
}

func TestTenantGuard(t *testing.T) {
	db := testutil.NewDB(t)
	schoolA := testutil.CreateSchool(t, db, "A")
	schoolB := testutil.CreateSchool(t, db, "B")
	admin := testutil.CreateUser(t, db, constants.RoleAdmin, &schoolA.ID)
	super := testutil.CreateUser(t, db, constants.RoleSuperAdmin, nil)
	app := newApp(db, constants.OpNoticesRead)

	t.Run("own school", func(t *testing.T) {
		code, body := call(t, app, "/probe", testutil.Token(t, admin.ID, admin.Email))
		require.Equal(t, fiber.StatusOK, code, string(body))
		var v scopeView
		require.NoError(t, sonic.Unmarshal(body, &v))
		assert.Equal(t, schoolA.ID.String(), v.SchoolID)
		assert.False(t, v.All)
	})

	t.Run("explicit other school is forbidden", func(t *testing.T) {
		code, body := call(t, app, "/probe?school_id="+schoolB.ID.String(), testutil.Token(t, admin.ID, admin.Email))
		assert.Equal(t, fiber.StatusForbidden, code)
		assert.Equal(t, "Unauthorized access to another school data", message(t, body))

		code, _ = call(t, app, "/probe", testutil.Token(t, admin.ID, admin.Email), HeaderSchoolID, schoolB.ID.String())
		assert.Equal(t, fiber.StatusForbidden, code)
	})

	t.Run("explicit own school is fine", func(t *testing.T) {
		code, _ := call(t, app, "/probe?school_id="+schoolA.ID.String(), testutil.Token(t, admin.ID, admin.Email))
		assert.Equal(t, fiber.StatusOK, code)
	})

	t.Run("no school", func(t *testing.T) {
		orphan := testutil.CreateUser(t, db, constants.RoleTeacher, nil)
		code, body := call(t, app, "/probe", testutil.Token(t, orphan.ID, orphan.Email))
		assert.Equal(t, fiber.StatusForbidden, code)
		assert.Equal(t, "User does not belong to a school", message(t, body))
	})

	t.Run("no profile row", func(t *testing.T) {
		code, _ := call(t, app, "/probe", testutil.Token(t, uuid.New(), "ghost@x.test"))
		assert.Equal(t, fiber.StatusForbidden, code)
	})

	t.Run("super admin bypass", func(t *testing.T) {
		code, body := call(t, app, "/probe", testutil.Token(t, super.ID, super.Email))
		require.Equal(t, fiber.StatusOK, code)
		var v scopeView
		require.NoError(t, sonic.Unmarshal(body, &v))
		assert.True(t, v.All)

		code, body = call(t, app, "/probe?school_id="+schoolB.ID.String(), testutil.Token(t, super.ID, super.Email))
		require.Equal(t, fiber.StatusOK, code)
		require.NoError(t, sonic.Unmarshal(body, &v))
		assert.Equal(t, schoolB.ID.String(), v.SchoolID)
		assert.False(t, v.All)
	})

	t.Run("inactive account", func(t *testing.T) {
		u := testutil.CreateUser(t, db, constants.RoleAdmin, &schoolA.ID)
		require.NoError(t, db.Model(&u).Update("is_active", false).Error)
		code, _ := call(t, app, "/probe", testutil.Token(t, u.ID, u.Email))
		assert.Equal(t, fiber.StatusForbidden, code)
	})
}

func TestRoleGuard(t *testing.T) {
	db := testutil.NewDB(t)
	school := testutil.CreateSchool(t, db, "A")
	teacher := testutil.CreateUser(t, db, constants.RoleTeacher, &school.ID)
	admin := testutil.CreateUser(t, db, constants.RoleAdmin, &school.ID)

	app := newApp(db, constants.OpFeesWrite)

	code, body := call(t, app, "/probe", testutil.Token(t, teacher.ID, teacher.Email))
	assert.Equal(t, fiber.StatusForbidden, code)
	assert.Equal(t, constants.ErrInsufficientPermissions, message(t, body))

	code, _ = call(t, app, "/probe", testutil.Token(t, admin.ID, admin.Email))
	assert.Equal(t, fiber.StatusOK, code)
}
