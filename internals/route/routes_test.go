package routes

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"edusuite_backend/internals/configs"
	"edusuite_backend/internals/constants"
	attendanceModel "edusuite_backend/internals/features/school/attendance/model"
	"edusuite_backend/internals/helpers/supabase"
	"edusuite_backend/internals/testutil"
)

type stubGenerator struct{ calls int }

func (g *stubGenerator) Generate(context.Context, string, string) (string, error) {
	g.calls++
	return `{"answer":"Fees are due on the 31st.","summary":"","sources":[],"tokens_estimate":9,"cached":false,"image_needed":false,"image_instructions":""}`, nil
}

type harness struct {
	t        *testing.T
	app      *fiber.App
	db       *gorm.DB
	svcs     *Services
	provider *testutil.FakeProvider
	gen      *stubGenerator
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	db := testutil.NewDB(t)
	cfg := &configs.Config{
		Env:             "test",
		CorsOrigins:     []string{"http://localhost:5173"},
		RateLimitMax:    1000,
		RateLimitWindow: time.Minute,
		AppURL:          "http://localhost:5173",
	}
	provider := testutil.NewFakeProvider()
	gen := &stubGenerator{}
	app := NewApp(cfg)
	svcs := SetupRoutes(app, Deps{
		DB:        db,
		Config:    cfg,
		Provider:  provider,
		Verifier:  supabase.NewJWTVerifier(testutil.JWTSecret),
		Generator: gen,
	})
	return &harness{t: t, app: app, db: db, svcs: svcs, provider: provider, gen: gen}
}

// do sends body as JSON and decodes the response into a generic map.
func (h *harness) do(method, path, token string, body any) (int, map[string]any) {
	h.t.Helper()
	var rd io.Reader
	if body != nil {
		b, err := sonic.Marshal(body)
		require.NoError(h.t, err)
		rd = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, rd)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := h.app.Test(req, -1)
	require.NoError(h.t, err)
	raw, _ := io.ReadAll(resp.Body)
	out := map[string]any{}
	if len(raw) > 0 {
		require.NoError(h.t, sonic.Unmarshal(raw, &out), string(raw))
	}
	return resp.StatusCode, out
}

func data(t *testing.T, body map[string]any) map[string]any {
	t.Helper()
	d, ok := body["data"].(map[string]any)
	require.True(t, ok, "no data object in %v", body)
	return d
}

// signup registers a school and returns its id plus an admin token.
func (h *harness) signup(email string) (string, string) {
	h.t.Helper()
	code, body := h.do(fiber.MethodPost, "/api/auth/signup", "", map[string]any{
		"schoolName": "School of " + email,
		"fullName":   "Admin " + email,
		"email":      email,
		"password":   "correct-horse",
	})
	require.Equal(h.t, fiber.StatusCreated, code, body)
	d := data(h.t, body)
	school := d["school"].(map[string]any)["id"].(string)
	user := d["user"].(map[string]any)["id"].(string)
	return school, testutil.Token(h.t, uuid.MustParse(user), email)
}

func TestHealth(t *testing.T) {
	h := newHarness(t)
	code, body := h.do(fiber.MethodGet, "/health", "", nil)
	assert.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, "Connected", body["database"])
	assert.Equal(t, "test", body["environment"])
}

func TestAuthFlow(t *testing.T) {
	h := newHarness(t)

	code, _ := h.do(fiber.MethodGet, "/api/students", "", nil)
	assert.Equal(t, fiber.StatusUnauthorized, code)

	// public routes are not behind the guards
	code, body := h.do(fiber.MethodPost, "/api/auth/login", "", map[string]any{})
	assert.Equal(t, fiber.StatusBadRequest, code)
	assert.Equal(t, "VALIDATION_ERROR", body["error_code"])

	schoolID, token := h.signup("head@greenfield.test")

	code, body = h.do(fiber.MethodPost, "/api/auth/login", "", map[string]any{"email": "head@greenfield.test", "password": "correct-horse"})
	require.Equal(t, fiber.StatusOK, code, body)
	assert.NotEmpty(t, data(t, body)["accessToken"])

	code, body = h.do(fiber.MethodPost, "/api/auth/login", "", map[string]any{"email": "head@greenfield.test", "password": "nope"})
	assert.Equal(t, fiber.StatusUnauthorized, code)
	assert.Equal(t, "Invalid email or password", body["message"])

	code, body = h.do(fiber.MethodGet, "/api/auth/verify", token, nil)
	require.Equal(t, fiber.StatusOK, code, body)
	assert.Equal(t, constants.RoleAdmin, data(t, body)["role"])
	assert.Equal(t, schoolID, data(t, body)["schoolId"])
}

func TestEnrollAndTenantIsolation(t *testing.T) {
	h := newHarness(t)
	_, tokenA := h.signup("a@school.test")
	_, tokenB := h.signup("b@school.test")

	code, body := h.do(fiber.MethodPost, "/api/students/enroll", tokenA, map[string]any{
		"firstName":      "David",
		"lastName":       "Okonkwo",
		"curriculumType": "Both",
		"parentEmail":    "ada@home.test",
	})
	require.Equal(t, fiber.StatusCreated, code, body)
	assert.Equal(t, "Student enrolled successfully", body["message"])
	studentID := data(t, body)["studentId"].(string)
	require.NotEmpty(t, studentID)

	code, body = h.do(fiber.MethodPost, "/api/students/enroll", tokenA, map[string]any{"lastName": "Okonkwo"})
	assert.Equal(t, fiber.StatusBadRequest, code)
	assert.Contains(t, body["message"], "required for enrollment")

	code, body = h.do(fiber.MethodGet, "/api/students/"+studentID, tokenA, nil)
	require.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, "David Okonkwo", data(t, body)["name"])

	code, _ = h.do(fiber.MethodGet, "/api/students/"+studentID, tokenB, nil)
	assert.Equal(t, fiber.StatusNotFound, code)

	code, body = h.do(fiber.MethodGet, "/api/students", tokenB, nil)
	require.Equal(t, fiber.StatusOK, code)
	assert.Empty(t, body["data"])

	code, _ = h.do(fiber.MethodDelete, "/api/students/"+studentID, tokenB, nil)
	assert.Equal(t, fiber.StatusNotFound, code)

	code, body = h.do(fiber.MethodGet, "/api/dashboard/stats", tokenA, nil)
	require.Equal(t, fiber.StatusOK, code)
	assert.EqualValues(t, 1, data(t, body)["totalStudents"])
	assert.EqualValues(t, 1, data(t, body)["totalParents"])

	code, body = h.do(fiber.MethodGet, "/api/dashboard/stats", tokenB, nil)
	require.Equal(t, fiber.StatusOK, code)
	assert.EqualValues(t, 0, data(t, body)["totalStudents"])
}

func TestForcedSchoolOnCreate(t *testing.T) {
	h := newHarness(t)
	schoolA, tokenA := h.signup("a@school.test")
	schoolB, _ := h.signup("b@school.test")

	code, body := h.do(fiber.MethodPost, "/api/classes", tokenA, map[string]any{
		"name": "Primary 1", "grade": 1, "schoolId": schoolB,
	})
	require.Equal(t, fiber.StatusCreated, code, body)
	assert.Equal(t, schoolA, data(t, body)["schoolId"])

	code, _ = h.do(fiber.MethodGet, "/api/classes?school_id="+schoolB, tokenA, nil)
	assert.Equal(t, fiber.StatusForbidden, code)
}

func TestAttendanceAndFees(t *testing.T) {
	h := newHarness(t)
	_, token := h.signup("a@school.test")

	code, body := h.do(fiber.MethodPost, "/api/students", token, map[string]any{"firstName": "Ife", "lastName": "Bello"})
	require.Equal(t, fiber.StatusCreated, code, body)
	studentID := data(t, body)["id"].(string)

	mark := func(status string) {
		code, body := h.do(fiber.MethodPost, "/api/attendance", token, map[string]any{
			"records": []map[string]any{{"studentId": studentID, "date": "2025-01-13", "status": status}},
		})
		require.Equal(t, fiber.StatusOK, code, body)
	}
	mark("Present")
	mark("Absent")
	var n int64
	require.NoError(t, h.db.Model(&attendanceModel.AttendanceModel{}).Count(&n).Error)
	assert.EqualValues(t, 1, n)

	code, body = h.do(fiber.MethodPost, "/api/attendance", token, map[string]any{})
	assert.Equal(t, fiber.StatusBadRequest, code)
	assert.Equal(t, "records array is required", body["message"])

	code, body = h.do(fiber.MethodGet, "/api/students/"+studentID+"/attendance", token, nil)
	require.Equal(t, fiber.StatusOK, code, body)
	hist := body["data"].([]any)
	require.Len(t, hist, 1)
	assert.Equal(t, "Absent", hist[0].(map[string]any)["status"])

	code, body = h.do(fiber.MethodPost, "/api/fees", token, map[string]any{
		"studentId": studentID, "title": "Tuition", "amount": 45000, "dueDate": "2025-01-31",
	})
	require.Equal(t, fiber.StatusCreated, code, body)
	feeID := data(t, body)["id"].(string)
	assert.Equal(t, "Pending", data(t, body)["status"])

	code, body = h.do(fiber.MethodPut, "/api/fees/"+feeID+"/status", token, map[string]any{"status": "Paid"})
	require.Equal(t, fiber.StatusOK, code, body)
	assert.Equal(t, "Paid", data(t, body)["status"])
	assert.NotNil(t, data(t, body)["paymentDate"])
	assert.EqualValues(t, 0, data(t, body)["paidAmount"])

	code, body = h.do(fiber.MethodPut, "/api/fees/"+feeID+"/status", token, map[string]any{"status": "Refunded"})
	assert.Equal(t, fiber.StatusBadRequest, code)
	assert.Contains(t, body["message"], "Invalid status")

	code, _ = h.do(fiber.MethodDelete, "/api/fees/"+feeID, token, nil)
	assert.Equal(t, fiber.StatusNoContent, code)
}

func TestAssistantCache(t *testing.T) {
	h := newHarness(t)
	_, token := h.signup("a@school.test")
	ask := map[string]any{"question": "When are fees due?", "options": map[string]any{"grade": 2}}

	code, body := h.do(fiber.MethodPost, "/api/ai/assistant", token, ask)
	require.Equal(t, fiber.StatusOK, code, body)
	assert.Equal(t, "Fees are due on the 31st.", body["answer"])
	assert.Equal(t, false, body["cached"])
	h.svcs.Assistant.Flush()

	code, body = h.do(fiber.MethodPost, "/api/ai/assistant", token, ask)
	require.Equal(t, fiber.StatusOK, code, body)
	assert.Equal(t, true, body["cached"])
	assert.Equal(t, 1, h.gen.calls)

	code, _ = h.do(fiber.MethodPost, "/api/ai/assistant", token, map[string]any{"question": " "})
	assert.Equal(t, fiber.StatusBadRequest, code)
}

func TestRoleGuards(t *testing.T) {
	h := newHarness(t)
	schoolID, _ := h.signup("a@school.test")
	sid := uuid.MustParse(schoolID)
	parent := testutil.CreateUser(t, h.db, constants.RoleParent, &sid)
	token := testutil.Token(t, parent.ID, parent.Email)

	code, _ := h.do(fiber.MethodPost, "/api/fees", token, map[string]any{"studentId": uuid.NewString(), "title": "x", "amount": 1})
	assert.Equal(t, fiber.StatusForbidden, code)

	code, _ = h.do(fiber.MethodGet, "/api/schools", token, nil)
	assert.Equal(t, fiber.StatusForbidden, code)
}

func TestUserInvite(t *testing.T) {
	h := newHarness(t)
	_, token := h.signup("a@school.test")

	code, body := h.do(fiber.MethodPost, "/api/users/invite", token, map[string]any{"email": "new.teacher@school.test", "role": "Teacher"})
	require.Equal(t, fiber.StatusCreated, code, body)
	assert.Equal(t, "Teacher", data(t, body)["role"])
	assert.Equal(t, []string{"new.teacher@school.test"}, h.provider.Invites)

	code, _ = h.do(fiber.MethodPost, "/api/users/invite", token, map[string]any{"email": "boss@school.test", "role": "SuperAdmin"})
	assert.Equal(t, fiber.StatusBadRequest, code)
}

func TestRateLimitIgnoresForwardedForWithoutTrustedProxy(t *testing.T) {
	app := NewApp(&configs.Config{Env: "test", RateLimitMax: 2, RateLimitWindow: time.Minute})

	codes := make([]int, 0, 4)
	for i := 0; i < 4; i++ {
		req := httptest.NewRequest(fiber.MethodGet, "/api/nowhere", nil)
		req.Header.Set(fiber.HeaderXForwardedFor, fmt.Sprintf("203.0.113.%d", i+1))
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		codes = append(codes, resp.StatusCode)
	}
	assert.Equal(t, []int{fiber.StatusNotFound, fiber.StatusNotFound, fiber.StatusTooManyRequests, fiber.StatusTooManyRequests}, codes)
}
