package supabase

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "super-secret-jwt-token-for-tests-only"

func TestJWTVerifier(t *testing.T) {
	v := NewJWTVerifier(testSecret)
	uid := uuid.New()

	valid, err := SignAccessToken(testSecret, AccessClaims{
		Email: "a@school.test",
		Role:  "authenticated",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   uid.String(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	require.NoError(t, err)

	u, err := v.Verify(context.Background(), valid)
	require.NoError(t, err)
	assert.Equal(t, uid, u.ID)
	assert.Equal(t, "a@school.test", u.Email)

	t.Run("expired", func(t *testing.T) {
		tok, _ := SignAccessToken(testSecret, AccessClaims{RegisteredClaims: jwt.RegisteredClaims{
			Subject:   uid.String(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		}})
		_, err := v.Verify(context.Background(), tok)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("wrong secret", func(t *testing.T) {
		tok, _ := SignAccessToken("another-secret", AccessClaims{RegisteredClaims: jwt.RegisteredClaims{
			Subject:   uid.String(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		}})
		_, err := v.Verify(context.Background(), tok)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("missing exp", func(t *testing.T) {
		tok, _ := SignAccessToken(testSecret, AccessClaims{RegisteredClaims: jwt.RegisteredClaims{Subject: uid.String()}})
		_, err := v.Verify(context.Background(), tok)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := v.Verify(context.Background(), "not-a-jwt")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestAuthClient_CreateAndDeleteUser(t *testing.T) {
	uid := uuid.New()
	var gotBody map[string]any
	var deleted string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "service-key", r.Header.Get("apikey"))
		assert.Equal(t, "Bearer service-key", r.Header.Get("Authorization"))
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/auth/v1/admin/users":
			b, _ := io.ReadAll(r.Body)
			_ = json.Unmarshal(b, &gotBody)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"id":"` + uid.String() + `","email":"kid@student.school.com"}`))
		case r.Method == http.MethodDelete:
			deleted = r.URL.Path
			w.WriteHeader(http.StatusOK)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	c := NewAuthClient(srv.URL, "service-key")
	u, err := c.CreateUser(context.Background(), CreateUserParams{
		Email:        "kid@student.school.com",
		Password:     "pw",
		EmailConfirm: true,
		UserMetadata: map[string]any{"role": "student"},
	})
	require.NoError(t, err)
	assert.Equal(t, uid, u.ID)
	assert.Equal(t, "kid@student.school.com", gotBody["email"])
	assert.Equal(t, true, gotBody["email_confirm"])

	require.NoError(t, c.DeleteUser(context.Background(), uid))
	assert.Equal(t, "/auth/v1/admin/users/"+uid.String(), deleted)
}

func TestAuthClient_ErrorsAndInvite(t *testing.T) {
	var redirect string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/v1/invite":
			redirect = r.URL.Query().Get("redirect_to")
			w.WriteHeader(http.StatusUnprocessableEntity)
			_, _ = w.Write([]byte(`{"code":422,"error_code":"email_exists","msg":"A user with this email address has already been registered"}`))
		case "/auth/v1/user":
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"msg":"invalid JWT"}`))
		}
	}))
	defer srv.Close()

	c := NewAuthClient(srv.URL, "service-key")
	_, err := c.InviteUserByEmail(context.Background(), "t@school.test", map[string]any{"role": "teacher"}, "https://app.test/welcome")
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusUnprocessableEntity, apiErr.Status)
	assert.Equal(t, "email_exists", apiErr.Code)
	assert.Contains(t, apiErr.Error(), "already been registered")
	assert.Equal(t, "https://app.test/welcome", redirect)

	_, err = RemoteVerifier{Client: c}.Verify(context.Background(), "bad")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
