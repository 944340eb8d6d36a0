package testutil

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"edusuite_backend/internals/helpers/supabase"
)

const JWTSecret = "test-jwt-secret-with-enough-length"

// Token mints a Supabase-shaped access token for userID.
func Token(t *testing.T, userID uuid.UUID, email string) string {
	t.Helper()
	tok, err := supabase.SignAccessToken(JWTSecret, supabase.AccessClaims{
		Email: email,
		Role:  "authenticated",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	require.NoError(t, err)
	return tok
}

// FakeProvider is an in-memory identity provider.
type FakeProvider struct {
	mu sync.Mutex

	Users   map[uuid.UUID]supabase.User
	Invites []string
	Deleted []uuid.UUID
	// Passwords keyed by email, for SignInWithPassword.
	Passwords map[string]string

	// FailCreateFor makes CreateUser fail for emails containing the substring.
	FailCreateFor string
	FailInvite    error
}

var _ supabase.Provider = (*FakeProvider)(nil)

func NewFakeProvider() *FakeProvider {
	return &FakeProvider{
		Users:     map[uuid.UUID]supabase.User{},
		Passwords: map[string]string{},
	}
}

func (f *FakeProvider) CreateUser(_ context.Context, p supabase.CreateUserParams) (*supabase.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.FailCreateFor != "" && strings.Contains(p.Email, f.FailCreateFor) {
		return nil, &supabase.APIError{Status: 422, Message: "email rejected"}
	}
	for _, u := range f.Users {
		if strings.EqualFold(u.Email, p.Email) {
			return nil, &supabase.APIError{Status: 422, Code: "email_exists", Message: "already registered"}
		}
	}
	u := supabase.User{ID: uuid.New(), Email: p.Email, UserMetadata: p.UserMetadata}
	f.Users[u.ID] = u
	f.Passwords[strings.ToLower(p.Email)] = p.Password
	return &u, nil
}

func (f *FakeProvider) InviteUserByEmail(_ context.Context, email string, data map[string]any, _ string) (*supabase.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.FailInvite != nil {
		return nil, f.FailInvite
	}
	f.Invites = append(f.Invites, email)
	// GoTrue re-invites an existing address under its original id
	for _, u := range f.Users {
		if strings.EqualFold(u.Email, email) {
			return &u, nil
		}
	}
	u := supabase.User{ID: uuid.New(), Email: email, UserMetadata: data}
	f.Users[u.ID] = u
	return &u, nil
}

// Seed registers an existing credential.
func (f *FakeProvider) Seed(id uuid.UUID, email string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Users[id] = supabase.User{ID: id, Email: email}
}

func (f *FakeProvider) SignInWithPassword(_ context.Context, email, password string) (*supabase.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	pw, ok := f.Passwords[strings.ToLower(email)]
	if !ok || pw != password {
		return nil, &supabase.APIError{Status: 400, Message: "Invalid login credentials"}
	}
	for _, u := range f.Users {
		if strings.EqualFold(u.Email, email) {
			return &supabase.Session{AccessToken: "access-" + u.ID.String(), TokenType: "bearer", ExpiresIn: 3600, User: u}, nil
		}
	}
	return nil, errors.New("user vanished")
}

func (f *FakeProvider) GetUser(_ context.Context, token string) (*supabase.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	id, err := uuid.Parse(strings.TrimPrefix(token, "access-"))
	if err != nil {
		return nil, supabase.ErrInvalidToken
	}
	u, ok := f.Users[id]
	if !ok {
		return nil, supabase.ErrInvalidToken
	}
	return &u, nil
}

func (f *FakeProvider) DeleteUser(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.Users, id)
	f.Deleted = append(f.Deleted, id)
	return nil
}

func (f *FakeProvider) Count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.Users)
}
