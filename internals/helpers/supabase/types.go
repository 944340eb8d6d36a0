package supabase

import (
	"context"
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// User is the subset of a GoTrue user we rely on.
type User struct {
	ID           uuid.UUID      `json:"id"`
	Email        string         `json:"email"`
	Role         string         `json:"role,omitempty"`
	UserMetadata map[string]any `json:"user_metadata,omitempty"`
}

type Session struct {
	AccessToken  string `json:"access_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int    `json:"expires_in"`
	RefreshToken string `json:"refresh_token"`
	User         User   `json:"user"`
}

type CreateUserParams struct {
	Email        string         `json:"email"`
	Password     string         `json:"password,omitempty"`
	EmailConfirm bool           `json:"email_confirm"`
	UserMetadata map[string]any `json:"user_metadata,omitempty"`
}

// Provider is the identity-provider surface the application uses.
type Provider interface {
	CreateUser(ctx context.Context, p CreateUserParams) (*User, error)
	InviteUserByEmail(ctx context.Context, email string, data map[string]any, redirectTo string) (*User, error)
	SignInWithPassword(ctx context.Context, email, password string) (*Session, error)
	GetUser(ctx context.Context, accessToken string) (*User, error)
	DeleteUser(ctx context.Context, id uuid.UUID) error
}

// TokenVerifier turns a bearer token into the provider user it was issued to.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (*User, error)
}

var ErrInvalidToken = errors.New("invalid or expired token")

// APIError is a non-2xx answer from GoTrue.
type APIError struct {
	Status  int    `json:"-"`
	Code    string `json:"error_code,omitempty"`
	Message string `json:"msg,omitempty"`
	Err     string `json:"error,omitempty"`
	Desc    string `json:"error_description,omitempty"`
}

func (e *APIError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = e.Desc
	}
	if msg == "" {
		msg = e.Err
	}
	if msg == "" {
		msg = "unexpected response"
	}
	return fmt.Sprintf("supabase auth %d: %s", e.Status, msg)
}

// AsFiberError converts a provider failure into an HTTP error prefixed with msg.
// Rejections of the caller's input keep their 4xx; everything else is a 500.
func AsFiberError(msg string, err error) error {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.Code == "email_exists" || apiErr.Code == "user_already_exists":
			return fiber.NewError(fiber.StatusConflict, msg+": "+apiErr.Error())
		case apiErr.Status == fiber.StatusBadRequest || apiErr.Status == fiber.StatusUnprocessableEntity:
			return fiber.NewError(fiber.StatusBadRequest, msg+": "+apiErr.Error())
		}
	}
	return fiber.NewError(fiber.StatusInternalServerError, msg+": "+err.Error())
}
