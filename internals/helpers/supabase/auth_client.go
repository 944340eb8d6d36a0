package supabase

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const defaultTimeout = 10 * time.Second

// AuthClient talks to the GoTrue admin and token endpoints with the service-role key.
type AuthClient struct {
	baseURL    string
	serviceKey string
	timeout    time.Duration
	http       *fiber.Client
}

var _ Provider = (*AuthClient)(nil)

func NewAuthClient(baseURL, serviceKey string) *AuthClient {
	return &AuthClient{
		baseURL:    baseURL,
		serviceKey: serviceKey,
		timeout:    defaultTimeout,
		http: &fiber.Client{
			JSONEncoder: sonic.Marshal,
			JSONDecoder: sonic.Unmarshal,
		},
	}
}

func (c *AuthClient) endpoint(path string) string {
	return c.baseURL + "/auth/v1" + path
}

func (c *AuthClient) timeoutFor(ctx context.Context) time.Duration {
	if dl, ok := ctx.Deadline(); ok {
		if left := time.Until(dl); left > 0 && left < c.timeout {
			return left
		}
	}
	return c.timeout
}

// do sends the request; bearer defaults to the service key.
func (c *AuthClient) do(ctx context.Context, a *fiber.Agent, bearer string, out any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if bearer == "" {
		bearer = c.serviceKey
	}
	a.Set("apikey", c.serviceKey)
	a.Set(fiber.HeaderAuthorization, "Bearer "+bearer)
	a.Timeout(c.timeoutFor(ctx))

	code, body, errs := a.Bytes()
	if len(errs) > 0 {
		return fmt.Errorf("supabase auth request: %w", errors.Join(errs...))
	}
	if code >= fiber.StatusBadRequest {
		apiErr := &APIError{Status: code}
		_ = sonic.Unmarshal(body, apiErr)
		return apiErr
	}
	if out != nil && len(body) > 0 {
		if err := sonic.Unmarshal(body, out); err != nil {
			return fmt.Errorf("supabase auth decode: %w", err)
		}
	}
	return nil
}

func (c *AuthClient) CreateUser(ctx context.Context, p CreateUserParams) (*User, error) {
	a := c.http.Post(c.endpoint("/admin/users"))
	a.JSON(p)
	var u User
	if err := c.do(ctx, a, "", &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *AuthClient) InviteUserByEmail(ctx context.Context, email string, data map[string]any, redirectTo string) (*User, error) {
	path := "/invite"
	if redirectTo != "" {
		path += "?redirect_to=" + url.QueryEscape(redirectTo)
	}
	a := c.http.Post(c.endpoint(path))
	a.JSON(map[string]any{"email": email, "data": data})
	var u User
	if err := c.do(ctx, a, "", &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *AuthClient) SignInWithPassword(ctx context.Context, email, password string) (*Session, error) {
	a := c.http.Post(c.endpoint("/token?grant_type=password"))
	a.JSON(map[string]string{"email": email, "password": password})
	var s Session
	if err := c.do(ctx, a, "", &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (c *AuthClient) GetUser(ctx context.Context, accessToken string) (*User, error) {
	a := c.http.Get(c.endpoint("/user"))
	var u User
	if err := c.do(ctx, a, accessToken, &u); err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && (apiErr.Status == fiber.StatusUnauthorized || apiErr.Status == fiber.StatusForbidden) {
			return nil, ErrInvalidToken
		}
		return nil, err
	}
	if u.ID == uuid.Nil {
		return nil, ErrInvalidToken
	}
	return &u, nil
}

func (c *AuthClient) DeleteUser(ctx context.Context, id uuid.UUID) error {
	a := c.http.Delete(c.endpoint("/admin/users/" + id.String()))
	return c.do(ctx, a, "", nil)
}

// RemoteVerifier validates tokens by asking GoTrue for the token's user.
type RemoteVerifier struct {
	Client Provider
}

func (v RemoteVerifier) Verify(ctx context.Context, token string) (*User, error) {
	return v.Client.GetUser(ctx, token)
}
