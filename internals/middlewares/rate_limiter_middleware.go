package middlewares

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	helper "edusuite_backend/internals/helpers"
)

func ipLimiter(max int, window time.Duration, message string) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        max,
		Expiration: window,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return helper.JsonError(c, fiber.StatusTooManyRequests, message)
		},
	})
}

// GlobalRateLimiter: fixed window per client IP (default 100 / 15 min).
func GlobalRateLimiter(max int, window time.Duration) fiber.Handler {
	return ipLimiter(max, window, "Too many requests from this IP, please try again later.")
}

// LoginRateLimiter is stricter for credential endpoints.
func LoginRateLimiter() fiber.Handler {
	return ipLimiter(5, time.Minute, "Too many login attempts. Please try again shortly.")
}

// RegisterRateLimiter guards public school signup.
func RegisterRateLimiter() fiber.Handler {
	return ipLimiter(3, 5*time.Minute, "Too many signup attempts. Please wait a few minutes.")
}
