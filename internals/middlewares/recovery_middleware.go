package middlewares

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rs/zerolog/log"

	"edusuite_backend/internals/helpers/reporter"
)

// RecoveryMiddleware turns panics into 500s and reports them.
func RecoveryMiddleware() fiber.Handler {
	return recover.New(recover.Config{
		EnableStackTrace: true,
		StackTraceHandler: func(c *fiber.Ctx, e interface{}) {
			log.Error().Str("panic", fmt.Sprint(e)).Str("path", c.Path()).Msg("recovered panic")
			reporter.Critical(e, map[string]interface{}{"method": c.Method(), "path": c.Path()})
		},
	})
}
