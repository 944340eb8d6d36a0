package routes

import (
	"io"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"edusuite_backend/internals/configs"
	assistantService "edusuite_backend/internals/features/ai/assistant/service"
	feeService "edusuite_backend/internals/features/finance/fees/service"
	"edusuite_backend/internals/helpers/supabase"
	middlewares "edusuite_backend/internals/middlewares"
	authMiddleware "edusuite_backend/internals/middlewares/auth"
	loggerMiddleware "edusuite_backend/internals/middlewares/logger"
	routeDetails "edusuite_backend/internals/route/details"
)

const requestTimeout = 5 * time.Second

var startTime = time.Now()

// Deps is everything the HTTP layer needs from main.
type Deps struct {
	DB        *gorm.DB
	Config    *configs.Config
	Provider  supabase.Provider
	Verifier  supabase.TokenVerifier
	Generator assistantService.Generator // nil disables the assistant
}

// Services exposes the long-lived services that background jobs share.
type Services struct {
	Assistant *assistantService.AssistantService
	Fees      *feeService.FeeService
}

// NewApp builds the fiber app with the global middleware chain.
func NewApp(cfg *configs.Config) *fiber.App {
	fc := fiber.Config{
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
		DisableStartupMessage: true,
		ErrorHandler:          middlewares.ErrorHandler,
		ReadTimeout:           15 * time.Second,
		WriteTimeout:          30 * time.Second,
		IdleTimeout:           90 * time.Second,
	}
	// c.IP() only reads the proxy header when the peer is a configured proxy.
	if len(cfg.TrustedProxies) > 0 {
		fc.ProxyHeader = cfg.ProxyHeader
		if fc.ProxyHeader == "" {
			fc.ProxyHeader = fiber.HeaderXForwardedFor
		}
		fc.EnableTrustedProxyCheck = true
		fc.TrustedProxies = cfg.TrustedProxies
		fc.EnableIPValidation = true
	}
	app := fiber.New(fc)

	app.Use(middlewares.RecoveryMiddleware())
	app.Use(middlewares.RequestContext(requestTimeout))
	app.Use(loggerMiddleware.LoggerMiddleware(accessLog(cfg)))
	app.Use(middlewares.CorsMiddleware(cfg.CorsOrigins))
	app.Use(compress.New(compress.Config{Level: compress.LevelDefault}))
	app.Use(etag.New())
	app.Use(middlewares.GlobalRateLimiter(cfg.RateLimitMax, cfg.RateLimitWindow))
	return app
}

// accessLog silences the access log under tests.
func accessLog(cfg *configs.Config) io.Writer {
	if cfg.Env == "test" {
		return io.Discard
	}
	return nil
}

// SetupRoutes mounts every feature under /api. Guards are passed per group
// because /api/auth must stay public.
func SetupRoutes(app *fiber.App, deps Deps) *Services {
	startTime = time.Now()
	db := deps.DB

	BaseRoutes(app, db, deps.Config.Env)

	authn := authMiddleware.AuthMiddleware(db, deps.Verifier)
	guards := []fiber.Handler{authn, authMiddleware.RequireTenant()}

	api := app.Group("/api")

	log.Info().Msg("[INFO] Setting up AuthRoutes...")
	routeDetails.AuthRoutes(api, db, deps.Provider, authn)

	log.Info().Msg("[INFO] Setting up UserRoutes...")
	routeDetails.UserRoutes(api, db, deps.Provider, deps.Config.AppURL, guards...)

	log.Info().Msg("[INFO] Mounting School routes...")
	routeDetails.SchoolRoutes(api, db, deps.Provider, guards...)

	log.Info().Msg("[INFO] Mounting Finance routes...")
	routeDetails.FinanceRoutes(api, db, guards...)

	log.Info().Msg("[INFO] Mounting AI routes...")
	assistant := assistantService.NewAssistantService(db, deps.Generator)
	routeDetails.AIRoutes(api, assistant, guards...)

	return &Services{
		Assistant: assistant,
		Fees:      feeService.NewFeeService(db),
	}
}
