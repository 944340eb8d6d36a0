package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"edusuite_backend/internals/configs"
	database "edusuite_backend/internals/databases"
	"edusuite_backend/internals/helpers/gemini"
	"edusuite_backend/internals/helpers/reporter"
	"edusuite_backend/internals/helpers/supabase"
	"edusuite_backend/internals/jobs"
	routes "edusuite_backend/internals/route"
)

var version = "dev"

func main() {
	configs.LoadEnv()

	cfg, err := configs.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("config")
	}
	configs.SetupLogger(cfg.Env, cfg.LogLevel)
	reporter.Init(cfg.RollbarToken, cfg.Env, version)

	db, err := database.ConnectDB(cfg)
	if err != nil {
		reporter.Critical(err, nil)
		reporter.Close()
		log.Fatal().Err(err).Msg("database")
	}
	database.TunePool(db)
	database.WarmUpQueries(db)

	provider := supabase.NewAuthClient(cfg.SupabaseURL, cfg.SupabaseServiceKey)
	var verifier supabase.TokenVerifier = supabase.RemoteVerifier{Client: provider}
	if cfg.SupabaseJWTSecret != "" {
		verifier = supabase.NewJWTVerifier(cfg.SupabaseJWTSecret)
	}

	deps := routes.Deps{DB: db, Config: cfg, Provider: provider, Verifier: verifier}

	var ai *gemini.Client
	if cfg.GeminiAPIKey != "" {
		ai, err = gemini.NewClient(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			log.Error().Err(err).Msg("gemini client, assistant disabled")
		} else {
			deps.Generator = ai
		}
	} else {
		log.Warn().Msg("GEMINI_API_KEY not set, assistant disabled")
	}

	app := routes.NewApp(cfg)
	svcs := routes.SetupRoutes(app, deps)

	sched, err := jobs.Start(cfg, svcs.Fees, svcs.Assistant)
	if err != nil {
		log.Fatal().Err(err).Msg("scheduler")
	}

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Str("version", version).Bool("error_reporting", reporter.Enabled()).Msg("listening")
		if err := app.Listen("0.0.0.0:" + cfg.Port); err != nil {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = app.ShutdownWithContext(ctx)

	<-sched.Stop().Done()
	svcs.Assistant.Flush()
	if ai != nil {
		_ = ai.Close()
	}
	reporter.Close()
	database.Close(db)
}
