package configs

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

// =======================
// CONFIG
// =======================

type Config struct {
	Env  string
	Port string

	DatabaseURL string
	DBUser      string
	DBPassword  string
	DBHost      string
	DBPort      string
	DBName      string
	DBSSLMode   string

	SupabaseURL        string
	SupabaseServiceKey string
	SupabaseJWTSecret  string

	GeminiAPIKey string
	GeminiModel  string

	AppURL      string
	CorsOrigins []string

	RateLimitMax    int
	RateLimitWindow time.Duration

	// TrustedProxies lists the proxy CIDRs whose ProxyHeader is believed.
	// Empty means the client IP is always the socket peer.
	TrustedProxies []string
	ProxyHeader    string

	LogLevel     string
	RollbarToken string

	FeeOverdueCron string
	AICacheCron    string
	AICacheTTLDays int
}

func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Env, "production")
}

// DSN builds the postgres DSN, preferring DATABASE_URL when set.
func (c *Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=edusuite&options=-c statement_timeout=3000",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName, c.DBSSLMode,
	)
}

func (c *Config) Validate() error {
	var missing []string
	if c.SupabaseURL == "" {
		missing = append(missing, "SUPABASE_URL")
	}
	if c.SupabaseServiceKey == "" {
		missing = append(missing, "SUPABASE_SERVICE_KEY")
	}
	if c.DatabaseURL == "" && c.DBHost == "" {
		missing = append(missing, "DATABASE_URL or DB_HOST")
	}
	if len(missing) == 0 {
		return nil
	}
	msg := "missing required config: " + strings.Join(missing, ", ")
	if c.IsProduction() {
		return errors.New(msg)
	}
	log.Warn().Msg(msg)
	return nil
}

// =======================
// ENV LOADER
// =======================

// LoadEnv loads .env when present; platform env always wins.
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") != "" {
		log.Info().Msg("running on Railway, using system env")
		return
	}
	if err := godotenv.Load(); err != nil {
		log.Info().Msg(".env not found, using system env")
		return
	}
	log.Info().Msg(".env loaded")
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetTypeByDefaultValue(true)

	v.SetDefault("ENV", "development")
	v.SetDefault("PORT", "3000")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_SSLMODE", "require")
	v.SetDefault("GEMINI_MODEL", "gemini-2.5-flash")
	v.SetDefault("APP_URL", "http://localhost:5173")
	v.SetDefault("CORS_ORIGINS", "http://localhost:5173")
	v.SetDefault("RATE_LIMIT_MAX", 100)
	v.SetDefault("RATE_LIMIT_WINDOW", 15*time.Minute)
	v.SetDefault("PROXY_HEADER", "X-Forwarded-For")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("FEE_OVERDUE_CRON", "15 0 * * *")
	v.SetDefault("AI_CACHE_CRON", "30 3 * * *")
	v.SetDefault("AI_CACHE_TTL_DAYS", 30)

	v.AutomaticEnv()
	return v
}

func Load() (*Config, error) {
	v := newViper()

	cfg := &Config{
		Env:                v.GetString("ENV"),
		Port:               v.GetString("PORT"),
		DatabaseURL:        v.GetString("DATABASE_URL"),
		DBUser:             v.GetString("DB_USER"),
		DBPassword:         v.GetString("DB_PASSWORD"),
		DBHost:             v.GetString("DB_HOST"),
		DBPort:             v.GetString("DB_PORT"),
		DBName:             v.GetString("DB_NAME"),
		DBSSLMode:          v.GetString("DB_SSLMODE"),
		SupabaseURL:        strings.TrimRight(v.GetString("SUPABASE_URL"), "/"),
		SupabaseServiceKey: v.GetString("SUPABASE_SERVICE_KEY"),
		SupabaseJWTSecret:  v.GetString("SUPABASE_JWT_SECRET"),
		GeminiAPIKey:       v.GetString("GEMINI_API_KEY"),
		GeminiModel:        v.GetString("GEMINI_MODEL"),
		AppURL:             v.GetString("APP_URL"),
		CorsOrigins:        splitCSV(v.GetString("CORS_ORIGINS")),
		RateLimitMax:       v.GetInt("RATE_LIMIT_MAX"),
		RateLimitWindow:    v.GetDuration("RATE_LIMIT_WINDOW"),
		TrustedProxies:     splitCSV(v.GetString("TRUSTED_PROXIES")),
		ProxyHeader:        strings.TrimSpace(v.GetString("PROXY_HEADER")),
		LogLevel:           v.GetString("LOG_LEVEL"),
		RollbarToken:       v.GetString("ROLLBAR_TOKEN"),
		FeeOverdueCron:     v.GetString("FEE_OVERDUE_CRON"),
		AICacheCron:        v.GetString("AI_CACHE_CRON"),
		AICacheTTLDays:     v.GetInt("AI_CACHE_TTL_DAYS"),
	}
	if cfg.RateLimitMax <= 0 {
		cfg.RateLimitMax = 100
	}
	if cfg.RateLimitWindow <= 0 {
		cfg.RateLimitWindow = 15 * time.Minute
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

func splitCSV(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
