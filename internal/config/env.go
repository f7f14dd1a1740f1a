package config

import (
	"log/slog"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// DefaultJWTSecret is only meant for local development; LoadEnv warns when it is in use.
const DefaultJWTSecret = "change-me-in-production"

type Env struct {
	AppAddr  string `env:"APP_ADDR" env-default:":8080"`
	GinMode  string `env:"GIN_MODE"`
	LogLevel string `env:"LOG_LEVEL" env-default:"info"`

	DBUser string `env:"DB_USER" env-default:"root"`
	DBPass string `env:"DB_PASS"`
	DBHost string `env:"DB_HOST" env-default:"127.0.0.1"`
	DBPort string `env:"DB_PORT" env-default:"3306"`
	DBName string `env:"DB_NAME" env-default:"bus_booking"`

	JWTSecret string        `env:"JWT_SECRET" env-default:"change-me-in-production"`
	JWTTTL    time.Duration `env:"JWT_TTL" env-default:"24h"`

	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" env-separator:"," env-default:"http://localhost:3000,http://localhost:5173"`

	RedisAddr      string        `env:"REDIS_ADDR"`
	RedisPassword  string        `env:"REDIS_PASSWORD"`
	RedisDB        int           `env:"REDIS_DB" env-default:"0"`
	ReportCacheTTL time.Duration `env:"REPORT_CACHE_TTL" env-default:"30s"`

	KafkaBrokers []string `env:"KAFKA_BROKERS" env-separator:","`
	KafkaTopic   string   `env:"KAFKA_TOPIC" env-default:"booking-events"`
}

// LoadEnv reads .env (when present) into the process environment, then the Env struct.
func LoadEnv() Env {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file loaded", "error", err)
	}

	var env Env
	if err := cleanenv.ReadEnv(&env); err != nil {
		slog.Warn("config: falling back to defaults", "error", err)
	}

	if env.UsesDefaultJWTSecret() {
		slog.Warn("config: JWT_SECRET not set, using insecure default secret")
	}

	env.GinMode = strings.TrimSpace(env.GinMode)
	env.KafkaBrokers = compact(env.KafkaBrokers)
	env.CORSAllowedOrigins = compact(env.CORSAllowedOrigins)
	return env
}

// UsesDefaultJWTSecret reports whether tokens would be signed with DefaultJWTSecret.
func (e Env) UsesDefaultJWTSecret() bool {
	return e.JWTSecret == "" || e.JWTSecret == DefaultJWTSecret
}

func compact(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
