package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/hbagde424/ElectionAT-sub001/internal/clients/redis"
	"github.com/hbagde424/ElectionAT-sub001/internal/data/db"
	"github.com/hbagde424/ElectionAT-sub001/internal/observability"
	"github.com/hbagde424/ElectionAT-sub001/internal/services"
)

const devJWTSecret = "electionat-dev-secret"

type Config struct {
	Env     string
	Port    int
	Version string

	JWTSecret string
	JWTExpire time.Duration

	DB       db.Config
	MongoURI string
	MongoDB  string

	Redis    redis.Config
	CacheTTL time.Duration

	CORSOrigins    []string
	MetricsEnabled bool
	Otel           observability.OtelConfig
}

// Production reports whether NODE_ENV selects the production profile.
func (c Config) Production() bool {
	return strings.EqualFold(c.Env, "production") || strings.EqualFold(c.Env, "prod")
}

// LogMode maps NODE_ENV onto a logger mode.
func (c Config) LogMode() string {
	if c.Production() {
		return "production"
	}
	if strings.EqualFold(c.Env, "test") {
		return "test"
	}
	return "development"
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("NODE_ENV", "development")
	v.SetDefault("PORT", 5000)
	v.SetDefault("APP_VERSION", "dev")
	v.SetDefault("JWT_EXPIRE", "30d")
	v.SetDefault("DB_DRIVER", db.DriverSQLite)
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("DB_MAX_OPEN_CONNS", 25)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)
	v.SetDefault("DB_CONN_MAX_LIFETIME", "30m")
	v.SetDefault("DB_SLOW_THRESHOLD", "200ms")
	v.SetDefault("MONGO_URI", "")
	v.SetDefault("MONGO_DB", "election")
	v.SetDefault("REDIS_ADDR", "")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("REDIS_NAMESPACE", "electionat")
	v.SetDefault("CACHE_TTL", "10m")
	v.SetDefault("CORS_ORIGINS", "")
	v.SetDefault("METRICS_ENABLED", false)
	v.SetDefault("OTEL_ENABLED", false)
	v.SetDefault("OTEL_SERVICE_NAME", observability.DefaultServiceName)
	v.SetDefault("OTEL_EXPORTER_OTLP_ENDPOINT", "")
	v.SetDefault("OTEL_EXPORTER_OTLP_HEADERS", "")
	v.SetDefault("OTEL_EXPORTER_OTLP_INSECURE", false)
	v.SetDefault("OTEL_SAMPLER_RATIO", 0.1)
}

// LoadConfig reads .env (when present) and the process environment.
func LoadConfig() (Config, error) {
	_ = godotenv.Load()
	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)
	return configFrom(v)
}

func configFrom(v *viper.Viper) (Config, error) {
	cfg := Config{
		Env:     strings.TrimSpace(v.GetString("NODE_ENV")),
		Port:    v.GetInt("PORT"),
		Version: v.GetString("APP_VERSION"),
		DB: db.Config{
			Driver:          v.GetString("DB_DRIVER"),
			DSN:             v.GetString("DATABASE_URL"),
			MaxOpenConns:    v.GetInt("DB_MAX_OPEN_CONNS"),
			MaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: v.GetDuration("DB_CONN_MAX_LIFETIME"),
			SlowThreshold:   v.GetDuration("DB_SLOW_THRESHOLD"),
		},
		MongoURI: strings.TrimSpace(v.GetString("MONGO_URI")),
		MongoDB:  strings.TrimSpace(v.GetString("MONGO_DB")),
		Redis: redis.Config{
			Addr:      strings.TrimSpace(v.GetString("REDIS_ADDR")),
			Password:  v.GetString("REDIS_PASSWORD"),
			DB:        v.GetInt("REDIS_DB"),
			Namespace: v.GetString("REDIS_NAMESPACE"),
		},
		CORSOrigins:    splitList(v.GetString("CORS_ORIGINS")),
		MetricsEnabled: v.GetBool("METRICS_ENABLED"),
		Otel: observability.OtelConfig{
			Enabled:     v.GetBool("OTEL_ENABLED"),
			ServiceName: v.GetString("OTEL_SERVICE_NAME"),
			Version:     v.GetString("APP_VERSION"),
			Endpoint:    strings.TrimSpace(v.GetString("OTEL_EXPORTER_OTLP_ENDPOINT")),
			Headers:     observability.ParseHeaders(v.GetString("OTEL_EXPORTER_OTLP_HEADERS")),
			Insecure:    v.GetBool("OTEL_EXPORTER_OTLP_INSECURE"),
			SampleRatio: v.GetFloat64("OTEL_SAMPLER_RATIO"),
		},
	}
	cfg.Otel.Environment = cfg.Env

	if cfg.Port <= 0 || cfg.Port > 65535 {
		return Config{}, fmt.Errorf("invalid PORT %d", cfg.Port)
	}

	expire, err := services.ParseExpire(v.GetString("JWT_EXPIRE"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid JWT_EXPIRE: %w", err)
	}
	cfg.JWTExpire = expire

	ttl, err := services.ParseExpire(v.GetString("CACHE_TTL"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid CACHE_TTL: %w", err)
	}
	cfg.CacheTTL = ttl

	cfg.JWTSecret = strings.TrimSpace(v.GetString("JWT_SECRET"))
	if cfg.JWTSecret == "" {
		if cfg.Production() {
			return Config{}, fmt.Errorf("JWT_SECRET is required in production")
		}
		cfg.JWTSecret = devJWTSecret
	}
	return cfg, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
