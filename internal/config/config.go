package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Redis    RedisConfig
	JWT      JWTConfig
	Advisor  AdvisorConfig
}

type AppConfig struct {
	AppName     string
	Environment string
	HTTPPort    string
}

type DatabaseConfig struct {
	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string
	DBSSLMode  string

	PoolMaxConns int32
	PoolMinConns int32
}

type RedisConfig struct {
	Host       string
	Port       string
	Password   string
	DB         int
	DefaultTTL time.Duration
}

type JWTConfig struct {
	AccessSecret     string
	RefreshSecret    string
	AccessExpiresIn  time.Duration
	RefreshExpiresIn time.Duration
}

// AdvisorConfig configures the external recommendation model. An empty APIKey
// disables the advisor; the fallback recommender takes over.
type AdvisorConfig struct {
	APIKey string
	Model  string
}

var errMissingRequiredEnv = errors.New("missing required environment variables")

func Load() (Config, error) {
	cfg := Config{}

	var missing []string
	req := func(key string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}
	opt := func(key string) string {
		return strings.TrimSpace(os.Getenv(key))
	}
	optDefault := func(key, def string) string {
		if v := opt(key); v != "" {
			return v
		}
		return def
	}

	cfg.App = AppConfig{
		AppName:     optDefault("APP_NAME", "caps-connect"),
		Environment: optDefault("APP_ENV", "development"),
		HTTPPort:    optDefault("HTTP_PORT", "8080"),
	}

	cfg.Database = DatabaseConfig{
		DBHost:       optDefault("DB_HOST", "localhost"),
		DBPort:       optDefault("DB_PORT", "5432"),
		DBName:       req("DB_NAME"),
		DBUser:       req("DB_USER"),
		DBPassword:   opt("DB_PASSWORD"),
		DBSSLMode:    optDefault("DB_SSL_MODE", "disable"),
		PoolMaxConns: int32(parseInt(opt("DB_POOL_MAX_CONNS"), 0)),
		PoolMinConns: int32(parseInt(opt("DB_POOL_MIN_CONNS"), 0)),
	}

	cfg.Redis = RedisConfig{
		Host:       optDefault("REDIS_HOST", "localhost"),
		Port:       optDefault("REDIS_PORT", "6379"),
		Password:   opt("REDIS_PASSWORD"),
		DB:         parseInt(opt("REDIS_DB"), 0),
		DefaultTTL: time.Duration(parseInt(opt("REDIS_TTL_SECONDS"), 600)) * time.Second,
	}

	cfg.JWT = JWTConfig{
		AccessSecret:     req("JWT_ACCESS_SECRET"),
		RefreshSecret:    req("JWT_REFRESH_SECRET"),
		AccessExpiresIn:  time.Duration(parseInt(opt("JWT_ACCESS_EXPIRES_MINUTES"), 15)) * time.Minute,
		RefreshExpiresIn: time.Duration(parseInt(opt("JWT_REFRESH_EXPIRES_HOURS"), 168)) * time.Hour,
	}

	cfg.Advisor = AdvisorConfig{
		APIKey: opt("OPENAI_API_KEY"),
		Model:  opt("OPENAI_MODEL"),
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}

	return cfg, nil
}

func parseInt(raw string, def int) int {
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}
