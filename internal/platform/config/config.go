// Package config はアプリケーション設定を環境変数（と任意の .env ファイル）から読み込みます。
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"shop_backend/internal/platform/db"
	"shop_backend/internal/platform/logger"
	"shop_backend/internal/platform/redis"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	App    AppConfig
	Server ServerConfig
	JWT    JWTConfig
	Cache  CacheConfig
	CORS   CORSConfig
	Auth   AuthConfig
	Log    logger.Config
	Redis  redis.Config
	DB     db.Config
}

// AppConfig holds application-level settings.
type AppConfig struct {
	Name    string `envconfig:"APP_NAME" default:"shop_backend"`
	Version string `envconfig:"APP_VERSION" default:"dev"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Addr            string        `envconfig:"SERVER_ADDR" default:":8080"`
	ReadTimeout     time.Duration `envconfig:"SERVER_READ_TIMEOUT" default:"15s"`
	WriteTimeout    time.Duration `envconfig:"SERVER_WRITE_TIMEOUT" default:"30s"`
	ShutdownTimeout time.Duration `envconfig:"SERVER_SHUTDOWN_TIMEOUT" default:"10s"`
	GinMode         string        `envconfig:"GIN_MODE" default:"release"`
}

// JWTConfig holds token settings. JWT_SECRET is required.
type JWTConfig struct {
	Secret     string        `envconfig:"JWT_SECRET" required:"true"`
	Expiration time.Duration `envconfig:"JWT_EXPIRATION" default:"1h"`
}

// CacheConfig holds the inventory cache settings.
type CacheConfig struct {
	InventoryTTL       time.Duration `envconfig:"CACHE_INVENTORY_TTL" default:"30s"`
	InventoryNamespace string        `envconfig:"CACHE_INVENTORY_NAMESPACE" default:"inventory"`
}

// CORSConfig holds allowed origins. CORS is disabled when empty.
type CORSConfig struct {
	AllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS"`
}

// AuthConfig limits signup/login requests per client IP. A zero limit disables it.
// AdminUsername is granted ROLE_ADMIN when migrations run.
type AuthConfig struct {
	RateLimit       int           `envconfig:"AUTH_RATE_LIMIT" default:"20"`
	RateLimitWindow time.Duration `envconfig:"AUTH_RATE_LIMIT_WINDOW" default:"1m"`
	AdminUsername   string        `envconfig:"ADMIN_USERNAME"`
}

// Load reads the given .env files (missing files are ignored) and then the environment.
// Variables already set in the environment take precedence over .env values.
func Load(envFiles ...string) (Config, error) {
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("process env: %w", err)
	}
	return cfg, nil
}
