package di

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"shop_backend/internal/app/router"
	authadapters "shop_backend/internal/feature/auth/adapters"
	authhandler "shop_backend/internal/feature/auth/transport/handler"
	authusecase "shop_backend/internal/feature/auth/usecase"
	inventoryhandler "shop_backend/internal/feature/inventory/transport/handler"
	inventoryusecase "shop_backend/internal/feature/inventory/usecase"
	"shop_backend/internal/platform/config"
	"shop_backend/internal/platform/http/handler"
	"shop_backend/internal/platform/http/validation"
	jwtmw "shop_backend/internal/platform/jwt"
	"shop_backend/internal/shared/ratelimiter"
)

// NewApp wires repositories, usecases and handlers into a router.
// rdb may be nil, in which case inventory lookups go straight to the database.
func NewApp(cfg config.Config, db *gorm.DB, rdb *redis.Client, log *zap.Logger) (*gin.Engine, error) {
	if err := validation.Register(); err != nil {
		return nil, err
	}

	// Repository
	userRepo := authadapters.NewUserRepository(db, log)
	inventoryRepo := NewInventoryRepository(db, rdb, cfg.Cache, log)

	// Usecase
	tokens := jwtmw.NewGenerator(cfg.JWT.Secret, cfg.JWT.Expiration)
	authUC := authusecase.NewAuthUsecase(userRepo, tokens)
	userUC := authusecase.NewUserUsecase(userRepo)
	inventoryUC := inventoryusecase.NewInventoryUsecase(inventoryRepo)

	// Handler
	handlers := router.Handlers{
		Auth:      authhandler.NewAuthHandler(authUC, log),
		Users:     authhandler.NewUserHandler(userUC, log),
		Inventory: inventoryhandler.NewInventoryHandler(inventoryUC, log),
	}

	checks := map[string]handler.Check{
		"db": func(ctx context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		},
	}
	if rdb != nil {
		checks["redis"] = func(ctx context.Context) error {
			return rdb.Ping(ctx).Err()
		}
	}

	var limiter ratelimiter.RateLimiterInterface
	if cfg.Auth.RateLimit > 0 {
		limiter = ratelimiter.NewRateLimiter(cfg.Auth.RateLimit, cfg.Auth.RateLimitWindow)
	}

	return router.NewRouter(handlers, router.Options{
		Service:     cfg.App.Name,
		Version:     cfg.App.Version,
		JWTSecret:   cfg.JWT.Secret,
		CORSOrigins: cfg.CORS.AllowedOrigins,
		ReadyChecks: checks,
		AuthLimiter: limiter,
		Logger:      log,
	}), nil
}
