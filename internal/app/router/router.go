// Package router はHTTPルーティングを組み立てます。
package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"shop_backend/internal/feature/auth/domain/entity"
	authhandler "shop_backend/internal/feature/auth/transport/handler"
	inventoryhandler "shop_backend/internal/feature/inventory/transport/handler"
	"shop_backend/internal/platform/http/handler"
	"shop_backend/internal/platform/http/middleware"
	jwtmw "shop_backend/internal/platform/jwt"
	"shop_backend/internal/shared/ratelimiter"
)

// Handlers はルーターに登録するフィーチャーのハンドラーです。
type Handlers struct {
	Auth      *authhandler.AuthHandler
	Users     *authhandler.UserHandler
	Inventory *inventoryhandler.InventoryHandler
}

// Options はルーター全体の設定です。
type Options struct {
	Service     string
	Version     string
	JWTSecret   string
	CORSOrigins []string
	ReadyChecks map[string]handler.Check
	// AuthLimiter はsignup/loginへのリクエストを制限します。nilなら制限しません。
	AuthLimiter ratelimiter.RateLimiterInterface
	Logger      *zap.Logger
}

// NewRouter はミドルウェアとルートを登録したgin.Engineを返します。
func NewRouter(h Handlers, opts Options) *gin.Engine {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.AccessLog(log), middleware.Recover(log))
	if len(opts.CORSOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:  opts.CORSOrigins,
			AllowMethods:  []string{"GET", "POST", "PUT", "OPTIONS"},
			AllowHeaders:  []string{"Authorization", "Content-Type", middleware.HeaderRequestID},
			ExposeHeaders: []string{middleware.HeaderRequestID},
			MaxAge:        12 * time.Hour,
		}))
	}

	// 認証不要
	// 導通確認用
	health := handler.Health(opts.Service, opts.Version)
	r.GET("/healthz", health)
	r.HEAD("/healthz", health)
	r.GET("/readyz", handler.Ready(opts.ReadyChecks))

	api := r.Group("/api")
	auth := api.Group("/auth")
	if opts.AuthLimiter != nil {
		auth.Use(middleware.RateLimit(opts.AuthLimiter))
	}
	{
		// 新規ユーザー登録とログイン（JWT 発行）
		auth.POST("/signup", h.Auth.Signup)
		auth.POST("/login", h.Auth.Login)
	}

	// 認証必須のルート
	protected := api.Group("", jwtmw.AuthRequired(opts.JWTSecret))
	{
		protected.GET("/users", h.Users.List)
		protected.GET("/users/:username", h.Users.Get)
		protected.GET("/users/:username/roles", h.Users.Roles)

		protected.GET("/inventory", h.Inventory.IsInStock)
		// 在庫の更新は管理者のみ
		protected.PUT("/inventory/:skuCode", jwtmw.RequireRole(entity.RoleAdmin), h.Inventory.Restock)
	}

	return r
}
