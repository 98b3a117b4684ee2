package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	redisv9 "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"shop_backend/internal/app/di"
	authusecase "shop_backend/internal/feature/auth/usecase"
	"shop_backend/internal/platform/config"
	"shop_backend/internal/platform/db"
	"shop_backend/internal/platform/logger"
	"shop_backend/internal/platform/redis"
)

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logg, err := logger.New(cfg.Log)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer func() { _ = logg.Sync() }()

	gin.SetMode(cfg.Server.GinMode)

	// db
	gdb, err := db.OpenDB(cfg.DB, logg)
	if err != nil {
		logg.Fatal("failed to connect database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(gdb); err != nil {
			logg.Error("failed to close database", zap.Error(err))
		}
	}()

	// OpenDBがテーブルを作成した後、ロールを登録する
	if cfg.DB.RunMigrations {
		err := di.Bootstrap(context.Background(), gdb, logg, cfg.Auth.AdminUsername)
		switch {
		case errors.Is(err, authusecase.ErrUserNotFound):
			// 管理者がまだサインアップしていない
			logg.Warn("admin user not found, role not granted", zap.String("username", cfg.Auth.AdminUsername))
		case err != nil:
			logg.Fatal("failed to bootstrap database", zap.Error(err))
		}
	}

	// Redis（任意）
	var rdb *redisv9.Client
	if cfg.Redis.Enabled() {
		if tmp, err := redis.NewRedisClient(context.Background(), cfg.Redis, logg); err != nil {
			logg.Warn("Redis unavailable. Running without cache.", zap.Error(err))
		} else {
			rdb = tmp
			defer func() {
				if err := rdb.Close(); err != nil {
					logg.Error("failed to close Redis client", zap.Error(err))
				}
			}()
		}
	}

	engine, err := di.NewApp(cfg, gdb, rdb, logg)
	if err != nil {
		logg.Fatal("failed to build app", zap.Error(err))
	}

	srv := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		logg.Info("server starting", zap.String("addr", srv.Addr), zap.String("version", cfg.App.Version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logg.Fatal("server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logg.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logg.Error("server forced to shutdown", zap.Error(err))
	}
	logg.Info("server exited")
}
