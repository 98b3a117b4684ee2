package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"shop_backend/internal/app/di"
	"shop_backend/internal/platform/db"
	"shop_backend/internal/platform/logger"
)

// テーブルを作成し、デフォルトのロールを登録します。
// -admin（またはADMIN_USERNAME）を指定すると、既存ユーザーにROLE_ADMINを付与します。
// サーバー用の設定（JWT_SECRETなど）は不要で、DB_* だけを読みます。
func main() {
	_ = godotenv.Load(".env")

	admin := flag.String("admin", os.Getenv("ADMIN_USERNAME"), "username to grant ROLE_ADMIN")
	flag.Parse()

	logg, err := logger.New(logger.Config{})
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer func() { _ = logg.Sync() }()

	cfg, err := db.LoadConfigFromEnv()
	if err != nil {
		logg.Fatal("failed to load db config", zap.Error(err))
	}
	// ここで明示的にMigrateするので二重実行しない
	cfg.RunMigrations = false

	gdb, err := db.OpenDB(cfg, logg)
	if err != nil {
		logg.Fatal("failed to connect database", zap.Error(err))
	}
	defer func() { _ = db.Close(gdb) }()

	if err := db.Migrate(gdb); err != nil {
		logg.Fatal("migrate failed", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	if err := di.Bootstrap(ctx, gdb, logg, *admin); err != nil {
		logg.Fatal("bootstrap failed", zap.Error(err))
	}
	logg.Info("migrate ok")
}
