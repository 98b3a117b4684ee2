// Package di provides dependency injection factories for creating application components.
package di

import (
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	inventoryadapters "shop_backend/internal/feature/inventory/adapters"
	"shop_backend/internal/feature/inventory/usecase"
	"shop_backend/internal/platform/cache"
	"shop_backend/internal/platform/config"
)

// NewInventoryRepository creates an InventoryRepository implementation.
// If Redis is available, the GORM repository is wrapped with the per-SKU cache.
func NewInventoryRepository(db *gorm.DB, rdb *redis.Client, cfg config.CacheConfig, log *zap.Logger) usecase.InventoryRepository {
	repo := inventoryadapters.NewInventoryRepository(db, log)
	if rdb == nil {
		return repo
	}
	return cache.NewCachingInventoryRepository(rdb, cfg.InventoryTTL, repo, cfg.InventoryNamespace, log)
}
