// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"shop_backend/internal/feature/inventory/domain/entity"
	"shop_backend/internal/feature/inventory/usecase"
)

// CachingInventoryRepository decorates an InventoryRepository with a per-SKU Redis cache.
// Each SKU is stored under its own key so a batch lookup only loads the misses from the database.
type CachingInventoryRepository struct {
	inner     usecase.InventoryRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
	log       *zap.Logger
}

var _ usecase.InventoryRepository = (*CachingInventoryRepository)(nil)

// NewCachingInventoryRepository decorates an InventoryRepository with Redis caching.
// If ttl is 0, it defaults to 30 seconds. If namespace is empty, it uses "inventory".
// A nil rdb disables caching.
func NewCachingInventoryRepository(rdb *redis.Client, ttl time.Duration, inner usecase.InventoryRepository, namespace string, log *zap.Logger) *CachingInventoryRepository {
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	if namespace == "" {
		namespace = "inventory"
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &CachingInventoryRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
		log:       log,
	}
}

// FindBySkuCodeIn returns cached records and loads the rest from the inner repository.
// Redis errors fall back to the inner repository.
func (c *CachingInventoryRepository) FindBySkuCodeIn(ctx context.Context, skuCodes []string) ([]entity.Inventory, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil || len(skuCodes) == 0 {
		return c.inner.FindBySkuCodeIn(ctx, skuCodes)
	}

	codes := distinct(skuCodes)
	keys := make([]string, len(codes))
	for i, code := range codes {
		keys[i] = c.cacheKey(code)
	}

	// 1) Check cache
	vals, err := c.rdb.MGet(ctx, keys...).Result()
	if err != nil {
		c.log.Warn("inventory cache read failed", zap.Error(err))
		return c.inner.FindBySkuCodeIn(ctx, codes)
	}

	out := make([]entity.Inventory, 0, len(codes))
	misses := make([]string, 0, len(codes))
	for i, v := range vals {
		s, ok := v.(string)
		if !ok || s == "" {
			misses = append(misses, codes[i])
			continue
		}
		var inv entity.Inventory
		if err := json.Unmarshal([]byte(s), &inv); err != nil || inv.SkuCode != codes[i] {
			// Delete corrupted or foreign cache entry
			_ = c.rdb.Del(ctx, keys[i]).Err()
			misses = append(misses, codes[i])
			continue
		}
		out = append(out, inv)
	}
	if len(misses) == 0 {
		return out, nil
	}

	// 2) Fallback to database
	found, err := c.inner.FindBySkuCodeIn(ctx, misses)
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort)
	for _, inv := range found {
		if b, err := json.Marshal(inv); err == nil {
			_ = c.rdb.Set(ctx, c.cacheKey(inv.SkuCode), b, c.ttl).Err()
		}
	}
	return append(out, found...), nil
}

// UpsertQuantity writes through to the inner repository and invalidates the SKU's cache entry.
func (c *CachingInventoryRepository) UpsertQuantity(ctx context.Context, skuCode string, quantity int) (*entity.Inventory, error) {
	inv, err := c.inner.UpsertQuantity(ctx, skuCode, quantity)
	if err != nil {
		return nil, err
	}
	if c.rdb != nil {
		if err := c.rdb.Del(ctx, c.cacheKey(skuCode)).Err(); err != nil {
			c.log.Warn("inventory cache invalidation failed", zap.String("sku_code", skuCode), zap.Error(err))
		}
	}
	return inv, nil
}

// cacheKey generates the cache key for one SKU. The code is used as is;
// Redis keys are binary safe and any rewriting would let two SKUs share a key.
func (c *CachingInventoryRepository) cacheKey(skuCode string) string {
	return c.namespace + ":" + skuCode
}

func distinct(codes []string) []string {
	seen := make(map[string]struct{}, len(codes))
	out := make([]string, 0, len(codes))
	for _, c := range codes {
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out
}

