// Package adapters はinventoryフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"shop_backend/internal/feature/inventory/domain/entity"
	"shop_backend/internal/feature/inventory/usecase"
	"shop_backend/internal/platform/db"
	"shop_backend/internal/shared/paging"
)

var inventorySortColumns = paging.Columns{
	"id":       "id",
	"skuCode":  "sku_code",
	"sku_code": "sku_code",
	"quantity": "quantity",
}

// inventoryGorm はInventoryRepositoryインターフェースのGORM実装です。
type inventoryGorm struct {
	db  *gorm.DB
	log *zap.Logger
}

var _ usecase.InventoryRepository = (*inventoryGorm)(nil)

// NewInventoryRepository は指定されたgorm.DB接続でinventoryGormの新しいインスタンスを生成します。
func NewInventoryRepository(db *gorm.DB, log *zap.Logger) *inventoryGorm {
	return &inventoryGorm{db: db, log: log}
}

// FindBySkuCodeIn は sku_code IN (...) に一致するレコードを返します。
// 並び順はストレージ依存です。入力が空の場合はクエリを発行せず空のスライスを返します。
func (r *inventoryGorm) FindBySkuCodeIn(ctx context.Context, skuCodes []string) ([]entity.Inventory, error) {
	if len(skuCodes) == 0 {
		return []entity.Inventory{}, nil
	}

	out := []entity.Inventory{}
	if err := r.db.WithContext(ctx).
		Where("sku_code IN ?", skuCodes).
		Find(&out).Error; err != nil {
		r.log.Error("failed to find inventory", zap.Strings("sku_codes", skuCodes), zap.Error(err))
		return nil, fmt.Errorf("find inventory by sku codes: %w", err)
	}
	return out, nil
}

// UpsertQuantity は sku_code の一意制約を使って在庫数を挿入または更新します。
func (r *inventoryGorm) UpsertQuantity(ctx context.Context, skuCode string, quantity int) (*entity.Inventory, error) {
	inv := entity.Inventory{SkuCode: skuCode, Quantity: quantity}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "sku_code"}},
			DoUpdates: clause.AssignmentColumns([]string{"quantity", "updated_at"}),
		}).Create(&inv).Error; err != nil {
			return err
		}
		// 競合時はIDが返らないドライバがあるため読み直す
		return tx.Where("sku_code = ?", skuCode).First(&inv).Error
	})
	if err != nil {
		r.log.Error("failed to upsert inventory", zap.String("sku_code", skuCode), zap.Error(err))
		return nil, fmt.Errorf("upsert inventory %s: %w", skuCode, err)
	}
	return &inv, nil
}

// Save は在庫レコードを追加または更新します。
func (r *inventoryGorm) Save(ctx context.Context, inv *entity.Inventory) error {
	if inv == nil {
		return errors.New("inventory is nil")
	}
	if err := r.db.WithContext(ctx).Save(inv).Error; err != nil {
		if db.IsUniqueViolation(err) {
			return usecase.ErrSkuCodeAlreadyExists
		}
		r.log.Error("failed to save inventory", zap.String("sku_code", inv.SkuCode), zap.Error(err))
		return fmt.Errorf("save inventory %s: %w", inv.SkuCode, err)
	}
	return nil
}

// FindByID はIDで在庫レコードを取得します。
func (r *inventoryGorm) FindByID(ctx context.Context, id uint) (*entity.Inventory, error) {
	var inv entity.Inventory
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&inv).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrInventoryNotFound
		}
		return nil, err
	}
	return &inv, nil
}

// FindAll は在庫レコードをページ単位で返します。並び順の指定が無ければid昇順です。
func (r *inventoryGorm) FindAll(ctx context.Context, req paging.PageRequest) (paging.Page[entity.Inventory], error) {
	if len(req.Sort) == 0 {
		req.Sort = []paging.Order{{Property: "id", Direction: paging.Asc}}
	}
	query := r.db.WithContext(ctx).Model(&entity.Inventory{})
	page, err := paging.FindPage[entity.Inventory](query, req, inventorySortColumns)
	if err != nil && !errors.Is(err, paging.ErrInvalidSortProperty) {
		r.log.Error("failed to list inventory", zap.Int("page", req.Page), zap.Error(err))
		return page, fmt.Errorf("list inventory: %w", err)
	}
	return page, err
}

// DeleteByID は在庫レコードを削除します。
func (r *inventoryGorm) DeleteByID(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&entity.Inventory{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrInventoryNotFound
	}
	return nil
}
