package usecase

import (
	"context"
	"fmt"
	"strings"

	"shop_backend/internal/feature/inventory/domain/entity"
)

// InventoryRepository はinventoryの永続化層を抽象化します。
// キャッシュ付きの実装（platform/cache）とGORM実装の両方がこれを満たします。
type InventoryRepository interface {
	// FindBySkuCodeIn は指定されたSKUコードのいずれかに一致するレコードを返します。
	// 一致しないコードは結果に含まれず、重複したコードは1件にまとまります。
	FindBySkuCodeIn(ctx context.Context, skuCodes []string) ([]entity.Inventory, error)

	// UpsertQuantity はSKUの在庫数を設定し、レコードが無ければ作成します。
	UpsertQuantity(ctx context.Context, skuCode string, quantity int) (*entity.Inventory, error)
}

// InventoryUsecase は在庫照会と補充を提供します。
type InventoryUsecase struct {
	repo InventoryRepository
}

// NewInventoryUsecase はInventoryUsecaseの新しいインスタンスを生成します。
func NewInventoryUsecase(repo InventoryRepository) *InventoryUsecase {
	return &InventoryUsecase{repo: repo}
}

// IsInStock は一致したSKUごとに在庫有無を返します。
// 空白のコードは無視し、重複は1件にまとめます。一致しないSKUは結果に含まれません。
// 結果は入力で最初に現れた順に並びます。
func (u *InventoryUsecase) IsInStock(ctx context.Context, skuCodes []string) ([]entity.StockStatus, error) {
	codes := normalizeSkuCodes(skuCodes)
	if len(codes) == 0 {
		return []entity.StockStatus{}, nil
	}

	found, err := u.repo.FindBySkuCodeIn(ctx, codes)
	if err != nil {
		return nil, fmt.Errorf("find inventory: %w", err)
	}

	bySku := make(map[string]entity.Inventory, len(found))
	for _, inv := range found {
		bySku[inv.SkuCode] = inv
	}
	out := make([]entity.StockStatus, 0, len(found))
	for _, code := range codes {
		inv, ok := bySku[code]
		if !ok {
			continue
		}
		out = append(out, entity.StockStatus{SkuCode: code, InStock: inv.InStock()})
	}
	return out, nil
}

// Restock はSKUの在庫数を設定します。
func (u *InventoryUsecase) Restock(ctx context.Context, skuCode string, quantity int) (*entity.Inventory, error) {
	skuCode = strings.TrimSpace(skuCode)
	if skuCode == "" {
		return nil, ErrInvalidSkuCode
	}
	if quantity < 0 {
		return nil, ErrInvalidQuantity
	}
	return u.repo.UpsertQuantity(ctx, skuCode, quantity)
}

func normalizeSkuCodes(skuCodes []string) []string {
	seen := make(map[string]struct{}, len(skuCodes))
	out := make([]string, 0, len(skuCodes))
	for _, c := range skuCodes {
		c = strings.TrimSpace(c)
		if c == "" {
			continue
		}
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out
}
