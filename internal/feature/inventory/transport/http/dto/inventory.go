// Package dto はinventoryフィーチャーのHTTPトランスポート層のデータ転送オブジェクトを定義します。
package dto

import (
	"time"

	"shop_backend/internal/feature/inventory/domain/entity"
)

// StockQuery は GET /api/inventory?skuCode=a&skuCode=b のクエリです。
type StockQuery struct {
	SkuCodes []string `form:"skuCode" binding:"required,min=1,max=100,dive,skucode"`
}

// SkuCodeURI は /api/inventory/:skuCode のパスパラメータです。
type SkuCodeURI struct {
	SkuCode string `uri:"skuCode" binding:"required,skucode"`
}

// RestockReq は在庫数設定のリクエストボディです。0は在庫切れを表します。
type RestockReq struct {
	Quantity *int `json:"quantity" binding:"required,min=0"`
}

// StockStatusResponse はSKUの在庫有無です。
type StockStatusResponse struct {
	SkuCode string `json:"sku_code"`
	InStock bool   `json:"in_stock"`
}

// InventoryResponse は在庫レコードです。
type InventoryResponse struct {
	ID        uint      `json:"id"`
	SkuCode   string    `json:"sku_code"`
	Quantity  int       `json:"quantity"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewStockStatusResponse はentity.StockStatusを変換します。
func NewStockStatusResponse(s entity.StockStatus) StockStatusResponse {
	return StockStatusResponse{SkuCode: s.SkuCode, InStock: s.InStock}
}

// NewInventoryResponse はentity.Inventoryを変換します。
func NewInventoryResponse(inv entity.Inventory) InventoryResponse {
	return InventoryResponse{
		ID:        inv.ID,
		SkuCode:   inv.SkuCode,
		Quantity:  inv.Quantity,
		UpdatedAt: inv.UpdatedAt,
	}
}
