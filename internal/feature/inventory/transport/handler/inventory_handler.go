// Package handler はinventoryフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"shop_backend/internal/feature/inventory/domain/entity"
	"shop_backend/internal/feature/inventory/transport/http/dto"
	"shop_backend/internal/feature/inventory/usecase"
	"shop_backend/internal/shared/response"
)

// InventoryUsecase は在庫操作のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type InventoryUsecase interface {
	IsInStock(ctx context.Context, skuCodes []string) ([]entity.StockStatus, error)
	Restock(ctx context.Context, skuCode string, quantity int) (*entity.Inventory, error)
}

// InventoryHandler は在庫のHTTPリクエストを処理します。
type InventoryHandler struct {
	uc  InventoryUsecase
	log *zap.Logger
}

// NewInventoryHandler は指定されたusecaseでInventoryHandlerの新しいインスタンスを生成します。
func NewInventoryHandler(uc InventoryUsecase, log *zap.Logger) *InventoryHandler {
	return &InventoryHandler{uc: uc, log: log}
}

// IsInStock は指定されたSKUごとの在庫有無を返します。
//
// エンドポイント例:
// GET /api/inventory?skuCode=iphone_13&skuCode=iphone_13_red
func (h *InventoryHandler) IsInStock(c *gin.Context) {
	var q dto.StockQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid skuCode"})
		return
	}

	statuses, err := h.uc.IsInStock(c.Request.Context(), q.SkuCodes)
	if err != nil {
		h.log.Error("failed to check stock", zap.Strings("sku_codes", q.SkuCodes), zap.Error(err))
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "internal server error"})
		return
	}

	out := make([]dto.StockStatusResponse, 0, len(statuses))
	for _, s := range statuses {
		out = append(out, dto.NewStockStatusResponse(s))
	}
	c.JSON(http.StatusOK, out)
}

// Restock はSKUの在庫数を設定します。
//
// エンドポイント例:
// PUT /api/inventory/iphone_13 {"quantity": 100}
func (h *InventoryHandler) Restock(c *gin.Context) {
	var uri dto.SkuCodeURI
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid skuCode"})
		return
	}
	var req dto.RestockReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid request"})
		return
	}

	inv, err := h.uc.Restock(c.Request.Context(), uri.SkuCode, *req.Quantity)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidSkuCode) || errors.Is(err, usecase.ErrInvalidQuantity) {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
			return
		}
		h.log.Error("failed to restock", zap.String("sku_code", uri.SkuCode), zap.Error(err))
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "internal server error"})
		return
	}
	h.log.Info("inventory restocked", zap.String("sku_code", inv.SkuCode), zap.Int("quantity", inv.Quantity))
	c.JSON(http.StatusOK, dto.NewInventoryResponse(*inv))
}
