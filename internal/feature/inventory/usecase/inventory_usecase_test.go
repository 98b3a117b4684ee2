package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shop_backend/internal/feature/inventory/domain/entity"
)

// mockInventoryRepository is a mock implementation of the InventoryRepository interface.
type mockInventoryRepository struct {
	FindBySkuCodeInFunc func(ctx context.Context, skuCodes []string) ([]entity.Inventory, error)
	UpsertQuantityFunc  func(ctx context.Context, skuCode string, quantity int) (*entity.Inventory, error)
}

func (m *mockInventoryRepository) FindBySkuCodeIn(ctx context.Context, skuCodes []string) ([]entity.Inventory, error) {
	if m.FindBySkuCodeInFunc != nil {
		return m.FindBySkuCodeInFunc(ctx, skuCodes)
	}
	return []entity.Inventory{}, nil
}

func (m *mockInventoryRepository) UpsertQuantity(ctx context.Context, skuCode string, quantity int) (*entity.Inventory, error) {
	if m.UpsertQuantityFunc != nil {
		return m.UpsertQuantityFunc(ctx, skuCode, quantity)
	}
	return &entity.Inventory{ID: 1, SkuCode: skuCode, Quantity: quantity}, nil
}

func TestInventoryUsecase_IsInStock(t *testing.T) {
	stock := map[string]int{"SKU1": 3, "SKU2": 0}
	repo := &mockInventoryRepository{
		FindBySkuCodeInFunc: func(ctx context.Context, skuCodes []string) ([]entity.Inventory, error) {
			var out []entity.Inventory
			// storage order differs from input order
			for i := len(skuCodes) - 1; i >= 0; i-- {
				if q, ok := stock[skuCodes[i]]; ok {
					out = append(out, entity.Inventory{SkuCode: skuCodes[i], Quantity: q})
				}
			}
			return out, nil
		},
	}

	tests := []struct {
		name     string
		input    []string
		expected []entity.StockStatus
	}{
		{
			name:  "quantity decides stock",
			input: []string{"SKU1", "SKU2"},
			expected: []entity.StockStatus{
				{SkuCode: "SKU1", InStock: true},
				{SkuCode: "SKU2", InStock: false},
			},
		},
		{
			name:  "duplicates and blanks collapse",
			input: []string{"SKU2", " ", "SKU1", "SKU2", " SKU1 "},
			expected: []entity.StockStatus{
				{SkuCode: "SKU2", InStock: false},
				{SkuCode: "SKU1", InStock: true},
			},
		},
		{
			name:     "unmatched sku is absent",
			input:    []string{"SKU1", "MISSING"},
			expected: []entity.StockStatus{{SkuCode: "SKU1", InStock: true}},
		},
		{
			name:     "empty input",
			input:    nil,
			expected: []entity.StockStatus{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewInventoryUsecase(repo).IsInStock(context.Background(), tt.input)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestInventoryUsecase_IsInStock_QueriesDistinctCodes(t *testing.T) {
	var queried []string
	repo := &mockInventoryRepository{
		FindBySkuCodeInFunc: func(ctx context.Context, skuCodes []string) ([]entity.Inventory, error) {
			queried = skuCodes
			return nil, nil
		},
	}

	_, err := NewInventoryUsecase(repo).IsInStock(context.Background(), []string{"A", "B", "A"})

	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, queried)
}

func TestInventoryUsecase_IsInStock_RepositoryError(t *testing.T) {
	dbErr := errors.New("db down")
	repo := &mockInventoryRepository{
		FindBySkuCodeInFunc: func(ctx context.Context, skuCodes []string) ([]entity.Inventory, error) {
			return nil, dbErr
		},
	}

	_, err := NewInventoryUsecase(repo).IsInStock(context.Background(), []string{"A"})

	assert.ErrorIs(t, err, dbErr)
}

func TestInventoryUsecase_Restock(t *testing.T) {
	uc := NewInventoryUsecase(&mockInventoryRepository{})

	inv, err := uc.Restock(context.Background(), " SKU1 ", 4)
	require.NoError(t, err)
	assert.Equal(t, "SKU1", inv.SkuCode)
	assert.Equal(t, 4, inv.Quantity)

	_, err = uc.Restock(context.Background(), "  ", 4)
	assert.ErrorIs(t, err, ErrInvalidSkuCode)

	_, err = uc.Restock(context.Background(), "SKU1", -1)
	assert.ErrorIs(t, err, ErrInvalidQuantity)
}
