package adapters

import (
	"context"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"shop_backend/internal/feature/inventory/domain/entity"
	"shop_backend/internal/feature/inventory/usecase"
	platformdb "shop_backend/internal/platform/db"
	"shop_backend/internal/shared/paging"
)

// setupTestDB prepares an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), platformdb.GormConfig())
	require.NoError(t, err, "failed to initialize test database")
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&entity.Inventory{}), "failed to migrate inventory table")
	return db
}

func newSeededRepo(t *testing.T, seed map[string]int) *inventoryGorm {
	t.Helper()

	repo := NewInventoryRepository(setupTestDB(t), zap.NewNop())
	for _, sku := range sortedKeys(seed) {
		require.NoError(t, repo.Save(context.Background(), &entity.Inventory{SkuCode: sku, Quantity: seed[sku]}))
	}
	return repo
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func skuCodes(items []entity.Inventory) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.SkuCode)
	}
	return out
}

func TestInventoryGorm_FindBySkuCodeIn(t *testing.T) {
	t.Parallel()

	seed := map[string]int{"SKU1": 5, "SKU2": 0, "SKU3": 12}

	tests := []struct {
		name     string
		input    []string
		expected []string
	}{
		{"duplicates collapse", []string{"SKU1", "SKU2", "SKU1"}, []string{"SKU1", "SKU2"}},
		{"unmatched codes are omitted", []string{"SKU3", "NOPE"}, []string{"SKU3"}},
		{"nothing matches", []string{"X", "Y"}, []string{}},
		{"empty input", []string{}, []string{}},
		{"nil input", nil, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			repo := newSeededRepo(t, seed)

			got, err := repo.FindBySkuCodeIn(context.Background(), tt.input)

			require.NoError(t, err)
			assert.NotNil(t, got)
			assert.ElementsMatch(t, tt.expected, skuCodes(got))
		})
	}
}

func TestInventoryGorm_FindBySkuCodeIn_Quantities(t *testing.T) {
	t.Parallel()

	repo := newSeededRepo(t, map[string]int{"SKU1": 5, "SKU2": 0})

	got, err := repo.FindBySkuCodeIn(context.Background(), []string{"SKU1", "SKU2"})

	require.NoError(t, err)
	bySku := map[string]int{}
	for _, inv := range got {
		bySku[inv.SkuCode] = inv.Quantity
	}
	assert.Equal(t, map[string]int{"SKU1": 5, "SKU2": 0}, bySku)
}

func TestInventoryGorm_UpsertQuantity(t *testing.T) {
	t.Parallel()

	repo := newSeededRepo(t, map[string]int{"SKU1": 5})
	ctx := context.Background()

	created, err := repo.UpsertQuantity(ctx, "SKU9", 3)
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, 3, created.Quantity)

	existing, err := repo.FindBySkuCodeIn(ctx, []string{"SKU1"})
	require.NoError(t, err)
	require.Len(t, existing, 1)

	updated, err := repo.UpsertQuantity(ctx, "SKU1", 0)
	require.NoError(t, err)
	assert.Equal(t, existing[0].ID, updated.ID, "upsert must keep the row")
	assert.Equal(t, 0, updated.Quantity)

	page, err := repo.FindAll(ctx, paging.NewPageRequest(0, 10))
	require.NoError(t, err)
	assert.Equal(t, int64(2), page.TotalElements)
}

func TestInventoryGorm_Save_DuplicateSku(t *testing.T) {
	t.Parallel()

	repo := newSeededRepo(t, map[string]int{"SKU1": 5})

	err := repo.Save(context.Background(), &entity.Inventory{SkuCode: "SKU1", Quantity: 1})

	assert.ErrorIs(t, err, usecase.ErrSkuCodeAlreadyExists)
}

func TestInventoryGorm_FindByID(t *testing.T) {
	t.Parallel()

	repo := newSeededRepo(t, nil)
	inv := &entity.Inventory{SkuCode: "SKU1", Quantity: 2}
	require.NoError(t, repo.Save(context.Background(), inv))

	found, err := repo.FindByID(context.Background(), inv.ID)
	require.NoError(t, err)
	assert.Equal(t, "SKU1", found.SkuCode)

	_, err = repo.FindByID(context.Background(), inv.ID+100)
	assert.ErrorIs(t, err, usecase.ErrInventoryNotFound)
}

func TestInventoryGorm_FindAll(t *testing.T) {
	t.Parallel()

	repo := newSeededRepo(t, map[string]int{"A": 1, "B": 9, "C": 4})
	ctx := context.Background()

	byID, err := repo.FindAll(ctx, paging.NewPageRequest(0, 2))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, skuCodes(byID.Content))
	assert.Equal(t, 2, byID.TotalPages)

	byQuantity, err := repo.FindAll(ctx, paging.NewPageRequest(0, 10, paging.Order{Property: "quantity", Direction: paging.Desc}))
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "C", "A"}, skuCodes(byQuantity.Content))

	_, err = repo.FindAll(ctx, paging.NewPageRequest(0, 10, paging.Order{Property: "price"}))
	assert.ErrorIs(t, err, paging.ErrInvalidSortProperty)
}

func TestInventoryGorm_DeleteByID(t *testing.T) {
	t.Parallel()

	repo := newSeededRepo(t, nil)
	inv := &entity.Inventory{SkuCode: "SKU1", Quantity: 2}
	require.NoError(t, repo.Save(context.Background(), inv))

	require.NoError(t, repo.DeleteByID(context.Background(), inv.ID))
	assert.ErrorIs(t, repo.DeleteByID(context.Background(), inv.ID), usecase.ErrInventoryNotFound)
}
