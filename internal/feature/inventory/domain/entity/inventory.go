// Package entity はinventoryフィーチャーのドメインエンティティを定義します。
package entity

import "time"

// Inventory はSKUごとの在庫数を表します。SKUコードはスキーマ上で一意です。
type Inventory struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	SkuCode   string    `gorm:"size:64;not null;uniqueIndex" json:"sku_code"`
	Quantity  int       `gorm:"not null" json:"quantity"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName はGORMで使用するテーブル名を指定します。
func (Inventory) TableName() string {
	return "tbl_inventory"
}

// InStock は在庫が1以上あるかを返します。
func (i Inventory) InStock() bool {
	return i.Quantity > 0
}

// StockStatus はSKUの在庫有無です。
type StockStatus struct {
	SkuCode string
	InStock bool
}
