// Package inventoryrepo provides persistence for per-warehouse product stock.
// Stock rows are keyed by (warehouse, product); an absent row means zero stock.
package inventoryrepo

import (
	"github.com/google/uuid"
)

// StockDTO represents one warehouse's stock of one product.
type StockDTO struct {
	WarehouseID string    `gorm:"primaryKey"`
	ProductID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Quantity    int
}

// TableName specifies the database table name for stock rows.
func (StockDTO) TableName() string {
	return "warehouse_stock"
}
