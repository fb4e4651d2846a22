package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/warehouse"
)

// InventoryRepository defines the persistence contract for per-warehouse stock.
// It satisfies services.InventoryReader.
type InventoryRepository interface {
	// Quantity returns the stock of a product in a warehouse. An absent row
	// reads as zero.
	Quantity(ctx context.Context, warehouseID warehouse.ID, productID kernel.UUID) (int, error)

	// Decrement atomically subtracts quantity from a stock row, failing with
	// an InsufficientStockError when the row holds less than requested (or is
	// absent). The subtraction is conditional at the storage level so
	// concurrent decrements never drive stock negative.
	Decrement(ctx context.Context, warehouseID warehouse.ID, productID kernel.UUID, quantity int) error

	// Upsert sets the absolute stock of a product in a warehouse.
	// Used by replenishment-side code and test fixtures.
	Upsert(ctx context.Context, warehouseID warehouse.ID, productID kernel.UUID, quantity int) error
}
