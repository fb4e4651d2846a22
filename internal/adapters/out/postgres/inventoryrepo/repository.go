package inventoryrepo

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/warehouse"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormInventoryRepository implements InventoryRepository using GORM.
type GormInventoryRepository struct {
	db *gorm.DB
}

// NewGormInventoryRepository creates a new GORM inventory repository.
func NewGormInventoryRepository(db *gorm.DB) *GormInventoryRepository {
	return &GormInventoryRepository{db: db}
}

// Quantity returns the stock of a product in a warehouse. An absent row reads as zero.
func (r *GormInventoryRepository) Quantity(
	ctx context.Context, warehouseID warehouse.ID, productID kernel.UUID,
) (int, error) {
	if err := warehouseID.Validate(); err != nil {
		return 0, err
	}
	if err := productID.Validate(); err != nil {
		return 0, err
	}

	var dto StockDTO
	err := r.db.WithContext(ctx).
		First(&dto, "warehouse_id = ? AND product_id = ?", warehouseID.String(), productID.Bytes()).
		Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}

	return dto.Quantity, nil
}

// Decrement atomically subtracts quantity from a stock row. The subtraction is
// guarded by a quantity check in the WHERE clause, so a concurrent decrement
// can never drive the row negative; the loser reads the current quantity and
// reports it in the InsufficientStockError.
func (r *GormInventoryRepository) Decrement(
	ctx context.Context, warehouseID warehouse.ID, productID kernel.UUID, quantity int,
) error {
	if err := warehouseID.Validate(); err != nil {
		return err
	}
	if err := productID.Validate(); err != nil {
		return err
	}
	if quantity <= 0 {
		return errs.NewValueIsInvalidError("quantity must be positive")
	}

	result := r.db.WithContext(ctx).
		Model(&StockDTO{}).
		Where("warehouse_id = ? AND product_id = ? AND quantity >= ?",
			warehouseID.String(), productID.Bytes(), quantity).
		UpdateColumn("quantity", gorm.Expr("quantity - ?", quantity))
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		available, err := r.Quantity(ctx, warehouseID, productID)
		if err != nil {
			return err
		}
		return errs.NewInsufficientStockError(
			warehouseID.String(), productID.String(), quantity, available,
		)
	}

	return nil
}

// Upsert sets the absolute stock of a product in a warehouse.
func (r *GormInventoryRepository) Upsert(
	ctx context.Context, warehouseID warehouse.ID, productID kernel.UUID, quantity int,
) error {
	if err := warehouseID.Validate(); err != nil {
		return err
	}
	if err := productID.Validate(); err != nil {
		return err
	}
	if quantity < 0 {
		return errs.NewValueIsInvalidError("quantity must not be negative")
	}

	dto := StockDTO{
		WarehouseID: warehouseID.String(),
		ProductID:   productID.Bytes(),
		Quantity:    quantity,
	}

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "warehouse_id"}, {Name: "product_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"quantity"}),
		}).
		Create(&dto).Error
}
