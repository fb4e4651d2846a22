package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderStatusQueryHandler reads one order's fulfillment state from the database.
// Joins the order row with its line items in a single round trip.
//
// Example:
//
//	handler := NewGetOrderStatusQueryHandler(db)
//	query, _ := NewGetOrderStatusQuery(orderID)
//
//	status, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // unknown order
//	}
type GetOrderStatusQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderStatusQueryHandler creates a handler for order status queries.
// Requires a GORM database connection for query execution.
func NewGetOrderStatusQueryHandler(db *gorm.DB) GetOrderStatusQueryHandler {
	return GetOrderStatusQueryHandler{db: db}
}

// Handle executes the status query for one order.
// Returns an ObjectNotFoundError when the order does not exist. Items are
// sorted by product ID for consistent output.
func (h GetOrderStatusQueryHandler) Handle(
	ctx context.Context,
	query GetOrderStatusQuery,
) (GetOrderStatusQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderStatusQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.status,
			o.warehouse_id,
			i.product_id,
			i.quantity,
			i.unit_price,
			i.availability,
			i.refund_mark
		FROM orders o
		JOIN order_items i ON i.order_id = o.id
		WHERE o.id = ?
		ORDER BY i.product_id
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return GetOrderStatusQueryResponse{}, err
	}
	defer rows.Close()

	response := GetOrderStatusQueryResponse{ID: query.OrderID()}

	for rows.Next() {
		var (
			status       int
			warehouseID  string
			productID    uuid.UUID
			quantity     int
			unitPrice    int64
			availability int
			refundMark   int
		)

		if err = rows.Scan(
			&status, &warehouseID, &productID, &quantity, &unitPrice, &availability, &refundMark,
		); err != nil {
			return GetOrderStatusQueryResponse{}, err
		}

		response.Status = order.Status(status)
		response.WarehouseID = warehouseID

		product, idErr := kernel.UUIDFromBytes(productID[:])
		if idErr != nil {
			return GetOrderStatusQueryResponse{}, idErr
		}

		response.Items = append(response.Items, OrderStatusItemResponse{
			ProductID:    product,
			Quantity:     quantity,
			UnitPrice:    unitPrice,
			Availability: order.Availability(availability),
			RefundMark:   order.RefundMark(refundMark),
		})
	}

	if err = rows.Err(); err != nil {
		return GetOrderStatusQueryResponse{}, err
	}

	// An order always has at least one item, so zero rows means no order.
	if len(response.Items) == 0 {
		return GetOrderStatusQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}

	return response, nil
}
