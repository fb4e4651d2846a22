package commands_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/problem"
	"fulfillment/internal/core/domain/model/warehouse"

	"github.com/stretchr/testify/require"
)

func newItem(t *testing.T, productID kernel.UUID, quantity int) *order.OrderItem {
	t.Helper()
	item, err := order.NewOrderItem(kernel.NewUUID(), productID, quantity, 250)
	require.NoError(t, err)
	return item
}

func restoreItem(
	t *testing.T, productID kernel.UUID, quantity int,
	availability order.Availability, refundMark order.RefundMark,
) *order.OrderItem {
	t.Helper()
	item, err := order.RestoreOrderItem(kernel.NewUUID(), productID, quantity, 250, availability, refundMark)
	require.NoError(t, err)
	return item
}

func newCollectingOrder(t *testing.T, items ...*order.OrderItem) *order.Order {
	t.Helper()
	aggregate, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewLocality("rotterdam"), items)
	require.NoError(t, err)
	return aggregate
}

func newPendingRecord(t *testing.T, orderID, productID kernel.UUID) *problem.Record {
	t.Helper()
	record, err := problem.NewRecord(orderID, productID, kernel.NewUUID(), kernel.NewUUID(), "")
	require.NoError(t, err)
	return record
}

func restoreOrder(t *testing.T, status order.Status, items ...*order.OrderItem) *order.Order {
	t.Helper()
	now := time.Now().UTC()
	aggregate, err := order.RestoreOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewLocality("rotterdam"),
		status, warehouse.General, items, now, now,
	)
	require.NoError(t, err)
	return aggregate
}
