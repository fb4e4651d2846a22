package order_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/warehouse"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestItem(t *testing.T, quantity int, price int64) *order.OrderItem {
	t.Helper()
	item, err := order.NewOrderItem(kernel.NewUUID(), kernel.NewUUID(), quantity, price)
	require.NoError(t, err)
	return item
}

func newTestOrder(t *testing.T, items ...*order.OrderItem) *order.Order {
	t.Helper()
	if len(items) == 0 {
		items = []*order.OrderItem{newTestItem(t, 2, 100), newTestItem(t, 1, 250)}
	}
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewLocality("Rotterdam"), items)
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("creates order in collecting status served by general inventory", func(t *testing.T) {
		o := newTestOrder(t)

		assert.Equal(t, order.Collecting, o.Status())
		assert.Equal(t, warehouse.General, o.Warehouse())
		for _, item := range o.Items() {
			assert.Equal(t, order.AvailabilityUnknown, item.Availability())
			assert.Equal(t, order.RefundMarkNone, item.RefundMark())
		}
	})

	t.Run("rejects order without items", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewLocality(""), nil)

		assert.ErrorIs(t, err, order.ErrOrderHasNoItems)
	})

	t.Run("rejects invalid item quantity", func(t *testing.T) {
		_, err := order.NewOrderItem(kernel.NewUUID(), kernel.NewUUID(), 0, 100)

		require.Error(t, err)
	})

	t.Run("zero value order fails validation", func(t *testing.T) {
		var o order.Order

		assert.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestOrder_CompleteCollection(t *testing.T) {
	t.Run("settles all unknown items and completes", func(t *testing.T) {
		o := newTestOrder(t)

		settled, err := o.CompleteCollection()

		require.NoError(t, err)
		assert.Len(t, settled, 2)
		assert.Equal(t, order.Completed, o.Status())
		for _, item := range o.Items() {
			assert.Equal(t, order.AvailabilityAvailable, item.Availability())
		}
	})

	t.Run("skips items refunded by approve-without-product", func(t *testing.T) {
		kept := newTestItem(t, 2, 100)
		missing := newTestItem(t, 1, 250)
		o := newTestOrder(t, kept, missing)

		_, err := o.ReportMissing([]kernel.UUID{missing.ProductID()}, nil)
		require.NoError(t, err)
		_, err = o.ApproveWithoutMissing()
		require.NoError(t, err)

		settled, err := o.CompleteCollection()

		require.NoError(t, err)
		assert.Len(t, settled, 1)
		assert.True(t, settled[0].ProductID().IsEqual(kept.ProductID()))
		assert.Equal(t, order.Completed, o.Status())
		assert.Equal(t, order.AvailabilityRefunded, missing.Availability())
	})

	t.Run("rejects completion while a missing item is unresolved", func(t *testing.T) {
		missing, err := order.RestoreOrderItem(kernel.NewUUID(), kernel.NewUUID(), 1, 10,
			order.AvailabilityMissing, order.RefundMarkNone)
		require.NoError(t, err)
		now := time.Now().UTC()
		o, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewLocality(""),
			order.Collecting, warehouse.General, []*order.OrderItem{missing}, now, now,
		)
		require.NoError(t, err)

		_, err = o.CompleteCollection()
		assert.ErrorIs(t, err, order.ErrUnresolvedMissingItems)
		assert.Equal(t, order.Collecting, o.Status())
	})

	t.Run("rejects completion from terminal status", func(t *testing.T) {
		o := newTestOrder(t)
		_, err := o.Cancel()
		require.NoError(t, err)

		_, err = o.CompleteCollection()
		require.Error(t, err)
		assert.Equal(t, order.Cancelled, o.Status())
	})
}

func TestOrder_ReportMissing(t *testing.T) {
	t.Run("marks missing items and escalates", func(t *testing.T) {
		found := newTestItem(t, 2, 100)
		lost := newTestItem(t, 1, 250)
		o := newTestOrder(t, found, lost)

		pinned, err := o.ReportMissing(
			[]kernel.UUID{lost.ProductID()},
			[]kernel.UUID{found.ProductID()},
		)

		require.NoError(t, err)
		assert.Equal(t, order.Problem, o.Status())
		assert.Equal(t, order.AvailabilityMissing, lost.Availability())
		assert.Equal(t, order.AvailabilityAvailable, found.Availability())
		require.Len(t, pinned, 1)
		assert.True(t, pinned[0].ProductID().IsEqual(found.ProductID()))
	})

	t.Run("without pinned products the rest stays unknown", func(t *testing.T) {
		found := newTestItem(t, 2, 100)
		lost := newTestItem(t, 1, 250)
		o := newTestOrder(t, found, lost)

		pinned, err := o.ReportMissing([]kernel.UUID{lost.ProductID()}, nil)

		require.NoError(t, err)
		assert.Empty(t, pinned)
		assert.Equal(t, order.AvailabilityUnknown, found.Availability())
	})

	t.Run("rejects empty missing set", func(t *testing.T) {
		o := newTestOrder(t)

		_, err := o.ReportMissing(nil, nil)

		assert.ErrorIs(t, err, order.ErrNoMissingItemsReported)
		assert.Equal(t, order.Collecting, o.Status())
	})

	t.Run("rejects unknown product", func(t *testing.T) {
		o := newTestOrder(t)

		_, err := o.ReportMissing([]kernel.UUID{kernel.NewUUID()}, nil)

		require.Error(t, err)
	})

	t.Run("rejected as invalid outside collecting", func(t *testing.T) {
		o := newTestOrder(t)
		_, err := o.ReportMissing([]kernel.UUID{o.Items()[0].ProductID()}, nil)
		require.NoError(t, err)

		_, err = o.ReportMissing([]kernel.UUID{o.Items()[0].ProductID()}, nil)
		require.Error(t, err)
	})
}

func TestOrder_Recover(t *testing.T) {
	t.Run("flips missing items and records the warehouse", func(t *testing.T) {
		lost := newTestItem(t, 1, 250)
		o := newTestOrder(t, newTestItem(t, 2, 100), lost)
		_, err := o.ReportMissing([]kernel.UUID{lost.ProductID()}, nil)
		require.NoError(t, err)

		recovered, err := o.Recover(warehouse.ID("utrecht"))

		require.NoError(t, err)
		require.Len(t, recovered, 1)
		assert.Equal(t, order.Collecting, o.Status())
		assert.Equal(t, warehouse.ID("utrecht"), o.Warehouse())
		assert.Equal(t, order.AvailabilityAvailable, lost.Availability())
	})

	t.Run("empty warehouse keeps the current one", func(t *testing.T) {
		lost := newTestItem(t, 1, 250)
		o := newTestOrder(t, lost)
		_, err := o.ReportMissing([]kernel.UUID{lost.ProductID()}, nil)
		require.NoError(t, err)

		_, err = o.Recover("")

		require.NoError(t, err)
		assert.Equal(t, warehouse.General, o.Warehouse())
	})
}

func TestOrder_Cancel(t *testing.T) {
	t.Run("refunds every item without final mark", func(t *testing.T) {
		lost := newTestItem(t, 1, 250)
		found := newTestItem(t, 2, 100)
		o := newTestOrder(t, found, lost)
		_, err := o.ReportMissing([]kernel.UUID{lost.ProductID()}, []kernel.UUID{found.ProductID()})
		require.NoError(t, err)

		updated, err := o.Cancel()

		require.NoError(t, err)
		assert.Equal(t, 2, updated)
		assert.Equal(t, order.Cancelled, o.Status())
		for _, item := range o.Items() {
			assert.Equal(t, order.RefundMarkRefunded, item.RefundMark())
			assert.Equal(t, order.AvailabilityRefunded, item.Availability())
		}
	})

	t.Run("never overwrites a final refund mark", func(t *testing.T) {
		id := kernel.NewUUID()
		final, err := order.RestoreOrderItem(id, kernel.NewUUID(), 1, 100,
			order.AvailabilityRefunded, order.RefundMarkRefundedFinal)
		require.NoError(t, err)
		o := newTestOrder(t, final, newTestItem(t, 1, 50))

		updated, err := o.Cancel()

		require.NoError(t, err)
		assert.Equal(t, 1, updated)
		assert.Equal(t, order.RefundMarkRefundedFinal, final.RefundMark())
	})
}

func TestOrder_ApproveWithoutMissing(t *testing.T) {
	lost := newTestItem(t, 1, 250)
	found := newTestItem(t, 2, 100)
	o := newTestOrder(t, found, lost)
	_, err := o.ReportMissing([]kernel.UUID{lost.ProductID()}, []kernel.UUID{found.ProductID()})
	require.NoError(t, err)

	updated, err := o.ApproveWithoutMissing()

	require.NoError(t, err)
	assert.Equal(t, 1, updated)
	assert.Equal(t, order.Collecting, o.Status())
	assert.Equal(t, order.RefundMarkRefunded, lost.RefundMark())
	assert.Equal(t, order.RefundMarkNone, found.RefundMark())
	assert.Equal(t, found.Subtotal(), o.ChargeableTotal())
}

func TestOrder_Wait(t *testing.T) {
	lost := newTestItem(t, 1, 250)
	o := newTestOrder(t, lost)
	_, err := o.ReportMissing([]kernel.UUID{lost.ProductID()}, nil)
	require.NoError(t, err)

	require.NoError(t, o.Wait())

	assert.Equal(t, order.Waiting, o.Status())
	assert.Equal(t, order.AvailabilityMissing, lost.Availability())
	assert.Equal(t, order.RefundMarkNone, lost.RefundMark())
}

func TestOrder_MissingRequirements(t *testing.T) {
	lost := newTestItem(t, 3, 250)
	refunded := newTestItem(t, 1, 100)
	o := newTestOrder(t, lost, refunded, newTestItem(t, 2, 50))
	_, err := o.ReportMissing([]kernel.UUID{lost.ProductID(), refunded.ProductID()}, nil)
	require.NoError(t, err)

	reqs := o.MissingRequirements()
	assert.Len(t, reqs, 2)

	// A refunded missing item drops out of the requirement set.
	require.NoError(t, o.Wait())
	_, err = o.ApproveWithoutMissing()
	require.NoError(t, err)
	assert.Empty(t, o.MissingRequirements())
}

func TestOrder_ChargeableTotal(t *testing.T) {
	a := newTestItem(t, 2, 100) // 200
	b := newTestItem(t, 1, 250) // 250
	o := newTestOrder(t, a, b)

	assert.Equal(t, int64(450), o.ChargeableTotal())

	_, err := o.ReportMissing([]kernel.UUID{b.ProductID()}, nil)
	require.NoError(t, err)
	_, err = o.ApproveWithoutMissing()
	require.NoError(t, err)

	assert.Equal(t, int64(200), o.ChargeableTotal())
}

func TestRestoreOrder(t *testing.T) {
	t.Run("restores a persisted order", func(t *testing.T) {
		item, err := order.RestoreOrderItem(kernel.NewUUID(), kernel.NewUUID(), 2, 100,
			order.AvailabilityMissing, order.RefundMarkNone)
		require.NoError(t, err)

		now := time.Now().UTC()
		o, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewLocality("amsterdam"),
			order.Problem, warehouse.General, []*order.OrderItem{item}, now, now,
		)

		require.NoError(t, err)
		assert.Equal(t, order.Problem, o.Status())
	})

	t.Run("rejects invalid status", func(t *testing.T) {
		item := newTestItem(t, 1, 10)
		now := time.Now().UTC()

		_, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewLocality(""),
			order.Unknown, warehouse.General, []*order.OrderItem{item}, now, now,
		)

		require.Error(t, err)
	})
}
