package commands_test

import (
	"errors"
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/warehouse"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCompleteCollectionCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	productID := kernel.NewUUID()
	testOrder := newCollectingOrder(t, newItem(t, productID, 3))
	cmd, err := commands.NewCompleteCollectionCommand(testOrder.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	inventoryRepo := new(MockInventoryRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("InventoryRepository").Return(inventoryRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		inventoryRepo.On("Decrement", ctx, warehouse.General, productID, 3).Return(nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order"), order.Collecting).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCollectionUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCompleteCollectionCommandHandler(factory)
	result, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Completed, testOrder.Status())
	assert.Equal(t, order.Completed, result.Status)
	assert.Equal(t, 1, result.ItemsSettled)
	orderRepo.AssertExpectations(t)
	inventoryRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCompleteCollectionCommandHandler_Handle_SettledItemsSkipDecrement(t *testing.T) {
	ctx := t.Context()

	// One item already confirmed, one refunded: neither is decremented again.
	confirmed := restoreItem(t, kernel.NewUUID(), 2, order.AvailabilityAvailable, order.RefundMarkNone)
	refunded := restoreItem(t, kernel.NewUUID(), 1, order.AvailabilityRefunded, order.RefundMarkRefunded)
	testOrder := restoreOrder(t, order.Collecting, confirmed, refunded)
	cmd, err := commands.NewCompleteCollectionCommand(testOrder.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	inventoryRepo := new(MockInventoryRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("InventoryRepository").Return(inventoryRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order"), order.Collecting).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCollectionUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCompleteCollectionCommandHandler(factory)
	result, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Zero(t, result.ItemsSettled)
	inventoryRepo.AssertNotCalled(t, "Decrement", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCompleteCollectionCommandHandler_Handle_InvalidTransition(t *testing.T) {
	ctx := t.Context()

	testOrder := restoreOrder(t, order.Waiting, newItem(t, kernel.NewUUID(), 1))
	cmd, err := commands.NewCompleteCollectionCommand(testOrder.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	inventoryRepo := new(MockInventoryRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("InventoryRepository").Return(inventoryRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCollectionUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCompleteCollectionCommandHandler(factory)
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInvalidTransition)
	assert.Equal(t, order.Waiting, testOrder.Status())
	orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestCompleteCollectionCommandHandler_Handle_UnresolvedMissingItems(t *testing.T) {
	ctx := t.Context()

	missing := restoreItem(t, kernel.NewUUID(), 1, order.AvailabilityMissing, order.RefundMarkNone)
	testOrder := restoreOrder(t, order.Collecting, missing)
	cmd, err := commands.NewCompleteCollectionCommand(testOrder.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	inventoryRepo := new(MockInventoryRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("InventoryRepository").Return(inventoryRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCollectionUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCompleteCollectionCommandHandler(factory)
	_, err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, order.ErrUnresolvedMissingItems)
}

func TestCompleteCollectionCommandHandler_Handle_InsufficientStock(t *testing.T) {
	ctx := t.Context()

	productID := kernel.NewUUID()
	testOrder := newCollectingOrder(t, newItem(t, productID, 5))
	cmd, err := commands.NewCompleteCollectionCommand(testOrder.ID())
	require.NoError(t, err)

	stockErr := errs.NewInsufficientStockError(warehouse.General.String(), productID.String(), 5, 2)

	orderRepo := new(MockOrderRepository)
	inventoryRepo := new(MockInventoryRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("InventoryRepository").Return(inventoryRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		inventoryRepo.On("Decrement", ctx, warehouse.General, productID, 5).Return(stockErr).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCollectionUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCompleteCollectionCommandHandler(factory)
	_, err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrInsufficientStock)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestCompleteCollectionCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CompleteCollectionCommand{} // not constructed properly

	factory := new(MockCollectionUoWFactory)
	handler := commands.NewCompleteCollectionCommandHandler(factory)
	_, err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrCompleteCollectionCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestCompleteCollectionCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCompleteCollectionCommand(kernel.NewUUID())
	require.NoError(t, err)

	uow := new(MockUoW)
	factory := new(MockCollectionUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	handler := commands.NewCompleteCollectionCommandHandler(factory)
	_, err = handler.Handle(ctx, cmd)

	require.EqualError(t, err, "begin error")
}
