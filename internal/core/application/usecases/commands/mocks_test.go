package commands_test

import (
	"context"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/problem"
	"fulfillment/internal/core/domain/model/warehouse"
	"fulfillment/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order, expected order.Status) error {
	args := m.Called(ctx, o, expected)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockProblemRepository struct{ mock.Mock }

func (m *MockProblemRepository) Add(ctx context.Context, r *problem.Record) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockProblemRepository) Update(ctx context.Context, r *problem.Record) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockProblemRepository) GetPendingByOrderID(ctx context.Context, orderID kernel.UUID) ([]*problem.Record, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*problem.Record), args.Error(1)
}

type MockInventoryRepository struct{ mock.Mock }

func (m *MockInventoryRepository) Quantity(ctx context.Context, warehouseID warehouse.ID, productID kernel.UUID) (int, error) {
	args := m.Called(ctx, warehouseID, productID)
	return args.Int(0), args.Error(1)
}

func (m *MockInventoryRepository) Decrement(ctx context.Context, warehouseID warehouse.ID, productID kernel.UUID, quantity int) error {
	args := m.Called(ctx, warehouseID, productID, quantity)
	return args.Error(0)
}

func (m *MockInventoryRepository) Upsert(ctx context.Context, warehouseID warehouse.ID, productID kernel.UUID, quantity int) error {
	args := m.Called(ctx, warehouseID, productID, quantity)
	return args.Error(0)
}

// MockUoW satisfies every unit-of-work composition used by the handlers.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) ProblemRepository() ports.ProblemRepository {
	args := m.Called()
	return args.Get(0).(ports.ProblemRepository)
}

func (m *MockUoW) InventoryRepository() ports.InventoryRepository {
	args := m.Called()
	return args.Get(0).(ports.InventoryRepository)
}

type MockCollectionUoWFactory struct{ mock.Mock }

func (m *MockCollectionUoWFactory) Create() commands.CollectionUoW {
	args := m.Called()
	return args.Get(0).(commands.CollectionUoW)
}

type MockEscalationUoWFactory struct{ mock.Mock }

func (m *MockEscalationUoWFactory) Create() commands.EscalationUoW {
	args := m.Called()
	return args.Get(0).(commands.EscalationUoW)
}

type MockResolutionUoWFactory struct{ mock.Mock }

func (m *MockResolutionUoWFactory) Create() commands.ResolutionUoW {
	args := m.Called()
	return args.Get(0).(commands.ResolutionUoW)
}
