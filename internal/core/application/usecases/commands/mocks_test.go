package commands_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"oms/internal/core/application/usecases/commands"
	"oms/internal/core/domain/model/item"
	"oms/internal/core/domain/model/kernel"
	"oms/internal/core/domain/model/order"
	"oms/internal/core/ports"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.OrderID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetPage(ctx context.Context, limit, offset int) ([]*order.Order, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockItemRepository struct{ mock.Mock }

func (m *MockItemRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockItemRepository) RemoveAll(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockItemRepository) AddBatch(ctx context.Context, items []*item.Item) error {
	args := m.Called(ctx, items)
	return args.Error(0)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockItemUoW struct{ mock.Mock }

func (m *MockItemUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockItemUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockItemUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockItemUoW) ItemRepository() ports.ItemRepository {
	args := m.Called()
	return args.Get(0).(ports.ItemRepository)
}

type MockItemUoWFactory struct{ mock.Mock }

func (m *MockItemUoWFactory) Create() commands.ItemUoW {
	args := m.Called()
	return args.Get(0).(commands.ItemUoW)
}

// stubOracle implements services.DecisionOracle with fixed answers.
type stubOracle struct {
	inventory  bool
	pricing    bool
	eligible   bool
	exception  order.Status
	hasExcepts bool
}

func (s stubOracle) InventoryAvailable(_ *order.Order) bool { return s.inventory }
func (s stubOracle) PricingValid(_ *order.Order) bool       { return s.pricing }
func (s stubOracle) CustomerEligible(_ *order.Order) bool   { return s.eligible }
func (s stubOracle) ExceptionOutcome() (order.Status, bool) {
	return s.exception, s.hasExcepts
}

func passingOracle() stubOracle {
	return stubOracle{inventory: true, pricing: true, eligible: true}
}

func newValidCreateCommand(t *testing.T) commands.CreateOrderCommand {
	t.Helper()

	customer, err := order.NewCustomer("CUST-1", "Jamie Doe", "jamie@example.com", "")
	require.NoError(t, err)

	total, err := kernel.NewMoney(49.99, kernel.DefaultCurrency)
	require.NoError(t, err)

	cmd, err := commands.NewCreateOrderCommand(customer, total, order.Online, nil, "CREDIT_CARD", "1 Main St", "")
	require.NoError(t, err)

	return cmd
}

func newStoredOrder(t *testing.T, status order.Status) *order.Order {
	t.Helper()

	customer, err := order.NewCustomer("CUST-1", "Jamie Doe", "jamie@example.com", "")
	require.NoError(t, err)

	total, err := kernel.NewMoney(49.99, kernel.DefaultCurrency)
	require.NoError(t, err)

	now := time.Now()
	aggregate, err := order.RestoreOrder(
		kernel.NewOrderID(), customer, total, order.Online, status,
		nil, "CREDIT_CARD", "1 Main St", "", "seeded for test", now, now,
	)
	require.NoError(t, err)

	return aggregate
}
