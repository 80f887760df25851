package commands_test

import (
	"context"
	"io"
	"log/slog"
	"time"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/domain/model/inventory"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/core/domain/model/notification"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/model/table"
	"restaurant/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

var testNow = time.Date(2026, 10, 16, 12, 30, 0, 0, time.UTC)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetActive(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockTableRepository struct{ mock.Mock }

func (m *MockTableRepository) Add(ctx context.Context, t *table.Table) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTableRepository) Update(ctx context.Context, t *table.Table) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTableRepository) Get(ctx context.Context, id kernel.UUID) (*table.Table, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*table.Table), args.Error(1)
}

func (m *MockTableRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*table.Table, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*table.Table), args.Error(1)
}

func (m *MockTableRepository) GetByIDs(ctx context.Context, ids []kernel.UUID) ([]*table.Table, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*table.Table), args.Error(1)
}

type MockMenuItemRepository struct{ mock.Mock }

func (m *MockMenuItemRepository) Add(ctx context.Context, item *menu.MenuItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockMenuItemRepository) Get(ctx context.Context, id kernel.UUID) (*menu.MenuItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*menu.MenuItem), args.Error(1)
}

func (m *MockMenuItemRepository) GetByIDs(ctx context.Context, ids []kernel.UUID) ([]*menu.MenuItem, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*menu.MenuItem), args.Error(1)
}

type MockOrderNumberAllocator struct{ mock.Mock }

func (m *MockOrderNumberAllocator) Next(ctx context.Context, day time.Time) (order.Number, error) {
	args := m.Called(ctx, day)
	return args.Get(0).(order.Number), args.Error(1)
}

type MockRecipeResolver struct{ mock.Mock }

func (m *MockRecipeResolver) Requirements(ctx context.Context, menuItemID kernel.UUID) ([]inventory.Requirement, error) {
	args := m.Called(ctx, menuItemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]inventory.Requirement), args.Error(1)
}

func (m *MockRecipeResolver) CheckAvailability(
	ctx context.Context,
	menuItemID kernel.UUID,
	quantity int,
) ([]inventory.Shortage, error) {
	args := m.Called(ctx, menuItemID, quantity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]inventory.Shortage), args.Error(1)
}

type MockStockLedger struct{ mock.Mock }

func (m *MockStockLedger) Consume(ctx context.Context, itemID, ingredientID kernel.UUID, quantity int) error {
	args := m.Called(ctx, itemID, ingredientID, quantity)
	return args.Error(0)
}

func (m *MockStockLedger) Release(ctx context.Context, itemID, ingredientID kernel.UUID, keep int) (int, error) {
	args := m.Called(ctx, itemID, ingredientID, keep)
	return args.Int(0), args.Error(1)
}

func (m *MockStockLedger) LowStock(ctx context.Context) ([]inventory.StockLevel, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]inventory.StockLevel), args.Error(1)
}

type MockNotificationSink struct{ mock.Mock }

func (m *MockNotificationSink) Notify(ctx context.Context, event notification.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

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

func (m *MockUoW) TableRepository() ports.TableRepository {
	args := m.Called()
	return args.Get(0).(ports.TableRepository)
}

func (m *MockUoW) MenuItemRepository() ports.MenuItemRepository {
	args := m.Called()
	return args.Get(0).(ports.MenuItemRepository)
}

func (m *MockUoW) OrderNumberAllocator() ports.OrderNumberAllocator {
	args := m.Called()
	return args.Get(0).(ports.OrderNumberAllocator)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

// fixture wires one unit of work with all repositories and collaborators.
type fixture struct {
	orders  *MockOrderRepository
	tables  *MockTableRepository
	menu    *MockMenuItemRepository
	numbers *MockOrderNumberAllocator
	recipes *MockRecipeResolver
	ledger  *MockStockLedger
	sink    *MockNotificationSink
	uow     *MockUoW
	factory *MockUoWFactory
	orderF  *MockOrderUoWFactory
	effects commands.SideEffects
	clock   kernel.Clock
}

func newFixture() *fixture {
	f := &fixture{
		orders:  new(MockOrderRepository),
		tables:  new(MockTableRepository),
		menu:    new(MockMenuItemRepository),
		numbers: new(MockOrderNumberAllocator),
		recipes: new(MockRecipeResolver),
		ledger:  new(MockStockLedger),
		sink:    new(MockNotificationSink),
		uow:     new(MockUoW),
		factory: new(MockUoWFactory),
		orderF:  new(MockOrderUoWFactory),
		clock:   kernel.FixedClock{At: testNow},
	}

	f.uow.On("OrderRepository").Return(f.orders).Maybe()
	f.uow.On("TableRepository").Return(f.tables).Maybe()
	f.uow.On("MenuItemRepository").Return(f.menu).Maybe()
	f.uow.On("OrderNumberAllocator").Return(f.numbers).Maybe()
	f.uow.On("Rollback", mock.Anything).Return(nil).Maybe()
	f.factory.On("Create").Return(f.uow).Maybe()
	f.orderF.On("Create").Return(f.uow).Maybe()

	f.effects = commands.NewSideEffects(f.recipes, f.ledger, f.sink, slog.New(slog.NewTextHandler(io.Discard, nil)))
	return f
}

func (f *fixture) assertExpectations(t mock.TestingT) {
	f.orders.AssertExpectations(t)
	f.tables.AssertExpectations(t)
	f.menu.AssertExpectations(t)
	f.numbers.AssertExpectations(t)
	f.recipes.AssertExpectations(t)
	f.ledger.AssertExpectations(t)
	f.sink.AssertExpectations(t)
	f.uow.AssertExpectations(t)
}
