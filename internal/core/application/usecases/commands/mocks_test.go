package commands_test

import (
	"context"

	"kitchen/internal/core/application/usecases/commands"
	"kitchen/internal/core/domain/model/chef"
	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/menu"
	"kitchen/internal/core/domain/model/order"
	"kitchen/internal/core/domain/model/table"
	"kitchen/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) UpdateStatusFrom(ctx context.Context, aggregate *order.Order, expected order.Status) error {
	args := m.Called(ctx, aggregate, expected)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllInProcessingStatus(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetActiveByChef(ctx context.Context, chefID kernel.UUID) ([]*order.Order, error) {
	args := m.Called(ctx, chefID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockChefRepository struct{ mock.Mock }

func (m *MockChefRepository) Add(ctx context.Context, aggregate *chef.Chef) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockChefRepository) Update(ctx context.Context, aggregate *chef.Chef) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockChefRepository) Get(ctx context.Context, id kernel.UUID) (*chef.Chef, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*chef.Chef), args.Error(1)
}

func (m *MockChefRepository) GetAll(ctx context.Context) ([]*chef.Chef, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*chef.Chef), args.Error(1)
}

func (m *MockChefRepository) AcquireOrder(ctx context.Context, chefID, orderID kernel.UUID) error {
	args := m.Called(ctx, chefID, orderID)
	return args.Error(0)
}

func (m *MockChefRepository) ReleaseOrder(ctx context.Context, chefID, orderID kernel.UUID) error {
	args := m.Called(ctx, chefID, orderID)
	return args.Error(0)
}

func (m *MockChefRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockTableRepository struct{ mock.Mock }

func (m *MockTableRepository) Add(ctx context.Context, aggregate *table.Table) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockTableRepository) Update(ctx context.Context, aggregate *table.Table) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockTableRepository) Get(ctx context.Context, number int) (*table.Table, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*table.Table), args.Error(1)
}

func (m *MockTableRepository) GetAll(ctx context.Context) ([]*table.Table, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*table.Table), args.Error(1)
}

func (m *MockTableRepository) Reserve(ctx context.Context, number int, party table.Party) error {
	args := m.Called(ctx, number, party)
	return args.Error(0)
}

func (m *MockTableRepository) Release(ctx context.Context, number int) error {
	args := m.Called(ctx, number)
	return args.Error(0)
}

func (m *MockTableRepository) Delete(ctx context.Context, number int) error {
	args := m.Called(ctx, number)
	return args.Error(0)
}

type MockMenuRepository struct{ mock.Mock }

func (m *MockMenuRepository) Add(ctx context.Context, aggregate *menu.MenuItem) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockMenuRepository) Update(ctx context.Context, aggregate *menu.MenuItem) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockMenuRepository) Get(ctx context.Context, id kernel.UUID) (*menu.MenuItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*menu.MenuItem), args.Error(1)
}

func (m *MockMenuRepository) GetAll(ctx context.Context) ([]*menu.MenuItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*menu.MenuItem), args.Error(1)
}

func (m *MockMenuRepository) ReserveStock(ctx context.Context, id kernel.UUID, quantity int) (menu.Snapshot, error) {
	args := m.Called(ctx, id, quantity)
	return args.Get(0).(menu.Snapshot), args.Error(1)
}

func (m *MockMenuRepository) RestoreStock(ctx context.Context, id kernel.UUID, quantity int) error {
	args := m.Called(ctx, id, quantity)
	return args.Error(0)
}

func (m *MockMenuRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockUoW implements every repository accessor so one mock serves all
// handler tests regardless of which interface group they consume.
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

func (m *MockUoW) ChefRepository() ports.ChefRepository {
	args := m.Called()
	return args.Get(0).(ports.ChefRepository)
}

func (m *MockUoW) TableRepository() ports.TableRepository {
	args := m.Called()
	return args.Get(0).(ports.TableRepository)
}

func (m *MockUoW) MenuRepository() ports.MenuRepository {
	args := m.Called()
	return args.Get(0).(ports.MenuRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockChefUoWFactory struct{ mock.Mock }

func (m *MockChefUoWFactory) Create() commands.ChefUoW {
	args := m.Called()
	return args.Get(0).(commands.ChefUoW)
}

type MockTableUoWFactory struct{ mock.Mock }

func (m *MockTableUoWFactory) Create() commands.TableUoW {
	args := m.Called()
	return args.Get(0).(commands.TableUoW)
}

type MockMenuUoWFactory struct{ mock.Mock }

func (m *MockMenuUoWFactory) Create() commands.MenuUoW {
	args := m.Called()
	return args.Get(0).(commands.MenuUoW)
}

type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) Notify(ctx context.Context, kind ports.NotificationKind, payload any) error {
	args := m.Called(ctx, kind, payload)
	return args.Error(0)
}
