package commands_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/account"
	"marketplace/internal/core/domain/model/actor"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/notification"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/store"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/logging"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) Find(ctx context.Context, filter ports.OrderFilter) ([]*order.Order, error) {
	args := m.Called(ctx, filter)
	orders, _ := args.Get(0).([]*order.Order)
	return orders, args.Error(1)
}

func (m *MockOrderRepository) FindEarliest(ctx context.Context, filter ports.OrderFilter) (*order.Order, error) {
	args := m.Called(ctx, filter)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) UpdateDecision(ctx context.Context, o *order.Order, expected order.Status) error {
	args := m.Called(ctx, o, expected)
	return args.Error(0)
}

type MockDirectory struct{ mock.Mock }

func (m *MockDirectory) GetStore(ctx context.Context, id kernel.UUID) (*store.Store, error) {
	args := m.Called(ctx, id)
	s, _ := args.Get(0).(*store.Store)
	return s, args.Error(1)
}

func (m *MockDirectory) GetAccount(ctx context.Context, id kernel.UUID) (*account.Account, error) {
	args := m.Called(ctx, id)
	a, _ := args.Get(0).(*account.Account)
	return a, args.Error(1)
}

func (m *MockDirectory) FindStoreByOwner(ctx context.Context, ownerID kernel.UUID) (*store.Store, error) {
	args := m.Called(ctx, ownerID)
	s, _ := args.Get(0).(*store.Store)
	return s, args.Error(1)
}

func (m *MockDirectory) StoresByID(ctx context.Context, ids []kernel.UUID) (map[kernel.UUID]*store.Store, error) {
	args := m.Called(ctx, ids)
	stores, _ := args.Get(0).(map[kernel.UUID]*store.Store)
	return stores, args.Error(1)
}

func (m *MockDirectory) AccountsByID(ctx context.Context, ids []kernel.UUID) (map[kernel.UUID]*account.Account, error) {
	args := m.Called(ctx, ids)
	accounts, _ := args.Get(0).(map[kernel.UUID]*account.Account)
	return accounts, args.Error(1)
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

func (m *MockOrderUoW) Directory() ports.Directory {
	args := m.Called()
	return args.Get(0).(ports.Directory)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) Send(ctx context.Context, destination string, n notification.Notification) error {
	args := m.Called(ctx, destination, n)
	return args.Error(0)
}

// recordingMetrics counts lifecycle events.
type recordingMetrics struct {
	mu      sync.Mutex
	created int
	decided map[string]int
	failed  map[string]int
}

func newRecordingMetrics() *recordingMetrics {
	return &recordingMetrics{decided: map[string]int{}, failed: map[string]int{}}
}

func (r *recordingMetrics) OrdersCreated(n int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.created += n
}

func (r *recordingMetrics) OrderDecided(decision string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.decided[decision]++
}

func (r *recordingMetrics) NotificationFailed(kind string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failed[kind]++
}

// permissiveUoW returns a UoW mock whose transaction calls always succeed.
func permissiveUoW(repo *MockOrderRepository, dir *MockDirectory) *MockOrderUoW {
	uow := new(MockOrderUoW)
	uow.On("Begin", mock.Anything).Return(nil)
	uow.On("Commit", mock.Anything).Return(nil)
	uow.On("Rollback", mock.Anything).Return(nil)
	uow.On("OrderRepository").Return(repo)
	uow.On("Directory").Return(dir)
	return uow
}

func notificationsFor(n *MockNotifier, m *recordingMetrics) commands.Notifications {
	return commands.NewNotifications(n, time.Second, logging.Discard(), m)
}

func newActor(t *testing.T, role actor.Role) actor.Actor {
	t.Helper()
	a, err := actor.NewActor(kernel.NewUUID(), role)
	require.NoError(t, err)
	return a
}

func newAccount(t *testing.T, id kernel.UUID, username, email string) *account.Account {
	t.Helper()
	a, err := account.NewAccount(id, username, email, account.DeliveryInfo{
		Region: "North", Street: "Main 1", Floor: "2", Doorbell: "Smith", Phone: "+100",
	})
	require.NoError(t, err)
	return a
}

func newStore(t *testing.T, name string, ownerID kernel.UUID) *store.Store {
	t.Helper()
	s, err := store.NewStore(kernel.NewUUID(), name, ownerID)
	require.NoError(t, err)
	return s
}

func newPendingOrder(t *testing.T, customerID, storeID kernel.UUID) *order.Order {
	t.Helper()
	item, err := order.NewItem("p-1", "Mug", 2, decimal.NewFromInt(10))
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), customerID, storeID, []order.Item{item}, "fragile", time.Now())
	require.NoError(t, err)
	return o
}
