package commands_test

import (
	"context"
	"testing"
	"time"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// restoredOrder builds an order aggregate in the given state as the
// repository would return it.
func restoredOrder(t *testing.T, status order.Status, payStatus order.PayStatus) *order.Order {
	t.Helper()

	shipping, err := order.NewShipping("Zhang San", "13800000000", "1 Main St")
	require.NoError(t, err)
	item, err := order.NewLineItem("Kung Pao Chicken", decimal.NewFromFloat(15.50), 2, "")
	require.NoError(t, err)

	o, err := order.RestoreOrder(
		kernel.NewUUID(), kernel.NewUUID(), "17487792000001234",
		status, payStatus,
		decimal.NewFromInt(31), time.Now().Add(-30*time.Minute),
		nil, nil, nil, "", "",
		shipping, []order.LineItem{item},
	)
	require.NoError(t, err)
	return o
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) GetByID(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByNumber(ctx context.Context, number string) (*order.Order, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByStatusOlderThan(
	ctx context.Context, status order.Status, cutoff time.Time,
) ([]*order.Order, error) {
	args := m.Called(ctx, status, cutoff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) PageByUser(
	ctx context.Context, userID kernel.UUID, status order.Status, page, size int,
) (ports.OrderPage, error) {
	args := m.Called(ctx, userID, status, page, size)
	return args.Get(0).(ports.OrderPage), args.Error(1)
}

func (m *MockOrderRepository) PageBySearch(
	ctx context.Context, filter ports.SearchFilter, page, size int,
) (ports.OrderPage, error) {
	args := m.Called(ctx, filter, page, size)
	return args.Get(0).(ports.OrderPage), args.Error(1)
}

func (m *MockOrderRepository) CountByStatus(ctx context.Context, status order.Status) (int64, error) {
	args := m.Called(ctx, status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderRepository) SumAmountCompletedBetween(
	ctx context.Context, from, to time.Time,
) (decimal.Decimal, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockOrderRepository) CountBetween(
	ctx context.Context, from, to time.Time, status order.Status,
) (int64, error) {
	args := m.Called(ctx, from, to, status)
	return args.Get(0).(int64), args.Error(1)
}

type MockCartRepository struct{ mock.Mock }

func (m *MockCartRepository) ListByUser(ctx context.Context, userID kernel.UUID) ([]ports.CartItem, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ports.CartItem), args.Error(1)
}

func (m *MockCartRepository) ClearByUser(ctx context.Context, userID kernel.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

type MockAddressBookRepository struct{ mock.Mock }

func (m *MockAddressBookRepository) GetByID(ctx context.Context, id kernel.UUID) (*ports.Address, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ports.Address), args.Error(1)
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

type MockSubmitUoW struct{ mock.Mock }

func (m *MockSubmitUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockSubmitUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockSubmitUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockSubmitUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockSubmitUoW) CartRepository() ports.CartRepository {
	args := m.Called()
	return args.Get(0).(ports.CartRepository)
}

func (m *MockSubmitUoW) AddressBookRepository() ports.AddressBookRepository {
	args := m.Called()
	return args.Get(0).(ports.AddressBookRepository)
}

type MockSubmitUoWFactory struct{ mock.Mock }

func (m *MockSubmitUoWFactory) Create() commands.SubmitUoW {
	args := m.Called()
	return args.Get(0).(commands.SubmitUoW)
}

type MockPaymentGateway struct{ mock.Mock }

func (m *MockPaymentGateway) Charge(ctx context.Context, number string, amount decimal.Decimal) error {
	args := m.Called(ctx, number, amount)
	return args.Error(0)
}

func (m *MockPaymentGateway) Refund(
	ctx context.Context, number, refundRef string, amount, originalAmount decimal.Decimal,
) error {
	args := m.Called(ctx, number, refundRef, amount, originalAmount)
	return args.Error(0)
}

type MockGeoClient struct{ mock.Mock }

func (m *MockGeoClient) ResolveCoordinates(ctx context.Context, address string) (kernel.Coordinates, error) {
	args := m.Called(ctx, address)
	return args.Get(0).(kernel.Coordinates), args.Error(1)
}

func (m *MockGeoClient) RouteDistanceMeters(
	ctx context.Context, from, to kernel.Coordinates,
) (int, error) {
	args := m.Called(ctx, from, to)
	return args.Int(0), args.Error(1)
}

type MockNotificationDispatcher struct{ mock.Mock }

func (m *MockNotificationDispatcher) Broadcast(event ports.OperatorEvent) {
	m.Called(event)
}
