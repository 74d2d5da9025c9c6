package commands_test

import (
	"testing"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/ports"
	"foodorder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewRemindOrderCommand(t *testing.T) {
	id := kernel.NewUUID()
	cmd, err := commands.NewRemindOrderCommand(id)
	require.NoError(t, err)
	assert.Equal(t, id, cmd.OrderID())

	_, err = commands.NewRemindOrderCommand(kernel.UUID{})
	require.Error(t, err)
}

func TestRemindOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	aggregate := restoredOrder(t, order.ToBeConfirmed, order.Paid)
	cmd, _ := commands.NewRemindOrderCommand(aggregate.ID())

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	notifier := new(MockNotificationDispatcher)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetByID", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		notifier.On("Broadcast", mock.MatchedBy(func(event ports.OperatorEvent) bool {
			return event.Type == ports.OperatorEventReminder &&
				event.OrderID == aggregate.ID().String()
		})).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRemindOrderCommandHandler(factory, notifier)
	err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.ToBeConfirmed, aggregate.Status()) // State untouched
	notifier.AssertExpectations(t)
}

func TestRemindOrderCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, _ := commands.NewRemindOrderCommand(id)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	notifier := new(MockNotificationDispatcher)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetByID", ctx, id).Return(nil, errs.NewOrderNotFoundError(id.String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRemindOrderCommandHandler(factory, notifier)
	err := h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrOrderNotFound)
	notifier.AssertNotCalled(t, "Broadcast", mock.Anything)
}
