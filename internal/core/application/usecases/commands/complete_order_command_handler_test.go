package commands_test

import (
	"testing"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewCompleteOrderCommand(t *testing.T) {
	id := kernel.NewUUID()
	cmd, err := commands.NewCompleteOrderCommand(id)
	require.NoError(t, err)
	assert.Equal(t, id, cmd.OrderID())

	_, err = commands.NewCompleteOrderCommand(kernel.UUID{})
	require.Error(t, err)
}

func TestCompleteOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	aggregate := restoredOrder(t, order.DeliveryInProgress, order.Paid)
	cmd, _ := commands.NewCompleteOrderCommand(aggregate.ID())

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetByID", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		repo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCompleteOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Completed, aggregate.Status())
	assert.NotNil(t, aggregate.DeliveryTime())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCompleteOrderCommandHandler_Handle_NotInDelivery(t *testing.T) {
	ctx := t.Context()
	aggregate := restoredOrder(t, order.Confirmed, order.Paid)
	cmd, _ := commands.NewCompleteOrderCommand(aggregate.ID())

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetByID", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCompleteOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInvalidStateTransition)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}
