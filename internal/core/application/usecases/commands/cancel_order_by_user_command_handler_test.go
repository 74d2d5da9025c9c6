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

func TestNewCancelOrderByUserCommand(t *testing.T) {
	id := kernel.NewUUID()
	cmd, err := commands.NewCancelOrderByUserCommand(id)
	require.NoError(t, err)
	assert.Equal(t, id, cmd.OrderID())

	_, err = commands.NewCancelOrderByUserCommand(kernel.UUID{})
	require.Error(t, err)
}

func TestCancelOrderByUserCommandHandler_Handle_UnpaidOrder(t *testing.T) {
	ctx := t.Context()
	aggregate := restoredOrder(t, order.PendingPayment, order.Unpaid)
	cmd, _ := commands.NewCancelOrderByUserCommand(aggregate.ID())

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	payments := new(MockPaymentGateway)
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

	h := commands.NewCancelOrderByUserCommandHandler(factory, payments)
	err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Cancelled, aggregate.Status())
	assert.Equal(t, order.CancelReasonUserCancelled, aggregate.CancelReason())
	payments.AssertNotCalled(t, "Refund",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCancelOrderByUserCommandHandler_Handle_PaidOrderRefunds(t *testing.T) {
	ctx := t.Context()
	aggregate := restoredOrder(t, order.ToBeConfirmed, order.Paid)
	cmd, _ := commands.NewCancelOrderByUserCommand(aggregate.ID())

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	payments := new(MockPaymentGateway)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetByID", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		payments.On("Refund", ctx, aggregate.Number(), aggregate.Number(),
			aggregate.Amount(), aggregate.Amount()).Return(nil).Once(),
		repo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelOrderByUserCommandHandler(factory, payments)
	err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Refunded, aggregate.PayStatus())
	payments.AssertExpectations(t)
}

func TestCancelOrderByUserCommandHandler_Handle_AfterAcceptance(t *testing.T) {
	ctx := t.Context()
	aggregate := restoredOrder(t, order.Confirmed, order.Paid)
	cmd, _ := commands.NewCancelOrderByUserCommand(aggregate.ID())

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	payments := new(MockPaymentGateway)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetByID", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelOrderByUserCommandHandler(factory, payments)
	err := h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInvalidStateTransition)
	assert.Equal(t, order.Confirmed, aggregate.Status())
	payments.AssertNotCalled(t, "Refund",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
