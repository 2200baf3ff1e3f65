package commands_test

import (
	"testing"

	"dentallab/internal/core/application/usecases/commands"
	"dentallab/internal/core/domain/model/order"
	"dentallab/internal/core/ports"
	"dentallab/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewTransitionOrderCommand_InvalidTarget(t *testing.T) {
	_, err := commands.NewTransitionOrderCommand(lab(t), orderID, order.Unknown)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestTransitionOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewTransitionOrderCommand(lab(t), orderID, order.InProduction)
	require.NoError(t, err)

	current := crownOrder(t, order.Approved)
	released := false
	locker := new(MockLocker)
	orders := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		locker.On("Lock", ctx, ports.OrderLockKey(orderID)).Return(func() { released = true }, nil).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orders).Once(),
		orders.On("Get", ctx, orderID).Return(current, nil).Once(),
		orders.On("Update", ctx, current).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewTransitionOrderCommandHandler(factory, locker)
	updated, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.InProduction, updated.Status())
	assert.True(t, released)
	locker.AssertExpectations(t)
	orders.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestTransitionOrderCommandHandler_Handle_RejectedTransitionIsNotPersisted(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewTransitionOrderCommand(lab(t), orderID, order.AwaitingApproval)
	require.NoError(t, err)

	locker := new(MockLocker)
	locker.On("Lock", ctx, ports.OrderLockKey(orderID)).Return(noop, nil).Once()
	orders := new(MockOrderRepository)
	orders.On("Get", ctx, orderID).Return(crownOrder(t, order.Approved), nil).Once()
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orders).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewTransitionOrderCommandHandler(factory, locker)
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrInvalidTransition)
	orders.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestTransitionOrderCommandHandler_Handle_Contention(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewTransitionOrderCommand(lab(t), orderID, order.Approved)
	require.NoError(t, err)

	locker := new(MockLocker)
	locker.On("Lock", ctx, ports.OrderLockKey(orderID)).
		Return(nil, errs.NewContentionError("order:1", nil)).Once()
	factory := new(MockOrderUoWFactory)

	h := commands.NewTransitionOrderCommandHandler(factory, locker)
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrContention)
	assert.True(t, errs.IsRetryable(err))
	factory.AssertNotCalled(t, "Create")
}

func TestTransitionOrderCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewTransitionOrderCommand(lab(t), orderID, order.Approved)
	require.NoError(t, err)

	locker := new(MockLocker)
	locker.On("Lock", ctx, ports.OrderLockKey(orderID)).Return(noop, nil).Once()
	orders := new(MockOrderRepository)
	orders.On("Get", ctx, orderID).Return(nil, errs.NewObjectNotFoundError("order", orderID.String())).Once()
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orders).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewTransitionOrderCommandHandler(factory, locker)
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}
