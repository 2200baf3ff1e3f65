package commands_test

import (
	"errors"
	"testing"
	"time"

	"dentallab/internal/core/application/usecases/commands"
	"dentallab/internal/core/domain/model/kernel"
	"dentallab/internal/core/domain/model/order"
	"dentallab/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewFlagOverdueOrdersCommand(t *testing.T) {
	_, err := commands.NewFlagOverdueOrdersCommand(time.Time{})
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	var zero commands.FlagOverdueOrdersCommand
	require.ErrorIs(t, zero.Validate(), commands.ErrFlagOverdueOrdersCommandIsNotConstructed)
}

func TestFlagOverdueOrdersCommandHandler(t *testing.T) {
	today := fixedNow.AddDate(0, 0, 10)

	overdueOrder := func(t *testing.T) *order.Order {
		o := crownOrder(t, order.InProduction)
		require.NoError(t, o.RescheduleDelivery(lab(t), fixedNow.AddDate(0, 0, 7), fixedNow))
		o.ClearDomainEvents()
		return o
	}

	t.Run("publishes one event per overdue order", func(t *testing.T) {
		o := overdueOrder(t)
		repo := &MockOrderRepository{}
		uow := &MockUoW{}
		factory := &MockOrderUoWFactory{}
		publisher := &MockPublisher{}

		factory.On("Create").Return(uow)
		uow.On("OrderRepository").Return(repo)
		repo.On("ListOverdue", mock.Anything, today).Return([]*order.Order{o}, nil)
		publisher.On("Publish", mock.Anything, mock.MatchedBy(func(events []kernel.DomainEvent) bool {
			return len(events) == 1 && events[0].Name() == order.EventOverdue
		})).Return(nil).Once()

		cmd, err := commands.NewFlagOverdueOrdersCommand(today)
		require.NoError(t, err)
		handler := commands.NewFlagOverdueOrdersCommandHandler(factory, publisher)
		flagged, err := handler.Handle(t.Context(), cmd)

		require.NoError(t, err)
		assert.Equal(t, 1, flagged)
		assert.Empty(t, o.DomainEvents())
		publisher.AssertExpectations(t)
		uow.AssertNotCalled(t, "Begin", mock.Anything)
	})

	t.Run("nothing overdue publishes nothing", func(t *testing.T) {
		repo := &MockOrderRepository{}
		uow := &MockUoW{}
		factory := &MockOrderUoWFactory{}
		publisher := &MockPublisher{}

		factory.On("Create").Return(uow)
		uow.On("OrderRepository").Return(repo)
		repo.On("ListOverdue", mock.Anything, today).Return([]*order.Order{}, nil)

		cmd, err := commands.NewFlagOverdueOrdersCommand(today)
		require.NoError(t, err)
		handler := commands.NewFlagOverdueOrdersCommandHandler(factory, publisher)
		flagged, err := handler.Handle(t.Context(), cmd)

		require.NoError(t, err)
		assert.Zero(t, flagged)
		publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
	})

	t.Run("publisher failure is reported", func(t *testing.T) {
		repo := &MockOrderRepository{}
		uow := &MockUoW{}
		factory := &MockOrderUoWFactory{}
		publisher := &MockPublisher{}
		broken := errors.New("broker unavailable")

		factory.On("Create").Return(uow)
		uow.On("OrderRepository").Return(repo)
		repo.On("ListOverdue", mock.Anything, today).Return([]*order.Order{overdueOrder(t)}, nil)
		publisher.On("Publish", mock.Anything, mock.Anything).Return(broken)

		cmd, err := commands.NewFlagOverdueOrdersCommand(today)
		require.NoError(t, err)
		handler := commands.NewFlagOverdueOrdersCommandHandler(factory, publisher)
		_, err = handler.Handle(t.Context(), cmd)

		require.ErrorIs(t, err, broken)
	})
}
