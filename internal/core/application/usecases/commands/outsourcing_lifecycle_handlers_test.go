package commands_test

import (
	"testing"

	"dentallab/internal/core/application/usecases/commands"
	"dentallab/internal/core/domain/model/outsourcing"
	"dentallab/internal/core/ports"
	"dentallab/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func outsourcingMocks(t *testing.T, current *outsourcing.Request) (*MockOutsourcingUoWFactory, *MockUoW, *MockOutsourcingRepository, *MockLocker) {
	t.Helper()
	ctx := t.Context()
	locker := new(MockLocker)
	locker.On("Lock", ctx, ports.OutsourcingLockKey(current.ID())).Return(noop, nil).Once()
	repo := new(MockOutsourcingRepository)
	repo.On("Get", ctx, current.ID()).Return(current, nil).Once()
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OutsourcingRepository").Return(repo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	factory := new(MockOutsourcingUoWFactory)
	factory.On("Create").Return(uow).Once()
	return factory, uow, repo, locker
}

func TestRespondOutsourcingCommandHandler_Handle_Accept(t *testing.T) {
	ctx := t.Context()
	current := pendingRequest(t)
	factory, uow, repo, locker := outsourcingMocks(t, current)
	repo.On("Update", ctx, current).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()

	cmd, err := commands.NewRespondOutsourcingCommand(delegate(t), current.ID(), true, "")
	require.NoError(t, err)
	h := commands.NewRespondOutsourcingCommandHandler(factory, locker)
	updated, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, outsourcing.Accepted, updated.Status())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestRespondOutsourcingCommandHandler_Handle_RequesterCannotRespond(t *testing.T) {
	ctx := t.Context()
	current := pendingRequest(t)
	factory, uow, repo, locker := outsourcingMocks(t, current)

	cmd, err := commands.NewRespondOutsourcingCommand(lab(t), current.ID(), true, "")
	require.NoError(t, err)
	h := commands.NewRespondOutsourcingCommandHandler(factory, locker)
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrUnauthorized)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestCancelOutsourcingCommandHandler_Handle_InProgressRejected(t *testing.T) {
	ctx := t.Context()
	current := pendingRequest(t)
	require.NoError(t, current.Respond(delegate(t), true, "", fixedNow))
	require.NoError(t, current.Start(delegate(t), fixedNow))
	factory, _, repo, locker := outsourcingMocks(t, current)

	cmd, err := commands.NewCancelOutsourcingCommand(lab(t), current.ID(), "too slow")
	require.NoError(t, err)
	h := commands.NewCancelOutsourcingCommandHandler(factory, locker)
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrInvalidTransition)
	assert.Equal(t, outsourcing.InProgress, current.Status())
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestStartAndCompleteOutsourcingCommandHandlers(t *testing.T) {
	ctx := t.Context()
	current := pendingRequest(t)
	require.NoError(t, current.Respond(delegate(t), true, "", fixedNow))

	factory, uow, repo, locker := outsourcingMocks(t, current)
	repo.On("Update", ctx, current).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	startCmd, err := commands.NewStartOutsourcingCommand(delegate(t), current.ID())
	require.NoError(t, err)
	start := commands.NewStartOutsourcingCommandHandler(factory, locker)
	_, err = start.Handle(ctx, startCmd)
	require.NoError(t, err)

	factory, uow, repo, locker = outsourcingMocks(t, current)
	repo.On("Update", ctx, current).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	completeCmd, err := commands.NewCompleteOutsourcingCommand(delegate(t), current.ID())
	require.NoError(t, err)
	complete := commands.NewCompleteOutsourcingCommandHandler(factory, locker)
	done, err := complete.Handle(ctx, completeCmd)

	require.NoError(t, err)
	assert.Equal(t, outsourcing.Completed, done.Status())
	assert.NotNil(t, done.CompletedAt())
}
