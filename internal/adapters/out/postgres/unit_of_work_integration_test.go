package postgres_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "dentallab/internal/adapters/out/postgres"
	"dentallab/internal/adapters/out/postgres/pgtest"
	"dentallab/internal/core/domain/model/catalog"
	"dentallab/internal/core/domain/model/kernel"
	"dentallab/internal/core/domain/model/order"
	"dentallab/internal/core/domain/model/outsourcing"
	"dentallab/internal/core/ports"
	"dentallab/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
)

var now = time.Date(2026, time.March, 2, 10, 0, 0, 0, time.UTC)

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(ctx context.Context, events ...kernel.DomainEvent) error {
	args := m.Called(ctx, events)
	return args.Error(0)
}

// UnitOfWorkIntegrationTestSuite exercises the GORM unit of work against a real PostgreSQL.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	database  *pgtest.Database
	publisher *MockPublisher
	factory   ports.UnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	suite.database = database
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Truncate())
	suite.publisher = new(MockPublisher)
	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(
		suite.database.DB, suite.publisher, zap.NewNop(), 200*time.Millisecond)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.database.Terminate(context.Background()))
}

func (suite *UnitOfWorkIntegrationTestSuite) lab() kernel.Actor {
	a, err := kernel.NewActor(kernel.MustNewID(200), kernel.RoleFulfiller)
	suite.Require().NoError(err)
	return a
}

func (suite *UnitOfWorkIntegrationTestSuite) newOrder(uow ports.UnitOfWork) *order.Order {
	id, err := uow.OrderRepository().NextOrderID(suite.T().Context())
	suite.Require().NoError(err)

	requester, err := order.NewParty(kernel.MustNewID(100), "Clinica Sorriso")
	suite.Require().NoError(err)
	fulfiller, err := order.NewParty(kernel.MustNewID(200), "Lab Alpha")
	suite.Require().NoError(err)
	value := kernel.MustNewMoney("500")
	o, err := order.NewOrder(order.NewOrderParams{
		ID:           id,
		Code:         order.NewCode(now),
		Requester:    requester,
		Fulfiller:    fulfiller,
		ServiceType:  kernel.ServiceTypeCrown,
		EntryDate:    now,
		ChargedValue: &value,
	}, now)
	suite.Require().NoError(err)
	return o
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := suite.T().Context()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx), "Multiple begin calls should be safe")
	suite.Require().NoError(uow.Commit(ctx))

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Rollback(ctx))

	suite.Require().Error(uow.Commit(ctx), "Should error when committing without active transaction")
	suite.Require().Error(uow.Rollback(ctx), "Should error when rolling back without active transaction")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_CommitPublishesEvents() {
	ctx := suite.T().Context()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	o := suite.newOrder(uow)
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))
	suite.publisher.AssertNotCalled(suite.T(), "Publish", mock.Anything, mock.Anything)

	suite.publisher.On("Publish", mock.Anything, mock.MatchedBy(func(events []kernel.DomainEvent) bool {
		return len(events) == 1 && events[0].Name() == order.EventCreated
	})).Return(nil).Once()
	suite.Require().NoError(uow.Commit(ctx))

	suite.publisher.AssertExpectations(suite.T())
	suite.Empty(o.DomainEvents())

	loaded, err := suite.factory.Create().OrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(o.Code(), loaded.Code())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RollbackDiscardsWritesAndEvents() {
	ctx := suite.T().Context()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	o := suite.newOrder(uow)
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))
	suite.Require().NoError(uow.Rollback(ctx))

	_, err := suite.factory.Create().OrderRepository().Get(ctx, o.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	suite.publisher.AssertNotCalled(suite.T(), "Publish", mock.Anything, mock.Anything)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_PublishFailureKeepsCommit() {
	ctx := suite.T().Context()
	suite.publisher.On("Publish", mock.Anything, mock.Anything).Return(errs.NewContentionError("broker", nil))

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	o := suite.newOrder(uow)
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))
	suite.Require().NoError(uow.Commit(ctx))

	_, err := suite.factory.Create().OrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_WithoutTransactionPublishesImmediately() {
	ctx := suite.T().Context()
	suite.publisher.On("Publish", mock.Anything, mock.Anything).Return(nil).Once()

	uow := suite.factory.Create()
	o := suite.newOrder(uow)
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))

	suite.publisher.AssertExpectations(suite.T())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_MultiRepositoryTransaction() {
	ctx := suite.T().Context()
	suite.publisher.On("Publish", mock.Anything, mock.Anything).Return(nil)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	terms, err := catalog.NewTerms(kernel.MustNewMoney("400"), 10)
	suite.Require().NoError(err)
	offering, err := catalog.NewOffering(kernel.MustNewID(201), kernel.ServiceTypeCrown, catalog.Spec{
		Policy:        catalog.PolicyDelegateOnly,
		DelegateTerms: &terms,
	}, now)
	suite.Require().NoError(err)
	suite.Require().NoError(uow.OfferingRepository().Save(ctx, offering))

	o := suite.newOrder(uow)
	suite.Require().NoError(o.Transition(suite.lab(), order.InProduction, now))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))

	requestID, err := uow.OutsourcingRepository().NextID(ctx)
	suite.Require().NoError(err)
	request, err := outsourcing.NewRequest(outsourcing.NewRequestParams{
		ID:                    requestID,
		OrderID:               o.ID(),
		RequestingFulfillerID: kernel.MustNewID(200),
		ExecutingFulfillerID:  kernel.MustNewID(201),
		Percentage:            kernel.MustNewPercentage("60"),
	}, now)
	suite.Require().NoError(err)
	suite.Require().NoError(uow.OutsourcingRepository().Add(ctx, request))
	suite.Require().NoError(uow.Commit(ctx))

	reader := suite.factory.Create()
	_, err = reader.OfferingRepository().Get(ctx, kernel.MustNewID(201), kernel.ServiceTypeCrown)
	suite.Require().NoError(err)
	active, err := reader.OutsourcingRepository().GetActiveByOrder(ctx, o.ID())
	suite.Require().NoError(err)
	suite.True(active.ID().IsEqual(requestID))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_LockTimeoutIsContention() {
	ctx := suite.T().Context()
	suite.publisher.On("Publish", mock.Anything, mock.Anything).Return(nil)

	setup := suite.factory.Create()
	o := suite.newOrder(setup)
	suite.Require().NoError(setup.OrderRepository().Add(ctx, o))

	holder := suite.factory.Create()
	suite.Require().NoError(holder.Begin(ctx))
	defer func() {
		_ = holder.Rollback(ctx)
	}()
	_, err := holder.OrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err)

	waiter := suite.factory.Create()
	suite.Require().NoError(waiter.Begin(ctx))
	defer func() {
		_ = waiter.Rollback(ctx)
	}()
	_, err = waiter.OrderRepository().Get(ctx, o.ID())
	suite.Require().ErrorIs(err, errs.ErrContention)
	suite.True(errs.IsRetryable(err))
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
