package outsourcingrepo_test

import (
	"context"
	"testing"
	"time"

	"dentallab/internal/adapters/out/postgres/orderrepo"
	"dentallab/internal/adapters/out/postgres/outsourcingrepo"
	"dentallab/internal/adapters/out/postgres/pgtest"
	"dentallab/internal/core/domain/model/kernel"
	"dentallab/internal/core/domain/model/order"
	"dentallab/internal/core/domain/model/outsourcing"
	"dentallab/internal/core/ports"
	"dentallab/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

var now = time.Date(2026, time.March, 2, 10, 0, 0, 0, time.UTC)

type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(aggregate ports.EventSource) {
	m.Called(aggregate)
}

type OutsourcingRepositoryIntegrationTestSuite struct {
	suite.Suite
	database   *pgtest.Database
	repository *outsourcingrepo.GormOutsourcingRepository
	tracker    *MockAggregateTracker
	orderID    kernel.ID
}

func (suite *OutsourcingRepositoryIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	suite.database = database
	suite.Require().NoError(err)
}

func (suite *OutsourcingRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Truncate())

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything).Maybe()
	suite.repository = outsourcingrepo.NewGormOutsourcingRepository(suite.database.DB, suite.tracker, false)
	suite.orderID = suite.addOrder()
}

func (suite *OutsourcingRepositoryIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.database.Terminate(context.Background()))
}

func (suite *OutsourcingRepositoryIntegrationTestSuite) addOrder() kernel.ID {
	ctx := suite.T().Context()
	orders := orderrepo.NewGormOrderRepository(suite.database.DB, suite.tracker, false)
	id, err := orders.NextOrderID(ctx)
	suite.Require().NoError(err)

	requester, err := order.NewParty(kernel.MustNewID(100), "Clinica Sorriso")
	suite.Require().NoError(err)
	fulfiller, err := order.NewParty(kernel.MustNewID(200), "Lab Alpha")
	suite.Require().NoError(err)
	o, err := order.NewOrder(order.NewOrderParams{
		ID:          id,
		Code:        order.NewCode(now),
		Requester:   requester,
		Fulfiller:   fulfiller,
		ServiceType: kernel.ServiceTypeCrown,
		EntryDate:   now,
	}, now)
	suite.Require().NoError(err)
	suite.Require().NoError(orders.Add(ctx, o))
	return id
}

func (suite *OutsourcingRepositoryIntegrationTestSuite) newRequest(orderID kernel.ID) *outsourcing.Request {
	id, err := suite.repository.NextID(suite.T().Context())
	suite.Require().NoError(err)

	r, err := outsourcing.NewRequest(outsourcing.NewRequestParams{
		ID:                    id,
		OrderID:               orderID,
		RequestingFulfillerID: kernel.MustNewID(200),
		ExecutingFulfillerID:  kernel.MustNewID(201),
		Percentage:            kernel.MustNewPercentage("62.5"),
		Kind:                  outsourcing.KindCapacity,
		ServiceDescription:    "ceramic layering",
		Rationale:             "furnace down",
	}, now)
	suite.Require().NoError(err)
	return r
}

func (suite *OutsourcingRepositoryIntegrationTestSuite) executor() kernel.Actor {
	a, err := kernel.NewActor(kernel.MustNewID(201), kernel.RoleFulfiller)
	suite.Require().NoError(err)
	return a
}

func (suite *OutsourcingRepositoryIntegrationTestSuite) TestAdd_RoundTrip() {
	ctx := suite.T().Context()
	r := suite.newRequest(suite.orderID)

	suite.Require().NoError(suite.repository.Add(ctx, r))
	suite.tracker.AssertCalled(suite.T(), "TrackAggregate", r)

	loaded, err := suite.repository.Get(ctx, r.ID())
	suite.Require().NoError(err)
	suite.Equal(outsourcing.Requested, loaded.Status())
	suite.Equal("62.5", loaded.Percentage().String())
	suite.Equal(outsourcing.KindCapacity, loaded.Kind())
	suite.Equal("ceramic layering", loaded.ServiceDescription())
	suite.Equal("furnace down", loaded.Rationale())

	active, err := suite.repository.GetActiveByOrder(ctx, suite.orderID)
	suite.Require().NoError(err)
	suite.True(active.ID().IsEqual(r.ID()))
}

func (suite *OutsourcingRepositoryIntegrationTestSuite) TestAdd_SecondActiveRequestRejected() {
	ctx := suite.T().Context()
	suite.Require().NoError(suite.repository.Add(ctx, suite.newRequest(suite.orderID)))

	err := suite.repository.Add(ctx, suite.newRequest(suite.orderID))
	suite.Require().ErrorIs(err, errs.ErrOutsourcingAlreadyActive)
}

func (suite *OutsourcingRepositoryIntegrationTestSuite) TestAdd_UnknownOrder() {
	err := suite.repository.Add(suite.T().Context(), suite.newRequest(kernel.MustNewID(999)))
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OutsourcingRepositoryIntegrationTestSuite) TestUpdate_TerminalRequestFreesOrder() {
	ctx := suite.T().Context()
	r := suite.newRequest(suite.orderID)
	suite.Require().NoError(suite.repository.Add(ctx, r))

	suite.Require().NoError(r.Respond(suite.executor(), false, "fully booked", now.Add(time.Hour)))
	suite.Require().NoError(suite.repository.Update(ctx, r))

	loaded, err := suite.repository.Get(ctx, r.ID())
	suite.Require().NoError(err)
	suite.Equal(outsourcing.Refused, loaded.Status())
	suite.Equal("fully booked", loaded.ClosingNote())
	suite.Require().NotNil(loaded.RespondedAt())
	suite.True(now.Add(time.Hour).Equal(*loaded.RespondedAt()))

	_, err = suite.repository.GetActiveByOrder(ctx, suite.orderID)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	next := suite.newRequest(suite.orderID)
	suite.Require().NoError(suite.repository.Add(ctx, next))

	history, err := suite.repository.ListByOrder(ctx, suite.orderID)
	suite.Require().NoError(err)
	suite.Require().Len(history, 2)
	suite.True(history[0].ID().IsEqual(r.ID()))

	executing, err := suite.repository.ListByExecuting(ctx, kernel.MustNewID(201))
	suite.Require().NoError(err)
	suite.Len(executing, 2)

	requesting, err := suite.repository.ListByRequesting(ctx, kernel.MustNewID(201))
	suite.Require().NoError(err)
	suite.Empty(requesting)
}

func (suite *OutsourcingRepositoryIntegrationTestSuite) TestUpdate_Missing() {
	err := suite.repository.Update(suite.T().Context(), suite.newRequest(suite.orderID))
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestOutsourcingRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OutsourcingRepositoryIntegrationTestSuite))
}
