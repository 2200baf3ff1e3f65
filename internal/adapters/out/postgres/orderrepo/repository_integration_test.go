package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"dentallab/internal/adapters/out/postgres/orderrepo"
	"dentallab/internal/adapters/out/postgres/pgtest"
	"dentallab/internal/core/domain/model/catalog"
	"dentallab/internal/core/domain/model/kernel"
	"dentallab/internal/core/domain/model/order"
	"dentallab/internal/core/ports"
	"dentallab/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

var now = time.Date(2026, time.March, 2, 10, 0, 0, 0, time.UTC)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(aggregate ports.EventSource) {
	m.Called(aggregate)
}

// OrderRepositoryIntegrationTestSuite verifies order persistence against a real PostgreSQL.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	database   *pgtest.Database
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	suite.database = database
	suite.Require().NoError(err)
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Truncate())

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything).Maybe()
	suite.repository = orderrepo.NewGormOrderRepository(suite.database.DB, suite.tracker, false)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.database.Terminate(context.Background()))
}

func (suite *OrderRepositoryIntegrationTestSuite) lab() kernel.Actor {
	a, err := kernel.NewActor(kernel.MustNewID(200), kernel.RoleFulfiller)
	suite.Require().NoError(err)
	return a
}

func (suite *OrderRepositoryIntegrationTestSuite) newOrder(expected *time.Time, stages int) *order.Order {
	ctx := suite.T().Context()
	id, err := suite.repository.NextOrderID(ctx)
	suite.Require().NoError(err)

	initial := make([]order.InitialStage, 0, stages)
	for i := range stages {
		stageID, stageErr := suite.repository.NextStageID(ctx)
		suite.Require().NoError(stageErr)
		initial = append(initial, order.InitialStage{ID: stageID, Name: "Step " + string(rune('A'+i))})
	}

	requester, err := order.NewParty(kernel.MustNewID(100), "Clinica Sorriso")
	suite.Require().NoError(err)
	fulfiller, err := order.NewParty(kernel.MustNewID(200), "Lab Alpha")
	suite.Require().NoError(err)
	value := kernel.MustNewMoney("500")
	quote, err := catalog.NewTerms(kernel.MustNewMoney("500"), 7)
	suite.Require().NoError(err)

	o, err := order.NewOrder(order.NewOrderParams{
		ID:               id,
		Code:             order.NewCode(now),
		Requester:        requester,
		Fulfiller:        fulfiller,
		ServiceType:      kernel.ServiceTypeCrown,
		EntryDate:        now.AddDate(0, 0, -20),
		ExpectedDelivery: expected,
		ChargedValue:     &value,
		Quote:            &quote,
		Details:          "upper left molar",
		InitialStages:    initial,
	}, now)
	suite.Require().NoError(err)
	return o
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_RoundTrip() {
	ctx := suite.T().Context()
	o := suite.newOrder(nil, 3)

	suite.Require().NoError(suite.repository.Add(ctx, o))
	suite.tracker.AssertCalled(suite.T(), "TrackAggregate", o)

	loaded, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(o.Code(), loaded.Code())
	suite.Equal(order.Draft, loaded.Status())
	suite.Equal("500.00", loaded.ChargedValue().String())
	suite.Require().NotNil(loaded.Quote())
	suite.Equal(7, loaded.Quote().LeadTimeDays())
	suite.Equal("upper left molar", loaded.Details())
	suite.True(kernel.DateOf(now.AddDate(0, 0, -20)).Equal(loaded.EntryDate()))
	suite.Require().Len(loaded.Stages(), 3)
	suite.Equal(1, loaded.Stages()[0].Position())
	suite.Equal("Step C", loaded.Stages()[2].Name())

	byCode, err := suite.repository.GetByCode(ctx, o.Code())
	suite.Require().NoError(err)
	suite.True(byCode.ID().IsEqual(o.ID()))

	byStage, err := suite.repository.GetByStageID(ctx, o.Stages()[1].ID())
	suite.Require().NoError(err)
	suite.True(byStage.ID().IsEqual(o.ID()))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_DuplicateCode() {
	ctx := suite.T().Context()
	first := suite.newOrder(nil, 0)
	suite.Require().NoError(suite.repository.Add(ctx, first))

	second := suite.newOrder(nil, 0)
	restored, err := order.RestoreOrder(order.RestoreOrderParams{
		NewOrderParams: order.NewOrderParams{
			ID:          second.ID(),
			Code:        first.Code(),
			Requester:   second.Requester(),
			Fulfiller:   second.Fulfiller(),
			ServiceType: second.ServiceType(),
			EntryDate:   second.EntryDate(),
		},
		Status:    order.Draft,
		CreatedAt: now,
		UpdatedAt: now,
	})
	suite.Require().NoError(err)

	err = suite.repository.Add(ctx, restored)
	suite.Require().ErrorIs(err, ports.ErrOrderCodeTaken)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_PersistsChangesAndNewStages() {
	ctx := suite.T().Context()
	o := suite.newOrder(nil, 1)
	suite.Require().NoError(suite.repository.Add(ctx, o))

	loaded, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(loaded.Transition(suite.lab(), order.InProduction, now))
	_, err = loaded.AdvanceStage(suite.lab(), loaded.Stages()[0].ID(), order.StageCompleted, now)
	suite.Require().NoError(err)
	stageID, err := suite.repository.NextStageID(ctx)
	suite.Require().NoError(err)
	_, err = loaded.AddStage(suite.lab(), stageID, "Glaze", "", now)
	suite.Require().NoError(err)
	suite.Require().NoError(loaded.ChangeChargedValue(suite.lab(), kernel.MustNewMoney("640.50"), now))

	suite.Require().NoError(suite.repository.Update(ctx, loaded))

	reloaded, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.InProduction, reloaded.Status())
	suite.Equal("640.50", reloaded.ChargedValue().String())
	suite.Require().Len(reloaded.Stages(), 2)
	suite.Equal(order.StageCompleted, reloaded.Stages()[0].Status())
	suite.NotNil(reloaded.Stages()[0].CompletedAt())
	suite.Equal("Glaze", reloaded.Stages()[1].Name())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_MissingOrder() {
	o := suite.newOrder(nil, 0)

	err := suite.repository.Update(suite.T().Context(), o)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NotFound() {
	_, err := suite.repository.Get(suite.T().Context(), kernel.MustNewID(999))
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	_, err = suite.repository.GetByStageID(suite.T().Context(), kernel.MustNewID(999))
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestLists() {
	ctx := suite.T().Context()
	late := kernel.DateOf(now.AddDate(0, 0, -5))
	later := kernel.DateOf(now.AddDate(0, 0, -2))
	future := kernel.DateOf(now.AddDate(0, 0, 3))

	a := suite.newOrder(&later, 0)
	b := suite.newOrder(&late, 0)
	c := suite.newOrder(&future, 0)
	d := suite.newOrder(&late, 0)
	suite.Require().NoError(d.Transition(suite.lab(), order.Cancelled, now))
	for _, o := range []*order.Order{a, b, c, d} {
		suite.Require().NoError(suite.repository.Add(ctx, o))
	}

	byRequester, err := suite.repository.ListByRequester(ctx, kernel.MustNewID(100))
	suite.Require().NoError(err)
	suite.Require().Len(byRequester, 4)
	suite.True(byRequester[0].ID().IsEqual(d.ID()))

	byFulfiller, err := suite.repository.ListByFulfiller(ctx, kernel.MustNewID(300))
	suite.Require().NoError(err)
	suite.Empty(byFulfiller)

	overdue, err := suite.repository.ListOverdue(ctx, now)
	suite.Require().NoError(err)
	suite.Require().Len(overdue, 2)
	suite.True(overdue[0].ID().IsEqual(b.ID()))
	suite.True(overdue[1].ID().IsEqual(a.ID()))
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
