package memory_test

import (
	"context"
	"testing"
	"time"

	"dentallab/internal/adapters/out/memory"
	"dentallab/internal/core/domain/model/catalog"
	"dentallab/internal/core/domain/model/kernel"
	"dentallab/internal/core/domain/model/order"
	"dentallab/internal/core/domain/model/outsourcing"
	"dentallab/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var (
	now      = time.Date(2026, time.March, 2, 10, 0, 0, 0, time.UTC)
	clinicID = kernel.MustNewID(100)
	labID    = kernel.MustNewID(200)
	otherLab = kernel.MustNewID(201)
)

type MockPublisher struct{ mock.Mock }

func (m *MockPublisher) Publish(ctx context.Context, events ...kernel.DomainEvent) error {
	args := m.Called(ctx, events)
	return args.Error(0)
}

func newFactory(publisher ports.EventPublisher) *memory.UnitOfWorkFactory {
	return memory.NewUnitOfWorkFactory(memory.NewStore(), publisher, zap.NewNop())
}

func labActor(t *testing.T) kernel.Actor {
	t.Helper()
	a, err := kernel.NewActor(labID, kernel.RoleFulfiller)
	require.NoError(t, err)
	return a
}

func newOrder(t *testing.T, id kernel.ID, expected *time.Time) *order.Order {
	t.Helper()
	requester, err := order.NewParty(clinicID, "Clinica Sorriso")
	require.NoError(t, err)
	fulfiller, err := order.NewParty(labID, "Lab Alpha")
	require.NoError(t, err)
	value := kernel.MustNewMoney("500")

	o, err := order.NewOrder(order.NewOrderParams{
		ID:               id,
		Code:             order.NewCode(now),
		Requester:        requester,
		Fulfiller:        fulfiller,
		ServiceType:      kernel.ServiceTypeCrown,
		EntryDate:        now.AddDate(0, 0, -20),
		ExpectedDelivery: expected,
		ChargedValue:     &value,
		InitialStages:    []order.InitialStage{{ID: kernel.MustNewID(id.Int64() * 10), Name: "Reception"}},
	}, now)
	require.NoError(t, err)
	return o
}

func newOffering(t *testing.T, fulfillerID kernel.ID, st kernel.ServiceType) *catalog.Offering {
	t.Helper()
	terms, err := catalog.NewTerms(kernel.MustNewMoney("400"), 10)
	require.NoError(t, err)
	o, err := catalog.NewOffering(fulfillerID, st, catalog.Spec{
		Policy:        catalog.PolicyDelegateOnly,
		DelegateTerms: &terms,
	}, now)
	require.NoError(t, err)
	return o
}

func newRequest(t *testing.T, id, orderID kernel.ID) *outsourcing.Request {
	t.Helper()
	r, err := outsourcing.NewRequest(outsourcing.NewRequestParams{
		ID:                    id,
		OrderID:               orderID,
		RequestingFulfillerID: labID,
		ExecutingFulfillerID:  otherLab,
		Percentage:            kernel.MustNewPercentage("60"),
	}, now)
	require.NoError(t, err)
	return r
}
