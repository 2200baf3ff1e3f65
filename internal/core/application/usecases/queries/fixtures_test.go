package queries_test

import (
	"testing"
	"time"

	"dentallab/internal/adapters/out/memory"
	"dentallab/internal/core/application/usecases/queries"
	"dentallab/internal/core/domain/model/catalog"
	"dentallab/internal/core/domain/model/kernel"
	"dentallab/internal/core/domain/model/order"
	"dentallab/internal/core/domain/model/outsourcing"
	"dentallab/internal/core/ports"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var (
	now      = time.Date(2026, time.March, 2, 10, 0, 0, 0, time.UTC)
	clinicID = kernel.MustNewID(100)
	labID    = kernel.MustNewID(200)
	f2       = kernel.MustNewID(201)
	f3       = kernel.MustNewID(202)
	f4       = kernel.MustNewID(203)
)

type FuncReadUoWFactory func() queries.ReadUoW

func (f FuncReadUoWFactory) Create() queries.ReadUoW {
	return f()
}

type env struct {
	factory ports.UnitOfWorkFactory
	reader  queries.ReadUoWFactory
}

func newEnv() env {
	factory := memory.NewUnitOfWorkFactory(memory.NewStore(), nil, zap.NewNop())
	return env{
		factory: factory,
		reader:  FuncReadUoWFactory(func() queries.ReadUoW { return factory.Create() }),
	}
}

func actor(t *testing.T, id kernel.ID, role kernel.Role) kernel.Actor {
	t.Helper()
	a, err := kernel.NewActor(id, role)
	require.NoError(t, err)
	return a
}

func terms(t *testing.T, price string, days int) *catalog.Terms {
	t.Helper()
	tt, err := catalog.NewTerms(kernel.MustNewMoney(price), days)
	require.NoError(t, err)
	return &tt
}

func (e env) saveOffering(t *testing.T, fid kernel.ID, spec catalog.Spec, active bool) {
	t.Helper()
	o, err := catalog.RestoreOffering(fid, kernel.ServiceTypeCrown, spec, active, now)
	require.NoError(t, err)
	require.NoError(t, e.factory.Create().OfferingRepository().Save(t.Context(), o))
}

func (e env) addOrder(t *testing.T, id int64, status order.Status, expected *time.Time) *order.Order {
	t.Helper()
	requester, err := order.NewParty(clinicID, "Clinica Sorriso")
	require.NoError(t, err)
	fulfiller, err := order.NewParty(labID, "Lab Alpha")
	require.NoError(t, err)
	value := kernel.MustNewMoney("500")

	o, err := order.NewOrder(order.NewOrderParams{
		ID:               kernel.MustNewID(id),
		Code:             order.NewCode(now),
		Requester:        requester,
		Fulfiller:        fulfiller,
		ServiceType:      kernel.ServiceTypeCrown,
		EntryDate:        now.AddDate(0, 0, -30),
		ExpectedDelivery: expected,
		ChargedValue:     &value,
	}, now)
	require.NoError(t, err)
	if status != order.Draft {
		require.NoError(t, o.Transition(actor(t, labID, kernel.RoleFulfiller), status, now))
	}
	require.NoError(t, e.factory.Create().OrderRepository().Add(t.Context(), o))
	return o
}

func (e env) addRequest(t *testing.T, id int64, orderID kernel.ID, executing kernel.ID) *outsourcing.Request {
	t.Helper()
	r, err := outsourcing.NewRequest(outsourcing.NewRequestParams{
		ID:                    kernel.MustNewID(id),
		OrderID:               orderID,
		RequestingFulfillerID: labID,
		ExecutingFulfillerID:  executing,
		Percentage:            kernel.MustNewPercentage("60"),
	}, now)
	require.NoError(t, err)
	require.NoError(t, e.factory.Create().OutsourcingRepository().Add(t.Context(), r))
	return r
}
