package services_test

import (
	"testing"
	"time"

	"dentallab/internal/core/domain/model/catalog"
	"dentallab/internal/core/domain/model/kernel"
	"dentallab/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

var (
	now      = time.Date(2026, time.March, 2, 10, 0, 0, 0, time.UTC)
	clinicID = kernel.MustNewID(100)
	f1       = kernel.MustNewID(200)
	f2       = kernel.MustNewID(201)
	f3       = kernel.MustNewID(202)
	f4       = kernel.MustNewID(203)
)

func terms(t *testing.T, price string, days int) *catalog.Terms {
	t.Helper()
	tr, err := catalog.NewTerms(kernel.MustNewMoney(price), days)
	require.NoError(t, err)
	return &tr
}

func offering(t *testing.T, fulfillerID kernel.ID, policy catalog.ExecutionPolicy) *catalog.Offering {
	t.Helper()
	spec := catalog.Spec{Policy: policy}
	if policy.AllowsSelf() {
		spec.SelfTerms = terms(t, "500", 7)
	}
	if policy.AllowsDelegate() {
		spec.DelegateTerms = terms(t, "400", 10)
	}
	o, err := catalog.NewOffering(fulfillerID, kernel.ServiceTypeCrown, spec, now)
	require.NoError(t, err)
	return o
}

func fulfiller(t *testing.T, id kernel.ID) kernel.Actor {
	t.Helper()
	a, err := kernel.NewActor(id, kernel.RoleFulfiller)
	require.NoError(t, err)
	return a
}

// crownOrder returns an order assigned to f1 in the given status.
func crownOrder(t *testing.T, status order.Status) *order.Order {
	t.Helper()
	requester, err := order.NewParty(clinicID, "Clinica Sorriso")
	require.NoError(t, err)
	fulfillerParty, err := order.NewParty(f1, "Lab Alpha")
	require.NoError(t, err)
	value := kernel.MustNewMoney("500")

	o, err := order.NewOrder(order.NewOrderParams{
		ID:           kernel.MustNewID(1),
		Code:         order.NewCode(now),
		Requester:    requester,
		Fulfiller:    fulfillerParty,
		ServiceType:  kernel.ServiceTypeCrown,
		EntryDate:    now,
		ChargedValue: &value,
	}, now)
	require.NoError(t, err)
	if status != order.Draft {
		require.NoError(t, o.Transition(fulfiller(t, f1), status, now))
	}
	return o
}
