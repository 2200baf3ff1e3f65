package commands_test

import (
	"testing"
	"time"

	"dentallab/internal/core/domain/model/catalog"
	"dentallab/internal/core/domain/model/kernel"
	"dentallab/internal/core/domain/model/order"
	"dentallab/internal/core/domain/model/outsourcing"

	"github.com/stretchr/testify/require"
)

var (
	fixedNow = time.Date(2026, time.March, 2, 10, 0, 0, 0, time.UTC)
	clinicID = kernel.MustNewID(100)
	labID    = kernel.MustNewID(200)
	otherLab = kernel.MustNewID(201)
	orderID  = kernel.MustNewID(1)
)

func actor(t *testing.T, id kernel.ID, role kernel.Role) kernel.Actor {
	t.Helper()
	a, err := kernel.NewActor(id, role)
	require.NoError(t, err)
	return a
}

func clinic(t *testing.T) kernel.Actor { return actor(t, clinicID, kernel.RoleRequester) }
func lab(t *testing.T) kernel.Actor    { return actor(t, labID, kernel.RoleFulfiller) }
func delegate(t *testing.T) kernel.Actor {
	return actor(t, otherLab, kernel.RoleFulfiller)
}

func crownOffering(t *testing.T, fulfillerID kernel.ID, policy catalog.ExecutionPolicy) *catalog.Offering {
	t.Helper()
	spec := catalog.Spec{Policy: policy}
	if policy.AllowsSelf() {
		self, err := catalog.NewTerms(kernel.MustNewMoney("500"), 7)
		require.NoError(t, err)
		spec.SelfTerms = &self
	}
	if policy.AllowsDelegate() {
		del, err := catalog.NewTerms(kernel.MustNewMoney("400"), 10)
		require.NoError(t, err)
		spec.DelegateTerms = &del
	}
	o, err := catalog.NewOffering(fulfillerID, kernel.ServiceTypeCrown, spec, fixedNow)
	require.NoError(t, err)
	return o
}

func crownOrder(t *testing.T, status order.Status) *order.Order {
	t.Helper()
	requester, err := order.NewParty(clinicID, "Clinica Sorriso")
	require.NoError(t, err)
	fulfiller, err := order.NewParty(labID, "Lab Alpha")
	require.NoError(t, err)
	value := kernel.MustNewMoney("500")

	o, err := order.NewOrder(order.NewOrderParams{
		ID:           orderID,
		Code:         order.NewCode(fixedNow),
		Requester:    requester,
		Fulfiller:    fulfiller,
		ServiceType:  kernel.ServiceTypeCrown,
		EntryDate:    fixedNow,
		ChargedValue: &value,
	}, fixedNow)
	require.NoError(t, err)
	if status != order.Draft {
		require.NoError(t, o.Transition(lab(t), status, fixedNow))
	}
	o.ClearDomainEvents()
	return o
}

func pendingRequest(t *testing.T) *outsourcing.Request {
	t.Helper()
	r, err := outsourcing.NewRequest(outsourcing.NewRequestParams{
		ID:                    kernel.MustNewID(9),
		OrderID:               orderID,
		RequestingFulfillerID: labID,
		ExecutingFulfillerID:  otherLab,
		Percentage:            kernel.MustNewPercentage("60"),
	}, fixedNow)
	require.NoError(t, err)
	r.ClearDomainEvents()
	return r
}

func noop() {}
