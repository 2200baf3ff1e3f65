package order_test

import (
	"testing"
	"time"

	"dentallab/internal/core/domain/model/kernel"
	"dentallab/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

var (
	entry       = time.Date(2026, time.March, 2, 10, 15, 0, 0, time.UTC)
	clinicID    = kernel.MustNewID(100)
	labID       = kernel.MustNewID(200)
	otherLabID  = kernel.MustNewID(201)
	orderID     = kernel.MustNewID(1)
	chargedFive = kernel.MustNewMoney("500")
)

func actor(t *testing.T, id kernel.ID, role kernel.Role) kernel.Actor {
	t.Helper()
	a, err := kernel.NewActor(id, role)
	require.NoError(t, err)
	return a
}

func clinic(t *testing.T) kernel.Actor { return actor(t, clinicID, kernel.RoleRequester) }
func lab(t *testing.T) kernel.Actor    { return actor(t, labID, kernel.RoleFulfiller) }
func admin(t *testing.T) kernel.Actor  { return actor(t, kernel.MustNewID(999), kernel.RoleAdmin) }

func params(t *testing.T) order.NewOrderParams {
	t.Helper()
	requester, err := order.NewParty(clinicID, "Clinica Sorriso")
	require.NoError(t, err)
	fulfiller, err := order.NewParty(labID, "Lab Alpha")
	require.NoError(t, err)
	value := chargedFive

	return order.NewOrderParams{
		ID:           orderID,
		Code:         order.NewCode(entry),
		Requester:    requester,
		Fulfiller:    fulfiller,
		ServiceType:  kernel.ServiceTypeCrown,
		EntryDate:    entry,
		ChargedValue: &value,
		Details:      "upper left molar",
	}
}

func newOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(params(t), entry)
	require.NoError(t, err)
	return o
}

// orderIn walks a fresh order to status through the lab actor.
func orderIn(t *testing.T, status order.Status) *order.Order {
	t.Helper()
	o := newOrder(t)
	if status != order.Draft {
		require.NoError(t, o.Transition(lab(t), status, entry.Add(time.Hour)))
	}
	o.ClearDomainEvents()
	return o
}
