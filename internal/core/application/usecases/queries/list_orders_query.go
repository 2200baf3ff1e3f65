package queries

import (
	"errors"

	"dentallab/internal/core/domain/model/kernel"
	"dentallab/internal/pkg/guard"
)

var (
	ErrListOrdersQueryIsNotConstructed = errors.New(
		"ListOrdersQuery must be created via NewListOrdersByRequesterQuery or NewListOrdersByFulfillerQuery",
	)
)

// ListOrdersQuery lists the orders of one party, newest first. Exactly one of the party ids
// is set.
//
// Example:
//
//	query, err := NewListOrdersByFulfillerQuery(labID)
//	orders, err := NewListOrdersQueryHandler(factory).Handle(ctx, query)
type ListOrdersQuery struct {
	requesterID *kernel.ID
	fulfillerID *kernel.ID

	guard guard.ConstructorGuard
}

func NewListOrdersByRequesterQuery(requesterID kernel.ID) (ListOrdersQuery, error) {
	if err := requesterID.Validate(); err != nil {
		return ListOrdersQuery{}, err
	}
	return ListOrdersQuery{requesterID: &requesterID, guard: guard.NewConstructorGuard()}, nil
}

func NewListOrdersByFulfillerQuery(fulfillerID kernel.ID) (ListOrdersQuery, error) {
	if err := fulfillerID.Validate(); err != nil {
		return ListOrdersQuery{}, err
	}
	return ListOrdersQuery{fulfillerID: &fulfillerID, guard: guard.NewConstructorGuard()}, nil
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

func (q ListOrdersQuery) RequesterID() *kernel.ID { return q.requesterID }
func (q ListOrdersQuery) FulfillerID() *kernel.ID { return q.fulfillerID }
