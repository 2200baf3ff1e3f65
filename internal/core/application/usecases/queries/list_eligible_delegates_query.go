package queries

import (
	"errors"

	"dentallab/internal/core/domain/model/kernel"
	"dentallab/internal/pkg/guard"
)

var (
	ErrListEligibleDelegatesQueryIsNotConstructed = errors.New(
		"ListEligibleDelegatesQuery must be created via NewListEligibleDelegatesQuery constructor",
	)
)

// ListEligibleDelegatesQuery finds the fulfillers an order's work could be outsourced to.
// An empty result means no delegate is available and is not an error.
//
// Example:
//
//	query, err := NewListEligibleDelegatesQuery(orderID)
//	delegates, err := NewListEligibleDelegatesQueryHandler(factory).Handle(ctx, query)
//	for _, d := range delegates {
//	    fmt.Printf("%s charges %s in %d days\n", d.FulfillerID, d.Terms.Price, d.Terms.LeadTimeDays)
//	}
type ListEligibleDelegatesQuery struct {
	orderID kernel.ID

	guard guard.ConstructorGuard
}

func NewListEligibleDelegatesQuery(orderID kernel.ID) (ListEligibleDelegatesQuery, error) {
	if err := orderID.Validate(); err != nil {
		return ListEligibleDelegatesQuery{}, err
	}
	return ListEligibleDelegatesQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q ListEligibleDelegatesQuery) Validate() error {
	return q.guard.Validate(ErrListEligibleDelegatesQueryIsNotConstructed)
}

func (q ListEligibleDelegatesQuery) OrderID() kernel.ID { return q.orderID }
