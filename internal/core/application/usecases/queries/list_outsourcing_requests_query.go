package queries

import (
	"errors"

	"dentallab/internal/core/domain/model/kernel"
	"dentallab/internal/pkg/guard"
)

var (
	ErrListOutsourcingRequestsQueryIsNotConstructed = errors.New(
		"ListOutsourcingRequestsQuery must be created via one of its NewListOutsourcingRequestsBy* constructors",
	)
)

type outsourcingFilter int

const (
	byOrder outsourcingFilter = iota + 1
	byRequesting
	byExecuting
)

// ListOutsourcingRequestsQuery lists outsourcing requests of one order, or those a fulfiller
// opened or was asked to execute. Terminal requests are included.
type ListOutsourcingRequestsQuery struct {
	filter outsourcingFilter
	id     kernel.ID

	guard guard.ConstructorGuard
}

func NewListOutsourcingRequestsByOrderQuery(orderID kernel.ID) (ListOutsourcingRequestsQuery, error) {
	return newListOutsourcingRequestsQuery(byOrder, orderID)
}

func NewListOutsourcingRequestsByRequestingQuery(fulfillerID kernel.ID) (ListOutsourcingRequestsQuery, error) {
	return newListOutsourcingRequestsQuery(byRequesting, fulfillerID)
}

func NewListOutsourcingRequestsByExecutingQuery(fulfillerID kernel.ID) (ListOutsourcingRequestsQuery, error) {
	return newListOutsourcingRequestsQuery(byExecuting, fulfillerID)
}

func newListOutsourcingRequestsQuery(filter outsourcingFilter, id kernel.ID) (ListOutsourcingRequestsQuery, error) {
	if err := id.Validate(); err != nil {
		return ListOutsourcingRequestsQuery{}, err
	}
	return ListOutsourcingRequestsQuery{filter: filter, id: id, guard: guard.NewConstructorGuard()}, nil
}

func (q ListOutsourcingRequestsQuery) Validate() error {
	return q.guard.Validate(ErrListOutsourcingRequestsQueryIsNotConstructed)
}
