package queries

import (
	"errors"

	"dentallab/internal/core/domain/model/kernel"
	"dentallab/internal/pkg/guard"
)

var (
	ErrListOfferingsQueryIsNotConstructed = errors.New(
		"ListOfferingsQuery must be created via NewListOfferingsByFulfillerQuery or NewListOfferingsByServiceTypeQuery",
	)
)

// ListOfferingsQuery lists catalog entries, either one fulfiller's whole catalog or every
// fulfiller's entry for one service type. Inactive entries are included.
type ListOfferingsQuery struct {
	fulfillerID *kernel.ID
	serviceType kernel.ServiceType

	guard guard.ConstructorGuard
}

func NewListOfferingsByFulfillerQuery(fulfillerID kernel.ID) (ListOfferingsQuery, error) {
	if err := fulfillerID.Validate(); err != nil {
		return ListOfferingsQuery{}, err
	}
	return ListOfferingsQuery{fulfillerID: &fulfillerID, guard: guard.NewConstructorGuard()}, nil
}

func NewListOfferingsByServiceTypeQuery(serviceType kernel.ServiceType) (ListOfferingsQuery, error) {
	if err := serviceType.Validate(); err != nil {
		return ListOfferingsQuery{}, err
	}
	return ListOfferingsQuery{serviceType: serviceType, guard: guard.NewConstructorGuard()}, nil
}

func (q ListOfferingsQuery) Validate() error {
	return q.guard.Validate(ErrListOfferingsQueryIsNotConstructed)
}

func (q ListOfferingsQuery) FulfillerID() *kernel.ID         { return q.fulfillerID }
func (q ListOfferingsQuery) ServiceType() kernel.ServiceType { return q.serviceType }
