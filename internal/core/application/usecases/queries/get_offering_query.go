package queries

import (
	"errors"

	"dentallab/internal/core/domain/model/kernel"
	"dentallab/internal/pkg/guard"
)

var (
	ErrGetOfferingQueryIsNotConstructed = errors.New(
		"GetOfferingQuery must be created via NewGetOfferingQuery constructor",
	)
)

// GetOfferingQuery retrieves a fulfiller's catalog entry for one service type.
type GetOfferingQuery struct {
	fulfillerID kernel.ID
	serviceType kernel.ServiceType

	guard guard.ConstructorGuard
}

func NewGetOfferingQuery(fulfillerID kernel.ID, serviceType kernel.ServiceType) (GetOfferingQuery, error) {
	if err := errors.Join(fulfillerID.Validate(), serviceType.Validate()); err != nil {
		return GetOfferingQuery{}, err
	}
	return GetOfferingQuery{
		fulfillerID: fulfillerID,
		serviceType: serviceType,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (q GetOfferingQuery) Validate() error {
	return q.guard.Validate(ErrGetOfferingQueryIsNotConstructed)
}

func (q GetOfferingQuery) FulfillerID() kernel.ID          { return q.fulfillerID }
func (q GetOfferingQuery) ServiceType() kernel.ServiceType { return q.serviceType }
