package services

import (
	"errors"
	"fmt"
	"time"

	"dentallab/internal/core/domain/model/catalog"
	"dentallab/internal/core/domain/model/kernel"
	"dentallab/internal/pkg/errs"
)

// PricingResolver turns a catalog entry and an execution mode into price and lead time.
//
// Business rules:
//   - A missing or inactive offering fails with InvalidServiceOffering
//   - A mode forbidden by the declared policy fails with PolicyMismatch
//
// Example usage:
//
//	resolver := services.NewPricingResolver()
//	terms, err := resolver.Resolve(offering, catalog.ModeDelegate)
type PricingResolver struct{}

func NewPricingResolver() PricingResolver {
	return PricingResolver{}
}

// Resolve returns the terms offering declares for mode.
func (r PricingResolver) Resolve(offering *catalog.Offering, mode catalog.ExecutionMode) (catalog.Terms, error) {
	if err := offering.Validate(); err != nil {
		return catalog.Terms{}, errs.NewInvalidServiceOfferingError("no catalog entry for the requested service")
	}
	if !offering.IsActive() {
		return catalog.Terms{}, errs.NewInvalidServiceOfferingError(fmt.Sprintf(
			"fulfiller %s no longer offers %s", offering.FulfillerID(), offering.ServiceType()))
	}
	return offering.Resolve(mode)
}

// Quote is what a new order captures from the catalog. Terms is nil when the order's price
// was set explicitly against a DELEGATE_ONLY offering.
type Quote struct {
	Terms            *catalog.Terms
	ChargedValue     kernel.Money
	ExpectedDelivery *time.Time
}

// QuoteOrder prices a new order in self mode.
//
// An explicit charged value always wins over the catalog price. When the offering does not
// allow self execution an explicit charged value is required. The expected delivery date
// defaults to the entry date plus the quoted lead time.
func (r PricingResolver) QuoteOrder(
	offering *catalog.Offering,
	explicitValue *kernel.Money,
	expectedDelivery *time.Time,
	entryDate time.Time,
) (Quote, error) {
	terms, err := r.Resolve(offering, catalog.ModeSelf)
	if err != nil {
		if !errors.Is(err, errs.ErrPolicyMismatch) || !offering.Policy().AllowsDelegate() {
			return Quote{}, err
		}
		if explicitValue == nil {
			return Quote{}, errs.NewValueIsRequiredErrorWithCause("charged value",
				fmt.Errorf("%s is only offered by delegation, an explicit charged value is required", offering.ServiceType()))
		}
		return Quote{ChargedValue: *explicitValue, ExpectedDelivery: expectedDelivery}, nil
	}

	q := Quote{Terms: &terms, ChargedValue: terms.Price(), ExpectedDelivery: expectedDelivery}
	if explicitValue != nil {
		q.ChargedValue = *explicitValue
	}
	if q.ExpectedDelivery == nil {
		due := kernel.DateOf(entryDate).AddDate(0, 0, terms.LeadTimeDays())
		q.ExpectedDelivery = &due
	}
	return q, nil
}
