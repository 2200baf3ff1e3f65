package catalog

import (
	"errors"

	"dentallab/internal/core/domain/model/kernel"
	"dentallab/internal/pkg/errs"
	"dentallab/internal/pkg/guard"
)

const maxLeadTimeDays = 365

var ErrTermsIsNotConstructed = errs.NewValueIsRequiredError("terms must be created via NewTerms")

// Terms is a price and lead time pair.
type Terms struct {
	price        kernel.Money
	leadTimeDays int
	guard        guard.ConstructorGuard
}

func NewTerms(price kernel.Money, leadTimeDays int) (Terms, error) {
	var leadErr error
	if leadTimeDays < 1 || leadTimeDays > maxLeadTimeDays {
		leadErr = errs.NewValueIsOutOfRangeError("lead time days", leadTimeDays, 1, maxLeadTimeDays)
	}
	if err := errors.Join(price.Validate(), leadErr); err != nil {
		return Terms{}, err
	}
	return Terms{price: price, leadTimeDays: leadTimeDays, guard: guard.NewConstructorGuard()}, nil
}

func (t Terms) Validate() error {
	return t.guard.Validate(ErrTermsIsNotConstructed)
}

func (t Terms) Price() kernel.Money {
	return t.price
}

func (t Terms) LeadTimeDays() int {
	return t.leadTimeDays
}
