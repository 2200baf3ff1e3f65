package queries

import (
	"errors"
	"time"

	"dentallab/internal/core/domain/model/kernel"
	"dentallab/internal/pkg/errs"
	"dentallab/internal/pkg/guard"
)

var (
	ErrListOverdueOrdersQueryIsNotConstructed = errors.New(
		"ListOverdueOrdersQuery must be created via NewListOverdueOrdersQuery constructor",
	)
)

// ListOverdueOrdersQuery lists open orders whose expected delivery date is before today.
type ListOverdueOrdersQuery struct {
	today time.Time

	guard guard.ConstructorGuard
}

func NewListOverdueOrdersQuery(today time.Time) (ListOverdueOrdersQuery, error) {
	if today.IsZero() {
		return ListOverdueOrdersQuery{}, errs.NewValueIsRequiredError("today")
	}
	return ListOverdueOrdersQuery{today: kernel.DateOf(today), guard: guard.NewConstructorGuard()}, nil
}

func (q ListOverdueOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOverdueOrdersQueryIsNotConstructed)
}

func (q ListOverdueOrdersQuery) Today() time.Time { return q.today }
