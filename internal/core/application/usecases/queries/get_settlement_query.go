package queries

import (
	"errors"

	"dentallab/internal/core/domain/model/kernel"
	"dentallab/internal/pkg/guard"
)

var (
	ErrGetSettlementQueryIsNotConstructed = errors.New(
		"GetSettlementQuery must be created via NewGetSettlementQuery constructor",
	)
)

// GetSettlementQuery computes what the delegate of an outsourcing request is owed.
// The amount is derived from the order's charged value at the time of the call, so editing
// the charged value later changes the result.
type GetSettlementQuery struct {
	requestID kernel.ID

	guard guard.ConstructorGuard
}

func NewGetSettlementQuery(requestID kernel.ID) (GetSettlementQuery, error) {
	if err := requestID.Validate(); err != nil {
		return GetSettlementQuery{}, err
	}
	return GetSettlementQuery{requestID: requestID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetSettlementQuery) Validate() error {
	return q.guard.Validate(ErrGetSettlementQueryIsNotConstructed)
}

func (q GetSettlementQuery) RequestID() kernel.ID { return q.requestID }
