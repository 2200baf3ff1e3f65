package queries

import (
	"errors"

	"dentallab/internal/core/domain/model/kernel"
	"dentallab/internal/pkg/guard"
)

var (
	ErrGetOutsourcingRequestQueryIsNotConstructed = errors.New(
		"GetOutsourcingRequestQuery must be created via NewGetOutsourcingRequestQuery constructor",
	)
)

type GetOutsourcingRequestQuery struct {
	requestID kernel.ID

	guard guard.ConstructorGuard
}

func NewGetOutsourcingRequestQuery(requestID kernel.ID) (GetOutsourcingRequestQuery, error) {
	if err := requestID.Validate(); err != nil {
		return GetOutsourcingRequestQuery{}, err
	}
	return GetOutsourcingRequestQuery{requestID: requestID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOutsourcingRequestQuery) Validate() error {
	return q.guard.Validate(ErrGetOutsourcingRequestQueryIsNotConstructed)
}

func (q GetOutsourcingRequestQuery) RequestID() kernel.ID { return q.requestID }
