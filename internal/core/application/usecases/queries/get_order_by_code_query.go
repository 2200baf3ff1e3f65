package queries

import (
	"errors"

	"dentallab/internal/core/domain/model/order"
	"dentallab/internal/pkg/guard"
)

var (
	ErrGetOrderByCodeQueryIsNotConstructed = errors.New(
		"GetOrderByCodeQuery must be created via NewGetOrderByCodeQuery constructor",
	)
)

// GetOrderByCodeQuery retrieves an order by the code printed on lab paperwork.
type GetOrderByCodeQuery struct {
	code order.Code

	guard guard.ConstructorGuard
}

func NewGetOrderByCodeQuery(code string) (GetOrderByCodeQuery, error) {
	parsed, err := order.ParseCode(code)
	if err != nil {
		return GetOrderByCodeQuery{}, err
	}
	return GetOrderByCodeQuery{code: parsed, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderByCodeQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderByCodeQueryIsNotConstructed)
}

func (q GetOrderByCodeQuery) Code() order.Code { return q.code }
