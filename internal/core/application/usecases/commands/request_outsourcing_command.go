package commands

import (
	"errors"
	"strings"

	"dentallab/internal/core/domain/model/kernel"
	"dentallab/internal/core/domain/model/outsourcing"
	"dentallab/internal/pkg/guard"
)

var (
	ErrRequestOutsourcingCommandIsNotConstructed = errors.New(
		"RequestOutsourcingCommand must be created via NewRequestOutsourcingCommand constructor",
	)
)

// RequestOutsourcingParams carries the caller's part of a delegation proposal.
type RequestOutsourcingParams struct {
	OrderID            kernel.ID
	DelegateID         kernel.ID
	Percentage         kernel.Percentage
	Kind               outsourcing.Kind
	ServiceDescription string
	Rationale          string
}

// RequestOutsourcingCommand asks to delegate an order's work to another fulfiller.
//
// Example:
//
//	cmd, err := NewRequestOutsourcingCommand(lab, RequestOutsourcingParams{
//	    OrderID:    orderID,
//	    DelegateID: otherLabID,
//	    Percentage: kernel.MustNewPercentage("60"),
//	})
//	request, err := handler.Handle(ctx, cmd)
type RequestOutsourcingCommand struct { //nolint:recvcheck //using for validation
	actor  kernel.Actor
	params RequestOutsourcingParams

	guard guard.ConstructorGuard
}

func NewRequestOutsourcingCommand(actor kernel.Actor, params RequestOutsourcingParams) (RequestOutsourcingCommand, error) {
	cmd := RequestOutsourcingCommand{
		guard: guard.NewConstructorGuard(),
	}

	kind, kindErr := outsourcing.ParseKind(string(params.Kind))
	if err := errors.Join(
		setActor(&cmd.actor, actor),
		params.OrderID.Validate(),
		params.DelegateID.Validate(),
		params.Percentage.Validate(),
		kindErr,
	); err != nil {
		return RequestOutsourcingCommand{}, err
	}

	params.Kind = kind
	params.ServiceDescription = strings.TrimSpace(params.ServiceDescription)
	params.Rationale = strings.TrimSpace(params.Rationale)
	cmd.params = params

	return cmd, nil
}

func (c RequestOutsourcingCommand) Validate() error {
	return c.guard.Validate(ErrRequestOutsourcingCommandIsNotConstructed)
}

func (c RequestOutsourcingCommand) Actor() kernel.Actor              { return c.actor }
func (c RequestOutsourcingCommand) Params() RequestOutsourcingParams { return c.params }
