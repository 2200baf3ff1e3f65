package commands

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"dentallab/internal/core/domain/model/kernel"
	"dentallab/internal/pkg/errs"
	"dentallab/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// CreateOrderParams carries the caller's input for a new order.
type CreateOrderParams struct {
	RequesterID       kernel.ID
	RequesterName     string
	FulfillerID       kernel.ID
	FulfillerName     string
	ServiceType       kernel.ServiceType
	EntryDate         *time.Time
	ExpectedDelivery  *time.Time
	ChargedValue      *kernel.Money
	Details           string
	WithDefaultStages bool
}

// CreateOrderCommand represents a request by a clinic (or an admin on its behalf) to open an
// order with a fulfiller.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(actor, CreateOrderParams{
//	    RequesterID:   clinicID,
//	    RequesterName: "Clinica Sorriso",
//	    FulfillerID:   labID,
//	    FulfillerName: "Lab Alpha",
//	    ServiceType:   kernel.ServiceTypeCrown,
//	})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	actor  kernel.Actor
	params CreateOrderParams

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates the caller's input. The actor must be the requester named
// in params or an admin.
func NewCreateOrderCommand(actor kernel.Actor, params CreateOrderParams) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		setActor(&cmd.actor, actor),
		cmd.setParams(params),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	if !actor.IsAdmin() && !actor.IsRequester(params.RequesterID) {
		return CreateOrderCommand{}, errs.NewUnauthorizedError(actor,
			fmt.Sprintf("open an order for requester %s", params.RequesterID))
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) Actor() kernel.Actor       { return c.actor }
func (c CreateOrderCommand) Params() CreateOrderParams { return c.params }

func (c *CreateOrderCommand) setParams(p CreateOrderParams) error {
	var problems []error
	if err := p.RequesterID.Validate(); err != nil {
		problems = append(problems, errs.NewValueIsRequiredErrorWithCause("requester id", err))
	}
	if err := p.FulfillerID.Validate(); err != nil {
		problems = append(problems, errs.NewValueIsRequiredErrorWithCause("fulfiller id", err))
	}
	if strings.TrimSpace(p.RequesterName) == "" {
		problems = append(problems, errs.NewValueIsRequiredError("requester name"))
	}
	if strings.TrimSpace(p.FulfillerName) == "" {
		problems = append(problems, errs.NewValueIsRequiredError("fulfiller name"))
	}
	if err := p.ServiceType.Validate(); err != nil {
		problems = append(problems, err)
	}
	if p.ChargedValue != nil {
		if err := p.ChargedValue.Validate(); err != nil {
			problems = append(problems, err)
		}
	}
	if err := errors.Join(problems...); err != nil {
		return err
	}

	c.params = p
	return nil
}
