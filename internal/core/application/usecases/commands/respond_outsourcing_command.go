package commands

import (
	"errors"
	"strings"

	"dentallab/internal/core/domain/model/kernel"
	"dentallab/internal/pkg/guard"
)

var (
	ErrRespondOutsourcingCommandIsNotConstructed = errors.New(
		"RespondOutsourcingCommand must be created via NewRespondOutsourcingCommand constructor",
	)
)

// RespondOutsourcingCommand is the delegate's answer to a proposal.
type RespondOutsourcingCommand struct { //nolint:recvcheck //using for validation
	actor     kernel.Actor
	requestID kernel.ID
	accept    bool
	note      string

	guard guard.ConstructorGuard
}

func NewRespondOutsourcingCommand(actor kernel.Actor, requestID kernel.ID, accept bool, note string) (RespondOutsourcingCommand, error) {
	cmd := RespondOutsourcingCommand{
		accept: accept,
		note:   strings.TrimSpace(note),
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		setActor(&cmd.actor, actor),
		setID(&cmd.requestID, requestID),
	); err != nil {
		return RespondOutsourcingCommand{}, err
	}

	return cmd, nil
}

func (c RespondOutsourcingCommand) Validate() error {
	return c.guard.Validate(ErrRespondOutsourcingCommandIsNotConstructed)
}

func (c RespondOutsourcingCommand) Actor() kernel.Actor  { return c.actor }
func (c RespondOutsourcingCommand) RequestID() kernel.ID { return c.requestID }
func (c RespondOutsourcingCommand) Accept() bool         { return c.accept }
func (c RespondOutsourcingCommand) Note() string         { return c.note }
