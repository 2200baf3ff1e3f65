package commands_test

import (
	"testing"

	"dentallab/internal/core/application/usecases/commands"
	"dentallab/internal/core/domain/model/kernel"
	"dentallab/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCreateParams() commands.CreateOrderParams {
	return commands.CreateOrderParams{
		RequesterID:   clinicID,
		RequesterName: "Clinica Sorriso",
		FulfillerID:   labID,
		FulfillerName: "Lab Alpha",
		ServiceType:   kernel.ServiceTypeCrown,
	}
}

func TestNewCreateOrderCommand_ValidInput(t *testing.T) {
	cmd, err := commands.NewCreateOrderCommand(clinic(t), validCreateParams())
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, kernel.ServiceTypeCrown, cmd.Params().ServiceType)
	assert.True(t, cmd.Actor().IsRequester(clinicID))
}

func TestNewCreateOrderCommand_AdminOnBehalf(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(actor(t, kernel.MustNewID(999), kernel.RoleAdmin), validCreateParams())
	require.NoError(t, err)
}

func TestNewCreateOrderCommand_OtherRequester(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(actor(t, kernel.MustNewID(101), kernel.RoleRequester), validCreateParams())
	require.ErrorIs(t, err, errs.ErrUnauthorized)
}

func TestNewCreateOrderCommand_FulfillerCannotOpen(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(lab(t), validCreateParams())
	require.ErrorIs(t, err, errs.ErrUnauthorized)
}

func TestNewCreateOrderCommand_MissingFields(t *testing.T) {
	p := validCreateParams()
	p.FulfillerID = kernel.ID{}
	p.RequesterName = " "
	p.ServiceType = "BRACES"

	_, err := commands.NewCreateOrderCommand(clinic(t), p)

	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewCreateOrderCommand_InvalidActor(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(kernel.Actor{}, validCreateParams())
	require.ErrorIs(t, err, kernel.ErrActorIsNotConstructed)
}
