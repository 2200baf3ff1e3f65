package commands

import (
	"errors"
	"time"

	"dentallab/internal/pkg/errs"
	"dentallab/internal/pkg/guard"
)

var (
	ErrFlagOverdueOrdersCommandIsNotConstructed = errors.New(
		"FlagOverdueOrdersCommand must be created via NewFlagOverdueOrdersCommand constructor",
	)
)

// FlagOverdueOrdersCommand announces every open order whose expected delivery is before today.
// It is issued by the scheduler, not by a user.
type FlagOverdueOrdersCommand struct { //nolint:recvcheck //using for validation
	today time.Time

	guard guard.ConstructorGuard
}

func NewFlagOverdueOrdersCommand(today time.Time) (FlagOverdueOrdersCommand, error) {
	if today.IsZero() {
		return FlagOverdueOrdersCommand{}, errs.NewValueIsRequiredError("today")
	}
	return FlagOverdueOrdersCommand{
		today: today.UTC(),
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (c FlagOverdueOrdersCommand) Validate() error {
	return c.guard.Validate(ErrFlagOverdueOrdersCommandIsNotConstructed)
}

func (c FlagOverdueOrdersCommand) Today() time.Time { return c.today }
