package order

import (
	"strings"

	"dentallab/internal/core/domain/model/kernel"
	"dentallab/internal/pkg/errs"
	"dentallab/internal/pkg/guard"
)

const maxPartyNameLength = 200

var ErrPartyIsNotConstructed = errs.NewValueIsRequiredError("party must be created via NewParty")

// Party is a requester or fulfiller as seen by an order: an id and the display name captured
// when the order was created.
type Party struct {
	id    kernel.ID
	name  string
	guard guard.ConstructorGuard
}

func NewParty(id kernel.ID, name string) (Party, error) {
	if err := id.Validate(); err != nil {
		return Party{}, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return Party{}, errs.NewValueIsRequiredError("party name")
	}
	if len(name) > maxPartyNameLength {
		return Party{}, errs.NewValueIsOutOfRangeError("party name length", len(name), 1, maxPartyNameLength)
	}
	return Party{id: id, name: name, guard: guard.NewConstructorGuard()}, nil
}

func (p Party) Validate() error {
	return p.guard.Validate(ErrPartyIsNotConstructed)
}

func (p Party) ID() kernel.ID {
	return p.id
}

func (p Party) Name() string {
	return p.name
}
