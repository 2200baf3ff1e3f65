package kernel

import (
	"errors"
	"fmt"

	"dentallab/internal/pkg/errs"
	"dentallab/internal/pkg/guard"
)

var ErrActorIsNotConstructed = errs.NewValueIsRequiredError("actor must be created via NewActor")

// Role is the capacity in which an actor calls the engine.
type Role int

const (
	RoleUnknown Role = iota
	// RoleRequester is a clinic commissioning orders.
	RoleRequester
	// RoleFulfiller is a lab producing orders or executing delegated work.
	RoleFulfiller
	// RoleAdmin may perform any fulfiller-side transition.
	RoleAdmin
)

func getValidRoleStrings() map[Role]string {
	return map[Role]string{
		RoleRequester: "REQUESTER",
		RoleFulfiller: "FULFILLER",
		RoleAdmin:     "ADMIN",
	}
}

// ParseRole matches s exactly against the role names. No normalisation is applied.
func ParseRole(s string) (Role, error) {
	for role, name := range getValidRoleStrings() {
		if name == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a known role", s))
}

func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

func (r Role) String() string {
	if s, ok := getValidRoleStrings()[r]; ok {
		return s
	}
	return "UNKNOWN"
}

// Actor is the calling identity. It is always passed explicitly; the engine never
// reads identity from shared state.
type Actor struct {
	id    ID
	role  Role
	guard guard.ConstructorGuard
}

func NewActor(id ID, role Role) (Actor, error) {
	if err := errors.Join(id.Validate(), role.Validate()); err != nil {
		return Actor{}, err
	}
	return Actor{id: id, role: role, guard: guard.NewConstructorGuard()}, nil
}

func (a Actor) Validate() error {
	return a.guard.Validate(ErrActorIsNotConstructed)
}

func (a Actor) ID() ID {
	return a.id
}

func (a Actor) Role() Role {
	return a.role
}

func (a Actor) IsAdmin() bool {
	return a.role == RoleAdmin
}

// IsRequester reports whether the actor is the requester with the given id.
func (a Actor) IsRequester(id ID) bool {
	return a.role == RoleRequester && a.id.IsEqual(id)
}

// IsFulfiller reports whether the actor is the fulfiller with the given id.
func (a Actor) IsFulfiller(id ID) bool {
	return a.role == RoleFulfiller && a.id.IsEqual(id)
}

// String renders the actor as ROLE#id, e.g. FULFILLER#12.
func (a Actor) String() string {
	return fmt.Sprintf("%s#%s", a.role, a.id)
}
