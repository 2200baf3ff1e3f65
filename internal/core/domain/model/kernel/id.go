package kernel

import (
	"math"
	"strconv"

	"dentallab/internal/pkg/errs"
	"dentallab/internal/pkg/guard"
)

// ErrIDIsNotConstructed is returned when validating a zero-value ID.
var ErrIDIsNotConstructed = errs.NewValueIsRequiredError("ID must be created via NewID")

// ID is a positive numeric identifier. Identifiers are allocated by the store
// before an aggregate is constructed, so an aggregate always owns a valid ID.
type ID struct {
	value int64
	guard guard.ConstructorGuard
}

// NewID wraps a positive integer as an ID.
func NewID(value int64) (ID, error) {
	if value <= 0 {
		return ID{}, errs.NewValueIsOutOfRangeError("id", value, 1, int64(math.MaxInt64))
	}
	return ID{value: value, guard: guard.NewConstructorGuard()}, nil
}

// MustNewID is NewID for values known to be valid, such as persisted keys. It panics otherwise.
func MustNewID(value int64) ID {
	id, err := NewID(value)
	if err != nil {
		panic(err)
	}
	return id
}

// Validate reports whether the ID was built via NewID.
func (id ID) Validate() error {
	return id.guard.Validate(ErrIDIsNotConstructed)
}

func (id ID) Int64() int64 {
	return id.value
}

func (id ID) String() string {
	return strconv.FormatInt(id.value, 10)
}

func (id ID) IsEqual(other ID) bool {
	return id.value == other.value
}
