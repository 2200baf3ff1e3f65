package order

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"dentallab/internal/pkg/errs"
	"dentallab/internal/pkg/guard"

	"github.com/google/uuid"
)

var (
	ErrCodeIsNotConstructed = errs.NewValueIsRequiredError("order code must be created via NewCode or ParseCode")

	// P + yyyyMMdd + 6 time digits (older codes) or a 6 hex suffix
	codePattern = regexp.MustCompile(`^P\d{8}(\d{6}|-[0-9A-F]{6})$`)
)

// Code is the human-readable order reference shown to users, e.g. P20260302-4F1A9C.
type Code struct {
	value string
	guard guard.ConstructorGuard
}

// NewCode builds a fresh code from the entry date and a random suffix.
// Uniqueness is enforced by the order store.
func NewCode(now time.Time) Code {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:6])
	return Code{
		value: fmt.Sprintf("P%s-%s", now.UTC().Format("20060102"), suffix),
		guard: guard.NewConstructorGuard(),
	}
}

func ParseCode(s string) (Code, error) {
	if !codePattern.MatchString(s) {
		return Code{}, errs.NewValueIsInvalidErrorWithCause("order code", fmt.Errorf("%q is not a valid order code", s))
	}
	return Code{value: s, guard: guard.NewConstructorGuard()}, nil
}

func (c Code) Validate() error {
	return c.guard.Validate(ErrCodeIsNotConstructed)
}

func (c Code) String() string {
	return c.value
}
