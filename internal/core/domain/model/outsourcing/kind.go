package outsourcing

import (
	"fmt"

	"dentallab/internal/pkg/errs"
)

// Kind classifies why work is delegated. It is informational and does not affect the state machine.
type Kind string

const (
	KindComplete  Kind = "COMPLETE"
	KindPartial   Kind = "PARTIAL"
	KindSpecialty Kind = "SPECIALTY"
	KindCapacity  Kind = "CAPACITY"
	KindUrgency   Kind = "URGENCY"
)

func Kinds() []Kind {
	return []Kind{KindComplete, KindPartial, KindSpecialty, KindCapacity, KindUrgency}
}

// ParseKind maps an empty string to PARTIAL.
func ParseKind(s string) (Kind, error) {
	if s == "" {
		return KindPartial, nil
	}
	k := Kind(s)
	if err := k.Validate(); err != nil {
		return "", err
	}
	return k, nil
}

func (k Kind) Validate() error {
	for _, known := range Kinds() {
		if k == known {
			return nil
		}
	}
	return errs.NewValueIsInvalidErrorWithCause("outsourcing kind", fmt.Errorf("%q is not a known kind", string(k)))
}

func (k Kind) String() string {
	return string(k)
}
