package catalog

import (
	"fmt"

	"dentallab/internal/pkg/errs"
)

// ExecutionPolicy declares whether a fulfiller executes a service itself, delegates it, or both.
type ExecutionPolicy int

const (
	PolicyUnknown ExecutionPolicy = iota
	PolicySelfOnly
	PolicyDelegateOnly
	PolicyEither
	PolicyNotOffered
)

func getValidPolicyStrings() map[ExecutionPolicy]string {
	return map[ExecutionPolicy]string{
		PolicySelfOnly:     "SELF_ONLY",
		PolicyDelegateOnly: "DELEGATE_ONLY",
		PolicyEither:       "EITHER",
		PolicyNotOffered:   "NOT_OFFERED",
	}
}

func ParseExecutionPolicy(s string) (ExecutionPolicy, error) {
	for p, name := range getValidPolicyStrings() {
		if name == s {
			return p, nil
		}
	}
	return PolicyUnknown, errs.NewValueIsInvalidErrorWithCause("execution policy", fmt.Errorf("%q is not a known policy", s))
}

func (p ExecutionPolicy) Validate() error {
	if _, ok := getValidPolicyStrings()[p]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("execution policy", fmt.Errorf("%d is not a valid policy", p))
	}
	return nil
}

func (p ExecutionPolicy) String() string {
	if s, ok := getValidPolicyStrings()[p]; ok {
		return s
	}
	return "UNKNOWN"
}

// AllowsSelf reports whether self terms are required and resolvable.
func (p ExecutionPolicy) AllowsSelf() bool {
	return p == PolicySelfOnly || p == PolicyEither
}

// AllowsDelegate reports whether delegate terms are required and resolvable.
func (p ExecutionPolicy) AllowsDelegate() bool {
	return p == PolicyDelegateOnly || p == PolicyEither
}

// ExecutionMode is the way a caller wants a service executed.
type ExecutionMode int

const (
	ModeUnknown ExecutionMode = iota
	ModeSelf
	ModeDelegate
)

func (m ExecutionMode) String() string {
	switch m {
	case ModeSelf:
		return "SELF"
	case ModeDelegate:
		return "DELEGATE"
	default:
		return "UNKNOWN"
	}
}

// Allows reports whether the policy permits the mode.
func (p ExecutionPolicy) Allows(mode ExecutionMode) bool {
	switch mode {
	case ModeSelf:
		return p.AllowsSelf()
	case ModeDelegate:
		return p.AllowsDelegate()
	default:
		return false
	}
}
