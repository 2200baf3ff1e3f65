package order

import (
	"fmt"

	"dentallab/internal/pkg/errs"
)

// StageStatus is the linear state of a production stage:
//
//	PENDING ─> IN_PROGRESS ─> COMPLETED
type StageStatus int

const (
	StageUnknown StageStatus = iota
	StagePending
	StageInProgress
	StageCompleted
)

func getStageStatusStrings() map[StageStatus]string {
	return map[StageStatus]string{
		StagePending:    "PENDING",
		StageInProgress: "IN_PROGRESS",
		StageCompleted:  "COMPLETED",
	}
}

func ParseStageStatus(s string) (StageStatus, error) {
	for status, name := range getStageStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return StageUnknown, errs.NewInvalidStageTransitionError("any state", fmt.Sprintf("%q", s))
}

func (s StageStatus) Validate() error {
	if _, ok := getStageStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("stage status is invalid", fmt.Errorf("%d is not a valid stage status", s))
	}
	return nil
}

func (s StageStatus) String() string {
	if str, ok := getStageStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// Next returns the single status that may follow s.
func (s StageStatus) Next() (StageStatus, bool) {
	switch s {
	case StagePending:
		return StageInProgress, true
	case StageInProgress:
		return StageCompleted, true
	default:
		return StageUnknown, false
	}
}

// AdvanceTo validates the move from s to target.
func (s StageStatus) AdvanceTo(target StageStatus) (StageStatus, error) {
	next, ok := s.Next()
	if !ok || next != target {
		return StageUnknown, errs.NewInvalidStageTransitionError(s.String(), target.String())
	}
	return next, nil
}
