package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"dentallab/internal/core/domain/model/kernel"
	"dentallab/internal/pkg/errs"
)

var ErrStageIsNotConstructed = errors.New("Stage must be created via Order.AddStage or RestoreStage")

const maxStageNameLength = 120

// Stage is an ordered production step inside an order. Its position is assigned once, as the
// count of existing stages plus one, and is never renumbered.
type Stage struct {
	id           kernel.ID
	orderID      kernel.ID
	position     int
	name         string
	observations string
	status       StageStatus
	createdAt    time.Time
	completedAt  *time.Time

	isConstructed bool
}

func newStage(id, orderID kernel.ID, position int, name, observations string, now time.Time) (*Stage, error) {
	s := &Stage{
		orderID:       orderID,
		position:      position,
		observations:  observations,
		status:        StagePending,
		createdAt:     now.UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		s.setID(id),
		s.setName(name),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// RestoreStage rebuilds a stage from persisted state. The completion time must be present
// exactly when the stage is COMPLETED.
func RestoreStage(
	id, orderID kernel.ID,
	position int,
	name, observations string,
	status StageStatus,
	createdAt time.Time,
	completedAt *time.Time,
) (*Stage, error) {
	s, err := newStage(id, orderID, position, name, observations, createdAt)
	if err != nil {
		return nil, err
	}
	if position < 1 {
		return nil, errs.NewValueIsOutOfRangeError("stage position", position, 1, "unbounded")
	}
	if err = status.Validate(); err != nil {
		return nil, err
	}
	if (status == StageCompleted) != (completedAt != nil) {
		return nil, errs.NewValueIsInvalidErrorWithCause("stage completion",
			fmt.Errorf("stage %s is %s but completion time presence is %t", id, status, completedAt != nil))
	}

	s.status = status
	s.completedAt = completedAt
	return s, nil
}

func (s *Stage) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrStageIsNotConstructed
	}
	return nil
}

func (s *Stage) ID() kernel.ID           { return s.id }
func (s *Stage) OrderID() kernel.ID      { return s.orderID }
func (s *Stage) Position() int           { return s.position }
func (s *Stage) Name() string            { return s.name }
func (s *Stage) Observations() string    { return s.observations }
func (s *Stage) Status() StageStatus     { return s.status }
func (s *Stage) CreatedAt() time.Time    { return s.createdAt }
func (s *Stage) CompletedAt() *time.Time { return s.completedAt }

// advance moves the stage one step forward. The completion time is stamped on entering COMPLETED.
func (s *Stage) advance(target StageStatus, now time.Time) error {
	next, err := s.status.AdvanceTo(target)
	if err != nil {
		return err
	}

	s.status = next
	if next == StageCompleted {
		completed := now.UTC()
		s.completedAt = &completed
	}
	return nil
}

func (s *Stage) setID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Stage) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("stage name")
	}
	if len(name) > maxStageNameLength {
		return errs.NewValueIsOutOfRangeError("stage name length", len(name), 1, maxStageNameLength)
	}
	s.name = name
	return nil
}
