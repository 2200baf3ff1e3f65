package catalog

import (
	"errors"
	"fmt"
	"time"

	"dentallab/internal/core/domain/model/kernel"
	"dentallab/internal/pkg/errs"
)

var (
	// ErrOfferingIsNotConstructed is returned when an Offering was not created via NewOffering
	// or RestoreOffering.
	ErrOfferingIsNotConstructed = errors.New("Offering must be created via NewOffering constructor")
)

const maxDescriptionLength = 2000

// Offering is one entry in a fulfiller's service catalog. It is identified by the
// (fulfiller, service type) pair.
//
// Offering follows these invariants:
//   - Self terms are present when the policy is SELF_ONLY or EITHER
//   - Delegate terms are present when the policy is DELEGATE_ONLY or EITHER
//   - The preferred delegate, when set, is never the owning fulfiller
//   - Inactive offerings resolve no terms for new orders but stay readable
type Offering struct {
	fulfillerID         kernel.ID
	serviceType         kernel.ServiceType
	policy              ExecutionPolicy
	selfTerms           *Terms
	delegateTerms       *Terms
	preferredDelegateID *kernel.ID
	description         string
	active              bool
	updatedAt           time.Time

	isConstructed bool
}

// Spec carries the editable part of an offering.
type Spec struct {
	Policy              ExecutionPolicy
	SelfTerms           *Terms
	DelegateTerms       *Terms
	PreferredDelegateID *kernel.ID
	Description         string
}

// NewOffering creates an active catalog entry.
//
// Example:
//
//	self, _ := catalog.NewTerms(kernel.MustNewMoney("500"), 7)
//	delegate, _ := catalog.NewTerms(kernel.MustNewMoney("400"), 10)
//	offering, err := catalog.NewOffering(labID, kernel.ServiceTypeCrown, catalog.Spec{
//	    Policy:        catalog.PolicyEither,
//	    SelfTerms:     &self,
//	    DelegateTerms: &delegate,
//	}, now)
func NewOffering(fulfillerID kernel.ID, serviceType kernel.ServiceType, spec Spec, now time.Time) (*Offering, error) {
	o := &Offering{
		active:        true,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setFulfillerID(fulfillerID),
		o.setServiceType(serviceType),
	); err != nil {
		return nil, err
	}

	if err := o.Revise(spec, now); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOffering rebuilds an offering from persisted state.
func RestoreOffering(
	fulfillerID kernel.ID,
	serviceType kernel.ServiceType,
	spec Spec,
	active bool,
	updatedAt time.Time,
) (*Offering, error) {
	o, err := NewOffering(fulfillerID, serviceType, spec, updatedAt)
	if err != nil {
		return nil, err
	}
	o.active = active
	return o, nil
}

func (o *Offering) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOfferingIsNotConstructed
	}
	return nil
}

func (o *Offering) FulfillerID() kernel.ID          { return o.fulfillerID }
func (o *Offering) ServiceType() kernel.ServiceType { return o.serviceType }
func (o *Offering) Policy() ExecutionPolicy         { return o.policy }
func (o *Offering) SelfTerms() *Terms               { return o.selfTerms }
func (o *Offering) DelegateTerms() *Terms           { return o.delegateTerms }
func (o *Offering) PreferredDelegateID() *kernel.ID { return o.preferredDelegateID }
func (o *Offering) Description() string             { return o.description }
func (o *Offering) IsActive() bool                  { return o.active }
func (o *Offering) UpdatedAt() time.Time            { return o.updatedAt }

// Revise replaces the editable part of the offering. The offering is left unchanged on error.
func (o *Offering) Revise(spec Spec, now time.Time) error {
	if err := validateSpec(o.fulfillerID, spec); err != nil {
		return err
	}

	o.policy = spec.Policy
	o.selfTerms = spec.SelfTerms
	o.delegateTerms = spec.DelegateTerms
	o.preferredDelegateID = spec.PreferredDelegateID
	o.description = spec.Description
	o.updatedAt = now.UTC()
	return nil
}

// SetActive toggles visibility to new orders and outsourcing requests.
func (o *Offering) SetActive(active bool, now time.Time) {
	o.active = active
	o.updatedAt = now.UTC()
}

// Resolve returns the terms for the requested execution mode, or a PolicyMismatch error when
// the declared policy forbids that mode.
func (o *Offering) Resolve(mode ExecutionMode) (Terms, error) {
	if !o.policy.Allows(mode) {
		return Terms{}, errs.NewPolicyMismatchError(fmt.Sprintf(
			"fulfiller %s declares %s for %s, %s execution is not available",
			o.fulfillerID, o.policy, o.serviceType, mode))
	}

	switch mode {
	case ModeSelf:
		return *o.selfTerms, nil
	default:
		return *o.delegateTerms, nil
	}
}

// AcceptsDelegatedWork reports whether another fulfiller may currently hand this service over.
func (o *Offering) AcceptsDelegatedWork() bool {
	return o.active && o.policy.AllowsDelegate()
}

func (o *Offering) setFulfillerID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.fulfillerID = id
	return nil
}

func (o *Offering) setServiceType(serviceType kernel.ServiceType) error {
	if err := serviceType.Validate(); err != nil {
		return err
	}
	o.serviceType = serviceType
	return nil
}

func validateSpec(owner kernel.ID, spec Spec) error {
	if err := spec.Policy.Validate(); err != nil {
		return err
	}

	var problems []error
	if spec.Policy.AllowsSelf() {
		if spec.SelfTerms == nil {
			problems = append(problems, errs.NewValueIsRequiredErrorWithCause(
				"self terms", fmt.Errorf("policy %s requires self price and lead time", spec.Policy)))
		} else if err := spec.SelfTerms.Validate(); err != nil {
			problems = append(problems, err)
		}
	}
	if spec.Policy.AllowsDelegate() {
		if spec.DelegateTerms == nil {
			problems = append(problems, errs.NewValueIsRequiredErrorWithCause(
				"delegate terms", fmt.Errorf("policy %s requires delegate price and lead time", spec.Policy)))
		} else if err := spec.DelegateTerms.Validate(); err != nil {
			problems = append(problems, err)
		}
	}
	if spec.PreferredDelegateID != nil {
		if err := spec.PreferredDelegateID.Validate(); err != nil {
			problems = append(problems, err)
		} else if spec.PreferredDelegateID.IsEqual(owner) {
			problems = append(problems, errs.NewValueIsInvalidErrorWithCause(
				"preferred delegate", errors.New("a fulfiller cannot prefer itself as delegate")))
		}
	}
	if len(spec.Description) > maxDescriptionLength {
		problems = append(problems, errs.NewValueIsOutOfRangeError(
			"description length", len(spec.Description), 0, maxDescriptionLength))
	}

	return errors.Join(problems...)
}
