package kernel

import (
	"fmt"

	"dentallab/internal/pkg/errs"
)

// ServiceType is the key into a fulfiller's service catalog.
type ServiceType string

const (
	ServiceTypeCrown          ServiceType = "CROWN"
	ServiceTypeFixedBridge    ServiceType = "FIXED_BRIDGE"
	ServiceTypeTemporary      ServiceType = "TEMPORARY"
	ServiceTypeFullDenture    ServiceType = "FULL_DENTURE"
	ServiceTypePartialDenture ServiceType = "PARTIAL_DENTURE"
	ServiceTypeZirconia       ServiceType = "ZIRCONIA"
	ServiceTypeResin          ServiceType = "RESIN"
	ServiceTypeImplant        ServiceType = "IMPLANT"
	ServiceTypeOrthodontics   ServiceType = "ORTHODONTICS"
	ServiceTypeOther          ServiceType = "OTHER"
)

// ServiceTypes lists every known service type in catalog display order.
func ServiceTypes() []ServiceType {
	return []ServiceType{
		ServiceTypeCrown,
		ServiceTypeFixedBridge,
		ServiceTypeTemporary,
		ServiceTypeFullDenture,
		ServiceTypePartialDenture,
		ServiceTypeZirconia,
		ServiceTypeResin,
		ServiceTypeImplant,
		ServiceTypeOrthodontics,
		ServiceTypeOther,
	}
}

// ParseServiceType accepts only the exact upper-case names.
func ParseServiceType(s string) (ServiceType, error) {
	t := ServiceType(s)
	if err := t.Validate(); err != nil {
		return "", err
	}
	return t, nil
}

func (t ServiceType) Validate() error {
	for _, known := range ServiceTypes() {
		if t == known {
			return nil
		}
	}
	return errs.NewValueIsInvalidErrorWithCause("service type", fmt.Errorf("%q is not a known service type", string(t)))
}

func (t ServiceType) String() string {
	return string(t)
}
