// Package offeringrepo persists catalog entries with GORM.
package offeringrepo

import (
	"time"

	"dentallab/internal/core/domain/model/catalog"
	"dentallab/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// OfferingDTO is the row of the offerings table, keyed by (fulfiller, service type).
type OfferingDTO struct {
	FulfillerID          int64               `gorm:"primaryKey;autoIncrement:false"`
	ServiceType          string              `gorm:"primaryKey;size:32"`
	Policy               string              `gorm:"size:32"`
	SelfPrice            decimal.NullDecimal `gorm:"type:numeric(14,2)"`
	SelfLeadTimeDays     *int
	DelegatePrice        decimal.NullDecimal `gorm:"type:numeric(14,2)"`
	DelegateLeadTimeDays *int
	PreferredDelegateID  *int64
	Description          string
	Active               bool
	UpdatedAt            time.Time `gorm:"autoUpdateTime:false"`
}

func (OfferingDTO) TableName() string {
	return "offerings"
}

func termsColumns(t *catalog.Terms) (decimal.NullDecimal, *int) {
	if t == nil {
		return decimal.NullDecimal{}, nil
	}
	days := t.LeadTimeDays()
	return decimal.NewNullDecimal(t.Price().Amount()), &days
}

func termsOf(price decimal.NullDecimal, days *int) (*catalog.Terms, error) {
	if !price.Valid || days == nil {
		return nil, nil
	}
	money, err := kernel.NewMoney(price.Decimal)
	if err != nil {
		return nil, err
	}
	terms, err := catalog.NewTerms(money, *days)
	if err != nil {
		return nil, err
	}
	return &terms, nil
}

func fromDomain(o *catalog.Offering) OfferingDTO {
	dto := OfferingDTO{
		FulfillerID: o.FulfillerID().Int64(),
		ServiceType: o.ServiceType().String(),
		Policy:      o.Policy().String(),
		Description: o.Description(),
		Active:      o.IsActive(),
		UpdatedAt:   o.UpdatedAt(),
	}
	dto.SelfPrice, dto.SelfLeadTimeDays = termsColumns(o.SelfTerms())
	dto.DelegatePrice, dto.DelegateLeadTimeDays = termsColumns(o.DelegateTerms())
	if preferred := o.PreferredDelegateID(); preferred != nil {
		id := preferred.Int64()
		dto.PreferredDelegateID = &id
	}
	return dto
}

func toDomain(dto OfferingDTO) (*catalog.Offering, error) {
	fulfillerID, err := kernel.NewID(dto.FulfillerID)
	if err != nil {
		return nil, err
	}
	serviceType, err := kernel.ParseServiceType(dto.ServiceType)
	if err != nil {
		return nil, err
	}
	policy, err := catalog.ParseExecutionPolicy(dto.Policy)
	if err != nil {
		return nil, err
	}
	self, err := termsOf(dto.SelfPrice, dto.SelfLeadTimeDays)
	if err != nil {
		return nil, err
	}
	delegate, err := termsOf(dto.DelegatePrice, dto.DelegateLeadTimeDays)
	if err != nil {
		return nil, err
	}

	var preferred *kernel.ID
	if dto.PreferredDelegateID != nil {
		id, idErr := kernel.NewID(*dto.PreferredDelegateID)
		if idErr != nil {
			return nil, idErr
		}
		preferred = &id
	}

	return catalog.RestoreOffering(fulfillerID, serviceType, catalog.Spec{
		Policy:              policy,
		SelfTerms:           self,
		DelegateTerms:       delegate,
		PreferredDelegateID: preferred,
		Description:         dto.Description,
	}, dto.Active, dto.UpdatedAt.UTC())
}
