package services

import (
	"cmp"
	"slices"

	"dentallab/internal/core/domain/model/catalog"
	"dentallab/internal/core/domain/model/kernel"
	"dentallab/internal/core/domain/model/order"
)

// Delegate is one fulfiller that may take over an order's work, with the terms it charges
// for delegated execution.
type Delegate struct {
	FulfillerID kernel.ID
	Terms       catalog.Terms
	Preferred   bool
	Description string
}

// DelegateFinder selects delegates among the catalog entries of an order's service type.
//
// A fulfiller is eligible when it is not the order's assigned fulfiller and its offering is
// active with a DELEGATE_ONLY or EITHER policy. The preferred delegate named in the assigned
// fulfiller's own offering is listed first; the rest follow by fulfiller id.
type DelegateFinder struct{}

func NewDelegateFinder() DelegateFinder {
	return DelegateFinder{}
}

// Eligible filters candidates down to the delegates available for o. ownOffering is the assigned
// fulfiller's offering for the same service type and may be nil.
func (f DelegateFinder) Eligible(o *order.Order, ownOffering *catalog.Offering, candidates []*catalog.Offering) []Delegate {
	var preferred *kernel.ID
	if ownOffering.Validate() == nil {
		preferred = ownOffering.PreferredDelegateID()
	}

	delegates := make([]Delegate, 0, len(candidates))
	for _, c := range candidates {
		if c.Validate() != nil || c.ServiceType() != o.ServiceType() {
			continue
		}
		if o.IsAssignedFulfiller(c.FulfillerID()) || !c.AcceptsDelegatedWork() {
			continue
		}
		terms, err := c.Resolve(catalog.ModeDelegate)
		if err != nil {
			continue
		}
		delegates = append(delegates, Delegate{
			FulfillerID: c.FulfillerID(),
			Terms:       terms,
			Preferred:   preferred != nil && preferred.IsEqual(c.FulfillerID()),
			Description: c.Description(),
		})
	}

	slices.SortFunc(delegates, func(a, b Delegate) int {
		if a.Preferred != b.Preferred {
			if a.Preferred {
				return -1
			}
			return 1
		}
		return cmp.Compare(a.FulfillerID.Int64(), b.FulfillerID.Int64())
	})
	return delegates
}
