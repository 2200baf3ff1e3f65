package queries

import (
	"time"

	"dentallab/internal/core/domain/model/catalog"
	"dentallab/internal/core/domain/model/kernel"
	"dentallab/internal/core/domain/model/order"
	"dentallab/internal/core/domain/model/outsourcing"
	"dentallab/internal/core/domain/services"
)

// PartyView is a requester or fulfiller as recorded on an order.
type PartyView struct {
	ID   kernel.ID
	Name string
}

// TermsView is a price and lead time pair.
type TermsView struct {
	Price        kernel.Money
	LeadTimeDays int
}

// StageView is one production step of an order.
type StageView struct {
	ID           kernel.ID
	Position     int
	Name         string
	Observations string
	Status       order.StageStatus
	CreatedAt    time.Time
	CompletedAt  *time.Time
}

// OrderView is the read model of an order with its stages.
type OrderView struct {
	ID               kernel.ID
	Code             order.Code
	Requester        PartyView
	Fulfiller        PartyView
	ServiceType      kernel.ServiceType
	Status           order.Status
	NextStatuses     []order.Status
	EntryDate        time.Time
	ExpectedDelivery *time.Time
	ActualDelivery   *time.Time
	ChargedValue     *kernel.Money
	Quote            *TermsView
	Details          string
	Overdue          bool
	Stages           []StageView
	CreatedAt        time.Time
	UpdatedAt        time.Time
	CancelledAt      *time.Time
}

// OfferingView is the read model of a catalog entry.
type OfferingView struct {
	FulfillerID         kernel.ID
	ServiceType         kernel.ServiceType
	Policy              catalog.ExecutionPolicy
	SelfTerms           *TermsView
	DelegateTerms       *TermsView
	PreferredDelegateID *kernel.ID
	Description         string
	Active              bool
	UpdatedAt           time.Time
}

// DelegateView is one fulfiller that can take over an order's work.
type DelegateView struct {
	FulfillerID kernel.ID
	Terms       TermsView
	Preferred   bool
	Description string
}

// OutsourcingView is the read model of an outsourcing request.
type OutsourcingView struct {
	ID                    kernel.ID
	OrderID               kernel.ID
	RequestingFulfillerID kernel.ID
	ExecutingFulfillerID  kernel.ID
	Percentage            kernel.Percentage
	Kind                  outsourcing.Kind
	ServiceDescription    string
	Rationale             string
	ClosingNote           string
	Status                outsourcing.Status
	CreatedAt             time.Time
	RespondedAt           *time.Time
	StartedAt             *time.Time
	CompletedAt           *time.Time
	CancelledAt           *time.Time
}

// SettlementView is the delegate's share of an order's current charged value.
type SettlementView struct {
	RequestID    kernel.ID
	OrderID      kernel.ID
	ChargedValue kernel.Money
	Percentage   kernel.Percentage
	Amount       kernel.Money
}

func termsView(t *catalog.Terms) *TermsView {
	if t == nil {
		return nil
	}
	return &TermsView{Price: t.Price(), LeadTimeDays: t.LeadTimeDays()}
}

func orderView(o *order.Order, today time.Time) OrderView {
	stages := o.Stages()
	views := make([]StageView, 0, len(stages))
	for _, s := range stages {
		views = append(views, StageView{
			ID:           s.ID(),
			Position:     s.Position(),
			Name:         s.Name(),
			Observations: s.Observations(),
			Status:       s.Status(),
			CreatedAt:    s.CreatedAt(),
			CompletedAt:  s.CompletedAt(),
		})
	}

	return OrderView{
		ID:               o.ID(),
		Code:             o.Code(),
		Requester:        PartyView{ID: o.Requester().ID(), Name: o.Requester().Name()},
		Fulfiller:        PartyView{ID: o.Fulfiller().ID(), Name: o.Fulfiller().Name()},
		ServiceType:      o.ServiceType(),
		Status:           o.Status(),
		NextStatuses:     o.NextStatuses(),
		EntryDate:        o.EntryDate(),
		ExpectedDelivery: o.ExpectedDelivery(),
		ActualDelivery:   o.ActualDelivery(),
		ChargedValue:     o.ChargedValue(),
		Quote:            termsView(o.Quote()),
		Details:          o.Details(),
		Overdue:          o.IsOverdue(today),
		Stages:           views,
		CreatedAt:        o.CreatedAt(),
		UpdatedAt:        o.UpdatedAt(),
		CancelledAt:      o.CancelledAt(),
	}
}

func orderViews(orders []*order.Order, today time.Time) []OrderView {
	views := make([]OrderView, 0, len(orders))
	for _, o := range orders {
		views = append(views, orderView(o, today))
	}
	return views
}

func offeringView(o *catalog.Offering) OfferingView {
	return OfferingView{
		FulfillerID:         o.FulfillerID(),
		ServiceType:         o.ServiceType(),
		Policy:              o.Policy(),
		SelfTerms:           termsView(o.SelfTerms()),
		DelegateTerms:       termsView(o.DelegateTerms()),
		PreferredDelegateID: o.PreferredDelegateID(),
		Description:         o.Description(),
		Active:              o.IsActive(),
		UpdatedAt:           o.UpdatedAt(),
	}
}

func delegateView(d services.Delegate) DelegateView {
	return DelegateView{
		FulfillerID: d.FulfillerID,
		Terms:       *termsView(&d.Terms),
		Preferred:   d.Preferred,
		Description: d.Description,
	}
}

func outsourcingView(r *outsourcing.Request) OutsourcingView {
	return OutsourcingView{
		ID:                    r.ID(),
		OrderID:               r.OrderID(),
		RequestingFulfillerID: r.RequestingFulfillerID(),
		ExecutingFulfillerID:  r.ExecutingFulfillerID(),
		Percentage:            r.Percentage(),
		Kind:                  r.Kind(),
		ServiceDescription:    r.ServiceDescription(),
		Rationale:             r.Rationale(),
		ClosingNote:           r.ClosingNote(),
		Status:                r.Status(),
		CreatedAt:             r.CreatedAt(),
		RespondedAt:           r.RespondedAt(),
		StartedAt:             r.StartedAt(),
		CompletedAt:           r.CompletedAt(),
		CancelledAt:           r.CancelledAt(),
	}
}

func outsourcingViews(requests []*outsourcing.Request) []OutsourcingView {
	views := make([]OutsourcingView, 0, len(requests))
	for _, r := range requests {
		views = append(views, outsourcingView(r))
	}
	return views
}
