package memory

import (
	"time"

	"dentallab/internal/core/domain/model/catalog"
	"dentallab/internal/core/domain/model/kernel"
	"dentallab/internal/core/domain/model/order"
	"dentallab/internal/core/domain/model/outsourcing"
)

// Records hold a detached copy of an aggregate's state. Aggregates handed to callers are always
// rebuilt from a record, so in-flight changes never leak into the store before commit.

type stageRecord struct {
	ID           kernel.ID
	Position     int
	Name         string
	Observations string
	Status       order.StageStatus
	CreatedAt    time.Time
	CompletedAt  *time.Time
}

type orderRecord struct {
	Params      order.NewOrderParams
	Status      order.Status
	Actual      *time.Time
	CancelledAt *time.Time
	Stages      []stageRecord
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type offeringKey struct {
	fulfillerID int64
	serviceType kernel.ServiceType
}

type offeringRecord struct {
	FulfillerID kernel.ID
	ServiceType kernel.ServiceType
	Spec        catalog.Spec
	Active      bool
	UpdatedAt   time.Time
}

type requestRecord struct {
	Params outsourcing.RestoreRequestParams
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}

func orderToRecord(o *order.Order) orderRecord {
	stages := o.Stages()
	records := make([]stageRecord, 0, len(stages))
	for _, s := range stages {
		records = append(records, stageRecord{
			ID:           s.ID(),
			Position:     s.Position(),
			Name:         s.Name(),
			Observations: s.Observations(),
			Status:       s.Status(),
			CreatedAt:    s.CreatedAt(),
			CompletedAt:  copyTime(s.CompletedAt()),
		})
	}

	var charged *kernel.Money
	if v := o.ChargedValue(); v != nil {
		c := *v
		charged = &c
	}
	var quote *catalog.Terms
	if q := o.Quote(); q != nil {
		c := *q
		quote = &c
	}

	return orderRecord{
		Params: order.NewOrderParams{
			ID:               o.ID(),
			Code:             o.Code(),
			Requester:        o.Requester(),
			Fulfiller:        o.Fulfiller(),
			ServiceType:      o.ServiceType(),
			EntryDate:        o.EntryDate(),
			ExpectedDelivery: copyTime(o.ExpectedDelivery()),
			ChargedValue:     charged,
			Quote:            quote,
			Details:          o.Details(),
		},
		Status:      o.Status(),
		Actual:      copyTime(o.ActualDelivery()),
		CancelledAt: copyTime(o.CancelledAt()),
		Stages:      records,
		CreatedAt:   o.CreatedAt(),
		UpdatedAt:   o.UpdatedAt(),
	}
}

func (r orderRecord) toDomain() (*order.Order, error) {
	stages := make([]*order.Stage, 0, len(r.Stages))
	for _, s := range r.Stages {
		stage, err := order.RestoreStage(
			s.ID, r.Params.ID, s.Position, s.Name, s.Observations, s.Status, s.CreatedAt, copyTime(s.CompletedAt),
		)
		if err != nil {
			return nil, err
		}
		stages = append(stages, stage)
	}

	params := r.Params
	params.ExpectedDelivery = copyTime(params.ExpectedDelivery)
	return order.RestoreOrder(order.RestoreOrderParams{
		NewOrderParams: params,
		Status:         r.Status,
		ActualDelivery: copyTime(r.Actual),
		CancelledAt:    copyTime(r.CancelledAt),
		Stages:         stages,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	})
}

func (r orderRecord) hasStage(id kernel.ID) bool {
	for _, s := range r.Stages {
		if s.ID.IsEqual(id) {
			return true
		}
	}
	return false
}

func offeringToRecord(o *catalog.Offering) offeringRecord {
	return offeringRecord{
		FulfillerID: o.FulfillerID(),
		ServiceType: o.ServiceType(),
		Spec: catalog.Spec{
			Policy:              o.Policy(),
			SelfTerms:           o.SelfTerms(),
			DelegateTerms:       o.DelegateTerms(),
			PreferredDelegateID: o.PreferredDelegateID(),
			Description:         o.Description(),
		},
		Active:    o.IsActive(),
		UpdatedAt: o.UpdatedAt(),
	}
}

func (r offeringRecord) key() offeringKey {
	return offeringKey{fulfillerID: r.FulfillerID.Int64(), serviceType: r.ServiceType}
}

func (r offeringRecord) toDomain() (*catalog.Offering, error) {
	return catalog.RestoreOffering(r.FulfillerID, r.ServiceType, r.Spec, r.Active, r.UpdatedAt)
}

func requestToRecord(req *outsourcing.Request) requestRecord {
	return requestRecord{Params: outsourcing.RestoreRequestParams{
		NewRequestParams: outsourcing.NewRequestParams{
			ID:                    req.ID(),
			OrderID:               req.OrderID(),
			RequestingFulfillerID: req.RequestingFulfillerID(),
			ExecutingFulfillerID:  req.ExecutingFulfillerID(),
			Percentage:            req.Percentage(),
			Kind:                  req.Kind(),
			ServiceDescription:    req.ServiceDescription(),
			Rationale:             req.Rationale(),
		},
		Status:      req.Status(),
		ClosingNote: req.ClosingNote(),
		CreatedAt:   req.CreatedAt(),
		RespondedAt: copyTime(req.RespondedAt()),
		StartedAt:   copyTime(req.StartedAt()),
		CompletedAt: copyTime(req.CompletedAt()),
		CancelledAt: copyTime(req.CancelledAt()),
	}}
}

func (r requestRecord) toDomain() (*outsourcing.Request, error) {
	p := r.Params
	p.RespondedAt = copyTime(p.RespondedAt)
	p.StartedAt = copyTime(p.StartedAt)
	p.CompletedAt = copyTime(p.CompletedAt)
	p.CancelledAt = copyTime(p.CancelledAt)
	return outsourcing.RestoreRequest(p)
}

func (r requestRecord) isActive() bool {
	return r.Params.Status.IsActive()
}
