package http

import (
	"time"

	"dentallab/internal/adapters/in/http/api"
	"dentallab/internal/core/application/usecases/queries"
	"dentallab/internal/core/domain/model/order"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

func orderOf(v queries.OrderView) api.Order {
	stages := make([]api.Stage, 0, len(v.Stages))
	for _, s := range v.Stages {
		stages = append(stages, api.Stage{
			Id:           s.ID.Int64(),
			Position:     s.Position,
			Name:         s.Name,
			Observations: s.Observations,
			Status:       s.Status.String(),
			CreatedAt:    s.CreatedAt,
			CompletedAt:  s.CompletedAt,
		})
	}

	response := api.Order{
		Id:               v.ID.Int64(),
		Code:             v.Code.String(),
		Requester:        api.Party{Id: v.Requester.ID.Int64(), Name: v.Requester.Name},
		Fulfiller:        api.Party{Id: v.Fulfiller.ID.Int64(), Name: v.Fulfiller.Name},
		ServiceType:      v.ServiceType.String(),
		Status:           v.Status.String(),
		NextStatuses:     statusNames(v.NextStatuses),
		EntryDate:        openapi_types.Date{Time: v.EntryDate},
		ExpectedDelivery: dateOf(v.ExpectedDelivery),
		ActualDelivery:   dateOf(v.ActualDelivery),
		Details:          v.Details,
		Overdue:          v.Overdue,
		Stages:           stages,
		CreatedAt:        v.CreatedAt,
		UpdatedAt:        v.UpdatedAt,
		CancelledAt:      v.CancelledAt,
	}
	if v.ChargedValue != nil {
		value := v.ChargedValue.String()
		response.ChargedValue = &value
	}
	if v.Quote != nil {
		quote := termsOf(*v.Quote)
		response.Quote = &quote
	}
	return response
}

func ordersOf(views []queries.OrderView) []api.Order {
	response := make([]api.Order, 0, len(views))
	for _, v := range views {
		response = append(response, orderOf(v))
	}
	return response
}

func stageOf(s *order.Stage) api.Stage {
	return api.Stage{
		Id:           s.ID().Int64(),
		Position:     s.Position(),
		Name:         s.Name(),
		Observations: s.Observations(),
		Status:       s.Status().String(),
		CreatedAt:    s.CreatedAt(),
		CompletedAt:  s.CompletedAt(),
	}
}

func statusNames(statuses []order.Status) []string {
	names := make([]string, 0, len(statuses))
	for _, s := range statuses {
		names = append(names, s.String())
	}
	return names
}

func termsOf(t queries.TermsView) api.Terms {
	return api.Terms{Price: t.Price.String(), LeadTimeDays: t.LeadTimeDays}
}

func optionalTermsOf(t *queries.TermsView) *api.Terms {
	if t == nil {
		return nil
	}
	terms := termsOf(*t)
	return &terms
}

func offeringOf(v queries.OfferingView) api.Offering {
	response := api.Offering{
		FulfillerId:   v.FulfillerID.Int64(),
		ServiceType:   v.ServiceType.String(),
		Policy:        v.Policy.String(),
		SelfTerms:     optionalTermsOf(v.SelfTerms),
		DelegateTerms: optionalTermsOf(v.DelegateTerms),
		Description:   v.Description,
		Active:        v.Active,
		UpdatedAt:     v.UpdatedAt,
	}
	if v.PreferredDelegateID != nil {
		id := v.PreferredDelegateID.Int64()
		response.PreferredDelegateId = &id
	}
	return response
}

func offeringsOf(views []queries.OfferingView) []api.Offering {
	response := make([]api.Offering, 0, len(views))
	for _, v := range views {
		response = append(response, offeringOf(v))
	}
	return response
}

func outsourcingOf(v queries.OutsourcingView) api.Outsourcing {
	return api.Outsourcing{
		Id:                    v.ID.Int64(),
		OrderId:               v.OrderID.Int64(),
		RequestingFulfillerId: v.RequestingFulfillerID.Int64(),
		ExecutingFulfillerId:  v.ExecutingFulfillerID.Int64(),
		Percentage:            v.Percentage.String(),
		Kind:                  v.Kind.String(),
		ServiceDescription:    v.ServiceDescription,
		Rationale:             v.Rationale,
		ClosingNote:           v.ClosingNote,
		Status:                v.Status.String(),
		CreatedAt:             v.CreatedAt,
		RespondedAt:           v.RespondedAt,
		StartedAt:             v.StartedAt,
		CompletedAt:           v.CompletedAt,
		CancelledAt:           v.CancelledAt,
	}
}

func dateOf(t *time.Time) *openapi_types.Date {
	if t == nil {
		return nil
	}
	return &openapi_types.Date{Time: *t}
}
