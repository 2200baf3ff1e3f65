package api

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Error is the body of every non-2xx response.
type Error struct {
	Code      int    `json:"code"`
	Message   string `json:"message"`
	Retryable bool   `json:"retryable,omitempty"`
}

type Party struct {
	Id   int64  `json:"id"`
	Name string `json:"name"`
}

type Terms struct {
	Price        string `json:"price"`
	LeadTimeDays int    `json:"leadTimeDays"`
}

type Stage struct {
	Id           int64      `json:"id"`
	Position     int        `json:"position"`
	Name         string     `json:"name"`
	Observations string     `json:"observations,omitempty"`
	Status       string     `json:"status"`
	CreatedAt    time.Time  `json:"createdAt"`
	CompletedAt  *time.Time `json:"completedAt,omitempty"`
}

type Order struct {
	Id               int64               `json:"id"`
	Code             string              `json:"code"`
	Requester        Party               `json:"requester"`
	Fulfiller        Party               `json:"fulfiller"`
	ServiceType      string              `json:"serviceType"`
	Status           string              `json:"status"`
	NextStatuses     []string            `json:"nextStatuses"`
	EntryDate        openapi_types.Date  `json:"entryDate"`
	ExpectedDelivery *openapi_types.Date `json:"expectedDelivery,omitempty"`
	ActualDelivery   *openapi_types.Date `json:"actualDelivery,omitempty"`
	ChargedValue     *string             `json:"chargedValue,omitempty"`
	Quote            *Terms              `json:"quote,omitempty"`
	Details          string              `json:"details,omitempty"`
	Overdue          bool                `json:"overdue"`
	Stages           []Stage             `json:"stages"`
	CreatedAt        time.Time           `json:"createdAt"`
	UpdatedAt        time.Time           `json:"updatedAt"`
	CancelledAt      *time.Time          `json:"cancelledAt,omitempty"`
}

type NewOrder struct {
	RequesterId       int64               `json:"requesterId"`
	RequesterName     string              `json:"requesterName"`
	FulfillerId       int64               `json:"fulfillerId"`
	FulfillerName     string              `json:"fulfillerName"`
	ServiceType       string              `json:"serviceType"`
	EntryDate         *openapi_types.Date `json:"entryDate,omitempty"`
	ExpectedDelivery  *openapi_types.Date `json:"expectedDelivery,omitempty"`
	ChargedValue      *string             `json:"chargedValue,omitempty"`
	Details           string              `json:"details,omitempty"`
	WithDefaultStages bool                `json:"withDefaultStages,omitempty"`
}

type NextStatuses struct {
	Current string   `json:"current"`
	Next    []string `json:"next"`
}

type StatusChange struct {
	Target string `json:"target"`
}

type ChargedValueChange struct {
	ChargedValue string `json:"chargedValue"`
}

type DeliveryChange struct {
	ExpectedDelivery openapi_types.Date `json:"expectedDelivery"`
}

type NewStage struct {
	Name         string `json:"name"`
	Observations string `json:"observations,omitempty"`
}

type StageAdvance struct {
	Target string `json:"target"`
}

type Offering struct {
	FulfillerId         int64     `json:"fulfillerId"`
	ServiceType         string    `json:"serviceType"`
	Policy              string    `json:"policy"`
	SelfTerms           *Terms    `json:"selfTerms,omitempty"`
	DelegateTerms       *Terms    `json:"delegateTerms,omitempty"`
	PreferredDelegateId *int64    `json:"preferredDelegateId,omitempty"`
	Description         string    `json:"description,omitempty"`
	Active              bool      `json:"active"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

type OfferingSpec struct {
	Policy              string `json:"policy"`
	SelfTerms           *Terms `json:"selfTerms,omitempty"`
	DelegateTerms       *Terms `json:"delegateTerms,omitempty"`
	PreferredDelegateId *int64 `json:"preferredDelegateId,omitempty"`
	Description         string `json:"description,omitempty"`
}

type OfferingActivation struct {
	Active bool `json:"active"`
}

type Delegate struct {
	FulfillerId int64  `json:"fulfillerId"`
	Terms       Terms  `json:"terms"`
	Preferred   bool   `json:"preferred"`
	Description string `json:"description,omitempty"`
}

type NewOutsourcing struct {
	DelegateId         int64  `json:"delegateId"`
	Percentage         string `json:"percentage"`
	Kind               string `json:"kind,omitempty"`
	ServiceDescription string `json:"serviceDescription,omitempty"`
	Rationale          string `json:"rationale,omitempty"`
}

type Outsourcing struct {
	Id                    int64      `json:"id"`
	OrderId               int64      `json:"orderId"`
	RequestingFulfillerId int64      `json:"requestingFulfillerId"`
	ExecutingFulfillerId  int64      `json:"executingFulfillerId"`
	Percentage            string     `json:"percentage"`
	Kind                  string     `json:"kind"`
	ServiceDescription    string     `json:"serviceDescription,omitempty"`
	Rationale             string     `json:"rationale,omitempty"`
	ClosingNote           string     `json:"closingNote,omitempty"`
	Status                string     `json:"status"`
	CreatedAt             time.Time  `json:"createdAt"`
	RespondedAt           *time.Time `json:"respondedAt,omitempty"`
	StartedAt             *time.Time `json:"startedAt,omitempty"`
	CompletedAt           *time.Time `json:"completedAt,omitempty"`
	CancelledAt           *time.Time `json:"cancelledAt,omitempty"`
}

type OutsourcingAnswer struct {
	Accept bool   `json:"accept"`
	Note   string `json:"note,omitempty"`
}

type OutsourcingCancellation struct {
	Reason string `json:"reason,omitempty"`
}

type Settlement struct {
	RequestId    int64  `json:"requestId"`
	OrderId      int64  `json:"orderId"`
	ChargedValue string `json:"chargedValue"`
	Percentage   string `json:"percentage"`
	Amount       string `json:"amount"`
}

// ListOrdersParams defines parameters for ListOrders.
type ListOrdersParams struct {
	RequesterId *int64 `form:"requesterId,omitempty" json:"requesterId,omitempty"`
	FulfillerId *int64 `form:"fulfillerId,omitempty" json:"fulfillerId,omitempty"`
}

// ListOverdueOrdersParams defines parameters for ListOverdueOrders.
type ListOverdueOrdersParams struct {
	Today *openapi_types.Date `form:"today,omitempty" json:"today,omitempty"`
}

// ListOutsourcingParams defines parameters for ListOutsourcing.
type ListOutsourcingParams struct {
	RequestingId *int64 `form:"requestingId,omitempty" json:"requestingId,omitempty"`
	ExecutingId  *int64 `form:"executingId,omitempty" json:"executingId,omitempty"`
}

// ListOfferingsParams defines parameters for ListOfferings.
type ListOfferingsParams struct {
	ServiceType string `form:"serviceType" json:"serviceType"`
}
