package http

import (
	"net/http"
	"time"

	"dentallab/internal/adapters/in/http/api"
	"dentallab/internal/core/application/usecases/commands"
	"dentallab/internal/core/application/usecases/queries"
	"dentallab/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

var _ api.ServerInterface = (*Server)(nil)

// Handlers groups the use cases exposed over HTTP.
type Handlers struct {
	// Command handlers
	SaveOffering        commands.SaveOfferingCommandHandler
	DeleteOffering      commands.DeleteOfferingCommandHandler
	SetOfferingActive   commands.SetOfferingActiveCommandHandler
	CreateOrder         commands.CreateOrderCommandHandler
	TransitionOrder     commands.TransitionOrderCommandHandler
	ChangeChargedValue  commands.ChangeChargedValueCommandHandler
	RescheduleDelivery  commands.RescheduleDeliveryCommandHandler
	AddStage            commands.AddStageCommandHandler
	AdvanceStage        commands.AdvanceStageCommandHandler
	RequestOutsourcing  commands.RequestOutsourcingCommandHandler
	RespondOutsourcing  commands.RespondOutsourcingCommandHandler
	StartOutsourcing    commands.StartOutsourcingCommandHandler
	CompleteOutsourcing commands.CompleteOutsourcingCommandHandler
	CancelOutsourcing   commands.CancelOutsourcingCommandHandler

	// Query handlers
	GetOrder                queries.GetOrderQueryHandler
	GetOrderByCode          queries.GetOrderByCodeQueryHandler
	ListOrders              queries.ListOrdersQueryHandler
	ListOverdueOrders       queries.ListOverdueOrdersQueryHandler
	GetOffering             queries.GetOfferingQueryHandler
	ListOfferings           queries.ListOfferingsQueryHandler
	ListEligibleDelegates   queries.ListEligibleDelegatesQueryHandler
	GetOutsourcingRequest   queries.GetOutsourcingRequestQueryHandler
	ListOutsourcingRequests queries.ListOutsourcingRequestsQueryHandler
	GetSettlement           queries.GetSettlementQueryHandler
}

// Server implements api.ServerInterface on top of the application use cases. Mutating endpoints
// answer with the read model of the aggregate they changed.
type Server struct {
	h   Handlers
	now func() time.Time
}

func NewServer(handlers Handlers) *Server {
	return &Server{h: handlers, now: time.Now}
}

func (s *Server) orderResponse(c echo.Context, status int, id kernel.ID) error {
	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return err
	}
	view, err := s.h.GetOrder.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(status, orderOf(view))
}

func (s *Server) outsourcingResponse(c echo.Context, status int, id kernel.ID) error {
	query, err := queries.NewGetOutsourcingRequestQuery(id)
	if err != nil {
		return err
	}
	view, err := s.h.GetOutsourcingRequest.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(status, outsourcingOf(view))
}

func (s *Server) offeringResponse(c echo.Context, fulfillerID kernel.ID, serviceType kernel.ServiceType) error {
	query, err := queries.NewGetOfferingQuery(fulfillerID, serviceType)
	if err != nil {
		return err
	}
	view, err := s.h.GetOffering.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, offeringOf(view))
}
