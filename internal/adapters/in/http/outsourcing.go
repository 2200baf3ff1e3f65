package http

import (
	"errors"
	"net/http"

	"dentallab/internal/adapters/in/http/api"
	"dentallab/internal/core/application/usecases/commands"
	"dentallab/internal/core/application/usecases/queries"
	"dentallab/internal/core/domain/model/kernel"
	"dentallab/internal/core/domain/model/outsourcing"
	"dentallab/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ListEligibleDelegates handles GET /api/v1/orders/{orderId}/eligible-delegates.
func (s *Server) ListEligibleDelegates(c echo.Context, orderId int64) error {
	id, err := kernel.NewID(orderId)
	if err != nil {
		return err
	}
	query, err := queries.NewListEligibleDelegatesQuery(id)
	if err != nil {
		return err
	}

	views, err := s.h.ListEligibleDelegates.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	response := make([]api.Delegate, 0, len(views))
	for _, v := range views {
		response = append(response, api.Delegate{
			FulfillerId: v.FulfillerID.Int64(),
			Terms:       termsOf(v.Terms),
			Preferred:   v.Preferred,
			Description: v.Description,
		})
	}
	return c.JSON(http.StatusOK, response)
}

// RequestOutsourcing handles POST /api/v1/orders/{orderId}/outsourcing.
func (s *Server) RequestOutsourcing(c echo.Context, orderId int64) error {
	var body api.NewOutsourcing
	if err := c.Bind(&body); err != nil {
		return err
	}

	id, idErr := kernel.NewID(orderId)
	delegateID, delegateErr := kernel.NewID(body.DelegateId)
	percentage, percentageErr := kernel.NewPercentageFromString(body.Percentage)
	if err := errors.Join(idErr, delegateErr, percentageErr); err != nil {
		return err
	}

	cmd, err := commands.NewRequestOutsourcingCommand(actorOf(c), commands.RequestOutsourcingParams{
		OrderID:            id,
		DelegateID:         delegateID,
		Percentage:         percentage,
		Kind:               outsourcing.Kind(body.Kind),
		ServiceDescription: body.ServiceDescription,
		Rationale:          body.Rationale,
	})
	if err != nil {
		return err
	}

	request, err := s.h.RequestOutsourcing.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return s.outsourcingResponse(c, http.StatusCreated, request.ID())
}

// ListOrderOutsourcing handles GET /api/v1/orders/{orderId}/outsourcing.
func (s *Server) ListOrderOutsourcing(c echo.Context, orderId int64) error {
	id, err := kernel.NewID(orderId)
	if err != nil {
		return err
	}
	query, err := queries.NewListOutsourcingRequestsByOrderQuery(id)
	if err != nil {
		return err
	}
	return s.listOutsourcing(c, query)
}

// ListOutsourcing handles GET /api/v1/outsourcing. Exactly one of requestingId and executingId
// is expected.
func (s *Server) ListOutsourcing(c echo.Context, params api.ListOutsourcingParams) error {
	var (
		query queries.ListOutsourcingRequestsQuery
		err   error
	)
	switch {
	case params.RequestingId != nil && params.ExecutingId == nil:
		var id kernel.ID
		if id, err = kernel.NewID(*params.RequestingId); err == nil {
			query, err = queries.NewListOutsourcingRequestsByRequestingQuery(id)
		}
	case params.ExecutingId != nil && params.RequestingId == nil:
		var id kernel.ID
		if id, err = kernel.NewID(*params.ExecutingId); err == nil {
			query, err = queries.NewListOutsourcingRequestsByExecutingQuery(id)
		}
	default:
		err = errs.NewValueIsRequiredError("requestingId or executingId")
	}
	if err != nil {
		return err
	}
	return s.listOutsourcing(c, query)
}

func (s *Server) listOutsourcing(c echo.Context, query queries.ListOutsourcingRequestsQuery) error {
	views, err := s.h.ListOutsourcingRequests.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	response := make([]api.Outsourcing, 0, len(views))
	for _, v := range views {
		response = append(response, outsourcingOf(v))
	}
	return c.JSON(http.StatusOK, response)
}

// GetOutsourcing handles GET /api/v1/outsourcing/{requestId}.
func (s *Server) GetOutsourcing(c echo.Context, requestId int64) error {
	id, err := kernel.NewID(requestId)
	if err != nil {
		return err
	}
	return s.outsourcingResponse(c, http.StatusOK, id)
}

// GetSettlement handles GET /api/v1/outsourcing/{requestId}/settlement.
func (s *Server) GetSettlement(c echo.Context, requestId int64) error {
	id, err := kernel.NewID(requestId)
	if err != nil {
		return err
	}
	query, err := queries.NewGetSettlementQuery(id)
	if err != nil {
		return err
	}

	view, err := s.h.GetSettlement.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, api.Settlement{
		RequestId:    view.RequestID.Int64(),
		OrderId:      view.OrderID.Int64(),
		ChargedValue: view.ChargedValue.String(),
		Percentage:   view.Percentage.String(),
		Amount:       view.Amount.String(),
	})
}

// RespondOutsourcing handles POST /api/v1/outsourcing/{requestId}/respond.
func (s *Server) RespondOutsourcing(c echo.Context, requestId int64) error {
	var body api.OutsourcingAnswer
	if err := c.Bind(&body); err != nil {
		return err
	}

	id, err := kernel.NewID(requestId)
	if err != nil {
		return err
	}

	cmd, err := commands.NewRespondOutsourcingCommand(actorOf(c), id, body.Accept, body.Note)
	if err != nil {
		return err
	}
	if _, err := s.h.RespondOutsourcing.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return s.outsourcingResponse(c, http.StatusOK, id)
}

// StartOutsourcing handles POST /api/v1/outsourcing/{requestId}/start.
func (s *Server) StartOutsourcing(c echo.Context, requestId int64) error {
	id, err := kernel.NewID(requestId)
	if err != nil {
		return err
	}

	cmd, err := commands.NewStartOutsourcingCommand(actorOf(c), id)
	if err != nil {
		return err
	}
	if _, err := s.h.StartOutsourcing.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return s.outsourcingResponse(c, http.StatusOK, id)
}

// CompleteOutsourcing handles POST /api/v1/outsourcing/{requestId}/complete.
func (s *Server) CompleteOutsourcing(c echo.Context, requestId int64) error {
	id, err := kernel.NewID(requestId)
	if err != nil {
		return err
	}

	cmd, err := commands.NewCompleteOutsourcingCommand(actorOf(c), id)
	if err != nil {
		return err
	}
	if _, err := s.h.CompleteOutsourcing.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return s.outsourcingResponse(c, http.StatusOK, id)
}

// CancelOutsourcing handles POST /api/v1/outsourcing/{requestId}/cancel. The body is optional.
func (s *Server) CancelOutsourcing(c echo.Context, requestId int64) error {
	var body api.OutsourcingCancellation
	if err := c.Bind(&body); err != nil {
		return err
	}

	id, err := kernel.NewID(requestId)
	if err != nil {
		return err
	}

	cmd, err := commands.NewCancelOutsourcingCommand(actorOf(c), id, body.Reason)
	if err != nil {
		return err
	}
	if _, err := s.h.CancelOutsourcing.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return s.outsourcingResponse(c, http.StatusOK, id)
}
