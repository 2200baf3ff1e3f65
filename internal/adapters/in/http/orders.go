package http

import (
	"errors"
	"net/http"

	"dentallab/internal/adapters/in/http/api"
	"dentallab/internal/core/application/usecases/commands"
	"dentallab/internal/core/application/usecases/queries"
	"dentallab/internal/core/domain/model/kernel"
	"dentallab/internal/core/domain/model/order"
	"dentallab/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(c echo.Context) error {
	var body api.NewOrder
	if err := c.Bind(&body); err != nil {
		return err
	}

	params, err := createOrderParams(body)
	if err != nil {
		return err
	}

	cmd, err := commands.NewCreateOrderCommand(actorOf(c), params)
	if err != nil {
		return err
	}

	created, err := s.h.CreateOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return s.orderResponse(c, http.StatusCreated, created.ID())
}

func createOrderParams(body api.NewOrder) (commands.CreateOrderParams, error) {
	requesterID, requesterErr := kernel.NewID(body.RequesterId)
	fulfillerID, fulfillerErr := kernel.NewID(body.FulfillerId)
	serviceType, serviceTypeErr := kernel.ParseServiceType(body.ServiceType)
	chargedValue, chargedErr := optionalMoney(body.ChargedValue)
	if err := errors.Join(requesterErr, fulfillerErr, serviceTypeErr, chargedErr); err != nil {
		return commands.CreateOrderParams{}, err
	}

	params := commands.CreateOrderParams{
		RequesterID:       requesterID,
		RequesterName:     body.RequesterName,
		FulfillerID:       fulfillerID,
		FulfillerName:     body.FulfillerName,
		ServiceType:       serviceType,
		ChargedValue:      chargedValue,
		Details:           body.Details,
		WithDefaultStages: body.WithDefaultStages,
	}
	if body.EntryDate != nil {
		params.EntryDate = &body.EntryDate.Time
	}
	if body.ExpectedDelivery != nil {
		params.ExpectedDelivery = &body.ExpectedDelivery.Time
	}
	return params, nil
}

// ListOrders handles GET /api/v1/orders. Exactly one of requesterId and fulfillerId is expected.
func (s *Server) ListOrders(c echo.Context, params api.ListOrdersParams) error {
	var (
		query queries.ListOrdersQuery
		err   error
	)
	switch {
	case params.RequesterId != nil && params.FulfillerId == nil:
		var id kernel.ID
		if id, err = kernel.NewID(*params.RequesterId); err == nil {
			query, err = queries.NewListOrdersByRequesterQuery(id)
		}
	case params.FulfillerId != nil && params.RequesterId == nil:
		var id kernel.ID
		if id, err = kernel.NewID(*params.FulfillerId); err == nil {
			query, err = queries.NewListOrdersByFulfillerQuery(id)
		}
	default:
		err = errs.NewValueIsRequiredError("requesterId or fulfillerId")
	}
	if err != nil {
		return err
	}

	views, err := s.h.ListOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ordersOf(views))
}

// ListOverdueOrders handles GET /api/v1/orders/overdue. today defaults to the server's date.
func (s *Server) ListOverdueOrders(c echo.Context, params api.ListOverdueOrdersParams) error {
	today := s.now()
	if params.Today != nil {
		today = params.Today.Time
	}

	query, err := queries.NewListOverdueOrdersQuery(today)
	if err != nil {
		return err
	}

	views, err := s.h.ListOverdueOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ordersOf(views))
}

// GetOrderByCode handles GET /api/v1/orders/code/{code}.
func (s *Server) GetOrderByCode(c echo.Context, code string) error {
	query, err := queries.NewGetOrderByCodeQuery(code)
	if err != nil {
		return err
	}

	view, err := s.h.GetOrderByCode.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, orderOf(view))
}

// GetOrder handles GET /api/v1/orders/{orderId}.
func (s *Server) GetOrder(c echo.Context, orderId int64) error {
	id, err := kernel.NewID(orderId)
	if err != nil {
		return err
	}
	return s.orderResponse(c, http.StatusOK, id)
}

// GetOrderNextStatuses handles GET /api/v1/orders/{orderId}/next-statuses.
func (s *Server) GetOrderNextStatuses(c echo.Context, orderId int64) error {
	id, err := kernel.NewID(orderId)
	if err != nil {
		return err
	}
	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return err
	}

	view, err := s.h.GetOrder.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, api.NextStatuses{
		Current: view.Status.String(),
		Next:    statusNames(view.NextStatuses),
	})
}

// TransitionOrder handles POST /api/v1/orders/{orderId}/transitions.
func (s *Server) TransitionOrder(c echo.Context, orderId int64) error {
	var body api.StatusChange
	if err := c.Bind(&body); err != nil {
		return err
	}

	id, idErr := kernel.NewID(orderId)
	target, targetErr := order.ParseStatus(body.Target)
	if err := errors.Join(idErr, targetErr); err != nil {
		return err
	}

	cmd, err := commands.NewTransitionOrderCommand(actorOf(c), id, target)
	if err != nil {
		return err
	}
	if _, err := s.h.TransitionOrder.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return s.orderResponse(c, http.StatusOK, id)
}

// ChangeChargedValue handles PUT /api/v1/orders/{orderId}/charged-value.
func (s *Server) ChangeChargedValue(c echo.Context, orderId int64) error {
	var body api.ChargedValueChange
	if err := c.Bind(&body); err != nil {
		return err
	}

	id, idErr := kernel.NewID(orderId)
	value, valueErr := kernel.NewMoneyFromString(body.ChargedValue)
	if err := errors.Join(idErr, valueErr); err != nil {
		return err
	}

	cmd, err := commands.NewChangeChargedValueCommand(actorOf(c), id, value)
	if err != nil {
		return err
	}
	if _, err := s.h.ChangeChargedValue.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return s.orderResponse(c, http.StatusOK, id)
}

// RescheduleDelivery handles PUT /api/v1/orders/{orderId}/expected-delivery.
func (s *Server) RescheduleDelivery(c echo.Context, orderId int64) error {
	var body api.DeliveryChange
	if err := c.Bind(&body); err != nil {
		return err
	}

	id, err := kernel.NewID(orderId)
	if err != nil {
		return err
	}

	cmd, err := commands.NewRescheduleDeliveryCommand(actorOf(c), id, body.ExpectedDelivery.Time)
	if err != nil {
		return err
	}
	if _, err := s.h.RescheduleDelivery.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return s.orderResponse(c, http.StatusOK, id)
}

// AddStage handles POST /api/v1/orders/{orderId}/stages.
func (s *Server) AddStage(c echo.Context, orderId int64) error {
	var body api.NewStage
	if err := c.Bind(&body); err != nil {
		return err
	}

	id, err := kernel.NewID(orderId)
	if err != nil {
		return err
	}

	cmd, err := commands.NewAddStageCommand(actorOf(c), id, body.Name, body.Observations)
	if err != nil {
		return err
	}
	stage, err := s.h.AddStage.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, stageOf(stage))
}

// AdvanceStage handles POST /api/v1/stages/{stageId}/advance.
func (s *Server) AdvanceStage(c echo.Context, stageId int64) error {
	var body api.StageAdvance
	if err := c.Bind(&body); err != nil {
		return err
	}

	id, idErr := kernel.NewID(stageId)
	target, targetErr := order.ParseStageStatus(body.Target)
	if err := errors.Join(idErr, targetErr); err != nil {
		return err
	}

	cmd, err := commands.NewAdvanceStageCommand(actorOf(c), id, target)
	if err != nil {
		return err
	}
	stage, err := s.h.AdvanceStage.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stageOf(stage))
}

func optionalMoney(s *string) (*kernel.Money, error) {
	if s == nil {
		return nil, nil
	}
	m, err := kernel.NewMoneyFromString(*s)
	if err != nil {
		return nil, err
	}
	return &m, nil
}
