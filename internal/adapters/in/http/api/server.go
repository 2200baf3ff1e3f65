package api

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// (POST /orders)
	CreateOrder(ctx echo.Context) error

	// (GET /orders)
	ListOrders(ctx echo.Context, params ListOrdersParams) error

	// (GET /orders/overdue)
	ListOverdueOrders(ctx echo.Context, params ListOverdueOrdersParams) error

	// (GET /orders/code/{code})
	GetOrderByCode(ctx echo.Context, code string) error

	// (GET /orders/{orderId})
	GetOrder(ctx echo.Context, orderId int64) error

	// (GET /orders/{orderId}/next-statuses)
	GetOrderNextStatuses(ctx echo.Context, orderId int64) error

	// (POST /orders/{orderId}/transitions)
	TransitionOrder(ctx echo.Context, orderId int64) error

	// (PUT /orders/{orderId}/charged-value)
	ChangeChargedValue(ctx echo.Context, orderId int64) error

	// (PUT /orders/{orderId}/expected-delivery)
	RescheduleDelivery(ctx echo.Context, orderId int64) error

	// (POST /orders/{orderId}/stages)
	AddStage(ctx echo.Context, orderId int64) error

	// (POST /stages/{stageId}/advance)
	AdvanceStage(ctx echo.Context, stageId int64) error

	// (GET /orders/{orderId}/eligible-delegates)
	ListEligibleDelegates(ctx echo.Context, orderId int64) error

	// (POST /orders/{orderId}/outsourcing)
	RequestOutsourcing(ctx echo.Context, orderId int64) error

	// (GET /orders/{orderId}/outsourcing)
	ListOrderOutsourcing(ctx echo.Context, orderId int64) error

	// (GET /outsourcing)
	ListOutsourcing(ctx echo.Context, params ListOutsourcingParams) error

	// (GET /outsourcing/{requestId})
	GetOutsourcing(ctx echo.Context, requestId int64) error

	// (GET /outsourcing/{requestId}/settlement)
	GetSettlement(ctx echo.Context, requestId int64) error

	// (POST /outsourcing/{requestId}/respond)
	RespondOutsourcing(ctx echo.Context, requestId int64) error

	// (POST /outsourcing/{requestId}/start)
	StartOutsourcing(ctx echo.Context, requestId int64) error

	// (POST /outsourcing/{requestId}/complete)
	CompleteOutsourcing(ctx echo.Context, requestId int64) error

	// (POST /outsourcing/{requestId}/cancel)
	CancelOutsourcing(ctx echo.Context, requestId int64) error

	// (GET /offerings)
	ListOfferings(ctx echo.Context, params ListOfferingsParams) error

	// (GET /fulfillers/{fulfillerId}/offerings)
	ListFulfillerOfferings(ctx echo.Context, fulfillerId int64) error

	// (GET /fulfillers/{fulfillerId}/offerings/{serviceType})
	GetOffering(ctx echo.Context, fulfillerId int64, serviceType string) error

	// (PUT /fulfillers/{fulfillerId}/offerings/{serviceType})
	SaveOffering(ctx echo.Context, fulfillerId int64, serviceType string) error

	// (DELETE /fulfillers/{fulfillerId}/offerings/{serviceType})
	DeleteOffering(ctx echo.Context, fulfillerId int64, serviceType string) error

	// (PUT /fulfillers/{fulfillerId}/offerings/{serviceType}/active)
	SetOfferingActive(ctx echo.Context, fulfillerId int64, serviceType string) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

// CreateOrder converts echo context to params.
func (w *ServerInterfaceWrapper) CreateOrder(ctx echo.Context) error {
	var err error
	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.CreateOrder(ctx)
	return err
}

// ListOrders converts echo context to params.
func (w *ServerInterfaceWrapper) ListOrders(ctx echo.Context) error {
	var err error
	// Parameter object where we will unmarshal all parameters from the context
	var params ListOrdersParams
	// ------------- Optional query parameter "requesterId" -------------

	err = runtime.BindQueryParameter("form", true, false, "requesterId", ctx.QueryParams(), &params.RequesterId)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter requesterId: %s", err))
	}

	// ------------- Optional query parameter "fulfillerId" -------------

	err = runtime.BindQueryParameter("form", true, false, "fulfillerId", ctx.QueryParams(), &params.FulfillerId)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter fulfillerId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.ListOrders(ctx, params)
	return err
}

// ListOverdueOrders converts echo context to params.
func (w *ServerInterfaceWrapper) ListOverdueOrders(ctx echo.Context) error {
	var err error
	// Parameter object where we will unmarshal all parameters from the context
	var params ListOverdueOrdersParams
	// ------------- Optional query parameter "today" -------------

	err = runtime.BindQueryParameter("form", true, false, "today", ctx.QueryParams(), &params.Today)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter today: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.ListOverdueOrders(ctx, params)
	return err
}

// GetOrderByCode converts echo context to params.
func (w *ServerInterfaceWrapper) GetOrderByCode(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "code" -------------
	var code string

	err = runtime.BindStyledParameterWithOptions("simple", "code", ctx.Param("code"), &code, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter code: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetOrderByCode(ctx, code)
	return err
}

// GetOrder converts echo context to params.
func (w *ServerInterfaceWrapper) GetOrder(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "orderId" -------------
	var orderId int64

	err = runtime.BindStyledParameterWithOptions("simple", "orderId", ctx.Param("orderId"), &orderId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter orderId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetOrder(ctx, orderId)
	return err
}

// GetOrderNextStatuses converts echo context to params.
func (w *ServerInterfaceWrapper) GetOrderNextStatuses(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "orderId" -------------
	var orderId int64

	err = runtime.BindStyledParameterWithOptions("simple", "orderId", ctx.Param("orderId"), &orderId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter orderId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetOrderNextStatuses(ctx, orderId)
	return err
}

// TransitionOrder converts echo context to params.
func (w *ServerInterfaceWrapper) TransitionOrder(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "orderId" -------------
	var orderId int64

	err = runtime.BindStyledParameterWithOptions("simple", "orderId", ctx.Param("orderId"), &orderId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter orderId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.TransitionOrder(ctx, orderId)
	return err
}

// ChangeChargedValue converts echo context to params.
func (w *ServerInterfaceWrapper) ChangeChargedValue(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "orderId" -------------
	var orderId int64

	err = runtime.BindStyledParameterWithOptions("simple", "orderId", ctx.Param("orderId"), &orderId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter orderId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.ChangeChargedValue(ctx, orderId)
	return err
}

// RescheduleDelivery converts echo context to params.
func (w *ServerInterfaceWrapper) RescheduleDelivery(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "orderId" -------------
	var orderId int64

	err = runtime.BindStyledParameterWithOptions("simple", "orderId", ctx.Param("orderId"), &orderId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter orderId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.RescheduleDelivery(ctx, orderId)
	return err
}

// AddStage converts echo context to params.
func (w *ServerInterfaceWrapper) AddStage(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "orderId" -------------
	var orderId int64

	err = runtime.BindStyledParameterWithOptions("simple", "orderId", ctx.Param("orderId"), &orderId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter orderId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.AddStage(ctx, orderId)
	return err
}

// AdvanceStage converts echo context to params.
func (w *ServerInterfaceWrapper) AdvanceStage(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "stageId" -------------
	var stageId int64

	err = runtime.BindStyledParameterWithOptions("simple", "stageId", ctx.Param("stageId"), &stageId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter stageId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.AdvanceStage(ctx, stageId)
	return err
}

// ListEligibleDelegates converts echo context to params.
func (w *ServerInterfaceWrapper) ListEligibleDelegates(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "orderId" -------------
	var orderId int64

	err = runtime.BindStyledParameterWithOptions("simple", "orderId", ctx.Param("orderId"), &orderId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter orderId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.ListEligibleDelegates(ctx, orderId)
	return err
}

// RequestOutsourcing converts echo context to params.
func (w *ServerInterfaceWrapper) RequestOutsourcing(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "orderId" -------------
	var orderId int64

	err = runtime.BindStyledParameterWithOptions("simple", "orderId", ctx.Param("orderId"), &orderId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter orderId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.RequestOutsourcing(ctx, orderId)
	return err
}

// ListOrderOutsourcing converts echo context to params.
func (w *ServerInterfaceWrapper) ListOrderOutsourcing(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "orderId" -------------
	var orderId int64

	err = runtime.BindStyledParameterWithOptions("simple", "orderId", ctx.Param("orderId"), &orderId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter orderId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.ListOrderOutsourcing(ctx, orderId)
	return err
}

// ListOutsourcing converts echo context to params.
func (w *ServerInterfaceWrapper) ListOutsourcing(ctx echo.Context) error {
	var err error
	// Parameter object where we will unmarshal all parameters from the context
	var params ListOutsourcingParams
	// ------------- Optional query parameter "requestingId" -------------

	err = runtime.BindQueryParameter("form", true, false, "requestingId", ctx.QueryParams(), &params.RequestingId)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter requestingId: %s", err))
	}

	// ------------- Optional query parameter "executingId" -------------

	err = runtime.BindQueryParameter("form", true, false, "executingId", ctx.QueryParams(), &params.ExecutingId)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter executingId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.ListOutsourcing(ctx, params)
	return err
}

// GetOutsourcing converts echo context to params.
func (w *ServerInterfaceWrapper) GetOutsourcing(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "requestId" -------------
	var requestId int64

	err = runtime.BindStyledParameterWithOptions("simple", "requestId", ctx.Param("requestId"), &requestId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter requestId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetOutsourcing(ctx, requestId)
	return err
}

// GetSettlement converts echo context to params.
func (w *ServerInterfaceWrapper) GetSettlement(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "requestId" -------------
	var requestId int64

	err = runtime.BindStyledParameterWithOptions("simple", "requestId", ctx.Param("requestId"), &requestId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter requestId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetSettlement(ctx, requestId)
	return err
}

// RespondOutsourcing converts echo context to params.
func (w *ServerInterfaceWrapper) RespondOutsourcing(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "requestId" -------------
	var requestId int64

	err = runtime.BindStyledParameterWithOptions("simple", "requestId", ctx.Param("requestId"), &requestId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter requestId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.RespondOutsourcing(ctx, requestId)
	return err
}

// StartOutsourcing converts echo context to params.
func (w *ServerInterfaceWrapper) StartOutsourcing(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "requestId" -------------
	var requestId int64

	err = runtime.BindStyledParameterWithOptions("simple", "requestId", ctx.Param("requestId"), &requestId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter requestId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.StartOutsourcing(ctx, requestId)
	return err
}

// CompleteOutsourcing converts echo context to params.
func (w *ServerInterfaceWrapper) CompleteOutsourcing(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "requestId" -------------
	var requestId int64

	err = runtime.BindStyledParameterWithOptions("simple", "requestId", ctx.Param("requestId"), &requestId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter requestId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.CompleteOutsourcing(ctx, requestId)
	return err
}

// CancelOutsourcing converts echo context to params.
func (w *ServerInterfaceWrapper) CancelOutsourcing(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "requestId" -------------
	var requestId int64

	err = runtime.BindStyledParameterWithOptions("simple", "requestId", ctx.Param("requestId"), &requestId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter requestId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.CancelOutsourcing(ctx, requestId)
	return err
}

// ListOfferings converts echo context to params.
func (w *ServerInterfaceWrapper) ListOfferings(ctx echo.Context) error {
	var err error
	// Parameter object where we will unmarshal all parameters from the context
	var params ListOfferingsParams
	// ------------- Required query parameter "serviceType" -------------

	err = runtime.BindQueryParameter("form", true, true, "serviceType", ctx.QueryParams(), &params.ServiceType)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter serviceType: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.ListOfferings(ctx, params)
	return err
}

// ListFulfillerOfferings converts echo context to params.
func (w *ServerInterfaceWrapper) ListFulfillerOfferings(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "fulfillerId" -------------
	var fulfillerId int64

	err = runtime.BindStyledParameterWithOptions("simple", "fulfillerId", ctx.Param("fulfillerId"), &fulfillerId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter fulfillerId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.ListFulfillerOfferings(ctx, fulfillerId)
	return err
}

// GetOffering converts echo context to params.
func (w *ServerInterfaceWrapper) GetOffering(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "fulfillerId" -------------
	var fulfillerId int64

	err = runtime.BindStyledParameterWithOptions("simple", "fulfillerId", ctx.Param("fulfillerId"), &fulfillerId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter fulfillerId: %s", err))
	}

	// ------------- Path parameter "serviceType" -------------
	var serviceType string

	err = runtime.BindStyledParameterWithOptions("simple", "serviceType", ctx.Param("serviceType"), &serviceType, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter serviceType: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetOffering(ctx, fulfillerId, serviceType)
	return err
}

// SaveOffering converts echo context to params.
func (w *ServerInterfaceWrapper) SaveOffering(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "fulfillerId" -------------
	var fulfillerId int64

	err = runtime.BindStyledParameterWithOptions("simple", "fulfillerId", ctx.Param("fulfillerId"), &fulfillerId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter fulfillerId: %s", err))
	}

	// ------------- Path parameter "serviceType" -------------
	var serviceType string

	err = runtime.BindStyledParameterWithOptions("simple", "serviceType", ctx.Param("serviceType"), &serviceType, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter serviceType: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.SaveOffering(ctx, fulfillerId, serviceType)
	return err
}

// DeleteOffering converts echo context to params.
func (w *ServerInterfaceWrapper) DeleteOffering(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "fulfillerId" -------------
	var fulfillerId int64

	err = runtime.BindStyledParameterWithOptions("simple", "fulfillerId", ctx.Param("fulfillerId"), &fulfillerId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter fulfillerId: %s", err))
	}

	// ------------- Path parameter "serviceType" -------------
	var serviceType string

	err = runtime.BindStyledParameterWithOptions("simple", "serviceType", ctx.Param("serviceType"), &serviceType, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter serviceType: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.DeleteOffering(ctx, fulfillerId, serviceType)
	return err
}

// SetOfferingActive converts echo context to params.
func (w *ServerInterfaceWrapper) SetOfferingActive(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "fulfillerId" -------------
	var fulfillerId int64

	err = runtime.BindStyledParameterWithOptions("simple", "fulfillerId", ctx.Param("fulfillerId"), &fulfillerId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter fulfillerId: %s", err))
	}

	// ------------- Path parameter "serviceType" -------------
	var serviceType string

	err = runtime.BindStyledParameterWithOptions("simple", "serviceType", ctx.Param("serviceType"), &serviceType, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter serviceType: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.SetOfferingActive(ctx, fulfillerId, serviceType)
	return err
}

// EchoRouter is the subset of echo routing that handlers are registered on. Both *echo.Echo and
// *echo.Group satisfy it.
type EchoRouter interface {
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// RegisterHandlersWithBaseURL registers handlers, and prepends baseURL to the paths, so that the
// paths can be served under a prefix.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.POST(baseURL+"/orders", wrapper.CreateOrder)
	router.GET(baseURL+"/orders", wrapper.ListOrders)
	router.GET(baseURL+"/orders/overdue", wrapper.ListOverdueOrders)
	router.GET(baseURL+"/orders/code/:code", wrapper.GetOrderByCode)
	router.GET(baseURL+"/orders/:orderId", wrapper.GetOrder)
	router.GET(baseURL+"/orders/:orderId/next-statuses", wrapper.GetOrderNextStatuses)
	router.POST(baseURL+"/orders/:orderId/transitions", wrapper.TransitionOrder)
	router.PUT(baseURL+"/orders/:orderId/charged-value", wrapper.ChangeChargedValue)
	router.PUT(baseURL+"/orders/:orderId/expected-delivery", wrapper.RescheduleDelivery)
	router.POST(baseURL+"/orders/:orderId/stages", wrapper.AddStage)
	router.POST(baseURL+"/stages/:stageId/advance", wrapper.AdvanceStage)
	router.GET(baseURL+"/orders/:orderId/eligible-delegates", wrapper.ListEligibleDelegates)
	router.POST(baseURL+"/orders/:orderId/outsourcing", wrapper.RequestOutsourcing)
	router.GET(baseURL+"/orders/:orderId/outsourcing", wrapper.ListOrderOutsourcing)
	router.GET(baseURL+"/outsourcing", wrapper.ListOutsourcing)
	router.GET(baseURL+"/outsourcing/:requestId", wrapper.GetOutsourcing)
	router.GET(baseURL+"/outsourcing/:requestId/settlement", wrapper.GetSettlement)
	router.POST(baseURL+"/outsourcing/:requestId/respond", wrapper.RespondOutsourcing)
	router.POST(baseURL+"/outsourcing/:requestId/start", wrapper.StartOutsourcing)
	router.POST(baseURL+"/outsourcing/:requestId/complete", wrapper.CompleteOutsourcing)
	router.POST(baseURL+"/outsourcing/:requestId/cancel", wrapper.CancelOutsourcing)
	router.GET(baseURL+"/offerings", wrapper.ListOfferings)
	router.GET(baseURL+"/fulfillers/:fulfillerId/offerings", wrapper.ListFulfillerOfferings)
	router.GET(baseURL+"/fulfillers/:fulfillerId/offerings/:serviceType", wrapper.GetOffering)
	router.PUT(baseURL+"/fulfillers/:fulfillerId/offerings/:serviceType", wrapper.SaveOffering)
	router.DELETE(baseURL+"/fulfillers/:fulfillerId/offerings/:serviceType", wrapper.DeleteOffering)
	router.PUT(baseURL+"/fulfillers/:fulfillerId/offerings/:serviceType/active", wrapper.SetOfferingActive)
}
