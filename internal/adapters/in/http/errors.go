package http

import (
	"errors"
	"fmt"
	"net/http"

	"dentallab/internal/adapters/in/http/api"
	"dentallab/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// retryAfterSeconds is advertised on contention responses.
const retryAfterSeconds = "1"

// StatusOf maps an application error to its HTTP status.
func StatusOf(err error) int {
	switch {
	case errors.Is(err, errs.ErrContention):
		return http.StatusConflict
	case errors.Is(err, errs.ErrUnauthorized):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrInvalidTransition),
		errors.Is(err, errs.ErrInvalidStageTransition),
		errors.Is(err, errs.ErrInvalidOrderState),
		errors.Is(err, errs.ErrOutsourcingAlreadyActive):
		return http.StatusConflict
	case errors.Is(err, errs.ErrInvalidServiceOffering),
		errors.Is(err, errs.ErrPolicyMismatch):
		return http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// NewErrorHandler renders every handler error as an api.Error body.
func NewErrorHandler(logger *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		body := api.Error{Message: err.Error()}

		var he *echo.HTTPError
		if errors.As(err, &he) {
			body.Code = he.Code
			body.Message = fmt.Sprint(he.Message)
		} else {
			body.Code = StatusOf(err)
		}

		if errs.IsRetryable(err) {
			body.Retryable = true
			c.Response().Header().Set("Retry-After", retryAfterSeconds)
		}

		if body.Code >= http.StatusInternalServerError {
			logger.Error("Request failed",
				zap.String("method", c.Request().Method),
				zap.String("uri", c.Request().RequestURI),
				zap.Error(err))
			body.Message = http.StatusText(body.Code)
		}

		var writeErr error
		if c.Request().Method == http.MethodHead {
			writeErr = c.NoContent(body.Code)
		} else {
			writeErr = c.JSON(body.Code, body)
		}
		if writeErr != nil {
			logger.Warn("Failed to write error response", zap.Error(writeErr))
		}
	}
}
