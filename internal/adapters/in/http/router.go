package http

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	"dentallab/internal/adapters/in/http/api"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/swaggo/swag"
	"go.uber.org/zap"
)

const BaseURL = "/api/v1"

type RouterConfig struct {
	// JWTSecret switches actor resolution from headers to HS256 bearer tokens.
	JWTSecret string
}

// NewRouter builds the echo instance serving the API, the OpenAPI document and the swagger UI.
func NewRouter(ctx context.Context, server *Server, cfg RouterConfig, logger *zap.Logger) (*echo.Echo, error) {
	doc, err := api.GetSwagger(ctx)
	if err != nil {
		return nil, err
	}
	if err := registerSwaggerDoc(doc); err != nil {
		return nil, err
	}

	logger = logger.With(zap.String("component", "http"))

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = NewErrorHandler(logger)

	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(_ echo.Context, v middleware.RequestLoggerValues) error {
			fields := []zap.Field{
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
				zap.String("request_id", v.RequestID),
			}
			if v.Error != nil {
				logger.Info("Request", append(fields, zap.Error(v.Error))...)
				return nil
			}
			logger.Debug("Request", fields...)
			return nil
		},
	}))

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.GET("/openapi.yaml", func(c echo.Context) error {
		return c.Blob(http.StatusOK, "application/yaml", api.RawSpec())
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	v1 := e.Group(BaseURL, ActorMiddleware(cfg.JWTSecret))
	api.RegisterHandlers(v1, server)

	return e, nil
}

type swaggerDoc struct {
	json string
}

func (d swaggerDoc) ReadDoc() string {
	return d.json
}

var swaggerOnce sync.Once

// registerSwaggerDoc publishes the document to the swag registry read by the swagger UI. The
// registry accepts one document per name, so only the first call registers.
func registerSwaggerDoc(doc *openapi3.T) error {
	data, err := doc.MarshalJSON()
	if err != nil {
		return fmt.Errorf("error encoding openapi document: %w", err)
	}
	swaggerOnce.Do(func() {
		swag.Register(swag.Name, swaggerDoc{json: string(data)})
	})
	return nil
}
