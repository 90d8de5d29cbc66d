// Package http exposes the order operations over REST with echo.
//
// Identity is taken from trusted gateway headers, every route maps domain errors
// onto {code, kind, message} bodies, and request counts and latencies are exported
// to Prometheus.
package http

import (
	"context"
	"log/slog"
	"net/http"

	_ "marketplace/internal/adapters/in/http/docs" // registers the swagger document
	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

type (
	CreateOrdersFromCartHandler interface {
		Handle(ctx context.Context, cmd commands.CreateOrdersFromCartCommand) (commands.CreateOrdersResult, error)
	}
	ConfirmOrderHandler interface {
		Handle(ctx context.Context, cmd commands.ConfirmOrderCommand) (commands.DecisionResult, error)
	}
	DenyOrderHandler interface {
		Handle(ctx context.Context, cmd commands.DenyOrderCommand) (commands.DecisionResult, error)
	}
	ListOrdersHandler interface {
		Handle(ctx context.Context, query queries.ListOrdersQuery) (queries.ListOrdersQueryResponse, error)
	}
	GetAllOrdersHandler interface {
		Handle(ctx context.Context, query queries.GetAllOrdersQuery) ([]queries.AdminOrderView, error)
	}
	GetPendingOrdersHandler interface {
		Handle(ctx context.Context, query queries.GetPendingOrdersQuery) ([]queries.AdminOrderView, error)
	}

	// IdempotencyStore remembers Idempotency-Key values of cart submissions.
	IdempotencyStore interface {
		Reserve(ctx context.Context, actorID, key string) (bool, error)
		Release(ctx context.Context, actorID, key string) error
	}
)

// Handlers groups the use cases served over HTTP.
type Handlers struct {
	CreateOrdersFromCart CreateOrdersFromCartHandler
	ConfirmOrder         ConfirmOrderHandler
	DenyOrder            DenyOrderHandler
	ListOrders           ListOrdersHandler
	GetAllOrders         GetAllOrdersHandler
	GetPendingOrders     GetPendingOrdersHandler
}

// Server owns the route table. Idempotency may be nil, which disables
// Idempotency-Key handling.
type Server struct {
	handlers    Handlers
	idempotency IdempotencyStore
	metrics     *metrics.Metrics
	logger      *slog.Logger
}

func NewServer(handlers Handlers, idempotency IdempotencyStore, m *metrics.Metrics, logger *slog.Logger) *Server {
	return &Server{
		handlers:    handlers,
		idempotency: idempotency,
		metrics:     m,
		logger:      logger.With("component", "http"),
	}
}

// NewEcho builds an echo instance with every route registered.
func (s *Server) NewEcho() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURIPath:  true,
		LogStatus:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(_ echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []any{"method", v.Method, "path", v.URIPath, "status", v.Status, "latency", v.Latency}
			if v.Error != nil {
				attrs = append(attrs, "err", v.Error)
			}
			s.logger.Info("request", attrs...)
			return nil
		},
	}))
	e.Use(s.observe)

	s.Register(e)
	return e
}

// Register mounts the routes on e.
func (s *Server) Register(e *echo.Echo) {
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/metrics", echo.WrapHandler(s.metrics.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api", authenticate)

	api.POST("/order/complete", s.CreateOrdersFromCart)
	api.GET("/order", s.ListOrders)
	api.GET("/order/seller", s.ListSellerOrders)
	api.PUT("/order/confirm/:orderId", s.ConfirmOrder)
	api.PUT("/order/deny/:orderId", s.DenyOrder)

	api.GET("/admin/orders/all", s.GetAllOrders)
	api.GET("/admin/orders/pending", s.GetPendingOrders)
}
