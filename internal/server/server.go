package server

import (
	"context"
	"errors"
	"net/http"

	"storefront-checkout/internal/config"
	"storefront-checkout/internal/middleware"
	"storefront-checkout/internal/modules/notification"
	"storefront-checkout/internal/modules/payment"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Handlers struct {
	Payment      *payment.Handler
	Notification *notification.Handler
}

// NewRouter wires middleware, the checkout routes and the operational endpoints.
func NewRouter(cfg *config.Config, h Handlers, reg *prometheus.Registry) *gin.Engine {
	router := gin.New()
	router.Use(
		middleware.RequestID(),
		gin.Logger(),
		middleware.ErrorLogger(),
		middleware.CORS(cfg.CORSOrigins),
		middleware.NewHTTPMetrics(reg).Middleware(),
	)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": cfg.ServiceName,
		})
	})
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	h.Payment.RegisterRoutes(router)
	h.Notification.RegisterRoutes(router)

	return router
}

// NewRegistry returns a registry with the Go runtime and process collectors.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

type Server struct {
	httpServer *http.Server
}

func New(cfg *config.Config, handler http.Handler) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:         cfg.Server.Addr(),
			Handler:      handler,
			ReadTimeout:  cfg.Server.ReadTimeout,
			WriteTimeout: cfg.Server.WriteTimeout,
		},
	}
}

// Start blocks until the server stops; a graceful Shutdown is not reported as an error.
func (s *Server) Start() error {
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
