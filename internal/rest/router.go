package rest

import (
	"net/http"

	"bookshop-be/internal/docs"
	"bookshop-be/internal/httpx"
	"bookshop-be/internal/logger"
	"bookshop-be/internal/metrics"
	"bookshop-be/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterConfig struct {
	Handler  *Handler
	Limiter  *middleware.Limiter
	Metrics  *metrics.Metrics
	Gatherer prometheus.Gatherer
	// Docs mounts the Swagger UI under /swagger/.
	Docs bool
}

// NewRouter builds the gin engine with the middleware chain, /health, /metrics, the optional
// Swagger UI and the /v1 API.
func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true

	r.Use(
		middleware.Recovery(),
		logger.RequestID(),
		middleware.AccessLog(),
		middleware.Metrics(cfg.Metrics),
		middleware.Authenticate(cfg.Handler.svc.Auth),
	)
	if cfg.Limiter != nil {
		r.Use(cfg.Limiter.Middleware())
	}

	r.NoRoute(func(c *gin.Context) {
		httpx.Error(c, http.StatusNotFound, "route not found")
	})
	r.NoMethod(func(c *gin.Context) {
		httpx.Error(c, http.StatusMethodNotAllowed, "method not allowed")
	})

	r.GET("/health", func(c *gin.Context) {
		httpx.OK(c, "ok", nil)
	})
	if cfg.Gatherer != nil {
		r.GET("/metrics", gin.WrapH(metrics.Handler(cfg.Gatherer)))
	}
	if cfg.Docs {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler,
			ginSwagger.InstanceName(docs.SwaggerInfo.InstanceName()),
		))
	}

	cfg.Handler.Register(r)
	return r
}
