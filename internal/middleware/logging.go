package middleware

import (
	"net/http"
	"strconv"
	"time"

	"bookshop-be/internal/httpx"
	"bookshop-be/internal/logger"
	"bookshop-be/internal/metrics"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const unmatchedRoute = "unmatched"

// AccessLog logs every HTTP request once it has been served.
func AccessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		log := logger.FromCtx(c.Request.Context())
		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.String("route", c.FullPath()),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
		}

		switch {
		case c.Writer.Status() >= http.StatusInternalServerError:
			log.Error("HTTP Request", fields...)
		case c.Writer.Status() >= http.StatusBadRequest:
			log.Warn("HTTP Request", fields...)
		default:
			log.Info("HTTP Request", fields...)
		}
	}
}

// Metrics records request count and latency per route pattern.
func Metrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		timer := metrics.StartTimer()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = unmatchedRoute
		}
		m.ObserveRequest(route, c.Request.Method, strconv.Itoa(c.Writer.Status()), timer.Duration())
	}
}

// Recovery turns a panic into a 500 envelope.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.FromCtx(c.Request.Context()).Error("panic recovered",
			zap.Any("panic", recovered),
			zap.String("path", c.Request.URL.Path),
			zap.Stack("stack"),
		)
		httpx.Error(c, http.StatusInternalServerError, "internal server error")
	})
}
