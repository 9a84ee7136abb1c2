package middleware

import (
	"net/http"
	"time"

	"mealdash-be/internal/logger"
	"mealdash-be/internal/metrics"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RequestID tags every request with an id, honoring one supplied by the
// caller, and threads it into the request context for downstream logs.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}

		c.Header("X-Request-ID", id)
		c.Request = c.Request.WithContext(
			logger.WithRequestID(c.Request.Context(), id))

		c.Next()
	}
}

// AccessLog logs every request in structured JSON and feeds the request
// counters.
func AccessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		metrics.HTTPRequests.Inc()
		if c.Writer.Status() >= http.StatusInternalServerError {
			metrics.HTTPErrors.Inc()
		}

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("remote_ip", c.ClientIP()),
		}
		if userID, ok := CurrentUserID(c); ok {
			fields = append(fields, zap.Uint("user_id", userID))
		}

		logger.FromCtx(c.Request.Context()).Info("http request", fields...)
	}
}
