package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/skillforge/skillforge-backend/internal/logger"
)

type RequestLogger struct {
	log *logger.Logger
}

func NewRequestLogger(baseLog *logger.Logger) *RequestLogger {
	middlewareLog := baseLog.With("middleware", "RequestLogger")
	return &RequestLogger{log: middlewareLog}
}

// Handle logs one structured line per request after the handler chain ran.
func (rl *RequestLogger) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := []interface{}{
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
			"client_ip", c.ClientIP(),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, "errors", c.Errors.String())
		}
		if c.Writer.Status() >= 500 {
			rl.log.Error("Request failed", fields...)
			return
		}
		rl.log.Info("Request handled", fields...)
	}
}
