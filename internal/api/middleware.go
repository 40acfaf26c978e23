package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Krushna4142/FitOS-dashboard/internal/mock"
)

// RequestIDMiddleware ensures every request has a correlation/request ID.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		reqID := c.GetHeader("X-Request-ID")
		if reqID == "" {
			reqID = uuid.NewString()
		}
		c.Set("request_id", reqID)
		c.Writer.Header().Set("X-Request-ID", reqID)
		c.Next()
	}
}

// SimulateLatency sleeps for a duration in [min, max) before handling, so
// the mock endpoints feel like a remote backend. Pass enabled=false (tests,
// local tooling) to make it a no-op. A zero max means the delay is exactly
// min.
func SimulateLatency(svc *mock.Service, enabled bool, min, max time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if enabled {
			time.Sleep(svc.Interval(min, max))
		}
		c.Next()
	}
}
