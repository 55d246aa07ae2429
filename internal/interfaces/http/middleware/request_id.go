package middleware

import (
	"context"

	"github.com/Tharak23/deep-fake/pkg/logger"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDMiddleware assigns a unique ID to each request, honoring an
// incoming X-Request-ID header. The ID is placed in both the gin context
// and the request context so the logger can pick it up.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.New().String()
		}

		c.Set(logger.RequestIDKey, id)
		c.Header("X-Request-ID", id)

		ctx := context.WithValue(c.Request.Context(), logger.RequestIDKey, id) //nolint:staticcheck // string key shared with gin context
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
