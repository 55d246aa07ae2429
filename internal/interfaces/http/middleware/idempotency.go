package middleware

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/Tharak23/deep-fake/pkg/redis"
	"github.com/gin-gonic/gin"
)

const (
	// IdempotencyHeader is the header carrying the client-chosen key
	IdempotencyHeader = "Idempotency-Key"
	// LockDuration is how long the in-progress marker is held
	LockDuration = 30 * time.Second
	// RetentionDuration is how long a completed response is kept
	RetentionDuration = 24 * time.Hour

	processingMarker = "processing"
)

var (
	redisGet   = redis.Get
	redisSet   = redis.Set
	redisSetNX = redis.SetNX
	redisDel   = redis.Del
)

type responseRecorder struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w responseRecorder) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// IdempotencyMiddleware replays the stored response for a repeated
// Idempotency-Key instead of re-executing the handler. Requests without the
// header pass through untouched.
func IdempotencyMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader(IdempotencyHeader)
		if key == "" {
			c.Next()
			return
		}

		userID, _ := GetUserID(c)
		storageKey := fmt.Sprintf("idempotency:%s:%s", userID, key)
		ctx := c.Request.Context()

		acquired, err := redisSetNX(ctx, storageKey, processingMarker, LockDuration)
		if err != nil {
			// Redis being down should not break the endpoint.
			c.Next()
			return
		}
		if !acquired {
			val, err := redisGet(ctx, storageKey)
			if err == nil && val == processingMarker {
				c.AbortWithStatusJSON(http.StatusConflict, gin.H{
					"error": "Request already in progress",
				})
				return
			}
			if err == nil {
				c.Header("X-Idempotent-Replay", "true")
				c.Data(decodeStoredResponse(val))
				c.Abort()
				return
			}
			// Marker expired between SetNX and Get; fall through.
		}

		recorder := responseRecorder{ResponseWriter: c.Writer, body: &bytes.Buffer{}}
		c.Writer = recorder

		c.Next()

		status := c.Writer.Status()
		if status >= 200 && status < 300 {
			stored := strconv.Itoa(status) + "|" + recorder.body.String()
			_ = redisSet(ctx, storageKey, stored, RetentionDuration)
		} else {
			_ = redisDel(ctx, storageKey)
		}
	}
}

// decodeStoredResponse splits a "<status>|<body>" record so a replay
// carries the original status code, not a flat 200.
func decodeStoredResponse(val string) (int, string, []byte) {
	statusPart, body, ok := strings.Cut(val, "|")
	status, err := strconv.Atoi(statusPart)
	if !ok || err != nil {
		return http.StatusOK, "application/json", []byte(val)
	}
	return status, "application/json", []byte(body)
}
