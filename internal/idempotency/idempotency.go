// Package idempotency makes unsafe requests replay-safe.
//
// Clients send an Idempotency-Key header with mutating requests. The first
// request takes a provisional lock in Redis and records the final response;
// retries with the same key replay that response instead of repeating the
// write. The middleware is only active when a Redis client is configured.
package idempotency

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// Header is the idempotency key header clients send.
const Header = "Idempotency-Key"

// provisionalLockTTL is how long the in-progress lock is held before a
// crashed handler releases the key again.
const provisionalLockTTL = 60 * time.Second

type entry struct {
	InProgress bool      `json:"inProgress"`
	Code       int       `json:"code"`
	Body       []byte    `json:"body"`
	BodySHA256 string    `json:"bodySha256"`
	CreatedAt  time.Time `json:"createdAt"`
}

type bodyRecorder struct {
	gin.ResponseWriter
	buf *bytes.Buffer
}

func (r *bodyRecorder) Write(b []byte) (int, error) {
	r.buf.Write(b)
	return r.ResponseWriter.Write(b)
}

// Middleware enforces idempotency keys on mutating requests. Requests without
// the header pass through untouched, so the header stays opt-in for clients.
func Middleware(rdb *redis.Client, ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		switch c.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			c.Next()
			return
		}

		key := strings.TrimSpace(c.GetHeader(Header))
		if key == "" {
			c.Next()
			return
		}

		if !validKey(key) {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "the Idempotency-Key header must be a UUID"})
			return
		}

		var body []byte
		if c.Request.Body != nil {
			body, _ = io.ReadAll(c.Request.Body)
		}
		c.Request.Body = io.NopCloser(bytes.NewBuffer(body))
		hash := bodyHash(body)

		storeKey := buildKey(c.Request.Method, c.FullPath(), subject(c), key)

		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		locked, err := provisionalSet(ctx, rdb, storeKey, entry{
			InProgress: true,
			BodySHA256: hash,
			CreatedAt:  time.Now().UTC(),
		})
		if err != nil {
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "idempotency store unavailable"})
			return
		}

		if !locked {
			stored, err := loadEntry(ctx, rdb, storeKey)
			if err == nil && stored.BodySHA256 != hash {
				c.AbortWithStatusJSON(http.StatusConflict, gin.H{"error": "Idempotency-Key reused with a different body"})
				return
			}

			if err == nil && !stored.InProgress && stored.Code != 0 {
				c.Data(stored.Code, "application/json; charset=utf-8", stored.Body)
				c.Abort()
				return
			}

			c.AbortWithStatusJSON(http.StatusConflict, gin.H{"error": "a request with this Idempotency-Key is already in progress"})
			return
		}

		recorder := &bodyRecorder{ResponseWriter: c.Writer, buf: &bytes.Buffer{}}
		c.Writer = recorder
		c.Next()

		_ = saveFinal(context.Background(), rdb, storeKey, entry{
			InProgress: false,
			Code:       recorder.Status(),
			Body:       recorder.buf.Bytes(),
			BodySHA256: hash,
			CreatedAt:  time.Now().UTC(),
		}, ttl)
	}
}
