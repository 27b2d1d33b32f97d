package middleware

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go-payroll/internal/shared/contextutil"
	"go-payroll/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	idempotencyCacheKey = "idempotency_cache_key"
	idempotencyLockKey  = "idempotency_lock_key"

	IdempotencyLockTTL  = 30 * time.Second
	IdempotencyCacheTTL = 24 * time.Hour
)

type cachedResponse struct {
	Status int             `json:"status"`
	Body   json.RawMessage `json:"body"`
}

// Idempotency replays the cached response of a POST that already succeeded
// with the same Idempotency-Key, and rejects a duplicate that is still in
// flight. Handlers persist their response with Idempotent.Store.
func Idempotency(rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		idempKey := c.GetHeader("Idempotency-Key")
		if idempKey == "" || c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		userID := c.GetString(ContextUserID)
		cacheKey := fmt.Sprintf("idemp:%s:%s:%s", c.FullPath(), userID, idempKey)
		lockKey := cacheKey + ":lock"

		val, err := rdb.Get(ctx, cacheKey).Result()
		if err == nil {
			var cached cachedResponse
			if json.Unmarshal([]byte(val), &cached) == nil && cached.Status != 0 {
				c.Header("Idempotent-Replayed", "true")
				response.Success(c, cached.Status, cached.Body, nil)
				c.Abort()
				return
			}
		} else if err != redis.Nil {
			contextutil.GetLogger(ctx, zap.L()).Warn("idempotency cache unavailable", zap.Error(err))
			c.Next()
			return
		}

		isNew, err := rdb.SetNX(ctx, lockKey, "locked", IdempotencyLockTTL).Result()
		if err != nil {
			contextutil.GetLogger(ctx, zap.L()).Warn("idempotency lock unavailable", zap.Error(err))
			c.Next()
			return
		}
		if !isNew {
			response.AbortWithError(c, ErrRequestInFlight)
			return
		}

		c.Set(idempotencyCacheKey, cacheKey)
		c.Set(idempotencyLockKey, lockKey)

		c.Next()
	}
}

// Idempotent is the handler side of the Idempotency middleware.
type Idempotent struct {
	rdb *redis.Client
}

func NewIdempotent(rdb *redis.Client) *Idempotent {
	return &Idempotent{rdb: rdb}
}

// Release drops the in-flight lock. Safe to call without a lock.
func (i *Idempotent) Release(c *gin.Context) {
	if i == nil || i.rdb == nil {
		return
	}
	if lk := c.GetString(idempotencyLockKey); lk != "" {
		_ = i.rdb.Del(context.WithoutCancel(c.Request.Context()), lk).Err()
	}
}

// Store caches a successful response under the request's key so a replay
// answers with the same status and body.
func (i *Idempotent) Store(c *gin.Context, status int, body any) {
	if i == nil || i.rdb == nil {
		return
	}
	ck := c.GetString(idempotencyCacheKey)
	if ck == "" {
		return
	}
	raw, err := json.Marshal(body)
	if err != nil {
		return
	}
	payload, err := json.Marshal(cachedResponse{Status: status, Body: raw})
	if err != nil {
		return
	}
	_ = i.rdb.Set(c.Request.Context(), ck, string(payload), IdempotencyCacheTTL).Err()
}
