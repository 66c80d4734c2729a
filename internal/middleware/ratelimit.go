package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
)

// Counter increments a fixed-window counter and returns the new value.
type Counter interface {
	Incr(ctx context.Context, key string, window time.Duration) (int64, error)
}

var fixedWindowScript = redis.NewScript(`
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return current
`)

// RedisCounter is shared by every API instance.
type RedisCounter struct {
	rdb    *redis.Client
	prefix string
}

func NewRedisCounter(rdb *redis.Client) *RedisCounter {
	return &RedisCounter{rdb: rdb, prefix: "salon:rl:"}
}

func (r *RedisCounter) Incr(ctx context.Context, key string, window time.Duration) (int64, error) {
	res, err := fixedWindowScript.Run(ctx, r.rdb, []string{r.prefix + key}, window.Milliseconds()).Result()
	if err != nil {
		return 0, err
	}
	n, ok := res.(int64)
	if !ok {
		return 0, fmt.Errorf("unexpected rate limit result %T", res)
	}
	return n, nil
}

// RateLimit allows limit requests per client IP and route in each window.
// A nil counter or a non-positive limit disables it; counter failures let
// the request through.
func RateLimit(counter Counter, limit int, window time.Duration, log *slog.Logger) gin.HandlerFunc {
	if counter == nil || limit <= 0 {
		return func(c *gin.Context) { c.Next() }
	}
	if window < time.Second {
		window = time.Minute
	}

	return func(c *gin.Context) {
		key := fmt.Sprintf("%s:%s:%d", c.ClientIP(), c.FullPath(), time.Now().Unix()/int64(window.Seconds()))

		n, err := counter.Incr(c.Request.Context(), key, window)
		if err != nil {
			log.Warn("rate limiter unavailable", "err", err)
			c.Next()
			return
		}

		if n > int64(limit) {
			c.Header("Retry-After", fmt.Sprintf("%d", int(window.Seconds())))
			httperr.TooManyRequests(c)
			return
		}

		c.Next()
	}
}
