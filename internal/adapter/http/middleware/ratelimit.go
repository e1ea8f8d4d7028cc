package middleware

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/airline-booking/airline-ticket-booking/internal/adapter/http/response"
	"github.com/airline-booking/airline-ticket-booking/internal/infrastructure/timeutil"
)

// Key strategies for RateLimitConfig.KeyStrategy.
const (
	KeyByIP    = "ip"
	KeyByUser  = "user"
	KeyByRoute = "route"
)

const (
	HeaderRateLimitLimit     = "X-RateLimit-Limit"
	HeaderRateLimitRemaining = "X-RateLimit-Remaining"
)

// tokenBucketScript refills the bucket for the elapsed time, then tries to take
// one token. Returns {allowed, remaining, retry_after_ms}.
var tokenBucketScript = redis.NewScript(`
local key      = KEYS[1]
local now_ms   = tonumber(ARGV[1])
local capacity = tonumber(ARGV[2])
local rate     = tonumber(ARGV[3])
local ttl      = tonumber(ARGV[4])

local state  = redis.call('HMGET', key, 'tokens', 'last_refill_ms')
local tokens = tonumber(state[1])
local last   = tonumber(state[2])
if tokens == nil or last == nil then
  tokens = capacity
  last = now_ms
end

local elapsed = math.max(0, now_ms - last)
tokens = math.min(capacity, tokens + elapsed * rate / 1000)

local allowed = 0
local retry_ms = 0
if tokens >= 1 then
  allowed = 1
  tokens = tokens - 1
elseif rate > 0 then
  retry_ms = math.ceil((1 - tokens) * 1000 / rate)
else
  retry_ms = ttl * 1000
end

redis.call('HSET', key, 'tokens', tostring(tokens), 'last_refill_ms', tostring(now_ms))
redis.call('EXPIRE', key, ttl)
return {allowed, math.floor(tokens), retry_ms}
`)

// RateLimitConfig configures the token bucket limiter.
type RateLimitConfig struct {
	Capacity    int
	RefillRate  float64 // tokens per second
	KeyStrategy string
	TTL         time.Duration
	Prefix      string
	Group       string // route group; groups never share a bucket
	Clock       timeutil.Clock
}

func (c RateLimitConfig) withDefaults() RateLimitConfig {
	if c.Capacity <= 0 {
		c.Capacity = 20
	}
	if c.RefillRate < 0 {
		c.RefillRate = 0
	}
	if c.KeyStrategy == "" {
		c.KeyStrategy = KeyByIP
	}
	if c.TTL < time.Second {
		c.TTL = 10 * time.Minute
	}
	if c.Prefix == "" {
		c.Prefix = "ratelimit"
	}
	if c.Clock == nil {
		c.Clock = timeutil.NewRealClock()
	}
	return c
}

// RateLimit returns a Redis backed token bucket limiter. A nil client disables
// limiting. Redis failures let the request through.
func RateLimit(rdb redis.Scripter, cfg RateLimitConfig) echo.MiddlewareFunc {
	if rdb == nil {
		return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	}
	cfg = cfg.withDefaults()
	ttlSeconds := int64(cfg.TTL / time.Second)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()
			key := rateLimitKey(c, cfg)

			res, err := tokenBucketScript.Run(ctx, rdb, []string{key},
				cfg.Clock.Now().UnixMilli(), cfg.Capacity, cfg.RefillRate, ttlSeconds,
			).Int64Slice()
			if err == nil && len(res) != 3 {
				err = fmt.Errorf("unexpected limiter reply of length %d", len(res))
			}
			if err != nil {
				zerolog.Ctx(ctx).Warn().Err(err).Str("key", key).Msg("Rate limiter unavailable, allowing request")
				return next(c)
			}

			allowed, remaining, retryMs := res[0] == 1, res[1], res[2]

			h := c.Response().Header()
			h.Set(HeaderRateLimitLimit, strconv.Itoa(cfg.Capacity))
			h.Set(HeaderRateLimitRemaining, strconv.FormatInt(max(remaining, 0), 10))

			if !allowed {
				zerolog.Ctx(ctx).Warn().Str("key", key).Int64("retry_after_ms", retryMs).Msg("Rate limit exceeded")
				return response.TooManyRequests(c, time.Duration(retryMs)*time.Millisecond)
			}
			return next(c)
		}
	}
}

func rateLimitKey(c echo.Context, cfg RateLimitConfig) string {
	var subject string
	switch cfg.KeyStrategy {
	case KeyByUser:
		subject = GetUsername(c)
		if subject == "" {
			subject = "ip:" + c.RealIP()
		}
	case KeyByRoute:
		subject = c.Request().Method + ":" + c.Path() + ":" + c.RealIP()
	default:
		subject = c.RealIP()
	}
	parts := []string{cfg.Prefix}
	if cfg.Group != "" {
		parts = append(parts, cfg.Group)
	}
	return strings.Join(append(parts, cfg.KeyStrategy, subject), ":")
}
