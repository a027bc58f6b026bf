package ratelimit

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"standplanner/internal/shared/constants"

	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
)

type RateLimitType string

const (
	RateLimitTypeDefault RateLimitType = "default"
	RateLimitTypeEditor  RateLimitType = "editor"
	RateLimitTypeHealth  RateLimitType = "health"
)

type Config struct {
	Enabled         bool          `json:"enabled"`
	WindowDuration  time.Duration `json:"window_duration"`
	DefaultRequests int           `json:"default_requests"`
	EditorRequests  int           `json:"editor_requests"`
	HealthRequests  int           `json:"health_requests"`
	WhitelistedIPs  []string      `json:"whitelisted_ips"`
}

// Result represents rate limit check result
type Result struct {
	Allowed   bool  `json:"allowed"`
	Limit     int   `json:"limit"`
	Remaining int   `json:"remaining"`
	ResetTime int64 `json:"reset_time"`
}

// RateLimiter counts requests in a redis sliding window. Without redis, or
// when a redis call fails, it falls back to per-key token buckets held in
// process memory.
type RateLimiter struct {
	client    *redis.Client
	config    *Config
	whitelist map[string]bool

	mu        sync.Mutex
	local     map[string]*rate.Limiter
	lastSweep time.Time
}

func NewRateLimiter(client *redis.Client, config *Config) *RateLimiter {
	whitelist := make(map[string]bool, len(config.WhitelistedIPs))
	for _, ip := range config.WhitelistedIPs {
		whitelist[ip] = true
	}
	return &RateLimiter{
		client:    client,
		config:    config,
		whitelist: whitelist,
		local:     make(map[string]*rate.Limiter),
		lastSweep: time.Now(),
	}
}

// IsAllowed records one request from clientIP against the limitType budget.
func (r *RateLimiter) IsAllowed(ctx context.Context, clientIP string, limitType RateLimitType) (*Result, error) {
	limit := r.getLimit(limitType)
	if !r.config.Enabled || r.whitelist[clientIP] || limit <= 0 {
		return &Result{
			Allowed:   true,
			Limit:     limit,
			Remaining: limit,
			ResetTime: time.Now().Add(r.config.WindowDuration).Unix(),
		}, nil
	}

	key := constants.BuildRateLimitKey(clientIP, string(limitType))
	if r.client != nil {
		result, err := r.checkLimit(ctx, key, limit)
		if err == nil {
			return result, nil
		}
	}
	return r.checkLocal(key, limit), nil
}

const slidingWindowScript = `
	local key = KEYS[1]
	local window_start = tonumber(ARGV[1])
	local now = tonumber(ARGV[2])
	local limit = tonumber(ARGV[3])
	local window_seconds = tonumber(ARGV[4])
	local member = ARGV[5]

	redis.call('ZREMRANGEBYSCORE', key, '-inf', window_start)

	local current_count = redis.call('ZCARD', key)
	if current_count >= limit then
		redis.call('EXPIRE', key, window_seconds)
		return {current_count + 1, 0}
	end

	redis.call('ZADD', key, now, member)
	redis.call('EXPIRE', key, window_seconds)
	return {current_count + 1, limit - current_count - 1}
`

func (r *RateLimiter) checkLimit(ctx context.Context, key string, limit int) (*Result, error) {
	now := time.Now()
	windowStart := now.Add(-r.config.WindowDuration)
	windowSeconds := max(1, int(r.config.WindowDuration.Seconds()))

	raw, err := r.client.Eval(ctx, slidingWindowScript, []string{key},
		windowStart.UnixMilli(),
		now.UnixMilli(),
		limit,
		windowSeconds,
		strconv.FormatInt(now.UnixNano(), 10),
	).Result()
	if err != nil {
		return nil, fmt.Errorf("redis eval failed: %w", err)
	}

	values, ok := raw.([]interface{})
	if !ok || len(values) != 2 {
		return nil, fmt.Errorf("unexpected redis response %v", raw)
	}
	count, _ := values[0].(int64)
	remaining, _ := values[1].(int64)

	return &Result{
		Allowed:   int(count) <= limit,
		Limit:     limit,
		Remaining: int(remaining),
		ResetTime: now.Add(r.config.WindowDuration).Unix(),
	}, nil
}

func (r *RateLimiter) checkLocal(key string, limit int) *Result {
	now := time.Now()
	limiter := r.localLimiter(key, limit, now)
	allowed := limiter.AllowN(now, 1)

	return &Result{
		Allowed:   allowed,
		Limit:     limit,
		Remaining: max(0, int(limiter.TokensAt(now))),
		ResetTime: now.Add(r.config.WindowDuration).Unix(),
	}
}

func (r *RateLimiter) localLimiter(key string, limit int, now time.Time) *rate.Limiter {
	r.mu.Lock()
	defer r.mu.Unlock()

	// drop idle buckets once a minute
	if now.Sub(r.lastSweep) > time.Minute {
		for k, l := range r.local {
			if l.TokensAt(now) >= float64(l.Burst()) {
				delete(r.local, k)
			}
		}
		r.lastSweep = now
	}

	limiter, ok := r.local[key]
	if !ok {
		every := r.config.WindowDuration / time.Duration(limit)
		limiter = rate.NewLimiter(rate.Every(every), limit)
		r.local[key] = limiter
	}
	return limiter
}

func (r *RateLimiter) getLimit(limitType RateLimitType) int {
	switch limitType {
	case RateLimitTypeEditor:
		return r.config.EditorRequests
	case RateLimitTypeHealth:
		return r.config.HealthRequests
	default:
		return r.config.DefaultRequests
	}
}
