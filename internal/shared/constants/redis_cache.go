package constants

import (
	"time"
)

// Redis Cache Configuration
// This file centralizes all Redis cache keys and TTL values for the planner.
// Pattern: standplanner:{module}:{operation}:{identifier}

// ================== CACHE TTL DURATIONS ==================

// Semi-Static Data (Medium TTL: changes occasionally)
const (
	TTL_SEMI_STATIC_SHORT = 30 * time.Minute // 30 minutes - for saved plans
)

// Dynamic Data (Short TTL: changes frequently)
const (
	TTL_DYNAMIC_SHORT = 5 * time.Minute // 5 minutes - for application lists
)

// ================== REDIS KEY PREFIXES ==================

const (
	CACHE_PREFIX = "standplanner"
)

// ================== PLANS MODULE ==================

// Plan Cache Keys
const (
	CACHE_KEY_PLAN_BY_EVENT = CACHE_PREFIX + ":plans:event:" // + event-id
)

// Plan Cache TTLs
const (
	TTL_PLAN = TTL_SEMI_STATIC_SHORT // 30 minutes
)

// ================== APPLICATIONS MODULE ==================

// Application Cache Keys
const (
	CACHE_KEY_APPLICATIONS_BY_EVENT = CACHE_PREFIX + ":applications:event:" // + event-id
)

// Application Cache TTLs
const (
	TTL_APPLICATIONS = TTL_DYNAMIC_SHORT // 5 minutes
)

// ================== RATE LIMITING ==================

const (
	CACHE_KEY_RATE_LIMIT = CACHE_PREFIX + ":ratelimit:" // + ip:type
)

// ================== CACHE INVALIDATION PATTERNS ==================

const (
	PATTERN_INVALIDATE_PLANS_ALL        = CACHE_PREFIX + ":plans:*"
	PATTERN_INVALIDATE_APPLICATIONS_ALL = CACHE_PREFIX + ":applications:*"
)

// ================== KEY BUILDERS ==================

func BuildPlanKey(eventID string) string {
	return CACHE_KEY_PLAN_BY_EVENT + eventID
}

func BuildApplicationsKey(eventID string) string {
	return CACHE_KEY_APPLICATIONS_BY_EVENT + eventID
}

func BuildRateLimitKey(clientIP, limitType string) string {
	return CACHE_KEY_RATE_LIMIT + clientIP + ":" + limitType
}
