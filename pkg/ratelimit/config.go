package ratelimit

import (
	"strings"
	"time"
)

// Config holds rate limiter settings
type Config struct {
	Enabled        bool
	RedisKeyPrefix string
	DefaultLimits  map[string]RateLimit
}

// DefaultConfig returns the default rate limiting configuration.
// Write-heavy endpoints get tighter limits than plain reads.
func DefaultConfig() *Config {
	return &Config{
		Enabled:        true,
		RedisKeyPrefix: "ratelimit:",
		DefaultLimits: map[string]RateLimit{
			"auth_login": {
				RequestsPerMinute: 10,
				BurstSize:         5,
				WindowSize:        time.Minute,
			},
			"writes": {
				RequestsPerMinute: 30,
				BurstSize:         10,
				WindowSize:        time.Minute,
			},
			"reads": {
				RequestsPerMinute: 120,
				BurstSize:         30,
				WindowSize:        time.Minute,
			},
			"default": {
				RequestsPerMinute: 60,
				BurstSize:         15,
				WindowSize:        time.Minute,
			},
		},
	}
}

// GetEndpointKey maps "METHOD:path" to a rate limit category
func (c *Config) GetEndpointKey(endpoint string) string {
	if endpoint == "POST:/api/v1/auth/login" {
		return "auth_login"
	}

	switch {
	case strings.HasPrefix(endpoint, "GET:"):
		return "reads"
	case strings.HasPrefix(endpoint, "POST:"),
		strings.HasPrefix(endpoint, "PATCH:"),
		strings.HasPrefix(endpoint, "DELETE:"):
		return "writes"
	}

	return "default"
}

// limitFor resolves the RateLimit for an endpoint category
func (c *Config) limitFor(endpoint string) RateLimit {
	key := c.GetEndpointKey(endpoint)
	if limit, exists := c.DefaultLimits[key]; exists {
		return limit
	}
	if limit, exists := c.DefaultLimits["default"]; exists {
		return limit
	}
	return RateLimit{
		RequestsPerMinute: 60,
		BurstSize:         15,
		WindowSize:        time.Minute,
	}
}
