package ratelimit

import (
	"sync"
	"sync/atomic"
	"time"
)

// MemoryRateLimiter is an in-process fallback for when Redis is not
// available. Windows are per-instance, so limits are approximate when the
// service runs more than one replica.
type MemoryRateLimiter struct {
	config  *Config
	stats   RateLimiterStats
	mu      sync.Mutex
	windows map[string]*window
}

type window struct {
	count int
	start time.Time
}

// NewMemoryRateLimiter creates an in-memory rate limiter
func NewMemoryRateLimiter(config *Config) *MemoryRateLimiter {
	if config == nil {
		config = DefaultConfig()
	}

	limiter := &MemoryRateLimiter{
		config:  config,
		windows: make(map[string]*window),
	}

	go limiter.cleanupLoop()

	return limiter
}

// Allow checks if a request should be allowed based on rate limits
func (m *MemoryRateLimiter) Allow(clientID string, endpoint string) (bool, time.Duration, error) {
	if !m.config.Enabled {
		return true, 0, nil
	}

	atomic.AddInt64(&m.stats.TotalRequests, 1)

	limit := m.config.limitFor(endpoint)
	key := clientID + ":" + m.config.GetEndpointKey(endpoint)
	now := time.Now()

	m.mu.Lock()
	defer m.mu.Unlock()

	w, exists := m.windows[key]
	if !exists || now.Sub(w.start) >= limit.WindowSize {
		w = &window{start: now}
		m.windows[key] = w
	}

	if w.count >= limit.BurstSize {
		atomic.AddInt64(&m.stats.BlockedRequests, 1)
		resetTime := limit.WindowSize - now.Sub(w.start)
		if resetTime < 0 {
			resetTime = 0
		}
		return false, resetTime, nil
	}

	w.count++
	return true, 0, nil
}

// GetLimit returns the limit that applies to an endpoint
func (m *MemoryRateLimiter) GetLimit(endpoint string) RateLimit {
	return m.config.limitFor(endpoint)
}

// GetStats returns current rate limiter statistics
func (m *MemoryRateLimiter) GetStats() RateLimiterStats {
	return RateLimiterStats{
		TotalRequests:   atomic.LoadInt64(&m.stats.TotalRequests),
		BlockedRequests: atomic.LoadInt64(&m.stats.BlockedRequests),
	}
}

// cleanupLoop drops windows that have long expired
func (m *MemoryRateLimiter) cleanupLoop() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		cutoff := time.Now().Add(-10 * time.Minute)

		m.mu.Lock()
		for key, w := range m.windows {
			if w.start.Before(cutoff) {
				delete(m.windows, key)
			}
		}
		m.mu.Unlock()
	}
}
