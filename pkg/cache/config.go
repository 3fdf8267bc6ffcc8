package cache

import "time"

// CacheConfig holds TTLs and key naming for the cache layer
type CacheConfig struct {
	KeyPrefix             string
	ClassificationListTTL time.Duration
	StatsTTL              time.Duration
	DefaultTTL            time.Duration
}

// DefaultCacheConfig returns sensible cache settings. Classification lists
// stay hot briefly; derived stats a little longer since they are recomputed
// from the full table on every miss.
func DefaultCacheConfig() CacheConfig {
	return CacheConfig{
		KeyPrefix:             "waste:",
		ClassificationListTTL: 30 * time.Second,
		StatsTTL:              60 * time.Second,
		DefaultTTL:            60 * time.Second,
	}
}

// GetTTLForDataType returns the TTL for a given cached data type
func (c CacheConfig) GetTTLForDataType(dataType string) time.Duration {
	switch dataType {
	case "classification_list":
		return c.ClassificationListTTL
	case "stats":
		return c.StatsTTL
	default:
		return c.DefaultTTL
	}
}
