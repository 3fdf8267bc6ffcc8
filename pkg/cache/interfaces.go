package cache

import (
	"time"

	"waste-backend/internal/models"
	"waste-backend/internal/waste"
)

// CacheManager defines the interface for caching operations
type CacheManager interface {
	// Classification list operations
	GetClassificationList(key string) ([]*models.WasteClassification, error)
	SetClassificationList(key string, classifications []*models.WasteClassification, ttl time.Duration) error

	// Derived aggregation operations
	GetWeightedTotals(key string) (*waste.WeightedTotals, error)
	SetWeightedTotals(key string, totals *waste.WeightedTotals, ttl time.Duration) error

	// Generic operations
	Get(key string, dest interface{}) error
	Set(key string, value interface{}, ttl time.Duration) error
	Delete(key string) error

	// Invalidation
	InvalidateClassificationData() error

	// Statistics and health
	GetCacheStats() CacheStats
	HealthCheck() error
	Close() error
}

// CacheStats provides cache performance metrics
type CacheStats struct {
	HitRate     float64 `json:"hitRate"`
	MissRate    float64 `json:"missRate"`
	TotalHits   int64   `json:"totalHits"`
	TotalMisses int64   `json:"totalMisses"`
}
