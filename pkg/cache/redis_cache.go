package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"waste-backend/internal/models"
	"waste-backend/internal/waste"

	redisClient "github.com/redis/go-redis/v9"
)

// ErrCacheMiss is returned by Get when the key does not exist.
var ErrCacheMiss = errors.New("cache miss")

// ClientProvider abstracts where the Redis connection comes from, so the
// reconnecting pkg/redis client and plain clients in tests both work.
type ClientProvider interface {
	GetClient() *redisClient.Client
	Close() error
}

// RedisCacheManager implements CacheManager using Redis
type RedisCacheManager struct {
	client ClientProvider
	config CacheConfig
	stats  *cacheStats
	ctx    context.Context
}

type cacheStats struct {
	mu          sync.RWMutex
	totalHits   int64
	totalMisses int64
}

// NewRedisCacheManager creates a new Redis-backed cache manager
func NewRedisCacheManager(client ClientProvider, config CacheConfig) *RedisCacheManager {
	return &RedisCacheManager{
		client: client,
		config: config,
		stats:  &cacheStats{},
		ctx:    context.Background(),
	}
}

// GetClassificationList retrieves a cached classification list.
// A miss returns (nil, nil) so callers fall through to the database.
func (r *RedisCacheManager) GetClassificationList(key string) ([]*models.WasteClassification, error) {
	cacheKey := r.buildKey("classification_list", key)

	data, err := r.client.GetClient().Get(r.ctx, cacheKey).Result()
	if err != nil {
		if err == redisClient.Nil {
			r.recordMiss()
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get classification list from cache: %w", err)
	}

	var classifications []*models.WasteClassification
	if err := json.Unmarshal([]byte(data), &classifications); err != nil {
		return nil, fmt.Errorf("failed to unmarshal classification list: %w", err)
	}

	r.recordHit()
	return classifications, nil
}

// SetClassificationList stores a classification list with TTL
func (r *RedisCacheManager) SetClassificationList(key string, classifications []*models.WasteClassification, ttl time.Duration) error {
	cacheKey := r.buildKey("classification_list", key)

	data, err := json.Marshal(classifications)
	if err != nil {
		return fmt.Errorf("failed to marshal classification list: %w", err)
	}

	if err := r.client.GetClient().Set(r.ctx, cacheKey, data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to set classification list in cache: %w", err)
	}

	return nil
}

// GetWeightedTotals retrieves cached dashboard totals. Miss returns (nil, nil).
func (r *RedisCacheManager) GetWeightedTotals(key string) (*waste.WeightedTotals, error) {
	cacheKey := r.buildKey("stats", key)

	data, err := r.client.GetClient().Get(r.ctx, cacheKey).Result()
	if err != nil {
		if err == redisClient.Nil {
			r.recordMiss()
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get weighted totals from cache: %w", err)
	}

	var totals waste.WeightedTotals
	if err := json.Unmarshal([]byte(data), &totals); err != nil {
		return nil, fmt.Errorf("failed to unmarshal weighted totals: %w", err)
	}

	r.recordHit()
	return &totals, nil
}

// SetWeightedTotals stores dashboard totals with TTL
func (r *RedisCacheManager) SetWeightedTotals(key string, totals *waste.WeightedTotals, ttl time.Duration) error {
	cacheKey := r.buildKey("stats", key)

	data, err := json.Marshal(totals)
	if err != nil {
		return fmt.Errorf("failed to marshal weighted totals: %w", err)
	}

	if err := r.client.GetClient().Set(r.ctx, cacheKey, data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to set weighted totals in cache: %w", err)
	}

	return nil
}

// Get retrieves an arbitrary JSON value into dest
func (r *RedisCacheManager) Get(key string, dest interface{}) error {
	data, err := r.client.GetClient().Get(r.ctx, r.config.KeyPrefix+key).Result()
	if err != nil {
		if err == redisClient.Nil {
			r.recordMiss()
			return ErrCacheMiss
		}
		return fmt.Errorf("failed to get key %s from cache: %w", key, err)
	}

	if err := json.Unmarshal([]byte(data), dest); err != nil {
		return fmt.Errorf("failed to unmarshal cached value: %w", err)
	}

	r.recordHit()
	return nil
}

// Set stores an arbitrary JSON value with TTL
func (r *RedisCacheManager) Set(key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal value for key %s: %w", key, err)
	}

	return r.client.GetClient().Set(r.ctx, r.config.KeyPrefix+key, data, ttl).Err()
}

// Delete removes a fully-qualified cache key
func (r *RedisCacheManager) Delete(key string) error {
	return r.client.GetClient().Del(r.ctx, key).Err()
}

// InvalidateClassificationData drops every cached list and derived stat.
// Called after a classification insert so the next read recomputes.
func (r *RedisCacheManager) InvalidateClassificationData() error {
	patterns := []string{
		r.config.KeyPrefix + "classification_list:*",
		r.config.KeyPrefix + "stats:*",
	}

	for _, pattern := range patterns {
		iter := r.client.GetClient().Scan(r.ctx, 0, pattern, 100).Iterator()
		for iter.Next(r.ctx) {
			if err := r.client.GetClient().Del(r.ctx, iter.Val()).Err(); err != nil {
				return fmt.Errorf("failed to invalidate key %s: %w", iter.Val(), err)
			}
		}
		if err := iter.Err(); err != nil {
			return fmt.Errorf("failed to scan cache keys: %w", err)
		}
	}

	return nil
}

// GetCacheStats returns hit/miss counters for this process
func (r *RedisCacheManager) GetCacheStats() CacheStats {
	r.stats.mu.RLock()
	defer r.stats.mu.RUnlock()

	stats := CacheStats{
		TotalHits:   r.stats.totalHits,
		TotalMisses: r.stats.totalMisses,
	}

	total := stats.TotalHits + stats.TotalMisses
	if total > 0 {
		stats.HitRate = float64(stats.TotalHits) / float64(total) * 100
		stats.MissRate = float64(stats.TotalMisses) / float64(total) * 100
	}

	return stats
}

// HealthCheck pings the underlying Redis connection
func (r *RedisCacheManager) HealthCheck() error {
	ctx, cancel := context.WithTimeout(r.ctx, 3*time.Second)
	defer cancel()

	return r.client.GetClient().Ping(ctx).Err()
}

// Close releases the underlying client
func (r *RedisCacheManager) Close() error {
	return r.client.Close()
}

func (r *RedisCacheManager) buildKey(dataType, key string) string {
	return fmt.Sprintf("%s%s:%s", r.config.KeyPrefix, dataType, key)
}

func (r *RedisCacheManager) recordHit() {
	r.stats.mu.Lock()
	r.stats.totalHits++
	r.stats.mu.Unlock()
}

func (r *RedisCacheManager) recordMiss() {
	r.stats.mu.Lock()
	r.stats.totalMisses++
	r.stats.mu.Unlock()
}
