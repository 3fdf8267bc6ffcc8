package services

import (
	"errors"
	"log"

	"waste-backend/internal/repository"
	"waste-backend/internal/waste"
	"waste-backend/pkg/cache"
)

// AnalyticsData is the analytics page payload: the per-type distribution and
// the recyclable split derived from it.
type AnalyticsData struct {
	Distribution    []waste.DistributionEntry `json:"distribution"`
	RecyclableSplit waste.RecyclableSplit     `json:"recyclableSplit"`
	TotalDetections int                       `json:"totalDetections"`
}

type AnalyticsService struct {
	classificationRepo *repository.ClassificationRepository
	cache              cache.CacheManager
	cacheConfig        cache.CacheConfig
}

func NewAnalyticsService(classificationRepo *repository.ClassificationRepository, cacheManager cache.CacheManager) *AnalyticsService {
	return &AnalyticsService{
		classificationRepo: classificationRepo,
		cache:              cacheManager,
		cacheConfig:        cache.DefaultCacheConfig(),
	}
}

func (s *AnalyticsService) GetAnalytics() (*AnalyticsData, error) {
	if s.cache != nil {
		var cached AnalyticsData
		err := s.cache.Get("stats:analytics", &cached)
		if err == nil {
			return &cached, nil
		}
		if !errors.Is(err, cache.ErrCacheMiss) {
			log.Printf("Cache error fetching analytics: %v", err)
		}
	}

	wasteTypes, err := s.classificationRepo.FindAllWasteTypes()
	if err != nil {
		return nil, err
	}

	distribution := waste.ComputeDistribution(wasteTypes)
	data := &AnalyticsData{
		Distribution:    distribution,
		RecyclableSplit: waste.SplitRecyclable(distribution),
		TotalDetections: len(wasteTypes),
	}

	if s.cache != nil {
		ttl := s.cacheConfig.GetTTLForDataType("stats")
		if err := s.cache.Set("stats:analytics", data, ttl); err != nil {
			log.Printf("Cache error storing analytics: %v", err)
		}
	}

	return data, nil
}
