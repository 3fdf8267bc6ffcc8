package services

import (
	"log"
	"time"

	"waste-backend/internal/models"
	"waste-backend/internal/repository"
	"waste-backend/pkg/cache"
)

type ClassificationService struct {
	repo        *repository.ClassificationRepository
	cache       cache.CacheManager
	cacheConfig cache.CacheConfig
}

func NewClassificationService(repo *repository.ClassificationRepository, cacheManager cache.CacheManager) *ClassificationService {
	return &ClassificationService{
		repo:        repo,
		cache:       cacheManager,
		cacheConfig: cache.DefaultCacheConfig(),
	}
}

// CreateClassification stores a new detection. DetectionTime defaults to the
// ingestion time when the camera did not supply one.
func (s *ClassificationService) CreateClassification(classification *models.WasteClassification) (*models.WasteClassification, error) {
	if classification.DetectionTime.IsZero() {
		classification.DetectionTime = time.Now()
	}

	created, err := s.repo.Create(classification)
	if err != nil {
		return nil, err
	}

	s.invalidateCache()
	return created, nil
}

func (s *ClassificationService) GetAllClassifications() ([]*models.WasteClassification, error) {
	if s.cache != nil {
		cached, err := s.cache.GetClassificationList("all")
		if err != nil {
			log.Printf("Cache error fetching classification list: %v", err)
		} else if cached != nil {
			return cached, nil
		}
	}

	classifications, err := s.repo.FindAll()
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		ttl := s.cacheConfig.GetTTLForDataType("classification_list")
		if err := s.cache.SetClassificationList("all", classifications, ttl); err != nil {
			log.Printf("Cache error storing classification list: %v", err)
		}
	}

	return classifications, nil
}

func (s *ClassificationService) GetRecentClassifications(limit int64) ([]*models.WasteClassification, error) {
	return s.repo.FindRecent(limit)
}

// invalidateCache drops every cached view derived from the classification
// table. New detections change the list, the totals and the distribution.
func (s *ClassificationService) invalidateCache() {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateClassificationData(); err != nil {
		log.Printf("Cache invalidation failed after classification insert: %v", err)
	}
}
