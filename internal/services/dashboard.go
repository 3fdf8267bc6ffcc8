package services

import (
	"log"

	"waste-backend/internal/models"
	"waste-backend/internal/repository"
	"waste-backend/internal/waste"
	"waste-backend/pkg/cache"
)

// DashboardData is the single payload the dashboard page renders from.
type DashboardData struct {
	WeightedTotals        waste.WeightedTotals          `json:"weightedTotals"`
	TotalDetections       int64                         `json:"totalDetections"`
	RecentClassifications []*models.WasteClassification `json:"recentClassifications"`
	RecentVehicles        []*models.Vehicle             `json:"recentVehicles"`
}

type DashboardService struct {
	classificationRepo *repository.ClassificationRepository
	vehicleRepo        *repository.VehicleRepository
	cache              cache.CacheManager
	cacheConfig        cache.CacheConfig
}

func NewDashboardService(
	classificationRepo *repository.ClassificationRepository,
	vehicleRepo *repository.VehicleRepository,
	cacheManager cache.CacheManager,
) *DashboardService {
	return &DashboardService{
		classificationRepo: classificationRepo,
		vehicleRepo:        vehicleRepo,
		cache:              cacheManager,
		cacheConfig:        cache.DefaultCacheConfig(),
	}
}

// GetDashboard assembles the weighted totals plus the three most recent
// detections and vehicles. Totals are cached; the recency lists are cheap
// enough to read fresh every time.
func (s *DashboardService) GetDashboard() (*DashboardData, error) {
	totals, err := s.getWeightedTotals()
	if err != nil {
		return nil, err
	}

	count, err := s.classificationRepo.Count()
	if err != nil {
		return nil, err
	}

	recentClassifications, err := s.classificationRepo.FindRecent(3)
	if err != nil {
		return nil, err
	}

	recentVehicles, err := s.vehicleRepo.FindAll(3)
	if err != nil {
		return nil, err
	}

	return &DashboardData{
		WeightedTotals:        totals,
		TotalDetections:       count,
		RecentClassifications: recentClassifications,
		RecentVehicles:        recentVehicles,
	}, nil
}

func (s *DashboardService) getWeightedTotals() (waste.WeightedTotals, error) {
	if s.cache != nil {
		cached, err := s.cache.GetWeightedTotals("dashboard")
		if err != nil {
			log.Printf("Cache error fetching weighted totals: %v", err)
		} else if cached != nil {
			return *cached, nil
		}
	}

	wasteTypes, err := s.classificationRepo.FindAllWasteTypes()
	if err != nil {
		return waste.WeightedTotals{}, err
	}

	totals := waste.ComputeWeightedTotals(wasteTypes)

	if s.cache != nil {
		ttl := s.cacheConfig.GetTTLForDataType("stats")
		if err := s.cache.SetWeightedTotals("dashboard", &totals, ttl); err != nil {
			log.Printf("Cache error storing weighted totals: %v", err)
		}
	}

	return totals, nil
}
