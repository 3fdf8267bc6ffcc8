package services

import (
	"testing"
	"time"

	"waste-backend/internal/models"
	"waste-backend/internal/waste"
	"waste-backend/pkg/cache"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MockCacheManager is a mock implementation of the CacheManager interface
type MockCacheManager struct {
	mock.Mock
}

func (m *MockCacheManager) GetClassificationList(key string) ([]*models.WasteClassification, error) {
	args := m.Called(key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.WasteClassification), args.Error(1)
}

func (m *MockCacheManager) SetClassificationList(key string, classifications []*models.WasteClassification, ttl time.Duration) error {
	args := m.Called(key, classifications, ttl)
	return args.Error(0)
}

func (m *MockCacheManager) GetWeightedTotals(key string) (*waste.WeightedTotals, error) {
	args := m.Called(key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*waste.WeightedTotals), args.Error(1)
}

func (m *MockCacheManager) SetWeightedTotals(key string, totals *waste.WeightedTotals, ttl time.Duration) error {
	args := m.Called(key, totals, ttl)
	return args.Error(0)
}

func (m *MockCacheManager) Get(key string, dest interface{}) error {
	args := m.Called(key, dest)
	return args.Error(0)
}

func (m *MockCacheManager) Set(key string, value interface{}, ttl time.Duration) error {
	args := m.Called(key, value, ttl)
	return args.Error(0)
}

func (m *MockCacheManager) Delete(key string) error {
	args := m.Called(key)
	return args.Error(0)
}

func (m *MockCacheManager) InvalidateClassificationData() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockCacheManager) GetCacheStats() cache.CacheStats {
	args := m.Called()
	return args.Get(0).(cache.CacheStats)
}

func (m *MockCacheManager) HealthCheck() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockCacheManager) Close() error {
	args := m.Called()
	return args.Error(0)
}

// Test cache-first strategy for GetAllClassifications with cache hit
func TestClassificationService_GetAllClassifications_CacheHit(t *testing.T) {
	mockCache := new(MockCacheManager)
	service := &ClassificationService{
		cache:       mockCache,
		cacheConfig: cache.DefaultCacheConfig(),
	}

	testClassifications := []*models.WasteClassification{
		{
			ID:            primitive.NewObjectID(),
			WasteType:     "Plastic",
			Location:      "Sector 4",
			CameraID:      "CAM-12",
			Confidence:    97.3,
			DetectionTime: time.Now(),
		},
		{
			ID:            primitive.NewObjectID(),
			WasteType:     "Organic",
			Location:      "Market Road",
			CameraID:      "CAM-03",
			Confidence:    88.1,
			DetectionTime: time.Now(),
		},
	}

	// Mock cache hit; the repository is never touched
	mockCache.On("GetClassificationList", "all").Return(testClassifications, nil)

	result, err := service.GetAllClassifications()

	assert.NoError(t, err)
	assert.Equal(t, testClassifications, result)
	mockCache.AssertExpectations(t)
}

// Test cache invalidation after a classification insert
func TestClassificationService_InvalidateCache(t *testing.T) {
	mockCache := new(MockCacheManager)
	service := &ClassificationService{
		cache:       mockCache,
		cacheConfig: cache.DefaultCacheConfig(),
	}

	mockCache.On("InvalidateClassificationData").Return(nil)

	service.invalidateCache()

	mockCache.AssertExpectations(t)
}

// Test that invalidation survives a cache backend error
func TestClassificationService_InvalidateCache_Error(t *testing.T) {
	mockCache := new(MockCacheManager)
	service := &ClassificationService{
		cache:       mockCache,
		cacheConfig: cache.DefaultCacheConfig(),
	}

	mockCache.On("InvalidateClassificationData").Return(assert.AnError)

	service.invalidateCache()

	mockCache.AssertExpectations(t)
}

// Test that the service tolerates a nil cache manager
func TestClassificationService_NilCache(t *testing.T) {
	service := &ClassificationService{
		cache:       nil,
		cacheConfig: cache.DefaultCacheConfig(),
	}

	assert.NotPanics(t, func() {
		service.invalidateCache()
	})
}

// Test cached weighted totals on the dashboard path
func TestDashboardService_GetWeightedTotals_CacheHit(t *testing.T) {
	mockCache := new(MockCacheManager)
	service := &DashboardService{
		cache:       mockCache,
		cacheConfig: cache.DefaultCacheConfig(),
	}

	cachedTotals := &waste.WeightedTotals{
		Plastic: 491.0,
		Organic: 380.2,
		Total:   871.2,
	}

	mockCache.On("GetWeightedTotals", "dashboard").Return(cachedTotals, nil)

	totals, err := service.getWeightedTotals()

	assert.NoError(t, err)
	assert.InDelta(t, 871.2, totals.Total, 0.0001)
	mockCache.AssertExpectations(t)
}
