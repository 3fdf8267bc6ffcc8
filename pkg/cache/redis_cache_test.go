package cache

import (
	"testing"
	"time"

	"waste-backend/internal/models"
	"waste-backend/internal/waste"

	"github.com/alicebob/miniredis/v2"
	redisClient "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// staticClientProvider wraps a plain Redis client for tests
type staticClientProvider struct {
	rdb *redisClient.Client
}

func (p *staticClientProvider) GetClient() *redisClient.Client { return p.rdb }
func (p *staticClientProvider) Close() error                   { return p.rdb.Close() }

func newTestManager(t *testing.T) (*RedisCacheManager, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	rdb := redisClient.NewClient(&redisClient.Options{Addr: mr.Addr()})
	config := DefaultCacheConfig()
	config.KeyPrefix = "test:"

	return NewRedisCacheManager(&staticClientProvider{rdb: rdb}, config), mr
}

func TestRedisCacheManager_ClassificationListOperations(t *testing.T) {
	manager, _ := newTestManager(t)

	classifications := []*models.WasteClassification{
		{
			ID:            primitive.NewObjectID(),
			WasteType:     "Plastic",
			Location:      "Sector 4",
			CameraID:      "CAM-12",
			Confidence:    97.3,
			DetectionTime: time.Now().UTC().Truncate(time.Millisecond),
		},
		{
			ID:            primitive.NewObjectID(),
			WasteType:     "Organic",
			Location:      "Market Road",
			CameraID:      "CAM-03",
			Confidence:    88.1,
			DetectionTime: time.Now().UTC().Truncate(time.Millisecond),
		},
	}

	t.Run("SetClassificationList", func(t *testing.T) {
		err := manager.SetClassificationList("all", classifications, 30*time.Second)
		assert.NoError(t, err)
	})

	t.Run("GetClassificationList", func(t *testing.T) {
		retrieved, err := manager.GetClassificationList("all")
		assert.NoError(t, err)
		require.Len(t, retrieved, 2)
		assert.Equal(t, "Plastic", retrieved[0].WasteType)
		assert.Equal(t, "CAM-03", retrieved[1].CameraID)
	})

	t.Run("GetClassificationList_Miss", func(t *testing.T) {
		retrieved, err := manager.GetClassificationList("nonexistent")
		assert.NoError(t, err)
		assert.Nil(t, retrieved)
	})
}

func TestRedisCacheManager_WeightedTotalsOperations(t *testing.T) {
	manager, _ := newTestManager(t)

	totals := &waste.WeightedTotals{
		Plastic: 491.0,
		Organic: 380.2,
		Total:   871.2,
	}

	err := manager.SetWeightedTotals("dashboard", totals, 60*time.Second)
	require.NoError(t, err)

	retrieved, err := manager.GetWeightedTotals("dashboard")
	require.NoError(t, err)
	require.NotNil(t, retrieved)
	assert.InDelta(t, 871.2, retrieved.Total, 0.0001)

	missed, err := manager.GetWeightedTotals("unknown")
	assert.NoError(t, err)
	assert.Nil(t, missed)
}

func TestRedisCacheManager_TTLExpiration(t *testing.T) {
	manager, mr := newTestManager(t)

	totals := &waste.WeightedTotals{Total: 67.4, Biomedical: 67.4}
	require.NoError(t, manager.SetWeightedTotals("dashboard", totals, 100*time.Millisecond))

	retrieved, err := manager.GetWeightedTotals("dashboard")
	require.NoError(t, err)
	require.NotNil(t, retrieved)

	// miniredis advances TTLs manually
	mr.FastForward(200 * time.Millisecond)

	expired, err := manager.GetWeightedTotals("dashboard")
	assert.NoError(t, err)
	assert.Nil(t, expired)
}

func TestRedisCacheManager_InvalidateClassificationData(t *testing.T) {
	manager, _ := newTestManager(t)

	classifications := []*models.WasteClassification{
		{ID: primitive.NewObjectID(), WasteType: "Paper"},
	}
	require.NoError(t, manager.SetClassificationList("all", classifications, time.Minute))
	require.NoError(t, manager.SetWeightedTotals("dashboard", &waste.WeightedTotals{Paper: 156.8, Total: 156.8}, time.Minute))

	require.NoError(t, manager.InvalidateClassificationData())

	list, err := manager.GetClassificationList("all")
	assert.NoError(t, err)
	assert.Nil(t, list)

	totals, err := manager.GetWeightedTotals("dashboard")
	assert.NoError(t, err)
	assert.Nil(t, totals)
}

func TestRedisCacheManager_GenericGetSet(t *testing.T) {
	manager, _ := newTestManager(t)

	split := waste.RecyclableSplit{Recyclable: 4, NonRecyclable: 2}
	require.NoError(t, manager.Set("analytics:split", split, time.Minute))

	var retrieved waste.RecyclableSplit
	require.NoError(t, manager.Get("analytics:split", &retrieved))
	assert.Equal(t, split, retrieved)

	var missing waste.RecyclableSplit
	err := manager.Get("analytics:nope", &missing)
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestRedisCacheManager_Stats(t *testing.T) {
	manager, _ := newTestManager(t)

	require.NoError(t, manager.SetWeightedTotals("dashboard", &waste.WeightedTotals{}, time.Minute))

	_, err := manager.GetWeightedTotals("dashboard")
	require.NoError(t, err)
	_, err = manager.GetWeightedTotals("missing")
	require.NoError(t, err)

	stats := manager.GetCacheStats()
	assert.Equal(t, int64(1), stats.TotalHits)
	assert.Equal(t, int64(1), stats.TotalMisses)
	assert.InDelta(t, 50.0, stats.HitRate, 0.0001)
}
