package repositories

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"weather-insights/internal/models"
	"weather-insights/pkg/observe"
)

const (
	DefaultCacheSize = 256
	DefaultCacheTTL  = 30 * time.Minute
)

// CachedHistoricalRepository memoizes FetchDaily per location and window.
// Cached observations are shared between callers and must not be mutated.
type CachedHistoricalRepository struct {
	HistoricalRepository
	cache   *expirable.LRU[string, models.RawObservations]
	metrics *observe.Metrics
}

func NewCachedHistoricalRepository(repo HistoricalRepository, size int, ttl time.Duration, metrics *observe.Metrics) *CachedHistoricalRepository {
	size, ttl = cacheBounds(size, ttl)

	return &CachedHistoricalRepository{
		HistoricalRepository: repo,
		cache:                expirable.NewLRU[string, models.RawObservations](size, nil, ttl),
		metrics:              metrics,
	}
}

func (c *CachedHistoricalRepository) FetchDaily(ctx context.Context, lat, lon float64, start, end time.Time) (models.RawObservations, error) {
	key := fmt.Sprintf("%.4f:%.4f:%s:%s", lat, lon, models.DateKey(start), models.DateKey(end))

	if raw, ok := c.cache.Get(key); ok {
		lookup(c.metrics, c.Name(), true)
		return raw, nil
	}
	lookup(c.metrics, c.Name(), false)

	raw, err := c.HistoricalRepository.FetchDaily(ctx, lat, lon, start, end)
	if err != nil {
		return nil, err
	}
	c.cache.Add(key, raw)

	return raw, nil
}

// CachedPredictionRepository memoizes daily predictions per location.
type CachedPredictionRepository struct {
	PredictionRepository
	cache   *expirable.LRU[string, []models.DailyPrediction]
	metrics *observe.Metrics
}

func NewCachedPredictionRepository(repo PredictionRepository, size int, ttl time.Duration, metrics *observe.Metrics) *CachedPredictionRepository {
	size, ttl = cacheBounds(size, ttl)

	return &CachedPredictionRepository{
		PredictionRepository: repo,
		cache:                expirable.NewLRU[string, []models.DailyPrediction](size, nil, ttl),
		metrics:              metrics,
	}
}

func (c *CachedPredictionRepository) FetchDailyPredictions(ctx context.Context, lat, lon float64) ([]models.DailyPrediction, error) {
	key := fmt.Sprintf("%.4f:%.4f", lat, lon)

	if predictions, ok := c.cache.Get(key); ok {
		lookup(c.metrics, c.Name(), true)
		return slices.Clone(predictions), nil
	}
	lookup(c.metrics, c.Name(), false)

	predictions, err := c.PredictionRepository.FetchDailyPredictions(ctx, lat, lon)
	if err != nil {
		return nil, err
	}
	c.cache.Add(key, slices.Clone(predictions))

	return predictions, nil
}

func cacheBounds(size int, ttl time.Duration) (int, time.Duration) {
	if size <= 0 {
		size = DefaultCacheSize
	}
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return size, ttl
}

func lookup(metrics *observe.Metrics, cache string, hit bool) {
	if metrics == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	metrics.CacheLookups.WithLabelValues(cache, result).Inc()
}
