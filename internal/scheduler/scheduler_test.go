package scheduler

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weather-insights/config"
	"weather-insights/internal/models"
	"weather-insights/internal/store"
	"weather-insights/pkg/logger"
	"weather-insights/pkg/observe"
)

type fakePredictions struct {
	mu    sync.Mutex
	calls map[float64]int
	fail  map[float64]bool
}

func (f *fakePredictions) Name() string { return "fake" }

func (f *fakePredictions) FetchDailyPredictions(ctx context.Context, lat, lon float64) ([]models.DailyPrediction, error) {
	f.mu.Lock()
	f.calls[lat]++
	f.mu.Unlock()

	if f.fail[lat] {
		return nil, errors.New("provider down")
	}

	return []models.DailyPrediction{
		{DateString: "2025-02-28", RiskLevel: models.DayRiskHigh},
		{DateString: "2025-03-01", RiskLevel: models.DayRiskHigh},
		{DateString: "2025-03-02", RiskLevel: models.DayRiskLow},
		{DateString: "2025-03-03", RiskLevel: models.DayRiskModerate},
		{DateString: "2025-03-04", RiskLevel: models.DayRiskHigh},
		{DateString: "2025-03-10", RiskLevel: models.DayRiskHigh},
	}, nil
}

func TestScheduler_RunOnce(t *testing.T) {
	st := store.NewMemoryStore()
	_, err := st.AddFavorite("u1", models.Favorite{LocationName: "Lisbon", Latitude: 38.72, Longitude: -9.14})
	require.NoError(t, err)
	_, err = st.AddFavorite("u2", models.Favorite{LocationName: "Lisboa", Latitude: 38.72, Longitude: -9.14})
	require.NoError(t, err)
	_, err = st.AddFavorite("u2", models.Favorite{LocationName: "Oslo", Latitude: 59.91, Longitude: 10.75})
	require.NoError(t, err)

	provider := &fakePredictions{calls: map[float64]int{}, fail: map[float64]bool{59.91: true}}
	metrics := observe.NewMetricsForTesting()
	clock := clockwork.NewFakeClockAt(time.Date(2025, 3, 1, 7, 0, 0, 0, time.UTC))

	s, err := New(config.SchedulerConfig{DigestAt: "07:00", Timezone: "UTC"}, st, provider,
		logger.NewZapLogger("test-app", io.Discard),
		WithClock(clock), WithMetrics(metrics), WithLookahead(5))
	require.NoError(t, err)

	digests := s.RunOnce(context.Background())
	require.Len(t, digests, 2)

	assert.Equal(t, "u1", digests[0].UserID)
	assert.Equal(t, "Lisbon", digests[0].Location)
	require.Len(t, digests[0].HighRiskDays, 2)
	assert.Equal(t, "2025-03-01", digests[0].HighRiskDays[0].DateString)
	assert.Equal(t, "2025-03-04", digests[0].HighRiskDays[1].DateString)
	assert.Equal(t, "u2", digests[1].UserID)

	assert.Equal(t, 1, provider.calls[38.72], "shared location fetched once")
	assert.Equal(t, 1, provider.calls[59.91])
	assert.Equal(t, 4.0, testutil.ToFloat64(metrics.DigestAlerts))
	assert.Equal(t, digests, s.LastDigest())
}

func TestScheduler_StartStop(t *testing.T) {
	st := store.NewMemoryStore()
	provider := &fakePredictions{calls: map[float64]int{}}

	s, err := New(config.SchedulerConfig{DigestAt: "06:30"}, st, provider, logger.NewZapLogger("test-app", io.Discard))
	require.NoError(t, err)

	require.NoError(t, s.Start())
	s.Stop()

	_, err = New(config.SchedulerConfig{Timezone: "Mars/Olympus"}, st, provider, logger.NewZapLogger("test-app", io.Discard))
	assert.Error(t, err)
}

func TestScheduler_StartWithoutProvider(t *testing.T) {
	s, err := New(config.SchedulerConfig{}, store.NewMemoryStore(), nil, logger.NewZapLogger("test-app", io.Discard))
	require.NoError(t, err)

	assert.NoError(t, s.Start())
	s.Stop()
}

func TestScheduler_RunOnceManyLocations(t *testing.T) {
	st := store.NewMemoryStore()
	for i := range 200 {
		_, err := st.AddFavorite("u1", models.Favorite{
			LocationName: "spot",
			Latitude:     float64(i) * 0.1,
			Longitude:    10,
		})
		require.NoError(t, err)
	}

	provider := &fakePredictions{calls: map[float64]int{}, fail: map[float64]bool{}}
	clock := clockwork.NewFakeClockAt(time.Date(2025, 3, 1, 7, 0, 0, 0, time.UTC))

	s, err := New(config.SchedulerConfig{}, st, provider,
		logger.NewZapLogger("test-app", io.Discard), WithClock(clock), WithLookahead(5))
	require.NoError(t, err)

	var wg sync.WaitGroup
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			digests := s.RunOnce(context.Background())
			assert.Len(t, digests, 200)
		}()
	}
	wg.Wait()

	provider.mu.Lock()
	defer provider.mu.Unlock()
	assert.Len(t, provider.calls, 200)
	assert.Equal(t, 20, provider.calls[0])
}
