package forecast_test

import (
	"context"
	"errors"
	"io"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weather-insights/internal/models"
	"weather-insights/internal/services/forecast"
	"weather-insights/pkg/logger"
	"weather-insights/pkg/observe"
)

// fakeSource serves a synthetic window per year. Temperature is year-2000,
// so the year a sample came from is visible in the output.
type fakeSource struct {
	mu     sync.Mutex
	fail   map[int]bool
	empty  map[int]bool
	delay  map[int]time.Duration
	values func(year int, day time.Time) (temp, rain, wind float64)
	calls  []int
}

func (f *fakeSource) FetchDaily(ctx context.Context, _, _ float64, start, end time.Time) (models.RawObservations, error) {
	year := start.AddDate(0, 0, 3).Year()

	f.mu.Lock()
	f.calls = append(f.calls, year)
	f.mu.Unlock()

	if d := f.delay[year]; d > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(d):
		}
	}
	if f.fail[year] {
		return nil, &models.ProviderError{Provider: "fake", Err: errors.New("boom")}
	}

	raw := models.RawObservations{
		models.ParamTemperature: {},
		models.ParamRainfall:    {},
		models.ParamWindspeed:   {},
	}
	if f.empty[year] {
		return raw, nil
	}
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		temp, rain, wind := float64(year-2000), 1.0, 2.0
		if f.values != nil {
			temp, rain, wind = f.values(year, d)
		}
		key := models.DateKey(d)
		raw[models.ParamTemperature][key] = temp
		raw[models.ParamRainfall][key] = rain
		raw[models.ParamWindspeed][key] = wind
	}
	return raw, nil
}

func newForecaster(src forecast.HistoricalSource, opts ...forecast.Option) *forecast.Forecaster {
	clock := clockwork.NewFakeClockAt(time.Date(2025, 3, 15, 9, 0, 0, 0, time.UTC))
	opts = append([]forecast.Option{forecast.WithClock(clock)}, opts...)
	return forecast.NewForecaster(src, logger.NewZapLogger("test-app", io.Discard), opts...)
}

func weighted(values ...float64) float64 {
	n := float64(len(values))
	var sum, total float64
	for k, v := range values {
		w := math.Exp(float64(k) / n)
		sum += v * w
		total += w
	}
	return sum / total
}

func TestWeightedAverage(t *testing.T) {
	assert.Equal(t, 0.0, forecast.WeightedAverage(nil))
	assert.Equal(t, 7.5, forecast.WeightedAverage([]forecast.RankedValue{{Value: 7.5, Rank: 0}}))

	ordered := []forecast.RankedValue{{Value: 10, Rank: 0}, {Value: 20, Rank: 1}}
	shuffled := []forecast.RankedValue{{Value: 20, Rank: 1}, {Value: 10, Rank: 0}}

	assert.InDelta(t, weighted(10, 20), forecast.WeightedAverage(ordered), 1e-9)
	assert.InDelta(t, forecast.WeightedAverage(ordered), forecast.WeightedAverage(shuffled), 1e-9)
	// the newest year pulls the mean above the plain average
	assert.Greater(t, forecast.WeightedAverage(ordered), 15.0)
}

func TestStdDev(t *testing.T) {
	assert.Equal(t, 0.0, forecast.StdDev(nil, 0))
	assert.Equal(t, 0.0, forecast.StdDev([]forecast.RankedValue{{Value: 3}}, 3))
	assert.InDelta(t, math.Sqrt(50), forecast.StdDev([]forecast.RankedValue{{Value: 10}, {Value: 20, Rank: 1}}, 15), 1e-9)

	lo, hi := forecast.ConfidenceInterval(10, 2)
	assert.InDelta(t, 6.08, lo, 1e-9)
	assert.InDelta(t, 13.92, hi, 1e-9)
}

func TestFetchHistoricalPattern_OldestFirst(t *testing.T) {
	src := &fakeSource{
		// newest years finish first
		delay: map[int]time.Duration{2020: 30 * time.Millisecond, 2021: 20 * time.Millisecond, 2022: 10 * time.Millisecond},
		fail:  map[int]bool{2023: true},
	}
	f := newForecaster(src, forecast.WithConcurrency(5))

	pattern, err := f.FetchHistoricalPattern(context.Background(), 38.7, -9.1, time.March, 15, 5)
	require.NoError(t, err)

	years := make([]int, 0, len(pattern.Years))
	for _, y := range pattern.Years {
		years = append(years, y.Year)
		assert.Len(t, y.Data, 7)
		assert.Equal(t, models.DateKey(time.Date(y.Year, 3, 12, 0, 0, 0, 0, time.UTC)), y.Data[0].Date)
	}
	assert.Equal(t, []int{2020, 2021, 2022, 2024}, years)

	require.Len(t, pattern.Skipped, 1)
	assert.Equal(t, 2023, pattern.Skipped[0].Year)
	assert.Contains(t, pattern.Skipped[0].Reason, "boom")
	assert.ElementsMatch(t, []int{2020, 2021, 2022, 2023, 2024}, src.calls)
}

func TestFetchHistoricalPattern_EmptyYearSkipped(t *testing.T) {
	f := newForecaster(&fakeSource{empty: map[int]bool{2024: true}})

	pattern, err := f.FetchHistoricalPattern(context.Background(), 0, 0, time.June, 1, 2)
	require.NoError(t, err)

	require.Len(t, pattern.Years, 1)
	assert.Equal(t, 2023, pattern.Years[0].Year)
	assert.Equal(t, []models.SkippedYear{{Year: 2024, Reason: "no observations in window"}}, pattern.Skipped)
}

func TestFetchHistoricalPattern_InvalidInput(t *testing.T) {
	f := newForecaster(&fakeSource{})
	ctx := context.Background()

	_, err := f.FetchHistoricalPattern(ctx, 95, 0, time.June, 1, 2)
	assert.ErrorIs(t, err, models.ErrInvalidRange)

	_, err = f.FetchHistoricalPattern(ctx, 0, 0, time.Month(13), 1, 2)
	assert.ErrorIs(t, err, models.ErrInvalidRange)

	_, err = f.FetchHistoricalPattern(ctx, 0, 0, time.June, 1, 0)
	assert.ErrorIs(t, err, models.ErrInvalidRange)
}

func TestFetchHistoricalPattern_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	f := newForecaster(&fakeSource{delay: map[int]time.Duration{2024: time.Second}})
	_, err := f.FetchHistoricalPattern(ctx, 0, 0, time.June, 1, 2)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestGenerateForecast(t *testing.T) {
	metrics := observe.NewMetricsForTesting()
	f := newForecaster(&fakeSource{}, forecast.WithYearsBack(3), forecast.WithMetrics(metrics))

	start := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	result, err := f.GenerateForecast(context.Background(), 38.7, -9.1, start, 3)
	require.NoError(t, err)

	assert.Equal(t, 3, result.YearsRequested)
	assert.Equal(t, 3, result.YearsUsed)
	assert.False(t, result.Degraded())
	assert.Empty(t, result.SkippedYears)
	assert.Len(t, result.HistoricalData, 21)

	require.Len(t, result.ForecastData, 3)
	assert.Equal(t, "2025-03-15", result.ForecastData[0].Date)
	assert.Equal(t, "2025-04-15", result.ForecastData[1].Date)
	assert.Equal(t, "2025-05-15", result.ForecastData[2].Date)
	assert.Equal(t, "2025-03-15", result.ForecastStartDate)
	assert.Equal(t, "2025-05-15", result.ForecastEndDate)

	// 2022, 2023, 2024 sampled at ranks 0, 1, 2
	mean := weighted(22, 23, 24)
	d0, d1, d2 := 22-mean, 23-mean, 24-mean
	sd := math.Sqrt((d0*d0 + d1*d1 + d2*d2) / 2)

	p := result.ForecastData[0]
	assert.Equal(t, math.Round(mean*10)/10, p.Temperature)
	assert.Equal(t, math.Round((mean-1.96*sd)*10)/10, p.TemperatureConfidence.Lower())
	assert.Equal(t, math.Round((mean+1.96*sd)*10)/10, p.TemperatureConfidence.Upper())
	assert.Equal(t, 1.0, p.Rainfall)
	assert.Equal(t, models.Interval{1, 1}, p.RainfallConfidence)
	assert.Equal(t, 2.0, p.Windspeed)
	assert.Equal(t, models.Interval{2, 2}, p.WindspeedConfidence)

	assert.Equal(t, p.Temperature, result.AvgTemperature)
	assert.Equal(t, 1.0, result.AvgRainfall)
	assert.Equal(t, 2.0, result.AvgWindspeed)

	assert.Equal(t, 1, testutil.CollectAndCount(metrics.ForecastYearsUsed))
}

func TestGenerateForecast_PartialHistory(t *testing.T) {
	f := newForecaster(&fakeSource{fail: map[int]bool{2023: true}}, forecast.WithYearsBack(3))

	result, err := f.GenerateForecast(context.Background(), 0, 0, time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC), 1)
	require.NoError(t, err)

	assert.Equal(t, 2, result.YearsUsed)
	assert.True(t, result.Degraded())
	require.Len(t, result.SkippedYears, 1)
	assert.Equal(t, 2023, result.SkippedYears[0].Year)
	// remaining years are re-ranked 0 and 1
	assert.Equal(t, math.Round(weighted(22, 24)*10)/10, result.ForecastData[0].Temperature)
}

func TestGenerateForecast_SingleYearUnchanged(t *testing.T) {
	src := &fakeSource{values: func(int, time.Time) (float64, float64, float64) { return 17.3, 4.56, 3.2 }}
	f := newForecaster(src, forecast.WithYearsBack(1))

	result, err := f.GenerateForecast(context.Background(), 0, 0, time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC), 2)
	require.NoError(t, err)

	for _, p := range result.ForecastData {
		assert.Equal(t, 17.3, p.Temperature)
		assert.Equal(t, 4.56, p.Rainfall)
		assert.Equal(t, 3.2, p.Windspeed)
		assert.Equal(t, models.Interval{17.3, 17.3}, p.TemperatureConfidence)
	}
}

func TestGenerateForecast_InsufficientHistory(t *testing.T) {
	src := &fakeSource{fail: map[int]bool{2022: true, 2023: true, 2024: true}}
	f := newForecaster(src, forecast.WithYearsBack(3))

	result, err := f.GenerateForecast(context.Background(), 38.7, -9.1, time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC), 12)
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrInsufficientHistory)
	assert.Contains(t, err.Error(), "lat: 38.7000")
	assert.Empty(t, result.ForecastData)
}

func TestGenerateForecast_InvalidMonths(t *testing.T) {
	f := newForecaster(&fakeSource{})

	_, err := f.GenerateForecast(context.Background(), 0, 0, time.Now(), 0)
	assert.ErrorIs(t, err, models.ErrInvalidRange)
}

func TestGenerateForecast_MonthOverflow(t *testing.T) {
	f := newForecaster(&fakeSource{}, forecast.WithYearsBack(2))

	result, err := f.GenerateForecast(context.Background(), 0, 0, time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC), 3)
	require.NoError(t, err)

	assert.Equal(t, "2025-01-31", result.ForecastData[0].Date)
	assert.Equal(t, "2025-03-03", result.ForecastData[1].Date)
	assert.Equal(t, "2025-03-31", result.ForecastData[2].Date)
}

func TestGenerateForecast_ConfidenceBounds(t *testing.T) {
	src := &fakeSource{values: func(year int, day time.Time) (float64, float64, float64) {
		spread := float64((year*7+day.Day()*13)%11) - 5
		return 10 + spread*2, math.Max(0, 0.5+spread), math.Max(0, 1+spread/2)
	}}
	f := newForecaster(src, forecast.WithYearsBack(8))

	result, err := f.GenerateForecast(context.Background(), 0, 0, time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC), 12)
	require.NoError(t, err)

	for _, p := range result.ForecastData {
		assert.LessOrEqual(t, p.TemperatureConfidence.Lower(), p.Temperature)
		assert.LessOrEqual(t, p.Temperature, p.TemperatureConfidence.Upper())
		assert.GreaterOrEqual(t, p.Rainfall, 0.0)
		assert.GreaterOrEqual(t, p.RainfallConfidence.Lower(), 0.0)
		assert.GreaterOrEqual(t, p.Windspeed, 0.0)
		assert.GreaterOrEqual(t, p.WindspeedConfidence.Lower(), 0.0)
	}
}
