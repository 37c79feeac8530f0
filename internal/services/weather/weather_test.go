package weather_test

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weather-insights/internal/models"
	"weather-insights/internal/repositories"
	"weather-insights/internal/services/forecast"
	"weather-insights/internal/services/weather"
	"weather-insights/internal/store"
	"weather-insights/pkg/logger"
	"weather-insights/pkg/observe"
)

// MockRepository implements the historical and prediction repositories for testing
type MockRepository struct {
	name        string
	shouldFail  bool
	raw         models.RawObservations
	predictions []models.DailyPrediction
	callCount   int
}

func (m *MockRepository) Name() string {
	return m.name
}

func (m *MockRepository) FetchDaily(ctx context.Context, lat, lon float64, start, end time.Time) (models.RawObservations, error) {
	m.callCount++

	if m.shouldFail {
		return nil, &models.ProviderError{Provider: m.name, Lat: lat, Lon: lon, Err: errors.New("mock repository error")}
	}
	if m.raw != nil {
		return m.raw, nil
	}

	raw := models.RawObservations{
		models.ParamTemperature: {},
		models.ParamRainfall:    {},
		models.ParamWindspeed:   {},
	}
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		key := models.DateKey(d)
		raw[models.ParamTemperature][key] = 10 + float64(d.Year()%10)
		raw[models.ParamRainfall][key] = 1
		raw[models.ParamWindspeed][key] = 3
	}
	return raw, nil
}

func (m *MockRepository) FetchDailyPredictions(ctx context.Context, lat, lon float64) ([]models.DailyPrediction, error) {
	m.callCount++

	if m.shouldFail {
		return nil, &models.ProviderError{Provider: m.name, Lat: lat, Lon: lon, Err: errors.New("mock repository error")}
	}
	return m.predictions, nil
}

type MockGeocoder struct {
	queries []string
}

func (m *MockGeocoder) Search(ctx context.Context, query string) ([]models.GeoLocation, error) {
	m.queries = append(m.queries, query)
	return []models.GeoLocation{{Name: "Lisbon", Latitude: 38.72, Longitude: -9.14}}, nil
}

func testLogger() *logger.Logger {
	return logger.NewZapLogger("test-app", io.Discard)
}

func stormyRaw() models.RawObservations {
	return models.RawObservations{
		models.ParamTemperature: {"20240701": 28, "20240702": 31.5},
		models.ParamRainfall:    {"20240701": 2, "20240702": 24.5},
		models.ParamWindspeed:   {"20240701": 4, "20240702": 6},
	}
}

func newService(repos repositories.Repositories, opts ...forecast.Option) (*weather.WeatherService, *store.MemoryStore, *observe.Metrics) {
	l := testLogger()
	metrics := observe.NewMetricsForTesting()
	st := store.NewMemoryStore()

	var forecaster *forecast.Forecaster
	if repos.Historical != nil {
		opts = append([]forecast.Option{forecast.WithClock(clockwork.NewFakeClockAt(time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)))}, opts...)
		forecaster = forecast.NewForecaster(repos.Historical, l, opts...)
	}

	return weather.NewWeatherService(repos, forecaster, st, l, metrics), st, metrics
}

func TestNewWeatherService(t *testing.T) {
	service, _, _ := newService(repositories.Repositories{})
	assert.NotNil(t, service)
}

func TestWeatherService_Analyze(t *testing.T) {
	repo := &MockRepository{name: "mock", raw: stormyRaw()}
	service, st, metrics := newService(repositories.Repositories{Historical: repo})

	analysis, err := service.Analyze(context.Background(), weather.AnalyzeRequest{
		UserID:   "u1",
		Location: "Lisbon, Portugal",
		Lat:      38.72,
		Lon:      -9.14,
		Start:    time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC),
		End:      time.Date(2024, 7, 2, 0, 0, 0, 0, time.UTC),
		Save:     true,
	})
	require.NoError(t, err)

	assert.Equal(t, "Lisbon, Portugal", analysis.Location)
	assert.Equal(t, "2024-07-01", analysis.StartDate)
	assert.Equal(t, 26.5, analysis.Stats.TotalRainfall)
	assert.Equal(t, models.LevelHigh, analysis.Risk.Level)
	assert.Equal(t, []string{"Heavy rainfall detected (24.5mm)"}, analysis.Risk.Reasons)
	assert.NotEmpty(t, analysis.Recommendations.SafetyTips)
	assert.Nil(t, analysis.Recommendations.OrganizationalAdvice)

	history := st.ListAnalyses("u1")
	require.Len(t, history, 1)
	assert.Equal(t, "Lisbon, Portugal", history[0].LocationName)
	assert.Equal(t, models.LevelHigh, history[0].RiskLevel)

	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.Analyses.WithLabelValues("High")))
}

func TestWeatherService_Analyze_UsesSavedPreferences(t *testing.T) {
	repo := &MockRepository{name: "mock", raw: stormyRaw()}
	service, _, _ := newService(repositories.Repositories{Historical: repo})

	_, err := service.SavePreferences("org", models.Preferences{UserType: models.UserOrganization})
	require.NoError(t, err)

	analysis, err := service.Analyze(context.Background(), weather.AnalyzeRequest{
		UserID: "org",
		Lat:    1,
		Lon:    2,
		Start:  time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC),
		End:    time.Date(2024, 7, 2, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	assert.Equal(t, "1.0000, 2.0000", analysis.Location)
	assert.NotEmpty(t, analysis.Recommendations.OrganizationalAdvice)
	assert.Empty(t, service.History("org"), "analysis is not saved unless requested")
}

func TestWeatherService_Analyze_Errors(t *testing.T) {
	start := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 7, 7, 0, 0, 0, 0, time.UTC)

	t.Run("invalid range is rejected before fetching", func(t *testing.T) {
		repo := &MockRepository{name: "mock"}
		service, _, _ := newService(repositories.Repositories{Historical: repo})

		_, err := service.Analyze(context.Background(), weather.AnalyzeRequest{Lat: 95, Lon: 0, Start: start, End: end})
		assert.ErrorIs(t, err, models.ErrInvalidRange)

		_, err = service.Analyze(context.Background(), weather.AnalyzeRequest{Lat: 0, Lon: 0, Start: end, End: start})
		assert.ErrorIs(t, err, models.ErrInvalidRange)

		assert.Zero(t, repo.callCount)
	})

	t.Run("provider failure", func(t *testing.T) {
		service, _, _ := newService(repositories.Repositories{Historical: &MockRepository{name: "mock", shouldFail: true}})

		_, err := service.Analyze(context.Background(), weather.AnalyzeRequest{Start: start, End: end})
		assert.ErrorIs(t, err, models.ErrProviderUnavailable)
	})

	t.Run("empty series", func(t *testing.T) {
		service, _, _ := newService(repositories.Repositories{Historical: &MockRepository{name: "mock", raw: models.RawObservations{}}})

		_, err := service.Analyze(context.Background(), weather.AnalyzeRequest{Start: start, End: end})
		assert.ErrorIs(t, err, models.ErrEmptySeries)
	})

	t.Run("no provider configured", func(t *testing.T) {
		service, _, _ := newService(repositories.Repositories{})

		_, err := service.Analyze(context.Background(), weather.AnalyzeRequest{Start: start, End: end})
		assert.ErrorIs(t, err, models.ErrProviderUnavailable)
	})
}

func TestWeatherService_Forecast(t *testing.T) {
	repo := &MockRepository{name: "mock"}
	service, _, _ := newService(repositories.Repositories{Historical: repo}, forecast.WithYearsBack(3), forecast.WithConcurrency(1))

	result, err := service.Forecast(context.Background(), models.ForecastRequest{
		Lat:       38.72,
		Lon:       -9.14,
		StartDate: time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	assert.Len(t, result.ForecastData, forecast.DefaultMonthsAhead)
	assert.Equal(t, 3, result.YearsUsed)
	assert.Equal(t, "2025-03-15", result.ForecastStartDate)
	assert.Equal(t, 3, repo.callCount)

	_, err = service.Forecast(context.Background(), models.ForecastRequest{Lat: 38.72, Lon: -9.14})
	assert.ErrorIs(t, err, models.ErrInvalidRange)
}

func TestWeatherService_Forecast_InsufficientHistory(t *testing.T) {
	service, _, _ := newService(repositories.Repositories{Historical: &MockRepository{name: "mock", shouldFail: true}}, forecast.WithYearsBack(2), forecast.WithConcurrency(1))

	_, err := service.Forecast(context.Background(), models.ForecastRequest{
		Lat:         1,
		Lon:         1,
		StartDate:   time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC),
		MonthsAhead: 2,
	})
	assert.ErrorIs(t, err, models.ErrInsufficientHistory)
}

func TestWeatherService_DailyPredictions(t *testing.T) {
	predictions := []models.DailyPrediction{{DateString: "2025-03-01", RiskLevel: models.DayRiskHigh}}
	service, _, _ := newService(repositories.Repositories{Predictions: &MockRepository{name: "mock", predictions: predictions}})

	got, err := service.DailyPredictions(context.Background(), 10, 10)
	require.NoError(t, err)
	assert.Equal(t, predictions, got)

	_, err = service.DailyPredictions(context.Background(), 10, 200)
	assert.ErrorIs(t, err, models.ErrInvalidRange)

	empty, _, _ := newService(repositories.Repositories{})
	_, err = empty.DailyPredictions(context.Background(), 10, 10)
	assert.ErrorIs(t, err, models.ErrProviderUnavailable)
}

func TestWeatherService_ModelForecast_Validation(t *testing.T) {
	service, _, _ := newService(repositories.Repositories{})

	_, err := service.ModelForecast(context.Background(), models.ModelForecastRequest{StartDate: "20240101", EndDate: "20230101"})
	assert.ErrorIs(t, err, models.ErrInvalidRange)

	_, err = service.ModelForecast(context.Background(), models.ModelForecastRequest{StartDate: "2024-01-01", EndDate: "20240101"})
	assert.ErrorIs(t, err, models.ErrInvalidRange)

	_, err = service.ModelForecast(context.Background(), models.ModelForecastRequest{StartDate: "20230101", EndDate: "20240101"})
	assert.ErrorIs(t, err, models.ErrProviderUnavailable)

	assert.False(t, service.ModelForecastHealthy(context.Background()))
}

func TestWeatherService_SearchLocations(t *testing.T) {
	geocoder := &MockGeocoder{}
	service, _, _ := newService(repositories.Repositories{Geocoding: geocoder})

	locations, err := service.SearchLocations(context.Background(), "40.7128, -74.0060")
	require.NoError(t, err)
	require.Len(t, locations, 1)
	assert.Equal(t, "40.7128, -74.0060", locations[0].Name)
	assert.Empty(t, geocoder.queries, "coordinates never reach the geocoder")

	locations, err = service.SearchLocations(context.Background(), "Lisbon")
	require.NoError(t, err)
	assert.Equal(t, "Lisbon", locations[0].Name)
	assert.Equal(t, []string{"Lisbon"}, geocoder.queries)
}

func TestWeatherService_FavoritesAndPreferences(t *testing.T) {
	service, _, _ := newService(repositories.Repositories{})

	_, err := service.AddFavorite("u1", models.Favorite{LocationName: "Nowhere", Latitude: 100})
	assert.ErrorIs(t, err, models.ErrInvalidRange)

	fav, err := service.AddFavorite("u1", models.Favorite{LocationName: "Lisbon", Latitude: 38.72, Longitude: -9.14})
	require.NoError(t, err)
	assert.Len(t, service.ListFavorites("u1"), 1)
	require.NoError(t, service.RemoveFavorite("u1", fav.ID))
	assert.ErrorIs(t, service.RemoveFavorite("u1", fav.ID), store.ErrNotFound)

	assert.Equal(t, weather.DefaultPreferences(), service.GetPreferences("u1"))

	saved, err := service.SavePreferences("u1", models.Preferences{Activities: []string{"hiking"}})
	require.NoError(t, err)
	assert.Equal(t, models.UserIndividual, saved.UserType)
	assert.Equal(t, models.Celsius, saved.TemperatureUnit)
	assert.Equal(t, saved, service.GetPreferences("u1"))
}
