package repositories

import (
	"context"
	"net/http"
	"time"

	"weather-insights/config"
	"weather-insights/internal/models"
	"weather-insights/pkg/logger"
	"weather-insights/pkg/observe"
)

// HistoricalRepository serves daily observations for a past window.
type HistoricalRepository interface {
	Name() string
	FetchDaily(ctx context.Context, lat, lon float64, start, end time.Time) (models.RawObservations, error)
}

// PredictionRepository serves the short-range daily forecast.
type PredictionRepository interface {
	Name() string
	FetchDailyPredictions(ctx context.Context, lat, lon float64) ([]models.DailyPrediction, error)
}

type GeocodingRepository interface {
	Search(ctx context.Context, query string) ([]models.GeoLocation, error)
}

type ModelForecastRepository interface {
	Forecast(ctx context.Context, request models.ModelForecastRequest) (models.ModelForecastResponse, error)
	Health(ctx context.Context) bool
}

// Repositories holds the configured providers. Unconfigured providers are nil.
type Repositories struct {
	Historical    HistoricalRepository
	Predictions   PredictionRepository
	Geocoding     GeocodingRepository
	ModelForecast ModelForecastRepository
}

func InitWeatherRepositories(cfg *config.Config, l *logger.Logger, metrics *observe.Metrics) Repositories {
	var repos Repositories

	for _, api := range cfg.GetWeatherAPIs() {
		client := newProviderClient(api, metrics)

		switch api.Name {
		case config.ProviderNASAPower:
			repos.Historical = NewCachedHistoricalRepository(
				NewNASAPowerRepository(api.BaseURL, l, client),
				cfg.Cache.Size, cfg.Cache.TTL, metrics,
			)
		case config.ProviderOpenWeather:
			repo, err := NewOpenWeatherRepository(api.BaseURL, api.APIKey, l, client)
			if err != nil {
				l.Warning("openweather disabled", map[string]any{
					"error": err.Error(),
				})
				continue
			}
			repos.Predictions = NewCachedPredictionRepository(repo, cfg.Cache.Size, cfg.Cache.TTL, metrics)
		case config.ProviderForecastService:
			repos.ModelForecast = NewForecastServiceRepository(api.BaseURL, l, client)
		case config.ProviderNominatim:
			repos.Geocoding = NewNominatimRepository(api.BaseURL, l, client)
		default:
			l.Warning("unknown weather provider ignored", map[string]any{
				"provider": api.Name,
			})
		}
	}

	return repos
}

func newProviderClient(api config.WeatherAPIConfig, metrics *observe.Metrics) HTTPClient {
	httpClient := &http.Client{Timeout: api.TimeoutOrDefault(30 * time.Second)}

	return NewResilientClient(httpClient, ResilienceConfig{
		Name:  api.Name,
		RPS:   api.RPS,
		Burst: api.Burst,
		Backoff: BackoffConfig{
			MaxRetries:      api.MaxRetries,
			InitialInterval: 500 * time.Millisecond,
			MaxInterval:     5 * time.Second,
		},
	}, metrics)
}
