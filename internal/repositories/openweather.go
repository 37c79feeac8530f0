package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"weather-insights/internal/models"
	"weather-insights/pkg/logger"
)

const (
	OpenWeatherBaseURL = "https://api.openweathermap.org/data/3.0/onecall"
)

// ErrInvalidAPIKey is returned when OpenWeather rejects the configured key.
var ErrInvalidAPIKey = errors.New("invalid OpenWeather API key")

type OpenWeatherRepository struct {
	baseURL    string
	apiKey     string
	httpClient HTTPClient
	l          *logger.Logger
}

func NewOpenWeatherRepository(baseURL, apiKey string, l *logger.Logger, httpClient HTTPClient) (*OpenWeatherRepository, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("API key cannot be empty")
	}
	if baseURL == "" {
		baseURL = OpenWeatherBaseURL
	}

	return &OpenWeatherRepository{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: httpClient,
		l:          l,
	}, nil
}

func (o *OpenWeatherRepository) Name() string {
	return "openweather"
}

type OpenWeatherResponse struct {
	Lat      float64            `json:"lat"`
	Lon      float64            `json:"lon"`
	Timezone string             `json:"timezone"`
	Daily    []OpenWeatherDaily `json:"daily"`
}

type OpenWeatherDaily struct {
	Dt   int64 `json:"dt"`
	Temp struct {
		Day float64 `json:"day"`
		Min float64 `json:"min"`
		Max float64 `json:"max"`
	} `json:"temp"`
	Pressure  int     `json:"pressure"`
	Humidity  int     `json:"humidity"`
	WindSpeed float64 `json:"wind_speed"`
	Weather   []struct {
		Main        string `json:"main"`
		Description string `json:"description"`
		Icon        string `json:"icon"`
	} `json:"weather"`
	Pop  float64 `json:"pop"`
	Rain float64 `json:"rain"`
}

// FetchDailyPredictions returns the provider's daily forecast with a per-day risk level.
func (o *OpenWeatherRepository) FetchDailyPredictions(ctx context.Context, lat, lon float64) ([]models.DailyPrediction, error) {
	fail := func(err error) error {
		return &models.ProviderError{Provider: o.Name(), Lat: lat, Lon: lon, Err: err}
	}

	params := url.Values{}
	params.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))
	params.Set("exclude", "current,minutely,hourly,alerts")
	params.Set("units", "metric")
	params.Set("appid", o.apiKey)

	o.l.Debug("making openweather API request", map[string]any{
		"lat": lat,
		"lon": lon,
	})

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, o.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fail(fmt.Errorf("failed to create request: %w", err))
	}

	resp, err := o.httpClient.Do(req)
	if err != nil {
		return nil, fail(fmt.Errorf("failed to do request: %w", err))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fail(fmt.Errorf("failed to read response body: %w", err))
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return nil, fail(ErrInvalidAPIKey)
	case resp.StatusCode != http.StatusOK:
		return nil, fail(fmt.Errorf("HTTP error (status %d): %s", resp.StatusCode, resp.Status))
	}

	var response OpenWeatherResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fail(fmt.Errorf("failed to parse JSON response: %w", err))
	}

	predictions := make([]models.DailyPrediction, 0, len(response.Daily))
	for _, day := range response.Daily {
		predictions = append(predictions, dailyPrediction(day))
	}

	o.l.Debug("parsed openweather API response", map[string]any{
		"days": len(predictions),
	})

	return predictions, nil
}

func dailyPrediction(day OpenWeatherDaily) models.DailyPrediction {
	date := time.Unix(day.Dt, 0).UTC()

	p := models.DailyPrediction{
		Date:              date,
		DateString:        date.Format(time.DateOnly),
		Temperature:       round1(day.Temp.Day),
		MinTemp:           round1(day.Temp.Min),
		MaxTemp:           round1(day.Temp.Max),
		Humidity:          day.Humidity,
		Pressure:          day.Pressure,
		WindSpeed:         round1(day.WindSpeed),
		Description:       "Clear sky",
		Icon:              "01d",
		PrecipProbability: int(math.Round(day.Pop * 100)),
		Rain:              day.Rain,
		WeatherMain:       "Clear",
		RiskLevel:         dayRisk(day),
	}

	if len(day.Weather) > 0 {
		w := day.Weather[0]
		if w.Main != "" {
			p.WeatherMain = w.Main
		}
		if w.Description != "" {
			p.Description = w.Description
		}
		if w.Icon != "" {
			p.Icon = w.Icon
		}
	}

	return p
}

func dayRisk(day OpenWeatherDaily) models.DayRisk {
	switch {
	case day.Pop > 0.7 || day.Rain > 10 || day.WindSpeed > 15 || day.Temp.Day > 35 || day.Temp.Day < 0:
		return models.DayRiskHigh
	case day.Pop > 0.4 || day.Rain > 5 || day.WindSpeed > 10 || day.Temp.Day > 30 || day.Temp.Day < 5:
		return models.DayRiskModerate
	default:
		return models.DayRiskLow
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
