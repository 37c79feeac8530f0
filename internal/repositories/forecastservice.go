package repositories

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"weather-insights/internal/models"
	"weather-insights/pkg/logger"
)

const (
	ForecastServiceBaseURL = "http://localhost:8000"
)

// ForecastServiceRepository talks to the statistical forecasting microservice.
type ForecastServiceRepository struct {
	baseURL    string
	httpClient HTTPClient
	l          *logger.Logger
}

func NewForecastServiceRepository(baseURL string, l *logger.Logger, httpClient HTTPClient) *ForecastServiceRepository {
	if baseURL == "" {
		baseURL = ForecastServiceBaseURL
	}

	return &ForecastServiceRepository{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		l:          l,
	}
}

func (f *ForecastServiceRepository) Name() string {
	return "forecast-service"
}

func (f *ForecastServiceRepository) Forecast(ctx context.Context, request models.ModelForecastRequest) (models.ModelForecastResponse, error) {
	var response models.ModelForecastResponse

	fail := func(err error) error {
		return &models.ProviderError{
			Provider: f.Name(),
			Lat:      request.Latitude,
			Lon:      request.Longitude,
			Detail:   fmt.Sprintf("%s-%s", request.StartDate, request.EndDate),
			Err:      err,
		}
	}

	payload, err := json.Marshal(request)
	if err != nil {
		return response, fail(fmt.Errorf("failed to encode request: %w", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.baseURL+"/forecast", bytes.NewReader(payload))
	if err != nil {
		return response, fail(fmt.Errorf("failed to create request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")

	f.l.Info("requesting model forecast", map[string]any{
		"lat":    request.Latitude,
		"lon":    request.Longitude,
		"start":  request.StartDate,
		"end":    request.EndDate,
		"months": request.ForecastMonths,
	})

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return response, fail(fmt.Errorf("failed to do request: %w", err))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return response, fail(fmt.Errorf("failed to read response body: %w", err))
	}

	if resp.StatusCode != http.StatusOK {
		var errorResp struct {
			Detail string `json:"detail"`
		}
		if jsonErr := json.Unmarshal(body, &errorResp); jsonErr == nil && errorResp.Detail != "" {
			return response, fail(fmt.Errorf("forecast service error (status %d): %s", resp.StatusCode, errorResp.Detail))
		}
		return response, fail(fmt.Errorf("HTTP error (status %d): %s", resp.StatusCode, resp.Status))
	}

	if err := json.Unmarshal(body, &response); err != nil {
		return response, fail(fmt.Errorf("failed to parse JSON response: %w", err))
	}

	f.l.Info("received model forecast", map[string]any{
		"model":  response.ModelUsed,
		"points": len(response.Forecasts),
	})

	return response, nil
}

// Health reports whether the service answers its health endpoint with 200.
func (f *ForecastServiceRepository) Health(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.baseURL+"/health", nil)
	if err != nil {
		return false
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		f.l.Debug("forecast service health check failed", map[string]any{
			"error": err.Error(),
		})
		return false
	}
	defer resp.Body.Close()

	return resp.StatusCode == http.StatusOK
}
