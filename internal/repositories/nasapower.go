package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"weather-insights/internal/models"
	"weather-insights/pkg/logger"
)

const (
	NASAPowerBaseURL = "https://power.larc.nasa.gov/api/temporal/daily/point"

	// nasaFillValue marks a missing sample in POWER responses.
	nasaFillValue = -999
)

// nasaParameters maps POWER parameter codes to our parameters.
var nasaParameters = map[string]models.Parameter{
	"T2M":         models.ParamTemperature,
	"PRECTOTCORR": models.ParamRainfall,
	"WS2M":        models.ParamWindspeed,
}

type NASAPowerRepository struct {
	baseURL    string
	httpClient HTTPClient
	l          *logger.Logger
}

func NewNASAPowerRepository(baseURL string, l *logger.Logger, httpClient HTTPClient) *NASAPowerRepository {
	if baseURL == "" {
		baseURL = NASAPowerBaseURL
	}

	return &NASAPowerRepository{
		baseURL:    baseURL,
		httpClient: httpClient,
		l:          l,
	}
}

func (n *NASAPowerRepository) Name() string {
	return "nasa-power"
}

type NASAPowerResponse struct {
	Properties struct {
		Parameter map[string]map[string]float64 `json:"parameter"`
	} `json:"properties"`
}

// FetchDaily returns daily temperature, rainfall and wind for [start, end].
func (n *NASAPowerRepository) FetchDaily(ctx context.Context, lat, lon float64, start, end time.Time) (models.RawObservations, error) {
	fail := func(detail string, err error) error {
		return &models.ProviderError{
			Provider: n.Name(),
			Lat:      lat,
			Lon:      lon,
			Detail:   detail,
			Err:      err,
		}
	}
	window := fmt.Sprintf("%s-%s", models.DateKey(start), models.DateKey(end))

	params := url.Values{}
	params.Set("parameters", "T2M,PRECTOTCORR,WS2M")
	params.Set("start", models.DateKey(start))
	params.Set("end", models.DateKey(end))
	params.Set("latitude", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("longitude", strconv.FormatFloat(lon, 'f', -1, 64))
	params.Set("format", "JSON")
	params.Set("community", "AG")

	n.l.Debug("making nasa power API request", map[string]any{
		"lat":    lat,
		"lon":    lon,
		"window": window,
	})

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, n.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fail(window, fmt.Errorf("failed to create request: %w", err))
	}

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return nil, fail(window, fmt.Errorf("failed to do request: %w", err))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fail(window, fmt.Errorf("failed to read response body: %w", err))
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fail(window, fmt.Errorf("HTTP error (status %d): %s", resp.StatusCode, resp.Status))
	}

	var response NASAPowerResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fail(window, fmt.Errorf("failed to parse JSON response: %w", err))
	}

	raw := rawFromPower(response.Properties.Parameter)

	n.l.Debug("parsed nasa power API response", map[string]any{
		"window": window,
		"days":   len(raw[models.ParamTemperature]),
	})

	return raw, nil
}

// rawFromPower keeps the three known parameters and drops fill values.
func rawFromPower(parameter map[string]map[string]float64) models.RawObservations {
	raw := models.RawObservations{}

	for code, p := range nasaParameters {
		values := make(map[string]float64, len(parameter[code]))
		for date, v := range parameter[code] {
			if v == nasaFillValue {
				continue
			}
			values[date] = v
		}
		raw[p] = values
	}

	return raw
}
