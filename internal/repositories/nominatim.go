package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"weather-insights/internal/models"
	"weather-insights/pkg/logger"
)

const (
	NominatimBaseURL = "https://nominatim.openstreetmap.org/search"

	nominatimUserAgent = "WeatherAnalysisApp/1.0"
	nominatimLimit     = 5
)

type NominatimRepository struct {
	baseURL    string
	httpClient HTTPClient
	l          *logger.Logger
}

func NewNominatimRepository(baseURL string, l *logger.Logger, httpClient HTTPClient) *NominatimRepository {
	if baseURL == "" {
		baseURL = NominatimBaseURL
	}

	return &NominatimRepository{
		baseURL:    baseURL,
		httpClient: httpClient,
		l:          l,
	}
}

func (n *NominatimRepository) Name() string {
	return "nominatim"
}

type NominatimResult struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
	Address     *struct {
		City    string `json:"city"`
		Town    string `json:"town"`
		Village string `json:"village"`
		State   string `json:"state"`
		Country string `json:"country"`
	} `json:"address"`
}

// Search resolves a free-text place name. Queries shorter than two
// characters return no results without calling the service.
func (n *NominatimRepository) Search(ctx context.Context, query string) ([]models.GeoLocation, error) {
	query = strings.TrimSpace(query)
	if len([]rune(query)) < 2 {
		return []models.GeoLocation{}, nil
	}

	fail := func(err error) error {
		return &models.ProviderError{Provider: n.Name(), Detail: fmt.Sprintf("query %q", query), Err: err}
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "json")
	params.Set("limit", strconv.Itoa(nominatimLimit))
	params.Set("addressdetails", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, n.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fail(fmt.Errorf("failed to create request: %w", err))
	}
	req.Header.Set("User-Agent", nominatimUserAgent)

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return nil, fail(fmt.Errorf("failed to do request: %w", err))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fail(fmt.Errorf("failed to read response body: %w", err))
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fail(fmt.Errorf("HTTP error (status %d): %s", resp.StatusCode, resp.Status))
	}

	var results []NominatimResult
	if err := json.Unmarshal(body, &results); err != nil {
		return nil, fail(fmt.Errorf("failed to parse JSON response: %w", err))
	}

	locations := make([]models.GeoLocation, 0, len(results))
	for _, r := range results {
		loc, err := geoLocation(r)
		if err != nil {
			n.l.Warning("skipping geocoding result", map[string]any{
				"query": query,
				"error": err.Error(),
			})
			continue
		}
		locations = append(locations, loc)
	}

	n.l.Debug("parsed nominatim API response", map[string]any{
		"query":   query,
		"results": len(locations),
	})

	return locations, nil
}

func geoLocation(r NominatimResult) (models.GeoLocation, error) {
	lat, err := strconv.ParseFloat(r.Lat, 64)
	if err != nil {
		return models.GeoLocation{}, fmt.Errorf("invalid latitude %q: %w", r.Lat, err)
	}
	lon, err := strconv.ParseFloat(r.Lon, 64)
	if err != nil {
		return models.GeoLocation{}, fmt.Errorf("invalid longitude %q: %w", r.Lon, err)
	}

	loc := models.GeoLocation{
		Name:      strings.TrimSpace(strings.Split(r.DisplayName, ",")[0]),
		Latitude:  lat,
		Longitude: lon,
	}

	if a := r.Address; a != nil {
		switch {
		case a.City != "":
			loc.Name = a.City
		case a.Town != "":
			loc.Name = a.Town
		case a.Village != "":
			loc.Name = a.Village
		}
		loc.State = a.State
		loc.Country = a.Country
	}

	return loc, nil
}
