package weather

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"

	"weather-insights/internal/models"
	"weather-insights/internal/repositories"
	"weather-insights/internal/services/forecast"
	"weather-insights/internal/services/insights"
	"weather-insights/internal/store"
	"weather-insights/pkg/logger"
	"weather-insights/pkg/observe"
)

// Store persists per-user history, favorites and preferences.
type Store interface {
	SaveAnalysis(userID string, a models.SavedAnalysis) (models.SavedAnalysis, error)
	ListAnalyses(userID string) []models.SavedAnalysis
	DeleteAnalysis(userID, id string) error
	AddFavorite(userID string, f models.Favorite) (models.Favorite, error)
	ListFavorites(userID string) []models.Favorite
	RemoveFavorite(userID, id string) error
	GetPreferences(userID string) (models.Preferences, error)
	SavePreferences(userID string, p models.Preferences) error
}

// AnalyzeRequest selects a location and inclusive date window. Preferences,
// when nil, are loaded for UserID. Save records the result in UserID's history.
type AnalyzeRequest struct {
	UserID      string
	Location    string
	Lat         float64
	Lon         float64
	Start       time.Time
	End         time.Time
	Preferences *models.Preferences
	Save        bool
}

// WeatherService composes the providers, the insight engines and the user store.
type WeatherService struct {
	repos      repositories.Repositories
	forecaster *forecast.Forecaster
	store      Store
	metrics    *observe.Metrics
	l          *logger.Logger
}

// NewWeatherService wires the service. forecaster and metrics may be nil.
func NewWeatherService(repos repositories.Repositories, forecaster *forecast.Forecaster, st Store, l *logger.Logger, metrics *observe.Metrics) *WeatherService {
	return &WeatherService{
		repos:      repos,
		forecaster: forecaster,
		store:      st,
		metrics:    metrics,
		l:          l,
	}
}

func unavailable(provider string) error {
	return errors.Wrapf(models.ErrProviderUnavailable, "%s provider is not configured", provider)
}

// DefaultPreferences apply to users who never saved any.
func DefaultPreferences() models.Preferences {
	return models.Preferences{
		UserType:        models.UserIndividual,
		TemperatureUnit: models.Celsius,
	}
}

// Analyze fetches observations for the window, summarizes them, classifies
// the risk and builds recommendations. Validation happens before any fetch.
func (s *WeatherService) Analyze(ctx context.Context, req AnalyzeRequest) (models.Analysis, error) {
	if err := models.ValidateRange(req.Lat, req.Lon, req.Start, req.End); err != nil {
		return models.Analysis{}, err
	}
	if s.repos.Historical == nil {
		return models.Analysis{}, unavailable("historical")
	}

	location := strings.TrimSpace(req.Location)
	if location == "" {
		location = fmt.Sprintf("%.4f, %.4f", req.Lat, req.Lon)
	}

	s.l.Info("starting analysis", map[string]any{
		"location": location,
		"start":    req.Start.Format(time.DateOnly),
		"end":      req.End.Format(time.DateOnly),
	})

	raw, err := s.repos.Historical.FetchDaily(ctx, req.Lat, req.Lon, req.Start, req.End)
	if err != nil {
		return models.Analysis{}, errors.Wrap(err, "fetch observations")
	}

	stats, err := insights.Aggregate(raw)
	if err != nil {
		return models.Analysis{}, errors.Wrapf(err, "aggregate %s", location)
	}

	prefs := DefaultPreferences()
	switch {
	case req.Preferences != nil:
		prefs = *req.Preferences
	case req.UserID != "":
		prefs = s.GetPreferences(req.UserID)
	}

	analysis := models.Analysis{
		Location:        location,
		Latitude:        req.Lat,
		Longitude:       req.Lon,
		StartDate:       req.Start.Format(time.DateOnly),
		EndDate:         req.End.Format(time.DateOnly),
		Stats:           stats,
		Risk:            insights.ClassifyRisk(stats),
		Recommendations: insights.Personalized(stats, prefs),
	}

	if s.metrics != nil {
		s.metrics.Analyses.WithLabelValues(string(analysis.Risk.Level)).Inc()
	}

	if req.Save && req.UserID != "" {
		if _, err := s.store.SaveAnalysis(req.UserID, models.NewSavedAnalysis(req.UserID, analysis)); err != nil {
			s.l.Warning("failed to save analysis", map[string]any{
				"user":  req.UserID,
				"error": err.Error(),
			})
		}
	}

	s.l.Info("completed analysis", map[string]any{
		"location": location,
		"days":     len(stats.DailyData),
		"risk":     analysis.Risk.Level,
	})

	return analysis, nil
}

// Forecast projects the historical pattern forward. A zero MonthsAhead uses the default horizon.
func (s *WeatherService) Forecast(ctx context.Context, req models.ForecastRequest) (models.ForecastResult, error) {
	if err := models.ValidateCoordinates(req.Lat, req.Lon); err != nil {
		return models.ForecastResult{}, err
	}
	if req.StartDate.IsZero() {
		return models.ForecastResult{}, errors.Wrap(models.ErrInvalidRange, "start date is required")
	}
	if s.forecaster == nil {
		return models.ForecastResult{}, unavailable("historical")
	}
	if req.MonthsAhead == 0 {
		req.MonthsAhead = forecast.DefaultMonthsAhead
	}

	return s.forecaster.GenerateForecast(ctx, req.Lat, req.Lon, req.StartDate, req.MonthsAhead)
}

// DailyPredictions returns the short-range provider forecast with per-day risk.
func (s *WeatherService) DailyPredictions(ctx context.Context, lat, lon float64) ([]models.DailyPrediction, error) {
	if err := models.ValidateCoordinates(lat, lon); err != nil {
		return nil, err
	}
	if s.repos.Predictions == nil {
		return nil, unavailable("prediction")
	}

	return s.repos.Predictions.FetchDailyPredictions(ctx, lat, lon)
}

func (s *WeatherService) ModelForecast(ctx context.Context, req models.ModelForecastRequest) (models.ModelForecastResponse, error) {
	if err := models.ValidateCoordinates(req.Latitude, req.Longitude); err != nil {
		return models.ModelForecastResponse{}, err
	}

	start, err := time.Parse(models.DateKeyLayout, req.StartDate)
	if err != nil {
		return models.ModelForecastResponse{}, errors.Wrapf(models.ErrInvalidRange, "start date %q", req.StartDate)
	}
	end, err := time.Parse(models.DateKeyLayout, req.EndDate)
	if err != nil {
		return models.ModelForecastResponse{}, errors.Wrapf(models.ErrInvalidRange, "end date %q", req.EndDate)
	}
	if start.After(end) {
		return models.ModelForecastResponse{}, errors.Wrapf(models.ErrInvalidRange, "start date %s is after end date %s", req.StartDate, req.EndDate)
	}

	if s.repos.ModelForecast == nil {
		return models.ModelForecastResponse{}, unavailable("model forecast")
	}

	return s.repos.ModelForecast.Forecast(ctx, req)
}

// ModelForecastHealthy reports whether the forecasting service is reachable.
func (s *WeatherService) ModelForecastHealthy(ctx context.Context) bool {
	if s.repos.ModelForecast == nil {
		return false
	}
	return s.repos.ModelForecast.Health(ctx)
}

// SearchLocations resolves a place name. A "lat, lon" query is answered
// directly without calling the geocoder.
func (s *WeatherService) SearchLocations(ctx context.Context, query string) ([]models.GeoLocation, error) {
	if loc, ok := models.ParseCoordinates(query); ok {
		return []models.GeoLocation{loc}, nil
	}
	if s.repos.Geocoding == nil {
		return nil, unavailable("geocoding")
	}

	return s.repos.Geocoding.Search(ctx, query)
}

func (s *WeatherService) AddFavorite(userID string, f models.Favorite) (models.Favorite, error) {
	if err := models.ValidateCoordinates(f.Latitude, f.Longitude); err != nil {
		return models.Favorite{}, err
	}
	return s.store.AddFavorite(userID, f)
}

func (s *WeatherService) ListFavorites(userID string) []models.Favorite {
	return s.store.ListFavorites(userID)
}

func (s *WeatherService) RemoveFavorite(userID, id string) error {
	return s.store.RemoveFavorite(userID, id)
}

func (s *WeatherService) History(userID string) []models.SavedAnalysis {
	return s.store.ListAnalyses(userID)
}

func (s *WeatherService) DeleteHistoryEntry(userID, id string) error {
	return s.store.DeleteAnalysis(userID, id)
}

// GetPreferences returns the saved preferences or DefaultPreferences.
func (s *WeatherService) GetPreferences(userID string) models.Preferences {
	prefs, err := s.store.GetPreferences(userID)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			s.l.Warning("failed to load preferences", map[string]any{
				"user":  userID,
				"error": err.Error(),
			})
		}
		return DefaultPreferences()
	}
	return prefs
}

func (s *WeatherService) SavePreferences(userID string, p models.Preferences) (models.Preferences, error) {
	if p.UserType == "" {
		p.UserType = models.UserIndividual
	}
	if p.TemperatureUnit == "" {
		p.TemperatureUnit = models.Celsius
	}
	if err := s.store.SavePreferences(userID, p); err != nil {
		return models.Preferences{}, err
	}
	return p, nil
}
