package models

import "time"

// Analysis is the result of a point-in-time weather analysis for a location and window.
type Analysis struct {
	Location        string                      `json:"location" example:"Lisbon, Portugal"`
	Latitude        float64                     `json:"latitude"`
	Longitude       float64                     `json:"longitude"`
	StartDate       string                      `json:"start_date" example:"2024-07-01"`
	EndDate         string                      `json:"end_date" example:"2024-07-14"`
	Stats           WeatherStats                `json:"stats"`
	Risk            RiskLevel                   `json:"risk"`
	Recommendations PersonalizedRecommendations `json:"recommendations"`
}

// SavedAnalysis is a persisted search history entry.
type SavedAnalysis struct {
	ID             string    `json:"id"`
	UserID         string    `json:"user_id"`
	LocationName   string    `json:"location_name"`
	Latitude       float64   `json:"latitude"`
	Longitude      float64   `json:"longitude"`
	StartDate      string    `json:"start_date"`
	EndDate        string    `json:"end_date"`
	AvgTemperature float64   `json:"avg_temperature"`
	MaxTemperature float64   `json:"max_temperature"`
	MinTemperature float64   `json:"min_temperature"`
	AvgRainfall    float64   `json:"avg_rainfall"`
	MaxRainfall    float64   `json:"max_rainfall"`
	AvgWindspeed   float64   `json:"avg_windspeed"`
	MaxWindspeed   float64   `json:"max_windspeed"`
	RiskLevel      Level     `json:"risk_level"`
	CreatedAt      time.Time `json:"created_at"`
}

// NewSavedAnalysis flattens an analysis into a history entry.
func NewSavedAnalysis(userID string, a Analysis) SavedAnalysis {
	return SavedAnalysis{
		UserID:         userID,
		LocationName:   a.Location,
		Latitude:       a.Latitude,
		Longitude:      a.Longitude,
		StartDate:      a.StartDate,
		EndDate:        a.EndDate,
		AvgTemperature: a.Stats.AvgTemperature,
		MaxTemperature: a.Stats.MaxTemperature,
		MinTemperature: a.Stats.MinTemperature,
		AvgRainfall:    a.Stats.AvgRainfall,
		MaxRainfall:    a.Stats.MaxRainfall,
		AvgWindspeed:   a.Stats.AvgWindspeed,
		MaxWindspeed:   a.Stats.MaxWindspeed,
		RiskLevel:      a.Risk.Level,
	}
}

type Favorite struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	LocationName string    `json:"location_name" validate:"required" example:"Lisbon"`
	Latitude     float64   `json:"latitude" validate:"gte=-90,lte=90" example:"38.7223"`
	Longitude    float64   `json:"longitude" validate:"gte=-180,lte=180" example:"-9.1393"`
	CreatedAt    time.Time `json:"created_at"`
}
