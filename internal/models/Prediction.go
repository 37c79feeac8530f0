package models

import "time"

type DayRisk string

const (
	DayRiskLow      DayRisk = "low"
	DayRiskModerate DayRisk = "moderate"
	DayRiskHigh     DayRisk = "high"
)

// DailyPrediction is one day of the short-range provider forecast.
type DailyPrediction struct {
	Date              time.Time `json:"date"`
	DateString        string    `json:"dateString" example:"2025-07-25"`
	Temperature       float64   `json:"temperature" example:"24.1"`
	MinTemp           float64   `json:"minTemp" example:"18.2"`
	MaxTemp           float64   `json:"maxTemp" example:"27.9"`
	Humidity          int       `json:"humidity" example:"64"`
	Pressure          int       `json:"pressure" example:"1013"`
	WindSpeed         float64   `json:"windSpeed" example:"5.3"`
	Description       string    `json:"description" example:"light rain"`
	Icon              string    `json:"icon" example:"10d"`
	PrecipProbability int       `json:"precipProbability" example:"45"`
	Rain              float64   `json:"rain" example:"3.2"`
	WeatherMain       string    `json:"weatherMain" example:"Rain"`
	RiskLevel         DayRisk   `json:"riskLevel" example:"moderate"`
}
