package models

import (
	"fmt"
	"time"
)

// ForecastRequest describes a historical-pattern projection.
type ForecastRequest struct {
	Lat         float64   `json:"lat" example:"40.7128"`
	Lon         float64   `json:"lon" example:"-74.006"`
	StartDate   time.Time `json:"start_date"`
	MonthsAhead int       `json:"months_ahead" example:"12"`
}

func (f *ForecastRequest) RequestParams() string {
	return fmt.Sprintf("lat: %.4f lon: %.4f start: %s months: %d", f.Lat, f.Lon, f.StartDate.Format(time.DateOnly), f.MonthsAhead)
}

// HistoricalYearData holds the window around the analogous calendar date in one past year.
type HistoricalYearData struct {
	Year int                `json:"year"`
	Data []DailyObservation `json:"data"`
}

// SkippedYear records a lookback year that contributed no samples.
type SkippedYear struct {
	Year   int    `json:"year"`
	Reason string `json:"reason"`
}

// HistoricalPattern lists usable years oldest first alongside the skipped ones.
type HistoricalPattern struct {
	Years   []HistoricalYearData `json:"years"`
	Skipped []SkippedYear        `json:"skipped,omitempty"`
}

// Interval is a [lower, upper] confidence pair.
type Interval [2]float64

func (i Interval) Lower() float64 { return i[0] }
func (i Interval) Upper() float64 { return i[1] }

type ForecastPoint struct {
	Date                  string   `json:"date" example:"2025-03-15"`
	Temperature           float64  `json:"temperature" example:"12.4"`
	Rainfall              float64  `json:"rainfall" example:"2.31"`
	Windspeed             float64  `json:"windspeed" example:"4.1"`
	TemperatureConfidence Interval `json:"temperatureConfidence"`
	RainfallConfidence    Interval `json:"rainfallConfidence"`
	WindspeedConfidence   Interval `json:"windspeedConfidence"`
}

type ForecastResult struct {
	HistoricalData    []DailyObservation `json:"historicalData"`
	ForecastData      []ForecastPoint    `json:"forecastData"`
	AvgTemperature    float64            `json:"avgTemperature"`
	AvgRainfall       float64            `json:"avgRainfall"`
	AvgWindspeed      float64            `json:"avgWindspeed"`
	ForecastStartDate string             `json:"forecastStartDate"`
	ForecastEndDate   string             `json:"forecastEndDate"`
	YearsRequested    int                `json:"yearsRequested"`
	YearsUsed         int                `json:"yearsUsed"`
	SkippedYears      []SkippedYear      `json:"skippedYears,omitempty"`
}

// Degraded reports whether some lookback years were missing.
func (r *ForecastResult) Degraded() bool {
	return r.YearsUsed < r.YearsRequested
}
