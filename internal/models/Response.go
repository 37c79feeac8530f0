package models

// ModelForecastRequest is sent to the statistical forecasting service.
// Dates use the compact YYYYMMDD layout.
type ModelForecastRequest struct {
	Latitude       float64 `json:"latitude" validate:"gte=-90,lte=90" example:"40.7128"`
	Longitude      float64 `json:"longitude" validate:"gte=-180,lte=180" example:"-74.006"`
	StartDate      string  `json:"start_date" validate:"required,datetime=20060102" example:"20200101"`
	EndDate        string  `json:"end_date" validate:"required,datetime=20060102" example:"20241231"`
	ForecastMonths int     `json:"forecast_months,omitempty" validate:"omitempty,gte=1,lte=24" example:"12"`
}

type ModelForecastPoint struct {
	Date             string   `json:"date"`
	Temperature      float64  `json:"temperature"`
	TemperatureLower *float64 `json:"temperature_lower,omitempty"`
	TemperatureUpper *float64 `json:"temperature_upper,omitempty"`
	Rainfall         *float64 `json:"rainfall,omitempty"`
	Windspeed        *float64 `json:"windspeed,omitempty"`
}

// ModelForecastResponse mirrors the forecasting service payload.
type ModelForecastResponse struct {
	Location         map[string]float64   `json:"location"`
	HistoricalPeriod map[string]string    `json:"historical_period"`
	ForecastPeriod   map[string]string    `json:"forecast_period"`
	SummaryStats     map[string]float64   `json:"summary_stats"`
	Forecasts        []ModelForecastPoint `json:"forecasts"`
	Recommendations  []string             `json:"recommendations"`
	ModelUsed        string               `json:"model_used" example:"prophet"`
}
