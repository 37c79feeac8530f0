package export

import (
	"fmt"
	"strconv"
	"strings"

	"weather-insights/internal/models"
)

var modelForecastHeader = []string{"Date", "Temperature (°C)", "Lower Bound (°C)", "Upper Bound (°C)"}

// modelForecastDocument flattens the service response next to the model name.
type modelForecastDocument struct {
	LocationName string `json:"location_name,omitempty"`
	Model        string `json:"model"`
	models.ModelForecastResponse
}

func fixed(v float64, prec int) string {
	return strconv.FormatFloat(v, 'f', prec, 64)
}

func optional(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

// ModelForecastCSV renders the model, periods, headline statistics and
// recommendations ahead of one row per forecast date. Missing bounds read as 0.
func ModelForecastCSV(resp models.ModelForecastResponse, location string) ([]byte, error) {
	preamble := []string{
		locationPrefix + singleLine(location),
		"Model: " + singleLine(resp.ModelUsed),
		fmt.Sprintf("Historical Period: %s to %s", resp.HistoricalPeriod["start"], resp.HistoricalPeriod["end"]),
		fmt.Sprintf("Forecast Period: %s to %s", resp.ForecastPeriod["start"], resp.ForecastPeriod["end"]),
		"",
		"Summary Statistics:",
		fmt.Sprintf("Historical Avg Temp: %s°C", fixed(resp.SummaryStats["historical_avg_temp"], 1)),
		fmt.Sprintf("Forecast Avg Temp: %s°C", fixed(resp.SummaryStats["forecast_avg_temp"], 1)),
		"",
		"Recommendations:",
	}
	for _, r := range resp.Recommendations {
		preamble = append(preamble, "- "+singleLine(r))
	}
	preamble = append(preamble, "", "")

	records := make([][]string, 0, len(resp.Forecasts)+1)
	records = append(records, modelForecastHeader)
	for _, p := range resp.Forecasts {
		date, _, _ := strings.Cut(p.Date, "T")
		records = append(records, []string{
			date,
			fixed(p.Temperature, 2),
			fixed(optional(p.TemperatureLower), 2),
			fixed(optional(p.TemperatureUpper), 2),
		})
	}

	return writeCSV(preamble, records)
}

func ModelForecastJSON(resp models.ModelForecastResponse, location string) ([]byte, error) {
	if resp.Forecasts == nil {
		resp.Forecasts = []models.ModelForecastPoint{}
	}
	if resp.Recommendations == nil {
		resp.Recommendations = []string{}
	}

	return writeJSON(modelForecastDocument{
		LocationName:          location,
		Model:                 resp.ModelUsed,
		ModelForecastResponse: resp,
	})
}

// ModelForecast renders a forecasting service response in the requested format.
func ModelForecast(resp models.ModelForecastResponse, location string, f Format) ([]byte, error) {
	if f == FormatCSV {
		return ModelForecastCSV(resp, location)
	}
	return ModelForecastJSON(resp, location)
}
