package export

import (
	"fmt"

	"weather-insights/internal/models"
)

var forecastHeader = []string{
	"Date", "Temperature (°C)", "Temp CI Low", "Temp CI High",
	"Rainfall (mm)", "Rain CI Low", "Rain CI High",
	"Wind Speed (m/s)", "Wind CI Low", "Wind CI High", "Type",
}

type forecastPeriod struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type forecastAverages struct {
	Temperature float64 `json:"temperature"`
	Rainfall    float64 `json:"rainfall"`
	Windspeed   float64 `json:"windspeed"`
}

type forecastDocument struct {
	Location             string                 `json:"location"`
	ForecastPeriod       forecastPeriod         `json:"forecastPeriod"`
	Averages             forecastAverages       `json:"averages"`
	Forecast             []models.ForecastPoint `json:"forecast"`
	HistoricalDataPoints int                    `json:"historicalDataPoints"`
	YearsUsed            int                    `json:"yearsUsed"`
}

// ForecastCSV renders one row per forecast month with its confidence bounds.
func ForecastCSV(result models.ForecastResult, location string) ([]byte, error) {
	preamble := []string{
		locationPrefix + singleLine(location),
		fmt.Sprintf("Forecast Period: %s to %s", result.ForecastStartDate, result.ForecastEndDate),
	}

	records := make([][]string, 0, len(result.ForecastData)+1)
	records = append(records, forecastHeader)
	for _, p := range result.ForecastData {
		records = append(records, []string{
			p.Date,
			number(p.Temperature), number(p.TemperatureConfidence.Lower()), number(p.TemperatureConfidence.Upper()),
			number(p.Rainfall), number(p.RainfallConfidence.Lower()), number(p.RainfallConfidence.Upper()),
			number(p.Windspeed), number(p.WindspeedConfidence.Lower()), number(p.WindspeedConfidence.Upper()),
			"Forecast",
		})
	}

	return writeCSV(preamble, records)
}

func ForecastJSON(result models.ForecastResult, location string) ([]byte, error) {
	points := result.ForecastData
	if points == nil {
		points = []models.ForecastPoint{}
	}

	return writeJSON(forecastDocument{
		Location: location,
		ForecastPeriod: forecastPeriod{
			Start: result.ForecastStartDate,
			End:   result.ForecastEndDate,
		},
		Averages: forecastAverages{
			Temperature: result.AvgTemperature,
			Rainfall:    result.AvgRainfall,
			Windspeed:   result.AvgWindspeed,
		},
		Forecast:             points,
		HistoricalDataPoints: len(result.HistoricalData),
		YearsUsed:            result.YearsUsed,
	})
}

// Stats renders stats in the requested format.
func Stats(stats models.WeatherStats, location string, f Format) ([]byte, error) {
	if f == FormatCSV {
		return StatsCSV(stats, location)
	}
	return StatsJSON(stats, location)
}

// Forecast renders a forecast in the requested format.
func Forecast(result models.ForecastResult, location string, f Format) ([]byte, error) {
	if f == FormatCSV {
		return ForecastCSV(result, location)
	}
	return ForecastJSON(result, location)
}
