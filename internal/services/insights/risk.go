package insights

import (
	"fmt"

	"weather-insights/internal/models"
)

const normalRangesReason = "All weather conditions within normal ranges"

// ClassifyRisk grades stats as High, Moderate or Low. Every High check that
// fires adds a reason; Moderate checks only run when none did.
func ClassifyRisk(stats models.WeatherStats) models.RiskLevel {
	var reasons []string

	if stats.MaxRainfall > 20 {
		reasons = append(reasons, fmt.Sprintf("Heavy rainfall detected (%smm)", formatValue(stats.MaxRainfall)))
	}
	if stats.MaxWindspeed > 15 {
		reasons = append(reasons, fmt.Sprintf("Strong winds detected (%s m/s)", formatValue(stats.MaxWindspeed)))
	}
	if stats.MaxTemperature > 35 {
		reasons = append(reasons, fmt.Sprintf("Extreme heat detected (%s°C)", formatValue(stats.MaxTemperature)))
	}
	if stats.MinTemperature < 5 {
		reasons = append(reasons, fmt.Sprintf("Extreme cold detected (%s°C)", formatValue(stats.MinTemperature)))
	}
	if len(reasons) > 0 {
		return models.RiskLevel{Level: models.LevelHigh, Reasons: reasons}
	}

	if stats.MaxRainfall > 10 {
		reasons = append(reasons, fmt.Sprintf("Moderate rainfall (%smm)", formatValue(stats.MaxRainfall)))
	}
	if stats.MaxWindspeed > 8 {
		reasons = append(reasons, fmt.Sprintf("Moderate winds (%s m/s)", formatValue(stats.MaxWindspeed)))
	}
	if len(reasons) > 0 {
		return models.RiskLevel{Level: models.LevelModerate, Reasons: reasons}
	}

	return models.RiskLevel{Level: models.LevelLow, Reasons: []string{normalRangesReason}}
}
