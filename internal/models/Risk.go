package models

type Level string

const (
	LevelHigh     Level = "High"
	LevelModerate Level = "Moderate"
	LevelLow      Level = "Low"
)

// RiskLevel is derived from a WeatherStats snapshot and never stored.
type RiskLevel struct {
	Level   Level    `json:"level" example:"Moderate"`
	Reasons []string `json:"reasons"`
}
