package models

import (
	"maps"
	"slices"
	"time"
)

// DateKeyLayout is the compact day key shared with the historical provider.
const DateKeyLayout = "20060102"

type Parameter string

const (
	ParamTemperature Parameter = "temperature"
	ParamRainfall    Parameter = "rainfall"
	ParamWindspeed   Parameter = "windspeed"
)

// RawObservations maps a parameter to its date-keyed daily values.
type RawObservations map[Parameter]map[string]float64

// DateKeys returns the temperature date keys in ascending order.
func (r RawObservations) DateKeys() []string {
	return slices.Sorted(maps.Keys(r[ParamTemperature]))
}

// Daily merges the parameter maps into one observation per temperature date.
// Dates missing from rainfall or wind read as 0.
func (r RawObservations) Daily() []DailyObservation {
	keys := r.DateKeys()
	temps, rain, wind := r[ParamTemperature], r[ParamRainfall], r[ParamWindspeed]

	daily := make([]DailyObservation, 0, len(keys))
	for _, k := range keys {
		daily = append(daily, DailyObservation{
			Date:        k,
			Temperature: temps[k],
			Rainfall:    rain[k],
			Windspeed:   wind[k],
		})
	}

	return daily
}

// RawFromDaily is the inverse of Daily, used when re-aggregating exported rows.
func RawFromDaily(daily []DailyObservation) RawObservations {
	raw := RawObservations{
		ParamTemperature: make(map[string]float64, len(daily)),
		ParamRainfall:    make(map[string]float64, len(daily)),
		ParamWindspeed:   make(map[string]float64, len(daily)),
	}
	for _, d := range daily {
		raw[ParamTemperature][d.Date] = d.Temperature
		raw[ParamRainfall][d.Date] = d.Rainfall
		raw[ParamWindspeed][d.Date] = d.Windspeed
	}

	return raw
}

type DailyObservation struct {
	Date        string  `json:"date" example:"20240715"`
	Temperature float64 `json:"temperature" example:"24.3"`
	Rainfall    float64 `json:"rainfall" example:"1.25"`
	Windspeed   float64 `json:"windspeed" example:"3.4"`
}

// WeatherStats summarizes a window of daily observations. Values are rounded
// once, when the stats are built.
type WeatherStats struct {
	AvgTemperature float64            `json:"avgTemperature" example:"22.4"`
	MaxTemperature float64            `json:"maxTemperature" example:"29.1"`
	MinTemperature float64            `json:"minTemperature" example:"15.8"`
	AvgRainfall    float64            `json:"avgRainfall" example:"2.13"`
	MaxRainfall    float64            `json:"maxRainfall" example:"11.4"`
	TotalRainfall  float64            `json:"totalRainfall" example:"14.91"`
	AvgWindspeed   float64            `json:"avgWindspeed" example:"4.2"`
	MaxWindspeed   float64            `json:"maxWindspeed" example:"7.9"`
	DailyData      []DailyObservation `json:"dailyData"`
}

// FindByDate returns the index of the observation with the given date key, or -1 if not found
func FindByDate(data []DailyObservation, date string) int {
	for i, d := range data {
		if d.Date == date {
			return i
		}
	}
	return -1
}

// DateKey formats t the way the historical provider keys its days.
func DateKey(t time.Time) string {
	return t.Format(DateKeyLayout)
}
