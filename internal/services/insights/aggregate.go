package insights

import (
	"math"

	"github.com/pkg/errors"

	"weather-insights/internal/models"
)

type summary struct {
	sum, max, min float64
	count         int
}

func (s summary) avg() float64 {
	if s.count == 0 {
		return 0
	}
	return s.sum / float64(s.count)
}

func summarize(values map[string]float64) summary {
	s := summary{max: math.Inf(-1), min: math.Inf(1)}
	for _, v := range values {
		s.sum += v
		s.max = math.Max(s.max, v)
		s.min = math.Min(s.min, v)
		s.count++
	}
	if s.count == 0 {
		s.max, s.min = 0, 0
	}
	return s
}

// Aggregate turns raw per-parameter daily values into rounded WeatherStats.
//
// Averages and extrema are taken over each parameter's own values. DailyData
// follows the ascending temperature date keys and reads missing rainfall or
// wind days as 0.
func Aggregate(raw models.RawObservations) (models.WeatherStats, error) {
	temps := raw[models.ParamTemperature]
	if len(temps) == 0 {
		return models.WeatherStats{}, errors.Wrap(models.ErrEmptySeries, "no temperature observations to aggregate")
	}

	t := summarize(temps)
	r := summarize(raw[models.ParamRainfall])
	w := summarize(raw[models.ParamWindspeed])

	return models.WeatherStats{
		AvgTemperature: Round1(t.avg()),
		MaxTemperature: Round1(t.max),
		MinTemperature: Round1(t.min),
		AvgRainfall:    Round2(r.avg()),
		MaxRainfall:    Round2(r.max),
		TotalRainfall:  Round2(r.sum),
		AvgWindspeed:   Round1(w.avg()),
		MaxWindspeed:   Round1(w.max),
		DailyData:      raw.Daily(),
	}, nil
}
