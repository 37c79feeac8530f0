package forecast

import (
	"context"
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"weather-insights/internal/models"
	"weather-insights/internal/services/insights"
	"weather-insights/pkg/logger"
	"weather-insights/pkg/observe"
)

const (
	DefaultYearsBack   = 10
	DefaultMonthsAhead = 12
	DefaultWindowDays  = 3
	DefaultConcurrency = 4
)

// HistoricalSource returns raw daily observations for a location and inclusive date window.
type HistoricalSource interface {
	FetchDaily(ctx context.Context, lat, lon float64, start, end time.Time) (models.RawObservations, error)
}

// Forecaster projects a calendar-date pattern forward from past years at the same location.
type Forecaster struct {
	source      HistoricalSource
	clock       clockwork.Clock
	metrics     *observe.Metrics
	l           *logger.Logger
	yearsBack   int
	windowDays  int
	concurrency int
}

type Option func(*Forecaster)

func WithClock(c clockwork.Clock) Option {
	return func(f *Forecaster) { f.clock = c }
}

func WithMetrics(m *observe.Metrics) Option {
	return func(f *Forecaster) { f.metrics = m }
}

func WithYearsBack(n int) Option {
	return func(f *Forecaster) {
		if n > 0 {
			f.yearsBack = n
		}
	}
}

func WithWindowDays(n int) Option {
	return func(f *Forecaster) {
		if n >= 0 {
			f.windowDays = n
		}
	}
}

// WithConcurrency bounds how many years are fetched at once.
func WithConcurrency(n int) Option {
	return func(f *Forecaster) {
		if n > 0 {
			f.concurrency = n
		}
	}
}

func NewForecaster(source HistoricalSource, l *logger.Logger, opts ...Option) *Forecaster {
	f := &Forecaster{
		source:      source,
		clock:       clockwork.NewRealClock(),
		l:           l,
		yearsBack:   DefaultYearsBack,
		windowDays:  DefaultWindowDays,
		concurrency: DefaultConcurrency,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

type yearOutcome struct {
	data    models.HistoricalYearData
	skipped *models.SkippedYear
}

// FetchHistoricalPattern fetches the window around (month, day) for each of
// the yearsBack years before the current one. A failed year is skipped and
// reported, never fatal. Years come back oldest first.
func (f *Forecaster) FetchHistoricalPattern(ctx context.Context, lat, lon float64, month time.Month, day, yearsBack int) (models.HistoricalPattern, error) {
	if err := models.ValidateCoordinates(lat, lon); err != nil {
		return models.HistoricalPattern{}, err
	}
	if month < time.January || month > time.December || day < 1 || day > 31 {
		return models.HistoricalPattern{}, errors.Wrapf(models.ErrInvalidRange, "invalid calendar date %02d-%02d", month, day)
	}
	if yearsBack <= 0 {
		return models.HistoricalPattern{}, errors.Wrapf(models.ErrInvalidRange, "years back must be positive, got %d", yearsBack)
	}

	currentYear := f.clock.Now().Year()
	outcomes := make([]yearOutcome, yearsBack)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(f.concurrency)

	for i := 1; i <= yearsBack; i++ {
		year := currentYear - i
		// oldest year lands at index 0
		slot := &outcomes[yearsBack-i]

		g.Go(func() error {
			*slot = f.fetchYear(gctx, lat, lon, year, month, day)
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return models.HistoricalPattern{}, errors.Wrap(err, "historical pattern fetch interrupted")
	}

	var pattern models.HistoricalPattern
	for _, o := range outcomes {
		if o.skipped != nil {
			pattern.Skipped = append(pattern.Skipped, *o.skipped)
			continue
		}
		pattern.Years = append(pattern.Years, o.data)
	}

	f.l.Info("historical pattern fetched", map[string]any{
		"lat":       lat,
		"lon":       lon,
		"month":     int(month),
		"day":       day,
		"requested": yearsBack,
		"used":      len(pattern.Years),
		"skipped":   len(pattern.Skipped),
	})

	return pattern, nil
}

func (f *Forecaster) fetchYear(ctx context.Context, lat, lon float64, year int, month time.Month, day int) yearOutcome {
	target := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	start := target.AddDate(0, 0, -f.windowDays)
	end := target.AddDate(0, 0, f.windowDays)

	skip := func(reason string) yearOutcome {
		f.l.Warning("skipping historical year", map[string]any{
			"year":   year,
			"lat":    lat,
			"lon":    lon,
			"window": fmt.Sprintf("%s-%s", models.DateKey(start), models.DateKey(end)),
			"reason": reason,
		})
		return yearOutcome{skipped: &models.SkippedYear{Year: year, Reason: reason}}
	}

	raw, err := f.source.FetchDaily(ctx, lat, lon, start, end)
	if err != nil {
		return skip(err.Error())
	}

	daily := raw.Daily()
	if len(daily) == 0 {
		return skip("no observations in window")
	}

	return yearOutcome{data: models.HistoricalYearData{Year: year, Data: daily}}
}

// GenerateForecast produces one point per month offset from startDate using
// the recency-weighted mean of past years and a 95% confidence band.
// It fails with ErrInsufficientHistory when no past year produced data.
func (f *Forecaster) GenerateForecast(ctx context.Context, lat, lon float64, startDate time.Time, monthsAhead int) (models.ForecastResult, error) {
	req := models.ForecastRequest{Lat: lat, Lon: lon, StartDate: startDate, MonthsAhead: monthsAhead}

	if monthsAhead <= 0 {
		return models.ForecastResult{}, errors.Wrapf(models.ErrInvalidRange, "months ahead must be positive, got %d", monthsAhead)
	}

	pattern, err := f.FetchHistoricalPattern(ctx, lat, lon, startDate.Month(), startDate.Day(), f.yearsBack)
	if err != nil {
		return models.ForecastResult{}, err
	}

	if f.metrics != nil {
		f.metrics.ForecastYearsUsed.Observe(float64(len(pattern.Years)))
	}

	if len(pattern.Years) == 0 {
		return models.ForecastResult{}, errors.Wrapf(models.ErrInsufficientHistory,
			"all %d lookback years failed for %s", f.yearsBack, req.RequestParams())
	}

	result := models.ForecastResult{
		ForecastData:   make([]models.ForecastPoint, 0, monthsAhead),
		YearsRequested: f.yearsBack,
		YearsUsed:      len(pattern.Years),
		SkippedYears:   pattern.Skipped,
	}
	for _, y := range pattern.Years {
		result.HistoricalData = append(result.HistoricalData, y.Data...)
	}

	start := time.Date(startDate.Year(), startDate.Month(), startDate.Day(), 0, 0, 0, 0, time.UTC)
	for offset := 0; offset < monthsAhead; offset++ {
		result.ForecastData = append(result.ForecastData, forecastPoint(pattern.Years, start.AddDate(0, offset, 0)))
	}

	var sumT, sumR, sumW float64
	for _, p := range result.ForecastData {
		sumT += p.Temperature
		sumR += p.Rainfall
		sumW += p.Windspeed
	}
	n := float64(len(result.ForecastData))
	result.AvgTemperature = insights.Round1(sumT / n)
	result.AvgRainfall = insights.Round2(sumR / n)
	result.AvgWindspeed = insights.Round1(sumW / n)
	result.ForecastStartDate = result.ForecastData[0].Date
	result.ForecastEndDate = result.ForecastData[len(result.ForecastData)-1].Date

	if result.Degraded() {
		f.l.Warning("forecast built from partial history", map[string]any{
			"params":    req.RequestParams(),
			"requested": result.YearsRequested,
			"used":      result.YearsUsed,
		})
	}

	return result, nil
}

// forecastPoint samples each year at the target month/day, falling back to the
// middle of that year's window when the exact day is absent. years must be
// oldest first; the slice position is the recency rank.
func forecastPoint(years []models.HistoricalYearData, date time.Time) models.ForecastPoint {
	temps := make([]RankedValue, 0, len(years))
	rains := make([]RankedValue, 0, len(years))
	winds := make([]RankedValue, 0, len(years))

	for rank, y := range years {
		key := fmt.Sprintf("%04d%02d%02d", y.Year, date.Month(), date.Day())
		idx := models.FindByDate(y.Data, key)
		if idx < 0 {
			idx = len(y.Data) / 2
		}
		obs := y.Data[idx]

		temps = append(temps, RankedValue{Value: obs.Temperature, Rank: rank})
		rains = append(rains, RankedValue{Value: obs.Rainfall, Rank: rank})
		winds = append(winds, RankedValue{Value: obs.Windspeed, Rank: rank})
	}

	temp := WeightedAverage(temps)
	rain := WeightedAverage(rains)
	wind := WeightedAverage(winds)

	tLow, tHigh := ConfidenceInterval(temp, StdDev(temps, temp))
	rLow, rHigh := ConfidenceInterval(rain, StdDev(rains, rain))
	wLow, wHigh := ConfidenceInterval(wind, StdDev(winds, wind))

	return models.ForecastPoint{
		Date:                  date.Format(time.DateOnly),
		Temperature:           insights.Round1(temp),
		Rainfall:              max(0, insights.Round2(rain)),
		Windspeed:             insights.Round1(wind),
		TemperatureConfidence: models.Interval{insights.Round1(tLow), insights.Round1(tHigh)},
		RainfallConfidence:    models.Interval{max(0, insights.Round2(rLow)), insights.Round2(rHigh)},
		WindspeedConfidence:   models.Interval{max(0, insights.Round1(wLow)), insights.Round1(wHigh)},
	}
}
