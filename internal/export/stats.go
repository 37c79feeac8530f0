package export

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"encoding/json"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"weather-insights/internal/models"
	"weather-insights/internal/services/insights"
)

const (
	locationPrefix = "Location: "
	summaryPrefix  = "Summary: "
)

var statsHeader = []string{"Date", "Temperature (°C)", "Rainfall (mm)", "Wind Speed (m/s)"}

// ErrMalformed is returned when an exported document cannot be read back.
var ErrMalformed = errors.New("malformed export")

type statsSummary struct {
	AvgTemperature float64 `json:"avgTemperature"`
	MaxTemperature float64 `json:"maxTemperature"`
	MinTemperature float64 `json:"minTemperature"`
	AvgRainfall    float64 `json:"avgRainfall"`
	MaxRainfall    float64 `json:"maxRainfall"`
	TotalRainfall  float64 `json:"totalRainfall"`
	AvgWindspeed   float64 `json:"avgWindspeed"`
	MaxWindspeed   float64 `json:"maxWindspeed"`
}

type statsDocument struct {
	Location  string                    `json:"location"`
	Summary   statsSummary              `json:"summary"`
	DailyData []models.DailyObservation `json:"dailyData"`
}

func summaryOf(stats models.WeatherStats) statsSummary {
	return statsSummary{
		AvgTemperature: stats.AvgTemperature,
		MaxTemperature: stats.MaxTemperature,
		MinTemperature: stats.MinTemperature,
		AvgRainfall:    stats.AvgRainfall,
		MaxRainfall:    stats.MaxRainfall,
		TotalRainfall:  stats.TotalRainfall,
		AvgWindspeed:   stats.AvgWindspeed,
		MaxWindspeed:   stats.MaxWindspeed,
	}
}

func (s statsSummary) apply(stats *models.WeatherStats) {
	stats.AvgTemperature = s.AvgTemperature
	stats.MaxTemperature = s.MaxTemperature
	stats.MinTemperature = s.MinTemperature
	stats.AvgRainfall = s.AvgRainfall
	stats.MaxRainfall = s.MaxRainfall
	stats.TotalRainfall = s.TotalRainfall
	stats.AvgWindspeed = s.AvgWindspeed
	stats.MaxWindspeed = s.MaxWindspeed
}

type summaryField struct {
	key string
	v   *float64
}

// fields lists the summary in document order. Keys match the JSON export.
func (s *statsSummary) fields() []summaryField {
	return []summaryField{
		{"avgTemperature", &s.AvgTemperature},
		{"maxTemperature", &s.MaxTemperature},
		{"minTemperature", &s.MinTemperature},
		{"avgRainfall", &s.AvgRainfall},
		{"maxRainfall", &s.MaxRainfall},
		{"totalRainfall", &s.TotalRainfall},
		{"avgWindspeed", &s.AvgWindspeed},
		{"maxWindspeed", &s.MaxWindspeed},
	}
}

func (s statsSummary) line() string {
	fields := s.fields()
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f.key+"="+number(*f.v))
	}
	return summaryPrefix + strings.Join(parts, "; ")
}

func parseSummaryLine(line string) (statsSummary, error) {
	values := make(map[string]string)
	for _, part := range strings.Split(strings.TrimPrefix(line, summaryPrefix), ";") {
		key, value, ok := strings.Cut(strings.TrimSpace(part), "=")
		if !ok {
			return statsSummary{}, errors.Wrapf(ErrMalformed, "summary field %q", part)
		}
		values[key] = value
	}

	var s statsSummary
	for _, f := range s.fields() {
		raw, ok := values[f.key]
		if !ok {
			return statsSummary{}, errors.Wrapf(ErrMalformed, "summary is missing %s", f.key)
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return statsSummary{}, errors.Wrapf(ErrMalformed, "summary %s: %v", f.key, err)
		}
		*f.v = v
	}

	return s, nil
}

// StatsCSV renders a Location line and a Summary line followed by one row per day.
// Days missing a rainfall or wind value read as 0 in the rows, so the summary is
// carried separately.
func StatsCSV(stats models.WeatherStats, location string) ([]byte, error) {
	records := make([][]string, 0, len(stats.DailyData)+1)
	records = append(records, statsHeader)
	for _, d := range stats.DailyData {
		records = append(records, []string{d.Date, number(d.Temperature), number(d.Rainfall), number(d.Windspeed)})
	}

	preamble := []string{
		locationPrefix + singleLine(location),
		summaryOf(stats).line(),
	}

	return writeCSV(preamble, records)
}

// StatsJSON renders the summary and the daily rows.
func StatsJSON(stats models.WeatherStats, location string) ([]byte, error) {
	daily := stats.DailyData
	if daily == nil {
		daily = []models.DailyObservation{}
	}

	return writeJSON(statsDocument{
		Location:  location,
		Summary:   summaryOf(stats),
		DailyData: daily,
	})
}

// ParseStatsJSON reads a StatsJSON document back.
func ParseStatsJSON(data []byte) (models.WeatherStats, string, error) {
	var doc statsDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return models.WeatherStats{}, "", errors.Wrap(ErrMalformed, err.Error())
	}

	stats := models.WeatherStats{DailyData: doc.DailyData}
	doc.Summary.apply(&stats)

	return stats, doc.Location, nil
}

// ParseStatsCSV reads a StatsCSV document back. Documents without a Summary
// line get their summary recomputed from the daily rows.
func ParseStatsCSV(data []byte) (models.WeatherStats, string, error) {
	br := bufio.NewReader(bytes.NewReader(data))

	first, err := readLine(br)
	if err != nil {
		return models.WeatherStats{}, "", err
	}
	if !strings.HasPrefix(first, locationPrefix) {
		return models.WeatherStats{}, "", errors.Wrap(ErrMalformed, "missing location line")
	}
	location := strings.TrimPrefix(first, locationPrefix)

	var (
		summary    statsSummary
		hasSummary bool
		body       io.Reader = br
	)
	second, err := readLine(br)
	if err != nil {
		return models.WeatherStats{}, "", err
	}
	if strings.HasPrefix(second, summaryPrefix) {
		if summary, err = parseSummaryLine(second); err != nil {
			return models.WeatherStats{}, "", err
		}
		hasSummary = true
	} else {
		body = io.MultiReader(strings.NewReader(second+"\n"), br)
	}

	r := csv.NewReader(body)
	r.FieldsPerRecord = len(statsHeader)

	records, err := r.ReadAll()
	if err != nil {
		return models.WeatherStats{}, "", errors.Wrap(ErrMalformed, err.Error())
	}
	if len(records) == 0 {
		return models.WeatherStats{}, "", errors.Wrap(ErrMalformed, "missing header")
	}
	if !slices.Equal(records[0], statsHeader) {
		return models.WeatherStats{}, "", errors.Wrapf(ErrMalformed, "unexpected header %q", strings.Join(records[0], ","))
	}

	daily := make([]models.DailyObservation, 0, len(records)-1)
	for i, rec := range records[1:] {
		d, err := parseDailyRow(rec)
		if err != nil {
			return models.WeatherStats{}, "", errors.Wrapf(ErrMalformed, "row %d: %v", i+1, err)
		}
		daily = append(daily, d)
	}

	if !hasSummary {
		stats, err := insights.Aggregate(models.RawFromDaily(daily))
		if err != nil {
			return models.WeatherStats{}, "", err
		}
		return stats, location, nil
	}

	if len(daily) == 0 {
		return models.WeatherStats{}, "", errors.Wrap(models.ErrEmptySeries, "no daily rows")
	}
	stats := models.WeatherStats{DailyData: daily}
	summary.apply(&stats)

	return stats, location, nil
}

func readLine(br *bufio.Reader) (string, error) {
	line, err := br.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", errors.Wrap(ErrMalformed, err.Error())
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func parseDailyRow(rec []string) (models.DailyObservation, error) {
	values := make([]float64, 3)
	for i := range values {
		v, err := strconv.ParseFloat(rec[i+1], 64)
		if err != nil {
			return models.DailyObservation{}, err
		}
		values[i] = v
	}

	return models.DailyObservation{
		Date:        rec[0],
		Temperature: values[0],
		Rainfall:    values[1],
		Windspeed:   values[2],
	}, nil
}
