package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"weather-insights/internal/export"
	"weather-insights/internal/models"
)

type forecastQuery struct {
	Months int `validate:"gte=1,lte=24"`
}

func (r *routes) bindForecast(c *fiber.Ctx) (models.ForecastRequest, error) {
	lat, lon, err := parseCoordinates(c)
	if err != nil {
		return models.ForecastRequest{}, err
	}

	now := r.clock.Now().UTC()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if s := c.Query("start"); s != "" {
		if start, err = parseDate("start", s); err != nil {
			return models.ForecastRequest{}, err
		}
	}

	months, err := queryInt(c, "months", r.monthsAhead)
	if err != nil {
		return models.ForecastRequest{}, err
	}

	q := forecastQuery{Months: months}
	if err := validate.Struct(q); err != nil {
		return models.ForecastRequest{}, err
	}

	return models.ForecastRequest{
		Lat:         lat,
		Lon:         lon,
		StartDate:   start,
		MonthsAhead: q.Months,
	}, nil
}

// GetForecast godoc
// @Summary Project historical patterns forward
// @Description Builds a monthly forecast from recency-weighted observations of the same calendar window in past years
// @Tags Forecast
// @Produce json
// @Param lat query number true "Latitude coordinate (-90 to 90)" example(40.7128)
// @Param lon query number true "Longitude coordinate (-180 to 180)" example(-74.006)
// @Param start query string false "First forecast date (YYYY-MM-DD), defaults to today"
// @Param months query int false "Months ahead (1 to 24)" example(12)
// @Success 200 {object} models.ForecastResult
// @Failure 400 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse "Not enough history or provider unavailable"
// @Router /api/v1/forecast [get]
func (r *routes) handleForecast(c *fiber.Ctx) error {
	req, err := r.bindForecast(c)
	if err != nil {
		return r.fail(c, err)
	}

	result, err := r.service.Forecast(c.Context(), req)
	if err != nil {
		return r.fail(c, err)
	}

	return c.JSON(result)
}

// ExportForecast godoc
// @Summary Export a forecast
// @Description Builds a forecast and returns it as a CSV or JSON download
// @Tags Forecast
// @Produce json
// @Produce text/csv
// @Param lat query number true "Latitude coordinate (-90 to 90)"
// @Param lon query number true "Longitude coordinate (-180 to 180)"
// @Param start query string false "First forecast date (YYYY-MM-DD)"
// @Param months query int false "Months ahead (1 to 24)"
// @Param location query string false "Display name of the location"
// @Param format query string false "csv or json (default json)"
// @Success 200 {file} file
// @Failure 400 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /api/v1/forecast/export [get]
func (r *routes) handleForecastExport(c *fiber.Ctx) error {
	format, err := export.ParseFormat(c.Query("format", string(export.FormatJSON)))
	if err != nil {
		return r.fail(c, err)
	}

	req, err := r.bindForecast(c)
	if err != nil {
		return r.fail(c, err)
	}

	result, err := r.service.Forecast(c.Context(), req)
	if err != nil {
		return r.fail(c, err)
	}

	location := c.Query("location")
	body, err := export.Forecast(result, location, format)
	if err != nil {
		return r.fail(c, err)
	}

	return sendDownload(c, body, export.Filename("forecast", location, format), format)
}

// GetPredictions godoc
// @Summary Short-range daily predictions
// @Description Returns the provider's daily forecast for the coming days with a per-day risk level
// @Tags Forecast
// @Produce json
// @Param lat query number true "Latitude coordinate (-90 to 90)"
// @Param lon query number true "Longitude coordinate (-180 to 180)"
// @Success 200 {array} models.DailyPrediction
// @Failure 400 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /api/v1/predictions [get]
func (r *routes) handlePredictions(c *fiber.Ctx) error {
	lat, lon, err := parseCoordinates(c)
	if err != nil {
		return r.fail(c, err)
	}

	predictions, err := r.service.DailyPredictions(c.Context(), lat, lon)
	if err != nil {
		return r.fail(c, err)
	}

	return c.JSON(predictions)
}

// PostModelForecast godoc
// @Summary Statistical model forecast
// @Description Forwards the request to the forecasting service
// @Tags Forecast
// @Accept json
// @Produce json
// @Param request body models.ModelForecastRequest true "Forecast request"
// @Success 200 {object} models.ModelForecastResponse
// @Failure 400 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /api/v1/model-forecast [post]
func (r *routes) handleModelForecast(c *fiber.Ctx) error {
	req, err := bindModelForecast(c)
	if err != nil {
		return r.fail(c, err)
	}

	resp, err := r.service.ModelForecast(c.Context(), req)
	if err != nil {
		return r.fail(c, err)
	}

	return c.JSON(resp)
}

// bindModelForecast reads the request from a JSON body on POST and from
// lat, lon, start, end and months query parameters otherwise.
func bindModelForecast(c *fiber.Ctx) (models.ModelForecastRequest, error) {
	var req models.ModelForecastRequest

	if c.Method() == fiber.MethodPost {
		if err := c.BodyParser(&req); err != nil {
			return models.ModelForecastRequest{}, badRequest("Invalid request body")
		}
	} else {
		lat, lon, err := parseCoordinates(c)
		if err != nil {
			return models.ModelForecastRequest{}, err
		}
		months, err := queryInt(c, "months", 0)
		if err != nil {
			return models.ModelForecastRequest{}, err
		}
		req = models.ModelForecastRequest{
			Latitude:       lat,
			Longitude:      lon,
			StartDate:      c.Query("start"),
			EndDate:        c.Query("end"),
			ForecastMonths: months,
		}
	}

	if err := validate.Struct(req); err != nil {
		return models.ModelForecastRequest{}, err
	}
	return req, nil
}

// ExportModelForecast godoc
// @Summary Export a statistical model forecast
// @Description Runs the forecasting service and returns the result as a CSV or JSON download. POST takes the request as JSON, GET as query parameters.
// @Tags Forecast
// @Accept json
// @Produce json
// @Produce text/csv
// @Param request body models.ModelForecastRequest false "Forecast request (POST)"
// @Param lat query number false "Latitude (GET)"
// @Param lon query number false "Longitude (GET)"
// @Param start query string false "Historical start YYYYMMDD (GET)"
// @Param end query string false "Historical end YYYYMMDD (GET)"
// @Param months query int false "Months ahead (GET)"
// @Param location query string false "Display name of the location"
// @Param format query string false "csv or json (default json)"
// @Success 200 {file} file
// @Failure 400 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /api/v1/model-forecast/export [get]
// @Router /api/v1/model-forecast/export [post]
func (r *routes) handleModelForecastExport(c *fiber.Ctx) error {
	format, err := export.ParseFormat(c.Query("format", string(export.FormatJSON)))
	if err != nil {
		return r.fail(c, err)
	}

	req, err := bindModelForecast(c)
	if err != nil {
		return r.fail(c, err)
	}

	resp, err := r.service.ModelForecast(c.Context(), req)
	if err != nil {
		return r.fail(c, err)
	}

	location := c.Query("location")
	body, err := export.ModelForecast(resp, location, format)
	if err != nil {
		return r.fail(c, err)
	}

	return sendDownload(c, body, export.Filename("model-forecast", location, format), format)
}

// ModelForecastHealth godoc
// @Summary Forecasting service health
// @Tags Forecast
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /api/v1/model-forecast/health [get]
func (r *routes) handleModelForecastHealth(c *fiber.Ctx) error {
	if !r.service.ModelForecastHealthy(c.Context()) {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "unavailable"})
	}
	return c.JSON(fiber.Map{"status": "ok"})
}
