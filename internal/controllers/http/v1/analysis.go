package http

import (
	"github.com/gofiber/fiber/v2"

	"weather-insights/internal/export"
	"weather-insights/internal/models"
	"weather-insights/internal/services/weather"
)

type analysisQuery struct {
	UserType      string   `validate:"omitempty,oneof=individual organization"`
	Sensitivities []string `validate:"dive,oneof=heat cold rain wind"`
}

// bindAnalysis reads the shared analysis query parameters.
func bindAnalysis(c *fiber.Ctx) (weather.AnalyzeRequest, error) {
	lat, lon, err := parseCoordinates(c)
	if err != nil {
		return weather.AnalyzeRequest{}, err
	}
	start, err := parseDate("start", c.Query("start"))
	if err != nil {
		return weather.AnalyzeRequest{}, err
	}
	end, err := parseDate("end", c.Query("end"))
	if err != nil {
		return weather.AnalyzeRequest{}, err
	}

	req := weather.AnalyzeRequest{
		UserID:   c.Query("user"),
		Location: c.Query("location"),
		Lat:      lat,
		Lon:      lon,
		Start:    start,
		End:      end,
		Save:     c.QueryBool("save", false),
	}

	q := analysisQuery{
		UserType:      c.Query("user_type"),
		Sensitivities: splitList(c.Query("sensitivities")),
	}
	activities := splitList(c.Query("activities"))
	if q.UserType == "" && len(q.Sensitivities) == 0 && len(activities) == 0 {
		return req, nil
	}
	if err := validate.Struct(q); err != nil {
		return weather.AnalyzeRequest{}, err
	}

	prefs := weather.DefaultPreferences()
	if q.UserType != "" {
		prefs.UserType = models.UserType(q.UserType)
	}
	prefs.Activities = activities
	prefs.Sensitivities = q.Sensitivities
	req.Preferences = &prefs

	return req, nil
}

// GetAnalysis godoc
// @Summary Analyze historical weather
// @Description Summarizes daily observations for a location and date window, classifies the weather risk and builds recommendations
// @Tags Analysis
// @Produce json
// @Param lat query number true "Latitude coordinate (-90 to 90)" minimum(-90) maximum(90) example(38.7223)
// @Param lon query number true "Longitude coordinate (-180 to 180)" minimum(-180) maximum(180) example(-9.1393)
// @Param start query string true "Window start (YYYY-MM-DD)" example(2024-07-01)
// @Param end query string true "Window end (YYYY-MM-DD)" example(2024-07-14)
// @Param location query string false "Display name of the location" example(Lisbon, Portugal)
// @Param user query string false "User id whose preferences apply"
// @Param save query boolean false "Save the analysis in the user's history"
// @Param activities query string false "Comma-separated preferred activities" example(hiking,cycling)
// @Param sensitivities query string false "Comma-separated sensitivities (heat, cold, rain, wind)" example(heat)
// @Param user_type query string false "individual or organization"
// @Success 200 {object} models.Analysis
// @Failure 400 {object} ErrorResponse "Bad request - invalid parameters"
// @Failure 404 {object} ErrorResponse "No observations in the window"
// @Failure 503 {object} ErrorResponse "Provider unavailable"
// @Router /api/v1/analysis [get]
func (r *routes) handleAnalysis(c *fiber.Ctx) error {
	req, err := bindAnalysis(c)
	if err != nil {
		return r.fail(c, err)
	}

	analysis, err := r.service.Analyze(c.Context(), req)
	if err != nil {
		return r.fail(c, err)
	}

	return c.JSON(analysis)
}

// ExportAnalysis godoc
// @Summary Export an analysis
// @Description Runs an analysis and returns the daily observations as a CSV or JSON download
// @Tags Analysis
// @Produce json
// @Produce text/csv
// @Param lat query number true "Latitude coordinate (-90 to 90)"
// @Param lon query number true "Longitude coordinate (-180 to 180)"
// @Param start query string true "Window start (YYYY-MM-DD)"
// @Param end query string true "Window end (YYYY-MM-DD)"
// @Param location query string false "Display name of the location"
// @Param format query string false "csv or json (default json)"
// @Success 200 {file} file
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /api/v1/analysis/export [get]
func (r *routes) handleAnalysisExport(c *fiber.Ctx) error {
	format, err := export.ParseFormat(c.Query("format", string(export.FormatJSON)))
	if err != nil {
		return r.fail(c, err)
	}

	req, err := bindAnalysis(c)
	if err != nil {
		return r.fail(c, err)
	}

	analysis, err := r.service.Analyze(c.Context(), req)
	if err != nil {
		return r.fail(c, err)
	}

	body, err := export.Stats(analysis.Stats, analysis.Location, format)
	if err != nil {
		return r.fail(c, err)
	}

	return sendDownload(c, body, export.Filename("analysis", analysis.Location, format), format)
}

func sendDownload(c *fiber.Ctx, body []byte, filename string, format export.Format) error {
	c.Attachment(filename)
	c.Set(fiber.HeaderContentType, format.ContentType())
	return c.Send(body)
}
