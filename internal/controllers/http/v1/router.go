package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/jonboulle/clockwork"

	"weather-insights/docs"
	"weather-insights/internal/services/forecast"
	"weather-insights/internal/services/weather"
	"weather-insights/pkg/logger"
)

type routes struct {
	service     *weather.WeatherService
	l           *logger.Logger
	clock       clockwork.Clock
	monthsAhead int
}

type Option func(*routes)

// WithClock sets the clock used for default dates.
func WithClock(c clockwork.Clock) Option {
	return func(r *routes) { r.clock = c }
}

// NewRouter registers the documentation and /api/v1 routes on app.
// monthsAhead is the forecast horizon used when a request does not set one.
func NewRouter(
	app *fiber.App,
	weatherService *weather.WeatherService,
	l *logger.Logger,
	monthsAhead int,
	opts ...Option,
) {
	if monthsAhead <= 0 {
		monthsAhead = forecast.DefaultMonthsAhead
	}

	r := &routes{
		service:     weatherService,
		l:           l,
		clock:       clockwork.NewRealClock(),
		monthsAhead: monthsAhead,
	}
	for _, opt := range opts {
		opt(r)
	}

	// Swagger documentation
	app.Get("/swagger/doc.json", func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return c.SendString(docs.SwaggerInfo.ReadDoc())
	})

	app.Get("/swagger/*", swagger.New(swagger.Config{
		URL:         "/swagger/doc.json",
		DeepLinking: true,
	}))

	v1 := app.Group("/api/v1")

	v1.Get("/analysis", r.handleAnalysis)
	v1.Get("/analysis/export", r.handleAnalysisExport)

	v1.Get("/forecast", r.handleForecast)
	v1.Get("/forecast/export", r.handleForecastExport)
	v1.Get("/predictions", r.handlePredictions)
	v1.Post("/model-forecast", r.handleModelForecast)
	v1.Get("/model-forecast/health", r.handleModelForecastHealth)
	v1.Get("/model-forecast/export", r.handleModelForecastExport)
	v1.Post("/model-forecast/export", r.handleModelForecastExport)

	v1.Get("/locations", r.handleLocations)

	users := v1.Group("/users/:user")
	users.Get("/favorites", r.handleListFavorites)
	users.Post("/favorites", r.handleAddFavorite)
	users.Delete("/favorites/:id", r.handleRemoveFavorite)
	users.Get("/history", r.handleHistory)
	users.Delete("/history/:id", r.handleDeleteHistory)
	users.Get("/preferences", r.handleGetPreferences)
	users.Put("/preferences", r.handleSavePreferences)
}
