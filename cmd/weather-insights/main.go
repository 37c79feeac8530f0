package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"weather-insights/config"
	v1 "weather-insights/internal/controllers/http/v1"
	"weather-insights/internal/repositories"
	"weather-insights/internal/scheduler"
	"weather-insights/internal/services/forecast"
	"weather-insights/internal/services/weather"
	"weather-insights/internal/store"
	"weather-insights/pkg/httpserver"
	"weather-insights/pkg/logger"
	"weather-insights/pkg/observe"
)

// @title Weather Insights API
// @version 1.0.0
// @description Historical weather analysis, risk classification, pattern-based forecasts and recommendations.
// @description Observations come from NASA POWER; short-range predictions from OpenWeather; geocoding from Nominatim.

// @contact.name Weather Insights Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

// @tag.name Analysis
// @tag.description Historical analysis, risk and recommendations
// @tag.name Forecast
// @tag.description Pattern-based and short-range forecasts
// @tag.name Users
// @tag.description Favorites, history and preferences
func main() {
	ctx, cancel := context.WithCancel(context.Background())

	cnf, err := config.NewConfig()
	if err != nil {
		log.Fatalf("cannot load configuration: %v", err)
	}

	sentryHook := observe.NewSentryHook(cnf.App.Env, cnf.App.Name, 0, cnf.Sentry.Debug, cnf.Sentry.DSN)

	writers := []io.Writer{os.Stdout}
	if cnf.Sentry.DSN != "" {
		writers = append(writers, sentryHook)
	}

	l := logger.New(logger.Options{
		AppName: cnf.App.Name,
		AppEnv:  cnf.App.Env,
		Level:   cnf.Log.Level,
	}, writers...)
	sentryHook.SetLogger(l)

	metrics := observe.NewMetrics()

	app := httpserver.InitFiberServer(cnf.App, cnf.Server)

	repos := repositories.InitWeatherRepositories(cnf, l, metrics)

	var forecaster *forecast.Forecaster
	if repos.Historical != nil {
		forecaster = forecast.NewForecaster(repos.Historical, l,
			forecast.WithMetrics(metrics),
			forecast.WithYearsBack(cnf.Forecast.YearsBack),
			forecast.WithWindowDays(cnf.Forecast.WindowDays),
			forecast.WithConcurrency(cnf.Forecast.Concurrency),
		)
	} else {
		l.Warning("no historical provider configured; forecasts disabled", nil)
	}

	st := store.NewMemoryStore()

	service := weather.NewWeatherService(repos, forecaster, st, l, metrics)

	v1.NewRouter(
		app,
		service,
		l,
		cnf.Forecast.MonthsAhead,
	)

	var digest *scheduler.Scheduler
	if cnf.Scheduler.Enabled {
		digest, err = scheduler.New(cnf.Scheduler, st, repos.Predictions, l, scheduler.WithMetrics(metrics))
		if err != nil {
			l.Fatal("cannot create the scheduler", map[string]any{"err": err})
		}
		if err = digest.Start(); err != nil {
			l.Fatal("cannot start the scheduler", map[string]any{"err": err})
		}
	}

	go func() {
		if err := app.Listen(":" + cnf.Server.Port); err != nil {
			l.Fatal("cannot run the server", map[string]any{"err": err})
		}
	}()

	l.Info("application started successfully", map[string]any{
		"port":    cnf.Server.Port,
		"env":     cnf.App.Env,
		"version": cnf.App.Version,
	})

	sigCh := make(chan os.Signal, 2)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer func() {
		l.Warning("stopping application services")
		signal.Stop(sigCh)
		close(sigCh)

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if digest != nil {
			digest.Stop()
		}
		_ = app.ShutdownWithContext(shutdownCtx)
		sentryHook.Flush()
		_ = l.Stop()
		cancel()
	}()

	select {
	case <-sigCh:
		fmt.Println("received shutdown signal")
	case <-ctx.Done():
		fmt.Println("context cancelled")
	}
}
