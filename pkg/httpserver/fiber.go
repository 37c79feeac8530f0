package httpserver

import (
	"encoding/json"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/healthcheck"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"weather-insights/config"
)

// InitFiberServer builds the app with the management endpoints mounted:
// liveness and readiness under /manage and Prometheus metrics at /metrics.
func InitFiberServer(cnf config.AppConfig, srv config.ServerConfig) *fiber.App {
	s := fiber.New(fiber.Config{
		AppName:      cnf.Name,
		JSONEncoder:  json.Marshal,
		JSONDecoder:  json.Unmarshal,
		BodyLimit:    1 * 1024 * 1024,
		ReadTimeout:  seconds(srv.ReadTimeout),
		WriteTimeout: seconds(srv.WriteTimeout),
		IdleTimeout:  seconds(srv.IdleTimeout),
	})

	s.Use(recover.New(recover.Config{
		EnableStackTrace: true,
	}))
	s.Use(cors.New())
	s.Use(healthcheck.New(healthcheck.Config{
		LivenessEndpoint:  "/manage/health",
		ReadinessEndpoint: "/manage/ready",
	}))

	s.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	return s
}

func seconds(n int) time.Duration {
	return time.Duration(n) * time.Second
}
