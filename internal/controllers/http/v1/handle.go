package http

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"weather-insights/internal/export"
	"weather-insights/internal/models"
	"weather-insights/internal/store"
)

var validate = validator.New()

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error" example:"Missing required parameter: lat"`
}

// badRequest is a client input problem detected in the handler itself.
type badRequest string

func (b badRequest) Error() string { return string(b) }

// parseCoordinates reads and range-checks the lat and lon query parameters.
func parseCoordinates(c *fiber.Ctx) (lat, lon float64, err error) {
	latParam := c.Query("lat")
	lonParam := c.Query("lon")

	if latParam == "" {
		return 0, 0, badRequest("Missing required parameter: lat")
	}
	if lonParam == "" {
		return 0, 0, badRequest("Missing required parameter: lon")
	}

	lat, err = strconv.ParseFloat(latParam, 64)
	if err != nil {
		return 0, 0, badRequest("Invalid latitude format")
	}
	if math.IsNaN(lat) || lat < -90 || lat > 90 {
		return 0, 0, badRequest("Latitude must be between -90 and 90")
	}

	lon, err = strconv.ParseFloat(lonParam, 64)
	if err != nil {
		return 0, 0, badRequest("Invalid longitude format")
	}
	if math.IsNaN(lon) || lon < -180 || lon > 180 {
		return 0, 0, badRequest("Longitude must be between -180 and 180")
	}

	return lat, lon, nil
}

// parseDate accepts YYYY-MM-DD or the compact YYYYMMDD form.
func parseDate(name, value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, badRequest("Missing required parameter: " + name)
	}
	for _, layout := range []string{time.DateOnly, models.DateKeyLayout} {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, badRequest(fmt.Sprintf("Invalid %s format, expected YYYY-MM-DD", name))
}

// queryInt returns def when the parameter is absent and rejects non-integers.
func queryInt(c *fiber.Ctx, name string, def int) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, badRequest(fmt.Sprintf("Invalid %s format, expected an integer", name))
	}
	return v, nil
}

// splitList turns "a, b,,c" into [a b c].
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err.Error()
	}

	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if fe.Param() != "" {
			parts = append(parts, fmt.Sprintf("%s failed %s=%s", fe.Field(), fe.Tag(), fe.Param()))
		} else {
			parts = append(parts, fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag()))
		}
	}
	return "Invalid request: " + strings.Join(parts, "; ")
}

func statusFor(err error) int {
	var br badRequest
	var verrs validator.ValidationErrors

	switch {
	case errors.As(err, &br), errors.As(err, &verrs),
		errors.Is(err, models.ErrInvalidRange),
		errors.Is(err, export.ErrUnsupportedFormat),
		errors.Is(err, store.ErrInvalidUser):
		return fiber.StatusBadRequest
	case errors.Is(err, models.ErrEmptySeries), errors.Is(err, store.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, models.ErrInsufficientHistory), errors.Is(err, models.ErrProviderUnavailable):
		return fiber.StatusServiceUnavailable
	case errors.Is(err, context.DeadlineExceeded):
		return fiber.StatusGatewayTimeout
	default:
		return fiber.StatusInternalServerError
	}
}

// fail maps err to a status and writes it as an ErrorResponse.
func (r *routes) fail(c *fiber.Ctx, err error) error {
	status := statusFor(err)

	fields := map[string]any{
		"path":   c.Path(),
		"status": status,
	}
	if status >= fiber.StatusInternalServerError {
		r.l.Error(err, fields)
	} else {
		fields["error"] = err.Error()
		r.l.Warning("request rejected", fields)
	}

	msg := err.Error()
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		msg = validationMessage(err)
	}
	if status == fiber.StatusInternalServerError {
		msg = "Internal server error"
	}

	return c.Status(status).JSON(ErrorResponse{Error: msg})
}
