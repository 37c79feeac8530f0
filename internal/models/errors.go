package models

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
)

var (
	// ErrProviderUnavailable marks a failed call to an external weather or forecast service.
	ErrProviderUnavailable = errors.New("provider unavailable")
	// ErrEmptySeries is returned when there is nothing to aggregate.
	ErrEmptySeries = errors.New("empty series")
	// ErrInvalidRange covers bad dates and out-of-bounds coordinates.
	ErrInvalidRange = errors.New("invalid range")
	// ErrInsufficientHistory is returned when no lookback year produced data.
	ErrInsufficientHistory = errors.New("insufficient history")
)

// ProviderError carries the request that failed. It matches ErrProviderUnavailable
// and the underlying cause under errors.Is.
type ProviderError struct {
	Provider string
	Lat, Lon float64
	Detail   string
	Err      error
}

func (e *ProviderError) Error() string {
	msg := fmt.Sprintf("%s: %s at (%.4f, %.4f)", ErrProviderUnavailable, e.Provider, e.Lat, e.Lon)
	if e.Detail != "" {
		msg += " " + e.Detail
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ProviderError) Unwrap() []error {
	return []error{ErrProviderUnavailable, e.Err}
}

// ValidateRange checks a location and date window before anything is fetched.
func ValidateRange(lat, lon float64, start, end time.Time) error {
	if err := ValidateCoordinates(lat, lon); err != nil {
		return err
	}
	if start.IsZero() || end.IsZero() {
		return errors.Wrap(ErrInvalidRange, "start and end dates are required")
	}
	if start.After(end) {
		return errors.Wrapf(ErrInvalidRange, "start date %s is after end date %s",
			start.Format(time.DateOnly), end.Format(time.DateOnly))
	}
	return nil
}
