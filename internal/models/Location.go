package models

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

var coordinatesRe = regexp.MustCompile(`^(-?\d+\.?\d*)\s*,\s*(-?\d+\.?\d*)$`)

type GeoLocation struct {
	Name      string  `json:"name" example:"Lisbon"`
	Latitude  float64 `json:"latitude" example:"38.7223"`
	Longitude float64 `json:"longitude" example:"-9.1393"`
	Country   string  `json:"country,omitempty" example:"Portugal"`
	State     string  `json:"state,omitempty" example:"Lisboa"`
}

// Display joins the non-empty name parts for presentation.
func (g GeoLocation) Display() string {
	switch {
	case g.State != "" && g.Country != "":
		return fmt.Sprintf("%s, %s, %s", g.Name, g.State, g.Country)
	case g.Country != "":
		return fmt.Sprintf("%s, %s", g.Name, g.Country)
	default:
		return g.Name
	}
}

// ParseCoordinates reads a "lat, lon" pair. ok is false when the input is not
// a coordinate pair or falls outside valid bounds.
func ParseCoordinates(input string) (GeoLocation, bool) {
	m := coordinatesRe.FindStringSubmatch(strings.TrimSpace(input))
	if m == nil {
		return GeoLocation{}, false
	}

	lat, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return GeoLocation{}, false
	}
	lon, err := strconv.ParseFloat(m[2], 64)
	if err != nil {
		return GeoLocation{}, false
	}
	if ValidateCoordinates(lat, lon) != nil {
		return GeoLocation{}, false
	}

	return GeoLocation{
		Name:      fmt.Sprintf("%.4f, %.4f", lat, lon),
		Latitude:  lat,
		Longitude: lon,
	}, true
}

func ValidateCoordinates(lat, lon float64) error {
	if math.IsNaN(lat) || lat < -90 || lat > 90 {
		return errors.Wrapf(ErrInvalidRange, "latitude %v must be between -90 and 90", lat)
	}
	if math.IsNaN(lon) || lon < -180 || lon > 180 {
		return errors.Wrapf(ErrInvalidRange, "longitude %v must be between -180 and 180", lon)
	}
	return nil
}
