package geocode

import (
	"context"
	"fmt"
	"strings"

	"github.com/nurpe/eld-planner/internal/hos"
)

// Fallback is returned for labels that match no known city (geographic
// centre of the contiguous US).
var Fallback = hos.GeoPoint{Lat: 39.8283, Lon: -98.5795}

type city struct {
	name  string
	point hos.GeoPoint
}

var knownCities = []city{
	{"New York, NY", hos.GeoPoint{Lat: 40.7128, Lon: -74.0060}},
	{"Los Angeles, CA", hos.GeoPoint{Lat: 34.0522, Lon: -118.2437}},
	{"Chicago, IL", hos.GeoPoint{Lat: 41.8781, Lon: -87.6298}},
	{"Houston, TX", hos.GeoPoint{Lat: 29.7604, Lon: -95.3698}},
	{"Phoenix, AZ", hos.GeoPoint{Lat: 33.4484, Lon: -112.0740}},
	{"Philadelphia, PA", hos.GeoPoint{Lat: 39.9526, Lon: -75.1652}},
	{"San Antonio, TX", hos.GeoPoint{Lat: 29.4241, Lon: -98.4936}},
	{"San Diego, CA", hos.GeoPoint{Lat: 32.7157, Lon: -117.1611}},
	{"Dallas, TX", hos.GeoPoint{Lat: 32.7767, Lon: -96.7970}},
	{"San Jose, CA", hos.GeoPoint{Lat: 37.3382, Lon: -121.8863}},
}

// StaticResolver resolves labels against a fixed table of US cities. A
// label matches the first city whose name it contains, ignoring case.
type StaticResolver struct {
	cities   []city
	fallback hos.GeoPoint
}

func NewStaticResolver() *StaticResolver {
	return &StaticResolver{cities: knownCities, fallback: Fallback}
}

func (r *StaticResolver) Resolve(_ context.Context, label string) (hos.GeoPoint, error) {
	normalized := strings.ToLower(strings.Join(strings.Fields(label), " "))
	if normalized == "" {
		return hos.GeoPoint{}, fmt.Errorf("%w: location label is empty", hos.ErrInvalidInput)
	}

	for _, c := range r.cities {
		if strings.Contains(normalized, strings.ToLower(c.name)) {
			return c.point, nil
		}
	}
	return r.fallback, nil
}

// Cities lists the names the resolver knows, in match order.
func (r *StaticResolver) Cities() []string {
	names := make([]string, 0, len(r.cities))
	for _, c := range r.cities {
		names = append(names, c.name)
	}
	return names
}
