package hos

import (
	"fmt"
	"math"
)

const (
	earthRadiusMiles = 3956.0
	averageSpeedMPH  = 60.0
)

// GeoPoint is an immutable latitude/longitude pair in degrees.
type GeoPoint struct {
	Lat float64
	Lon float64
}

func (p GeoPoint) Validate() error {
	if math.IsNaN(p.Lat) || math.IsNaN(p.Lon) || math.IsInf(p.Lat, 0) || math.IsInf(p.Lon, 0) {
		return fmt.Errorf("%w: coordinate is not a number", ErrInvalidLocation)
	}
	if p.Lat < -90 || p.Lat > 90 {
		return fmt.Errorf("%w: latitude %.4f must be between -90 and 90", ErrInvalidLocation, p.Lat)
	}
	if p.Lon < -180 || p.Lon > 180 {
		return fmt.Errorf("%w: longitude %.4f must be between -180 and 180", ErrInvalidLocation, p.Lon)
	}
	return nil
}

// Distance returns the great-circle distance between a and b in miles.
func Distance(a, b GeoPoint) (float64, error) {
	if err := a.Validate(); err != nil {
		return 0, err
	}
	if err := b.Validate(); err != nil {
		return 0, err
	}
	return haversine(a, b), nil
}

func haversine(a, b GeoPoint) float64 {
	lat1, lon1 := radians(a.Lat), radians(a.Lon)
	lat2, lon2 := radians(b.Lat), radians(b.Lon)

	dlat := lat2 - lat1
	dlon := lon2 - lon1

	sinLat := math.Sin(dlat / 2)
	sinLon := math.Sin(dlon / 2)
	h := sinLat*sinLat + math.Cos(lat1)*math.Cos(lat2)*sinLon*sinLon
	return 2 * math.Asin(math.Sqrt(h)) * earthRadiusMiles
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// DrivingHours converts a distance into travel time at the assumed average speed.
func DrivingHours(miles float64) float64 {
	return miles / averageSpeedMPH
}
