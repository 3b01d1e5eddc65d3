package hos

import (
	"errors"
	"math"
	"testing"
)

var (
	newYork    = GeoPoint{Lat: 40.7128, Lon: -74.0060}
	losAngeles = GeoPoint{Lat: 34.0522, Lon: -118.2437}
	dallas     = GeoPoint{Lat: 32.7767, Lon: -96.7970}
	houston    = GeoPoint{Lat: 29.7604, Lon: -95.3698}
)

func TestDistanceNewYorkToLosAngeles(t *testing.T) {
	got, err := Distance(newYork, losAngeles)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(got-2446) > 5 {
		t.Fatalf("distance = %.2f, want about 2446", got)
	}
}

func TestDistanceSymmetric(t *testing.T) {
	pairs := [][2]GeoPoint{
		{newYork, losAngeles},
		{dallas, houston},
		{{Lat: -33.86, Lon: 151.2}, {Lat: 51.5, Lon: -0.12}},
	}
	for _, p := range pairs {
		ab, err := Distance(p[0], p[1])
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		ba, err := Distance(p[1], p[0])
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ab != ba {
			t.Errorf("distance(%v, %v) = %v, reverse = %v", p[0], p[1], ab, ba)
		}
	}
}

func TestDistanceToSelfIsZero(t *testing.T) {
	got, err := Distance(dallas, dallas)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 0 {
		t.Fatalf("distance = %v, want 0", got)
	}
}

func TestDistanceInvalidLocation(t *testing.T) {
	bad := []GeoPoint{
		{Lat: math.NaN(), Lon: 0},
		{Lat: 0, Lon: math.Inf(1)},
		{Lat: 91, Lon: 0},
		{Lat: -90.5, Lon: 0},
		{Lat: 0, Lon: 180.01},
		{Lat: 0, Lon: -181},
	}
	for _, p := range bad {
		if _, err := Distance(p, dallas); !errors.Is(err, ErrInvalidLocation) {
			t.Errorf("Distance(%v) err = %v, want ErrInvalidLocation", p, err)
		}
		if _, err := Distance(dallas, p); !errors.Is(err, ErrInvalidLocation) {
			t.Errorf("Distance(_, %v) err = %v, want ErrInvalidLocation", p, err)
		}
	}
}
