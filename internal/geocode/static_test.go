package geocode

import (
	"context"
	"errors"
	"testing"

	"github.com/nurpe/eld-planner/internal/hos"
)

func TestStaticResolverResolve(t *testing.T) {
	r := NewStaticResolver()
	ctx := context.Background()

	tests := []struct {
		label string
		want  hos.GeoPoint
	}{
		{"New York, NY", hos.GeoPoint{Lat: 40.7128, Lon: -74.0060}},
		{"warehouse 7, los angeles, ca 90001", hos.GeoPoint{Lat: 34.0522, Lon: -118.2437}},
		{"  Dallas,   TX ", hos.GeoPoint{Lat: 32.7767, Lon: -96.7970}},
		{"DOWNTOWN SAN JOSE, CA", hos.GeoPoint{Lat: 37.3382, Lon: -121.8863}},
		{"Boise, ID", Fallback},
	}
	for _, tt := range tests {
		got, err := r.Resolve(ctx, tt.label)
		if err != nil {
			t.Fatalf("Resolve(%q): %v", tt.label, err)
		}
		if got != tt.want {
			t.Errorf("Resolve(%q) = %v, want %v", tt.label, got, tt.want)
		}
	}
}

func TestStaticResolverEmptyLabel(t *testing.T) {
	_, err := NewStaticResolver().Resolve(context.Background(), "   ")
	if !errors.Is(err, hos.ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
}

func TestStaticResolverPointsAreValid(t *testing.T) {
	r := NewStaticResolver()
	if len(r.Cities()) != 10 {
		t.Fatalf("cities = %d, want 10", len(r.Cities()))
	}
	for _, name := range r.Cities() {
		p, err := r.Resolve(context.Background(), name)
		if err != nil {
			t.Fatalf("Resolve(%q): %v", name, err)
		}
		if err := p.Validate(); err != nil {
			t.Errorf("%s: %v", name, err)
		}
	}
}
