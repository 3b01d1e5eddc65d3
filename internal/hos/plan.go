package hos

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"
)

// LocationResolver turns a free-form location label into a coordinate.
type LocationResolver interface {
	Resolve(ctx context.Context, label string) (GeoPoint, error)
}

type TripRequest struct {
	CurrentLocation   string
	PickupLocation    string
	DropoffLocation   string
	CurrentCycleHours float64
	StartDate         time.Time
}

type TripResult struct {
	Route      RouteProfile
	Timelines  []DailyTimeline
	Compliance ComplianceReport
}

func (r TripRequest) Validate() error {
	if strings.TrimSpace(r.CurrentLocation) == "" {
		return fmt.Errorf("%w: current_location is required", ErrInvalidInput)
	}
	if strings.TrimSpace(r.PickupLocation) == "" {
		return fmt.Errorf("%w: pickup_location is required", ErrInvalidInput)
	}
	if strings.TrimSpace(r.DropoffLocation) == "" {
		return fmt.Errorf("%w: dropoff_location is required", ErrInvalidInput)
	}
	if math.IsNaN(r.CurrentCycleHours) || math.IsInf(r.CurrentCycleHours, 0) || r.CurrentCycleHours < 0 {
		return fmt.Errorf("%w: current_cycle_hours must be a non-negative number", ErrInvalidInput)
	}
	if r.StartDate.IsZero() {
		return fmt.Errorf("%w: start date is required", ErrInvalidInput)
	}
	return nil
}

// PlanTrip runs a full trip evaluation: resolve, estimate, simulate, audit.
func PlanTrip(ctx context.Context, req TripRequest, resolver LocationResolver) (*TripResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	stops := TripStops{
		CurrentLabel: req.CurrentLocation,
		PickupLabel:  req.PickupLocation,
		DropoffLabel: req.DropoffLocation,
	}
	targets := []struct {
		label string
		dst   *GeoPoint
	}{
		{req.CurrentLocation, &stops.Current},
		{req.PickupLocation, &stops.Pickup},
		{req.DropoffLocation, &stops.Dropoff},
	}
	for _, t := range targets {
		point, err := resolver.Resolve(ctx, t.label)
		if err != nil {
			return nil, fmt.Errorf("resolve %q: %w", t.label, err)
		}
		*t.dst = point
	}

	route, err := EstimateRoute(stops)
	if err != nil {
		return nil, err
	}

	timelines := Simulate(route, req.StartDate)
	return &TripResult{
		Route:      route,
		Timelines:  timelines,
		Compliance: Evaluate(timelines, req.CurrentCycleHours),
	}, nil
}
