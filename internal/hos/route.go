package hos

import (
	"fmt"
	"math"
)

const fuelIntervalMiles = 1000.0

// TripStops holds the three resolved trip endpoints together with the
// labels the caller used for them.
type TripStops struct {
	CurrentLabel string
	PickupLabel  string
	DropoffLabel string
	Current      GeoPoint
	Pickup       GeoPoint
	Dropoff      GeoPoint
}

type RouteLeg struct {
	From          string
	To            string
	DistanceMiles float64
	DurationHours float64
	Start         GeoPoint
	End           GeoPoint
}

// RouteProfile is the distance/duration profile of a trip: current location
// to pickup, then pickup to dropoff. It is read-only once estimated.
type RouteProfile struct {
	Legs             [2]RouteLeg
	TotalDistance    float64
	TotalDrivingTime float64
	FuelStops        int
	RestStops        []RestStop
	Coordinates      [3]GeoPoint
}

func EstimateRoute(stops TripStops) (RouteProfile, error) {
	first, err := newLeg(stops.CurrentLabel, stops.PickupLabel, stops.Current, stops.Pickup)
	if err != nil {
		return RouteProfile{}, fmt.Errorf("estimate route: leg to pickup: %w", err)
	}
	second, err := newLeg(stops.PickupLabel, stops.DropoffLabel, stops.Pickup, stops.Dropoff)
	if err != nil {
		return RouteProfile{}, fmt.Errorf("estimate route: leg to dropoff: %w", err)
	}

	total := first.DistanceMiles + second.DistanceMiles
	driving := DrivingHours(total)

	return RouteProfile{
		Legs:             [2]RouteLeg{first, second},
		TotalDistance:    total,
		TotalDrivingTime: driving,
		FuelStops:        int(math.Ceil(total / fuelIntervalMiles)),
		RestStops:        PlanRestStops(driving),
		Coordinates:      [3]GeoPoint{stops.Current, stops.Pickup, stops.Dropoff},
	}, nil
}

func newLeg(from, to string, start, end GeoPoint) (RouteLeg, error) {
	miles, err := Distance(start, end)
	if err != nil {
		return RouteLeg{}, err
	}
	return RouteLeg{
		From:          from,
		To:            to,
		DistanceMiles: miles,
		DurationHours: DrivingHours(miles),
		Start:         start,
		End:           end,
	}, nil
}
