package hos

type RestStopType string

const (
	RestStopThirtyMinute RestStopType = "30_minute_break"
	RestStopTenHour      RestStopType = "10_hour_break"
)

const (
	breakAfterDrivingHours = 8.0
	dailyDrivingLimitHours = 11.0
)

// RestStop is an advisory break requirement derived from the total
// driving estimate. The simulator places its own breaks.
type RestStop struct {
	Type          RestStopType
	DurationHours float64
	Reason        string
}

func PlanRestStops(drivingHours float64) []RestStop {
	stops := make([]RestStop, 0, 2)
	if drivingHours > breakAfterDrivingHours {
		stops = append(stops, RestStop{
			Type:          RestStopThirtyMinute,
			DurationHours: 0.5,
			Reason:        "Required 30-minute break after 8 hours driving",
		})
	}
	if drivingHours > dailyDrivingLimitHours {
		stops = append(stops, RestStop{
			Type:          RestStopTenHour,
			DurationHours: 10,
			Reason:        "Required 10-hour break - daily driving limit exceeded",
		})
	}
	return stops
}
