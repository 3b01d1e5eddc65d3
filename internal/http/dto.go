package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/nurpe/eld-planner/internal/hos"
	"github.com/nurpe/eld-planner/internal/model"
)

type planTripRequest struct {
	CurrentLocation   string      `json:"current_location"`
	PickupLocation    string      `json:"pickup_location"`
	DropoffLocation   string      `json:"dropoff_location"`
	CurrentCycleHours *cycleHours `json:"current_cycle_hours" binding:"required"`
	StartDate         string      `json:"start_date"`
}

// cycleHours accepts either a JSON number or a numeric string.
type cycleHours float64

func (c *cycleHours) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return fmt.Errorf("current_cycle_hours must be a number")
	}

	raw := string(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		raw = strings.TrimSpace(s)
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fmt.Errorf("current_cycle_hours must be a number")
	}
	*c = cycleHours(value)
	return nil
}

type geoPointDTO [2]float64

func toGeoPoint(p hos.GeoPoint) geoPointDTO {
	return geoPointDTO{p.Lat, p.Lon}
}

type routeLegDTO struct {
	From          string         `json:"from"`
	To            string         `json:"to"`
	DistanceMiles float64        `json:"distance_miles"`
	DurationHours float64        `json:"duration_hours"`
	Coordinates   [2]geoPointDTO `json:"coordinates"`
}

type restStopDTO struct {
	Type          string  `json:"type"`
	DurationHours float64 `json:"duration"`
	Reason        string  `json:"reason"`
}

type routeDTO struct {
	Legs              []routeLegDTO  `json:"legs"`
	TotalDistance     float64        `json:"total_distance"`
	TotalDrivingTime  float64        `json:"total_driving_time"`
	FuelStops         int            `json:"fuel_stops"`
	RequiredRestStops []restStopDTO  `json:"required_rest_stops"`
	AllCoordinates    [3]geoPointDTO `json:"all_coordinates"`
}

func toRouteDTO(route hos.RouteProfile) routeDTO {
	legs := make([]routeLegDTO, 0, len(route.Legs))
	for _, leg := range route.Legs {
		legs = append(legs, routeLegDTO{
			From:          leg.From,
			To:            leg.To,
			DistanceMiles: leg.DistanceMiles,
			DurationHours: leg.DurationHours,
			Coordinates:   [2]geoPointDTO{toGeoPoint(leg.Start), toGeoPoint(leg.End)},
		})
	}

	stops := make([]restStopDTO, 0, len(route.RestStops))
	for _, stop := range route.RestStops {
		stops = append(stops, restStopDTO{
			Type:          string(stop.Type),
			DurationHours: stop.DurationHours,
			Reason:        stop.Reason,
		})
	}

	var coords [3]geoPointDTO
	for i, p := range route.Coordinates {
		coords[i] = toGeoPoint(p)
	}

	return routeDTO{
		Legs:              legs,
		TotalDistance:     route.TotalDistance,
		TotalDrivingTime:  route.TotalDrivingTime,
		FuelStops:         route.FuelStops,
		RequiredRestStops: stops,
		AllCoordinates:    coords,
	}
}

type remarkDTO struct {
	Time     string `json:"time"`
	Location string `json:"location"`
	Status   string `json:"status"`
	Activity string `json:"activity"`
}

type eldLogDTO struct {
	ID                string      `json:"id"`
	TripID            string      `json:"trip_id"`
	Date              string      `json:"date"`
	TotalMiles        int         `json:"total_miles"`
	DriverName        string      `json:"driver_name"`
	CarrierName       string      `json:"carrier_name"`
	TimeSlots         []string    `json:"time_slots"`
	OffDutyHours      float64     `json:"off_duty_hours"`
	SleeperBerthHours float64     `json:"sleeper_berth_hours"`
	DrivingHours      float64     `json:"driving_hours"`
	OnDutyHours       float64     `json:"on_duty_hours"`
	Remarks           []remarkDTO `json:"remarks"`
}

func toLogDTOs(logs []model.ELDLog) []eldLogDTO {
	out := make([]eldLogDTO, 0, len(logs))
	for _, log := range logs {
		tl := log.Timeline
		slots := make([]string, len(tl.Slots))
		for i, s := range tl.Slots {
			slots[i] = s.String()
		}
		remarks := make([]remarkDTO, 0, len(tl.Remarks))
		for _, r := range tl.Remarks {
			remarks = append(remarks, remarkDTO{
				Time:     r.Time,
				Location: r.Location,
				Status:   r.Status.String(),
				Activity: r.Activity,
			})
		}
		out = append(out, eldLogDTO{
			ID:                log.ID.String(),
			TripID:            log.TripID.String(),
			Date:              tl.DateString(),
			TotalMiles:        tl.TotalMiles,
			DriverName:        log.DriverName,
			CarrierName:       log.CarrierName,
			TimeSlots:         slots,
			OffDutyHours:      tl.OffDutyHours,
			SleeperBerthHours: tl.SleeperBerthHours,
			DrivingHours:      tl.DrivingHours,
			OnDutyHours:       tl.OnDutyHours,
			Remarks:           remarks,
		})
	}
	return out
}

type complianceDTO struct {
	TotalDrivingHours   float64  `json:"total_driving_hours"`
	TotalOnDutyHours    float64  `json:"total_on_duty_hours"`
	ProjectedCycleHours float64  `json:"projected_cycle_hours"`
	Violations          []string `json:"violations"`
	Warnings            []string `json:"warnings"`
	Compliant           bool     `json:"compliant"`
}

func toComplianceDTO(r hos.ComplianceReport) complianceDTO {
	violations, warnings := r.Violations, r.Warnings
	if violations == nil {
		violations = []string{}
	}
	if warnings == nil {
		warnings = []string{}
	}
	return complianceDTO{
		TotalDrivingHours:   r.TotalDrivingHours,
		TotalOnDutyHours:    r.TotalOnDutyHours,
		ProjectedCycleHours: r.ProjectedCycleHours,
		Violations:          violations,
		Warnings:            warnings,
		Compliant:           r.Compliant,
	}
}

type tripDTO struct {
	ID                string  `json:"id"`
	CurrentLocation   string  `json:"current_location"`
	PickupLocation    string  `json:"pickup_location"`
	DropoffLocation   string  `json:"dropoff_location"`
	CurrentCycleHours float64 `json:"current_cycle_hours"`
	StartDate         string  `json:"start_date"`
	CreatedAt         string  `json:"created_at"`
	DayCount          *int64  `json:"day_count,omitempty"`
}

func toTripDTO(t model.Trip) tripDTO {
	return tripDTO{
		ID:                t.ID.String(),
		CurrentLocation:   t.CurrentLocation,
		PickupLocation:    t.PickupLocation,
		DropoffLocation:   t.DropoffLocation,
		CurrentCycleHours: t.CurrentCycleHours,
		StartDate:         t.StartDate.Format("2006-01-02"),
		CreatedAt:         t.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func toTripSummaryDTOs(rows []model.TripSummary) []tripDTO {
	out := make([]tripDTO, 0, len(rows))
	for _, row := range rows {
		dto := toTripDTO(model.Trip{
			ID:                row.ID,
			CurrentLocation:   row.CurrentLocation,
			PickupLocation:    row.PickupLocation,
			DropoffLocation:   row.DropoffLocation,
			CurrentCycleHours: row.CurrentCycleHours,
			StartDate:         row.StartDate,
			CreatedAt:         row.CreatedAt,
		})
		days := row.DayCount
		dto.DayCount = &days
		out = append(out, dto)
	}
	return out
}
