package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/nurpe/eld-planner/internal/hos"
)

type Trip struct {
	ID                uuid.UUID
	CurrentLocation   string
	PickupLocation    string
	DropoffLocation   string
	CurrentCycleHours float64
	StartDate         time.Time
	CreatedAt         time.Time
}

// TripSummary is a row of the trip listing.
type TripSummary struct {
	ID                uuid.UUID
	CurrentLocation   string
	PickupLocation    string
	DropoffLocation   string
	CurrentCycleHours float64
	StartDate         time.Time
	CreatedAt         time.Time
	DayCount          int64
}

type ELDLog struct {
	ID          uuid.UUID
	TripID      uuid.UUID
	DriverName  string
	CarrierName string
	Timeline    hos.DailyTimeline
}

// TripPlan is everything produced for one trip evaluation.
type TripPlan struct {
	Trip       Trip
	Route      *hos.RouteProfile // nil when loaded back from storage
	Logs       []ELDLog
	Compliance hos.ComplianceReport
}

func Timelines(logs []ELDLog) []hos.DailyTimeline {
	out := make([]hos.DailyTimeline, 0, len(logs))
	for _, l := range logs {
		out = append(out, l.Timeline)
	}
	return out
}
