package hos

import (
	"fmt"
	"math"
	"time"
)

const (
	singleDayStartSlot = 24 // 06:00
	inspectionSlots    = 2
	stopSlots          = 4
	breakSlots         = 2
	maxChunkSlots      = 32 // 8 hours of driving between breaks
	sleeperSlots       = 40 // 00:00-10:00
	lastBreakSlot      = SlotsPerDay - breakSlots

	enRoute = "En route"
)

// grid is the mutable slot array a timeline is built on. Every write is
// clamped to the day; the cursor may run past the end.
type grid struct {
	slots  [SlotsPerDay]DutyStatus
	cursor int
}

func newGrid(start int) *grid {
	return &grid{cursor: start}
}

func (g *grid) fill(from, to int, s DutyStatus) {
	if from < 0 {
		from = 0
	}
	if to > SlotsPerDay {
		to = SlotsPerDay
	}
	for i := from; i < to; i++ {
		g.slots[i] = s
	}
}

// allocate writes n slots of s at the cursor and advances it.
func (g *grid) allocate(n int, s DutyStatus) int {
	start := g.cursor
	g.fill(start, start+n, s)
	g.cursor += n
	return start
}

// Simulate lays the route out on one timeline per calendar day starting at
// startDate. Trips within the daily driving limit fit on a single day;
// longer trips are split into 11-hour driving days.
func Simulate(route RouteProfile, startDate time.Time) []DailyTimeline {
	start := DateOnly(startDate)
	if route.TotalDrivingTime <= dailyDrivingLimitHours {
		return []DailyTimeline{simulateSingleDay(route, start)}
	}
	return simulateMultiDay(route, start)
}

func simulateSingleDay(route RouteProfile, date time.Time) DailyTimeline {
	toPickup, toDropoff := route.Legs[0], route.Legs[1]
	g := newGrid(singleDayStartSlot)

	preTrip := g.allocate(inspectionSlots, OnDuty)

	pickupSlots := drivingSlots(toPickup.DurationHours)
	driveToPickup := g.allocate(pickupSlots, Driving)

	pickup := g.allocate(stopSlots, OnDuty)

	remarks := []RemarkEvent{
		{Time: SlotTime(preTrip), Location: toPickup.From, Status: OnDuty, Activity: "Pre-trip inspection"},
		{Time: SlotTime(driveToPickup), Location: toPickup.From, Status: Driving, Activity: "Driving to pickup"},
		{Time: SlotTime(pickup), Location: toPickup.To, Status: OnDuty, Activity: "Pickup"},
	}

	if float64(pickupSlots)*slotHours >= breakAfterDrivingHours {
		rest := g.allocate(breakSlots, OffDuty)
		remarks = append(remarks, RemarkEvent{
			Time: SlotTime(rest), Location: toPickup.To, Status: OffDuty, Activity: "30-minute break",
		})
	}

	driveToDropoff := g.allocate(drivingSlots(toDropoff.DurationHours), Driving)
	delivery := g.allocate(stopSlots, OnDuty)
	postTrip := g.allocate(inspectionSlots, OnDuty)

	remarks = append(remarks,
		RemarkEvent{Time: SlotTime(driveToDropoff), Location: toDropoff.From, Status: Driving, Activity: "Driving to delivery"},
		RemarkEvent{Time: SlotTime(delivery), Location: toDropoff.To, Status: OnDuty, Activity: "Delivery"},
		RemarkEvent{Time: SlotTime(postTrip), Location: toDropoff.To, Status: OnDuty, Activity: "Post-trip inspection"},
		RemarkEvent{Time: SlotTime(g.cursor), Location: toDropoff.To, Status: OffDuty, Activity: "Off duty"},
	)

	return NewDailyTimeline(date, int(route.TotalDistance), g.slots, remarks)
}

func simulateMultiDay(route RouteProfile, start time.Time) []DailyTimeline {
	days := int(math.Ceil(route.TotalDrivingTime / dailyDrivingLimitHours))
	dailyMiles := int(route.TotalDistance / float64(days))

	timelines := make([]DailyTimeline, 0, days)
	for day := 0; day < days; day++ {
		remaining := route.TotalDrivingTime - float64(day)*dailyDrivingLimitHours
		hours := math.Min(dailyDrivingLimitHours, remaining)

		g := newGrid(0)
		g.allocate(sleeperSlots, SleeperBerth)
		preTrip := g.allocate(inspectionSlots, OnDuty)
		driveStart := g.cursor

		total := int(hours * SlotsPerHour)
		driven := 0
		for driven < total && g.cursor < SlotsPerDay {
			chunk := min(maxChunkSlots, total-driven, SlotsPerDay-g.cursor)
			g.allocate(chunk, Driving)
			driven += chunk

			if driven < total && g.cursor < lastBreakSlot {
				g.allocate(breakSlots, OffDuty)
			}
		}

		remarks := []RemarkEvent{
			{Time: SlotTime(preTrip), Location: enRoute, Status: OnDuty, Activity: fmt.Sprintf("Day %d pre-trip", day+1)},
			{Time: SlotTime(driveStart), Location: enRoute, Status: Driving, Activity: fmt.Sprintf("Driving day %d", day+1)},
		}

		timelines = append(timelines, NewDailyTimeline(start.AddDate(0, 0, day), dailyMiles, g.slots, remarks))
	}
	return timelines
}

func drivingSlots(hours float64) int {
	return int(math.Ceil(hours * SlotsPerHour))
}
