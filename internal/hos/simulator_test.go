package hos

import (
	"math"
	"reflect"
	"testing"
	"time"
)

var tripStart = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

func routeWithHours(toPickup, toDropoff float64) RouteProfile {
	first := RouteLeg{From: "Dallas, TX", To: "Houston, TX", DistanceMiles: toPickup * 60, DurationHours: toPickup}
	second := RouteLeg{From: "Houston, TX", To: "San Antonio, TX", DistanceMiles: toDropoff * 60, DurationHours: toDropoff}
	return RouteProfile{
		Legs:             [2]RouteLeg{first, second},
		TotalDistance:    first.DistanceMiles + second.DistanceMiles,
		TotalDrivingTime: toPickup + toDropoff,
	}
}

func countSlots(tl DailyTimeline, s DutyStatus, from, to int) int {
	n := 0
	for i := from; i < to; i++ {
		if tl.Slots[i] == s {
			n++
		}
	}
	return n
}

func TestSimulateSingleDay(t *testing.T) {
	logs := Simulate(routeWithHours(2, 3), tripStart)
	if len(logs) != 1 {
		t.Fatalf("expected 1 timeline, got %d", len(logs))
	}
	tl := logs[0]

	if !tl.Date.Equal(tripStart) {
		t.Errorf("date = %v, want %v", tl.Date, tripStart)
	}
	if tl.DrivingHours != 5.0 {
		t.Errorf("driving hours = %v, want 5.0", tl.DrivingHours)
	}
	if tl.OnDutyHours != 3.0 {
		t.Errorf("on duty hours = %v, want 3.0", tl.OnDutyHours)
	}
	if tl.SleeperBerthHours != 0 {
		t.Errorf("sleeper hours = %v, want 0", tl.SleeperBerthHours)
	}
	if tl.TotalMiles != 300 {
		t.Errorf("total miles = %d, want 300", tl.TotalMiles)
	}

	// Day starts at 06:00; everything before is off duty.
	if n := countSlots(tl, OffDuty, 0, 24); n != 24 {
		t.Errorf("off duty slots before 06:00 = %d, want 24", n)
	}
	// No 30-minute break: pickup is followed directly by driving.
	if tl.Slots[37] != OnDuty || tl.Slots[38] != Driving {
		t.Errorf("slots 37,38 = %s,%s; want on_duty,driving", tl.Slots[37], tl.Slots[38])
	}

	want := []RemarkEvent{
		{Time: "06:00", Location: "Dallas, TX", Status: OnDuty, Activity: "Pre-trip inspection"},
		{Time: "06:30", Location: "Dallas, TX", Status: Driving, Activity: "Driving to pickup"},
		{Time: "08:30", Location: "Houston, TX", Status: OnDuty, Activity: "Pickup"},
		{Time: "09:30", Location: "Houston, TX", Status: Driving, Activity: "Driving to delivery"},
		{Time: "12:30", Location: "San Antonio, TX", Status: OnDuty, Activity: "Delivery"},
		{Time: "13:30", Location: "San Antonio, TX", Status: OnDuty, Activity: "Post-trip inspection"},
		{Time: "14:00", Location: "San Antonio, TX", Status: OffDuty, Activity: "Off duty"},
	}
	if !reflect.DeepEqual(tl.Remarks, want) {
		t.Errorf("remarks = %+v\nwant %+v", tl.Remarks, want)
	}
}

func TestSimulateSingleDayInsertsBreak(t *testing.T) {
	logs := Simulate(routeWithHours(8.5, 2), tripStart)
	if len(logs) != 1 {
		t.Fatalf("expected 1 timeline, got %d", len(logs))
	}
	tl := logs[0]

	// pre-trip 24-25, driving 26-59, pickup 60-63, break 64-65, driving 66-73
	if tl.Slots[63] != OnDuty {
		t.Errorf("slot 63 = %s, want on_duty", tl.Slots[63])
	}
	if tl.Slots[64] != OffDuty || tl.Slots[65] != OffDuty {
		t.Errorf("slots 64,65 = %s,%s; want off_duty", tl.Slots[64], tl.Slots[65])
	}
	if tl.Slots[66] != Driving {
		t.Errorf("slot 66 = %s, want driving", tl.Slots[66])
	}
	if tl.DrivingHours != 10.5 {
		t.Errorf("driving hours = %v, want 10.5", tl.DrivingHours)
	}

	found := false
	for _, r := range tl.Remarks {
		if r.Activity == "30-minute break" {
			found = true
			if r.Time != "16:00" || r.Status != OffDuty {
				t.Errorf("break remark = %+v", r)
			}
		}
	}
	if !found {
		t.Error("missing 30-minute break remark")
	}
}

func TestSimulateRoundsLegSlotsUp(t *testing.T) {
	tl := Simulate(routeWithHours(1.1, 0.3), tripStart)[0]
	// ceil(4.4) + ceil(1.2) = 5 + 2 slots
	if tl.DrivingHours != 1.75 {
		t.Errorf("driving hours = %v, want 1.75", tl.DrivingHours)
	}
}

func TestSimulateMultiDay(t *testing.T) {
	route, err := EstimateRoute(TripStops{
		CurrentLabel: "New York, NY",
		PickupLabel:  "Los Angeles, CA",
		DropoffLabel: "Los Angeles, CA",
		Current:      newYork,
		Pickup:       losAngeles,
		Dropoff:      losAngeles,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(route.TotalDrivingTime-40.8) > 0.2 {
		t.Fatalf("driving time = %v, want about 40.8", route.TotalDrivingTime)
	}

	logs := Simulate(route, tripStart)
	wantDays := int(math.Ceil(route.TotalDrivingTime / 11))
	if len(logs) != wantDays {
		t.Fatalf("expected %d timelines, got %d", wantDays, len(logs))
	}

	wantMiles := int(route.TotalDistance / float64(wantDays))
	for i, tl := range logs {
		if !tl.Date.Equal(tripStart.AddDate(0, 0, i)) {
			t.Errorf("day %d date = %v", i, tl.Date)
		}
		if tl.SleeperBerthHours != 10.0 {
			t.Errorf("day %d sleeper hours = %v, want 10.0", i, tl.SleeperBerthHours)
		}
		if n := countSlots(tl, SleeperBerth, 0, 40); n != 40 {
			t.Errorf("day %d sleeper slots 0-39 = %d, want 40", i, n)
		}
		if tl.Slots[40] != OnDuty || tl.Slots[41] != OnDuty {
			t.Errorf("day %d pre-trip slots = %s,%s", i, tl.Slots[40], tl.Slots[41])
		}
		if n := countSlots(tl, Driving, 0, SlotsPerDay); n > 44 {
			t.Errorf("day %d driving slots = %d, want <= 44", i, n)
		}
		if tl.TotalMiles != wantMiles {
			t.Errorf("day %d miles = %d, want %d", i, tl.TotalMiles, wantMiles)
		}
		if len(tl.Remarks) != 2 || tl.Remarks[0].Time != "10:00" || tl.Remarks[1].Time != "10:30" {
			t.Errorf("day %d remarks = %+v", i, tl.Remarks)
		}
	}

	full := logs[0]
	if full.DrivingHours != 11 {
		t.Errorf("first day driving = %v, want 11", full.DrivingHours)
	}
	// 8 hours of driving, a 30-minute break, then the remaining 3 hours.
	if full.Slots[73] != Driving || full.Slots[74] != OffDuty || full.Slots[75] != OffDuty || full.Slots[76] != Driving {
		t.Errorf("break slots 73-76 = %s %s %s %s", full.Slots[73], full.Slots[74], full.Slots[75], full.Slots[76])
	}
	if full.Slots[87] != Driving || full.Slots[88] != OffDuty {
		t.Errorf("end of driving 87,88 = %s,%s", full.Slots[87], full.Slots[88])
	}

	last := logs[len(logs)-1]
	remaining := route.TotalDrivingTime - float64(len(logs)-1)*11
	if want := float64(int(remaining*4)) * 0.25; last.DrivingHours != want {
		t.Errorf("last day driving = %v, want %v", last.DrivingHours, want)
	}
}

func TestSimulateExactMultipleOfDailyLimit(t *testing.T) {
	logs := Simulate(routeWithHours(12, 10), tripStart)
	if len(logs) != 2 {
		t.Fatalf("expected 2 timelines, got %d", len(logs))
	}
	for i, tl := range logs {
		if tl.DrivingHours != 11 {
			t.Errorf("day %d driving = %v, want 11", i, tl.DrivingHours)
		}
		if tl.TotalMiles != 660 {
			t.Errorf("day %d miles = %d, want 660", i, tl.TotalMiles)
		}
	}
}

func TestSimulateHoursAddUpToDay(t *testing.T) {
	routes := []RouteProfile{
		routeWithHours(0, 0),
		routeWithHours(2, 3),
		routeWithHours(8, 3),
		routeWithHours(9.9, 1.05),
		routeWithHours(11.5, 0),
		routeWithHours(30, 25.3),
	}
	for _, r := range routes {
		for _, tl := range Simulate(r, tripStart) {
			if tl.TotalHours() != 24.0 {
				t.Errorf("route %.2fh on %s: total hours = %v, want 24", r.TotalDrivingTime, tl.DateString(), tl.TotalHours())
			}
		}
	}
}

func TestSimulateDeterministic(t *testing.T) {
	route := routeWithHours(14, 9)
	first := Simulate(route, tripStart)
	second := Simulate(route, tripStart)
	if !reflect.DeepEqual(first, second) {
		t.Fatal("simulate is not deterministic")
	}
	if !reflect.DeepEqual(Evaluate(first, 20), Evaluate(second, 20)) {
		t.Fatal("evaluate is not deterministic")
	}
}

func TestGridClampsWrites(t *testing.T) {
	g := newGrid(94)
	start := g.allocate(5, Driving)
	if start != 94 {
		t.Errorf("start = %d, want 94", start)
	}
	if g.cursor != 99 {
		t.Errorf("cursor = %d, want 99", g.cursor)
	}
	if g.slots[94] != Driving || g.slots[95] != Driving {
		t.Errorf("slots 94,95 = %s,%s", g.slots[94], g.slots[95])
	}
	// past the end: no panic, nothing written
	g.allocate(4, OnDuty)
	if g.slots[95] != Driving {
		t.Errorf("slot 95 overwritten: %s", g.slots[95])
	}
}

func TestSlotTime(t *testing.T) {
	tests := map[int]string{0: "00:00", 1: "00:15", 24: "06:00", 42: "10:30", 95: "23:45", 96: "23:45", 120: "23:45"}
	for slot, want := range tests {
		if got := SlotTime(slot); got != want {
			t.Errorf("SlotTime(%d) = %q, want %q", slot, got, want)
		}
	}
}
