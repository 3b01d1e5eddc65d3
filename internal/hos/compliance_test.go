package hos

import (
	"strings"
	"testing"
)

func timelineWith(counts map[DutyStatus]int) DailyTimeline {
	var slots [SlotsPerDay]DutyStatus
	i := 0
	for _, s := range AllStatuses {
		for n := 0; n < counts[s]; n++ {
			slots[i] = s
			i++
		}
	}
	return NewDailyTimeline(tripStart, 0, slots, nil)
}

func TestEvaluateDrivingLimitExceeded(t *testing.T) {
	tl := timelineWith(map[DutyStatus]int{Driving: 48})
	if tl.DrivingHours != 12 {
		t.Fatalf("driving hours = %v, want 12", tl.DrivingHours)
	}

	report := Evaluate([]DailyTimeline{tl}, 0)
	if report.Compliant {
		t.Fatal("expected non-compliant report")
	}
	if len(report.Violations) != 1 || !strings.Contains(report.Violations[0], "Driving limit exceeded") {
		t.Fatalf("violations = %v", report.Violations)
	}
	if !strings.Contains(report.Violations[0], "2026-03-02") {
		t.Errorf("violation %q does not name the date", report.Violations[0])
	}
}

func TestEvaluateDutyWindowExceeded(t *testing.T) {
	tl := timelineWith(map[DutyStatus]int{Driving: 40, OnDuty: 20})
	report := Evaluate([]DailyTimeline{tl}, 0)

	if len(report.Violations) != 1 || report.Violations[0] != "14-hour window exceeded on 2026-03-02" {
		t.Fatalf("violations = %v", report.Violations)
	}
	if report.Compliant {
		t.Fatal("expected non-compliant report")
	}
}

func TestEvaluateCycleLimitExceeded(t *testing.T) {
	logs := Simulate(routeWithHours(3.5, 3.5), tripStart)
	if len(logs) != 1 || logs[0].DutyHours() != 10 {
		t.Fatalf("expected one day with 10 duty hours, got %d days", len(logs))
	}

	report := Evaluate(logs, 65)
	if report.ProjectedCycleHours != 75 {
		t.Errorf("projected cycle hours = %v, want 75", report.ProjectedCycleHours)
	}
	if report.Compliant {
		t.Error("expected non-compliant report")
	}
	if len(report.Violations) != 1 || !strings.Contains(report.Violations[0], "70-hour cycle limit would be exceeded") {
		t.Errorf("violations = %v", report.Violations)
	}
	if len(report.Warnings) != 0 {
		t.Errorf("warnings = %v, want none once the cycle is violated", report.Warnings)
	}
}

func TestEvaluateApproachingCycleLimit(t *testing.T) {
	logs := Simulate(routeWithHours(3.5, 3.5), tripStart)

	for _, current := range []float64{55, 60} {
		report := Evaluate(logs, current)
		if !report.Compliant {
			t.Errorf("current=%v: expected compliant, violations %v", current, report.Violations)
		}
		if len(report.Warnings) != 1 || !strings.Contains(report.Warnings[0], "Approaching cycle limit") {
			t.Errorf("current=%v: warnings = %v", current, report.Warnings)
		}
	}

	report := Evaluate(logs, 40)
	if len(report.Warnings) != 0 || len(report.Violations) != 0 || !report.Compliant {
		t.Errorf("current=40: report = %+v", report)
	}
}

func TestEvaluateTotals(t *testing.T) {
	logs := Simulate(routeWithHours(14, 9), tripStart)
	report := Evaluate(logs, 12.5)

	var driving, duty float64
	for _, tl := range logs {
		driving += tl.DrivingHours
		duty += tl.DrivingHours + tl.OnDutyHours
	}
	if report.TotalDrivingHours != driving {
		t.Errorf("total driving = %v, want %v", report.TotalDrivingHours, driving)
	}
	if report.TotalOnDutyHours != duty {
		t.Errorf("total on duty = %v, want %v", report.TotalOnDutyHours, duty)
	}
	if report.ProjectedCycleHours != 12.5+duty {
		t.Errorf("projected = %v, want %v", report.ProjectedCycleHours, 12.5+duty)
	}
	if !report.Compliant {
		t.Errorf("violations = %v", report.Violations)
	}
}
