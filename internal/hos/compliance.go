package hos

import "fmt"

const (
	dutyWindowHours   = 14.0
	cycleLimitHours   = 70.0
	cycleWarningHours = 60.0
)

type ComplianceReport struct {
	TotalDrivingHours   float64
	TotalOnDutyHours    float64
	ProjectedCycleHours float64
	Violations          []string
	Warnings            []string
	Compliant           bool
}

// Evaluate audits the timelines of one trip against the daily driving
// limit, the 14-hour duty window and the 70-hour cycle. currentCycleHours
// is the on-duty time the driver has already accumulated in the cycle.
func Evaluate(timelines []DailyTimeline, currentCycleHours float64) ComplianceReport {
	report := ComplianceReport{
		Violations: []string{},
		Warnings:   []string{},
	}

	for _, t := range timelines {
		report.TotalDrivingHours += t.DrivingHours
		report.TotalOnDutyHours += t.DutyHours()

		if t.DrivingHours > dailyDrivingLimitHours {
			report.Violations = append(report.Violations,
				fmt.Sprintf("Driving limit exceeded on %s: %.1f hours", t.DateString(), t.DrivingHours))
		}
		if t.DutyHours() > dutyWindowHours {
			report.Violations = append(report.Violations,
				fmt.Sprintf("14-hour window exceeded on %s", t.DateString()))
		}
	}

	report.ProjectedCycleHours = currentCycleHours + report.TotalOnDutyHours
	switch {
	case report.ProjectedCycleHours > cycleLimitHours:
		report.Violations = append(report.Violations,
			fmt.Sprintf("70-hour cycle limit would be exceeded: %.1f hours", report.ProjectedCycleHours))
	case report.ProjectedCycleHours > cycleWarningHours:
		report.Warnings = append(report.Warnings,
			fmt.Sprintf("Approaching cycle limit: %.1f/70 hours", report.ProjectedCycleHours))
	}

	report.Compliant = len(report.Violations) == 0
	return report
}
