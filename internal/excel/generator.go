package excel

import (
	"fmt"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/nurpe/eld-planner/internal/hos"
	"github.com/nurpe/eld-planner/internal/model"
)

const summarySheet = "Summary"

type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

func (g *Generator) Generate(plan model.TripPlan) ([]byte, error) {
	file := excelize.NewFile()
	defer file.Close()

	if err := file.SetSheetName("Sheet1", summarySheet); err != nil {
		return nil, err
	}
	if err := g.writeSummary(file, plan); err != nil {
		return nil, err
	}

	for i, log := range plan.Logs {
		sheet := DaySheetName(i, log.Timeline.Date)
		if _, err := file.NewSheet(sheet); err != nil {
			return nil, fmt.Errorf("create sheet %q: %w", sheet, err)
		}
		if err := g.writeDay(file, sheet, plan.Trip, log); err != nil {
			return nil, err
		}
	}

	file.SetActiveSheet(0)
	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DaySheetName names the sheet of the i-th (zero based) log day.
func DaySheetName(i int, date time.Time) string {
	return fmt.Sprintf("Day %d %s", i+1, date.Format("2006-01-02"))
}

func (g *Generator) writeSummary(file *excelize.File, plan model.TripPlan) error {
	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(summarySheet, cell, value)
	}

	trip := plan.Trip
	report := plan.Compliance

	set("A1", "Trip")
	set("B1", trip.ID.String())
	set("A2", "Current location")
	set("B2", trip.CurrentLocation)
	set("A3", "Pickup location")
	set("B3", trip.PickupLocation)
	set("A4", "Dropoff location")
	set("B4", trip.DropoffLocation)
	set("A5", "Current cycle hours")
	set("B5", trip.CurrentCycleHours)
	set("A6", "Total driving hours")
	set("B6", report.TotalDrivingHours)
	set("A7", "Total on-duty hours")
	set("B7", report.TotalOnDutyHours)
	set("A8", "Projected cycle hours")
	set("B8", report.ProjectedCycleHours)
	set("A9", "Compliant")
	set("B9", complianceLabel(report.Compliant))
	set("A10", "Violations")
	set("B10", joinOrDash(report.Violations))
	set("A11", "Warnings")
	set("B11", joinOrDash(report.Warnings))
	set("A12", "Route")
	set("B12", routeLabel(plan))

	tableRow := 14
	headers := []string{"Date", "Miles", "Off duty", "Sleeper berth", "Driving", "On duty"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, tableRow)
		set(cell, header)
	}

	for i, log := range plan.Logs {
		tl := log.Timeline
		row := tableRow + 1 + i
		set(fmt.Sprintf("A%d", row), tl.DateString())
		set(fmt.Sprintf("B%d", row), tl.TotalMiles)
		set(fmt.Sprintf("C%d", row), tl.OffDutyHours)
		set(fmt.Sprintf("D%d", row), tl.SleeperBerthHours)
		set(fmt.Sprintf("E%d", row), tl.DrivingHours)
		set(fmt.Sprintf("F%d", row), tl.OnDutyHours)
	}

	_ = file.SetColWidth(summarySheet, "A", "A", 24)
	_ = file.SetColWidth(summarySheet, "B", "B", 40)
	_ = file.SetColWidth(summarySheet, "C", "F", 14)
	return nil
}

func (g *Generator) writeDay(file *excelize.File, sheet string, trip model.Trip, log model.ELDLog) error {
	tl := log.Timeline
	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	set("A1", "Date")
	set("B1", tl.DateString())
	set("A2", "Driver")
	set("B2", log.DriverName)
	set("A3", "Carrier")
	set("B3", log.CarrierName)
	set("A4", "Route")
	set("B4", fmt.Sprintf("%s - %s", trip.PickupLocation, trip.DropoffLocation))
	set("A5", "Total miles")
	set("B5", tl.TotalMiles)

	row := 6
	for _, status := range hos.AllStatuses {
		set(fmt.Sprintf("A%d", row), status.Label())
		set(fmt.Sprintf("B%d", row), tl.Hours(status))
		row++
	}

	tableRow := 11
	set(fmt.Sprintf("A%d", tableRow), "Time")
	set(fmt.Sprintf("B%d", tableRow), "Status")
	for i, status := range tl.Slots {
		r := tableRow + 1 + i
		set(fmt.Sprintf("A%d", r), hos.SlotTime(i))
		set(fmt.Sprintf("B%d", r), status.String())
	}

	remarkHeaders := []string{"Time", "Location", "Status", "Activity"}
	for i, header := range remarkHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+4, tableRow)
		set(cell, header)
	}
	for i, remark := range tl.Remarks {
		r := tableRow + 1 + i
		set(fmt.Sprintf("D%d", r), remark.Time)
		set(fmt.Sprintf("E%d", r), remark.Location)
		set(fmt.Sprintf("F%d", r), remark.Status.String())
		set(fmt.Sprintf("G%d", r), remark.Activity)
	}

	_ = file.SetColWidth(sheet, "A", "A", 22)
	_ = file.SetColWidth(sheet, "B", "B", 16)
	_ = file.SetColWidth(sheet, "D", "D", 8)
	_ = file.SetColWidth(sheet, "E", "E", 28)
	_ = file.SetColWidth(sheet, "F", "F", 14)
	_ = file.SetColWidth(sheet, "G", "G", 28)
	return nil
}

// routeLabel describes the route; plans loaded from storage carry no route
// profile, so the mileage is summed from their logs.
func routeLabel(plan model.TripPlan) string {
	stops := fmt.Sprintf("%s - %s - %s", plan.Trip.CurrentLocation, plan.Trip.PickupLocation, plan.Trip.DropoffLocation)
	if plan.Route != nil {
		return fmt.Sprintf("%s (%.1f mi, %.1f h driving)", stops, plan.Route.TotalDistance, plan.Route.TotalDrivingTime)
	}
	miles := 0
	for _, log := range plan.Logs {
		miles += log.Timeline.TotalMiles
	}
	return fmt.Sprintf("%s (%d mi logged)", stops, miles)
}

func complianceLabel(ok bool) string {
	if ok {
		return "Yes"
	}
	return "No"
}

func joinOrDash(items []string) string {
	if len(items) == 0 {
		return "-"
	}
	return strings.Join(items, "; ")
}
