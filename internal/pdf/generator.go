package pdf

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/nurpe/eld-planner/internal/hos"
	"github.com/nurpe/eld-planner/internal/model"
)

const (
	fontName = "Helvetica"

	labelWidth = 42.0
	hourWidth  = 8.75
	totalWidth = 18.0
	rowHeight  = 9.0
)

type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

// Generate renders one landscape log sheet per day of the plan.
func (g *Generator) Generate(plan model.TripPlan) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(12, 12, 12)
	pdf.SetAutoPageBreak(true, 12)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	if len(plan.Logs) == 0 {
		pdf.AddPage()
		pdf.SetFont(fontName, "B", 14)
		pdf.CellFormat(0, 10, "Driver's Daily Log", "", 1, "C", false, 0, "")
		pdf.SetFont(fontName, "", 11)
		pdf.CellFormat(0, 8, "No log days recorded for this trip.", "", 1, "C", false, 0, "")
	}

	for i, log := range plan.Logs {
		pdf.AddPage()
		drawHeader(pdf, tr, plan.Trip, log, i+1, len(plan.Logs))
		pdf.Ln(4)
		drawGrid(pdf, log.Timeline)
		pdf.Ln(6)
		drawRemarks(pdf, tr, log.Timeline.Remarks)
	}

	if len(plan.Logs) > 0 {
		drawCompliance(pdf, tr, plan.Compliance)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func drawHeader(pdf *gofpdf.Fpdf, tr func(string) string, trip model.Trip, log model.ELDLog, day, days int) {
	tl := log.Timeline

	pdf.SetFont(fontName, "B", 14)
	pdf.CellFormat(0, 10, "Driver's Daily Log (24 hours)", "", 1, "C", false, 0, "")

	pdf.SetFont(fontName, "", 10)
	pdf.CellFormat(0, 6, fmt.Sprintf("Day %d of %d  |  %s", day, days, formatDate(tl.Date)), "", 1, "C", false, 0, "")
	pdf.Ln(2)

	lines := [][2]string{
		{"Driver", safeValue(log.DriverName)},
		{"Carrier", safeValue(log.CarrierName)},
		{"From", safeValue(trip.PickupLocation)},
		{"To", safeValue(trip.DropoffLocation)},
		{"Total miles driving today", fmt.Sprintf("%d", tl.TotalMiles)},
	}
	for _, line := range lines {
		pdf.SetFont(fontName, "B", 10)
		pdf.CellFormat(50, 5, line[0]+":", "", 0, "L", false, 0, "")
		pdf.SetFont(fontName, "", 10)
		pdf.CellFormat(0, 5, tr(line[1]), "", 1, "L", false, 0, "")
	}
}

// drawGrid draws the four duty rows across 24 hour columns and traces the
// duty status through them, with per-row totals on the right.
func drawGrid(pdf *gofpdf.Fpdf, tl hos.DailyTimeline) {
	left, _, _, _ := pdf.GetMargins()
	gridLeft := left + labelWidth

	pdf.SetFont(fontName, "", 7)
	for h := 0; h < 24; h++ {
		pdf.SetXY(gridLeft+float64(h)*hourWidth, pdf.GetY())
		pdf.CellFormat(hourWidth, 5, hourLabel(h), "", 0, "L", false, 0, "")
	}
	pdf.SetXY(gridLeft+24*hourWidth, pdf.GetY())
	pdf.CellFormat(totalWidth, 5, "Total", "", 1, "C", false, 0, "")

	top := pdf.GetY()
	pdf.SetLineWidth(0.2)
	pdf.SetDrawColor(0, 0, 0)

	for row, status := range hos.AllStatuses {
		y := top + float64(row)*rowHeight

		pdf.SetFont(fontName, "B", 8)
		pdf.SetXY(left, y)
		pdf.CellFormat(labelWidth, rowHeight, fmt.Sprintf("%d. %s", row+1, status.Label()), "1", 0, "L", false, 0, "")

		for h := 0; h < 24; h++ {
			x := gridLeft + float64(h)*hourWidth
			pdf.Rect(x, y, hourWidth, rowHeight, "D")
			for q := 1; q < hos.SlotsPerHour; q++ {
				qx := x + float64(q)*hourWidth/hos.SlotsPerHour
				tick := rowHeight / 4
				if q == 2 {
					tick = rowHeight / 2
				}
				pdf.Line(qx, y, qx, y+tick)
			}
		}

		pdf.SetFont(fontName, "", 9)
		pdf.SetXY(gridLeft+24*hourWidth, y)
		pdf.CellFormat(totalWidth, rowHeight, formatHours(tl.Hours(status)), "1", 0, "C", false, 0, "")
	}

	pdf.SetXY(gridLeft+24*hourWidth, top+4*rowHeight)
	pdf.SetFont(fontName, "B", 9)
	pdf.CellFormat(totalWidth, 6, formatHours(tl.TotalHours()), "1", 0, "C", false, 0, "")

	drawStatusLine(pdf, tl, gridLeft, top)
	pdf.SetXY(left, top+4*rowHeight+6)
}

func drawStatusLine(pdf *gofpdf.Fpdf, tl hos.DailyTimeline, gridLeft, top float64) {
	slotWidth := hourWidth / hos.SlotsPerHour
	rowCenter := func(s hos.DutyStatus) float64 {
		return top + float64(s)*rowHeight + rowHeight/2
	}

	pdf.SetLineWidth(0.8)
	pdf.SetDrawColor(20, 60, 160)
	for i, status := range tl.Slots {
		x := gridLeft + float64(i)*slotWidth
		y := rowCenter(status)
		pdf.Line(x, y, x+slotWidth, y)
		if i > 0 && tl.Slots[i-1] != status {
			pdf.Line(x, rowCenter(tl.Slots[i-1]), x, y)
		}
	}
	pdf.SetLineWidth(0.2)
	pdf.SetDrawColor(0, 0, 0)
}

func drawRemarks(pdf *gofpdf.Fpdf, tr func(string) string, remarks []hos.RemarkEvent) {
	pdf.SetFont(fontName, "B", 12)
	pdf.CellFormat(0, 8, "Remarks", "", 1, "L", false, 0, "")

	colWidths := []float64{25, 80, 50, 100}
	drawTableRow(pdf, []string{"Time", "Location", "Status", "Activity"}, colWidths, true)
	if len(remarks) == 0 {
		drawTableRow(pdf, []string{"-", "-", "-", "-"}, colWidths, false)
		return
	}
	for _, remark := range remarks {
		drawTableRow(pdf, []string{
			remark.Time,
			tr(safeValue(remark.Location)),
			remark.Status.Label(),
			tr(safeValue(remark.Activity)),
		}, colWidths, false)
	}
}

func drawCompliance(pdf *gofpdf.Fpdf, tr func(string) string, report hos.ComplianceReport) {
	pdf.Ln(4)
	pdf.SetFont(fontName, "B", 11)
	status := "Compliant"
	if !report.Compliant {
		status = "NOT compliant"
	}
	pdf.CellFormat(0, 7, fmt.Sprintf("Trip compliance: %s (projected cycle %s h / 70 h)",
		status, formatHours(report.ProjectedCycleHours)), "", 1, "L", false, 0, "")

	pdf.SetFont(fontName, "", 10)
	if len(report.Violations) > 0 {
		pdf.SetTextColor(200, 0, 0)
		for _, v := range report.Violations {
			pdf.MultiCell(0, 5, tr(v), "", "L", false)
		}
		pdf.SetTextColor(0, 0, 0)
	}
	for _, w := range report.Warnings {
		pdf.MultiCell(0, 5, tr(w), "", "L", false)
	}
}

func drawTableRow(pdf *gofpdf.Fpdf, cols []string, widths []float64, header bool) {
	style := ""
	if header {
		style = "B"
	}
	pdf.SetFont(fontName, style, 9)
	for i, col := range cols {
		pdf.CellFormat(widths[i], 6, col, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)
}

func hourLabel(h int) string {
	switch {
	case h == 0:
		return "Mid"
	case h == 12:
		return "Noon"
	case h > 12:
		return fmt.Sprintf("%d", h-12)
	default:
		return fmt.Sprintf("%d", h)
	}
}

func safeValue(value string) string {
	if strings.TrimSpace(value) == "" {
		return "-"
	}
	return value
}

func formatHours(value float64) string {
	return fmt.Sprintf("%.2f", value)
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("01/02/2006")
}
