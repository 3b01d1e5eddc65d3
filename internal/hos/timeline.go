package hos

import (
	"fmt"
	"time"
)

const (
	SlotsPerHour = 4
	SlotsPerDay  = 24 * SlotsPerHour
	slotHours    = 1.0 / SlotsPerHour
)

// RemarkEvent marks a duty-status change on a daily log.
type RemarkEvent struct {
	Time     string
	Location string
	Status   DutyStatus
	Activity string
}

// DailyTimeline is one calendar day of 15-minute duty slots.
//
// Values are produced by NewDailyTimeline, which derives the per-status
// totals from the slots; the four totals always add up to 24 hours.
type DailyTimeline struct {
	Date              time.Time
	TotalMiles        int
	Slots             [SlotsPerDay]DutyStatus
	OffDutyHours      float64
	SleeperBerthHours float64
	DrivingHours      float64
	OnDutyHours       float64
	Remarks           []RemarkEvent
}

func NewDailyTimeline(date time.Time, miles int, slots [SlotsPerDay]DutyStatus, remarks []RemarkEvent) DailyTimeline {
	var counts [len(AllStatuses)]int
	for _, s := range slots {
		counts[s]++
	}

	copied := make([]RemarkEvent, len(remarks))
	copy(copied, remarks)

	return DailyTimeline{
		Date:              DateOnly(date),
		TotalMiles:        miles,
		Slots:             slots,
		OffDutyHours:      float64(counts[OffDuty]) * slotHours,
		SleeperBerthHours: float64(counts[SleeperBerth]) * slotHours,
		DrivingHours:      float64(counts[Driving]) * slotHours,
		OnDutyHours:       float64(counts[OnDuty]) * slotHours,
		Remarks:           copied,
	}
}

func (t DailyTimeline) Hours(s DutyStatus) float64 {
	switch s {
	case OffDuty:
		return t.OffDutyHours
	case SleeperBerth:
		return t.SleeperBerthHours
	case Driving:
		return t.DrivingHours
	case OnDuty:
		return t.OnDutyHours
	default:
		return 0
	}
}

func (t DailyTimeline) TotalHours() float64 {
	return t.OffDutyHours + t.SleeperBerthHours + t.DrivingHours + t.OnDutyHours
}

// DutyHours is driving plus on-duty (not driving) time.
func (t DailyTimeline) DutyHours() float64 {
	return t.DrivingHours + t.OnDutyHours
}

func (t DailyTimeline) DateString() string {
	return t.Date.Format("2006-01-02")
}

// SlotTime renders a slot index as HH:MM. Indexes past the end of the day
// render as the last slot.
func SlotTime(slot int) string {
	if slot >= SlotsPerDay {
		slot = SlotsPerDay - 1
	}
	if slot < 0 {
		slot = 0
	}
	return fmt.Sprintf("%02d:%02d", slot/SlotsPerHour, (slot%SlotsPerHour)*15)
}

func DateOnly(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
