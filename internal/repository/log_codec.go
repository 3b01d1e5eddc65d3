package repository

import (
	"encoding/json"
	"fmt"

	"github.com/nurpe/eld-planner/internal/hos"
)

type remarkRecord struct {
	Time     string         `json:"time"`
	Location string         `json:"location"`
	Status   hos.DutyStatus `json:"status"`
	Activity string         `json:"activity"`
}

func encodeSlots(slots [hos.SlotsPerDay]hos.DutyStatus) (string, error) {
	raw, err := json.Marshal(slots)
	if err != nil {
		return "", fmt.Errorf("encode time slots: %w", err)
	}
	return string(raw), nil
}

func decodeSlots(raw string) ([hos.SlotsPerDay]hos.DutyStatus, error) {
	var out [hos.SlotsPerDay]hos.DutyStatus
	var decoded []hos.DutyStatus
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		return out, fmt.Errorf("decode time slots: %w", err)
	}
	if len(decoded) != hos.SlotsPerDay {
		return out, fmt.Errorf("decode time slots: got %d slots, want %d", len(decoded), hos.SlotsPerDay)
	}
	copy(out[:], decoded)
	return out, nil
}

func encodeRemarks(remarks []hos.RemarkEvent) (string, error) {
	records := make([]remarkRecord, 0, len(remarks))
	for _, r := range remarks {
		records = append(records, remarkRecord{Time: r.Time, Location: r.Location, Status: r.Status, Activity: r.Activity})
	}
	raw, err := json.Marshal(records)
	if err != nil {
		return "", fmt.Errorf("encode remarks: %w", err)
	}
	return string(raw), nil
}

func decodeRemarks(raw string) ([]hos.RemarkEvent, error) {
	if raw == "" {
		return []hos.RemarkEvent{}, nil
	}
	var records []remarkRecord
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		return nil, fmt.Errorf("decode remarks: %w", err)
	}
	out := make([]hos.RemarkEvent, 0, len(records))
	for _, r := range records {
		out = append(out, hos.RemarkEvent{Time: r.Time, Location: r.Location, Status: r.Status, Activity: r.Activity})
	}
	return out, nil
}
