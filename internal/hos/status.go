package hos

import (
	"fmt"
	"strings"
)

// DutyStatus is the driver's activity for one 15-minute slot.
type DutyStatus uint8

const (
	OffDuty DutyStatus = iota
	SleeperBerth
	Driving
	OnDuty
)

// AllStatuses lists every duty status in log-sheet row order.
var AllStatuses = [...]DutyStatus{OffDuty, SleeperBerth, Driving, OnDuty}

func (s DutyStatus) String() string {
	switch s {
	case OffDuty:
		return "off_duty"
	case SleeperBerth:
		return "sleeper_berth"
	case Driving:
		return "driving"
	case OnDuty:
		return "on_duty"
	default:
		return fmt.Sprintf("DutyStatus(%d)", uint8(s))
	}
}

// Label is the row title used on printed log sheets.
func (s DutyStatus) Label() string {
	switch s {
	case OffDuty:
		return "Off Duty"
	case SleeperBerth:
		return "Sleeper Berth"
	case Driving:
		return "Driving"
	case OnDuty:
		return "On Duty (not driving)"
	default:
		return s.String()
	}
}

func ParseDutyStatus(raw string) (DutyStatus, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "off_duty":
		return OffDuty, nil
	case "sleeper_berth", "sleeper":
		return SleeperBerth, nil
	case "driving":
		return Driving, nil
	case "on_duty":
		return OnDuty, nil
	default:
		return OffDuty, fmt.Errorf("%w: unknown duty status %q", ErrInvalidInput, raw)
	}
}

func (s DutyStatus) MarshalText() ([]byte, error) {
	if s > OnDuty {
		return nil, fmt.Errorf("%w: unknown duty status %d", ErrInvalidInput, uint8(s))
	}
	return []byte(s.String()), nil
}

func (s *DutyStatus) UnmarshalText(text []byte) error {
	parsed, err := ParseDutyStatus(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
