package report

import (
	"time"
)

// RoundingMode selects how a worked duration is snapped to the unit.
type RoundingMode string

const (
	RoundNearest RoundingMode = "nearest"
	RoundDown    RoundingMode = "down"
	RoundUp      RoundingMode = "up"
)

// Rounding snaps worked durations to a billing unit before they are reported.
type Rounding struct {
	Unit time.Duration
	Mode RoundingMode
}

// Apply rounds d according to the configured unit and mode. A zero or
// negative unit leaves the duration untouched.
func (r Rounding) Apply(d time.Duration) time.Duration {
	if r.Unit <= 0 {
		return d
	}
	switch r.Mode {
	case RoundDown:
		return d.Truncate(r.Unit)
	case RoundUp:
		truncated := d.Truncate(r.Unit)
		if truncated != d {
			truncated += r.Unit
		}
		return truncated
	default:
		return d.Round(r.Unit)
	}
}

// WeeklyWindow selects how the weekly overtime check slices the period.
type WeeklyWindow string

const (
	// WeeklyWindowCalendar checks Monday-Sunday calendar weeks clipped to
	// the period bounds.
	WeeklyWindowCalendar WeeklyWindow = "calendar"
	// WeeklyWindowRolling checks every 7-day window inside the period.
	WeeklyWindowRolling WeeklyWindow = "rolling"
)

// Rules is the immutable engine configuration. It is built once at startup
// and passed into every computation; nothing mutates it afterwards, so tests
// can run with different thresholds in parallel.
type Rules struct {
	Location        *time.Location
	DailyThreshold  time.Duration
	WeeklyThreshold time.Duration
	Rounding        Rounding
	WeeklyWindow    WeeklyWindow
}

// Snapshot exposes the rules as plain key/value pairs for the configuration
// endpoint.
func (r Rules) Snapshot() map[string]any {
	return map[string]any{
		"timezone":                 r.Location.String(),
		"daily_threshold_seconds":  int64(r.DailyThreshold / time.Second),
		"weekly_threshold_seconds": int64(r.WeeklyThreshold / time.Second),
		"rounding_unit_seconds":    int64(r.Rounding.Unit / time.Second),
		"rounding_mode":            string(r.Rounding.Mode),
		"weekly_window":            string(r.WeeklyWindow),
		"biweekly_boundary":        "1-15 / 16-end of month",
	}
}
