package report

import (
	"time"
)

// WorkSession is one entry paired with its corresponding exit. A session with
// a nil Exit is open: the employee clocked in and never clocked out inside
// the queried window.
type WorkSession struct {
	EmployeeCode string
	Date         time.Time
	Entry        time.Time
	Exit         *time.Time
}

// Open reports whether the session has no recorded exit.
func (s WorkSession) Open() bool {
	return s.Exit == nil
}

// Duration returns exit minus entry for a closed session and zero for an
// open one. Open sessions never contribute worked time.
func (s WorkSession) Duration() time.Duration {
	if s.Exit == nil {
		return 0
	}
	return s.Exit.Sub(s.Entry)
}

// DailyHours is the worked-hours result for one employee-day.
// Invariant: RegularSeconds + OvertimeSeconds == WorkedSeconds.
type DailyHours struct {
	EmployeeCode    string
	Date            time.Time
	WorkedSeconds   int64
	RegularSeconds  int64
	OvertimeSeconds int64
	Sessions        []WorkSession
	Incomplete      bool
	Anomalies       []string
}

// Alert is a period-level reporting signal. It never changes the computed
// regular/overtime split, which is already capped per day.
type Alert string

const (
	AlertExcessDaily  Alert = "EXCESS_DAILY"
	AlertExcessWeekly Alert = "EXCESS_WEEKLY"
)

// WeekExcess identifies one weekly window whose summed worked time exceeded
// the weekly threshold.
type WeekExcess struct {
	Start         time.Time
	End           time.Time
	WorkedSeconds int64
}

// PeriodSummary rolls DailyHours up over [StartDate, EndDate]. Derived on
// every request, never persisted.
type PeriodSummary struct {
	EmployeeCode    string
	StartDate       time.Time
	EndDate         time.Time
	TotalSeconds    int64
	RegularSeconds  int64
	OvertimeSeconds int64
	Days            []DailyHours
	Alerts          []Alert
	ExcessDays      []time.Time
	ExcessWeeks     []WeekExcess
	IncompleteDays  int
}

// Stats is the attendance-statistics aggregate over a set of period
// summaries. Pure aggregation; no new data source.
type Stats struct {
	Employees            int
	DaysWorked           int
	IncompleteDays       int
	AverageSecondsPerDay int64
	TotalWorkedSeconds   int64
	TotalOvertimeSeconds int64
}
