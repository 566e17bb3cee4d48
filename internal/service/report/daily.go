package report

import (
	"time"

	"github.com/acceso-labs/acceso-backend-go/internal/domain/event"
	"github.com/acceso-labs/acceso-backend-go/internal/domain/report"
)

// ComputeDaily sums session durations into the worked-hours result for one
// employee-day. Open sessions contribute zero worked time but mark the day
// incomplete; a day with zero worked seconds is a valid result, not an
// error.
func ComputeDaily(code string, date time.Time, sessions []report.WorkSession, anomalies []string, rules report.Rules) report.DailyHours {
	var worked time.Duration
	incomplete := len(anomalies) > 0
	for _, s := range sessions {
		if s.Open() {
			incomplete = true
			continue
		}
		worked += s.Duration()
	}

	workedSeconds := int64(rules.Rounding.Apply(worked) / time.Second)
	regular := workedSeconds
	if limit := int64(rules.DailyThreshold / time.Second); rules.DailyThreshold > 0 && workedSeconds > limit {
		regular = limit
	}

	return report.DailyHours{
		EmployeeCode:    code,
		Date:            date,
		WorkedSeconds:   workedSeconds,
		RegularSeconds:  regular,
		OvertimeSeconds: workedSeconds - regular,
		Sessions:        sessions,
		Incomplete:      incomplete,
		Anomalies:       anomalies,
	}
}

// BuildDays runs the full engine over raw rows for one employee: normalize,
// pair, compute. Returns the per-day results ordered by date plus any
// rejected rows.
func BuildDays(rows []event.RawEvent, rules report.Rules) ([]report.DailyHours, []string) {
	norm := Normalize(rows, rules.Location)

	days := make([]report.DailyHours, 0, len(norm.Days))
	for _, day := range norm.Days {
		code := ""
		if len(day.Events) > 0 {
			code = day.Events[0].EmployeeCode
		}
		sessions, pairAnomalies := PairSessions(code, day)
		anomalies := append(append([]string(nil), day.Anomalies...), pairAnomalies...)
		days = append(days, ComputeDaily(code, day.Date, sessions, anomalies, rules))
	}
	return days, norm.Rejected
}
