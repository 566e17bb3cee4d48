package report

import (
	"sort"
	"time"

	"github.com/acceso-labs/acceso-backend-go/internal/domain/report"
	"github.com/acceso-labs/acceso-backend-go/internal/pkg/period"
)

// AggregatePeriod rolls daily results into a period summary over
// [start, end] and raises the overtime alerts. Alerts are reporting signals
// only; the per-day regular/overtime split already caps regular hours and is
// never recomputed here.
func AggregatePeriod(code string, start, end time.Time, days []report.DailyHours, rules report.Rules) report.PeriodSummary {
	sort.Slice(days, func(i, j int) bool { return days[i].Date.Before(days[j].Date) })

	summary := report.PeriodSummary{
		EmployeeCode: code,
		StartDate:    period.Day(start),
		EndDate:      period.Day(end),
		Days:         days,
	}

	dailyLimit := int64(rules.DailyThreshold / time.Second)
	for _, d := range days {
		summary.TotalSeconds += d.WorkedSeconds
		summary.RegularSeconds += d.RegularSeconds
		summary.OvertimeSeconds += d.OvertimeSeconds
		if d.Incomplete {
			summary.IncompleteDays++
		}
		if dailyLimit > 0 && d.WorkedSeconds > dailyLimit {
			summary.ExcessDays = append(summary.ExcessDays, d.Date)
		}
	}

	if len(summary.ExcessDays) > 0 {
		summary.Alerts = append(summary.Alerts, report.AlertExcessDaily)
	}
	summary.ExcessWeeks = weeklyExcess(days, summary.StartDate, summary.EndDate, rules)
	if len(summary.ExcessWeeks) > 0 {
		summary.Alerts = append(summary.Alerts, report.AlertExcessWeekly)
	}
	return summary
}

// weeklyExcess finds the weekly windows whose summed worked time exceeds the
// weekly threshold. Calendar mode checks Monday-Sunday weeks clipped to the
// period; rolling mode slides a 7-day window one day at a time.
func weeklyExcess(days []report.DailyHours, start, end time.Time, rules report.Rules) []report.WeekExcess {
	limit := int64(rules.WeeklyThreshold / time.Second)
	if limit <= 0 || len(days) == 0 {
		return nil
	}

	workedByDate := make(map[time.Time]int64, len(days))
	for _, d := range days {
		workedByDate[period.Day(d.Date)] += d.WorkedSeconds
	}
	sumWindow := func(from, to time.Time) int64 {
		var sum int64
		for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
			sum += workedByDate[d]
		}
		return sum
	}

	var excess []report.WeekExcess
	if rules.WeeklyWindow == report.WeeklyWindowRolling {
		last := end.AddDate(0, 0, -6)
		if last.Before(start) {
			// Period shorter than a week: one window clipped to the bounds.
			last = start
		}
		for ws := start; !ws.After(last); ws = ws.AddDate(0, 0, 1) {
			we := ws.AddDate(0, 0, 6)
			if we.After(end) {
				we = end
			}
			if sum := sumWindow(ws, we); sum > limit {
				excess = append(excess, report.WeekExcess{Start: ws, End: we, WorkedSeconds: sum})
			}
		}
		return excess
	}

	weekStart, _ := period.WeekRange(start)
	for ; !weekStart.After(end); weekStart = weekStart.AddDate(0, 0, 7) {
		from, to := weekStart, weekStart.AddDate(0, 0, 6)
		if from.Before(start) {
			from = start
		}
		if to.After(end) {
			to = end
		}
		if sum := sumWindow(from, to); sum > limit {
			excess = append(excess, report.WeekExcess{Start: from, End: to, WorkedSeconds: sum})
		}
	}
	return excess
}

// Statistics aggregates attendance figures across a set of period summaries.
// A day counts as worked when it has at least one session.
func Statistics(summaries []report.PeriodSummary) report.Stats {
	var stats report.Stats
	stats.Employees = len(summaries)
	for _, ps := range summaries {
		for _, d := range ps.Days {
			if len(d.Sessions) > 0 {
				stats.DaysWorked++
			}
		}
		stats.IncompleteDays += ps.IncompleteDays
		stats.TotalWorkedSeconds += ps.TotalSeconds
		stats.TotalOvertimeSeconds += ps.OvertimeSeconds
	}
	if stats.DaysWorked > 0 {
		stats.AverageSecondsPerDay = stats.TotalWorkedSeconds / int64(stats.DaysWorked)
	}
	return stats
}
