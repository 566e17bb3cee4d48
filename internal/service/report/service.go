package report

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/acceso-labs/acceso-backend-go/internal/domain/employee"
	"github.com/acceso-labs/acceso-backend-go/internal/domain/event"
	"github.com/acceso-labs/acceso-backend-go/internal/domain/report"
	"github.com/acceso-labs/acceso-backend-go/internal/pkg/period"
	"github.com/jackc/pgx/v5"
)

const dateLayout = "2006-01-02"

type ReportServiceImpl struct {
	eventRepo    event.EventRepository
	employeeRepo employee.EmployeeRepository
	rules        report.Rules
	now          func() time.Time
}

func NewReportService(
	eventRepo event.EventRepository,
	employeeRepo employee.EmployeeRepository,
	rules report.Rules,
) report.ReportService {
	return &ReportServiceImpl{
		eventRepo:    eventRepo,
		employeeRepo: employeeRepo,
		rules:        rules,
		now:          time.Now,
	}
}

// employeeRows groups one employee's raw rows with the identity fields the
// responses need, taken from the rows themselves.
type employeeRows struct {
	employeeID string
	name       string
	site       string
	rows       []event.RawEvent
}

func groupByEmployee(rows []event.RawEvent) map[string]*employeeRows {
	grouped := make(map[string]*employeeRows)
	for _, row := range rows {
		g, ok := grouped[row.EmployeeCode]
		if !ok {
			g = &employeeRows{employeeID: row.EmployeeID, site: row.Site}
			if row.EmployeeName != nil {
				g.name = *row.EmployeeName
			}
			grouped[row.EmployeeCode] = g
		}
		g.rows = append(g.rows, row)
	}
	return grouped
}

// rangeWithMargin widens [start, end] by one day on each side so overnight
// shifts near the bounds normalize with full context, and returns the
// exclusive upper bound the repository expects.
func rangeWithMargin(start, end time.Time) (time.Time, time.Time) {
	return start.AddDate(0, 0, -1), end.AddDate(0, 0, 2)
}

// clipDays drops the margin days that fall outside the requested period.
func clipDays(days []report.DailyHours, start, end time.Time) []report.DailyHours {
	kept := days[:0]
	for _, d := range days {
		if d.Date.Before(start) || d.Date.After(end) {
			continue
		}
		kept = append(kept, d)
	}
	return kept
}

func sessionToResponse(s report.WorkSession) report.SessionResponse {
	resp := report.SessionResponse{
		Entry:           s.Entry.Format(time.RFC3339),
		Open:            s.Open(),
		DurationSeconds: int64(s.Duration() / time.Second),
	}
	if s.Exit != nil {
		exit := s.Exit.Format(time.RFC3339)
		resp.Exit = &exit
	}
	return resp
}

func dailyToResponse(d report.DailyHours) report.DailyHoursResponse {
	sessions := make([]report.SessionResponse, 0, len(d.Sessions))
	for _, s := range d.Sessions {
		sessions = append(sessions, sessionToResponse(s))
	}
	return report.DailyHoursResponse{
		Date:            d.Date.Format(dateLayout),
		WorkedSeconds:   d.WorkedSeconds,
		RegularSeconds:  d.RegularSeconds,
		OvertimeSeconds: d.OvertimeSeconds,
		Incomplete:      d.Incomplete,
		Sessions:        sessions,
		Anomalies:       d.Anomalies,
	}
}

func summaryToResponse(g *employeeRows, code string, ps report.PeriodSummary, rejected []string) report.PeriodSummaryResponse {
	days := make([]report.DailyHoursResponse, 0, len(ps.Days))
	for _, d := range ps.Days {
		days = append(days, dailyToResponse(d))
	}
	excessDays := make([]string, 0, len(ps.ExcessDays))
	for _, d := range ps.ExcessDays {
		excessDays = append(excessDays, d.Format(dateLayout))
	}
	excessWeeks := make([]report.WeekExcessResponse, 0, len(ps.ExcessWeeks))
	for _, w := range ps.ExcessWeeks {
		excessWeeks = append(excessWeeks, report.WeekExcessResponse{
			Start:         w.Start.Format(dateLayout),
			End:           w.End.Format(dateLayout),
			WorkedSeconds: w.WorkedSeconds,
		})
	}
	alerts := ps.Alerts
	if alerts == nil {
		alerts = []report.Alert{}
	}
	return report.PeriodSummaryResponse{
		EmployeeID:      g.employeeID,
		EmployeeCode:    code,
		EmployeeName:    g.name,
		StartDate:       ps.StartDate.Format(dateLayout),
		EndDate:         ps.EndDate.Format(dateLayout),
		TotalSeconds:    ps.TotalSeconds,
		RegularSeconds:  ps.RegularSeconds,
		OvertimeSeconds: ps.OvertimeSeconds,
		IncompleteDays:  ps.IncompleteDays,
		Alerts:          alerts,
		ExcessDays:      excessDays,
		ExcessWeeks:     excessWeeks,
		Days:            days,
		RejectedRows:    rejected,
	}
}

// periodReports runs the engine per employee over [start, end] and returns
// the summaries ordered by employee code.
func (s *ReportServiceImpl) periodReports(ctx context.Context, start, end time.Time, employeeID, site *string) ([]report.PeriodSummaryResponse, error) {
	from, to := rangeWithMargin(start, end)
	rows, err := s.eventRepo.ListByRange(ctx, from, to, event.Filter{EmployeeID: employeeID, Site: site})
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}

	grouped := groupByEmployee(rows)
	codes := make([]string, 0, len(grouped))
	for code := range grouped {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	reports := make([]report.PeriodSummaryResponse, 0, len(codes))
	for _, code := range codes {
		g := grouped[code]
		days, rejected := BuildDays(g.rows, s.rules)
		days = clipDays(days, start, end)
		if len(days) == 0 && len(rejected) == 0 {
			continue
		}
		summary := AggregatePeriod(code, start, end, days, s.rules)
		reports = append(reports, summaryToResponse(g, code, summary, rejected))
	}
	return reports, nil
}

// Daily implements report.ReportService.
func (s *ReportServiceImpl) Daily(ctx context.Context, req report.DailyReportRequest) (report.DailyReportResponse, error) {
	if err := req.Validate(); err != nil {
		return report.DailyReportResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return report.DailyReportResponse{}, employee.ErrEmployeeNotFound
		}
		return report.DailyReportResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	date, err := time.ParseInLocation(dateLayout, req.Date, s.rules.Location)
	if err != nil {
		return report.DailyReportResponse{}, report.ErrInvalidDate
	}

	from, to := rangeWithMargin(date, date)
	rows, err := s.eventRepo.ListByRange(ctx, from, to, event.Filter{EmployeeID: &emp.ID})
	if err != nil {
		return report.DailyReportResponse{}, fmt.Errorf("failed to list events: %w", err)
	}

	days, rejected := BuildDays(rows, s.rules)
	resp := report.DailyReportResponse{
		EmployeeID:   emp.ID,
		EmployeeCode: emp.Code,
		EmployeeName: emp.FullName(),
		// A day with nothing recorded is a valid zero-hours result.
		Day: report.DailyHoursResponse{
			Date:     date.Format(dateLayout),
			Sessions: []report.SessionResponse{},
		},
		Note:         "no events recorded for this date",
		RejectedRows: rejected,
	}
	for _, d := range days {
		if d.Date.Equal(date) {
			resp.Day = dailyToResponse(d)
			resp.Note = ""
			break
		}
	}
	return resp, nil
}

// Weekly implements report.ReportService.
func (s *ReportServiceImpl) Weekly(ctx context.Context, req report.WeeklyReportRequest) (report.WeeklyReportResponse, error) {
	if err := req.Validate(); err != nil {
		return report.WeeklyReportResponse{}, err
	}

	anchor := period.Day(s.now().In(s.rules.Location))
	if req.Date != "" {
		anchor, _ = time.ParseInLocation(dateLayout, req.Date, s.rules.Location)
	}
	weekStart, weekEnd := period.WeekRange(anchor)

	reports, err := s.periodReports(ctx, weekStart, weekEnd, req.EmployeeID, req.Site)
	if err != nil {
		return report.WeeklyReportResponse{}, err
	}
	return report.WeeklyReportResponse{
		WeekStart: weekStart.Format(dateLayout),
		WeekEnd:   weekEnd.Format(dateLayout),
		Employees: len(reports),
		Reports:   reports,
	}, nil
}

// Monthly implements report.ReportService.
func (s *ReportServiceImpl) Monthly(ctx context.Context, req report.MonthlyReportRequest) (report.MonthlyReportResponse, error) {
	if err := req.Validate(); err != nil {
		return report.MonthlyReportResponse{}, err
	}

	start, end := period.MonthRange(req.Year, time.Month(req.Month), s.rules.Location)
	reports, err := s.periodReports(ctx, start, end, req.EmployeeID, req.Site)
	if err != nil {
		return report.MonthlyReportResponse{}, err
	}
	return report.MonthlyReportResponse{
		Period:    fmt.Sprintf("%04d-%02d", req.Year, req.Month),
		StartDate: start.Format(dateLayout),
		EndDate:   end.Format(dateLayout),
		Employees: len(reports),
		Reports:   reports,
	}, nil
}

// PendingExit implements report.ReportService.
func (s *ReportServiceImpl) PendingExit(ctx context.Context, req report.PendingExitRequest) (report.PendingExitResponse, error) {
	if err := req.Validate(); err != nil {
		return report.PendingExitResponse{}, err
	}

	now := s.now().In(s.rules.Location)
	date := period.Day(now)
	if req.Date != "" {
		date, _ = time.ParseInLocation(dateLayout, req.Date, s.rules.Location)
	}

	from, to := rangeWithMargin(date, date)
	rows, err := s.eventRepo.ListByRange(ctx, from, to, event.Filter{Site: req.Site})
	if err != nil {
		return report.PendingExitResponse{}, fmt.Errorf("failed to list events: %w", err)
	}

	grouped := groupByEmployee(rows)
	codes := make([]string, 0, len(grouped))
	for code := range grouped {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	pending := make([]report.PendingExitEmployee, 0)
	for _, code := range codes {
		g := grouped[code]
		days, _ := BuildDays(g.rows, s.rules)
		for _, d := range days {
			if !d.Date.Equal(date) {
				continue
			}
			for _, session := range d.Sessions {
				if !session.Open() {
					continue
				}
				elapsed := int64(now.Sub(session.Entry) / time.Second)
				if elapsed < 0 {
					elapsed = 0
				}
				pending = append(pending, report.PendingExitEmployee{
					EmployeeCode:   code,
					EmployeeName:   g.name,
					Site:           g.site,
					EntryTime:      session.Entry.Format(time.RFC3339),
					ElapsedSeconds: elapsed,
				})
			}
		}
	}

	return report.PendingExitResponse{
		Date:      date.Format(dateLayout),
		Total:     len(pending),
		Employees: pending,
	}, nil
}

// Stats implements report.ReportService.
func (s *ReportServiceImpl) Stats(ctx context.Context, req report.StatsRequest) (report.StatsResponse, error) {
	if err := req.Validate(); err != nil {
		return report.StatsResponse{}, err
	}

	start, _ := time.ParseInLocation(dateLayout, req.StartDate, s.rules.Location)
	end, _ := time.ParseInLocation(dateLayout, req.EndDate, s.rules.Location)

	from, to := rangeWithMargin(start, end)
	rows, err := s.eventRepo.ListByRange(ctx, from, to, event.Filter{Site: req.Site})
	if err != nil {
		return report.StatsResponse{}, fmt.Errorf("failed to list events: %w", err)
	}

	grouped := groupByEmployee(rows)
	summaries := make([]report.PeriodSummary, 0, len(grouped))
	for code, g := range grouped {
		days, _ := BuildDays(g.rows, s.rules)
		days = clipDays(days, start, end)
		if len(days) == 0 {
			continue
		}
		summaries = append(summaries, AggregatePeriod(code, start, end, days, s.rules))
	}
	stats := Statistics(summaries)

	return report.StatsResponse{
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Summary: report.StatsSummary{
			Employees:            stats.Employees,
			DaysWorked:           stats.DaysWorked,
			IncompleteDays:       stats.IncompleteDays,
			AverageSecondsPerDay: stats.AverageSecondsPerDay,
			TotalWorkedSeconds:   stats.TotalWorkedSeconds,
			TotalOvertimeSeconds: stats.TotalOvertimeSeconds,
		},
		Sites: siteStats(rows, start, end),
	}, nil
}

// siteStats tallies per-site event counts inside [start, end]. A row without
// a recognition confidence was forced in manually at the device.
func siteStats(rows []event.RawEvent, start, end time.Time) []report.SiteStats {
	type tally struct {
		stats     report.SiteStats
		employees map[string]struct{}
	}
	bySite := make(map[string]*tally)
	upper := end.AddDate(0, 0, 1)

	for _, row := range rows {
		if row.Timestamp.Before(start) || !row.Timestamp.Before(upper) {
			continue
		}
		t, ok := bySite[row.Site]
		if !ok {
			t = &tally{stats: report.SiteStats{Site: row.Site}, employees: map[string]struct{}{}}
			bySite[row.Site] = t
		}
		t.stats.Events++
		switch row.Direction {
		case event.DirectionEntry:
			t.stats.Entries++
		case event.DirectionExit:
			t.stats.Exits++
		}
		if row.Confidence == nil {
			t.stats.Forced++
		}
		t.employees[row.EmployeeCode] = struct{}{}
	}

	sites := make([]string, 0, len(bySite))
	for site := range bySite {
		sites = append(sites, site)
	}
	sort.Strings(sites)

	out := make([]report.SiteStats, 0, len(sites))
	for _, site := range sites {
		t := bySite[site]
		t.stats.Employees = len(t.employees)
		out = append(out, t.stats)
	}
	return out
}
