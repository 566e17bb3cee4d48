package payroll

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/acceso-labs/acceso-backend-go/internal/domain/event"
	"github.com/acceso-labs/acceso-backend-go/internal/domain/payroll"
	domainreport "github.com/acceso-labs/acceso-backend-go/internal/domain/report"
	"github.com/acceso-labs/acceso-backend-go/internal/domain/settings"
	"github.com/acceso-labs/acceso-backend-go/internal/pkg/period"
	"github.com/acceso-labs/acceso-backend-go/internal/service/report"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

const (
	dateLayout = "2006-01-02"

	// configuracion keys holding the hourly pay values.
	keyRegularHourRate  = "valor_hora_ordinaria"
	keyOvertimeHourRate = "valor_hora_extra_diurna"
)

var secondsPerHour = decimal.NewFromInt(3600)

type PayrollServiceImpl struct {
	eventRepo    event.EventRepository
	settingsRepo settings.SettingsRepository
	rules        domainreport.Rules
}

func NewPayrollService(
	eventRepo event.EventRepository,
	settingsRepo settings.SettingsRepository,
	rules domainreport.Rules,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		eventRepo:    eventRepo,
		settingsRepo: settingsRepo,
		rules:        rules,
	}
}

// Biweekly implements payroll.PayrollService.
func (s *PayrollServiceImpl) Biweekly(ctx context.Context, req payroll.BiweeklyRequest) (payroll.BiweeklyResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.BiweeklyResponse{}, err
	}

	start, end, periodID, err := s.resolvePeriod(req)
	if err != nil {
		return payroll.BiweeklyResponse{}, err
	}

	rates, err := s.loadRates(ctx)
	if err != nil {
		return payroll.BiweeklyResponse{}, err
	}

	rows, err := s.eventRepo.ListByRange(ctx, start.AddDate(0, 0, -1), end.AddDate(0, 0, 2), event.Filter{Site: req.Site})
	if err != nil {
		return payroll.BiweeklyResponse{}, fmt.Errorf("failed to list events: %w", err)
	}

	byEmployee := make(map[string][]event.RawEvent)
	meta := make(map[string]event.RawEvent)
	for _, row := range rows {
		if _, ok := meta[row.EmployeeCode]; !ok {
			meta[row.EmployeeCode] = row
		}
		byEmployee[row.EmployeeCode] = append(byEmployee[row.EmployeeCode], row)
	}

	codes := make([]string, 0, len(byEmployee))
	for code := range byEmployee {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	summaries := make([]payroll.SummaryResponse, 0, len(codes))
	for _, code := range codes {
		days, _ := report.BuildDays(byEmployee[code], s.rules)
		var kept []domainreport.DailyHours
		for _, d := range days {
			if d.Date.Before(start) || d.Date.After(end) {
				continue
			}
			kept = append(kept, d)
		}
		if len(kept) == 0 {
			continue
		}
		ps := report.AggregatePeriod(code, start, end, kept, s.rules)
		summaries = append(summaries, payroll.ToResponse(buildSummary(meta[code], periodID, ps, rates)))
	}

	return payroll.BiweeklyResponse{
		PeriodID:  periodID,
		StartDate: start.Format(dateLayout),
		EndDate:   end.Format(dateLayout),
		Employees: len(summaries),
		Summaries: summaries,
	}, nil
}

func (s *PayrollServiceImpl) resolvePeriod(req payroll.BiweeklyRequest) (time.Time, time.Time, string, error) {
	if req.ByRange() {
		start, _ := time.ParseInLocation(dateLayout, req.StartDate, s.rules.Location)
		end, _ := time.ParseInLocation(dateLayout, req.EndDate, s.rules.Location)
		year, month, half, ok := period.MatchBiweek(start, end)
		if !ok {
			return time.Time{}, time.Time{}, "", payroll.ErrPeriodMismatch
		}
		return start, end, period.BiweekLabel(year, month, half), nil
	}

	start, end, err := period.BiweekRange(req.Year, time.Month(req.Month), req.Half, s.rules.Location)
	if err != nil {
		return time.Time{}, time.Time{}, "", payroll.ErrInvalidHalf
	}
	return start, end, period.BiweekLabel(req.Year, time.Month(req.Month), req.Half), nil
}

// loadRates reads the hourly pay values from configuracion. A missing or
// unparseable key degrades to a zero rate so the summary still reports hours.
func (s *PayrollServiceImpl) loadRates(ctx context.Context) (payroll.Rates, error) {
	var rates payroll.Rates
	var err error
	if rates.RegularHour, err = s.loadRate(ctx, keyRegularHourRate); err != nil {
		return payroll.Rates{}, err
	}
	if rates.OvertimeHour, err = s.loadRate(ctx, keyOvertimeHourRate); err != nil {
		return payroll.Rates{}, err
	}
	return rates, nil
}

func (s *PayrollServiceImpl) loadRate(ctx context.Context, key string) (decimal.Decimal, error) {
	setting, err := s.settingsRepo.GetByKey(ctx, key)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, settings.ErrSettingNotFound) {
			return decimal.Zero, nil
		}
		return decimal.Zero, fmt.Errorf("failed to get setting %s: %w", key, err)
	}
	rate, err := decimal.NewFromString(setting.Value)
	if err != nil {
		slog.Warn("stored rate is not a number, using zero", "key", key, "value", setting.Value)
		return decimal.Zero, nil
	}
	return rate, nil
}

// hoursFromSeconds converts worked seconds to decimal hours at two places.
func hoursFromSeconds(seconds int64) decimal.Decimal {
	return decimal.NewFromInt(seconds).Div(secondsPerHour).Round(2)
}

func buildSummary(first event.RawEvent, periodID string, ps domainreport.PeriodSummary, rates payroll.Rates) payroll.Summary {
	regularHours := hoursFromSeconds(ps.RegularSeconds)
	overtimeHours := hoursFromSeconds(ps.OvertimeSeconds)
	regularAmount := regularHours.Mul(rates.RegularHour).Round(2)
	overtimeAmount := overtimeHours.Mul(rates.OvertimeHour).Round(2)

	daysWorked := 0
	for _, d := range ps.Days {
		if len(d.Sessions) > 0 {
			daysWorked++
		}
	}

	name := ""
	if first.EmployeeName != nil {
		name = *first.EmployeeName
	}
	return payroll.Summary{
		EmployeeID:         first.EmployeeID,
		EmployeeCode:       ps.EmployeeCode,
		EmployeeName:       name,
		PeriodID:           periodID,
		RegularHours:       regularHours,
		OvertimeHours:      overtimeHours,
		DaysWorked:         daysWorked,
		IncompleteDayCount: ps.IncompleteDays,
		RegularAmount:      regularAmount,
		OvertimeAmount:     overtimeAmount,
		TotalAmount:        regularAmount.Add(overtimeAmount).Round(2),
	}
}
