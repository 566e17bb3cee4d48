package payroll

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acceso-labs/acceso-backend-go/internal/domain/event"
	"github.com/acceso-labs/acceso-backend-go/internal/domain/payroll"
	domainreport "github.com/acceso-labs/acceso-backend-go/internal/domain/report"
	"github.com/acceso-labs/acceso-backend-go/internal/domain/settings"
)

const testEmployeeID = "0d4cba86-6b1c-4b0e-9a3e-64c0f3d2a111"

type stubEventRepo struct {
	rows []event.RawEvent
}

func (s *stubEventRepo) ListByDate(ctx context.Context, date time.Time, filter event.Filter) ([]event.RawEvent, error) {
	return s.ListByRange(ctx, date, date.AddDate(0, 0, 1), filter)
}

func (s *stubEventRepo) ListByRange(_ context.Context, start, end time.Time, filter event.Filter) ([]event.RawEvent, error) {
	var out []event.RawEvent
	for _, row := range s.rows {
		if row.Timestamp.Before(start) || !row.Timestamp.Before(end) {
			continue
		}
		if filter.Site != nil && row.Site != *filter.Site {
			continue
		}
		out = append(out, row)
	}
	return out, nil
}

func (s *stubEventRepo) LastByEmployee(context.Context, string) (event.RawEvent, error) {
	return event.RawEvent{}, event.ErrEventNotFound
}

type stubSettingsRepo struct {
	settings map[string]settings.Setting
}

func (s *stubSettingsRepo) List(context.Context) ([]settings.Setting, error) {
	var out []settings.Setting
	for _, setting := range s.settings {
		out = append(out, setting)
	}
	return out, nil
}

func (s *stubSettingsRepo) GetByKey(_ context.Context, key string) (settings.Setting, error) {
	setting, ok := s.settings[key]
	if !ok {
		return settings.Setting{}, settings.ErrSettingNotFound
	}
	return setting, nil
}

func testRules() domainreport.Rules {
	return domainreport.Rules{
		Location:        time.UTC,
		DailyThreshold:  8 * time.Hour,
		WeeklyThreshold: 48 * time.Hour,
		WeeklyWindow:    domainreport.WeeklyWindowCalendar,
	}
}

func at(day, hour int) time.Time {
	return time.Date(2026, time.August, day, hour, 0, 0, 0, time.UTC)
}

func payrollEvent(day, hour int, dir event.Direction) event.RawEvent {
	name := "Maria Gomez"
	return event.RawEvent{
		ID:           time.Date(2026, time.August, day, hour, 0, 0, 0, time.UTC).Format(time.RFC3339),
		EmployeeID:   testEmployeeID,
		EmployeeCode: "EMP-001",
		EmployeeName: &name,
		Direction:    dir,
		Site:         "sede-principal",
		Timestamp:    at(day, hour),
	}
}

func ratesRepo(regular, overtime string) *stubSettingsRepo {
	return &stubSettingsRepo{settings: map[string]settings.Setting{
		"valor_hora_ordinaria":    {Key: "valor_hora_ordinaria", Value: regular, DataType: "decimal"},
		"valor_hora_extra_diurna": {Key: "valor_hora_extra_diurna", Value: overtime, DataType: "decimal"},
	}}
}

func TestBiweeklyByYearMonthHalf(t *testing.T) {
	rows := []event.RawEvent{
		payrollEvent(3, 8, event.DirectionEntry),
		payrollEvent(3, 16, event.DirectionExit),
		payrollEvent(4, 7, event.DirectionEntry),
		payrollEvent(4, 17, event.DirectionExit),
	}
	svc := NewPayrollService(&stubEventRepo{rows: rows}, ratesRepo("10000", "12500"), testRules())

	resp, err := svc.Biweekly(context.Background(), payroll.BiweeklyRequest{
		Year: 2026, Month: 8, Half: 1,
	})
	require.NoError(t, err)

	assert.Equal(t, "2026-08-Q1", resp.PeriodID)
	assert.Equal(t, "2026-08-01", resp.StartDate)
	assert.Equal(t, "2026-08-15", resp.EndDate)
	require.Equal(t, 1, resp.Employees)

	s := resp.Summaries[0]
	assert.Equal(t, "EMP-001", s.EmployeeCode)
	assert.Equal(t, "Maria Gomez", s.EmployeeName)
	assert.Equal(t, "2026-08-Q1", s.PeriodID)
	assert.Equal(t, 2, s.DaysWorked)
	assert.Equal(t, 0, s.IncompleteDayCount)
	assert.Equal(t, "16", s.RegularHours.String())
	assert.Equal(t, "2", s.OvertimeHours.String())
	assert.Equal(t, "160000", s.RegularAmount.String())
	assert.Equal(t, "25000", s.OvertimeAmount.String())
	assert.Equal(t, "185000", s.TotalAmount.String())
}

func TestBiweeklyByAlignedRange(t *testing.T) {
	rows := []event.RawEvent{
		payrollEvent(18, 8, event.DirectionEntry),
		payrollEvent(18, 12, event.DirectionExit),
	}
	svc := NewPayrollService(&stubEventRepo{rows: rows}, ratesRepo("10000", "12500"), testRules())

	resp, err := svc.Biweekly(context.Background(), payroll.BiweeklyRequest{
		StartDate: "2026-08-16",
		EndDate:   "2026-08-31",
	})
	require.NoError(t, err)

	assert.Equal(t, "2026-08-Q2", resp.PeriodID)
	require.Equal(t, 1, resp.Employees)
	assert.Equal(t, "4", resp.Summaries[0].RegularHours.String())
	assert.Equal(t, "40000", resp.Summaries[0].TotalAmount.String())
}

func TestBiweeklyMisalignedRange(t *testing.T) {
	svc := NewPayrollService(&stubEventRepo{}, ratesRepo("10000", "12500"), testRules())

	_, err := svc.Biweekly(context.Background(), payroll.BiweeklyRequest{
		StartDate: "2026-08-03",
		EndDate:   "2026-08-16",
	})
	assert.ErrorIs(t, err, payroll.ErrPeriodMismatch)
}

func TestBiweeklyMissingRatesReportsHoursOnly(t *testing.T) {
	rows := []event.RawEvent{
		payrollEvent(3, 8, event.DirectionEntry),
		payrollEvent(3, 16, event.DirectionExit),
	}
	svc := NewPayrollService(&stubEventRepo{rows: rows}, &stubSettingsRepo{settings: map[string]settings.Setting{}}, testRules())

	resp, err := svc.Biweekly(context.Background(), payroll.BiweeklyRequest{
		Year: 2026, Month: 8, Half: 1,
	})
	require.NoError(t, err)
	require.Equal(t, 1, resp.Employees)

	s := resp.Summaries[0]
	assert.Equal(t, "8", s.RegularHours.String())
	assert.True(t, s.RegularAmount.IsZero())
	assert.True(t, s.TotalAmount.IsZero())
}

func TestBiweeklyIncompleteDayCount(t *testing.T) {
	rows := []event.RawEvent{
		payrollEvent(5, 8, event.DirectionEntry),
	}
	svc := NewPayrollService(&stubEventRepo{rows: rows}, ratesRepo("10000", "12500"), testRules())

	resp, err := svc.Biweekly(context.Background(), payroll.BiweeklyRequest{
		Year: 2026, Month: 8, Half: 1,
	})
	require.NoError(t, err)
	require.Equal(t, 1, resp.Employees)

	s := resp.Summaries[0]
	assert.Equal(t, 1, s.IncompleteDayCount)
	assert.True(t, s.RegularHours.IsZero())
}

func TestBiweeklyInvalidHalf(t *testing.T) {
	svc := NewPayrollService(&stubEventRepo{}, ratesRepo("10000", "12500"), testRules())

	_, err := svc.Biweekly(context.Background(), payroll.BiweeklyRequest{
		Year: 2026, Month: 8, Half: 3,
	})
	assert.Error(t, err)
}
