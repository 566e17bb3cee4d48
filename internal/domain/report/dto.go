package report

import (
	"fmt"
	"time"

	"github.com/acceso-labs/acceso-backend-go/internal/pkg/validator"
	"github.com/google/uuid"
)

// ========================================
// DAILY HOURS REPORT
// ========================================

type DailyReportRequest struct {
	EmployeeID string
	Date       string
}

func (r *DailyReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if err := uuid.Validate(r.EmployeeID); err != nil {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id must be a valid UUID",
		})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SessionResponse struct {
	Entry           string  `json:"entry"`
	Exit            *string `json:"exit,omitempty"`
	Open            bool    `json:"open"`
	DurationSeconds int64   `json:"duration_seconds"`
}

type DailyHoursResponse struct {
	Date            string            `json:"date"`
	WorkedSeconds   int64             `json:"worked_seconds"`
	RegularSeconds  int64             `json:"regular_seconds"`
	OvertimeSeconds int64             `json:"overtime_seconds"`
	Incomplete      bool              `json:"incomplete"`
	Sessions        []SessionResponse `json:"sessions"`
	Anomalies       []string          `json:"anomalies,omitempty"`
}

type DailyReportResponse struct {
	EmployeeID   string             `json:"employee_id"`
	EmployeeCode string             `json:"employee_code"`
	EmployeeName string             `json:"employee_name"`
	Day          DailyHoursResponse `json:"day"`
	Note         string             `json:"note,omitempty"`
	RejectedRows []string           `json:"rejected_rows,omitempty"`
}

// ========================================
// WEEKLY / MONTHLY REPORTS
// ========================================

type WeeklyReportRequest struct {
	// Date is any date inside the wanted week; empty means the current week.
	Date       string
	EmployeeID *string
	Site       *string
}

func (r *WeeklyReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Date != "" {
		if _, ok := validator.IsValidDate(r.Date); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be in YYYY-MM-DD format",
			})
		}
	}
	if r.EmployeeID != nil {
		if err := uuid.Validate(*r.EmployeeID); err != nil {
			errs = append(errs, validator.ValidationError{
				Field:   "employee_id",
				Message: "employee_id must be a valid UUID",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type MonthlyReportRequest struct {
	Year       int
	Month      int
	EmployeeID *string
	Site       *string
}

func (r *MonthlyReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}
	currentYear := time.Now().Year()
	if r.Year < 2020 || r.Year > currentYear+1 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: fmt.Sprintf("year must be between 2020 and %d", currentYear+1),
		})
	}
	if r.EmployeeID != nil {
		if err := uuid.Validate(*r.EmployeeID); err != nil {
			errs = append(errs, validator.ValidationError{
				Field:   "employee_id",
				Message: "employee_id must be a valid UUID",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type WeekExcessResponse struct {
	Start         string `json:"start"`
	End           string `json:"end"`
	WorkedSeconds int64  `json:"worked_seconds"`
}

type PeriodSummaryResponse struct {
	EmployeeID      string               `json:"employee_id"`
	EmployeeCode    string               `json:"employee_code"`
	EmployeeName    string               `json:"employee_name"`
	StartDate       string               `json:"start_date"`
	EndDate         string               `json:"end_date"`
	TotalSeconds    int64                `json:"total_seconds"`
	RegularSeconds  int64                `json:"regular_seconds"`
	OvertimeSeconds int64                `json:"overtime_seconds"`
	IncompleteDays  int                  `json:"incomplete_days"`
	Alerts          []Alert              `json:"alerts"`
	ExcessDays      []string             `json:"excess_days,omitempty"`
	ExcessWeeks     []WeekExcessResponse `json:"excess_weeks,omitempty"`
	Days            []DailyHoursResponse `json:"days"`
	RejectedRows    []string             `json:"rejected_rows,omitempty"`
}

type WeeklyReportResponse struct {
	WeekStart string                  `json:"week_start"`
	WeekEnd   string                  `json:"week_end"`
	Employees int                     `json:"total_employees"`
	Reports   []PeriodSummaryResponse `json:"reports"`
}

type MonthlyReportResponse struct {
	Period    string                  `json:"period"`
	StartDate string                  `json:"start_date"`
	EndDate   string                  `json:"end_date"`
	Employees int                     `json:"total_employees"`
	Reports   []PeriodSummaryResponse `json:"reports"`
}

// ========================================
// PENDING EXIT
// ========================================

type PendingExitRequest struct {
	// Date defaults to today in the configured timezone when empty.
	Date string
	Site *string
}

func (r *PendingExitRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Date != "" {
		if _, ok := validator.IsValidDate(r.Date); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PendingExitEmployee struct {
	EmployeeCode   string `json:"employee_code"`
	EmployeeName   string `json:"employee_name"`
	Site           string `json:"site"`
	EntryTime      string `json:"entry_time"`
	ElapsedSeconds int64  `json:"elapsed_seconds"`
}

type PendingExitResponse struct {
	Date      string                `json:"date"`
	Total     int                   `json:"total_pending"`
	Employees []PendingExitEmployee `json:"employees"`
}

// ========================================
// ATTENDANCE STATISTICS
// ========================================

type StatsRequest struct {
	StartDate string
	EndDate   string
	Site      *string
}

func (r *StatsRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, _, ok := validator.IsValidDateRange(r.StartDate, r.EndDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "start,end",
			Message: "start and end must be YYYY-MM-DD dates with start <= end",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SiteStats struct {
	Site      string `json:"site"`
	Events    int    `json:"events"`
	Entries   int    `json:"entries"`
	Exits     int    `json:"exits"`
	Forced    int    `json:"forced"`
	Employees int    `json:"employees"`
}

type StatsSummary struct {
	Employees            int   `json:"employees"`
	DaysWorked           int   `json:"days_worked"`
	IncompleteDays       int   `json:"incomplete_days"`
	AverageSecondsPerDay int64 `json:"average_seconds_per_day"`
	TotalWorkedSeconds   int64 `json:"total_worked_seconds"`
	TotalOvertimeSeconds int64 `json:"total_overtime_seconds"`
}

type StatsResponse struct {
	StartDate string       `json:"start_date"`
	EndDate   string       `json:"end_date"`
	Summary   StatsSummary `json:"summary"`
	Sites     []SiteStats  `json:"sites"`
}
