package payroll

import (
	"fmt"
	"time"

	"github.com/acceso-labs/acceso-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// BiweeklyRequest selects a payroll period either by (year, month, half) or
// by explicit start/end dates. Explicit dates must align exactly to a
// biweekly boundary; the service validates, the caller selects.
type BiweeklyRequest struct {
	Year      int
	Month     int
	Half      int
	StartDate string
	EndDate   string
	Site      *string
}

// ByRange reports whether the request selects the period by explicit dates.
func (r *BiweeklyRequest) ByRange() bool {
	return r.StartDate != "" || r.EndDate != ""
}

func (r *BiweeklyRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.ByRange() {
		if _, _, ok := validator.IsValidDateRange(r.StartDate, r.EndDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "start,end",
				Message: "start and end must be YYYY-MM-DD dates with start <= end",
			})
		}
	} else {
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
		if r.Half != 1 && r.Half != 2 {
			errs = append(errs, validator.ValidationError{
				Field:   "half",
				Message: "half must be 1 (days 1-15) or 2 (day 16 to end of month)",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SummaryResponse struct {
	EmployeeID         string          `json:"employee_id"`
	EmployeeCode       string          `json:"employee_code"`
	EmployeeName       string          `json:"employee_name"`
	PeriodID           string          `json:"period_id"`
	RegularHours       decimal.Decimal `json:"regular_hours"`
	OvertimeHours      decimal.Decimal `json:"overtime_hours"`
	DaysWorked         int             `json:"days_worked"`
	IncompleteDayCount int             `json:"incomplete_day_count"`
	RegularAmount      decimal.Decimal `json:"regular_amount"`
	OvertimeAmount     decimal.Decimal `json:"overtime_amount"`
	TotalAmount        decimal.Decimal `json:"total_amount"`
}

type BiweeklyResponse struct {
	PeriodID  string            `json:"period_id"`
	StartDate string            `json:"start_date"`
	EndDate   string            `json:"end_date"`
	Employees int               `json:"total_employees"`
	Summaries []SummaryResponse `json:"summaries"`
}

// ToResponse converts a Summary entity to its wire representation.
func ToResponse(s Summary) SummaryResponse {
	return SummaryResponse{
		EmployeeID:         s.EmployeeID,
		EmployeeCode:       s.EmployeeCode,
		EmployeeName:       s.EmployeeName,
		PeriodID:           s.PeriodID,
		RegularHours:       s.RegularHours,
		OvertimeHours:      s.OvertimeHours,
		DaysWorked:         s.DaysWorked,
		IncompleteDayCount: s.IncompleteDayCount,
		RegularAmount:      s.RegularAmount,
		OvertimeAmount:     s.OvertimeAmount,
		TotalAmount:        s.TotalAmount,
	}
}
