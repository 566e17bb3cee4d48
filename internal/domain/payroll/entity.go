package payroll

import (
	"github.com/shopspring/decimal"
)

// Rates are the stored hourly pay values used to price a biweekly summary.
// They come from the configuracion table; missing keys default to zero so a
// summary can still report hours without pricing.
type Rates struct {
	RegularHour  decimal.Decimal
	OvertimeHour decimal.Decimal
}

// Summary is the payroll-ready aggregate for one employee over one biweekly
// period. Constructed on demand from a period summary; never stored.
type Summary struct {
	EmployeeID         string
	EmployeeCode       string
	EmployeeName       string
	PeriodID           string
	RegularHours       decimal.Decimal
	OvertimeHours      decimal.Decimal
	DaysWorked         int
	IncompleteDayCount int
	RegularAmount      decimal.Decimal
	OvertimeAmount     decimal.Decimal
	TotalAmount        decimal.Decimal
}
