package payroll

import "errors"

var (
	ErrPeriodMismatch = errors.New("date range does not align to a biweekly payroll period")
	ErrInvalidHalf    = errors.New("biweekly half must be 1 or 2")
)
