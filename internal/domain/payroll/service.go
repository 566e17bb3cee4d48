package payroll

import (
	"context"
)

// PayrollService produces payroll-ready biweekly summaries.
type PayrollService interface {
	// Biweekly computes one summary per employee for the selected period.
	// Returns ErrPeriodMismatch when an explicit date range does not align
	// to the configured biweekly boundaries.
	Biweekly(ctx context.Context, req BiweeklyRequest) (BiweeklyResponse, error)
}
