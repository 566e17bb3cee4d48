package report

import (
	"context"
)

// ReportService defines the worked-hours reporting operations. Every call
// recomputes from raw events; nothing is cached or persisted.
type ReportService interface {
	// Daily computes the worked-hours breakdown for one employee-day.
	Daily(ctx context.Context, req DailyReportRequest) (DailyReportResponse, error)

	// Weekly rolls daily results into one Monday-Sunday week, raising
	// overtime alerts against the configured thresholds.
	Weekly(ctx context.Context, req WeeklyReportRequest) (WeeklyReportResponse, error)

	// Monthly rolls daily results into one calendar month.
	Monthly(ctx context.Context, req MonthlyReportRequest) (MonthlyReportResponse, error)

	// PendingExit lists employees with an open session on the given date.
	PendingExit(ctx context.Context, req PendingExitRequest) (PendingExitResponse, error)

	// Stats aggregates attendance statistics over a date range.
	Stats(ctx context.Context, req StatsRequest) (StatsResponse, error)
}
