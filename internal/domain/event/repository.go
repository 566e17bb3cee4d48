package event

import (
	"context"
	"time"
)

// Filter narrows event queries. Nil fields are not applied.
type Filter struct {
	EmployeeID *string
	Site       *string
	Direction  *Direction
}

// EventRepository defines read access to the raw access-control log.
// The log is append-only from this service's point of view; nothing here
// writes.
type EventRepository interface {
	// ListByDate retrieves all events whose local calendar date matches date.
	ListByDate(ctx context.Context, date time.Time, filter Filter) ([]RawEvent, error)

	// ListByRange retrieves events with timestamps in [start, end), ordered
	// ascending by timestamp.
	ListByRange(ctx context.Context, start, end time.Time, filter Filter) ([]RawEvent, error)

	// LastByEmployee retrieves the most recent event for one employee.
	// Returns ErrEventNotFound when the employee has no events at all.
	LastByEmployee(ctx context.Context, employeeID string) (RawEvent, error)
}
