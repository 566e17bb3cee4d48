package event

import (
	"context"
)

// EventService defines read operations over the raw access-control log.
type EventService interface {
	// ByDate lists events for one local calendar date.
	ByDate(ctx context.Context, req ByDateRequest) (ByDateResponse, error)

	// ByRange lists events between two dates, both inclusive.
	ByRange(ctx context.Context, req ByRangeRequest) (ByRangeResponse, error)

	// Last returns the most recent event for one employee together with the
	// next expected direction.
	Last(ctx context.Context, req LastRequest) (LastResponse, error)
}
