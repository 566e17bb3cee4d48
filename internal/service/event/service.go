package event

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/acceso-labs/acceso-backend-go/internal/domain/event"
	"github.com/jackc/pgx/v5"
)

type EventServiceImpl struct {
	eventRepo event.EventRepository
	location  *time.Location
}

func NewEventService(eventRepo event.EventRepository, location *time.Location) event.EventService {
	return &EventServiceImpl{eventRepo: eventRepo, location: location}
}

func toFilter(employeeID, site, direction *string) event.Filter {
	f := event.Filter{EmployeeID: employeeID, Site: site}
	if direction != nil {
		d := event.Direction(*direction)
		f.Direction = &d
	}
	return f
}

// ByDate implements event.EventService.
func (s *EventServiceImpl) ByDate(ctx context.Context, req event.ByDateRequest) (event.ByDateResponse, error) {
	if err := req.Validate(); err != nil {
		return event.ByDateResponse{}, err
	}

	date, err := time.ParseInLocation("2006-01-02", req.Date, s.location)
	if err != nil {
		return event.ByDateResponse{}, event.ErrInvalidEvent
	}

	rows, err := s.eventRepo.ListByDate(ctx, date, toFilter(req.EmployeeID, req.Site, req.Direction))
	if err != nil {
		return event.ByDateResponse{}, fmt.Errorf("failed to list events by date: %w", err)
	}

	resp := event.ByDateResponse{
		Date:   req.Date,
		Total:  len(rows),
		Events: make([]event.EventResponse, 0, len(rows)),
	}
	for _, e := range rows {
		resp.Events = append(resp.Events, event.ToResponse(e))
	}
	return resp, nil
}

// ByRange implements event.EventService.
func (s *EventServiceImpl) ByRange(ctx context.Context, req event.ByRangeRequest) (event.ByRangeResponse, error) {
	if err := req.Validate(); err != nil {
		return event.ByRangeResponse{}, err
	}

	start, _ := time.ParseInLocation("2006-01-02", req.StartDate, s.location)
	end, _ := time.ParseInLocation("2006-01-02", req.EndDate, s.location)

	// The end date is inclusive on the wire; the repository bound is not.
	rows, err := s.eventRepo.ListByRange(ctx, start, end.AddDate(0, 0, 1), toFilter(req.EmployeeID, req.Site, req.Direction))
	if err != nil {
		return event.ByRangeResponse{}, fmt.Errorf("failed to list events by range: %w", err)
	}

	resp := event.ByRangeResponse{
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Total:     len(rows),
		Events:    make([]event.EventResponse, 0, len(rows)),
	}
	for _, e := range rows {
		resp.Events = append(resp.Events, event.ToResponse(e))
	}
	return resp, nil
}

// Last implements event.EventService.
func (s *EventServiceImpl) Last(ctx context.Context, req event.LastRequest) (event.LastResponse, error) {
	if err := req.Validate(); err != nil {
		return event.LastResponse{}, err
	}

	last, err := s.eventRepo.LastByEmployee(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, event.ErrEventNotFound) {
			return event.LastResponse{}, event.ErrEventNotFound
		}
		return event.LastResponse{}, fmt.Errorf("failed to get last event: %w", err)
	}

	next := event.DirectionEntry
	if last.Direction == event.DirectionEntry {
		next = event.DirectionExit
	}
	return event.LastResponse{
		Event:      event.ToResponse(last),
		NextAction: string(next),
	}, nil
}
