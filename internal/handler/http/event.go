package http

import (
	"net/http"

	"github.com/acceso-labs/acceso-backend-go/internal/domain/event"
	"github.com/acceso-labs/acceso-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type EventHandler interface {
	ByDate(w http.ResponseWriter, r *http.Request)
	ByRange(w http.ResponseWriter, r *http.Request)
	Last(w http.ResponseWriter, r *http.Request)
}

type eventHandlerImpl struct {
	eventService event.EventService
}

func NewEventHandler(eventService event.EventService) EventHandler {
	return &eventHandlerImpl{eventService: eventService}
}

// ByDate handles GET /events
func (h *eventHandlerImpl) ByDate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req := event.ByDateRequest{
		Date:       r.URL.Query().Get("date"),
		EmployeeID: queryPtr(r, "employee_id"),
		Site:       queryPtr(r, "site"),
		Direction:  queryPtr(r, "direction"),
	}

	result, err := h.eventService.ByDate(ctx, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ByRange handles GET /events/range
func (h *eventHandlerImpl) ByRange(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req := event.ByRangeRequest{
		StartDate:  r.URL.Query().Get("start"),
		EndDate:    r.URL.Query().Get("end"),
		EmployeeID: queryPtr(r, "employee_id"),
		Site:       queryPtr(r, "site"),
		Direction:  queryPtr(r, "direction"),
	}

	result, err := h.eventService.ByRange(ctx, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Last handles GET /employees/{id}/events/last
func (h *eventHandlerImpl) Last(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req := event.LastRequest{
		EmployeeID: chi.URLParam(r, "id"),
	}

	result, err := h.eventService.Last(ctx, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
