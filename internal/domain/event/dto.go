package event

import (
	"time"

	"github.com/acceso-labs/acceso-backend-go/internal/pkg/validator"
	"github.com/google/uuid"
)

type ByDateRequest struct {
	Date       string
	EmployeeID *string
	Site       *string
	Direction  *string
}

func (r *ByDateRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}
	errs = append(errs, validateEventFilter(r.EmployeeID, r.Direction)...)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ByRangeRequest struct {
	StartDate  string
	EndDate    string
	EmployeeID *string
	Site       *string
	Direction  *string
}

func (r *ByRangeRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, _, ok := validator.IsValidDateRange(r.StartDate, r.EndDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "start,end",
			Message: "start and end must be YYYY-MM-DD dates with start <= end",
		})
	}
	errs = append(errs, validateEventFilter(r.EmployeeID, r.Direction)...)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LastRequest struct {
	EmployeeID string
}

func (r *LastRequest) Validate() error {
	var errs validator.ValidationErrors

	if err := uuid.Validate(r.EmployeeID); err != nil {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id must be a valid UUID",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func validateEventFilter(employeeID, direction *string) validator.ValidationErrors {
	var errs validator.ValidationErrors

	if employeeID != nil {
		if err := uuid.Validate(*employeeID); err != nil {
			errs = append(errs, validator.ValidationError{
				Field:   "employee_id",
				Message: "employee_id must be a valid UUID",
			})
		}
	}
	if direction != nil && !validator.IsInSlice(*direction, []string{string(DirectionEntry), string(DirectionExit)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "direction",
			Message: "direction must be ENTRADA or SALIDA",
		})
	}
	return errs
}

type EventResponse struct {
	ID           string   `json:"id"`
	EmployeeID   string   `json:"employee_id"`
	EmployeeCode string   `json:"employee_code"`
	EmployeeName *string  `json:"employee_name,omitempty"`
	Direction    string   `json:"direction"`
	Site         string   `json:"site"`
	Timestamp    string   `json:"timestamp"`
	Confidence   *float64 `json:"confidence,omitempty"`
	Notes        *string  `json:"notes,omitempty"`
}

type ByDateResponse struct {
	Date   string          `json:"date"`
	Total  int             `json:"total"`
	Events []EventResponse `json:"events"`
}

type ByRangeResponse struct {
	StartDate string          `json:"start_date"`
	EndDate   string          `json:"end_date"`
	Total     int             `json:"total"`
	Events    []EventResponse `json:"events"`
}

// LastResponse carries the most recent event plus the direction the next
// event is expected to have.
type LastResponse struct {
	Event      EventResponse `json:"event"`
	NextAction string        `json:"next_expected_action"`
}

// ToResponse converts a RawEvent to its wire representation.
func ToResponse(e RawEvent) EventResponse {
	return EventResponse{
		ID:           e.ID,
		EmployeeID:   e.EmployeeID,
		EmployeeCode: e.EmployeeCode,
		EmployeeName: e.EmployeeName,
		Direction:    string(e.Direction),
		Site:         e.Site,
		Timestamp:    e.Timestamp.Format(time.RFC3339),
		Confidence:   e.Confidence,
		Notes:        e.Notes,
	}
}
