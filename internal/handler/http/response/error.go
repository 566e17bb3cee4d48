package response

import (
	"errors"
	"net/http"

	"github.com/acceso-labs/acceso-backend-go/internal/domain/employee"
	"github.com/acceso-labs/acceso-backend-go/internal/domain/event"
	"github.com/acceso-labs/acceso-backend-go/internal/domain/payroll"
	"github.com/acceso-labs/acceso-backend-go/internal/domain/report"
	"github.com/acceso-labs/acceso-backend-go/internal/domain/settings"
	"github.com/acceso-labs/acceso-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Event domain errors
	case errors.Is(err, event.ErrEventNotFound):
		NotFound(w, "No events found for this employee")
	case errors.Is(err, event.ErrInvalidEvent):
		BadRequest(w, "Invalid event query", nil)

	// Report domain errors
	case errors.Is(err, report.ErrInvalidDate):
		BadRequest(w, "Date must be in YYYY-MM-DD format", nil)

	// Payroll domain errors
	case errors.Is(err, payroll.ErrPeriodMismatch):
		BadRequest(w, "Date range does not align to a biweekly period", nil)
	case errors.Is(err, payroll.ErrInvalidHalf):
		BadRequest(w, "Half must be 1 or 2", nil)

	// Settings domain errors
	case errors.Is(err, settings.ErrSettingNotFound):
		NotFound(w, "Setting not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
