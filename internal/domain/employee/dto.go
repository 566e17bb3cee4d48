package employee

import (
	"github.com/acceso-labs/acceso-backend-go/internal/pkg/validator"
)

type ListRequest struct {
	ActiveOnly bool
	Site       *string
	Department *string
}

type SearchRequest struct {
	Term string
}

func (r *SearchRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Term) {
		errs = append(errs, validator.ValidationError{
			Field:   "q",
			Message: "search term must not be empty",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	ID            string  `json:"id"`
	Code          string  `json:"employee_code"`
	FullName      string  `json:"full_name"`
	FirstName     string  `json:"first_name"`
	LastName      string  `json:"last_name"`
	Email         *string `json:"email,omitempty"`
	Phone         *string `json:"phone,omitempty"`
	Department    *string `json:"department,omitempty"`
	Position      *string `json:"position,omitempty"`
	Site          string  `json:"site"`
	SundayPremium bool    `json:"sunday_premium"`
	RestDay       *string `json:"rest_day,omitempty"`
	Active        bool    `json:"active"`
}

type ListResponse struct {
	Total     int                `json:"total"`
	Employees []EmployeeResponse `json:"employees"`
}

type SearchResponse struct {
	Term      string             `json:"term"`
	Results   int                `json:"results"`
	Employees []EmployeeResponse `json:"employees"`
}

// ToResponse converts an Employee entity to its wire representation.
func ToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:            e.ID,
		Code:          e.Code,
		FullName:      e.FullName(),
		FirstName:     e.FirstName,
		LastName:      e.LastName,
		Email:         e.Email,
		Phone:         e.Phone,
		Department:    e.Department,
		Position:      e.Position,
		Site:          e.Site,
		SundayPremium: e.SundayPremium,
		RestDay:       e.RestDay,
		Active:        e.Active,
	}
}
