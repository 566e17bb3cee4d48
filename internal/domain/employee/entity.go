package employee

import (
	"time"
)

// Employee mirrors one row of the empleados table.
type Employee struct {
	ID            string
	Code          string
	FirstName     string
	LastName      string
	Email         *string
	Phone         *string
	Department    *string
	Position      *string
	Site          string
	SundayPremium bool
	RestDay       *string
	Active        bool
	CreatedAt     time.Time
}

// FullName returns the display name used across reports.
func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}
