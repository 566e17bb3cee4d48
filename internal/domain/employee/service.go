package employee

import (
	"context"
)

// EmployeeService defines employee lookup operations.
type EmployeeService interface {
	// List retrieves employees with optional site/department filters.
	List(ctx context.Context, req ListRequest) (ListResponse, error)

	// Search finds employees by code or name fragment. Returns
	// ErrEmployeeNotFound when nothing matches, never an empty default.
	Search(ctx context.Context, req SearchRequest) (SearchResponse, error)

	// Get retrieves one employee by ID.
	Get(ctx context.Context, id string) (EmployeeResponse, error)
}
