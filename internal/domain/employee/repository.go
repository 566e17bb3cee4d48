package employee

import (
	"context"
)

// Filter narrows employee listings. Nil fields are not applied.
type Filter struct {
	ActiveOnly bool
	Site       *string
	Department *string
}

type EmployeeRepository interface {
	// List retrieves employees ordered by last name, first name.
	List(ctx context.Context, filter Filter) ([]Employee, error)

	// Search matches term against employee code, first name and last name,
	// exact code matches first. Capped at 20 rows.
	Search(ctx context.Context, term string) ([]Employee, error)

	// GetByID retrieves one employee. Returns ErrEmployeeNotFound when no
	// row matches.
	GetByID(ctx context.Context, id string) (Employee, error)

	// GetByCode retrieves one employee by employee code.
	GetByCode(ctx context.Context, code string) (Employee, error)
}
