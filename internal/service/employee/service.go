package employee

import (
	"context"
	"errors"
	"fmt"

	"github.com/acceso-labs/acceso-backend-go/internal/domain/employee"
	"github.com/acceso-labs/acceso-backend-go/internal/pkg/validator"
	"github.com/jackc/pgx/v5"
)

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{employeeRepo: employeeRepo}
}

// List implements employee.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context, req employee.ListRequest) (employee.ListResponse, error) {
	rows, err := s.employeeRepo.List(ctx, employee.Filter{
		ActiveOnly: req.ActiveOnly,
		Site:       req.Site,
		Department: req.Department,
	})
	if err != nil {
		return employee.ListResponse{}, fmt.Errorf("failed to list employees: %w", err)
	}

	resp := employee.ListResponse{
		Total:     len(rows),
		Employees: make([]employee.EmployeeResponse, 0, len(rows)),
	}
	for _, e := range rows {
		resp.Employees = append(resp.Employees, employee.ToResponse(e))
	}
	return resp, nil
}

// Search implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Search(ctx context.Context, req employee.SearchRequest) (employee.SearchResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.SearchResponse{}, err
	}

	// A term shaped like an employee code resolves by exact code first, so
	// scanning a badge never drowns in fuzzy name matches.
	if validator.IsValidEmployeeCode(req.Term) {
		e, err := s.employeeRepo.GetByCode(ctx, req.Term)
		if err == nil {
			return employee.SearchResponse{
				Term:      req.Term,
				Results:   1,
				Employees: []employee.EmployeeResponse{employee.ToResponse(e)},
			}, nil
		}
		if !errors.Is(err, employee.ErrEmployeeNotFound) && !errors.Is(err, pgx.ErrNoRows) {
			return employee.SearchResponse{}, fmt.Errorf("failed to get employee by code: %w", err)
		}
	}

	rows, err := s.employeeRepo.Search(ctx, req.Term)
	if err != nil {
		return employee.SearchResponse{}, fmt.Errorf("failed to search employees: %w", err)
	}
	if len(rows) == 0 {
		return employee.SearchResponse{}, employee.ErrEmployeeNotFound
	}

	resp := employee.SearchResponse{
		Term:      req.Term,
		Results:   len(rows),
		Employees: make([]employee.EmployeeResponse, 0, len(rows)),
	}
	for _, e := range rows {
		resp.Employees = append(resp.Employees, employee.ToResponse(e))
	}
	return resp, nil
}

// Get implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Get(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	e, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}
	return employee.ToResponse(e), nil
}
