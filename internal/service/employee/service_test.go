package employee

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acceso-labs/acceso-backend-go/internal/domain/employee"
)

type stubEmployeeRepo struct {
	employees []employee.Employee
}

func (s *stubEmployeeRepo) List(_ context.Context, filter employee.Filter) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, e := range s.employees {
		if filter.ActiveOnly && !e.Active {
			continue
		}
		if filter.Site != nil && e.Site != *filter.Site {
			continue
		}
		if filter.Department != nil && (e.Department == nil || *e.Department != *filter.Department) {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func (s *stubEmployeeRepo) Search(_ context.Context, term string) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, e := range s.employees {
		if e.Code == term {
			out = append(out, e)
		}
	}
	return out, nil
}

func (s *stubEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	for _, e := range s.employees {
		if e.ID == id {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (s *stubEmployeeRepo) GetByCode(_ context.Context, code string) (employee.Employee, error) {
	for _, e := range s.employees {
		if e.Code == code {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func testEmployees() []employee.Employee {
	return []employee.Employee{
		{ID: "id-1", Code: "EMP-001", FirstName: "Maria", LastName: "Gomez", Site: "sede-principal", Active: true},
		{ID: "id-2", Code: "EMP-002", FirstName: "Juan", LastName: "Perez", Site: "sede-norte", Active: false},
	}
}

func TestEmployeeServiceList(t *testing.T) {
	svc := NewEmployeeService(&stubEmployeeRepo{employees: testEmployees()})

	resp, err := svc.List(context.Background(), employee.ListRequest{})
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Total)
	assert.Equal(t, "Maria Gomez", resp.Employees[0].FullName)

	resp, err = svc.List(context.Background(), employee.ListRequest{ActiveOnly: true})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Total)
	assert.Equal(t, "EMP-001", resp.Employees[0].Code)
}

func TestEmployeeServiceSearch(t *testing.T) {
	svc := NewEmployeeService(&stubEmployeeRepo{employees: testEmployees()})

	resp, err := svc.Search(context.Background(), employee.SearchRequest{Term: "EMP-002"})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Results)
	assert.Equal(t, "Juan Perez", resp.Employees[0].FullName)
}

func TestEmployeeServiceSearchNoMatches(t *testing.T) {
	svc := NewEmployeeService(&stubEmployeeRepo{employees: testEmployees()})

	_, err := svc.Search(context.Background(), employee.SearchRequest{Term: "EMP-999"})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestEmployeeServiceSearchEmptyTerm(t *testing.T) {
	svc := NewEmployeeService(&stubEmployeeRepo{employees: testEmployees()})

	_, err := svc.Search(context.Background(), employee.SearchRequest{Term: "   "})
	assert.Error(t, err)
}

func TestEmployeeServiceGet(t *testing.T) {
	svc := NewEmployeeService(&stubEmployeeRepo{employees: testEmployees()})

	resp, err := svc.Get(context.Background(), "id-1")
	require.NoError(t, err)
	assert.Equal(t, "EMP-001", resp.Code)

	_, err = svc.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}
