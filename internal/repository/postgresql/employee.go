package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/acceso-labs/acceso-backend-go/internal/domain/employee"
	"github.com/acceso-labs/acceso-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

const employeeColumns = `
	id, codigo_empleado, nombre, apellido, email, telefono,
	departamento, cargo, punto_trabajo, liquida_dominical, dia_descanso,
	activo, fecha_creacion`

func joinConditions(conditions []string) string {
	return strings.Join(conditions, " AND ")
}

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var e employee.Employee
	err := row.Scan(
		&e.ID, &e.Code, &e.FirstName, &e.LastName, &e.Email, &e.Phone,
		&e.Department, &e.Position, &e.Site, &e.SundayPremium, &e.RestDay,
		&e.Active, &e.CreatedAt,
	)
	return e, err
}

func scanEmployees(rows pgx.Rows) ([]employee.Employee, error) {
	var employees []employee.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read employees: %w", err)
	}
	return employees, nil
}

// List implements employee.EmployeeRepository.
func (r *employeeRepository) List(ctx context.Context, filter employee.Filter) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"TRUE"}
	var args []interface{}
	if filter.ActiveOnly {
		conditions = append(conditions, "activo = TRUE")
	}
	if filter.Site != nil {
		args = append(args, *filter.Site)
		conditions = append(conditions, fmt.Sprintf("punto_trabajo = $%d", len(args)))
	}
	if filter.Department != nil {
		args = append(args, *filter.Department)
		conditions = append(conditions, fmt.Sprintf("departamento = $%d", len(args)))
	}

	query := `
		SELECT ` + employeeColumns + `
		FROM empleados
		WHERE ` + joinConditions(conditions) + `
		ORDER BY apellido, nombre
	`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query employees: %w", err)
	}
	defer rows.Close()

	return scanEmployees(rows)
}

// Search implements employee.EmployeeRepository.
func (r *employeeRepository) Search(ctx context.Context, term string) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	// Exact code matches sort first so scanning a badge finds its owner even
	// when the code is a substring of other names.
	query := `
		SELECT ` + employeeColumns + `
		FROM empleados
		WHERE codigo_empleado ILIKE '%' || $1 || '%'
		   OR nombre ILIKE '%' || $1 || '%'
		   OR apellido ILIKE '%' || $1 || '%'
		ORDER BY (UPPER(codigo_empleado) = UPPER($1)) DESC, apellido, nombre
		LIMIT 20
	`

	rows, err := q.Query(ctx, query, term)
	if err != nil {
		return nil, fmt.Errorf("failed to search employees: %w", err)
	}
	defer rows.Close()

	return scanEmployees(rows)
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM empleados
		WHERE id = $1
	`

	e, err := scanEmployee(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by id: %w", err)
	}
	return e, nil
}

// GetByCode implements employee.EmployeeRepository.
func (r *employeeRepository) GetByCode(ctx context.Context, code string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM empleados
		WHERE UPPER(codigo_empleado) = UPPER($1)
	`

	e, err := scanEmployee(q.QueryRow(ctx, query, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by code: %w", err)
	}
	return e, nil
}
