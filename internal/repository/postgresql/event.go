package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/acceso-labs/acceso-backend-go/internal/domain/event"
	"github.com/acceso-labs/acceso-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type eventRepository struct {
	db *database.DB
}

func NewEventRepository(db *database.DB) event.EventRepository {
	return &eventRepository{db: db}
}

const eventColumns = `
	r.id, r.empleado_id, e.codigo_empleado, e.nombre || ' ' || e.apellido,
	r.tipo_registro, r.punto_trabajo, r.timestamp_registro,
	r.confianza_reconocimiento, r.observaciones`

func scanEvents(rows pgx.Rows) ([]event.RawEvent, error) {
	var events []event.RawEvent
	for rows.Next() {
		var ev event.RawEvent
		err := rows.Scan(
			&ev.ID, &ev.EmployeeID, &ev.EmployeeCode, &ev.EmployeeName,
			&ev.Direction, &ev.Site, &ev.Timestamp,
			&ev.Confidence, &ev.Notes,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read events: %w", err)
	}
	return events, nil
}

func filterConditions(filter event.Filter, conditions []string, args []interface{}) ([]string, []interface{}) {
	if filter.EmployeeID != nil {
		args = append(args, *filter.EmployeeID)
		conditions = append(conditions, fmt.Sprintf("r.empleado_id = $%d", len(args)))
	}
	if filter.Site != nil {
		args = append(args, *filter.Site)
		conditions = append(conditions, fmt.Sprintf("r.punto_trabajo = $%d", len(args)))
	}
	if filter.Direction != nil {
		args = append(args, string(*filter.Direction))
		conditions = append(conditions, fmt.Sprintf("r.tipo_registro = $%d", len(args)))
	}
	return conditions, args
}

// ListByDate implements event.EventRepository.
func (r *eventRepository) ListByDate(ctx context.Context, date time.Time, filter event.Filter) ([]event.RawEvent, error) {
	return r.ListByRange(ctx, date, date.AddDate(0, 0, 1), filter)
}

// ListByRange implements event.EventRepository.
func (r *eventRepository) ListByRange(ctx context.Context, start, end time.Time, filter event.Filter) ([]event.RawEvent, error) {
	q := GetQuerier(ctx, r.db)

	args := []interface{}{start, end}
	conditions := []string{"r.timestamp_registro >= $1", "r.timestamp_registro < $2"}
	conditions, args = filterConditions(filter, conditions, args)

	query := `
		SELECT ` + eventColumns + `
		FROM registros r
		LEFT JOIN empleados e ON e.id = r.empleado_id
		WHERE ` + joinConditions(conditions) + `
		ORDER BY r.timestamp_registro ASC
	`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	defer rows.Close()

	return scanEvents(rows)
}

// LastByEmployee implements event.EventRepository.
func (r *eventRepository) LastByEmployee(ctx context.Context, employeeID string) (event.RawEvent, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + eventColumns + `
		FROM registros r
		LEFT JOIN empleados e ON e.id = r.empleado_id
		WHERE r.empleado_id = $1
		ORDER BY r.timestamp_registro DESC
		LIMIT 1
	`

	var ev event.RawEvent
	err := q.QueryRow(ctx, query, employeeID).Scan(
		&ev.ID, &ev.EmployeeID, &ev.EmployeeCode, &ev.EmployeeName,
		&ev.Direction, &ev.Site, &ev.Timestamp,
		&ev.Confidence, &ev.Notes,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return event.RawEvent{}, event.ErrEventNotFound
		}
		return event.RawEvent{}, fmt.Errorf("failed to get last event: %w", err)
	}
	return ev, nil
}
