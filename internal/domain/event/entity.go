package event

import (
	"time"
)

// Direction is the recorded movement of an access-control event.
// Values match the tipo_registro column of the registros table.
type Direction string

const (
	DirectionEntry   Direction = "ENTRADA"
	DirectionExit    Direction = "SALIDA"
	DirectionUnknown Direction = ""
)

// RawEvent is one access-control record exactly as the reader devices stored
// it. Rows are immutable; everything derived from them is recomputed per
// request.
type RawEvent struct {
	ID           string
	EmployeeID   string
	EmployeeCode string
	EmployeeName *string
	Direction    Direction
	Site         string
	Timestamp    time.Time
	Confidence   *float64
	Notes        *string
}

// Normalized is a raw event after timezone localization and direction
// resolution. Direction is never DirectionUnknown on a Normalized event.
type Normalized struct {
	EmployeeCode string
	Timestamp    time.Time
	Direction    Direction
	Inferred     bool
}
